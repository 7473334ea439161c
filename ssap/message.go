package ssap

import "fmt"

// Message types carried in the message_type field.
const (
	MessageTypeRequest    = "REQUEST"
	MessageTypeConfirm    = "CONFIRM"
	MessageTypeIndication = "INDICATION"
)

// Transaction types carried in the transaction_type field.
const (
	TransactionJoin        = "JOIN"
	TransactionLeave       = "LEAVE"
	TransactionInsert      = "INSERT"
	TransactionRemove      = "REMOVE"
	TransactionUpdate      = "UPDATE"
	TransactionQuery       = "QUERY"
	TransactionSubscribe   = "SUBSCRIBE"
	TransactionUnsubscribe = "UNSUBSCRIBE"
)

// StatusSuccess is the transaction status reported for a successful operation.
const StatusSuccess = "m3:Success"

// Message is a decoded SSAP envelope.
type Message struct {
	MessageType     string
	TransactionType string
	TransactionID   string
	NodeID          string
	SpaceID         string
	Status          string
	SubscriptionID  string

	// Current holds the "results" / "new_results" payload, Obsolete the
	// "obsolete_results" payload. A nil slot means no payload was found.
	Current  Payload
	Obsolete Payload

	BlankNodes []BlankNode

	// BindingCount is the number of variables declared by the most recently
	// decoded SELECT result of this message.
	BindingCount int

	// Warnings lists the recoverable conditions met while decoding. Each
	// entry is a *DecodeError; use Code or errors.Is to classify it.
	Warnings []error
}

// Expect reports ErrTransactionType when the message does not answer the
// given transaction type.
func (m *Message) Expect(transactionType string) error {
	if m.TransactionType != transactionType {
		return &DecodeError{
			Element: "transaction_type",
			Err:     fmt.Errorf("%w: expected %s, got %q", ErrTransactionType, transactionType, m.TransactionType),
		}
	}
	return nil
}

// Succeeded reports whether the transaction status is m3:Success.
func (m *Message) Succeeded() bool {
	return m.Status == StatusSuccess
}

// Shape identifies the encoding of a result payload.
type Shape uint8

const (
	// ShapeTriples is an explicit <triple_list>.
	ShapeTriples Shape = iota + 1
	// ShapeGraph is an RDF/XML <rdf:RDF> graph.
	ShapeGraph
	// ShapeAsk is a SPARQL XML results document with a <boolean> answer.
	ShapeAsk
	// ShapeSelect is a SPARQL XML results document with variable bindings.
	ShapeSelect
)

func (s Shape) String() string {
	switch s {
	case ShapeTriples:
		return "triples"
	case ShapeGraph:
		return "graph"
	case ShapeAsk:
		return "ask"
	case ShapeSelect:
		return "select"
	default:
		return "none"
	}
}

// Payload is the content of a result slot. It is implemented only by
// TripleList, Graph, AskResult and *SelectResult; the four shapes are not
// convertible into each other.
type Payload interface {
	Shape() Shape
	payload()
}

// TermKind identifies what a decoded value denotes.
type TermKind uint8

const (
	// KindUnknown is the zero kind: no value was read, or the value was
	// tagged with an element this decoder does not recognise.
	KindUnknown TermKind = iota
	// KindURI is a resource identifier.
	KindURI
	// KindLiteral is a literal value.
	KindLiteral
	// KindBlankNode is a blank node label.
	KindBlankNode
	// KindUnbound is a SELECT variable without a value in its row.
	KindUnbound
)

func (k TermKind) String() string {
	switch k {
	case KindURI:
		return "uri"
	case KindLiteral:
		return "literal"
	case KindBlankNode:
		return "bnode"
	case KindUnbound:
		return "unbound"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k TermKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Triple is a subject-predicate-object statement. Any part may be empty when
// the source element did not provide it.
type Triple struct {
	Subject     string   `json:"subject" yaml:"subject"`
	Predicate   string   `json:"predicate" yaml:"predicate"`
	Object      string   `json:"object" yaml:"object"`
	SubjectKind TermKind `json:"subject_kind" yaml:"subject_kind"`
	ObjectKind  TermKind `json:"object_kind" yaml:"object_kind"`
}

// Complete reports whether subject, predicate and object are all set.
func (t Triple) Complete() bool {
	return t.Subject != "" && t.Predicate != "" && t.Object != ""
}

// TripleList is the payload of a <triple_list> element, in document order.
type TripleList []Triple

// Shape returns ShapeTriples.
func (TripleList) Shape() Shape { return ShapeTriples }
func (TripleList) payload()     {}

// Graph is the payload of an RDF/XML document, in document order.
type Graph struct {
	// Namespace is the namespace declared for the rdf prefix on the graph
	// root, inherited by property elements that do not declare their own.
	Namespace string   `json:"namespace" yaml:"namespace"`
	Triples   []Triple `json:"triples" yaml:"triples"`
}

// Shape returns ShapeGraph.
func (Graph) Shape() Shape { return ShapeGraph }
func (Graph) payload()     {}

// AskResult is the answer of a SPARQL ASK query.
type AskResult bool

// Shape returns ShapeAsk.
func (AskResult) Shape() Shape { return ShapeAsk }
func (AskResult) payload()     {}

// Bool returns the answer.
func (a AskResult) Bool() bool { return bool(a) }

// Code returns the legacy numeric form of the answer used by SSAP call
// sites: 0 for true (success) and 1 for false.
func (a AskResult) Code() int {
	if a {
		return 0
	}
	return 1
}

// Binding is one variable of one SELECT row.
type Binding struct {
	Name  string   `json:"name" yaml:"name"`
	Value string   `json:"value" yaml:"value"`
	Kind  TermKind `json:"kind" yaml:"kind"`
	// Datatype and Lang are copied from a <literal> element when present.
	Datatype string `json:"datatype,omitempty" yaml:"datatype,omitempty"`
	Lang     string `json:"lang,omitempty" yaml:"lang,omitempty"`
}

// Row holds one binding per declared variable, in declaration order.
type Row []Binding

// Get returns the binding labelled name.
func (r Row) Get(name string) (Binding, bool) {
	for _, b := range r {
		if b.Name == name {
			return b, true
		}
	}
	return Binding{}, false
}

// SelectResult is the payload of a SPARQL SELECT results document.
type SelectResult struct {
	// Variables is the column header declared in <head>.
	Variables []string `json:"variables" yaml:"variables"`
	Rows      []Row    `json:"rows" yaml:"rows"`

	// Warnings lists the recoverable conditions met by DecodeSelectResult
	// and DecodeSelectDocument. Inside a Message they are reported in
	// Message.Warnings instead and this field stays empty.
	Warnings []error `json:"-" yaml:"-"`
}

// Shape returns ShapeSelect.
func (*SelectResult) Shape() Shape { return ShapeSelect }
func (*SelectResult) payload()     {}

// Width returns the number of bindings in every row.
func (r *SelectResult) Width() int {
	if r == nil {
		return 0
	}
	return len(r.Variables)
}

// Column returns the values bound to the named variable, one per row.
// Rows where the variable is unbound contribute an empty string.
func (r *SelectResult) Column(name string) []string {
	if r == nil {
		return nil
	}
	values := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		b, _ := row.Get(name)
		values = append(values, b.Value)
	}
	return values
}

// BlankNode maps a document-local blank node label to the URI assigned to it.
type BlankNode struct {
	Label string `json:"label" yaml:"label"`
	URI   string `json:"uri" yaml:"uri"`
}

// Triples returns the statements carried by a triple list or graph payload,
// and nil for any other payload.
func Triples(p Payload) []Triple {
	switch v := p.(type) {
	case TripleList:
		return v
	case Graph:
		return v.Triples
	default:
		return nil
	}
}
