package ssap

import (
	"github.com/geoknoesis/ssap-go/rdf"
)

// Statement converts the triple into the rdf term model. Objects of kind
// URI become IRIs, blank node kinds become blank nodes, and anything else is
// a plain literal.
func (t Triple) Statement() rdf.Triple {
	var s rdf.Term = rdf.IRI{Value: t.Subject}
	if t.SubjectKind == KindBlankNode {
		s = rdf.BlankNode{ID: t.Subject}
	}
	var o rdf.Term
	switch t.ObjectKind {
	case KindURI:
		o = rdf.IRI{Value: t.Object}
	case KindBlankNode:
		o = rdf.BlankNode{ID: t.Object}
	default:
		o = rdf.Literal{Lexical: t.Object}
	}
	return rdf.Triple{S: s, P: rdf.IRI{Value: t.Predicate}, O: o}
}

// Statements converts the triples of a payload, skipping incomplete ones.
func Statements(p Payload) []rdf.Triple {
	triples := Triples(p)
	out := make([]rdf.Triple, 0, len(triples))
	for _, t := range triples {
		if !t.Complete() {
			continue
		}
		out = append(out, t.Statement())
	}
	return out
}
