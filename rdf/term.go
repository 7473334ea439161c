// Package rdf is a small RDF term model used to hand decoded SSAP statements
// to RDF tooling: an N-Triples writer and JSON-LD conversion.
package rdf

import "strings"

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// Term is a value that can appear in RDF statements. String renders the
// term in N-Triples syntax.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

func (i IRI) String() string { return "<" + i.Value + ">" }

// Absolute reports whether the IRI starts with a scheme: a letter followed
// by letters, digits, '+', '-' or '.', then ':'.
func (i IRI) Absolute() bool {
	scheme, _, ok := strings.Cut(i.Value, ":")
	if !ok || scheme == "" {
		return false
	}
	for n, r := range scheme {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case n > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// BlankNode represents an RDF blank node.
type BlankNode struct {
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an RDF literal. Datatype and Lang are optional and
// mutually exclusive.
type Literal struct {
	Lexical  string
	Datatype IRI
	Lang     string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

func (l Literal) String() string {
	quoted := `"` + literalEscaper.Replace(l.Lexical) + `"`
	if l.Lang != "" {
		return quoted + "@" + l.Lang
	}
	if l.Datatype.Value != "" {
		return quoted + "^^" + l.Datatype.String()
	}
	return quoted
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Triple is an RDF triple.
type Triple struct {
	S Term
	P IRI
	O Term
}

// Valid reports whether all three positions hold a usable term.
func (t Triple) Valid() bool {
	if t.S == nil || t.O == nil || t.P.Value == "" {
		return false
	}
	if t.S.Kind() == TermLiteral {
		return false
	}
	switch s := t.S.(type) {
	case IRI:
		return s.Value != ""
	case BlankNode:
		return s.ID != ""
	}
	return true
}
