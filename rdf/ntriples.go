package rdf

import (
	"bufio"
	"fmt"
	"io"
)

// NTriplesWriter streams triples in N-Triples syntax.
type NTriplesWriter struct {
	writer *bufio.Writer
	err    error
}

// NewNTriplesWriter creates a writer on w. Call Flush when done.
func NewNTriplesWriter(w io.Writer) *NTriplesWriter {
	return &NTriplesWriter{writer: bufio.NewWriter(w)}
}

// Write emits one statement line.
func (e *NTriplesWriter) Write(t Triple) error {
	if e.err != nil {
		return e.err
	}
	if !t.Valid() {
		return fmt.Errorf("ntriples: missing statement fields")
	}
	for _, term := range []Term{t.S, t.P, t.O} {
		if iri, ok := term.(IRI); ok && !iri.Absolute() {
			return fmt.Errorf("ntriples: relative IRI %s", iri)
		}
	}
	line := t.S.String() + " " + t.P.String() + " " + t.O.String() + " .\n"
	if _, err := e.writer.WriteString(line); err != nil {
		e.err = err
		return err
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (e *NTriplesWriter) Flush() error {
	if e.err != nil {
		return e.err
	}
	return e.writer.Flush()
}

// WriteNTriples writes all triples to w.
func WriteNTriples(w io.Writer, triples []Triple) error {
	enc := NewNTriplesWriter(w)
	for _, t := range triples {
		if err := enc.Write(t); err != nil {
			return err
		}
	}
	return enc.Flush()
}
