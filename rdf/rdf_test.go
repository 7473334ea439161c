package rdf

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLiteralStringEscapes(t *testing.T) {
	lit := Literal{Lexical: "a \"quoted\"\nline\\"}
	want := `"a \"quoted\"\nline\\"`
	if got := lit.String(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got := (Literal{Lexical: "chat", Lang: "fr"}).String(); got != `"chat"@fr` {
		t.Fatalf("unexpected language literal %s", got)
	}
	typed := Literal{Lexical: "1", Datatype: IRI{Value: "http://www.w3.org/2001/XMLSchema#integer"}}
	if got := typed.String(); got != `"1"^^<http://www.w3.org/2001/XMLSchema#integer>` {
		t.Fatalf("unexpected typed literal %s", got)
	}
}

func TestWriteNTriples(t *testing.T) {
	var buf bytes.Buffer
	err := WriteNTriples(&buf, []Triple{
		{S: IRI{Value: "http://example.org/s"}, P: IRI{Value: "http://example.org/p"}, O: IRI{Value: "http://example.org/o"}},
		{S: BlankNode{ID: "b1"}, P: IRI{Value: "http://example.org/p"}, O: Literal{Lexical: "v"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n" +
		"_:b1 <http://example.org/p> \"v\" .\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestNTriplesWriterRejectsIncompleteTriple(t *testing.T) {
	w := NewNTriplesWriter(&bytes.Buffer{})
	if err := w.Write(Triple{S: IRI{Value: "http://example.org/s"}, O: Literal{Lexical: "v"}}); err == nil {
		t.Fatal("expected missing predicate error")
	}
	if err := w.Write(Triple{S: Literal{Lexical: "x"}, P: IRI{Value: "http://example.org/p"}, O: Literal{}}); err == nil {
		t.Fatal("expected literal subject error")
	}
}

func TestNTriplesWriterRejectsRelativeIRI(t *testing.T) {
	var buf bytes.Buffer
	err := WriteNTriples(&buf, []Triple{
		{S: IRI{Value: "http://example.org/s"}, P: IRI{Value: "likes"}, O: Literal{Lexical: "v"}},
	})
	if err == nil || !strings.Contains(err.Error(), "<likes>") {
		t.Fatalf("expected relative IRI error, got %v", err)
	}
	if _, err := ToJSONLD(context.Background(), []Triple{
		{S: IRI{Value: "s"}, P: IRI{Value: "http://example.org/p"}, O: Literal{Lexical: "v"}},
	}, JSONLDOptions{}); err == nil {
		t.Fatal("expected relative subject to be rejected")
	}
}

func TestIRIAbsolute(t *testing.T) {
	cases := map[string]bool{
		"http://example.org/a": true,
		"urn:ex:a":             true,
		"a+b.c-d:x":            true,
		"likes":                false,
		":x":                   false,
		"1http://x":            false,
		"":                     false,
	}
	for value, want := range cases {
		if got := (IRI{Value: value}).Absolute(); got != want {
			t.Errorf("IRI(%q).Absolute() = %v, want %v", value, got, want)
		}
	}
}

func TestToJSONLDExpanded(t *testing.T) {
	doc, err := ToJSONLD(context.Background(), []Triple{
		{S: IRI{Value: "http://example.org/s"}, P: IRI{Value: "http://example.org/p"}, O: Literal{Lexical: "v"}},
	}, JSONLDOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nodes, ok := doc.([]interface{})
	if !ok || len(nodes) != 1 {
		t.Fatalf("expected one node, got %#v", doc)
	}
	node := nodes[0].(map[string]interface{})
	if node["@id"] != "http://example.org/s" {
		t.Fatalf("unexpected @id %v", node["@id"])
	}
	values, ok := node["http://example.org/p"].([]interface{})
	if !ok || len(values) != 1 {
		t.Fatalf("expected one value, got %#v", node["http://example.org/p"])
	}
	if values[0].(map[string]interface{})["@value"] != "v" {
		t.Fatalf("unexpected value %#v", values[0])
	}
}

func TestToJSONLDCompacted(t *testing.T) {
	doc, err := ToJSONLD(context.Background(), []Triple{
		{S: IRI{Value: "http://example.org/s"}, P: IRI{Value: "http://example.org/p"}, O: Literal{Lexical: "v"}},
	}, JSONLDOptions{Context: map[string]interface{}{"ex": "http://example.org/"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node, ok := doc.(map[string]interface{})
	if !ok {
		t.Fatalf("expected object, got %T", doc)
	}
	if node["@id"] != "ex:s" || node["ex:p"] != "v" {
		t.Fatalf("unexpected compacted document %#v", node)
	}
}

func TestToJSONLDCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ToJSONLD(ctx, nil, JSONLDOptions{}); err == nil || !strings.Contains(err.Error(), "canceled") {
		t.Fatalf("expected canceled error, got %v", err)
	}
}
