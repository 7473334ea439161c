package rdf

import (
	"bytes"
	"context"

	ld "github.com/piprate/json-gold/ld"
)

// JSONLDOptions configures JSON-LD conversion.
type JSONLDOptions struct {
	// Context compacts the expanded document when set, e.g.
	// map[string]interface{}{"ex": "http://example.org/"}.
	Context map[string]interface{}
	// UseNativeTypes converts xsd:boolean/integer/double literals to JSON values.
	UseNativeTypes bool
}

// ToJSONLD converts triples into a JSON-LD document. Without a context the
// result is in expanded form.
func ToJSONLD(ctx context.Context, triples []Triple, opts JSONLDOptions) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	var buf bytes.Buffer
	if err := WriteNTriples(&buf, triples); err != nil {
		return nil, err
	}

	proc := ld.NewJsonLdProcessor()
	goldOpts := ld.NewJsonLdOptions("")
	goldOpts.Format = "application/n-quads"
	goldOpts.UseNativeTypes = opts.UseNativeTypes
	doc, err := proc.FromRDF(buf.String(), goldOpts)
	if err != nil {
		return nil, err
	}
	if opts.Context == nil {
		return doc, nil
	}
	return proc.Compact(doc, map[string]interface{}{"@context": opts.Context}, ld.NewJsonLdOptions(""))
}
