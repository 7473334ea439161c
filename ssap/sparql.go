package ssap

import (
	"go.uber.org/zap"

	"github.com/geoknoesis/ssap-go/xmltree"
)

const (
	tagHead     = "head"
	tagVariable = "variable"
	tagResults  = "results"

	tagUnbound = "unbound"
	tagURI     = "uri"
	tagLiteral = "literal"
	tagBNode   = "bnode"
)

// decodeAsk reads a <boolean> element. Only the exact text "true" is true.
func decodeAsk(el *xmltree.Element) AskResult {
	text, _ := el.Text()
	return AskResult(text == "true")
}

// decodeSelect decodes a SPARQL XML results element. The width is the number
// of <variable> declarations in <head>; every row gets exactly that many
// bindings, taken by position from the row's children. A document without
// a <results> section yields a result with the variables and no rows.
func (s *state) decodeSelect(root *xmltree.Element, element string) (*SelectResult, int) {
	limits := s.opts.Limits
	head := root.Child(tagHead)
	var variables []string
	for i := 0; i < head.Len(); i++ {
		v := head.ChildAt(i)
		if v.Name != tagVariable {
			continue
		}
		name, _ := v.Attr("name")
		variables = append(variables, s.clip(element+"/"+tagHead, name, limits.Subject))
	}
	width := len(variables)

	result := &SelectResult{Variables: variables, Rows: []Row{}}
	results := root.Child(tagResults)
	if results == nil {
		s.log.Debug("ssap: select result without results section", zap.Int("variables", width))
		return result, width
	}

	result.Rows = make([]Row, 0, results.Len())
	for _, el := range results.Children {
		if s.full(element+"/"+tagResults, len(result.Rows)) {
			break
		}
		row := make(Row, width)
		for i := range row {
			row[i] = s.decodeBinding(el.ChildAt(i), variables[i], element+"/"+tagResults)
		}
		result.Rows = append(result.Rows, row)
	}
	return result, width
}

// decodeBinding reads one <binding> element. A missing binding element is
// treated as an unbound variable with the name declared in the header.
func (s *state) decodeBinding(el *xmltree.Element, declared, element string) Binding {
	limits := s.opts.Limits
	if el == nil {
		return Binding{Name: declared, Kind: KindUnbound}
	}

	var b Binding
	if name, ok := el.Attr("name"); ok {
		b.Name = s.clip(element+"/binding", name, limits.Subject)
	}

	value := el.ChildAt(0)
	if value == nil {
		return b
	}
	if value.Name == tagUnbound {
		b.Kind = KindUnbound
		return b
	}
	b.Value, _ = s.text(value, element+"/"+value.Name, limits.Subject)
	switch value.Name {
	case tagURI:
		b.Kind = KindURI
	case tagLiteral:
		b.Kind = KindLiteral
		b.Datatype, _ = value.Attr("datatype")
		b.Lang, _ = value.Attr("xml:lang")
	case tagBNode:
		b.Kind = KindBlankNode
	}
	return b
}
