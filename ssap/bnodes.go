package ssap

import (
	"github.com/geoknoesis/ssap-go/xmltree"
)

const tagURIList = "urilist"

// decodeBlankNodes builds one mapping per child of a <urilist>: the tag
// attribute is the label and the text is the URI assigned to it.
func (s *state) decodeBlankNodes(list *xmltree.Element, element string) []BlankNode {
	limits := s.opts.Limits
	nodes := make([]BlankNode, 0, list.Len())
	for _, el := range list.Children {
		if s.full(element, len(nodes)) {
			break
		}
		var b BlankNode
		if label, ok := el.Attr("tag"); ok {
			b.Label = s.clip(element+"/tag", label, limits.Subject)
		}
		b.URI, _ = s.text(el, element+"/"+el.Name, limits.URI)
		nodes = append(nodes, b)
	}
	return nodes
}
