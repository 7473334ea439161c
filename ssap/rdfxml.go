package ssap

import (
	"go.uber.org/zap"

	"github.com/geoknoesis/ssap-go/xmltree"
)

const (
	attrRDFNamespace = "xmlns:rdf"
	attrAbout        = "rdf:about"
	attrResource     = "rdf:resource"
	attrNodeID       = "rdf:nodeID"
)

// decodeGraph decodes an <rdf:RDF> element. Every child is a description;
// its rdf:about is the subject and its first child element is the property.
// With AllProperties every child element of a description is a property.
func (s *state) decodeGraph(root *xmltree.Element, element string) Graph {
	limits := s.opts.Limits
	inherited, _ := root.Attr(attrRDFNamespace)
	graph := Graph{Namespace: inherited, Triples: make([]Triple, 0, root.Len())}

	for _, desc := range root.Children {
		var subject Triple
		if about, ok := desc.Attr(attrAbout); ok {
			subject.Subject = s.clip(element+"/"+attrAbout, about, limits.Subject)
			subject.SubjectKind = KindURI
		} else if nodeID, ok := desc.Attr(attrNodeID); ok {
			subject.Subject = s.clip(element+"/"+attrNodeID, nodeID, limits.Subject)
			subject.SubjectKind = KindBlankNode
		}

		props := desc.Children
		if len(props) == 0 {
			s.log.Debug("ssap: description without property element", zap.String("subject", subject.Subject))
			continue
		}
		if !s.opts.AllProperties {
			props = props[:1]
		}
		for _, prop := range props {
			if s.full(element, len(graph.Triples)) {
				return graph
			}
			t := subject
			t.Predicate = s.clip(element+"/"+prop.Name, resolveQName(prop, inherited, desc, root), limits.Predicate)
			if resource, ok := prop.Attr(attrResource); ok {
				t.Object = s.clip(element+"/"+attrResource, resource, limits.Object)
				t.ObjectKind = KindURI
			} else if nodeID, ok := prop.Attr(attrNodeID); ok {
				t.Object = s.clip(element+"/"+attrNodeID, nodeID, limits.Object)
				t.ObjectKind = KindBlankNode
			} else {
				t.Object, _ = s.text(prop, element+"/"+prop.Name, limits.Object)
				t.ObjectKind = KindLiteral
			}
			graph.Triples = append(graph.Triples, t)
		}
	}
	return graph
}
