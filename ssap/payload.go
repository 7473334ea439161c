package ssap

import (
	"github.com/geoknoesis/ssap-go/xmltree"
)

// Payload root element names, checked in this order.
const (
	tagTripleList = "triple_list"
	tagRDFRoot    = "rdf:RDF"
	tagSPARQL     = "sparql"
	tagBoolean    = "boolean"
)

// DetectShape reports which payload a result parameter carries, using the
// same priority order as decoding. It returns 0 when none is present.
func DetectShape(param *xmltree.Element) Shape {
	switch {
	case param.Child(tagTripleList) != nil:
		return ShapeTriples
	case param.Child(tagRDFRoot) != nil:
		return ShapeGraph
	case param.Child(tagSPARQL) != nil:
		if param.Child(tagSPARQL).Child(tagBoolean) != nil {
			return ShapeAsk
		}
		return ShapeSelect
	}
	return 0
}

// decodePayload decodes the result carried by a results parameter. It
// returns nil when the parameter holds none of the known payloads.
func (s *state) decodePayload(param *xmltree.Element, element string, msg *Message) Payload {
	switch DetectShape(param) {
	case ShapeTriples:
		return s.decodeTripleList(param.Child(tagTripleList), element+"/"+tagTripleList)
	case ShapeGraph:
		return s.decodeGraph(param.Child(tagRDFRoot), element+"/"+tagRDFRoot)
	case ShapeAsk:
		return decodeAsk(param.Child(tagSPARQL).Child(tagBoolean))
	case ShapeSelect:
		result, width := s.decodeSelect(param.Child(tagSPARQL), element+"/"+tagSPARQL)
		msg.BindingCount = width
		return result
	}
	s.warn(element, ErrUnknownResultShape)
	return nil
}
