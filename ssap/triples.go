package ssap

import (
	"github.com/geoknoesis/ssap-go/xmltree"
)

const (
	tagSubject   = "subject"
	tagPredicate = "predicate"
	tagObject    = "object"

	// objectTypeURI is the value of an <object type="..."> attribute that
	// marks the object as a URI; every other value means literal.
	objectTypeURI = "uri"
)

// decodeTripleList builds one triple per child of a <triple_list>. Children
// lacking a subject, predicate or object keep that part empty.
func (s *state) decodeTripleList(list *xmltree.Element, element string) TripleList {
	limits := s.opts.Limits
	triples := make(TripleList, 0, list.Len())
	for _, el := range list.Children {
		if s.full(element, len(triples)) {
			break
		}
		var t Triple
		if subject := el.Child(tagSubject); subject != nil {
			t.SubjectKind = KindURI
			t.Subject, _ = s.text(subject, element+"/"+tagSubject, limits.Subject)
		}
		if predicate := el.Child(tagPredicate); predicate != nil {
			t.Predicate, _ = s.text(predicate, element+"/"+tagPredicate, limits.Predicate)
		}
		if object := el.Child(tagObject); object != nil {
			t.ObjectKind = KindLiteral
			if typ, _ := object.Attr("type"); typ == objectTypeURI {
				t.ObjectKind = KindURI
			}
			t.Object, _ = s.text(object, element+"/"+tagObject, limits.Object)
		}
		triples = append(triples, t)
	}
	return triples
}
