// Package ssap decodes Smart Space Access Protocol (SSAP) messages.
//
// An SSAP message is an XML document rooted at <SSAP_message>. Its scalar
// fields (message type, transaction type and id, node and space id) are
// plain child elements; everything else travels in <parameter name="...">
// elements. Result parameters carry one of four payload encodings, told apart
// by their root element and checked in this order:
//
//   - <triple_list>: explicit subject/predicate/object triples (TripleList)
//   - <rdf:RDF>: an RDF/XML graph (Graph)
//   - <sparql> with a <boolean> child: an ASK answer (AskResult)
//   - <sparql> otherwise: SELECT variable bindings (*SelectResult)
//
// Example:
//
//	msg, err := ssap.Decode(conn)
//	if err != nil {
//	    // handle error
//	}
//	if err := msg.Expect(ssap.TransactionQuery); err != nil {
//	    // handle error
//	}
//	for _, t := range ssap.Triples(msg.Current) {
//	    // process t.Subject, t.Predicate, t.Object
//	}
//
// Values longer than the protocol limits are truncated, not rejected, unless
// OptRejectOverlong is given. Result lists keep document order.
//
// Conditions that only affect one parameter, such as a parameter without a
// name attribute, never abort decoding; they are collected in
// Message.Warnings and logged at debug level through the zap logger set with
// OptLogger.
package ssap
