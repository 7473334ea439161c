package ssap

import (
	"strings"

	"github.com/geoknoesis/ssap-go/xmltree"
)

// resolveQName turns the qualified name of a property element into a full
// predicate URI.
//
// For prefix:local the namespace is the first xmlns:prefix declaration found
// on the element itself, then on the enclosing scopes in the order given.
// An unprefixed name looks for a default xmlns declaration the same way.
// Without any declaration the inherited namespace is used.
func resolveQName(el *xmltree.Element, inherited string, scopes ...*xmltree.Element) string {
	prefix, local, qualified := strings.Cut(el.Name, ":")
	decl := "xmlns"
	if qualified {
		decl = "xmlns:" + prefix
	} else {
		local = el.Name
	}

	ns, ok := el.Attr(decl)
	for i := 0; !ok && i < len(scopes); i++ {
		ns, ok = scopes[i].Attr(decl)
	}
	if !ok {
		ns = inherited
	}
	return joinNamespace(ns, local)
}

// joinNamespace appends local to ns, inserting '#' when ns does not already
// end with a URI delimiter.
func joinNamespace(ns, local string) string {
	if ns == "" {
		return local
	}
	switch ns[len(ns)-1] {
	case '#', '/', ':':
		return ns + local
	}
	return ns + "#" + local
}
