package resolve

import (
	"strings"

	"github.com/rstkit/rst/doctree"
	"github.com/rstkit/rst/traverse"
)

// pass2 walks the resolved-number tree a second time, collecting the
// lookup tables pass 3 needs: named external targets, substitution
// bodies (verbatim and lowercase-normalized), and named citations
// (spec.md §4.D pass 2). It does not mutate anything.
func (r *resolver) pass2(doc *doctree.Document) {
	traverse.Walk(traverse.VisitorFunc(r.visitPass2), doc)
}

func (r *resolver) visitPass2(n doctree.Node) traverse.Visitor {
	switch e := n.(type) {
	case *doctree.Target:
		if len(e.Names()) > 0 && e.Attr().RefURI != "" {
			r.namedTargets[e.Names()[0]] = e.Attr().RefURI
		}
	case *doctree.SubstitutionDefinition:
		if len(e.Names()) > 0 {
			name := e.Names()[0]
			r.substitutions[name] = e.ChildList()
			r.normalizedSubstitutions[strings.ToLower(name)] = e.ChildList()
		}
	case *doctree.Citation:
		if len(e.Names()) > 0 {
			r.namedCitations[e.Names()[0]] = e
		}
	}
	return traverse.VisitorFunc(r.visitPass2)
}
