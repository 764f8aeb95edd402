// Package resolve implements stage D of the pipeline: the three
// semantic resolution passes that run over a converted doctree before
// rendering (spec.md §4.D). Pass 1 assigns footnote/citation ids and
// allocates auto-footnote numbers; pass 2 collects named targets and
// substitution definitions; pass 3 rewrites the tree in place,
// deleting substitution definitions, expanding substitution
// references, filling in reference URIs, and labeling footnotes.
//
// The original implementation drives all three as Visit/VisitMut
// passes over the same trait hierarchy traverse.go translates
// (original_source/parser/src/transform/references.rs runs the
// equivalent walk). resolve reuses traverse.Walk for the two
// read-only passes and traverse.TransformChildren for the rewriting
// pass's child-list splices and deletions.
package resolve

import "github.com/rstkit/rst/doctree"

// Resolve runs passes 1 through 3 over doc in place, in the fixed
// order spec.md §5 requires.
func Resolve(doc *doctree.Document) {
	r := newResolver()
	r.pass1(doc)
	r.pass2(doc)
	r.pass3(doc)
}

type resolver struct {
	numbers           *numberPool
	symbolCount       int
	footnoteNumber    map[*doctree.Footnote]int
	anonDefsOrder     []*doctree.Footnote
	namedFootnoteDefs map[string]*doctree.Footnote
	anonRefCursor     int
	symbolDefsOrder   []*doctree.Footnote
	symbolRefCursor   int

	substitutions           map[string][]doctree.TextOrInlineElement
	normalizedSubstitutions map[string][]doctree.TextOrInlineElement
	namedTargets            map[string]string
	namedCitations          map[string]*doctree.Citation

	nFootnotes    int
	nFootnoteRefs int
}

func newResolver() *resolver {
	return &resolver{
		numbers:                 newNumberPool(),
		footnoteNumber:          make(map[*doctree.Footnote]int),
		namedFootnoteDefs:       make(map[string]*doctree.Footnote),
		substitutions:           make(map[string][]doctree.TextOrInlineElement),
		normalizedSubstitutions: make(map[string][]doctree.TextOrInlineElement),
		namedTargets:            make(map[string]string),
		namedCitations:          make(map[string]*doctree.Citation),
	}
}

// inlineContainer is satisfied by every TextOrInlineElement kind that
// carries nested TextOrInlineElement children (Emphasis, Strong,
// Problematic, TitleReference, ...); matching it once by structural
// interface avoids a case per kind in rewriteInline.
type inlineContainer interface {
	ChildList() []doctree.TextOrInlineElement
	SetChildren([]doctree.TextOrInlineElement)
}

// bodyContainer is satisfied by every BodyElement kind whose own
// children are again BodyElement (admonitions, Compound, Container,
// ...); matching it once avoids a case per admonition kind
// in rewriteBodyElementInPlace.
type bodyContainer interface {
	ChildList() []doctree.BodyElement
	SetChildren([]doctree.BodyElement)
}
