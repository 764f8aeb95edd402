package resolve

import (
	"strconv"
	"strings"

	"github.com/rstkit/rst/doctree"
	"github.com/rstkit/rst/traverse"
)

// pass1 walks the document once, in document order, allocating every
// auto-numbered footnote's number and appending the id every footnote
// and footnote reference carries regardless of numbering class
// (spec.md §4.D pass 1). Citation ids are derived from their name here
// too, since nothing else in the pipeline assigns one.
func (r *resolver) pass1(doc *doctree.Document) {
	traverse.Walk(traverse.VisitorFunc(r.visitPass1), doc)
}

func (r *resolver) visitPass1(n doctree.Node) traverse.Visitor {
	switch e := n.(type) {
	case *doctree.Footnote:
		r.assignFootnoteNumber(e)
		r.nFootnotes++
		e.AddID("footnote-" + strconv.Itoa(r.nFootnotes))
	case *doctree.Citation:
		if len(e.Names()) > 0 {
			e.AddID(doctree.NormalizeID(e.Names()[0]))
		}
	case *doctree.FootnoteReference:
		r.nFootnoteRefs++
		e.AddID("footnote-reference-" + strconv.Itoa(r.nFootnoteRefs))
	}
	return traverse.VisitorFunc(r.visitPass1)
}

// assignFootnoteNumber applies the footnote numbering algorithm
// (spec.md §4.D): Symbol-class footnotes get a dense 1..k position,
// Number-class auto-footnotes get the named/anonymous allocation, and
// a manually-labeled footnote reserves its literal value rather than
// drawing a fresh one.
func (r *resolver) assignFootnoteNumber(f *doctree.Footnote) {
	switch {
	case f.IsSymbol():
		r.symbolCount++
		r.footnoteNumber[f] = r.symbolCount
		r.symbolDefsOrder = append(r.symbolDefsOrder, f)
	case f.IsAuto():
		if len(f.Names()) > 0 {
			n := r.numbers.assignNamed()
			r.footnoteNumber[f] = n
			r.namedFootnoteDefs[f.Names()[0]] = f
			return
		}
		n := r.numbers.assignAnonymous()
		r.footnoteNumber[f] = n
		r.anonDefsOrder = append(r.anonDefsOrder, f)
	default:
		if n, ok := manualFootnoteNumber(f); ok {
			r.numbers.reserve(n)
			r.footnoteNumber[f] = n
		}
	}
}

// manualFootnoteNumber recovers the literal digits from the id
// convert.convertFootnoteDef derived from an explicit numeric label
// ("footnote-2" -> 2); it runs before pass1 appends its own sequential
// "footnote-<k>" id, so only the label-derived one is present yet.
func manualFootnoteNumber(f *doctree.Footnote) (int, bool) {
	for _, id := range f.IDs() {
		if rest, ok := strings.CutPrefix(id, "footnote-"); ok {
			if n, err := strconv.Atoi(rest); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
