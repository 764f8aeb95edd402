package resolve

import (
	"strconv"
	"strings"

	"github.com/rstkit/rst/doctree"
	"github.com/rstkit/rst/traverse"
)

// pass3 rewrites the tree in place: substitution definitions are
// deleted, substitution references expand or become Problematic,
// reference URIs are filled from named targets, and footnotes/
// footnote references/citation references get their labels and
// cross-ids (spec.md §4.D pass 3).
func (r *resolver) pass3(doc *doctree.Document) {
	doc.SetChildren(r.rewriteStruct(doc.ChildList()))
}

func (r *resolver) rewriteStruct(items []doctree.StructuralSubElement) []doctree.StructuralSubElement {
	return traverse.TransformChildren(items, func(s doctree.StructuralSubElement) []doctree.StructuralSubElement {
		switch e := s.(type) {
		case *doctree.SubstitutionDefinition:
			return nil
		case *doctree.Section:
			e.SetChildren(r.rewriteStruct(e.ChildList()))
			return []doctree.StructuralSubElement{e}
		case *doctree.Title:
			e.SetChildren(r.rewriteInline(e.ChildList()))
			return []doctree.StructuralSubElement{e}
		case *doctree.Subtitle:
			e.SetChildren(r.rewriteInline(e.ChildList()))
			return []doctree.StructuralSubElement{e}
		}
		if b, ok := s.(doctree.BodyElement); ok {
			r.rewriteBodyElementInPlace(b)
		}
		return []doctree.StructuralSubElement{s}
	})
}

func (r *resolver) rewriteBody(items []doctree.BodyElement) []doctree.BodyElement {
	return traverse.TransformChildren(items, func(b doctree.BodyElement) []doctree.BodyElement {
		if _, ok := b.(*doctree.SubstitutionDefinition); ok {
			return nil
		}
		r.rewriteBodyElementInPlace(b)
		return []doctree.BodyElement{b}
	})
}

func (r *resolver) rewriteBodyElementInPlace(b doctree.BodyElement) {
	switch e := b.(type) {
	case *doctree.Paragraph:
		e.SetChildren(r.rewriteInline(e.ChildList()))
		return
	case *doctree.LiteralBlock:
		e.SetChildren(r.rewriteInline(e.ChildList()))
		return
	case *doctree.DoctestBlock:
		e.SetChildren(r.rewriteInline(e.ChildList()))
		return
	case *doctree.Rubric:
		e.SetChildren(r.rewriteInline(e.ChildList()))
		return
	case *doctree.Comment:
		e.SetChildren(r.rewriteInline(e.ChildList()))
		return
	case *doctree.BulletList:
		for _, li := range e.ChildList() {
			li.SetChildren(r.rewriteBody(li.ChildList()))
		}
		return
	case *doctree.EnumeratedList:
		for _, li := range e.ChildList() {
			li.SetChildren(r.rewriteBody(li.ChildList()))
		}
		return
	case *doctree.BlockQuote:
		r.rewriteBlockQuote(e)
		return
	case *doctree.Footnote:
		r.rewriteFootnote(e)
		return
	case *doctree.Citation:
		r.rewriteCitation(e)
		return
	}
	if bc, ok := b.(bodyContainer); ok {
		bc.SetChildren(r.rewriteBody(bc.ChildList()))
	}
}

func (r *resolver) rewriteBlockQuote(bq *doctree.BlockQuote) {
	items := bq.ChildList()
	out := make([]doctree.SubBlockQuote, len(items))
	for i, it := range items {
		switch e := it.(type) {
		case *doctree.Attribution:
			e.SetChildren(r.rewriteInline(e.ChildList()))
			out[i] = e
		default:
			if b, ok := it.(doctree.BodyElement); ok {
				r.rewriteBodyElementInPlace(b)
			}
			out[i] = it
		}
	}
	bq.SetChildren(out)
}

func (r *resolver) rewriteFootnote(f *doctree.Footnote) {
	children := f.ChildList()
	if len(children) == 0 || !isLabel(children[0]) {
		text := "???"
		if n, ok := r.footnoteNumber[f]; ok {
			text = strconv.Itoa(n)
		}
		label := doctree.NewLabel([]doctree.TextOrInlineElement{doctree.NewText(text)})
		children = append([]doctree.SubFootnote{label}, children...)
	}
	f.SetChildren(r.rewriteSubFootnote(children))
}

func (r *resolver) rewriteCitation(c *doctree.Citation) {
	children := c.ChildList()
	if len(children) == 0 || !isLabel(children[0]) {
		text := "???"
		if len(c.Names()) > 0 {
			text = c.Names()[0]
		}
		label := doctree.NewLabel([]doctree.TextOrInlineElement{doctree.NewText(text)})
		children = append([]doctree.SubFootnote{label}, children...)
	}
	c.SetChildren(r.rewriteSubFootnote(children))
}

func (r *resolver) rewriteSubFootnote(items []doctree.SubFootnote) []doctree.SubFootnote {
	out := make([]doctree.SubFootnote, len(items))
	for i, it := range items {
		if lbl, ok := it.(*doctree.Label); ok {
			lbl.SetChildren(r.rewriteInline(lbl.ChildList()))
			out[i] = lbl
			continue
		}
		if b, ok := it.(doctree.BodyElement); ok {
			r.rewriteBodyElementInPlace(b)
		}
		out[i] = it
	}
	return out
}

func isLabel(n doctree.SubFootnote) bool {
	_, ok := n.(*doctree.Label)
	return ok
}

func (r *resolver) rewriteInline(items []doctree.TextOrInlineElement) []doctree.TextOrInlineElement {
	return traverse.TransformChildren(items, func(el doctree.TextOrInlineElement) []doctree.TextOrInlineElement {
		switch e := el.(type) {
		case *doctree.SubstitutionReference:
			return r.expandSubstitution(e)
		case *doctree.Reference:
			e.SetChildren(r.rewriteInline(e.ChildList()))
			r.fillReferenceURI(e)
			return []doctree.TextOrInlineElement{e}
		case *doctree.FootnoteReference:
			r.rewriteFootnoteReference(e)
			return []doctree.TextOrInlineElement{e}
		case *doctree.CitationReference:
			r.rewriteCitationReference(e)
			return []doctree.TextOrInlineElement{e}
		}
		if ic, ok := el.(inlineContainer); ok {
			ic.SetChildren(r.rewriteInline(ic.ChildList()))
		}
		return []doctree.TextOrInlineElement{el}
	})
}

// expandSubstitution looks up refname[0] first case-sensitively, then
// by lowercase, splicing in a fresh copy of the definition's content
// so the same definition can be used at more than one reference site
// without aliasing tree nodes. An unresolved reference becomes a
// Problematic node carrying the literal "|name|" text, matching
// spec.md §8 boundary scenario 5.
func (r *resolver) expandSubstitution(s *doctree.SubstitutionReference) []doctree.TextOrInlineElement {
	names := s.Attr().RefName
	if len(names) == 0 {
		return []doctree.TextOrInlineElement{doctree.NewProblematic(doctree.ProblematicExtra{}, s.ChildList())}
	}
	name := names[0]
	if content, ok := r.substitutions[name]; ok {
		return r.rewriteInline(cloneInline(content))
	}
	if content, ok := r.normalizedSubstitutions[strings.ToLower(name)]; ok {
		return r.rewriteInline(cloneInline(content))
	}
	return []doctree.TextOrInlineElement{
		doctree.NewProblematic(doctree.ProblematicExtra{}, []doctree.TextOrInlineElement{doctree.NewText("|" + name + "|")}),
	}
}

func (r *resolver) fillReferenceURI(ref *doctree.Reference) {
	extra := ref.Attr()
	if extra.RefURI != "" || extra.Name == "" {
		return
	}
	if uri, ok := r.namedTargets[doctree.WhitespaceNormalizeName(extra.Name)]; ok {
		extra.RefURI = uri
	}
}

func (r *resolver) rewriteFootnoteReference(ref *doctree.FootnoteReference) {
	n, ok := r.numberForReference(ref)
	if ok {
		ref.Attr().RefID = "footnote-" + strconv.Itoa(n)
	}
	if len(ref.ChildList()) == 0 {
		text := "???"
		if ok {
			text = strconv.Itoa(n)
		}
		ref.SetChildren([]doctree.TextOrInlineElement{doctree.NewText(text)})
	}
}

// numberForReference resolves a footnote reference's displayed number
// by matching it to its definition: Symbol and anonymous Number
// references are matched positionally against the definitions of the
// same class in document order, named references by name, and a
// manual numeric label (kept as the reference's own visible text by
// convert) is its own number — docutils never looks that one up.
func (r *resolver) numberForReference(ref *doctree.FootnoteReference) (int, bool) {
	attr := ref.Attr()
	switch {
	case attr.Auto.IsSymbol():
		if r.symbolRefCursor >= len(r.symbolDefsOrder) {
			return 0, false
		}
		def := r.symbolDefsOrder[r.symbolRefCursor]
		r.symbolRefCursor++
		return r.footnoteNumber[def], true
	case attr.Auto.IsAuto():
		if len(attr.RefName) > 0 {
			def, ok := r.namedFootnoteDefs[attr.RefName[0]]
			if !ok {
				return 0, false
			}
			return r.footnoteNumber[def], true
		}
		if r.anonRefCursor >= len(r.anonDefsOrder) {
			return 0, false
		}
		def := r.anonDefsOrder[r.anonRefCursor]
		r.anonRefCursor++
		return r.footnoteNumber[def], true
	default:
		if len(ref.ChildList()) == 1 {
			if t, ok := ref.ChildList()[0].(*doctree.Text); ok {
				if n, err := strconv.Atoi(strings.TrimSpace(t.Value)); err == nil {
					return n, true
				}
			}
		}
		return 0, false
	}
}

func (r *resolver) rewriteCitationReference(ref *doctree.CitationReference) {
	attr := ref.Attr()
	if len(attr.RefName) == 0 {
		return
	}
	cit, ok := r.namedCitations[attr.RefName[0]]
	if !ok {
		return
	}
	if len(cit.IDs()) > 0 {
		attr.RefID = cit.IDs()[0]
	}
}

func cloneInline(items []doctree.TextOrInlineElement) []doctree.TextOrInlineElement {
	out := make([]doctree.TextOrInlineElement, len(items))
	for i, it := range items {
		out[i] = cloneInlineOne(it)
	}
	return out
}

func cloneInlineOne(n doctree.TextOrInlineElement) doctree.TextOrInlineElement {
	switch e := n.(type) {
	case *doctree.Text:
		return doctree.NewText(e.Value)
	case *doctree.Emphasis:
		c := &doctree.Emphasis{}
		c.SetChildren(cloneInline(e.ChildList()))
		return c
	case *doctree.Strong:
		c := &doctree.Strong{}
		c.SetChildren(cloneInline(e.ChildList()))
		return c
	case *doctree.Literal:
		return doctree.NewLiteral(append([]string(nil), e.ChildList()...))
	case *doctree.Reference:
		return doctree.NewReference(*e.Attr(), cloneInline(e.ChildList()))
	case *doctree.FootnoteReference:
		return doctree.NewFootnoteReference(*e.Attr(), cloneInline(e.ChildList()))
	case *doctree.CitationReference:
		return doctree.NewCitationReference(*e.Attr(), cloneInline(e.ChildList()))
	case *doctree.SubstitutionReference:
		return doctree.NewSubstitutionReference(*e.Attr(), cloneInline(e.ChildList()))
	default:
		return n
	}
}
