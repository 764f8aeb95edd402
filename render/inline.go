package render

import (
	"strconv"
	"strings"

	"github.com/rstkit/rst/doctree"
)

func (r *htmlRenderer) renderInline(items []doctree.TextOrInlineElement) {
	for _, it := range items {
		r.renderInlineOne(it)
	}
}

func (r *htmlRenderer) renderInlineOne(n doctree.TextOrInlineElement) {
	switch e := n.(type) {
	case *doctree.Text:
		r.buf.WriteString(escapeHTML(e.Value))
	case *doctree.Emphasis:
		r.inlineTag("em", e.ChildList())
	case *doctree.Strong:
		r.inlineTag("strong", e.ChildList())
	case *doctree.Literal:
		r.buf.WriteString("<code>")
		r.buf.WriteString(escapeHTML(strings.Join(e.ChildList(), "\n")))
		r.buf.WriteString("</code>")
	case *doctree.Reference:
		r.renderReference(e)
	case *doctree.FootnoteReference:
		r.renderFootnoteReference(e)
	case *doctree.CitationReference:
		r.renderCitationReference(e)
	case *doctree.SubstitutionReference:
		// A survivor past pass 3 means expansion didn't run; render
		// the literal markup rather than silently dropping it.
		r.buf.WriteString("|")
		r.renderInline(e.ChildList())
		r.buf.WriteString("|")
	case *doctree.TitleReference:
		r.inlineTag("cite", e.ChildList())
	case *doctree.Abbreviation:
		r.inlineTag("abbr", e.ChildList())
	case *doctree.Acronym:
		r.inlineTag("acronym", e.ChildList())
	case *doctree.Superscript:
		r.inlineTag("sup", e.ChildList())
	case *doctree.Subscript:
		r.inlineTag("sub", e.ChildList())
	case *doctree.Inline:
		r.inlineTag("span", e.ChildList())
	case *doctree.Generated:
		r.buf.WriteString(`<span class="generated">`)
		r.renderInline(e.ChildList())
		r.buf.WriteString(`</span>`)
	case *doctree.Problematic:
		r.buf.WriteString(`<span class="problematic">`)
		r.renderInline(e.ChildList())
		r.buf.WriteString(`</span>`)
	case *doctree.TargetInline:
		if id := firstID(e); id != "" {
			r.buf.WriteString(`<span id="` + escapeHTML(id) + `"></span>`)
		}
	case *doctree.RawInline:
		r.renderRawLines(e.Attr().Format, e.ChildList())
	case *doctree.ImageInline:
		r.renderImage(e.Attr(), e.Classes())
	default:
		// Math and any other unhandled leaf kinds fall outside
		// spec.md's scope; emit nothing rather than guess at markup.
	}
}

func (r *htmlRenderer) inlineTag(tag string, children []doctree.TextOrInlineElement) {
	r.buf.WriteString("<" + tag + ">")
	r.renderInline(children)
	r.buf.WriteString("</" + tag + ">")
}

func (r *htmlRenderer) renderReference(ref *doctree.Reference) {
	extra := ref.Attr()
	href := extra.RefURI
	if href == "" && extra.RefID != "" {
		href = "#" + extra.RefID
	}
	if href == "" {
		r.renderInline(ref.ChildList())
		return
	}
	r.buf.WriteString(`<a href="` + escapeHTML(href) + `">`)
	r.renderInline(ref.ChildList())
	r.buf.WriteString(`</a>`)
}

func (r *htmlRenderer) renderFootnoteReference(ref *doctree.FootnoteReference) {
	extra := ref.Attr()
	text := visibleText(ref.ChildList())
	if ref.IsSymbol() {
		if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			text = footnoteSymbol(n)
		}
	}
	r.buf.WriteString(`<a class="footnote-reference" href="#` + escapeHTML(extra.RefID) + `">`)
	r.buf.WriteString(escapeHTML(text))
	r.buf.WriteString(`</a>`)
}

func (r *htmlRenderer) renderCitationReference(ref *doctree.CitationReference) {
	extra := ref.Attr()
	r.buf.WriteString(`<a class="citation-reference" href="#` + escapeHTML(extra.RefID) + `">[`)
	r.renderInline(ref.ChildList())
	r.buf.WriteString(`]</a>`)
}

func visibleText(items []doctree.TextOrInlineElement) string {
	var out strings.Builder
	for _, it := range items {
		if t, ok := it.(*doctree.Text); ok {
			out.WriteString(t.Value)
		}
	}
	return out.String()
}
