package render

import (
	"strconv"
	"strings"

	"github.com/rstkit/rst/doctree"
)

// maxHeadingLevel is the clamp spec.md §4.E names for section nesting
// depth deeper than HTML's h1-h6 can express.
const maxHeadingLevel = 6

const standaloneStylesheet = `
ol.footnotes { list-style: none; counter-reset: footnote; }
ol.footnotes > li { counter-increment: footnote; }
.admonition { border-left: 3px solid #888; padding: 0.2em 1em; margin: 1em 0; }
.problematic { color: #b00; border: 1px dashed #b00; padding: 0 0.2em; }
`

// HTML renders doc per spec.md §4.E: a tag-per-kind walk with
// section-depth-tracked heading levels and footnote grouping.
// Standalone mode wraps the result in a full document with an
// embedded stylesheet (spec.md §6); non-standalone emits only the
// body children.
func HTML(doc *doctree.Document, opts Options) string {
	r := &htmlRenderer{opts: opts}
	r.renderStruct(doc.ChildList(), 0)
	body := r.buf.String()

	if !opts.Standalone {
		return body
	}

	var out strings.Builder
	out.WriteString("<!doctype html><html><head><meta charset=\"utf-8\"><style>")
	out.WriteString(standaloneStylesheet)
	out.WriteString("</style></head><body>")
	out.WriteString(body)
	out.WriteString("</body></html>")
	return out.String()
}

type htmlRenderer struct {
	buf  strings.Builder
	opts Options
}

func toNodes[T doctree.Node](items []T) []doctree.Node {
	out := make([]doctree.Node, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// renderStruct and renderBody both funnel into renderSequence: the
// footnote-grouping buffer (spec.md §4.E) applies identically whether
// the sibling list is a Document/Section's StructuralSubElements or a
// ListItem/BlockQuote/admonition's BodyElements.
func (r *htmlRenderer) renderStruct(items []doctree.StructuralSubElement, depth int) {
	r.renderSequence(toNodes(items), depth)
}

func (r *htmlRenderer) renderBody(items []doctree.BodyElement, depth int) {
	r.renderSequence(toNodes(items), depth)
}

func (r *htmlRenderer) renderSequence(items []doctree.Node, depth int) {
	var footnotes []*doctree.Footnote
	flush := func() {
		if len(footnotes) == 0 {
			return
		}
		r.buf.WriteString(`<ol class="footnotes">`)
		for _, f := range footnotes {
			r.renderFootnoteItem(f)
		}
		r.buf.WriteString(`</ol>`)
		footnotes = nil
	}
	for _, it := range items {
		if f, ok := it.(*doctree.Footnote); ok {
			footnotes = append(footnotes, f)
			continue
		}
		flush()
		r.renderNode(it, depth)
	}
	flush()
}

func (r *htmlRenderer) renderNode(n doctree.Node, depth int) {
	switch e := n.(type) {
	case *doctree.Section:
		r.renderSection(e, depth)
	case *doctree.Title:
		r.renderHeading(e.ChildList(), depth)
	case *doctree.Subtitle:
		r.renderHeading(e.ChildList(), depth+1)
	case *doctree.Transition:
		r.buf.WriteString("<hr/>")
	case *doctree.Paragraph:
		r.writeTag("p", e.Classes(), nil, func() { r.renderInline(e.ChildList()) })
	case *doctree.LiteralBlock:
		r.buf.WriteString(`<pre><code>`)
		r.renderInline(e.ChildList())
		r.buf.WriteString(`</code></pre>`)
	case *doctree.DoctestBlock:
		r.buf.WriteString(`<pre class="doctest"><code>`)
		r.renderInline(e.ChildList())
		r.buf.WriteString(`</code></pre>`)
	case *doctree.Rubric:
		r.writeTag("p", append([]string{"rubric"}, e.Classes()...), nil, func() { r.renderInline(e.ChildList()) })
	case *doctree.Comment:
		// Comments never reach HTML output, matching docutils.
	case *doctree.SubstitutionDefinition:
		// Pass 3 deletes these; a survivor is rendered as nothing
		// rather than surfaced, since it carries no visible content.
	case *doctree.Target:
		if id := firstID(e); id != "" {
			r.buf.WriteString(`<span id="` + escapeHTML(id) + `"></span>`)
		}
	case *doctree.Image:
		r.renderImage(e.Attr(), e.Classes())
	case *doctree.BulletList:
		r.writeTag("ul", e.Classes(), nil, func() {
			for _, li := range e.ChildList() {
				r.writeTag("li", li.Classes(), nil, func() { r.renderBody(li.ChildList(), depth) })
			}
		})
	case *doctree.EnumeratedList:
		attrs := map[string]string{}
		if t := enumTypeAttr(e.Attr().EnumType); t != "" {
			attrs["type"] = t
		}
		r.writeTag("ol", e.Classes(), attrs, func() {
			for _, li := range e.ChildList() {
				r.writeTag("li", li.Classes(), nil, func() { r.renderBody(li.ChildList(), depth) })
			}
		})
	case *doctree.BlockQuote:
		r.writeTag("blockquote", e.Classes(), nil, func() { r.renderBlockQuote(e, depth) })
	case *doctree.Attention:
		r.renderAdmonition("attention", e.ChildList(), e.Classes(), depth)
	case *doctree.Hint:
		r.renderAdmonition("hint", e.ChildList(), e.Classes(), depth)
	case *doctree.Note:
		r.renderAdmonition("note", e.ChildList(), e.Classes(), depth)
	case *doctree.Caution:
		r.renderAdmonition("caution", e.ChildList(), e.Classes(), depth)
	case *doctree.Danger:
		r.renderAdmonition("danger", e.ChildList(), e.Classes(), depth)
	case *doctree.Error:
		r.renderAdmonition("error", e.ChildList(), e.Classes(), depth)
	case *doctree.Important:
		r.renderAdmonition("important", e.ChildList(), e.Classes(), depth)
	case *doctree.Tip:
		r.renderAdmonition("tip", e.ChildList(), e.Classes(), depth)
	case *doctree.Warning:
		r.renderAdmonition("warning", e.ChildList(), e.Classes(), depth)
	case *doctree.Footnote:
		// A Footnote outside a run the sequence buffer caught (e.g.
		// nested directly under something that doesn't funnel through
		// renderSequence) still needs a list wrapper of its own.
		r.buf.WriteString(`<ol class="footnotes">`)
		r.renderFootnoteItem(e)
		r.buf.WriteString(`</ol>`)
	case *doctree.Citation:
		r.renderCitation(e)
	case *doctree.Compound:
		r.writeTag("div", append([]string{"compound"}, e.Classes()...), nil, func() { r.renderBody(e.ChildList(), depth) })
	case *doctree.Container:
		r.writeTag("div", e.Classes(), nil, func() { r.renderBody(e.ChildList(), depth) })
	case *doctree.Raw:
		r.renderRawLines(e.Attr().Format, e.ChildList())
	default:
		// Unhandled kinds (tables, bibliographic fields, option
		// lists) fall outside spec.md's Non-goals-bounded scope; skip
		// rather than guess at a tag.
	}
}

func (r *htmlRenderer) renderSection(s *doctree.Section, depth int) {
	attrs := map[string]string{}
	if id := firstID(s); id != "" {
		attrs["id"] = id
	}
	r.writeTag("section", s.Classes(), attrs, func() {
		r.renderStruct(s.ChildList(), depth+1)
	})
}

func (r *htmlRenderer) renderHeading(children []doctree.TextOrInlineElement, depth int) {
	level := depth
	if level < 1 {
		level = 1
	}
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	tag := "h" + strconv.Itoa(level)
	r.buf.WriteString("<" + tag + ">")
	r.renderInline(children)
	r.buf.WriteString("</" + tag + ">")
}

func (r *htmlRenderer) renderBlockQuote(bq *doctree.BlockQuote, depth int) {
	var run []doctree.BodyElement
	for _, it := range bq.ChildList() {
		switch e := it.(type) {
		case *doctree.Attribution:
			r.renderBody(run, depth)
			run = nil
			r.writeTag("footer", e.Classes(), nil, func() { r.renderInline(e.ChildList()) })
		default:
			if b, ok := it.(doctree.BodyElement); ok {
				run = append(run, b)
			}
		}
	}
	r.renderBody(run, depth)
}

func (r *htmlRenderer) renderAdmonition(kind string, children []doctree.BodyElement, classes []string, depth int) {
	r.writeTag("div", append([]string{"admonition", kind}, classes...), nil, func() {
		r.buf.WriteString(`<p class="admonition-title">`)
		r.buf.WriteString(strings.ToUpper(kind[:1]) + kind[1:])
		r.buf.WriteString(`</p>`)
		r.renderBody(children, depth)
	})
}

func (r *htmlRenderer) renderFootnoteItem(f *doctree.Footnote) {
	id := firstID(f)
	attrs := map[string]string{}
	if id != "" {
		attrs["id"] = id
	}
	r.writeTag("li", f.Classes(), attrs, func() {
		for _, c := range f.ChildList() {
			switch e := c.(type) {
			case *doctree.Label:
				r.buf.WriteString(`<span class="label">`)
				r.renderFootnoteLabel(f, e)
				r.buf.WriteString(`</span> `)
			default:
				if b, ok := c.(doctree.BodyElement); ok {
					r.renderNode(b, 0)
				}
			}
		}
	})
}

// renderFootnoteLabel substitutes the fixed symbol cycle in place of a
// Symbol-class footnote's internal dense number (spec.md §6); pass 3
// stores the plain digit on every class uniformly, leaving the
// digit-vs-glyph choice to the renderer.
func (r *htmlRenderer) renderFootnoteLabel(f *doctree.Footnote, label *doctree.Label) {
	if f.IsSymbol() {
		if n, ok := labelNumber(label); ok {
			r.buf.WriteString(escapeHTML(footnoteSymbol(n)))
			return
		}
	}
	r.renderInline(label.ChildList())
}

func labelNumber(label *doctree.Label) (int, bool) {
	children := label.ChildList()
	if len(children) != 1 {
		return 0, false
	}
	t, ok := children[0].(*doctree.Text)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(t.Value))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r *htmlRenderer) renderCitation(c *doctree.Citation) {
	id := firstID(c)
	attrs := map[string]string{}
	if id != "" {
		attrs["id"] = id
	}
	r.writeTag("div", append([]string{"citation"}, c.Classes()...), attrs, func() {
		for _, child := range c.ChildList() {
			switch e := child.(type) {
			case *doctree.Label:
				r.buf.WriteString(`<span class="label">[`)
				r.renderInline(e.ChildList())
				r.buf.WriteString(`]</span> `)
			default:
				if b, ok := child.(doctree.BodyElement); ok {
					r.renderNode(b, 0)
				}
			}
		}
	})
}

func (r *htmlRenderer) renderImage(extra *doctree.ImageExtra, classes []string) {
	var img strings.Builder
	img.WriteString(`<img src="` + escapeHTML(extra.URI) + `"`)
	if extra.Alt != "" {
		img.WriteString(` alt="` + escapeHTML(extra.Alt) + `"`)
	}
	var style []string
	if extra.Width != nil {
		style = append(style, "width:"+extra.Width.String())
	}
	if extra.Height != nil {
		style = append(style, "height:"+extra.Height.String())
	}
	if extra.Align != nil {
		style = append(style, "float:"+string(*extra.Align))
	}
	if len(style) > 0 {
		img.WriteString(` style="` + escapeHTML(strings.Join(style, ";")) + `"`)
	}
	if len(classes) > 0 {
		img.WriteString(` class="` + escapeHTML(strings.Join(classes, " ")) + `"`)
	}
	img.WriteString(` />`)

	if extra.Target != "" {
		r.buf.WriteString(`<a href="` + escapeHTML(extra.Target) + `">`)
		r.buf.WriteString(img.String())
		r.buf.WriteString(`</a>`)
		return
	}
	r.buf.WriteString(img.String())
}

func (r *htmlRenderer) renderRawLines(format []string, lines []string) {
	text := strings.Join(lines, "\n")
	if containsFold(format, "html") {
		if r.opts.Sanitize {
			r.buf.WriteString(sanitizeHTML(text))
			return
		}
		r.buf.WriteString(text)
		return
	}
	if containsFold(format, "markdown") {
		r.buf.WriteString(renderRawMarkdown(text, r.opts.Sanitize))
		return
	}
	r.buf.WriteString(escapeHTML(text))
}

func containsFold(format []string, want string) bool {
	for _, f := range format {
		if strings.Contains(strings.ToLower(f), want) {
			return true
		}
	}
	return false
}

func enumTypeAttr(t doctree.EnumeratedListType) string {
	switch t {
	case doctree.EnumLowerAlpha:
		return "a"
	case doctree.EnumUpperAlpha:
		return "A"
	case doctree.EnumLowerRoman:
		return "i"
	case doctree.EnumUpperRoman:
		return "I"
	default:
		return ""
	}
}

func firstID(n doctree.Node) string {
	ids := n.IDs()
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

func (r *htmlRenderer) writeTag(tag string, classes []string, attrs map[string]string, body func()) {
	r.buf.WriteString("<" + tag)
	if id, ok := attrs["id"]; ok && id != "" {
		r.buf.WriteString(` id="` + escapeHTML(id) + `"`)
	}
	if len(classes) > 0 {
		r.buf.WriteString(` class="` + escapeHTML(strings.Join(classes, " ")) + `"`)
	}
	for k, v := range attrs {
		if k == "id" {
			continue
		}
		r.buf.WriteString(" " + k + `="` + escapeHTML(v) + `"`)
	}
	r.buf.WriteString(">")
	body()
	r.buf.WriteString("</" + tag + ">")
}
