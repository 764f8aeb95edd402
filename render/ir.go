package render

import "github.com/rstkit/rst/doctree"

// Node is a serialization-neutral mirror of one doctree element,
// built once and consumed by both the JSON and XML backends so
// neither has to carry its own ~70-case type switch (spec.md §9's
// "generic recursion over ~70 kinds" note, generalized to a third
// consumer beyond Visit/Transform).
type Node struct {
	Kind     string            `json:"kind" xml:"kind,attr"`
	IDs      []string          `json:"ids,omitempty" xml:"-"`
	Names    []string          `json:"names,omitempty" xml:"-"`
	Classes  []string          `json:"classes,omitempty" xml:"-"`
	Attrs    map[string]string `json:"attrs,omitempty" xml:"-"`
	Text     string            `json:"text,omitempty" xml:"-"`
	Children []Node            `json:"children,omitempty" xml:"-"`
}

// Build converts a resolved document into its IR form.
func Build(doc *doctree.Document) Node {
	return buildStruct(doc)
}

func common(n doctree.Node) (ids, names, classes []string) {
	return n.IDs(), n.Names(), n.Classes()
}

func buildStruct(n doctree.Node) Node {
	ids, names, classes := common(n)
	out := Node{Kind: n.Kind().String(), IDs: ids, Names: names, Classes: classes}

	switch e := n.(type) {
	case *doctree.Document:
		out.Children = buildAll(e.ChildList())
	case *doctree.Section:
		out.Children = buildAll(e.ChildList())
	case *doctree.Title:
		out.Children = buildAll(e.ChildList())
	case *doctree.Subtitle:
		out.Children = buildAll(e.ChildList())
	case *doctree.Transition:
		// leaf

	case *doctree.Paragraph:
		out.Children = buildAll(e.ChildList())
	case *doctree.LiteralBlock:
		out.Children = buildAll(e.ChildList())
	case *doctree.DoctestBlock:
		out.Children = buildAll(e.ChildList())
	case *doctree.Rubric:
		out.Children = buildAll(e.ChildList())
	case *doctree.SubstitutionDefinition:
		out.Children = buildAll(e.ChildList())
	case *doctree.Comment:
		out.Children = buildAll(e.ChildList())
	case *doctree.Target:
		out.Attrs = map[string]string{"refuri": e.Attr().RefURI}
	case *doctree.Raw:
		out.Text = joinLines(e.ChildList())
		out.Attrs = map[string]string{"format": joinLines(e.Attr().Format)}
	case *doctree.Image:
		out.Attrs = imageAttrs(e.Attr())

	case *doctree.Compound:
		out.Children = buildAll(e.ChildList())
	case *doctree.Container:
		out.Children = buildAll(e.ChildList())
	case *doctree.BulletList:
		for _, li := range e.ChildList() {
			out.Children = append(out.Children, buildListItem(li))
		}
	case *doctree.EnumeratedList:
		for _, li := range e.ChildList() {
			out.Children = append(out.Children, buildListItem(li))
		}
	case *doctree.BlockQuote:
		for _, c := range e.ChildList() {
			out.Children = append(out.Children, buildStruct(c))
		}
	case *doctree.Attention:
		out.Children = buildAll(e.ChildList())
	case *doctree.Hint:
		out.Children = buildAll(e.ChildList())
	case *doctree.Note:
		out.Children = buildAll(e.ChildList())
	case *doctree.Caution:
		out.Children = buildAll(e.ChildList())
	case *doctree.Danger:
		out.Children = buildAll(e.ChildList())
	case *doctree.Error:
		out.Children = buildAll(e.ChildList())
	case *doctree.Important:
		out.Children = buildAll(e.ChildList())
	case *doctree.Tip:
		out.Children = buildAll(e.ChildList())
	case *doctree.Warning:
		out.Children = buildAll(e.ChildList())
	case *doctree.Footnote:
		for _, c := range e.ChildList() {
			out.Children = append(out.Children, buildStruct(c))
		}
	case *doctree.Citation:
		for _, c := range e.ChildList() {
			out.Children = append(out.Children, buildStruct(c))
		}

	case *doctree.ListItem:
		out.Children = buildAll(e.ChildList())
	case *doctree.Attribution:
		out.Children = buildAll(e.ChildList())
	case *doctree.Label:
		out.Children = buildAll(e.ChildList())

	case *doctree.Text:
		out.Text = e.Value
	case *doctree.Emphasis:
		out.Children = buildAll(e.ChildList())
	case *doctree.Literal:
		out.Text = joinLines(e.ChildList())
	case *doctree.Reference:
		out.Attrs = map[string]string{"refuri": e.Attr().RefURI, "refid": e.Attr().RefID}
		out.Children = buildAll(e.ChildList())
	case *doctree.Strong:
		out.Children = buildAll(e.ChildList())
	case *doctree.FootnoteReference:
		out.Attrs = map[string]string{"refid": e.Attr().RefID}
		out.Children = buildAll(e.ChildList())
	case *doctree.CitationReference:
		out.Attrs = map[string]string{"refid": e.Attr().RefID}
		out.Children = buildAll(e.ChildList())
	case *doctree.SubstitutionReference:
		out.Children = buildAll(e.ChildList())
	case *doctree.TitleReference:
		out.Children = buildAll(e.ChildList())
	case *doctree.Abbreviation:
		out.Children = buildAll(e.ChildList())
	case *doctree.Acronym:
		out.Children = buildAll(e.ChildList())
	case *doctree.Superscript:
		out.Children = buildAll(e.ChildList())
	case *doctree.Subscript:
		out.Children = buildAll(e.ChildList())
	case *doctree.Inline:
		out.Children = buildAll(e.ChildList())
	case *doctree.Problematic:
		out.Children = buildAll(e.ChildList())
	case *doctree.Generated:
		out.Children = buildAll(e.ChildList())
	case *doctree.TargetInline:
		out.Attrs = map[string]string{"refuri": e.Attr().RefURI}
	case *doctree.RawInline:
		out.Text = joinLines(e.ChildList())
		out.Attrs = map[string]string{"format": joinLines(e.Attr().Format)}
	case *doctree.ImageInline:
		out.Attrs = imageAttrs(e.Attr())
	}

	return out
}

func buildListItem(li *doctree.ListItem) Node {
	return buildStruct(li)
}

func buildAll[T doctree.Node](items []T) []Node {
	out := make([]Node, 0, len(items))
	for _, it := range items {
		out = append(out, buildStruct(it))
	}
	return out
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

func imageAttrs(extra *doctree.ImageExtra) map[string]string {
	attrs := map[string]string{"uri": extra.URI}
	if extra.Alt != "" {
		attrs["alt"] = extra.Alt
	}
	if extra.Target != "" {
		attrs["target"] = extra.Target
	}
	if extra.Width != nil {
		attrs["width"] = extra.Width.String()
	}
	if extra.Height != nil {
		attrs["height"] = extra.Height.String()
	}
	return attrs
}
