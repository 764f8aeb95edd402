package render

import (
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/rstkit/rst/doctree"
)

// XML serializes a resolved document to its IR form as an etree
// document: one <node> element per doctree element, carrying common
// attributes as space-joined lists and kind-specific attrs as
// key/value children, with ParseXML as its inverse for the round-trip
// property spec.md §8 names.
func XML(doc *doctree.Document) (string, error) {
	out := etree.NewDocument()
	out.SetRoot(nodeToElement(Build(doc)))
	out.Indent(2)
	return out.WriteToString()
}

// ParseXML reads back a document produced by XML into its IR form.
func ParseXML(s string) (Node, error) {
	in := etree.NewDocument()
	if err := in.ReadFromString(s); err != nil {
		return Node{}, err
	}
	return elementToNode(in.Root()), nil
}

func nodeToElement(n Node) *etree.Element {
	el := etree.NewElement("node")
	el.CreateAttr("kind", n.Kind)
	if len(n.IDs) > 0 {
		el.CreateAttr("ids", strings.Join(n.IDs, " "))
	}
	if len(n.Names) > 0 {
		el.CreateAttr("names", strings.Join(n.Names, " "))
	}
	if len(n.Classes) > 0 {
		el.CreateAttr("classes", strings.Join(n.Classes, " "))
	}

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrEl := el.CreateElement("attr")
		attrEl.CreateAttr("key", k)
		attrEl.SetText(n.Attrs[k])
	}

	if n.Text != "" {
		el.CreateElement("text").SetText(n.Text)
	}
	for _, c := range n.Children {
		el.AddChild(nodeToElement(c))
	}
	return el
}

func elementToNode(el *etree.Element) Node {
	n := Node{Kind: el.SelectAttrValue("kind", "")}
	if v := el.SelectAttrValue("ids", ""); v != "" {
		n.IDs = strings.Fields(v)
	}
	if v := el.SelectAttrValue("names", ""); v != "" {
		n.Names = strings.Fields(v)
	}
	if v := el.SelectAttrValue("classes", ""); v != "" {
		n.Classes = strings.Fields(v)
	}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "attr":
			if n.Attrs == nil {
				n.Attrs = map[string]string{}
			}
			n.Attrs[child.SelectAttrValue("key", "")] = child.Text()
		case "text":
			n.Text = child.Text()
		case "node":
			n.Children = append(n.Children, elementToNode(child))
		}
	}
	return n
}
