// Package traverse implements stage C of the pipeline: the generic
// walk resolve's collection passes drive across the doctree, and the
// one-to-many child rewrite primitive resolve's passes use to delete
// and expand nodes in place.
//
// The original implementation expresses this as a pair of traits
// (Visit/VisitMut) with one method per category and one per concrete
// kind, each carrying a macro-generated default body that just
// recurses into the node's children (original_source/parser/src
// /transform/visit.rs, visit_mut.rs). Go has neither traits nor
// macros, so Visit here follows go/ast's Walk shape instead: a single
// Visitor interface and one Walk function that type-switches over
// every concrete kind and recurses — the category-dispatch methods
// the Rust source needs (visit_body_element, visit_sub_footnote, ...)
// collapse into ordinary case arms since Go's type switch already
// does that dispatch for free.
package traverse

import "github.com/rstkit/rst/doctree"

// Visitor is called once per node as Walk descends the tree. If Visit
// returns a non-nil Visitor, Walk uses it for the node's children;
// returning nil stops the descent below n.
type Visitor interface {
	Visit(n doctree.Node) (w Visitor)
}

// VisitorFunc adapts a plain function to a Visitor, the way
// http.HandlerFunc adapts a function to http.Handler.
type VisitorFunc func(n doctree.Node) Visitor

func (f VisitorFunc) Visit(n doctree.Node) Visitor { return f(n) }

// Walk recurses through n's children in document order, calling
// v.Visit on every node it reaches. It is immutable: the tree passed
// in is never mutated.
func Walk(v Visitor, n doctree.Node) {
	if n == nil {
		return
	}
	v = v.Visit(n)
	if v == nil {
		return
	}

	switch e := n.(type) {
	case *doctree.Document:
		walkAll(v, e.ChildList())
	case *doctree.Section:
		walkAll(v, e.ChildList())
	case *doctree.Topic:
		walkAll(v, e.ChildList())
	case *doctree.Sidebar:
		walkAll(v, e.ChildList())
	case *doctree.Title:
		walkAll(v, e.ChildList())
	case *doctree.Subtitle:
		walkAll(v, e.ChildList())
	case *doctree.Decoration:
		walkAll(v, e.ChildList())
	case *doctree.Docinfo:
		walkAll(v, e.ChildList())
	case *doctree.Transition:
		// leaf

	case *doctree.Author:
		walkAll(v, e.ChildList())
	case *doctree.Authors:
		walkAll(v, e.ChildList())
	case *doctree.Organization:
		walkAll(v, e.ChildList())
	case *doctree.Address:
		walkAll(v, e.ChildList())
	case *doctree.Contact:
		walkAll(v, e.ChildList())
	case *doctree.Version:
		walkAll(v, e.ChildList())
	case *doctree.Revision:
		walkAll(v, e.ChildList())
	case *doctree.Status:
		walkAll(v, e.ChildList())
	case *doctree.Date:
		walkAll(v, e.ChildList())
	case *doctree.Copyright:
		walkAll(v, e.ChildList())
	case *doctree.Field:
		walkAll(v, e.ChildList())

	case *doctree.Header:
		walkAll(v, e.ChildList())
	case *doctree.Footer:
		walkAll(v, e.ChildList())

	case *doctree.Paragraph:
		walkAll(v, e.ChildList())
	case *doctree.LiteralBlock:
		walkAll(v, e.ChildList())
	case *doctree.DoctestBlock:
		walkAll(v, e.ChildList())
	case *doctree.MathBlock:
		// string leaves
	case *doctree.Rubric:
		walkAll(v, e.ChildList())
	case *doctree.SubstitutionDefinition:
		walkAll(v, e.ChildList())
	case *doctree.Comment:
		walkAll(v, e.ChildList())
	case *doctree.Pending:
		// leaf
	case *doctree.Target:
		// leaf
	case *doctree.Raw:
		// string leaves
	case *doctree.Image:
		// leaf

	case *doctree.Compound:
		walkAll(v, e.ChildList())
	case *doctree.Container:
		walkAll(v, e.ChildList())
	case *doctree.BulletList:
		walkAll(v, e.ChildList())
	case *doctree.EnumeratedList:
		walkAll(v, e.ChildList())
	case *doctree.DefinitionList:
		walkAll(v, e.ChildList())
	case *doctree.FieldList:
		walkAll(v, e.ChildList())
	case *doctree.OptionList:
		walkAll(v, e.ChildList())
	case *doctree.LineBlock:
		walkAll(v, e.ChildList())
	case *doctree.BlockQuote:
		walkAll(v, e.ChildList())
	case *doctree.Admonition:
		walkAll(v, e.ChildList())
	case *doctree.Attention:
		walkAll(v, e.ChildList())
	case *doctree.Hint:
		walkAll(v, e.ChildList())
	case *doctree.Note:
		walkAll(v, e.ChildList())
	case *doctree.Caution:
		walkAll(v, e.ChildList())
	case *doctree.Danger:
		walkAll(v, e.ChildList())
	case *doctree.Error:
		walkAll(v, e.ChildList())
	case *doctree.Important:
		walkAll(v, e.ChildList())
	case *doctree.Tip:
		walkAll(v, e.ChildList())
	case *doctree.Warning:
		walkAll(v, e.ChildList())
	case *doctree.Footnote:
		walkAll(v, e.ChildList())
	case *doctree.Citation:
		walkAll(v, e.ChildList())
	case *doctree.SystemMessage:
		walkAll(v, e.ChildList())
	case *doctree.Figure:
		walkAll(v, e.ChildList())
	case *doctree.Table:
		walkAll(v, e.ChildList())

	case *doctree.TableGroup:
		walkAll(v, e.ChildList())
	case *doctree.TableHead:
		walkAll(v, e.ChildList())
	case *doctree.TableBody:
		walkAll(v, e.ChildList())
	case *doctree.TableRow:
		walkAll(v, e.ChildList())
	case *doctree.TableEntry:
		walkAll(v, e.ChildList())
	case *doctree.TableColspec:
		// leaf

	case *doctree.ListItem:
		walkAll(v, e.ChildList())
	case *doctree.DefinitionListItem:
		walkAll(v, e.ChildList())
	case *doctree.Term:
		walkAll(v, e.ChildList())
	case *doctree.Classifier:
		walkAll(v, e.ChildList())
	case *doctree.Definition:
		walkAll(v, e.ChildList())
	case *doctree.FieldName:
		walkAll(v, e.ChildList())
	case *doctree.FieldBody:
		walkAll(v, e.ChildList())
	case *doctree.OptionListItem:
		walkAll(v, e.ChildList())
	case *doctree.OptionGroup:
		walkAll(v, e.ChildList())
	case *doctree.Description:
		walkAll(v, e.ChildList())
	case *doctree.Option:
		walkAll(v, e.ChildList())
	case *doctree.OptionString:
		// string leaves
	case *doctree.OptionArgument:
		// string leaves
	case *doctree.Line:
		walkAll(v, e.ChildList())
	case *doctree.Attribution:
		walkAll(v, e.ChildList())
	case *doctree.Label:
		walkAll(v, e.ChildList())
	case *doctree.Caption:
		walkAll(v, e.ChildList())
	case *doctree.Legend:
		walkAll(v, e.ChildList())

	case *doctree.Text:
		// leaf
	case *doctree.Emphasis:
		walkAll(v, e.ChildList())
	case *doctree.Literal:
		// string leaves
	case *doctree.Reference:
		walkAll(v, e.ChildList())
	case *doctree.Strong:
		walkAll(v, e.ChildList())
	case *doctree.FootnoteReference:
		walkAll(v, e.ChildList())
	case *doctree.CitationReference:
		walkAll(v, e.ChildList())
	case *doctree.SubstitutionReference:
		walkAll(v, e.ChildList())
	case *doctree.TitleReference:
		walkAll(v, e.ChildList())
	case *doctree.Abbreviation:
		walkAll(v, e.ChildList())
	case *doctree.Acronym:
		walkAll(v, e.ChildList())
	case *doctree.Superscript:
		walkAll(v, e.ChildList())
	case *doctree.Subscript:
		walkAll(v, e.ChildList())
	case *doctree.Inline:
		walkAll(v, e.ChildList())
	case *doctree.Problematic:
		walkAll(v, e.ChildList())
	case *doctree.Generated:
		walkAll(v, e.ChildList())
	case *doctree.Math:
		// string leaves

	case *doctree.TargetInline:
		// string leaves
	case *doctree.RawInline:
		// string leaves
	case *doctree.ImageInline:
		// leaf
	}
}

// walkAll walks any child list whose element type implements
// doctree.Node, category interfaces and pointer lists such as
// []*ListItem alike. Kinds whose children are plain strings are leaves
// and never reach it.
func walkAll[C doctree.Node](v Visitor, children []C) {
	for _, c := range children {
		Walk(v, c)
	}
}
