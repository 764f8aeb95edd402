package traverse

import (
	"testing"

	"github.com/rstkit/rst/doctree"
)

func TestWalkVisitsEveryDescendant(t *testing.T) {
	title := doctree.NewTitle([]doctree.TextOrInlineElement{doctree.NewText("Hi")})
	para := doctree.NewParagraph([]doctree.TextOrInlineElement{
		doctree.NewText("a "),
		func() *doctree.Emphasis {
			e := &doctree.Emphasis{}
			e.SetChildren([]doctree.TextOrInlineElement{doctree.NewText("b")})
			return e
		}(),
	})
	sec := doctree.NewSection([]doctree.StructuralSubElement{title, para})
	doc := doctree.NewDocument([]doctree.StructuralSubElement{sec})

	var kinds []doctree.Kind
	Walk(VisitorFunc(func(n doctree.Node) Visitor {
		kinds = append(kinds, n.Kind())
		return VisitorFunc(func(n doctree.Node) Visitor {
			kinds = append(kinds, n.Kind())
			return nil
		})
	}), doc)

	// The outer VisitorFunc only fires once (it returns a one-shot
	// visitor for doc's direct children); re-drive with a persistent
	// visitor to check full depth instead.
	kinds = nil
	var persistent VisitorFunc
	persistent = func(n doctree.Node) Visitor {
		kinds = append(kinds, n.Kind())
		return persistent
	}
	Walk(persistent, doc)

	want := []doctree.Kind{
		doctree.KindDocument,
		doctree.KindSection,
		doctree.KindTitle,
		doctree.KindText,
		doctree.KindParagraph,
		doctree.KindText,
		doctree.KindEmphasis,
		doctree.KindText,
	}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestWalkNilVisitorStopsDescent(t *testing.T) {
	para := doctree.NewParagraph([]doctree.TextOrInlineElement{doctree.NewText("x")})
	doc := doctree.NewDocument([]doctree.StructuralSubElement{para})

	var visited int
	Walk(VisitorFunc(func(n doctree.Node) Visitor {
		visited++
		if n.Kind() == doctree.KindParagraph {
			return nil
		}
		return VisitorFunc(func(n doctree.Node) Visitor { visited++; return nil })
	}), doc)

	if visited != 2 {
		t.Fatalf("visited %d nodes, want 2 (document, paragraph, no descent into text)", visited)
	}
}

func TestTransformChildrenDeletesAndSplices(t *testing.T) {
	items := []int{1, 2, 3, 4}
	out := TransformChildren(items, func(n int) []int {
		switch {
		case n == 2:
			return nil // delete
		case n == 3:
			return []int{30, 31} // splice
		default:
			return []int{n}
		}
	})
	want := []int{1, 30, 31, 4}
	if len(out) != len(want) {
		t.Fatalf("out = %v, want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}
