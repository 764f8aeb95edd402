// Package convert performs stage B of the pipeline: turning the
// labeled span stream rstparse produces into a typed doctree,
// including the reconstruction of nested sections from a flat
// sequence of titles and their adornment characters (spec.md §4.B).
package convert

import (
	"fmt"

	"github.com/rstkit/rst/doctree"
	"github.com/rstkit/rst/rstparse"
)

type adornStyle int

const (
	styleSingle adornStyle = iota
	styleDouble
)

type adornKind struct {
	style adornStyle
	char  byte
}

// sectionAppender is satisfied by both *doctree.Document and
// *doctree.Section: both own a StructuralSubElement child list, so
// either can be the current insertion point while walking titles.
type sectionAppender interface {
	AppendChild(doctree.StructuralSubElement)
}

// sectionState is the kinds/path state machine from spec.md §4.B.
// kinds grows monotonically for the lifetime of the document; path
// tracks which section is presently open at each depth, with nil
// entries for depths skipped when a shallower title re-occurs and a
// brand-new adornment opens deeper than the next sequential depth.
type sectionState struct {
	doc   *doctree.Document
	kinds []adornKind
	path  []*doctree.Section
}

func (s *sectionState) parent() sectionAppender {
	for i := len(s.path) - 1; i >= 0; i-- {
		if s.path[i] != nil {
			return s.path[i]
		}
	}
	return s.doc
}

func (s *sectionState) indexOf(k adornKind) (int, bool) {
	for i, existing := range s.kinds {
		if existing == k {
			return i, true
		}
	}
	return 0, false
}

func (s *sectionState) openSection(title *doctree.Title, k adornKind) {
	var depth int
	if i, ok := s.indexOf(k); ok {
		depth = i
	} else {
		depth = len(s.kinds)
		s.kinds = append(s.kinds, k)
	}

	if depth < len(s.path) {
		s.path = s.path[:depth]
	}
	for len(s.path) < depth {
		s.path = append(s.path, nil)
	}

	sec := doctree.NewSection(nil)
	if len(title.ChildList()) > 0 {
		sec.AddID(doctree.NormalizeID(titleText(title)))
	}

	parent := s.parent()
	sec.AppendChild(title)
	parent.AppendChild(sec)
	s.path = append(s.path, sec)
}

func titleText(t *doctree.Title) string {
	var out string
	for _, c := range t.ChildList() {
		if txt, ok := c.(*doctree.Text); ok {
			out += txt.Value
		}
	}
	return out
}

// Document converts a root "document" span into a doctree.Document.
func Document(root rstparse.Pair) (*doctree.Document, error) {
	if root.Rule() != rstparse.RuleDocument {
		return nil, fmt.Errorf("convert: expected document root, got %s", root.Rule())
	}

	doc := &doctree.Document{}
	state := &sectionState{doc: doc}

	for _, child := range root.Children() {
		switch child.Rule() {
		case rstparse.RuleTitleSingle:
			title, k, err := convertTitleSingle(child)
			if err != nil {
				return nil, err
			}
			state.openSection(title, k)
		case rstparse.RuleTitleDouble:
			title, k, err := convertTitleDouble(child)
			if err != nil {
				return nil, err
			}
			state.openSection(title, k)
		case rstparse.RuleTransition:
			state.parent().AppendChild(&doctree.Transition{})
		default:
			elem, err := convertBlock(child)
			if err != nil {
				return nil, err
			}
			if elem != nil {
				state.parent().AppendChild(elem)
			}
		}
	}

	return doc, nil
}

func convertTitleSingle(p rstparse.Pair) (*doctree.Title, adornKind, error) {
	children := p.Children()
	if len(children) != 2 {
		return nil, adornKind{}, fmt.Errorf("convert: title_single at line %d wants 2 children, got %d", p.Line(), len(children))
	}
	lineText := children[0].Text()
	adorn := children[1].Text()
	if len(adorn) == 0 {
		return nil, adornKind{}, fmt.Errorf("convert: title_single at line %d has empty adornment", p.Line())
	}
	title := doctree.NewTitle(convertInline(children[0].Children()))
	_ = lineText
	return title, adornKind{style: styleSingle, char: adorn[0]}, nil
}

func convertTitleDouble(p rstparse.Pair) (*doctree.Title, adornKind, error) {
	children := p.Children()
	if len(children) != 3 {
		return nil, adornKind{}, fmt.Errorf("convert: title_double at line %d wants 3 children, got %d", p.Line(), len(children))
	}
	overline := children[0].Text()
	if len(overline) == 0 {
		return nil, adornKind{}, fmt.Errorf("convert: title_double at line %d has empty adornment", p.Line())
	}
	title := doctree.NewTitle(convertInline(children[1].Children()))
	return title, adornKind{style: styleDouble, char: overline[0]}, nil
}
