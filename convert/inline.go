package convert

import (
	"net/url"
	"strings"

	"github.com/rstkit/rst/doctree"
	"github.com/rstkit/rst/rstparse"
)

// convertInline turns a slice of inline spans (as produceInline
// yields them) into the TextOrInlineElement sequence a Title,
// Paragraph or other text-bearing element holds as children.
func convertInline(pairs []rstparse.Pair) []doctree.TextOrInlineElement {
	out := make([]doctree.TextOrInlineElement, 0, len(pairs))
	for _, p := range pairs {
		if el := convertInlineOne(p); el != nil {
			out = append(out, el)
		}
	}
	return out
}

func convertInlineOne(p rstparse.Pair) doctree.TextOrInlineElement {
	switch p.Rule() {
	case rstparse.RuleStr:
		return doctree.NewText(p.Text())
	case rstparse.RuleEmph:
		e := &doctree.Emphasis{}
		e.SetChildren(convertInline(p.Children()))
		return e
	case rstparse.RuleStrong:
		s := &doctree.Strong{}
		s.SetChildren(convertInline(p.Children()))
		return s
	case rstparse.RuleLiteral:
		return doctree.NewLiteral([]string{p.Text()})
	case rstparse.RuleSubstitutionName:
		return doctree.NewSubstitutionReference(
			doctree.SubstitutionReferenceExtra{RefName: []string{doctree.WhitespaceNormalizeName(p.Text())}},
			[]doctree.TextOrInlineElement{doctree.NewText(p.Text())},
		)
	case rstparse.RuleFootnoteReference:
		return convertFootnoteReference(p.Text())
	case rstparse.RuleCitationReference:
		name := doctree.WhitespaceNormalizeName(p.Text())
		return doctree.NewCitationReference(
			doctree.CitationReferenceExtra{RefName: []string{name}},
			[]doctree.TextOrInlineElement{doctree.NewText(p.Text())},
		)
	case rstparse.RuleReferenceTarget:
		return convertReferenceTarget(p)
	case rstparse.RuleReferenceAuto:
		return convertReferenceAuto(p)
	default:
		return doctree.NewText(p.Text())
	}
}

// convertFootnoteReference implements the auto-class detection rule
// from spec.md §4.B: the first character of the label decides whether
// the reference is an anonymous/named auto-number ([#], [#named]), a
// symbolic auto-footnote ([*]), or a manually labeled one (a bare
// integer), in which case the label text is kept as the visible child.
func convertFootnoteReference(label string) *doctree.FootnoteReference {
	switch {
	case label == "#":
		return doctree.NewFootnoteReference(
			doctree.FootnoteReferenceExtra{Auto: doctree.AutoFootnote(doctree.FootnoteNumber)},
			nil,
		)
	case strings.HasPrefix(label, "#"):
		name := label[1:]
		return doctree.NewFootnoteReference(
			doctree.FootnoteReferenceExtra{
				RefName: []string{doctree.WhitespaceNormalizeName(name)},
				Auto:    doctree.AutoFootnote(doctree.FootnoteNumber),
			},
			nil,
		)
	case label == "*":
		return doctree.NewFootnoteReference(
			doctree.FootnoteReferenceExtra{Auto: doctree.AutoFootnote(doctree.FootnoteSymbol)},
			nil,
		)
	default:
		return doctree.NewFootnoteReference(
			doctree.FootnoteReferenceExtra{},
			[]doctree.TextOrInlineElement{doctree.NewText(label)},
		)
	}
}

func convertReferenceTarget(p rstparse.Pair) *doctree.Reference {
	children := p.Children()
	if len(children) != 1 {
		return doctree.NewReference(doctree.ReferenceExtra{}, []doctree.TextOrInlineElement{doctree.NewText(p.Text())})
	}
	name := doctree.WhitespaceNormalizeName(children[0].Text())
	return doctree.NewReference(
		doctree.ReferenceExtra{Name: name},
		[]doctree.TextOrInlineElement{doctree.NewText(p.Text())},
	)
}

// convertReferenceAuto builds a Reference from a bare URL or email
// span, the way the original's convert_reference_auto does. If the
// candidate text doesn't parse as an absolute URL, the span falls
// back to a plain text node instead of a dangling Reference.
func convertReferenceAuto(p rstparse.Pair) doctree.TextOrInlineElement {
	children := p.Children()
	if len(children) == 1 && children[0].Rule() == rstparse.RuleEmail {
		return doctree.NewReference(
			doctree.ReferenceExtra{RefURI: "mailto:" + children[0].Text()},
			[]doctree.TextOrInlineElement{doctree.NewText(p.Text())},
		)
	}

	parsed, err := url.Parse(p.Text())
	if err != nil || !parsed.IsAbs() {
		return doctree.NewText(p.Text())
	}

	return doctree.NewReference(
		doctree.ReferenceExtra{RefURI: p.Text()},
		[]doctree.TextOrInlineElement{doctree.NewText(p.Text())},
	)
}
