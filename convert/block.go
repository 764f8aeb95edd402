package convert

import (
	"fmt"
	"strings"

	"github.com/rstkit/rst/doctree"
	"github.com/rstkit/rst/rstparse"
)

// convertBlock converts one top-level (non-title, non-transition) span
// into the doctree element it denotes. A nil, nil result means the
// span carries no tree node of its own (not currently reachable, kept
// for symmetry with spec.md §4.B's conversion table).
func convertBlock(p rstparse.Pair) (doctree.StructuralSubElement, error) {
	switch p.Rule() {
	case rstparse.RuleParagraph:
		return doctree.NewParagraph(convertInline(p.Children())), nil

	case rstparse.RuleTarget:
		return convertTarget(p)

	case rstparse.RuleSubstitutionDef:
		return convertSubstitutionDef(p)

	case rstparse.RuleImage:
		return convertImage(p)

	case rstparse.RuleBulletList:
		return convertBulletList(p)

	case rstparse.RuleEnumeratedList:
		return convertEnumeratedList(p)

	case rstparse.RuleAdmonitionGen:
		return convertAdmonition(p)

	case rstparse.RuleComment:
		return doctree.NewComment(doctree.CommentExtra{}, []doctree.TextOrInlineElement{doctree.NewText(p.Text())}), nil

	case rstparse.RuleLiteralBlock:
		return doctree.NewLiteralBlock(doctree.LiteralBlockExtra{}, []doctree.TextOrInlineElement{doctree.NewText(p.Text())}), nil

	case rstparse.RuleBlockQuote:
		quote := doctree.NewParagraph(convertInline(p.Children()))
		return doctree.NewBlockQuote([]doctree.SubBlockQuote{quote}), nil

	case rstparse.RuleFootnoteDef:
		return convertFootnoteDef(p)

	case rstparse.RuleCitationDef:
		return convertCitationDef(p)

	default:
		return nil, fmt.Errorf("convert: unhandled top-level rule %s at line %d", p.Rule(), p.Line())
	}
}

func convertTarget(p rstparse.Pair) (doctree.StructuralSubElement, error) {
	children := p.Children()
	if len(children) != 2 {
		return nil, fmt.Errorf("convert: target at line %d wants 2 children, got %d", p.Line(), len(children))
	}
	name := doctree.WhitespaceNormalizeName(children[0].Text())
	uri := children[1].Text()
	extra := doctree.TargetExtra{RefURI: uri, RefName: []string{name}}
	t := doctree.NewTarget(extra)
	t.AddName(name)
	return t, nil
}

func convertSubstitutionDef(p rstparse.Pair) (doctree.StructuralSubElement, error) {
	children := p.Children()
	if len(children) != 2 {
		return nil, fmt.Errorf("convert: substitution_def at line %d wants 2 children, got %d", p.Line(), len(children))
	}
	name := doctree.WhitespaceNormalizeName(children[0].Text())
	body := convertInline(children[1].Children())
	def := doctree.NewSubstitutionDefinition(doctree.SubstitutionDefinitionExtra{}, body)
	def.AddName(name)
	return def, nil
}

func convertBulletList(p rstparse.Pair) (doctree.StructuralSubElement, error) {
	var items []*doctree.ListItem
	for _, itemPair := range p.Children() {
		items = append(items, doctree.NewListItem([]doctree.BodyElement{doctree.NewParagraph(convertInline(itemPair.Children()))}))
	}
	return doctree.NewBulletList(doctree.BulletListExtra{Bullet: "-"}, items), nil
}

func convertEnumeratedList(p rstparse.Pair) (doctree.StructuralSubElement, error) {
	var items []*doctree.ListItem
	for _, itemPair := range p.Children() {
		items = append(items, doctree.NewListItem([]doctree.BodyElement{doctree.NewParagraph(convertInline(itemPair.Children()))}))
	}
	extra := doctree.EnumeratedListExtra{EnumType: doctree.EnumArabic, Suffix: "."}
	return doctree.NewEnumeratedList(extra, items), nil
}

func convertAdmonition(p rstparse.Pair) (doctree.StructuralSubElement, error) {
	children := p.Children()
	if len(children) != 2 {
		return nil, fmt.Errorf("convert: admonition_gen at line %d wants 2 children, got %d", p.Line(), len(children))
	}
	kind := children[0].Text()
	body := []doctree.BodyElement{doctree.NewParagraph(convertInline(children[1].Children()))}
	switch kind {
	case "note":
		n := &doctree.Note{}
		n.SetChildren(body)
		return n, nil
	case "warning":
		w := &doctree.Warning{}
		w.SetChildren(body)
		return w, nil
	case "hint":
		h := &doctree.Hint{}
		h.SetChildren(body)
		return h, nil
	case "attention":
		a := &doctree.Attention{}
		a.SetChildren(body)
		return a, nil
	case "caution":
		c := &doctree.Caution{}
		c.SetChildren(body)
		return c, nil
	case "danger":
		d := &doctree.Danger{}
		d.SetChildren(body)
		return d, nil
	case "error":
		e := &doctree.Error{}
		e.SetChildren(body)
		return e, nil
	case "important":
		i := &doctree.Important{}
		i.SetChildren(body)
		return i, nil
	case "tip":
		t := &doctree.Tip{}
		t.SetChildren(body)
		return t, nil
	default:
		return nil, fmt.Errorf("convert: unknown admonition type %q at line %d", kind, p.Line())
	}
}

// convertFootnoteDef and convertCitationDef build footnote/citation
// nodes from a label span and a single paragraph body; resolve fills
// in the numbering that depends on the whole document (spec.md §4.D).
// Backrefs is left empty by both stages.
func convertFootnoteDef(p rstparse.Pair) (doctree.StructuralSubElement, error) {
	children := p.Children()
	if len(children) != 2 {
		return nil, fmt.Errorf("convert: footnote_def at line %d wants 2 children, got %d", p.Line(), len(children))
	}
	label := children[0].Text()
	body := doctree.NewParagraph(convertInline(children[1].Children()))

	var extra doctree.FootnoteExtra
	var name string
	switch {
	case label == "#":
		extra.Auto = doctree.AutoFootnote(doctree.FootnoteNumber)
	case strings.HasPrefix(label, "#"):
		name = doctree.WhitespaceNormalizeName(label[1:])
		extra.Auto = doctree.AutoFootnote(doctree.FootnoteNumber)
	case label == "*":
		extra.Auto = doctree.AutoFootnote(doctree.FootnoteSymbol)
	default:
		// A manual numeric label reserves its slot in the Number
		// bucket but does not set Auto, per spec.md §4.D.
	}

	f := doctree.NewFootnote(extra, []doctree.SubFootnote{body})
	if name != "" {
		f.AddName(name)
	} else if !extra.Auto.IsAuto() {
		f.AddID(doctree.NormalizeID("footnote-" + label))
	}
	return f, nil
}

func convertCitationDef(p rstparse.Pair) (doctree.StructuralSubElement, error) {
	children := p.Children()
	if len(children) != 2 {
		return nil, fmt.Errorf("convert: citation_def at line %d wants 2 children, got %d", p.Line(), len(children))
	}
	label := doctree.WhitespaceNormalizeName(children[0].Text())
	body := doctree.NewParagraph(convertInline(children[1].Children()))
	c := doctree.NewCitation(doctree.CitationExtra{}, []doctree.SubFootnote{body})
	c.AddName(label)
	return c, nil
}
