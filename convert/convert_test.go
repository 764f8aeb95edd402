package convert

import (
	"testing"

	"github.com/rstkit/rst/doctree"
	"github.com/rstkit/rst/rstparse"
)

func parseDoc(t *testing.T, src string) *doctree.Document {
	t.Helper()
	root, err := rstparse.Parse(src)
	if err != nil {
		t.Fatalf("rstparse.Parse: %v", err)
	}
	doc, err := Document(root)
	if err != nil {
		t.Fatalf("convert.Document: %v", err)
	}
	return doc
}

func TestDocumentSingleParagraph(t *testing.T) {
	doc := parseDoc(t, "Hello *world*.\n")
	children := doc.ChildList()
	if len(children) != 1 {
		t.Fatalf("got %d children, want 1", len(children))
	}
	para, ok := children[0].(*doctree.Paragraph)
	if !ok {
		t.Fatalf("child is %T, want *doctree.Paragraph", children[0])
	}
	if len(para.ChildList()) != 3 {
		t.Fatalf("paragraph has %d inline children, want 3 (text, emphasis, text)", len(para.ChildList()))
	}
}

func TestDocumentNestsSectionsByAdornment(t *testing.T) {
	src := "Top\n===\n\nSub\n---\n\nBody one.\n\nNext Top\n========\n\nBody two.\n"
	doc := parseDoc(t, src)
	top := doc.ChildList()
	if len(top) != 2 {
		t.Fatalf("got %d top-level sections, want 2; children=%#v", len(top), top)
	}
	sec0, ok := top[0].(*doctree.Section)
	if !ok {
		t.Fatalf("top[0] is %T, want *doctree.Section", top[0])
	}
	inner := sec0.ChildList()
	if len(inner) != 2 {
		t.Fatalf("section 0 has %d children, want 2 (title, nested section); got %#v", len(inner), inner)
	}
	if _, ok := inner[1].(*doctree.Section); !ok {
		t.Fatalf("section 0's second child is %T, want nested *doctree.Section", inner[1])
	}
}

func TestDocumentSectionIDIsLowercasedSlug(t *testing.T) {
	doc := parseDoc(t, "First Section\n=============\n\nBody.\n")
	sec, ok := doc.ChildList()[0].(*doctree.Section)
	if !ok {
		t.Fatalf("child is %T, want *doctree.Section", doc.ChildList()[0])
	}
	if len(sec.IDs()) == 0 || sec.IDs()[0] != "first-section" {
		t.Errorf("section ids = %v, want [first-section]", sec.IDs())
	}
}

// TestDocumentReopenedSectionPadsSkippedDepth exercises the None
// padding branch of the kinds/path state machine: depth 0 ('=') opens,
// depth 1 ('-') opens under it, a new depth-0 title reuses '=' and
// truncates path back to length 0, then a brand-new adornment ('~')
// is encountered for the first time at kinds index 2 while only one
// level (depth 0) is currently open, so the intervening depth must be
// padded with a nil path entry.
func TestDocumentReopenedSectionPadsSkippedDepth(t *testing.T) {
	src := "" +
		"First\n=====\n\n" +
		"Nested\n------\n\n" +
		"Second\n======\n\n" +
		"Deep\n~~~~\n\n" +
		"Leaf body.\n"
	doc := parseDoc(t, src)
	top := doc.ChildList()
	if len(top) != 2 {
		t.Fatalf("got %d top-level sections, want 2", len(top))
	}
	second, ok := top[1].(*doctree.Section)
	if !ok {
		t.Fatalf("top[1] is %T, want *doctree.Section", top[1])
	}
	innerChildren := second.ChildList()
	if len(innerChildren) != 2 {
		t.Fatalf("second section has %d children, want 2 (title, deep section)", len(innerChildren))
	}
	deep, ok := innerChildren[1].(*doctree.Section)
	if !ok {
		t.Fatalf("second section's second child is %T, want *doctree.Section nested directly under it", innerChildren[1])
	}
	deepTitle, ok := deep.ChildList()[0].(*doctree.Title)
	if !ok {
		t.Fatalf("deep section's first child is %T, want *doctree.Title", deep.ChildList()[0])
	}
	if got := titleText(deepTitle); got != "Deep" {
		t.Errorf("deep section title = %q, want Deep", got)
	}
}

func TestConvertImageOptions(t *testing.T) {
	src := ".. image:: pic.png\n   :alt: a picture\n   :scale: 50%\n   :align: center\n"
	doc := parseDoc(t, src)
	children := doc.ChildList()
	if len(children) != 1 {
		t.Fatalf("got %d children, want 1", len(children))
	}
	img, ok := children[0].(*doctree.Image)
	if !ok {
		t.Fatalf("child is %T, want *doctree.Image", children[0])
	}
	extra := img.Attr()
	if extra.URI != "pic.png" {
		t.Errorf("URI = %q, want pic.png", extra.URI)
	}
	if extra.Alt != "a picture" {
		t.Errorf("Alt = %q, want %q", extra.Alt, "a picture")
	}
	if extra.Scale == nil || *extra.Scale != 50 {
		t.Errorf("Scale = %v, want 50", extra.Scale)
	}
	if extra.Align == nil || *extra.Align != doctree.AlignHVCenter {
		t.Errorf("Align = %v, want center", extra.Align)
	}
}

func TestConvertImageUnknownOptionFails(t *testing.T) {
	src := ".. image:: pic.png\n   :bogus: nope\n"
	root, err := rstparse.Parse(src)
	if err != nil {
		t.Fatalf("rstparse.Parse: %v", err)
	}
	if _, err := Document(root); err == nil {
		t.Fatal("expected error for unknown image option, got nil")
	}
}

func TestConvertFootnoteDefAutoAndManual(t *testing.T) {
	src := ".. [#] auto one\n\n.. [#named] auto two\n\n.. [2] manual\n"
	doc := parseDoc(t, src)
	children := doc.ChildList()
	if len(children) != 3 {
		t.Fatalf("got %d children, want 3", len(children))
	}
	anon, ok := children[0].(*doctree.Footnote)
	if !ok || !anon.IsAuto() {
		t.Fatalf("first footnote = %#v, want auto", children[0])
	}
	named, ok := children[1].(*doctree.Footnote)
	if !ok || !named.IsAuto() || len(named.Names()) != 1 || named.Names()[0] != "named" {
		t.Fatalf("second footnote = %#v, want auto named %q", children[1], "named")
	}
	manual, ok := children[2].(*doctree.Footnote)
	if !ok || manual.IsAuto() {
		t.Fatalf("third footnote = %#v, want manual", children[2])
	}
}

// fakePair lets convertReferenceAuto be exercised directly with a
// candidate that the real grammar would only ever hand it pre-scheme
// (http(s)://...), to reach the malformed-URL branch.
type fakePair struct {
	rule     rstparse.Rule
	text     string
	children []rstparse.Pair
}

func (p fakePair) Rule() rstparse.Rule       { return p.rule }
func (p fakePair) Text() string              { return p.text }
func (p fakePair) Line() int                 { return 1 }
func (p fakePair) Children() []rstparse.Pair { return p.children }

func TestConvertReferenceAutoFallsBackToTextOnInvalidURL(t *testing.T) {
	p := fakePair{rule: rstparse.RuleReferenceAuto, text: "http://%zz"}
	el := convertReferenceAuto(p)
	text, ok := el.(*doctree.Text)
	if !ok || text.Value != "http://%zz" {
		t.Errorf("convertReferenceAuto(invalid URL) = %#v, want plain text node", el)
	}
}

func TestConvertReferenceAutoBuildsReferenceForValidURL(t *testing.T) {
	p := fakePair{rule: rstparse.RuleReferenceAuto, text: "http://example.com/"}
	el := convertReferenceAuto(p)
	ref, ok := el.(*doctree.Reference)
	if !ok || ref.Attr().RefURI != "http://example.com/" {
		t.Errorf("convertReferenceAuto(valid URL) = %#v, want Reference to http://example.com/", el)
	}
}

func TestConvertTargetAndSubstitution(t *testing.T) {
	src := ".. _home: http://example.com/\n\n.. |x| replace:: *y*\n"
	doc := parseDoc(t, src)
	children := doc.ChildList()
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	target, ok := children[0].(*doctree.Target)
	if !ok {
		t.Fatalf("first child is %T, want *doctree.Target", children[0])
	}
	if target.Attr().RefURI != "http://example.com/" {
		t.Errorf("RefURI = %q, want http://example.com/", target.Attr().RefURI)
	}
	if _, ok := children[1].(*doctree.SubstitutionDefinition); !ok {
		t.Fatalf("second child is %T, want *doctree.SubstitutionDefinition", children[1])
	}
}
