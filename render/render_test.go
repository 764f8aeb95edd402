package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/rstkit/rst/convert"
	"github.com/rstkit/rst/doctree"
	"github.com/rstkit/rst/resolve"
	"github.com/rstkit/rst/rstparse"
)

func mustDoc(t *testing.T, src string) *doctree.Document {
	t.Helper()
	root, err := rstparse.Parse(src)
	require.NoError(t, err)
	doc, err := convert.Document(root)
	require.NoError(t, err)
	resolve.Resolve(doc)
	return doc
}

// TestHTMLSingleParagraph is spec.md §8 boundary scenario 1.
func TestHTMLSingleParagraph(t *testing.T) {
	doc := mustDoc(t, "Simple String\n")
	require.Equal(t, "<p>Simple String</p>", HTML(doc, Options{}))
}

// TestHTMLInlineMarkup is spec.md §8 boundary scenario 2.
func TestHTMLInlineMarkup(t *testing.T) {
	doc := mustDoc(t, "Simple String with *emph* and **strong**\n")
	want := "<p>Simple String with <em>emph</em> and <strong>strong</strong></p>"
	require.Equal(t, want, HTML(doc, Options{}))
}

// TestHTMLNamedReference is spec.md §8 boundary scenario 3.
func TestHTMLNamedReference(t *testing.T) {
	src := "A `named reference`_ here.\n\n.. _`named reference`: http://example.com/\n"
	doc := mustDoc(t, src)
	require.Contains(t, HTML(doc, Options{}), `<a href="http://example.com/">named reference</a>`)
}

// TestHTMLSubstitution is spec.md §8 boundary scenario 4.
func TestHTMLSubstitution(t *testing.T) {
	src := "A |subst|.\n\n.. |subst| replace:: text substitution\n"
	doc := mustDoc(t, src)
	require.Equal(t, "<p>A text substitution.</p>", HTML(doc, Options{}))
}

// TestHTMLUndefinedSubstitution is spec.md §8 boundary scenario 5: no
// infinite loop, and the literal markup survives inside a problematic
// marker.
func TestHTMLUndefinedSubstitution(t *testing.T) {
	doc := mustDoc(t, "A |missing| here.\n")
	out := HTML(doc, Options{})
	require.Contains(t, out, `<span class="problematic">`)
	require.Contains(t, out, "|missing|")
}

// TestHTMLSectionHeadingLevels is spec.md §8 boundary scenario 6: a
// title whose adornment is brand new to the whole document still
// nests directly under whichever section is presently open, so the
// rendered heading depth tracks real tree nesting (two levels) rather
// than the count of distinct adornment styles seen so far (three).
func TestHTMLSectionHeadingLevels(t *testing.T) {
	src := "" +
		"First\n=====\n\n" +
		"Nested\n------\n\n" +
		"Second\n======\n\n" +
		"Deep\n~~~~\n\n" +
		"Leaf body.\n"
	doc := mustDoc(t, src)
	out := HTML(doc, Options{})

	dom, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	require.Equal(t, 2, dom.Find("h1").Length())
	require.Equal(t, 2, dom.Find("h2").Length())
	require.Equal(t, 0, dom.Find("h3").Length(), "a brand new adornment nesting directly under an open section must not add a third heading level")

	dom.Find("h2").Each(func(_ int, h2 *goquery.Selection) {
		require.True(t, h2.Parent().Is("section"))
	})
}

func TestHTMLFootnoteGrouping(t *testing.T) {
	src := "See [#]_ and [#]_.\n\n.. [#] one\n\n.. [#] two\n"
	doc := mustDoc(t, src)
	out := HTML(doc, Options{})

	dom, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	lists := dom.Find("ol.footnotes")
	require.Equal(t, 1, lists.Length(), "consecutive footnotes share one list")
	require.Equal(t, 2, lists.Find("li").Length())
}

func TestHTMLStandaloneWrapsDocument(t *testing.T) {
	doc := mustDoc(t, "Simple String\n")
	out := HTML(doc, Options{Standalone: true})
	require.Contains(t, out, "<!doctype html>")
	require.Contains(t, out, "<style>")
	require.Contains(t, out, "<p>Simple String</p>")
}

func TestHTMLNonStandaloneOmitsWrapper(t *testing.T) {
	doc := mustDoc(t, "Simple String\n")
	out := HTML(doc, Options{})
	require.NotContains(t, out, "<html>")
}

func TestHTMLSymbolFootnoteUsesGlyph(t *testing.T) {
	src := "Sym [*]_.\n\n.. [*] star\n"
	doc := mustDoc(t, src)
	out := HTML(doc, Options{})
	require.Contains(t, out, ">*</a>")
	require.NotContains(t, out, ">1</a>")
}

func TestJSONIncludesKindAndText(t *testing.T) {
	doc := mustDoc(t, "Simple String\n")
	data, err := JSON(doc)
	require.NoError(t, err)
	require.Contains(t, string(data), `"kind": "Document"`)
	require.Contains(t, string(data), "Simple String")
}

// TestXMLRoundTrip is spec.md §8's round-trip property: rendering a
// minimal doctree to XML and back produces an equivalent tree.
func TestXMLRoundTrip(t *testing.T) {
	doc := mustDoc(t, "A `ref`_ with *emph*.\n\n.. _ref: http://example.com/\n")
	want := Build(doc)

	out, err := XML(doc)
	require.NoError(t, err)

	got, err := ParseXML(out)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("XML round trip changed the tree (-want +got):\n%s", diff)
	}
}
