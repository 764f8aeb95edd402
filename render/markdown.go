package render

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// markdownConverter is shared across calls; goldmark's Markdown value
// holds no per-document state, the same way catmd's concatenation
// pipeline never needed one either (it only ever moved Markdown bytes
// around, never parsed them).
var markdownConverter = goldmark.New()

// renderRawMarkdown implements the RawMarkdown extension: a Raw or
// RawInline node whose format contains "markdown" is parsed with
// goldmark and the resulting HTML fragment is embedded, optionally
// passed through SafeHTML first.
func renderRawMarkdown(source string, sanitize bool) string {
	var buf bytes.Buffer
	if err := markdownConverter.Convert([]byte(source), &buf); err != nil {
		return escapeHTML(source)
	}
	out := buf.String()
	if sanitize {
		out = sanitizeHTML(out)
	}
	return out
}
