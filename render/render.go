// Package render implements stage E of the pipeline: turning a
// resolved doctree into an output format. The HTML renderer is the
// primary target (spec.md §4.E); JSON and XML serializers and the
// RawMarkdown/SafeHTML extensions round out the Output formats section
// of spec.md §6 for a complete implementation.
//
// The original implementation's htmlrenderer.rs walks the tree with
// one method per kind (the same Visit-shaped open hierarchy
// traverse.go already carries for Go). HTML needs bespoke per-kind
// output and stateful concerns (section depth, footnote grouping) a
// generic walk can't express cleanly, so it is hand-written here
// rather than driven through traverse.Walk, the same way
// resolve's pass3 hand-writes its rewrite instead of reusing Walk.
package render

import "strings"

// Options configures a render. Standalone wraps HTML output in a full
// document with an embedded stylesheet (spec.md §6); Sanitize routes
// Raw/RawInline content through bluemonday before embedding it,
// for documents of unknown trust.
type Options struct {
	Standalone bool
	Sanitize   bool
}

// htmlEscapeReplacer implements spec.md §4.E's five-character escape
// table for both text content and attribute values.
var htmlEscapeReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(s string) string {
	return htmlEscapeReplacer.Replace(s)
}

// footnoteSymbols is the fixed marker cycle spec.md §6 defines for
// Symbol-class footnotes, indexed from 1.
var footnoteSymbols = []rune{'*', '†', '‡', '§', '¶', '#', '♠', '♥', '♦', '♣'}

func footnoteSymbol(n int) string {
	if n <= 0 {
		return "?"
	}
	idx := (n - 1) % len(footnoteSymbols)
	return string(footnoteSymbols[idx])
}
