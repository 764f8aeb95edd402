package render

import "github.com/microcosm-cc/bluemonday"

// safePolicy is periwiki's choice for user-submitted wiki markdown
// (db/sqlite.go stores raw revisions; the render path is where it
// sanitizes before serving). A UGC policy permits the common
// formatting tags Raw/RawInline content plausibly carries without
// opening up script or style injection.
var safePolicy = bluemonday.UGCPolicy()

// sanitizeHTML strips unsafe markup from an HTML fragment destined for
// Raw/RawInline embedding, per SafeHTML (spec.md §3 domain stack).
func sanitizeHTML(html string) string {
	return safePolicy.Sanitize(html)
}
