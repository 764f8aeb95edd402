package render

import (
	"encoding/json"

	"github.com/rstkit/rst/doctree"
)

// JSON serializes a resolved document to its IR form (render.Node),
// one JSON object per doctree element.
func JSON(doc *doctree.Document) ([]byte, error) {
	return json.MarshalIndent(Build(doc), "", "  ")
}
