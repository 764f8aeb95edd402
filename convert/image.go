package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rstkit/rst/doctree"
	"github.com/rstkit/rst/rstparse"
)

var imageOptionRe = regexp.MustCompile(`^:(\w+):\s*(.*)$`)

// convertImage parses an image directive's URI and field-list options
// into an ImageExtra. An option docutils doesn't recognize for the
// image directive is a fatal conversion error (spec.md §4.B, §7),
// matching the fail-fast posture resolve and render both depend on.
func convertImage(p rstparse.Pair) (doctree.StructuralSubElement, error) {
	children := p.Children()
	if len(children) == 0 {
		return nil, fmt.Errorf("convert: image at line %d has no uri", p.Line())
	}
	extra := doctree.ImageExtra{URI: children[0].Text()}
	img := doctree.NewImage(extra)

	for _, opt := range children[1:] {
		m := imageOptionRe.FindStringSubmatch(opt.Text())
		if m == nil {
			return nil, fmt.Errorf("convert: malformed image option %q at line %d", opt.Text(), p.Line())
		}
		key, val := strings.ToLower(m[1]), strings.TrimSpace(m[2])
		if err := applyImageOption(img, key, val, p.Line()); err != nil {
			return nil, err
		}
	}
	return img, nil
}

func applyImageOption(img *doctree.Image, key, val string, line int) error {
	extra := img.Attr()
	switch key {
	case "alt":
		extra.Alt = val
	case "height":
		m, err := doctree.ParseMeasure(val)
		if err != nil {
			return fmt.Errorf("convert: image height at line %d: %w", line, err)
		}
		extra.Height = &m
	case "width":
		m, err := doctree.ParseMeasure(val)
		if err != nil {
			return fmt.Errorf("convert: image width at line %d: %w", line, err)
		}
		extra.Width = &m
	case "scale":
		s := strings.TrimSuffix(val, "%")
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return fmt.Errorf("convert: image scale %q at line %d: %w", val, line, err)
		}
		scale := uint8(n)
		extra.Scale = &scale
	case "align":
		a, err := doctree.ParseAlignHV(val)
		if err != nil {
			return fmt.Errorf("convert: image align at line %d: %w", line, err)
		}
		extra.Align = &a
	case "target":
		extra.Target = val
	case "class":
		img.SetClasses(append(img.Classes(), strings.Fields(val)...))
	case "name":
		img.AddName(doctree.WhitespaceNormalizeName(val))
	default:
		return fmt.Errorf("convert: unknown image option %q at line %d", key, line)
	}
	return nil
}
