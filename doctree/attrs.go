package doctree

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// AlignH and friends enumerate the small closed vocabularies docutils
// lifts from its DTD. They are modeled as distinct string-backed types
// rather than one shared string to keep the Extra struct fields self
// documenting, matching the one-enum-per-concern layout of the Rust
// source's attribute_types.rs.
type AlignH string

const (
	AlignHLeft   AlignH = "left"
	AlignHCenter AlignH = "center"
	AlignHRight  AlignH = "right"
)

type AlignV string

const (
	AlignVTop    AlignV = "top"
	AlignVMiddle AlignV = "middle"
	AlignVBottom AlignV = "bottom"
)

type AlignHV string

const (
	AlignHVTop    AlignHV = "top"
	AlignHVMiddle AlignHV = "middle"
	AlignHVBottom AlignHV = "bottom"
	AlignHVLeft   AlignHV = "left"
	AlignHVCenter AlignHV = "center"
	AlignHVRight  AlignHV = "right"
)

// ParseAlignHV parses the image/figure alignment argument.
func ParseAlignHV(s string) (AlignHV, error) {
	switch AlignHV(s) {
	case AlignHVTop, AlignHVMiddle, AlignHVBottom, AlignHVLeft, AlignHVCenter, AlignHVRight:
		return AlignHV(s), nil
	}
	return "", fmt.Errorf("invalid alignment %q", s)
}

type TableAlignH string

const (
	TableAlignLeft    TableAlignH = "left"
	TableAlignRight   TableAlignH = "right"
	TableAlignCenter  TableAlignH = "center"
	TableAlignJustify TableAlignH = "justify"
	TableAlignChar    TableAlignH = "char"
)

type TableBorder string

const (
	TableBorderTop       TableBorder = "top"
	TableBorderBottom    TableBorder = "bottom"
	TableBorderTopBottom TableBorder = "topbottom"
	TableBorderAll       TableBorder = "all"
	TableBorderSides     TableBorder = "sides"
	TableBorderNone      TableBorder = "none"
)

// EnumeratedListType is the numbering scheme of an EnumeratedList, one
// of the supplemented features (spec.md Non-goals never name these).
type EnumeratedListType string

const (
	EnumArabic     EnumeratedListType = "arabic"
	EnumLowerAlpha EnumeratedListType = "loweralpha"
	EnumUpperAlpha EnumeratedListType = "upperalpha"
	EnumLowerRoman EnumeratedListType = "lowerroman"
	EnumUpperRoman EnumeratedListType = "upperroman"
)

// FixedSpace controls whitespace preservation for literal-like blocks.
// Its zero value is Preserve, not Default, mirroring the Rust source's
// note that "yes, default really is not Default".
type FixedSpace int

const (
	FixedSpacePreserve FixedSpace = iota
	FixedSpaceDefault
)

func (f FixedSpace) IsEmpty() bool { return f == FixedSpacePreserve }

// FootnoteType distinguishes numeric auto-footnotes ([#]) from
// symbolic ones ([*]).
type FootnoteType int

const (
	FootnoteNumber FootnoteType = iota
	FootnoteSymbol
)

// FootnoteAuto wraps an optional FootnoteType the way the Rust source's
// Option<FootnoteType> plus FootnoteTypeExt trait does: None means the
// footnote carried an explicit manual label, Some means it was
// auto-numbered as either Number ([#]) or Symbol ([*]).
type FootnoteAuto struct {
	set      bool
	footType FootnoteType
}

func AutoFootnote(t FootnoteType) FootnoteAuto { return FootnoteAuto{set: true, footType: t} }

func (a FootnoteAuto) IsAuto() bool { return a.set }
func (a FootnoteAuto) IsSymbol() bool {
	return a.set && a.footType == FootnoteSymbol
}

// FootnoteKind returns the numbering class regardless of whether the
// footnote was auto-numbered or carried an explicit label: explicit
// and auto-numbered footnotes share the Number bucket unless the label
// was symbolic.
func (a FootnoteAuto) FootnoteKind() FootnoteType {
	if !a.set {
		return FootnoteNumber
	}
	return a.footType
}

// Measure is a CSS-like length as used by image width/height.
type Measure struct {
	Value float64
	Unit  string
}

var measureRe = regexp.MustCompile(`^(\d+\.\d*|\.?\d+)\s*(em|ex|mm|cm|in|px|pt|pc)$`)

func ParseMeasure(s string) (Measure, error) {
	m := measureRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Measure{}, fmt.Errorf("invalid measure %q", s)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Measure{}, fmt.Errorf("invalid measure %q: %w", s, err)
	}
	return Measure{Value: v, Unit: m[2]}, nil
}

func (m Measure) String() string {
	return strconv.FormatFloat(m.Value, 'g', -1, 64) + m.Unit
}

// NormalizeID rewrites a human name into an identifier the way
// docutils turns a title into an id: lowercased, spaces become
// hyphens.
func NormalizeID(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// WhitespaceNormalizeName collapses a reference name's internal
// whitespace into single spaces, splitting on the same characters as
// docutils (plain whitespace plus the C0 separators \x1c-\x1f) and
// dropping empty fragments, then rejoining with single spaces. This is
// required before two reference names are compared for equality.
func WhitespaceNormalizeName(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' ||
			(r >= '\x1c' && r <= '\x1f')
	})
	return strings.Join(fields, " ")
}
