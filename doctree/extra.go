package doctree

// Extra-attribute bundles, one struct per kind that carries
// kind-specific fields beyond the common id/name/source/classes set
// (spec.md §3.2). Field shapes mirror extra_attributes.rs one for one;
// Rust's Option<T> becomes a Go pointer or zero value, and Vec<T>
// becomes a slice.

type AddressExtra struct {
	Space FixedSpace
}

type LiteralBlockExtra struct {
	Space FixedSpace
}

type DoctestBlockExtra struct {
	Space FixedSpace
}

// SubstitutionDefinitionExtra carries Ltrim/Rtrim for API completeness;
// neither field is consulted during substitution expansion (open
// question, see DESIGN.md).
type SubstitutionDefinitionExtra struct {
	Ltrim bool
	Rtrim bool
}

type CommentExtra struct {
	Space FixedSpace
}

type TargetExtra struct {
	RefURI    string
	RefID     string
	RefName   []string
	Anonymous bool
}

type RawExtra struct {
	Space  FixedSpace
	Format []string
}

type ImageExtra struct {
	URI    string
	Align  *AlignHV
	Alt    string
	Height *Measure
	Width  *Measure
	Scale  *uint8
	Target string
}

type BulletListExtra struct {
	Bullet string
}

type EnumeratedListExtra struct {
	EnumType EnumeratedListType
	Prefix   string
	Suffix   string
}

type FootnoteExtra struct {
	Backrefs []string
	Auto     FootnoteAuto
}

type CitationExtra struct {
	Backrefs []string
}

type SystemMessageExtra struct {
	Backrefs []string
	Level    int
	Line     int
	Type     string
}

type FigureExtra struct {
	Align *AlignH
	Width *int
}

type TableExtra struct {
	Frame  *TableBorder
	Colsep *bool
	Rowsep *bool
	Pgwide *bool
}

type TableGroupExtra struct {
	Cols   int
	Colsep *bool
	Rowsep *bool
	Align  *TableAlignH
}

type TableHeadExtra struct{ Valign *AlignV }
type TableBodyExtra struct{ Valign *AlignV }

type TableRowExtra struct {
	Rowsep *bool
	Valign *AlignV
}

type TableEntryExtra struct {
	Colname  string
	Namest   string
	Nameend  string
	Morerows *int
	Colsep   *bool
	Rowsep   *bool
	Align    *TableAlignH
	Char     rune
	Charoff  *int
	Valign   *AlignV
	Morecols *int
}

type TableColspecExtra struct {
	Colnum  *int
	Colname string
	Colwidth string
	Colsep  *bool
	Rowsep  *bool
	Align   *TableAlignH
	Char    rune
	Charoff *int
	Stub    *bool
}

type OptionArgumentExtra struct {
	Delimiter string
}

type ReferenceExtra struct {
	Name    string
	RefURI  string
	RefID   string
	RefName []string
}

type FootnoteReferenceExtra struct {
	RefID   string
	RefName []string
	Auto    FootnoteAuto
}

type CitationReferenceExtra struct {
	RefID   string
	RefName []string
}

type SubstitutionReferenceExtra struct {
	RefName []string
}

type ProblematicExtra struct {
	RefID string
}

type TargetInlineExtra struct {
	RefURI    string
	RefID     string
	RefName   []string
	Anonymous bool
}

type RawInlineExtra struct {
	Space  FixedSpace
	Format []string
}

// ImageInlineExtra is a type alias in the Rust source (ImageInline =
// Image) and is a Go type alias here too: the inline and block image
// kinds share one attribute bundle type, so render can pass either
// kind's extra to the same image-rendering helper.
type ImageInlineExtra = ImageExtra
