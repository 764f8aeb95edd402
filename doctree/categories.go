package doctree

// Categories are sum types enumerating which concrete kinds may appear
// at a given position (spec.md §3.1). Go has no closed enums, so each
// category is modeled as an interface with an unexported marker
// method; only kinds declared in this package can implement it, which
// keeps the sum type closed the way the Rust source's
// `synonymous_enum!` macro does.
//
// Widening (a narrower kind standing in for a wider category) is
// implemented with marker *mixin* structs in markers.go rather than by
// embedding one category interface inside another: the Rust source's
// own category definitions are not a clean subtype lattice (SubTopic
// is {Title, BodyElement} but is not itself a BodyElement or a
// StructuralSubElement; only BodyElement really nests inside
// SubStructure inside StructuralSubElement). A concrete kind widens
// into every category it is declared a member of by embedding that
// category's marker mixin, and mixins that do sit in a genuine
// subtype chain (BodyElement under SubStructure under
// StructuralSubElement; AuthorInfo under BibliographicElement) embed
// each other so the chain is satisfied transitively, same as
// elements.rs's impl_into! cascade.
//
// Narrowing (StructuralSubElement -> BodyElement) is partial, so it is
// implemented as ordinary type assertions returning (T, bool); see
// Narrow in narrow.go.

type StructuralSubElement interface {
	Node
	isStructuralSubElement()
}

type SubStructure interface {
	StructuralSubElement
	isSubStructure()
}

type BodyElement interface {
	SubStructure
	isBodyElement()
}

type BibliographicElement interface {
	Node
	isBibliographicElement()
}

type TextOrInlineElement interface {
	Node
	isTextOrInlineElement()
}

type AuthorInfo interface {
	BibliographicElement
	isAuthorInfo()
}

type DecorationElement interface {
	Node
	isDecorationElement()
}

// Position-specific content models (spec.md §3.1). These are
// independent unions, not further widenings of the categories above,
// matching the Rust source's own (non-transitive) definitions.

type SubTopic interface {
	Node
	isSubTopic()
}

type SubSidebar interface {
	Node
	isSubSidebar()
}

type SubDLItem interface {
	Node
	isSubDLItem()
}

type SubField interface {
	Node
	isSubField()
}

type SubOptionListItem interface {
	Node
	isSubOptionListItem()
}

type SubOption interface {
	Node
	isSubOption()
}

type SubLineBlock interface {
	Node
	isSubLineBlock()
}

type SubBlockQuote interface {
	Node
	isSubBlockQuote()
}

type SubFootnote interface {
	Node
	isSubFootnote()
}

type SubFigure interface {
	Node
	isSubFigure()
}

type SubTable interface {
	Node
	isSubTable()
}

type SubTableGroup interface {
	Node
	isSubTableGroup()
}
