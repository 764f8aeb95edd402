package doctree

// Marker mixins grant category membership through embedding. A
// concrete kind embeds exactly the mixins for the categories
// element_categories.rs lists it under, and picks up every wider
// category transitively through the mixin's own embedding, the same
// cascade elements.rs gets from stacking impl_into! calls.

type structuralSubElementMark struct{}

func (structuralSubElementMark) isStructuralSubElement() {}

type subStructureMark struct{ structuralSubElementMark }

func (subStructureMark) isSubStructure() {}

// bodyElementMark also grants every BodyElement kind membership in
// the five content models that list "any BodyElement" as one of their
// variants (SubTopic, SubSidebar, SubBlockQuote, SubFootnote,
// SubFigure all end in ", BodyElement" in element_categories.rs).
type bodyElementMark struct {
	subStructureMark
	subTopicMark
	subSidebarMark
	subBlockQuoteMark
	subFootnoteMark
	subFigureMark
}

func (bodyElementMark) isBodyElement() {}

type bibliographicElementMark struct{}

func (bibliographicElementMark) isBibliographicElement() {}

type authorInfoMark struct{ bibliographicElementMark }

func (authorInfoMark) isAuthorInfo() {}

type textOrInlineElementMark struct{}

func (textOrInlineElementMark) isTextOrInlineElement() {}

type decorationElementMark struct{}

func (decorationElementMark) isDecorationElement() {}

type subTopicMark struct{}

func (subTopicMark) isSubTopic() {}

type subSidebarMark struct{}

func (subSidebarMark) isSubSidebar() {}

type subDLItemMark struct{}

func (subDLItemMark) isSubDLItem() {}

type subFieldMark struct{}

func (subFieldMark) isSubField() {}

type subOptionListItemMark struct{}

func (subOptionListItemMark) isSubOptionListItem() {}

type subOptionMark struct{}

func (subOptionMark) isSubOption() {}

type subLineBlockMark struct{}

func (subLineBlockMark) isSubLineBlock() {}

type subBlockQuoteMark struct{}

func (subBlockQuoteMark) isSubBlockQuote() {}

type subFootnoteMark struct{}

func (subFootnoteMark) isSubFootnote() {}

type subFigureMark struct{}

func (subFigureMark) isSubFigure() {}

type subTableMark struct{}

func (subTableMark) isSubTable() {}

type subTableGroupMark struct{}

func (subTableGroupMark) isSubTableGroup() {}
