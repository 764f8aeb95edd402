package doctree

// Kind identifies a concrete element type, the Go equivalent of the
// Rust source's per-struct type tag carried implicitly by its enum
// variant name. It gives every element a comparable tag and, through
// String, a readable name: render's JSON/XML tree takes each node's
// kind name from it. Dispatch on concrete type (traverse.Walk, the
// HTML renderer) is still done with type switches.
type Kind int

const (
	KindDocument Kind = iota

	KindSection
	KindTopic
	KindSidebar

	KindTitle
	KindSubtitle
	KindDecoration
	KindDocinfo
	KindTransition

	KindAuthor
	KindAuthors
	KindOrganization
	KindAddress
	KindContact
	KindVersion
	KindRevision
	KindStatus
	KindDate
	KindCopyright
	KindField

	KindHeader
	KindFooter

	KindParagraph
	KindLiteralBlock
	KindDoctestBlock
	KindMathBlock
	KindRubric
	KindSubstitutionDefinition
	KindComment
	KindPending
	KindTarget
	KindRaw
	KindImage

	KindCompound
	KindContainer

	KindBulletList
	KindEnumeratedList
	KindDefinitionList
	KindFieldList
	KindOptionList

	KindLineBlock
	KindBlockQuote
	KindAdmonition
	KindAttention
	KindHint
	KindNote
	KindCaution
	KindDanger
	KindError
	KindImportant
	KindTip
	KindWarning
	KindFootnote
	KindCitation
	KindSystemMessage
	KindFigure
	KindTable

	KindTableGroup
	KindTableHead
	KindTableBody
	KindTableRow
	KindTableEntry
	KindTableColspec

	KindListItem

	KindDefinitionListItem
	KindTerm
	KindClassifier
	KindDefinition

	KindFieldName
	KindFieldBody

	KindOptionListItem
	KindOptionGroup
	KindDescription
	KindOption
	KindOptionString
	KindOptionArgument

	KindLine
	KindAttribution
	KindLabel

	KindCaption
	KindLegend

	KindEmphasis
	KindLiteral
	KindReference
	KindStrong
	KindFootnoteReference
	KindCitationReference
	KindSubstitutionReference
	KindTitleReference
	KindAbbreviation
	KindAcronym
	KindSuperscript
	KindSubscript
	KindInline
	KindProblematic
	KindGenerated
	KindMath

	KindTargetInline
	KindRawInline
	KindImageInline

	KindText
)

var kindNames = map[Kind]string{
	KindDocument:               "Document",
	KindSection:                "Section",
	KindTopic:                  "Topic",
	KindSidebar:                "Sidebar",
	KindTitle:                  "Title",
	KindSubtitle:               "Subtitle",
	KindDecoration:             "Decoration",
	KindDocinfo:                "Docinfo",
	KindTransition:             "Transition",
	KindAuthor:                 "Author",
	KindAuthors:                "Authors",
	KindOrganization:           "Organization",
	KindAddress:                "Address",
	KindContact:                "Contact",
	KindVersion:                "Version",
	KindRevision:               "Revision",
	KindStatus:                 "Status",
	KindDate:                   "Date",
	KindCopyright:              "Copyright",
	KindField:                  "Field",
	KindHeader:                 "Header",
	KindFooter:                 "Footer",
	KindParagraph:              "Paragraph",
	KindLiteralBlock:           "LiteralBlock",
	KindDoctestBlock:           "DoctestBlock",
	KindMathBlock:              "MathBlock",
	KindRubric:                 "Rubric",
	KindSubstitutionDefinition: "SubstitutionDefinition",
	KindComment:                "Comment",
	KindPending:                "Pending",
	KindTarget:                 "Target",
	KindRaw:                    "Raw",
	KindImage:                  "Image",
	KindCompound:               "Compound",
	KindContainer:              "Container",
	KindBulletList:             "BulletList",
	KindEnumeratedList:         "EnumeratedList",
	KindDefinitionList:         "DefinitionList",
	KindFieldList:              "FieldList",
	KindOptionList:             "OptionList",
	KindLineBlock:              "LineBlock",
	KindBlockQuote:             "BlockQuote",
	KindAdmonition:             "Admonition",
	KindAttention:              "Attention",
	KindHint:                   "Hint",
	KindNote:                   "Note",
	KindCaution:                "Caution",
	KindDanger:                 "Danger",
	KindError:                  "Error",
	KindImportant:              "Important",
	KindTip:                    "Tip",
	KindWarning:                "Warning",
	KindFootnote:               "Footnote",
	KindCitation:               "Citation",
	KindSystemMessage:          "SystemMessage",
	KindFigure:                 "Figure",
	KindTable:                  "Table",
	KindTableGroup:             "TableGroup",
	KindTableHead:              "TableHead",
	KindTableBody:              "TableBody",
	KindTableRow:               "TableRow",
	KindTableEntry:             "TableEntry",
	KindTableColspec:           "TableColspec",
	KindListItem:               "ListItem",
	KindDefinitionListItem:     "DefinitionListItem",
	KindTerm:                   "Term",
	KindClassifier:             "Classifier",
	KindDefinition:             "Definition",
	KindFieldName:              "FieldName",
	KindFieldBody:              "FieldBody",
	KindOptionListItem:         "OptionListItem",
	KindOptionGroup:            "OptionGroup",
	KindDescription:            "Description",
	KindOption:                 "Option",
	KindOptionString:           "OptionString",
	KindOptionArgument:         "OptionArgument",
	KindLine:                   "Line",
	KindAttribution:            "Attribution",
	KindLabel:                  "Label",
	KindCaption:                "Caption",
	KindLegend:                 "Legend",
	KindEmphasis:               "Emphasis",
	KindLiteral:                "Literal",
	KindReference:              "Reference",
	KindStrong:                 "Strong",
	KindFootnoteReference:      "FootnoteReference",
	KindCitationReference:      "CitationReference",
	KindSubstitutionReference:  "SubstitutionReference",
	KindTitleReference:         "TitleReference",
	KindAbbreviation:           "Abbreviation",
	KindAcronym:                "Acronym",
	KindSuperscript:            "Superscript",
	KindSubscript:              "Subscript",
	KindInline:                 "Inline",
	KindProblematic:            "Problematic",
	KindGenerated:              "Generated",
	KindMath:                   "Math",
	KindTargetInline:           "TargetInline",
	KindRawInline:              "RawInline",
	KindImageInline:            "ImageInline",
	KindText:                   "Text",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
