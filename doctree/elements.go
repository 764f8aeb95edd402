package doctree

// Concrete element kinds, one struct per docutils element, grounded on
// elements.rs's impl_elems! table. Each struct embeds Common for the
// shared id/name/source/classes attributes, the marker mixin(s) for
// every category element_categories.rs lists it under, and — where the
// original table carries a child type or an extra-attribute bundle —
// Children[C] and/or Extra[A].

// Document is the root; it is not itself a member of any content
// category, only ever the top of the tree.
type Document struct {
	Common
	Children[StructuralSubElement]
}

func NewDocument(children []StructuralSubElement) *Document {
	d := &Document{}
	d.SetChildren(children)
	return d
}

func (d *Document) Kind() Kind { return KindDocument }

// --- structural elements ---

type Section struct {
	Common
	subStructureMark
	Children[StructuralSubElement]
}

func NewSection(children []StructuralSubElement) *Section {
	s := &Section{}
	s.SetChildren(children)
	return s
}
func (s *Section) Kind() Kind { return KindSection }

type Topic struct {
	Common
	subStructureMark
	subSidebarMark
	Children[SubTopic]
}

func NewTopic(children []SubTopic) *Topic {
	t := &Topic{}
	t.SetChildren(children)
	return t
}
func (t *Topic) Kind() Kind { return KindTopic }

type Sidebar struct {
	Common
	subStructureMark
	Children[SubSidebar]
}

func NewSidebar(children []SubSidebar) *Sidebar {
	s := &Sidebar{}
	s.SetChildren(children)
	return s
}
func (s *Sidebar) Kind() Kind { return KindSidebar }

// --- structural subelements ---

type Title struct {
	Common
	structuralSubElementMark
	subTopicMark
	subSidebarMark
	subTableMark
	Children[TextOrInlineElement]
}

func NewTitle(children []TextOrInlineElement) *Title {
	t := &Title{}
	t.SetChildren(children)
	return t
}
func (t *Title) Kind() Kind { return KindTitle }

type Subtitle struct {
	Common
	structuralSubElementMark
	subSidebarMark
	Children[TextOrInlineElement]
}

func NewSubtitle(children []TextOrInlineElement) *Subtitle {
	s := &Subtitle{}
	s.SetChildren(children)
	return s
}
func (s *Subtitle) Kind() Kind { return KindSubtitle }

type Decoration struct {
	Common
	structuralSubElementMark
	Children[DecorationElement]
}

func NewDecoration(children []DecorationElement) *Decoration {
	d := &Decoration{}
	d.SetChildren(children)
	return d
}
func (d *Decoration) Kind() Kind { return KindDecoration }

type Docinfo struct {
	Common
	structuralSubElementMark
	Children[BibliographicElement]
}

func NewDocinfo(children []BibliographicElement) *Docinfo {
	d := &Docinfo{}
	d.SetChildren(children)
	return d
}
func (d *Docinfo) Kind() Kind { return KindDocinfo }

type Transition struct {
	Common
	subStructureMark
}

func (t *Transition) Kind() Kind { return KindTransition }

// --- bibliographic elements ---

type Author struct {
	Common
	authorInfoMark
	Children[TextOrInlineElement]
}

func NewAuthor(children []TextOrInlineElement) *Author {
	a := &Author{}
	a.SetChildren(children)
	return a
}
func (a *Author) Kind() Kind { return KindAuthor }

type Authors struct {
	Common
	bibliographicElementMark
	Children[AuthorInfo]
}

func NewAuthors(children []AuthorInfo) *Authors {
	a := &Authors{}
	a.SetChildren(children)
	return a
}
func (a *Authors) Kind() Kind { return KindAuthors }

type Organization struct {
	Common
	authorInfoMark
	Children[TextOrInlineElement]
}

func NewOrganization(children []TextOrInlineElement) *Organization {
	o := &Organization{}
	o.SetChildren(children)
	return o
}
func (o *Organization) Kind() Kind { return KindOrganization }

type Address struct {
	Common
	authorInfoMark
	Extra[AddressExtra]
	Children[TextOrInlineElement]
}

func NewAddress(extra AddressExtra, children []TextOrInlineElement) *Address {
	a := &Address{Extra: WithExtra(extra)}
	a.SetChildren(children)
	return a
}
func (a *Address) Kind() Kind { return KindAddress }

type Contact struct {
	Common
	authorInfoMark
	Children[TextOrInlineElement]
}

func NewContact(children []TextOrInlineElement) *Contact {
	c := &Contact{}
	c.SetChildren(children)
	return c
}
func (c *Contact) Kind() Kind { return KindContact }

type Version struct {
	Common
	bibliographicElementMark
	Children[TextOrInlineElement]
}

func (v *Version) Kind() Kind { return KindVersion }

type Revision struct {
	Common
	bibliographicElementMark
	Children[TextOrInlineElement]
}

func (r *Revision) Kind() Kind { return KindRevision }

type Status struct {
	Common
	bibliographicElementMark
	Children[TextOrInlineElement]
}

func (s *Status) Kind() Kind { return KindStatus }

type Date struct {
	Common
	bibliographicElementMark
	Children[TextOrInlineElement]
}

func (d *Date) Kind() Kind { return KindDate }

type Copyright struct {
	Common
	bibliographicElementMark
	Children[TextOrInlineElement]
}

func (c *Copyright) Kind() Kind { return KindCopyright }

type Field struct {
	Common
	bibliographicElementMark
	Children[SubField]
}

func NewField(children []SubField) *Field {
	f := &Field{}
	f.SetChildren(children)
	return f
}
func (f *Field) Kind() Kind { return KindField }

// --- decoration elements ---

type Header struct {
	Common
	decorationElementMark
	Children[BodyElement]
}

func NewHeader(children []BodyElement) *Header {
	h := &Header{}
	h.SetChildren(children)
	return h
}
func (h *Header) Kind() Kind { return KindHeader }

type Footer struct {
	Common
	decorationElementMark
	Children[BodyElement]
}

func NewFooter(children []BodyElement) *Footer {
	f := &Footer{}
	f.SetChildren(children)
	return f
}
func (f *Footer) Kind() Kind { return KindFooter }

// --- simple body elements ---

type Paragraph struct {
	Common
	bodyElementMark
	Children[TextOrInlineElement]
}

func NewParagraph(children []TextOrInlineElement) *Paragraph {
	p := &Paragraph{}
	p.SetChildren(children)
	return p
}
func (p *Paragraph) Kind() Kind { return KindParagraph }

type LiteralBlock struct {
	Common
	bodyElementMark
	Extra[LiteralBlockExtra]
	Children[TextOrInlineElement]
}

func NewLiteralBlock(extra LiteralBlockExtra, children []TextOrInlineElement) *LiteralBlock {
	l := &LiteralBlock{Extra: WithExtra(extra)}
	l.SetChildren(children)
	return l
}
func (l *LiteralBlock) Kind() Kind { return KindLiteralBlock }

type DoctestBlock struct {
	Common
	bodyElementMark
	Extra[DoctestBlockExtra]
	Children[TextOrInlineElement]
}

func (d *DoctestBlock) Kind() Kind { return KindDoctestBlock }

type MathBlock struct {
	Common
	bodyElementMark
	Children[string]
}

func NewMathBlock(lines []string) *MathBlock {
	m := &MathBlock{}
	m.SetChildren(lines)
	return m
}
func (m *MathBlock) Kind() Kind { return KindMathBlock }

type Rubric struct {
	Common
	bodyElementMark
	Children[TextOrInlineElement]
}

func (r *Rubric) Kind() Kind { return KindRubric }

type SubstitutionDefinition struct {
	Common
	bodyElementMark
	Extra[SubstitutionDefinitionExtra]
	Children[TextOrInlineElement]
}

func NewSubstitutionDefinition(extra SubstitutionDefinitionExtra, children []TextOrInlineElement) *SubstitutionDefinition {
	s := &SubstitutionDefinition{Extra: WithExtra(extra)}
	s.SetChildren(children)
	return s
}
func (s *SubstitutionDefinition) Kind() Kind { return KindSubstitutionDefinition }

type Comment struct {
	Common
	bodyElementMark
	Extra[CommentExtra]
	Children[TextOrInlineElement]
}

func NewComment(extra CommentExtra, children []TextOrInlineElement) *Comment {
	c := &Comment{Extra: WithExtra(extra)}
	c.SetChildren(children)
	return c
}
func (c *Comment) Kind() Kind { return KindComment }

type Pending struct {
	Common
	bodyElementMark
}

func (p *Pending) Kind() Kind { return KindPending }

type Target struct {
	Common
	bodyElementMark
	Extra[TargetExtra]
}

func NewTarget(extra TargetExtra) *Target {
	return &Target{Extra: WithExtra(extra)}
}
func (t *Target) Kind() Kind { return KindTarget }

type Raw struct {
	Common
	bodyElementMark
	Extra[RawExtra]
	Children[string]
}

func NewRaw(extra RawExtra, lines []string) *Raw {
	r := &Raw{Extra: WithExtra(extra)}
	r.SetChildren(lines)
	return r
}
func (r *Raw) Kind() Kind { return KindRaw }

type Image struct {
	Common
	bodyElementMark
	Extra[ImageExtra]
}

func NewImage(extra ImageExtra) *Image {
	return &Image{Extra: WithExtra(extra)}
}
func (i *Image) Kind() Kind { return KindImage }

// --- compound body elements ---

type Compound struct {
	Common
	bodyElementMark
	Children[BodyElement]
}

func NewCompound(children []BodyElement) *Compound {
	c := &Compound{}
	c.SetChildren(children)
	return c
}
func (c *Compound) Kind() Kind { return KindCompound }

type Container struct {
	Common
	bodyElementMark
	Children[BodyElement]
}

func NewContainer(children []BodyElement) *Container {
	c := &Container{}
	c.SetChildren(children)
	return c
}
func (c *Container) Kind() Kind { return KindContainer }

type BulletList struct {
	Common
	bodyElementMark
	Extra[BulletListExtra]
	Children[*ListItem]
}

func NewBulletList(extra BulletListExtra, items []*ListItem) *BulletList {
	b := &BulletList{Extra: WithExtra(extra)}
	b.SetChildren(items)
	return b
}
func (b *BulletList) Kind() Kind { return KindBulletList }

type EnumeratedList struct {
	Common
	bodyElementMark
	Extra[EnumeratedListExtra]
	Children[*ListItem]
}

func NewEnumeratedList(extra EnumeratedListExtra, items []*ListItem) *EnumeratedList {
	e := &EnumeratedList{Extra: WithExtra(extra)}
	e.SetChildren(items)
	return e
}
func (e *EnumeratedList) Kind() Kind { return KindEnumeratedList }

type DefinitionList struct {
	Common
	bodyElementMark
	Children[*DefinitionListItem]
}

func NewDefinitionList(items []*DefinitionListItem) *DefinitionList {
	d := &DefinitionList{}
	d.SetChildren(items)
	return d
}
func (d *DefinitionList) Kind() Kind { return KindDefinitionList }

type FieldList struct {
	Common
	bodyElementMark
	Children[*Field]
}

func NewFieldList(items []*Field) *FieldList {
	f := &FieldList{}
	f.SetChildren(items)
	return f
}
func (f *FieldList) Kind() Kind { return KindFieldList }

type OptionList struct {
	Common
	bodyElementMark
	Children[*OptionListItem]
}

func NewOptionList(items []*OptionListItem) *OptionList {
	o := &OptionList{}
	o.SetChildren(items)
	return o
}
func (o *OptionList) Kind() Kind { return KindOptionList }

type LineBlock struct {
	Common
	bodyElementMark
	subLineBlockMark
	Children[SubLineBlock]
}

func NewLineBlock(children []SubLineBlock) *LineBlock {
	l := &LineBlock{}
	l.SetChildren(children)
	return l
}
func (l *LineBlock) Kind() Kind { return KindLineBlock }

type BlockQuote struct {
	Common
	bodyElementMark
	Children[SubBlockQuote]
}

func NewBlockQuote(children []SubBlockQuote) *BlockQuote {
	b := &BlockQuote{}
	b.SetChildren(children)
	return b
}
func (b *BlockQuote) Kind() Kind { return KindBlockQuote }

type Admonition struct {
	Common
	bodyElementMark
	// Label distinguishes note/warning/hint/etc admonitions that share
	// this one generic kind, grounded on convert_admonition_gen.
	Label string
	Children[SubTopic]
}

func NewAdmonition(label string, children []SubTopic) *Admonition {
	a := &Admonition{Label: label}
	a.SetChildren(children)
	return a
}
func (a *Admonition) Kind() Kind { return KindAdmonition }

type Attention struct {
	Common
	bodyElementMark
	Children[BodyElement]
}

func (a *Attention) Kind() Kind { return KindAttention }

type Hint struct {
	Common
	bodyElementMark
	Children[BodyElement]
}

func (h *Hint) Kind() Kind { return KindHint }

type Note struct {
	Common
	bodyElementMark
	Children[BodyElement]
}

func (n *Note) Kind() Kind { return KindNote }

type Caution struct {
	Common
	bodyElementMark
	Children[BodyElement]
}

func (c *Caution) Kind() Kind { return KindCaution }

type Danger struct {
	Common
	bodyElementMark
	Children[BodyElement]
}

func (d *Danger) Kind() Kind { return KindDanger }

type Error struct {
	Common
	bodyElementMark
	Children[BodyElement]
}

func (e *Error) Kind() Kind { return KindError }

type Important struct {
	Common
	bodyElementMark
	Children[BodyElement]
}

func (i *Important) Kind() Kind { return KindImportant }

type Tip struct {
	Common
	bodyElementMark
	Children[BodyElement]
}

func (t *Tip) Kind() Kind { return KindTip }

type Warning struct {
	Common
	bodyElementMark
	Children[BodyElement]
}

func (w *Warning) Kind() Kind { return KindWarning }

type Footnote struct {
	Common
	bodyElementMark
	Extra[FootnoteExtra]
	Children[SubFootnote]
}

func NewFootnote(extra FootnoteExtra, children []SubFootnote) *Footnote {
	f := &Footnote{Extra: WithExtra(extra)}
	f.SetChildren(children)
	return f
}
func (f *Footnote) Kind() Kind { return KindFootnote }

func (f *Footnote) IsAuto() bool           { return f.Attr().Auto.IsAuto() }
func (f *Footnote) IsSymbol() bool         { return f.Attr().Auto.IsSymbol() }
func (f *Footnote) FootKind() FootnoteType { return f.Attr().Auto.FootnoteKind() }

type Citation struct {
	Common
	bodyElementMark
	Extra[CitationExtra]
	Children[SubFootnote]
}

func NewCitation(extra CitationExtra, children []SubFootnote) *Citation {
	c := &Citation{Extra: WithExtra(extra)}
	c.SetChildren(children)
	return c
}
func (c *Citation) Kind() Kind { return KindCitation }

type SystemMessage struct {
	Common
	bodyElementMark
	Extra[SystemMessageExtra]
	Children[BodyElement]
}

func NewSystemMessage(extra SystemMessageExtra, children []BodyElement) *SystemMessage {
	s := &SystemMessage{Extra: WithExtra(extra)}
	s.SetChildren(children)
	return s
}
func (s *SystemMessage) Kind() Kind { return KindSystemMessage }

type Figure struct {
	Common
	bodyElementMark
	Extra[FigureExtra]
	Children[SubFigure]
}

func NewFigure(extra FigureExtra, children []SubFigure) *Figure {
	f := &Figure{Extra: WithExtra(extra)}
	f.SetChildren(children)
	return f
}
func (f *Figure) Kind() Kind { return KindFigure }

type Table struct {
	Common
	bodyElementMark
	Extra[TableExtra]
	Children[SubTable]
}

func NewTable(extra TableExtra, children []SubTable) *Table {
	t := &Table{Extra: WithExtra(extra)}
	t.SetChildren(children)
	return t
}
func (t *Table) Kind() Kind { return KindTable }

// --- table elements ---

type TableGroup struct {
	Common
	subTableMark
	Extra[TableGroupExtra]
	Children[SubTableGroup]
}

func NewTableGroup(extra TableGroupExtra, children []SubTableGroup) *TableGroup {
	t := &TableGroup{Extra: WithExtra(extra)}
	t.SetChildren(children)
	return t
}
func (t *TableGroup) Kind() Kind { return KindTableGroup }

type TableHead struct {
	Common
	subTableGroupMark
	Extra[TableHeadExtra]
	Children[*TableRow]
}

func (t *TableHead) Kind() Kind { return KindTableHead }

type TableBody struct {
	Common
	subTableGroupMark
	Extra[TableBodyExtra]
	Children[*TableRow]
}

func (t *TableBody) Kind() Kind { return KindTableBody }

type TableRow struct {
	Common
	Extra[TableRowExtra]
	Children[*TableEntry]
}

func (t *TableRow) Kind() Kind { return KindTableRow }

type TableEntry struct {
	Common
	Extra[TableEntryExtra]
	Children[BodyElement]
}

func (t *TableEntry) Kind() Kind { return KindTableEntry }

type TableColspec struct {
	Common
	subTableGroupMark
	Extra[TableColspecExtra]
}

func (t *TableColspec) Kind() Kind { return KindTableColspec }

// --- body sub elements ---

type ListItem struct {
	Common
	Children[BodyElement]
}

func NewListItem(children []BodyElement) *ListItem {
	l := &ListItem{}
	l.SetChildren(children)
	return l
}
func (l *ListItem) Kind() Kind { return KindListItem }

type DefinitionListItem struct {
	Common
	Children[SubDLItem]
}

func NewDefinitionListItem(children []SubDLItem) *DefinitionListItem {
	d := &DefinitionListItem{}
	d.SetChildren(children)
	return d
}
func (d *DefinitionListItem) Kind() Kind { return KindDefinitionListItem }

type Term struct {
	Common
	subDLItemMark
	Children[TextOrInlineElement]
}

func (t *Term) Kind() Kind { return KindTerm }

type Classifier struct {
	Common
	subDLItemMark
	Children[TextOrInlineElement]
}

func (c *Classifier) Kind() Kind { return KindClassifier }

type Definition struct {
	Common
	subDLItemMark
	Children[BodyElement]
}

func (d *Definition) Kind() Kind { return KindDefinition }

type FieldName struct {
	Common
	subFieldMark
	Children[TextOrInlineElement]
}

func (f *FieldName) Kind() Kind { return KindFieldName }

type FieldBody struct {
	Common
	subFieldMark
	Children[BodyElement]
}

func (f *FieldBody) Kind() Kind { return KindFieldBody }

type OptionListItem struct {
	Common
	Children[SubOptionListItem]
}

func NewOptionListItem(children []SubOptionListItem) *OptionListItem {
	o := &OptionListItem{}
	o.SetChildren(children)
	return o
}
func (o *OptionListItem) Kind() Kind { return KindOptionListItem }

type OptionGroup struct {
	Common
	subOptionListItemMark
	Children[*Option]
}

func (o *OptionGroup) Kind() Kind { return KindOptionGroup }

type Description struct {
	Common
	subOptionListItemMark
	Children[BodyElement]
}

func (d *Description) Kind() Kind { return KindDescription }

type Option struct {
	Common
	Children[SubOption]
}

func (o *Option) Kind() Kind { return KindOption }

type OptionString struct {
	Common
	subOptionMark
	Children[string]
}

func (o *OptionString) Kind() Kind { return KindOptionString }

type OptionArgument struct {
	Common
	subOptionMark
	Extra[OptionArgumentExtra]
	Children[string]
}

func NewOptionArgument(extra OptionArgumentExtra, lines []string) *OptionArgument {
	o := &OptionArgument{Extra: WithExtra(extra)}
	o.SetChildren(lines)
	return o
}
func (o *OptionArgument) Kind() Kind { return KindOptionArgument }

type Line struct {
	Common
	subLineBlockMark
	Children[TextOrInlineElement]
}

func (l *Line) Kind() Kind { return KindLine }

type Attribution struct {
	Common
	subBlockQuoteMark
	Children[TextOrInlineElement]
}

func (a *Attribution) Kind() Kind { return KindAttribution }

type Label struct {
	Common
	subFootnoteMark
	Children[TextOrInlineElement]
}

func NewLabel(children []TextOrInlineElement) *Label {
	l := &Label{}
	l.SetChildren(children)
	return l
}
func (l *Label) Kind() Kind { return KindLabel }

type Caption struct {
	Common
	subFigureMark
	Children[TextOrInlineElement]
}

func (c *Caption) Kind() Kind { return KindCaption }

type Legend struct {
	Common
	subFigureMark
	Children[BodyElement]
}

func (l *Legend) Kind() Kind { return KindLegend }

// --- inline elements ---

type Text struct {
	Common
	textOrInlineElementMark
	Value string
}

func NewText(value string) *Text { return &Text{Value: value} }
func (t *Text) Kind() Kind       { return KindText }

type Emphasis struct {
	Common
	textOrInlineElementMark
	Children[TextOrInlineElement]
}

func (e *Emphasis) Kind() Kind { return KindEmphasis }

type Literal struct {
	Common
	textOrInlineElementMark
	Children[string]
}

func NewLiteral(lines []string) *Literal {
	l := &Literal{}
	l.SetChildren(lines)
	return l
}
func (l *Literal) Kind() Kind { return KindLiteral }

type Reference struct {
	Common
	textOrInlineElementMark
	Extra[ReferenceExtra]
	Children[TextOrInlineElement]
}

func NewReference(extra ReferenceExtra, children []TextOrInlineElement) *Reference {
	r := &Reference{Extra: WithExtra(extra)}
	r.SetChildren(children)
	return r
}
func (r *Reference) Kind() Kind { return KindReference }

type Strong struct {
	Common
	textOrInlineElementMark
	Children[TextOrInlineElement]
}

func (s *Strong) Kind() Kind { return KindStrong }

type FootnoteReference struct {
	Common
	textOrInlineElementMark
	Extra[FootnoteReferenceExtra]
	Children[TextOrInlineElement]
}

func NewFootnoteReference(extra FootnoteReferenceExtra, children []TextOrInlineElement) *FootnoteReference {
	f := &FootnoteReference{Extra: WithExtra(extra)}
	f.SetChildren(children)
	return f
}
func (f *FootnoteReference) Kind() Kind { return KindFootnoteReference }

func (f *FootnoteReference) IsAuto() bool           { return f.Attr().Auto.IsAuto() }
func (f *FootnoteReference) IsSymbol() bool         { return f.Attr().Auto.IsSymbol() }
func (f *FootnoteReference) FootKind() FootnoteType { return f.Attr().Auto.FootnoteKind() }

type CitationReference struct {
	Common
	textOrInlineElementMark
	Extra[CitationReferenceExtra]
	Children[TextOrInlineElement]
}

func NewCitationReference(extra CitationReferenceExtra, children []TextOrInlineElement) *CitationReference {
	c := &CitationReference{Extra: WithExtra(extra)}
	c.SetChildren(children)
	return c
}
func (c *CitationReference) Kind() Kind { return KindCitationReference }

type SubstitutionReference struct {
	Common
	textOrInlineElementMark
	Extra[SubstitutionReferenceExtra]
	Children[TextOrInlineElement]
}

func NewSubstitutionReference(extra SubstitutionReferenceExtra, children []TextOrInlineElement) *SubstitutionReference {
	s := &SubstitutionReference{Extra: WithExtra(extra)}
	s.SetChildren(children)
	return s
}
func (s *SubstitutionReference) Kind() Kind { return KindSubstitutionReference }

type TitleReference struct {
	Common
	textOrInlineElementMark
	Children[TextOrInlineElement]
}

func (t *TitleReference) Kind() Kind { return KindTitleReference }

type Abbreviation struct {
	Common
	textOrInlineElementMark
	Children[TextOrInlineElement]
}

func (a *Abbreviation) Kind() Kind { return KindAbbreviation }

type Acronym struct {
	Common
	textOrInlineElementMark
	Children[TextOrInlineElement]
}

func (a *Acronym) Kind() Kind { return KindAcronym }

type Superscript struct {
	Common
	textOrInlineElementMark
	Children[TextOrInlineElement]
}

func (s *Superscript) Kind() Kind { return KindSuperscript }

type Subscript struct {
	Common
	textOrInlineElementMark
	Children[TextOrInlineElement]
}

func (s *Subscript) Kind() Kind { return KindSubscript }

type Inline struct {
	Common
	textOrInlineElementMark
	Children[TextOrInlineElement]
}

func (i *Inline) Kind() Kind { return KindInline }

type Problematic struct {
	Common
	textOrInlineElementMark
	Extra[ProblematicExtra]
	Children[TextOrInlineElement]
}

func NewProblematic(extra ProblematicExtra, children []TextOrInlineElement) *Problematic {
	p := &Problematic{Extra: WithExtra(extra)}
	p.SetChildren(children)
	return p
}
func (p *Problematic) Kind() Kind { return KindProblematic }

type Generated struct {
	Common
	textOrInlineElementMark
	Children[TextOrInlineElement]
}

func (g *Generated) Kind() Kind { return KindGenerated }

type Math struct {
	Common
	textOrInlineElementMark
	Children[string]
}

func (m *Math) Kind() Kind { return KindMath }

// --- non-inline/inline duplicate kinds ---

type TargetInline struct {
	Common
	textOrInlineElementMark
	Extra[TargetInlineExtra]
	Children[string]
}

func NewTargetInline(extra TargetInlineExtra, lines []string) *TargetInline {
	t := &TargetInline{Extra: WithExtra(extra)}
	t.SetChildren(lines)
	return t
}
func (t *TargetInline) Kind() Kind { return KindTargetInline }

type RawInline struct {
	Common
	textOrInlineElementMark
	Extra[RawInlineExtra]
	Children[string]
}

func NewRawInline(extra RawInlineExtra, lines []string) *RawInline {
	r := &RawInline{Extra: WithExtra(extra)}
	r.SetChildren(lines)
	return r
}
func (r *RawInline) Kind() Kind { return KindRawInline }

type ImageInline struct {
	Common
	textOrInlineElementMark
	Extra[ImageInlineExtra]
}

func NewImageInline(extra ImageInlineExtra) *ImageInline {
	return &ImageInline{Extra: WithExtra(extra)}
}
func (i *ImageInline) Kind() Kind { return KindImageInline }
