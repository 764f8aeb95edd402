// Package rstparse defines the span contract the doctree converter is
// built against (spec.md §6's "pairs" stream) and a driver that
// fulfills it for a pragmatic subset of reStructuredText: the PEG
// grammar itself stays out of scope, but cmd/rst needs something that
// actually turns source text into spans.
package rstparse

// Rule labels a span with the grammar production that produced it.
// The set mirrors spec.md §6's non-exhaustive list, plus the rules
// needed for the supplemented features in SPEC_FULL.md §5 (comments,
// literal blocks, block quotes, transitions, enumerated lists,
// citations, admonitions).
type Rule string

const (
	RuleDocument Rule = "document"

	RuleTitle       Rule = "title"
	RuleTitleSingle Rule = "title_single"
	RuleTitleDouble Rule = "title_double"
	RuleLine        Rule = "line"
	RuleAdornments  Rule = "adornments"

	RuleParagraph Rule = "paragraph"

	RuleTarget         Rule = "target"
	RuleTargetNameUQ   Rule = "target_name_uq"
	RuleTargetNameQU   Rule = "target_name_qu"
	RuleLinkTarget     Rule = "link_target"
	RuleSubstitutionDef  Rule = "substitution_def"
	RuleSubstitutionName Rule = "substitution_name"
	RuleReplace          Rule = "replace"

	RuleImage       Rule = "image"
	RuleImageOption Rule = "image_option"

	RuleBulletList Rule = "bullet_list"
	RuleBulletItem Rule = "bullet_item"

	RuleEnumeratedList Rule = "enumerated_list"
	RuleEnumeratedItem Rule = "enumerated_item"

	RuleAdmonitionGen  Rule = "admonition_gen"
	RuleAdmonitionType Rule = "admonition_type"

	RuleComment      Rule = "comment"
	RuleLiteralBlock Rule = "literal_block"
	RuleBlockQuote   Rule = "block_quote"
	RuleTransition   Rule = "transition"
	RuleFootnoteDef  Rule = "footnote_def"
	RuleCitationDef  Rule = "citation_def"

	RuleReference           Rule = "reference"
	RuleReferenceTarget     Rule = "reference_target"
	RuleReferenceTargetUQ   Rule = "reference_target_uq"
	RuleReferenceTargetQU   Rule = "reference_target_qu"
	RuleReferenceText       Rule = "reference_text"
	RuleReferenceBracketed  Rule = "reference_bracketed"
	RuleReferenceAuto       Rule = "reference_auto"
	RuleURL                 Rule = "url"
	RuleURLAuto             Rule = "url_auto"
	RuleEmail               Rule = "email"
	RuleRelativeReference   Rule = "relative_reference"

	RuleEmph              Rule = "emph"
	RuleStrong            Rule = "strong"
	RuleLiteral           Rule = "literal"
	RuleFootnoteReference Rule = "footnote_reference"
	RuleCitationReference Rule = "citation_reference"

	RuleStr         Rule = "str"
	RuleStrNested   Rule = "str_nested"
	RuleEscapedChar Rule = "escaped_char"
	RuleWsNewline   Rule = "ws_newline"

	RuleEOI Rule = "EOI"
)
