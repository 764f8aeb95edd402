package rstparse

import (
	"regexp"
	"strings"
)

// inlineToken pairs a compiled matcher with the rule it produces so
// produceInline can try each in turn at the current scan position.
type inlineToken struct {
	re   *regexp.Regexp
	rule Rule
}

// Order matters: longer / more specific markup must be tried before
// the patterns it could be mistaken for (strong before emph, a quoted
// reference before a single-backtick literal, a footnote reference's
// bracket syntax before a bare citation reference's).
var inlineTokens = []inlineToken{
	{regexp.MustCompile(`^\*\*([^*]+)\*\*`), RuleStrong},
	{regexp.MustCompile(`^\*([^*]+)\*`), RuleEmph},
	{regexp.MustCompile("^``([^`]+)``"), RuleLiteral},
	{regexp.MustCompile("^`([^`]+)`_"), RuleReferenceTargetQU},
	{regexp.MustCompile("^`([^`]+)`"), RuleLiteral},
	{regexp.MustCompile(`^\[(#[A-Za-z0-9_-]*|\*|[0-9]+)\]_`), RuleFootnoteReference},
	{regexp.MustCompile(`^\[([A-Za-z][A-Za-z0-9_-]*)\]_`), RuleCitationReference},
	{regexp.MustCompile(`^(\w[\w.-]*)_\b`), RuleReferenceTargetUQ},
	{regexp.MustCompile(`^\|([^|]+)\|`), RuleSubstitutionName},
	{regexp.MustCompile(`^(https?://[^\s]+)`), RuleURLAuto},
	{regexp.MustCompile(`^([\w.+-]+@[\w.-]+\.\w+)`), RuleEmail},
}

// produceInline scans text left to right, yielding one Pair per
// inline span in document order. Runs of plain text between markup
// become str spans.
func produceInline(text string, line int) []Pair {
	var out []Pair
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			out = append(out, newSpan(RuleStr, line, plain.String()))
			plain.Reset()
		}
	}

	rest := text
	for len(rest) > 0 {
		matched := false
		for _, tok := range inlineTokens {
			loc := tok.re.FindStringSubmatchIndex(rest)
			if loc == nil || loc[0] != 0 {
				continue
			}
			flushPlain()
			inner := rest[loc[2]:loc[3]]
			out = append(out, buildInlinePair(tok.rule, inner, line))
			rest = rest[loc[1]:]
			matched = true
			break
		}
		if matched {
			continue
		}
		plain.WriteByte(rest[0])
		rest = rest[1:]
	}
	flushPlain()
	return out
}

func buildInlinePair(rule Rule, inner string, line int) Pair {
	switch rule {
	case RuleStrong, RuleEmph:
		return newSpan(rule, line, inner, produceInline(inner, line)...)
	case RuleLiteral:
		return newSpan(rule, line, inner)
	case RuleFootnoteReference:
		return newSpan(rule, line, inner)
	case RuleCitationReference:
		return newSpan(rule, line, inner)
	case RuleReferenceTargetQU:
		return newSpan(RuleReferenceTarget, line, inner, newSpan(RuleReferenceTargetQU, line, inner))
	case RuleReferenceTargetUQ:
		return newSpan(RuleReferenceTarget, line, inner, newSpan(RuleReferenceTargetUQ, line, inner))
	case RuleSubstitutionName:
		return newSpan(rule, line, inner)
	case RuleURLAuto:
		return newSpan(RuleReferenceAuto, line, inner, newSpan(RuleURLAuto, line, inner))
	case RuleEmail:
		return newSpan(RuleReferenceAuto, line, inner, newSpan(RuleEmail, line, inner))
	default:
		return newSpan(rule, line, inner)
	}
}
