package rstparse

import (
	"regexp"
	"strings"
)

// Parse turns rST source text into a document Pair. It implements a
// pragmatic subset of the grammar spec.md treats as an external
// collaborator: titles (both adornment styles), paragraphs, targets,
// substitution definitions, images, bullet and enumerated lists,
// admonitions, comments, literal blocks, block quotes and
// transitions, each carrying the inline spans produceInline yields.
func Parse(src string) (Pair, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	var children []Pair
	i := 0
	lastWasLiteralIntro := false
	for i < len(lines) {
		for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			i++
		}
		if i >= len(lines) {
			break
		}

		block, start, next := collectBlock(lines, i)
		p, introducesLiteral, err := classifyBlock(block, start, lastWasLiteralIntro)
		if err != nil {
			return nil, err
		}
		lastWasLiteralIntro = introducesLiteral
		children = append(children, p)
		i = next
	}

	return newSpan(RuleDocument, 1, src, children...), nil
}

// collectBlock grabs the contiguous run of non-blank lines starting at
// i (blank lines separate blocks; rST has no other block terminator
// this scanner needs to understand at the top level).
func collectBlock(lines []string, i int) (block []string, start int, next int) {
	start = i + 1
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		block = append(block, lines[i])
		i++
	}
	return block, start, i
}

const adornmentChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func isAdornmentLine(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) == 0 || !strings.ContainsRune(adornmentChars, rune(s[0])) {
		return false
	}
	return strings.Count(s, s[:1]) == len(s)
}

var (
	targetRe       = regexp.MustCompile(`^\.\.\s+_` + "`?" + `([^:` + "`" + `]+)` + "`?" + `:\s*(.*)$`)
	substitutionRe = regexp.MustCompile(`^\.\.\s+\|([^|]+)\|\s+(\S+)::\s*(.*)$`)
	imageRe        = regexp.MustCompile(`^\.\.\s+image::\s*(.*)$`)
	admonitionRe   = regexp.MustCompile(`^\.\.\s+(note|warning|hint|attention|caution|danger|error|important|tip)::\s*(.*)$`)
	footnoteDefRe  = regexp.MustCompile(`^\.\.\s+\[(#[A-Za-z0-9_-]*|\*|[0-9]+)\]\s+(.*)$`)
	citationDefRe  = regexp.MustCompile(`^\.\.\s+\[([A-Za-z][A-Za-z0-9_-]*)\]\s+(.*)$`)
	bulletRe       = regexp.MustCompile(`^(\s*)[-*+]\s+(.*)$`)
	enumRe         = regexp.MustCompile(`^(\s*)([0-9]+|[a-zA-Z]|#)([.)])\s+(.*)$`)
)

// classifyBlock dispatches a collected line group to the matching
// block rule. introducesLiteral reports whether the caller's next
// block, if indented, should be read back as a literal_block rather
// than a block_quote.
func classifyBlock(block []string, start int, prevIntroducedLiteral bool) (Pair, bool, error) {
	if len(block) == 0 {
		return nil, false, newGrammarError(RuleDocument, start, "empty block")
	}

	trimmed := make([]string, len(block))
	for i, l := range block {
		trimmed[i] = strings.TrimSpace(l)
	}

	if len(trimmed) == 1 && isAdornmentLine(trimmed[0]) && len(trimmed[0]) >= 4 {
		return newSpan(RuleTransition, start, trimmed[0]), false, nil
	}

	if len(trimmed) == 2 && !isAdornmentLine(trimmed[0]) && isAdornmentLine(trimmed[1]) {
		title := newSpan(RuleLine, start, trimmed[0], produceInline(trimmed[0], start)...)
		adorn := newSpan(RuleAdornments, start+1, trimmed[1])
		return newSpan(RuleTitleSingle, start, trimmed[0], title, adorn), false, nil
	}

	if len(trimmed) == 3 && isAdornmentLine(trimmed[0]) && isAdornmentLine(trimmed[2]) &&
		trimmed[0] == trimmed[2] && !isAdornmentLine(trimmed[1]) {
		title := newSpan(RuleLine, start+1, trimmed[1], produceInline(trimmed[1], start+1)...)
		overline := newSpan(RuleAdornments, start, trimmed[0])
		underline := newSpan(RuleAdornments, start+2, trimmed[2])
		return newSpan(RuleTitleDouble, start, trimmed[1], overline, title, underline), false, nil
	}

	first := trimmed[0]

	if strings.HasPrefix(first, "..") {
		return classifyDirective(trimmed, start)
	}

	if strings.HasPrefix(first, " ") || strings.HasPrefix(block[0], " ") || strings.HasPrefix(block[0], "\t") {
		text := dedent(block)
		if prevIntroducedLiteral {
			return newSpan(RuleLiteralBlock, start, text), false, nil
		}
		return newSpan(RuleBlockQuote, start, text, produceInline(text, start)...), false, nil
	}

	if m := bulletRe.FindStringSubmatch(first); m != nil {
		return classifyList(trimmed, start, RuleBulletList, RuleBulletItem)
	}

	if m := enumRe.FindStringSubmatch(first); m != nil {
		_ = m
		return classifyList(trimmed, start, RuleEnumeratedList, RuleEnumeratedItem)
	}

	text := strings.Join(trimmed, " ")
	introducesLiteral := false
	if strings.HasSuffix(text, "::") {
		introducesLiteral = true
		if strings.HasSuffix(text, " ::") {
			text = strings.TrimSuffix(text, " ::")
		} else {
			text = strings.TrimSuffix(text, ":")
		}
	}
	return newSpan(RuleParagraph, start, text, produceInline(text, start)...), introducesLiteral, nil
}

func classifyDirective(trimmed []string, start int) (Pair, bool, error) {
	joined := strings.Join(trimmed, " ")
	first := trimmed[0]

	if m := targetRe.FindStringSubmatch(first); m != nil {
		return newSpan(RuleTarget, start, joined,
			newSpan(RuleTargetNameUQ, start, m[1]),
			newSpan(RuleLinkTarget, start, strings.TrimSpace(m[2]))), false, nil
	}

	if m := substitutionRe.FindStringSubmatch(first); m != nil {
		if m[2] != "replace" {
			return nil, false, newGrammarError(RuleSubstitutionDef, start, "unsupported substitution directive "+m[2])
		}
		content := strings.TrimSpace(m[3])
		return newSpan(RuleSubstitutionDef, start, joined,
			newSpan(RuleSubstitutionName, start, m[1]),
			newSpan(RuleReplace, start, content, produceInline(content, start)...)), false, nil
	}

	if m := imageRe.FindStringSubmatch(first); m != nil {
		uri := strings.TrimSpace(m[1])
		var opts []Pair
		for _, optLine := range trimmed[1:] {
			opts = append(opts, newSpan(RuleImageOption, start, optLine))
		}
		return newSpan(RuleImage, start, joined, append([]Pair{newSpan(RuleURL, start, uri)}, opts...)...), false, nil
	}

	if m := admonitionRe.FindStringSubmatch(first); m != nil {
		body := strings.TrimSpace(m[2])
		return newSpan(RuleAdmonitionGen, start, joined,
			newSpan(RuleAdmonitionType, start, m[1]),
			newSpan(RuleParagraph, start, body, produceInline(body, start)...)), false, nil
	}

	if m := footnoteDefRe.FindStringSubmatch(first); m != nil {
		body := strings.TrimSpace(strings.Join(append([]string{m[2]}, trimmed[1:]...), " "))
		return newSpan(RuleFootnoteDef, start, joined,
			newSpan(RuleLine, start, m[1]),
			newSpan(RuleParagraph, start, body, produceInline(body, start)...)), false, nil
	}

	if m := citationDefRe.FindStringSubmatch(first); m != nil {
		body := strings.TrimSpace(strings.Join(append([]string{m[2]}, trimmed[1:]...), " "))
		return newSpan(RuleCitationDef, start, joined,
			newSpan(RuleLine, start, m[1]),
			newSpan(RuleParagraph, start, body, produceInline(body, start)...)), false, nil
	}

	comment := strings.TrimSpace(strings.TrimPrefix(first, ".."))
	return newSpan(RuleComment, start, comment), false, nil
}

func classifyList(trimmed []string, start int, listRule, itemRule Rule) (Pair, bool, error) {
	var items []Pair
	var cur []string
	curLine := start
	flush := func() {
		if cur == nil {
			return
		}
		text := strings.Join(cur, " ")
		items = append(items, newSpan(itemRule, curLine, text, produceInline(text, curLine)...))
		cur = nil
	}

	for idx, line := range trimmed {
		var m []string
		if listRule == RuleBulletList {
			m = bulletRe.FindStringSubmatch(line)
		} else {
			m = enumRe.FindStringSubmatch(line)
		}
		if m != nil {
			flush()
			curLine = start + idx
			cur = []string{m[len(m)-1]}
		} else if cur != nil {
			cur = append(cur, line)
		}
	}
	flush()

	return newSpan(listRule, start, strings.Join(trimmed, "\n"), items...), false, nil
}

func dedent(lines []string) string {
	minIndent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		indent := len(l) - len(strings.TrimLeft(l, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) >= minIndent {
			out[i] = l[minIndent:]
		} else {
			out[i] = strings.TrimLeft(l, " \t")
		}
	}
	return strings.Join(out, "\n")
}
