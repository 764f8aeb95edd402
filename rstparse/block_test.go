package rstparse

import "testing"

func childRules(p Pair) []Rule {
	var rules []Rule
	for _, c := range p.Children() {
		rules = append(rules, c.Rule())
	}
	return rules
}

func TestParseSingleParagraph(t *testing.T) {
	doc, err := Parse("Simple String\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if doc.Rule() != RuleDocument {
		t.Fatalf("top-level rule = %v, want document", doc.Rule())
	}
	children := doc.Children()
	if len(children) != 1 || children[0].Rule() != RuleParagraph {
		t.Fatalf("children = %v, want one paragraph", childRules(doc))
	}
}

func TestParseTitleSingleStyle(t *testing.T) {
	doc, err := Parse("Heading\n=======\n\nBody text.\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	children := doc.Children()
	if len(children) != 2 {
		t.Fatalf("got %d top-level blocks, want 2", len(children))
	}
	if children[0].Rule() != RuleTitleSingle {
		t.Errorf("first block rule = %v, want title_single", children[0].Rule())
	}
	if children[1].Rule() != RuleParagraph {
		t.Errorf("second block rule = %v, want paragraph", children[1].Rule())
	}
}

func TestParseTitleDoubleStyle(t *testing.T) {
	doc, err := Parse("=======\nHeading\n=======\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	children := doc.Children()
	if len(children) != 1 || children[0].Rule() != RuleTitleDouble {
		t.Fatalf("children = %v, want one title_double", childRules(doc))
	}
}

func TestParseTransition(t *testing.T) {
	doc, err := Parse("One.\n\n----\n\nTwo.\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	rules := childRules(doc)
	if len(rules) != 3 || rules[1] != RuleTransition {
		t.Fatalf("rules = %v, want [paragraph transition paragraph]", rules)
	}
}

func TestParseParagraphAndTarget(t *testing.T) {
	src := "A `named reference`_ here.\n\n.. _`named reference`: http://example.com/\n"
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	rules := childRules(doc)
	if len(rules) != 2 || rules[0] != RuleParagraph || rules[1] != RuleTarget {
		t.Fatalf("rules = %v, want [paragraph target]", rules)
	}
}

func TestProduceInlineEmphAndStrong(t *testing.T) {
	spans := produceInline("Simple String with *emph* and **strong**", 1)
	var rules []Rule
	for _, s := range spans {
		rules = append(rules, s.Rule())
	}
	want := []Rule{RuleStr, RuleEmph, RuleStr, RuleStrong}
	if len(rules) != len(want) {
		t.Fatalf("rules = %v, want %v", rules, want)
	}
	for i := range want {
		if rules[i] != want[i] {
			t.Errorf("rules[%d] = %v, want %v", i, rules[i], want[i])
		}
	}
}

func TestProduceInlineFootnoteAndCitation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Rule
	}{
		{"anonymous auto footnote", "word [#]_ word", RuleFootnoteReference},
		{"named auto footnote", "word [#named]_ word", RuleFootnoteReference},
		{"manual number footnote", "word [2]_ word", RuleFootnoteReference},
		{"citation reference", "word [CIT2002]_ word", RuleCitationReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := produceInline(tt.in, 1)
			found := false
			for _, s := range spans {
				if s.Rule() == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("produceInline(%q) did not produce a %v span", tt.in, tt.want)
			}
		})
	}
}
