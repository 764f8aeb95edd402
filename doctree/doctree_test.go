package doctree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWideningThroughCategories(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"paragraph is a body element", NewParagraph(nil)},
		{"title is a structural sub element", NewTitle(nil)},
		{"transition is a sub structure", &Transition{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.node.(StructuralSubElement); !ok {
				t.Errorf("%T does not widen to StructuralSubElement", tt.node)
			}
		})
	}
}

func TestBodyElementWidensToContentModels(t *testing.T) {
	var p Node = NewParagraph(nil)

	if _, ok := p.(SubTopic); !ok {
		t.Errorf("Paragraph should widen to SubTopic via bodyElementMark")
	}
	if _, ok := p.(SubFootnote); !ok {
		t.Errorf("Paragraph should widen to SubFootnote via bodyElementMark")
	}
	if _, ok := p.(SubFigure); !ok {
		t.Errorf("Paragraph should widen to SubFigure via bodyElementMark")
	}
	if _, ok := p.(SubBlockQuote); !ok {
		t.Errorf("Paragraph should widen to SubBlockQuote via bodyElementMark")
	}
}

func TestTableGroupIsSubTableNotSubTableGroup(t *testing.T) {
	tg := &TableGroup{}

	if _, ok := Node(tg).(SubTable); !ok {
		t.Errorf("TableGroup must satisfy SubTable")
	}
	if _, ok := Node(tg).(SubTableGroup); ok {
		t.Errorf("TableGroup must not satisfy SubTableGroup, only its contents (TableHead/TableBody/TableColspec) do")
	}
}

func TestNarrowStructuralSubElementToBodyElement(t *testing.T) {
	tests := []struct {
		name    string
		element StructuralSubElement
		wantOK  bool
	}{
		{"paragraph narrows", NewParagraph(nil), true},
		{"title does not narrow", NewTitle(nil), false},
		{"transition does not narrow", &Transition{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Narrow(tt.element)
			if ok != tt.wantOK {
				t.Errorf("Narrow(%T) ok = %v, want %v", tt.element, ok, tt.wantOK)
			}
		})
	}
}

func TestCommonAddIDDeduplicates(t *testing.T) {
	c := &Common{}
	c.AddID("a")
	c.AddID("b")
	c.AddID("a")

	if diff := cmp.Diff([]string{"a", "b"}, c.IDs()); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestChildrenRoundTrip(t *testing.T) {
	items := []TextOrInlineElement{NewText("hello"), NewText("world")}
	p := NewParagraph(items)

	if diff := cmp.Diff(items, p.ChildList(), cmp.AllowUnexported(Text{}, Common{}, textOrInlineElementMark{})); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestWhitespaceNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single spaces unchanged", "hello world", "hello world"},
		{"collapses runs", "hello   world", "hello world"},
		{"trims c0 separators", "a\x1cb\x1dc", "a b c"},
		{"trims leading and trailing", "  hello  ", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WhitespaceNormalizeName(tt.in)
			if got != tt.want {
				t.Errorf("WhitespaceNormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMeasure(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Measure
		wantErr bool
	}{
		{"em", "1.5em", Measure{1.5, "em"}, false},
		{"mm with space", "20 mm", Measure{20, "mm"}, false},
		{"leading dot", ".5in", Measure{0.5, "in"}, false},
		{"invalid unit", "3furlongs", Measure{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMeasure(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMeasure(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseMeasure(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
