package css

import (
	"testing"

	"github.com/SkuldNorniern/celeris-sub000/dom"
)

func element(tag string, attrs ...dom.Attribute) dom.Node {
	return dom.Element(tag, attrs)
}

func TestApplyStylesClassMatch(t *testing.T) {
	sheet := Parse(`.test { color: red; }`)
	engine := NewStyleEngine(sheet, nil)

	styled := engine.ApplyStyles(element("div", dom.Attribute{Name: "class", Value: "test"}))
	if len(styled.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(styled.Declarations))
	}
	v, ok := styled.Style("color")
	if !ok || !v.Equal(Keyword("red")) {
		t.Errorf("expected color red, got %v (found=%v)", v, ok)
	}

	other := engine.ApplyStyles(element("div", dom.Attribute{Name: "class", Value: "other"}))
	if len(other.Declarations) != 0 {
		t.Errorf("expected no declarations for non-matching class, got %d", len(other.Declarations))
	}
}

func TestApplyStylesTagAndID(t *testing.T) {
	sheet := Parse(`
		p { margin-top: 1em; }
		#main { width: 50%; }
	`)
	engine := NewStyleEngine(sheet, nil)

	styled := engine.ApplyStyles(element("p", dom.Attribute{Name: "id", Value: "main"}))
	if len(styled.Declarations) != 2 {
		t.Fatalf("expected both rules to contribute, got %d declarations", len(styled.Declarations))
	}

	div := engine.ApplyStyles(element("div"))
	if len(div.Declarations) != 0 {
		t.Errorf("expected no declarations for unmatched div, got %d", len(div.Declarations))
	}
}

func TestApplyStylesUniversal(t *testing.T) {
	sheet := Parse(`* { box-sizing: border-box; }`)
	engine := NewStyleEngine(sheet, nil)

	styled := engine.ApplyStyles(element("span"))
	if len(styled.Declarations) != 1 {
		t.Errorf("expected universal match, got %d declarations", len(styled.Declarations))
	}
}

func TestApplyStylesDisjunction(t *testing.T) {
	// component matching is a disjunction: "header .title" matches a bare
	// <header> because the header component alone matches
	sheet := Parse(`header .title { font-weight: bold; }`)
	engine := NewStyleEngine(sheet, nil)

	styled := engine.ApplyStyles(element("header"))
	if len(styled.Declarations) != 1 {
		t.Errorf("expected disjunction match on header, got %d declarations", len(styled.Declarations))
	}

	title := engine.ApplyStyles(element("span", dom.Attribute{Name: "class", Value: "title"}))
	if len(title.Declarations) != 1 {
		t.Errorf("expected disjunction match on .title, got %d declarations", len(title.Declarations))
	}
}

func TestApplyStylesPseudoNeverMatches(t *testing.T) {
	sheet := Parse(`:hover { color: red; } a:first-child { color: blue; }`)
	engine := NewStyleEngine(sheet, nil)

	// :hover alone cannot match; a:first-child still matches through the
	// disjunction on the type component
	hover := engine.ApplyStyles(element("div"))
	if len(hover.Declarations) != 0 {
		t.Errorf("expected :hover to never match, got %d declarations", len(hover.Declarations))
	}

	anchor := engine.ApplyStyles(element("a"))
	if len(anchor.Declarations) != 1 {
		t.Errorf("expected type component of a:first-child to match, got %d", len(anchor.Declarations))
	}
}

func TestApplyStylesAttributeOperators(t *testing.T) {
	sheet := Parse(`
		[disabled] { cursor: default; }
		[type="text"] { color: black; }
		[class~="card"] { display: block; }
		[href^="https"] { color: green; }
		[src$=".png"] { display: inline; }
		[title*="mid"] { color: gray; }
		[lang|="en"] { direction: ltr; }
	`)
	engine := NewStyleEngine(sheet, nil)

	cases := []struct {
		name    string
		node    dom.Node
		matches int
	}{
		{"bare presence", element("input", dom.Attribute{Name: "disabled", Value: ""}), 1},
		{"exact", element("input", dom.Attribute{Name: "type", Value: "text"}), 1},
		{"exact mismatch", element("input", dom.Attribute{Name: "type", Value: "number"}), 0},
		{"word list", element("div", dom.Attribute{Name: "class", Value: "card card-body"}), 1},
		{"prefix", element("a", dom.Attribute{Name: "href", Value: "https://x"}), 1},
		{"suffix", element("img", dom.Attribute{Name: "src", Value: "pic.png"}), 1},
		{"substring", element("div", dom.Attribute{Name: "title", Value: "amidst"}), 1},
		{"dash prefix", element("p", dom.Attribute{Name: "lang", Value: "en-US"}), 1},
		{"dash exact", element("p", dom.Attribute{Name: "lang", Value: "en"}), 1},
		{"dash mismatch", element("p", dom.Attribute{Name: "lang", Value: "english"}), 0},
	}
	for _, c := range cases {
		styled := engine.ApplyStyles(c.node)
		if len(styled.Declarations) != c.matches {
			t.Errorf("%s: expected %d declarations, got %d", c.name, c.matches, len(styled.Declarations))
		}
	}
}

func TestApplyStylesAtRulesFiltered(t *testing.T) {
	sheet := Parse(`
		@media screen { div { color: red; } }
		div { color: blue; }
	`)
	engine := NewStyleEngine(sheet, nil)

	styled := engine.ApplyStyles(element("div"))
	if len(styled.Declarations) != 1 {
		t.Fatalf("expected only the top-level rule to apply, got %d declarations", len(styled.Declarations))
	}
	if !styled.Declarations[0].Value.Equal(Keyword("blue")) {
		t.Errorf("expected the non-media declaration, got %v", styled.Declarations[0].Value)
	}
}

func TestApplyStylesRuleOrderPreserved(t *testing.T) {
	sheet := Parse(`
		div { color: red; }
		div { color: blue; margin: 1px; }
	`)
	engine := NewStyleEngine(sheet, nil)

	styled := engine.ApplyStyles(element("div"))
	if len(styled.Declarations) != 3 {
		t.Fatalf("expected 3 declarations, no deduplication, got %d", len(styled.Declarations))
	}
	// first declared value wins for Style lookup
	v, _ := styled.Style("color")
	if !v.Equal(Keyword("red")) {
		t.Errorf("expected first declaration in order, got %v", v)
	}
}

func TestApplyStylesNonElementNodes(t *testing.T) {
	sheet := Parse(`* { color: red; }`)
	engine := NewStyleEngine(sheet, nil)

	text := engine.ApplyStyles(dom.Text("hello"))
	if len(text.Declarations) != 0 {
		t.Errorf("expected no declarations for a text node, got %d", len(text.Declarations))
	}
	comment := engine.ApplyStyles(dom.Comment("note"))
	if len(comment.Declarations) != 0 {
		t.Errorf("expected no declarations for a comment node, got %d", len(comment.Declarations))
	}
}

func TestApplyStylesNilSheet(t *testing.T) {
	engine := NewStyleEngine(nil, nil)
	styled := engine.ApplyStyles(element("div"))
	if len(styled.Declarations) != 0 {
		t.Errorf("expected no declarations from a nil sheet, got %d", len(styled.Declarations))
	}
}

func TestStyledNodeStyleLookup(t *testing.T) {
	styled := StyledNode{Node: element("div")}
	styled.AddDeclarations([]Declaration{
		NewDeclaration("color", Keyword("red")),
		NewDeclaration("width", LengthValue(50, Percent)),
	})

	if v, ok := styled.Style("WIDTH"); !ok || !v.Equal(LengthValue(50, Percent)) {
		t.Errorf("expected case-insensitive property lookup, got %v (found=%v)", v, ok)
	}
	if _, ok := styled.Style("height"); ok {
		t.Error("expected missing property to report not found")
	}
}

func TestApplyStylesMergedSheets(t *testing.T) {
	ua := DefaultStyleSheet(nil)
	author := Parse(`body { color: navy; }`)
	engine := NewStyleEngine(Merge(ua, author), nil)

	styled := engine.ApplyStyles(element("body"))
	var colors []Value
	for _, d := range styled.Declarations {
		if d.Property == "color" {
			colors = append(colors, d.Value)
		}
	}
	if len(colors) < 2 {
		t.Fatalf("expected color from both sheets, got %d", len(colors))
	}
	if !colors[len(colors)-1].Equal(Keyword("navy")) {
		t.Errorf("expected the author declaration last, got %v", colors[len(colors)-1])
	}
}
