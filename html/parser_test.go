package html

import (
	"testing"

	"github.com/SkuldNorniern/celeris-sub000/dom"
)

func TestParseBasicDocument(t *testing.T) {
	root, err := ParseString(`<html><head><title>hi</title></head><body><p id="a">text</p></body></html>`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if root.Type != dom.ElementNode || root.TagName != "html" {
		t.Fatalf("expected <html> root, got %v %q", root.Type, root.TagName)
	}

	var p *dom.Node
	root.Walk(func(n *dom.Node) {
		if n.Type == dom.ElementNode && n.TagName == "p" {
			p = n
		}
	})
	if p == nil {
		t.Fatal("expected a <p> element in the tree")
	}
	if p.ID() != "a" {
		t.Errorf("expected p id 'a', got %q", p.ID())
	}
	if p.TextContent() != "text" {
		t.Errorf("expected p text 'text', got %q", p.TextContent())
	}
}

func TestParseFragmentGetsDocumentStructure(t *testing.T) {
	// x/net/html wraps fragments in html/head/body
	root, err := ParseString(`<div class="box">hello</div>`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if root.TagName != "html" {
		t.Fatalf("expected synthesized <html> root, got %q", root.TagName)
	}

	found := false
	root.Walk(func(n *dom.Node) {
		if n.Type == dom.ElementNode && n.TagName == "div" && n.HasClass("box") {
			found = true
		}
	})
	if !found {
		t.Error("expected div.box in converted tree")
	}
}

func TestStyleTextsDocumentOrder(t *testing.T) {
	root, err := ParseString(`
		<html>
		<head>
			<style>body { color: red; }</style>
		</head>
		<body>
			<style>p { color: blue; }</style>
			<p>text</p>
		</body>
		</html>
	`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	texts := StyleTexts(root)
	if len(texts) != 2 {
		t.Fatalf("expected 2 style bodies, got %d", len(texts))
	}
	if texts[0] != "body { color: red; }" {
		t.Errorf("expected head style first, got %q", texts[0])
	}
	if texts[1] != "p { color: blue; }" {
		t.Errorf("expected body style second, got %q", texts[1])
	}
}

func TestStyleTextsNoStyles(t *testing.T) {
	root, err := ParseString(`<p>plain</p>`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if texts := StyleTexts(root); len(texts) != 0 {
		t.Errorf("expected no style bodies, got %d", len(texts))
	}
}
