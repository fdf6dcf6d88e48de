// Package html builds dom trees from HTML text using golang.org/x/net/html
// as the underlying parser implementation, and extracts the inline <style>
// bodies that feed the stylesheet engine.
package html

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/SkuldNorniern/celeris-sub000/dom"
)

// Parse reads an HTML document and returns the root of the converted dom
// tree. The root is the <html> element when the document has one, otherwise
// the first converted child of the document node.
func Parse(r io.Reader) (dom.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return dom.Node{}, fmt.Errorf("parsing html: %w", err)
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if node, ok := convert(c); ok {
			return node, nil
		}
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if node, ok := convert(c); ok {
			return node, nil
		}
	}
	return dom.Node{}, fmt.Errorf("parsing html: document has no element content")
}

// ParseString parses an HTML document held in a string.
func ParseString(text string) (dom.Node, error) {
	return Parse(strings.NewReader(text))
}

// convert maps one x/net/html node onto a dom.Node. Doctype and error nodes
// have no dom representation and report ok=false.
func convert(n *html.Node) (dom.Node, bool) {
	switch n.Type {
	case html.ElementNode:
		attrs := make([]dom.Attribute, 0, len(n.Attr))
		for _, a := range n.Attr {
			attrs = append(attrs, dom.Attribute{Name: a.Key, Value: a.Val})
		}
		var children []dom.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child, ok := convert(c); ok {
				children = append(children, child)
			}
		}
		return dom.Element(n.Data, attrs, children...), true
	case html.TextNode:
		return dom.Text(n.Data), true
	case html.CommentNode:
		return dom.Comment(n.Data), true
	}
	return dom.Node{}, false
}

// StyleTexts returns the text content of every <style> element under root,
// in document order. These are the inline stylesheet bodies a caller merges
// before building a style engine.
func StyleTexts(root dom.Node) []string {
	var texts []string
	root.Walk(func(n *dom.Node) {
		if n.Type == dom.ElementNode && strings.EqualFold(n.TagName, "style") {
			texts = append(texts, n.TextContent())
		}
	})
	return texts
}
