// Package dom provides the markup-node tree consumed by style resolution.
// Nodes are plain values: the css package copies them freely and never
// mutates them.
package dom

import "strings"

// NodeType discriminates the node variants.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
	CommentNode
)

// String returns the lowercase name of the node type.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	}
	return "unknown"
}

// Attribute is a single name/value pair on an element.
type Attribute struct {
	Name  string
	Value string
}

// Node is one node in the markup tree.
//
// For ElementNode, TagName and Attributes are set. For TextNode and
// CommentNode, Data holds the text. Children is in document order.
type Node struct {
	Type       NodeType
	TagName    string
	Attributes []Attribute
	Data       string
	Children   []Node
}

// Element creates an element node.
func Element(tagName string, attrs []Attribute, children ...Node) Node {
	return Node{
		Type:       ElementNode,
		TagName:    tagName,
		Attributes: attrs,
		Children:   children,
	}
}

// Text creates a text node.
func Text(data string) Node {
	return Node{Type: TextNode, Data: data}
}

// Comment creates a comment node.
func Comment(data string) Node {
	return Node{Type: CommentNode, Data: data}
}

// Attr returns the value of the named attribute and whether it is present.
// Attribute names are matched case-insensitively, as HTML attribute names
// are lowercased on parse.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attributes {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// ID returns the element's id attribute, or "" when absent.
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// Classes returns the whitespace-separated entries of the class attribute.
func (n *Node) Classes() []string {
	class, ok := n.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}

// HasClass reports whether the element's class list contains name.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// Walk visits n and every descendant in preorder.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for i := range n.Children {
		n.Children[i].Walk(visit)
	}
}

// TextContent concatenates the text of n and all descendant text nodes.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.Walk(func(c *Node) {
		if c.Type == TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}
