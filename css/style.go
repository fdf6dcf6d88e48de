package css

import (
	"strings"

	"go.uber.org/zap"

	"github.com/SkuldNorniern/celeris-sub000/dom"
)

// StyleEngine resolves which declarations of a stylesheet apply to a markup
// node. It reads the sheet only; building one engine over the merge of all
// relevant sheets is the intended usage.
type StyleEngine struct {
	sheet *StyleSheet
	log   *zap.Logger
}

// NewStyleEngine creates an engine over a sheet. A nil logger disables
// diagnostics.
func NewStyleEngine(sheet *StyleSheet, log *zap.Logger) *StyleEngine {
	if log == nil {
		log = zap.NewNop()
	}
	return &StyleEngine{sheet: sheet, log: log.Named("style-engine")}
}

// Sheet returns the engine's stylesheet.
func (e *StyleEngine) Sheet() *StyleSheet {
	return e.sheet
}

// ApplyStyles collects every declaration applying to the node. The node is
// copied into the result; declarations append in rule order with no
// deduplication or precedence resolution, which belongs to a later cascade
// stage. At-rules are not evaluated and contribute nothing.
func (e *StyleEngine) ApplyStyles(node dom.Node) StyledNode {
	styled := StyledNode{Node: node}
	if e.sheet == nil || node.Type != dom.ElementNode {
		return styled
	}
	for _, rule := range e.sheet.Rules {
		styleRule, ok := rule.(*StyleRule)
		if !ok {
			continue
		}
		if matchesNode(styleRule.Selectors, &node) {
			styled.Declarations = append(styled.Declarations, styleRule.Declarations...)
		}
	}
	e.log.Debug("resolved styles",
		zap.String("tag", node.TagName),
		zap.Int("declarations", len(styled.Declarations)))
	return styled
}

// matchesNode reports whether any selector in the list matches the node.
func matchesNode(selectors []Selector, node *dom.Node) bool {
	for i := range selectors {
		if matchesSelector(&selectors[i], node) {
			return true
		}
	}
	return false
}

// matchesSelector treats the component sequence as a disjunction: the
// selector matches when any single component does. Combinator markers and
// pseudo components never match, since interaction state and sibling or
// parent context are not visible from a lone node. This is much looser than
// combinator-aware matching and is kept for compatibility with the
// established behavior.
func matchesSelector(sel *Selector, node *dom.Node) bool {
	for _, comp := range sel.Components {
		if matchesComponent(comp, node) {
			return true
		}
	}
	return false
}

func matchesComponent(comp SelectorComponent, node *dom.Node) bool {
	switch comp.Type {
	case TypeComponent:
		return comp.Name == node.TagName
	case IDComponent:
		return comp.Name != "" && node.ID() == comp.Name
	case ClassComponent:
		return node.HasClass(comp.Name)
	case UniversalComponent:
		return true
	case AttributeComponent:
		return matchesAttribute(comp, node)
	}
	return false
}

// matchesAttribute evaluates an attribute component. A nil value is a bare
// presence test; otherwise the stored operator+value text selects the
// comparison.
func matchesAttribute(comp SelectorComponent, node *dom.Node) bool {
	got, present := node.Attr(comp.Name)
	if comp.Value == nil {
		return present
	}
	if !present {
		return false
	}
	op, want := splitAttrOp(*comp.Value)
	switch op {
	case "=":
		return got == want
	case "~=":
		for _, field := range strings.Fields(got) {
			if field == want {
				return true
			}
		}
		return false
	case "^=":
		return want != "" && strings.HasPrefix(got, want)
	case "$=":
		return want != "" && strings.HasSuffix(got, want)
	case "*=":
		return want != "" && strings.Contains(got, want)
	case "|=":
		return got == want || strings.HasPrefix(got, want+"-")
	}
	return false
}

// splitAttrOp splits the concatenated operator+value form stored on
// attribute components: "=text" becomes ("=", "text").
func splitAttrOp(s string) (op, value string) {
	i := 0
	for i < len(s) && isAttrOperator(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// StyledNode pairs a value copy of a markup node with the ordered
// declarations contributed by every matching rule.
type StyledNode struct {
	Node         dom.Node
	Declarations []Declaration
}

// AddDeclarations appends declarations, preserving order.
func (s *StyledNode) AddDeclarations(declarations []Declaration) {
	s.Declarations = append(s.Declarations, declarations...)
}

// Style returns the first declared value for the property, in declaration
// order, and whether any declaration named it.
func (s *StyledNode) Style(property string) (Value, bool) {
	property = strings.ToLower(property)
	for _, d := range s.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return None(), false
}
