package css

import (
	"fmt"
	"strings"
)

// ComponentType discriminates selector components.
type ComponentType int

const (
	// ComponentType-prefixed names follow the selector grammar: simple
	// selectors first, then the combinator markers, then the pseudo and
	// attribute forms.
	TypeComponent ComponentType = iota
	IDComponent
	ClassComponent
	UniversalComponent
	DescendantCombinator
	ChildCombinator
	AdjacentCombinator
	PseudoClassComponent
	PseudoElementComponent
	AttributeComponent
)

// SelectorComponent is one entry in a selector's flat component sequence.
// Combinator markers are interleaved positionally with the simple selectors
// rather than forming a tree.
//
// For TypeComponent, IDComponent, ClassComponent, PseudoClassComponent and
// PseudoElementComponent, Name holds the identifier; a pseudo-class name may
// embed its argument text verbatim, e.g. "nth-child(odd)". For
// AttributeComponent, Name is the attribute name and Value, when non-nil,
// holds the operator characters concatenated with the raw value text
// (`"=text"`, `"~=card"`); a nil Value is a bare presence test.
type SelectorComponent struct {
	Type  ComponentType
	Name  string
	Value *string
}

// TypeSelector creates a type (tag name) component.
func TypeSelector(name string) SelectorComponent {
	return SelectorComponent{Type: TypeComponent, Name: name}
}

// IDSelector creates an #id component.
func IDSelector(name string) SelectorComponent {
	return SelectorComponent{Type: IDComponent, Name: name}
}

// ClassSelector creates a .class component.
func ClassSelector(name string) SelectorComponent {
	return SelectorComponent{Type: ClassComponent, Name: name}
}

// Universal creates the * component.
func Universal() SelectorComponent {
	return SelectorComponent{Type: UniversalComponent}
}

// Descendant creates the whitespace combinator marker.
func Descendant() SelectorComponent {
	return SelectorComponent{Type: DescendantCombinator}
}

// Child creates the > combinator marker.
func Child() SelectorComponent {
	return SelectorComponent{Type: ChildCombinator}
}

// Adjacent creates the + combinator marker.
func Adjacent() SelectorComponent {
	return SelectorComponent{Type: AdjacentCombinator}
}

// PseudoClass creates a :name component. Argument text stays embedded in the
// name ("not(.active)").
func PseudoClass(name string) SelectorComponent {
	return SelectorComponent{Type: PseudoClassComponent, Name: name}
}

// PseudoElement creates a ::name component.
func PseudoElement(name string) SelectorComponent {
	return SelectorComponent{Type: PseudoElementComponent, Name: name}
}

// AttributeSelector creates an [name] or [name op value] component. opValue
// is nil for the bare form, otherwise the operator characters concatenated
// with the value text.
func AttributeSelector(name string, opValue *string) SelectorComponent {
	return SelectorComponent{Type: AttributeComponent, Name: name, Value: opValue}
}

// String serializes the component back to selector syntax.
func (c SelectorComponent) String() string {
	switch c.Type {
	case TypeComponent:
		return c.Name
	case IDComponent:
		return "#" + c.Name
	case ClassComponent:
		return "." + c.Name
	case UniversalComponent:
		return "*"
	case DescendantCombinator:
		return " "
	case ChildCombinator:
		return " > "
	case AdjacentCombinator:
		return " + "
	case PseudoClassComponent:
		return ":" + c.Name
	case PseudoElementComponent:
		return "::" + c.Name
	case AttributeComponent:
		if c.Value == nil {
			return "[" + c.Name + "]"
		}
		return "[" + c.Name + *c.Value + "]"
	}
	return ""
}

// Specificity is the (ids, classes, types) precedence triple. Combinators,
// pseudo components and attribute selectors do not contribute.
type Specificity struct {
	IDs     int
	Classes int
	Types   int
}

// Compare orders two specificities lexicographically: negative when s is
// lower precedence than o, zero when equal, positive when higher.
func (s Specificity) Compare(o Specificity) int {
	if s.IDs != o.IDs {
		return s.IDs - o.IDs
	}
	if s.Classes != o.Classes {
		return s.Classes - o.Classes
	}
	return s.Types - o.Types
}

// Less reports whether s has strictly lower precedence than o.
func (s Specificity) Less(o Specificity) bool {
	return s.Compare(o) < 0
}

// String formats the triple as "(ids,classes,types)".
func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.IDs, s.Classes, s.Types)
}

// Selector is an ordered component sequence with its derived specificity.
// The specificity is computed once at construction and never changes
// afterwards, so Components must not be mutated once the selector exists.
type Selector struct {
	Components  []SelectorComponent
	Specificity Specificity
}

// NewSelector builds a selector and computes its specificity.
func NewSelector(components []SelectorComponent) Selector {
	return Selector{
		Components:  components,
		Specificity: calculateSpecificity(components),
	}
}

func calculateSpecificity(components []SelectorComponent) Specificity {
	var s Specificity
	for _, c := range components {
		switch c.Type {
		case IDComponent:
			s.IDs++
		case ClassComponent:
			s.Classes++
		case TypeComponent:
			s.Types++
		}
	}
	return s
}

// String serializes the selector. Combinator markers carry their own
// spacing; adjacent simple selectors stay joined, matching compound
// selector syntax.
func (sel Selector) String() string {
	var sb strings.Builder
	prevSimple := false
	for _, c := range sel.Components {
		switch c.Type {
		case DescendantCombinator, ChildCombinator, AdjacentCombinator:
			sb.WriteString(c.String())
			prevSimple = false
		case TypeComponent:
			// A type selector directly after another simple selector
			// would fuse into it, so separate with a space.
			if prevSimple {
				sb.WriteByte(' ')
			}
			sb.WriteString(c.Name)
			prevSimple = true
		default:
			sb.WriteString(c.String())
			prevSimple = true
		}
	}
	return sb.String()
}
