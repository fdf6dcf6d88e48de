package css

import "strings"

// Declaration is a single property/value pair inside a rule body. Created by
// the parser and immutable afterwards.
type Declaration struct {
	Property  string
	Value     Value
	Important bool
}

// NewDeclaration creates a declaration without the important flag.
func NewDeclaration(property string, value Value) Declaration {
	return Declaration{Property: property, Value: value}
}

// WithImportant returns a copy of the declaration with the important flag.
func (d Declaration) WithImportant(important bool) Declaration {
	d.Important = important
	return d
}

// Equal reports structural equality of two declarations.
func (d Declaration) Equal(o Declaration) bool {
	return d.Property == o.Property && d.Important == o.Important && d.Value.Equal(o.Value)
}

// String serializes the declaration as it would appear in a rule body.
func (d Declaration) String() string {
	var sb strings.Builder
	sb.WriteString(d.Property)
	sb.WriteString(": ")
	sb.WriteString(d.Value.String())
	if d.Important {
		sb.WriteString(" !important")
	}
	sb.WriteByte(';')
	return sb.String()
}

// Rule is either a style rule or one of the at-rule forms. The concrete
// types are *StyleRule, *MediaRule, *KeyframesRule, *FontFaceRule,
// *ImportRule and *SupportsRule.
type Rule interface {
	// CSSText serializes the rule.
	CSSText() string

	isRule()
}

// StyleRule is a selector list with a declaration block.
type StyleRule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// MediaRule is an @media block: the raw condition text and the rules nested
// inside it. Nested rules are owned outright and may themselves be at-rules.
type MediaRule struct {
	Condition string
	Rules     []Rule
}

// KeyframesRule is an @keyframes block.
type KeyframesRule struct {
	Name      string
	Keyframes []Keyframe
}

// Keyframe is one frame of a keyframes rule. Selector is the verbatim frame
// selector text ("from", "to", "0%", "0%, 100%").
type Keyframe struct {
	Selector     string
	Declarations []Declaration
}

// FontFaceRule is an @font-face declaration block.
type FontFaceRule struct {
	Declarations []Declaration
}

// ImportRule is an @import statement reduced to its URL.
type ImportRule struct {
	URL string
}

// SupportsRule is an @supports block: raw condition text plus nested rules.
type SupportsRule struct {
	Condition string
	Rules     []Rule
}

func (*StyleRule) isRule()     {}
func (*MediaRule) isRule()     {}
func (*KeyframesRule) isRule() {}
func (*FontFaceRule) isRule()  {}
func (*ImportRule) isRule()    {}
func (*SupportsRule) isRule()  {}

// CSSText serializes the rule with its full declaration block.
func (r *StyleRule) CSSText() string {
	sels := make([]string, len(r.Selectors))
	for i, s := range r.Selectors {
		sels[i] = s.String()
	}
	var sb strings.Builder
	sb.WriteString(strings.Join(sels, ", "))
	sb.WriteString(" {")
	writeDeclarations(&sb, r.Declarations)
	sb.WriteString(" }")
	return sb.String()
}

// CSSText serializes the media rule and its nested rules.
func (r *MediaRule) CSSText() string {
	return "@media " + r.Condition + " {" + joinRuleText(r.Rules) + " }"
}

// CSSText serializes the keyframes rule.
func (r *KeyframesRule) CSSText() string {
	var sb strings.Builder
	sb.WriteString("@keyframes ")
	sb.WriteString(r.Name)
	sb.WriteString(" {")
	for _, kf := range r.Keyframes {
		sb.WriteByte(' ')
		sb.WriteString(kf.Selector)
		sb.WriteString(" {")
		writeDeclarations(&sb, kf.Declarations)
		sb.WriteString(" }")
	}
	sb.WriteString(" }")
	return sb.String()
}

// CSSText serializes the font-face rule.
func (r *FontFaceRule) CSSText() string {
	var sb strings.Builder
	sb.WriteString("@font-face {")
	writeDeclarations(&sb, r.Declarations)
	sb.WriteString(" }")
	return sb.String()
}

// CSSText serializes the import rule.
func (r *ImportRule) CSSText() string {
	return `@import url("` + r.URL + `");`
}

// CSSText serializes the supports rule and its nested rules.
func (r *SupportsRule) CSSText() string {
	return "@supports " + r.Condition + " {" + joinRuleText(r.Rules) + " }"
}

func writeDeclarations(sb *strings.Builder, decls []Declaration) {
	for _, d := range decls {
		sb.WriteByte(' ')
		sb.WriteString(d.String())
	}
}

func joinRuleText(rules []Rule) string {
	var sb strings.Builder
	for _, r := range rules {
		sb.WriteByte(' ')
		sb.WriteString(r.CSSText())
	}
	return sb.String()
}

// StyleSheet is an ordered rule list. The parser populates it append-only;
// insertion order is preserved because the later cascade stage breaks
// specificity ties by document order.
type StyleSheet struct {
	Rules []Rule
}

// NewStyleSheet creates an empty sheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{}
}

// AddRule appends a rule, keeping insertion order.
func (s *StyleSheet) AddRule(r Rule) {
	s.Rules = append(s.Rules, r)
}

// StyleRules returns the top-level style rules in order.
func (s *StyleSheet) StyleRules() []*StyleRule {
	var out []*StyleRule
	for _, r := range s.Rules {
		if sr, ok := r.(*StyleRule); ok {
			out = append(out, sr)
		}
	}
	return out
}

// AtRules returns the top-level at-rules in order.
func (s *StyleSheet) AtRules() []Rule {
	var out []Rule
	for _, r := range s.Rules {
		if _, ok := r.(*StyleRule); !ok {
			out = append(out, r)
		}
	}
	return out
}

// MediaRules returns the top-level @media rules in order.
func (s *StyleSheet) MediaRules() []*MediaRule {
	var out []*MediaRule
	for _, r := range s.Rules {
		if mr, ok := r.(*MediaRule); ok {
			out = append(out, mr)
		}
	}
	return out
}

// KeyframesRules returns the top-level @keyframes rules in order.
func (s *StyleSheet) KeyframesRules() []*KeyframesRule {
	var out []*KeyframesRule
	for _, r := range s.Rules {
		if kr, ok := r.(*KeyframesRule); ok {
			out = append(out, kr)
		}
	}
	return out
}

// FontFaceRules returns the top-level @font-face rules in order.
func (s *StyleSheet) FontFaceRules() []*FontFaceRule {
	var out []*FontFaceRule
	for _, r := range s.Rules {
		if fr, ok := r.(*FontFaceRule); ok {
			out = append(out, fr)
		}
	}
	return out
}

// ImportRules returns the top-level @import rules in order.
func (s *StyleSheet) ImportRules() []*ImportRule {
	var out []*ImportRule
	for _, r := range s.Rules {
		if ir, ok := r.(*ImportRule); ok {
			out = append(out, ir)
		}
	}
	return out
}

// SupportsRules returns the top-level @supports rules in order.
func (s *StyleSheet) SupportsRules() []*SupportsRule {
	var out []*SupportsRule
	for _, r := range s.Rules {
		if sr, ok := r.(*SupportsRule); ok {
			out = append(out, sr)
		}
	}
	return out
}

// CSSText serializes every rule, one per line.
func (s *StyleSheet) CSSText() string {
	lines := make([]string, len(s.Rules))
	for i, r := range s.Rules {
		lines[i] = r.CSSText()
	}
	return strings.Join(lines, "\n")
}

// Merge concatenates the rules of the given sheets into a new sheet,
// preserving argument order then rule order. This is how inline and external
// sheets are combined before building one style engine.
func Merge(sheets ...*StyleSheet) *StyleSheet {
	merged := NewStyleSheet()
	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		merged.Rules = append(merged.Rules, sheet.Rules...)
	}
	return merged
}
