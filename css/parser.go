package css

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Limits bounds every parsing loop. Malformed or adversarial input must not
// make the parser spin or grow without bound, and the grammar alone cannot
// guarantee that, so each loop carries its own explicit cap. Lowering a cap
// degrades fidelity on oversized input; removing one breaks the termination
// guarantee.
type Limits struct {
	// MaxRules caps the top-level rule count of one sheet.
	MaxRules int
	// MaxParseFailures caps consecutive failed rule attempts before the
	// parser gives up on the remaining input.
	MaxParseFailures int
	// MaxDeclarations caps the iterations of one declaration block.
	MaxDeclarations int
	// MaxSelectors caps the selectors of one comma-separated list.
	MaxSelectors int
	// MaxSelectorComponents caps the components of one selector.
	MaxSelectorComponents int
	// MaxNestedRules caps the rules nested in one at-rule block.
	MaxNestedRules int
	// MaxKeyframes caps the frames of one @keyframes block.
	MaxKeyframes int
	// MaxFunctionArgs caps the argument iterations of one function call.
	MaxFunctionArgs int
	// MaxValueParts caps the entries collected into one composite value.
	MaxValueParts int
	// MaxNestingDepth caps at-rule nesting depth.
	MaxNestingDepth int
	// MaxRun caps the bytes consumed by a single character run.
	MaxRun int
}

// DefaultLimits returns caps sized for real-world stylesheets.
func DefaultLimits() Limits {
	return Limits{
		MaxRules:              16384,
		MaxParseFailures:      256,
		MaxDeclarations:       4096,
		MaxSelectors:          256,
		MaxSelectorComponents: 128,
		MaxNestedRules:        1024,
		MaxKeyframes:          512,
		MaxFunctionArgs:       64,
		MaxValueParts:         64,
		MaxNestingDepth:       32,
		MaxRun:                1 << 20,
	}
}

// Parser turns stylesheet text into a StyleSheet. It is a single-pass
// recursive-descent parser over a byte cursor; there is no separate token
// stream. Parsing never fails: malformed input costs rules or declarations,
// never an error to the caller.
//
// A Parser is not safe for concurrent use, but may be reused for multiple
// Parse calls.
type Parser struct {
	log    *zap.Logger
	limits Limits

	src   string
	pos   int
	depth int
}

// NewParser creates a parser with default limits. A nil logger disables
// diagnostics.
func NewParser(log *zap.Logger) *Parser {
	return NewParserWithLimits(log, DefaultLimits())
}

// NewParserWithLimits creates a parser with explicit limits.
func NewParserWithLimits(log *zap.Logger, limits Limits) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser"), limits: limits}
}

// Parse parses one stylesheet with default limits and no diagnostics.
func Parse(input string) *StyleSheet {
	return NewParser(nil).Parse(input)
}

// Parse parses input into a StyleSheet. The result is possibly empty or
// partial but never nil, and the same input always yields a structurally
// equal sheet.
func (p *Parser) Parse(input string) *StyleSheet {
	p.src = input
	p.pos = 0
	p.depth = 0

	sheet := NewStyleSheet()
	failures := 0
	for !p.eof() && len(sheet.Rules) < p.limits.MaxRules {
		p.consumeWhitespace()
		if p.eof() {
			break
		}
		start := p.pos
		rule, ok := p.parseRule()
		if ok && p.pos > start {
			failures = 0
			if rule != nil {
				sheet.AddRule(rule)
			}
			continue
		}
		// A "successful" parse that consumed nothing would loop forever,
		// so it counts as a failure too.
		failures++
		if failures >= p.limits.MaxParseFailures {
			p.log.Warn("giving up on stylesheet remainder",
				zap.Int("pos", p.pos),
				zap.Int("consecutive_failures", failures))
			break
		}
		p.log.Debug("rule parse failed, skipping one character", zap.Int("pos", p.pos))
		p.advance()
	}
	if len(sheet.Rules) >= p.limits.MaxRules {
		p.log.Warn("rule cap reached", zap.Int("max_rules", p.limits.MaxRules))
	}
	return sheet
}

// ParseSelectorList parses a bare comma-separated selector list. Best
// effort: selectors that fail to parse are omitted and the result may be
// empty.
func ParseSelectorList(input string) []Selector {
	p := NewParser(nil)
	p.src = input
	p.pos = 0
	p.consumeWhitespace()
	return p.parseSelectors()
}

// parseRule parses one rule at the cursor. ok reports whether the cursor
// moved past a structurally valid construct; a nil rule with ok=true means
// input was consumed without producing a rule (a skipped at-rule).
func (p *Parser) parseRule() (Rule, bool) {
	if p.peek() == '@' {
		return p.parseAtRule()
	}

	selectors := p.parseSelectors()
	if len(selectors) == 0 {
		return nil, false
	}
	if !p.expect('{') {
		return nil, false
	}
	declarations := p.parseDeclarations()
	if !p.expect('}') {
		p.log.Debug("style rule missing closing brace", zap.Int("pos", p.pos))
		return nil, false
	}
	return &StyleRule{Selectors: selectors, Declarations: declarations}, true
}

// parseSelectors parses a comma-separated selector list, stopping before
// '{' or at the first construct it cannot continue from.
func (p *Parser) parseSelectors() []Selector {
	var selectors []Selector
	for len(selectors) < p.limits.MaxSelectors {
		components := p.parseSelectorComponents()
		if len(components) > 0 {
			selectors = append(selectors, NewSelector(components))
		}
		p.consumeWhitespace()
		if !p.expect(',') {
			break
		}
	}
	return selectors
}

// parseSelectorComponents parses one selector as a flat component sequence.
// Whitespace between compounds becomes a Descendant marker unless an
// explicit combinator intervenes.
func (p *Parser) parseSelectorComponents() []SelectorComponent {
	var components []SelectorComponent
	pendingSpace := false
	for len(components) < p.limits.MaxSelectorComponents {
		if isSpace(p.peek()) || p.startsWith("/*") {
			p.consumeWhitespace()
			pendingSpace = true
			continue
		}
		c := p.peek()
		if p.eof() || c == ',' || c == '{' {
			break
		}
		if c == '>' {
			p.advance()
			components = append(components, Child())
			pendingSpace = false
			continue
		}
		if c == '+' {
			p.advance()
			components = append(components, Adjacent())
			pendingSpace = false
			continue
		}

		comp, ok := p.parseSimpleComponent()
		if !ok {
			break
		}
		if pendingSpace && len(components) > 0 {
			last := components[len(components)-1].Type
			if last != ChildCombinator && last != AdjacentCombinator {
				components = append(components, Descendant())
			}
		}
		pendingSpace = false
		components = append(components, comp)
	}
	return components
}

// parseSimpleComponent parses one non-combinator component: #id, .class, *,
// :pseudo-class, ::pseudo-element, [attr], or a bare type selector.
func (p *Parser) parseSimpleComponent() (SelectorComponent, bool) {
	switch c := p.peek(); {
	case c == '#':
		p.advance()
		name := p.consumeIdentifier()
		if name == "" {
			return SelectorComponent{}, false
		}
		return IDSelector(name), true
	case c == '.':
		p.advance()
		name := p.consumeIdentifier()
		if name == "" {
			return SelectorComponent{}, false
		}
		return ClassSelector(name), true
	case c == '*':
		p.advance()
		return Universal(), true
	case c == ':':
		p.advance()
		element := p.expect(':')
		name := p.consumePseudoName()
		if name == "" {
			return SelectorComponent{}, false
		}
		if element {
			return PseudoElement(name), true
		}
		return PseudoClass(name), true
	case c == '[':
		return p.parseAttributeSelector()
	case isIdentStart(c):
		name := p.consumeIdentifier()
		if name == "" {
			return SelectorComponent{}, false
		}
		return TypeSelector(name), true
	}
	return SelectorComponent{}, false
}

// consumePseudoName reads a pseudo-class or pseudo-element name. Any
// parenthesized argument is kept verbatim inside the name, e.g.
// "nth-child(odd)".
func (p *Parser) consumePseudoName() string {
	name := p.consumeIdentifier()
	if name == "" || p.peek() != '(' {
		return name
	}
	var sb strings.Builder
	sb.WriteString(name)
	depth := 0
	for !p.eof() {
		c := p.advance()
		sb.WriteByte(c)
		if c == '(' {
			depth++
		} else if c == ')' {
			depth--
			if depth == 0 {
				break
			}
		}
	}
	return sb.String()
}

// parseAttributeSelector parses [name] or [name op value]. The operator
// characters are stored concatenated with the raw value text.
func (p *Parser) parseAttributeSelector() (SelectorComponent, bool) {
	p.advance() // [
	p.consumeWhitespace()
	name := p.consumeIdentifier()
	if name == "" {
		return SelectorComponent{}, false
	}
	p.consumeWhitespace()
	if p.expect(']') {
		return AttributeSelector(name, nil), true
	}

	op := p.consumeWhile(isAttrOperator)
	if op == "" {
		return SelectorComponent{}, false
	}
	p.consumeWhitespace()
	var value string
	if q := p.peek(); q == '"' || q == '\'' {
		value = p.parseQuotedText()
	} else {
		value = strings.TrimSpace(p.consumeWhile(func(c byte) bool { return c != ']' }))
	}
	p.consumeWhitespace()
	if !p.expect(']') {
		return SelectorComponent{}, false
	}
	opValue := op + value
	return AttributeSelector(name, &opValue), true
}

// parseDeclarations parses a declaration block body up to, not including,
// the closing brace. A failed declaration costs one character of input and
// the loop retries.
func (p *Parser) parseDeclarations() []Declaration {
	var declarations []Declaration
	for i := 0; i < p.limits.MaxDeclarations; i++ {
		p.consumeWhitespace()
		if p.eof() || p.peek() == '}' {
			break
		}
		decl, ok := p.parseDeclaration()
		if ok {
			declarations = append(declarations, decl)
			continue
		}
		p.log.Debug("declaration dropped", zap.Int("pos", p.pos))
		if p.peek() != '}' {
			p.advance()
		}
	}
	return declarations
}

// parseDeclaration parses `property : value [!important]? ;?`. A missing
// semicolon is tolerated when whitespace or the closing brace follows.
func (p *Parser) parseDeclaration() (Declaration, bool) {
	property := strings.ToLower(p.consumeIdentifier())
	if property == "" {
		return Declaration{}, false
	}
	p.consumeWhitespace()
	if !p.expect(':') {
		return Declaration{}, false
	}
	p.consumeWhitespace()

	value := p.parseValue()
	if value.IsNone() {
		p.log.Debug("value parse failed", zap.String("property", property), zap.Int("pos", p.pos))
		return Declaration{}, false
	}

	wsPos := p.pos
	p.consumeWhitespace()
	important := false
	if p.peek() == '!' {
		p.advance()
		p.consumeWhitespace()
		if !strings.EqualFold(p.consumeIdentifier(), "important") {
			return Declaration{}, false
		}
		important = true
		wsPos = p.pos
		p.consumeWhitespace()
	}

	decl := NewDeclaration(property, value).WithImportant(important)
	switch {
	case p.expect(';'):
		return decl, true
	case p.eof() || p.peek() == '}':
		return decl, true
	case p.pos > wsPos:
		// missing semicolon, but whitespace separates the next construct
		return decl, true
	}
	return Declaration{}, false
}

// parseValue parses a declaration value: one value, or a composite of
// space or slash separated values collected until ';', '}', ')' or end of
// input.
func (p *Parser) parseValue() Value {
	first := p.parseSingleValue()
	if first.IsNone() {
		return None()
	}
	values := []Value{first}
	for len(values) < p.limits.MaxValueParts {
		p.consumeWhitespace()
		if p.eof() {
			break
		}
		switch p.peek() {
		case ';', '}', ')':
			return Multiple(values)
		case '/':
			p.advance()
			p.consumeWhitespace()
		}
		next := p.parseSingleValue()
		if next.IsNone() {
			break
		}
		values = append(values, next)
	}
	return Multiple(values)
}

// parseSingleValue parses one value, dispatching on the leading character.
// On failure it returns None; the cursor may sit past characters consumed
// by the failed attempt.
func (p *Parser) parseSingleValue() Value {
	switch c := p.peek(); {
	case c >= '0' && c <= '9':
		return p.parseLength()
	case c == '#':
		return p.parseHexColor()
	case c == '"' || c == '\'':
		return StringValue(p.parseQuotedText())
	case c == '(':
		p.advance()
		return p.parseFunctionArgs("")
	case c == 'v':
		return p.parseVarOrKeyword()
	case isIdentStart(c):
		return p.parseIdentifierValue()
	}
	return None()
}

// parseVarOrKeyword speculatively parses a var() reference, restoring the
// cursor and falling back to the identifier path when the var( prefix does
// not materialize. A var() fallback argument is consumed and discarded, a
// documented limitation.
func (p *Parser) parseVarOrKeyword() Value {
	saved := p.pos
	if p.startsWith("var(") {
		p.pos += 4
		p.consumeWhitespace()
		name := p.consumeIdentifier()
		if name != "" {
			p.skipBalancedParen()
			return Variable(name)
		}
		p.pos = saved
	}
	return p.parseIdentifierValue()
}

// parseIdentifierValue parses an identifier as either a keyword or, when a
// '(' follows directly, a function call.
func (p *Parser) parseIdentifierValue() Value {
	name := p.consumeIdentifier()
	if name == "" {
		return None()
	}
	if p.peek() == '(' {
		p.advance()
		return p.parseFunctionArgs(name)
	}
	return Keyword(name)
}

// parseFunctionArgs parses function arguments after the opening paren.
// Arguments separate on ',' or '/'; an unparsable argument is skipped to
// the next boundary, and a missing ')' still yields the Function value.
func (p *Parser) parseFunctionArgs(name string) Value {
	var args []Value
	for i := 0; i < p.limits.MaxFunctionArgs; i++ {
		p.consumeWhitespace()
		if p.eof() {
			p.log.Debug("unterminated function call", zap.String("function", name))
			break
		}
		c := p.peek()
		if c == ')' {
			p.advance()
			break
		}
		if c == ',' || c == '/' {
			p.advance()
			continue
		}
		arg := p.parseSingleValue()
		if arg.IsNone() {
			p.skipToArgBoundary()
			continue
		}
		args = append(args, arg)
	}
	return Function(name, args)
}

// skipToArgBoundary advances to the next top-level ',', '/' or ')' without
// consuming it, honoring nested parentheses.
func (p *Parser) skipToArgBoundary() {
	depth := 0
	for !p.eof() {
		switch p.peek() {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return
			}
			depth--
		case ',', '/':
			if depth == 0 {
				return
			}
		}
		p.advance()
	}
}

// skipBalancedParen consumes up to and including the ')' that closes the
// paren group the cursor is inside of.
func (p *Parser) skipBalancedParen() {
	depth := 1
	for !p.eof() && depth > 0 {
		switch p.advance() {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
}

// parseLength parses a number with a length unit. Only px, em, rem and the
// percent form are accepted; any other trailing unit fails the whole parse,
// which is how values like 60vh (and bare numbers) end up dropped.
func (p *Parser) parseLength() Value {
	digits := p.consumeWhile(func(c byte) bool { return (c >= '0' && c <= '9') || c == '.' })
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return None()
	}
	if p.expect('%') {
		return LengthValue(n, Percent)
	}
	switch strings.ToLower(p.consumeWhile(isLetter)) {
	case "px":
		return LengthValue(n, Px)
	case "em":
		return LengthValue(n, Em)
	case "rem":
		return LengthValue(n, Rem)
	}
	return None()
}

// parseHexColor parses #rgb, #rrggbb or #rrggbbaa.
func (p *Parser) parseHexColor() Value {
	p.advance() // #
	c, ok := ColorFromHex(p.consumeWhile(isHexDigit))
	if !ok {
		return None()
	}
	return ColorValue(c)
}

// parseQuotedText consumes a quoted string and returns its unescaped
// contents. An unterminated string yields whatever was consumed.
func (p *Parser) parseQuotedText() string {
	quote := p.advance()
	var sb strings.Builder
	for !p.eof() {
		c := p.advance()
		if c == '\\' {
			if !p.eof() {
				sb.WriteByte(p.advance())
			}
			continue
		}
		if c == quote {
			break
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// parseAtRule dispatches on the lowercased identifier after '@'. Unknown
// at-rules are skipped wholesale and contribute nothing.
func (p *Parser) parseAtRule() (Rule, bool) {
	p.advance() // @
	name := strings.ToLower(p.consumeIdentifier())
	switch name {
	case "media":
		return p.parseMediaRule()
	case "keyframes", "-webkit-keyframes":
		return p.parseKeyframesRule()
	case "font-face":
		return p.parseFontFaceRule()
	case "import":
		return p.parseImportRule()
	case "supports":
		return p.parseSupportsRule()
	case "":
		return nil, false
	}
	p.log.Debug("skipping unknown at-rule", zap.String("name", name))
	p.skipAtRule()
	return nil, true
}

// parseMediaRule parses `@media <condition> { rules }`. The condition is
// the verbatim prelude text, trimmed, not evaluated.
func (p *Parser) parseMediaRule() (Rule, bool) {
	condition, ok := p.parseConditionPrelude()
	if !ok {
		return nil, false
	}
	rules := p.parseNestedRules()
	p.consumeWhitespace()
	if !p.expect('}') {
		p.log.Debug("unterminated @media block", zap.String("condition", condition))
		p.skipBlockRemainder()
	}
	return &MediaRule{Condition: condition, Rules: rules}, true
}

// parseSupportsRule parses `@supports <condition> { rules }` the same way
// @media is parsed.
func (p *Parser) parseSupportsRule() (Rule, bool) {
	condition, ok := p.parseConditionPrelude()
	if !ok {
		return nil, false
	}
	rules := p.parseNestedRules()
	p.consumeWhitespace()
	if !p.expect('}') {
		p.log.Debug("unterminated @supports block", zap.String("condition", condition))
		p.skipBlockRemainder()
	}
	return &SupportsRule{Condition: condition, Rules: rules}, true
}

// parseConditionPrelude reads the raw condition text of a conditional
// at-rule and consumes the opening brace.
func (p *Parser) parseConditionPrelude() (string, bool) {
	condition := strings.TrimSpace(p.consumeWhile(func(c byte) bool {
		return c != '{' && c != '}' && c != ';'
	}))
	if !p.expect('{') {
		return "", false
	}
	return condition, true
}

// parseNestedRules parses the rules inside a conditional at-rule block,
// stopping before the closing brace. Depth and rule count are capped; on
// overflow the remainder of the block is discarded so the rest of the sheet
// still parses.
func (p *Parser) parseNestedRules() []Rule {
	if p.depth >= p.limits.MaxNestingDepth {
		p.log.Warn("at-rule nesting cap reached", zap.Int("depth", p.depth))
		p.skipBlockRemainderKeepingClose()
		return nil
	}
	p.depth++
	defer func() { p.depth-- }()

	var rules []Rule
	failures := 0
	for len(rules) < p.limits.MaxNestedRules {
		p.consumeWhitespace()
		if p.eof() || p.peek() == '}' {
			return rules
		}
		start := p.pos
		rule, ok := p.parseRule()
		if ok && p.pos > start {
			failures = 0
			if rule != nil {
				rules = append(rules, rule)
			}
			continue
		}
		failures++
		if failures >= p.limits.MaxParseFailures {
			p.log.Warn("giving up on at-rule block remainder", zap.Int("pos", p.pos))
			break
		}
		p.advance()
	}
	if len(rules) >= p.limits.MaxNestedRules {
		p.log.Warn("nested rule cap reached", zap.Int("max_nested_rules", p.limits.MaxNestedRules))
	}
	p.skipBlockRemainderKeepingClose()
	return rules
}

// parseKeyframesRule parses `@keyframes name { frames }`. Frame selectors
// ("from", "0%, 100%") are kept as verbatim text.
func (p *Parser) parseKeyframesRule() (Rule, bool) {
	p.consumeWhitespace()
	name := p.consumeIdentifier()
	if name == "" {
		return nil, false
	}
	p.consumeWhitespace()
	if !p.expect('{') {
		return nil, false
	}

	var frames []Keyframe
	for len(frames) < p.limits.MaxKeyframes {
		p.consumeWhitespace()
		if p.eof() || p.peek() == '}' {
			break
		}
		selector := strings.TrimSpace(p.consumeWhile(func(c byte) bool {
			return c != '{' && c != '}'
		}))
		if !p.expect('{') {
			break
		}
		declarations := p.parseDeclarations()
		terminated := p.expect('}')
		if selector != "" {
			frames = append(frames, Keyframe{Selector: selector, Declarations: declarations})
		}
		if !terminated {
			break
		}
	}
	if len(frames) >= p.limits.MaxKeyframes {
		p.log.Warn("keyframe cap reached", zap.String("name", name))
	}
	p.consumeWhitespace()
	if !p.expect('}') {
		p.skipBlockRemainder()
	}
	return &KeyframesRule{Name: name, Keyframes: frames}, true
}

// parseFontFaceRule parses `@font-face { declarations }`.
func (p *Parser) parseFontFaceRule() (Rule, bool) {
	p.consumeWhitespace()
	if !p.expect('{') {
		return nil, false
	}
	declarations := p.parseDeclarations()
	if !p.expect('}') {
		p.skipBlockRemainder()
	}
	return &FontFaceRule{Declarations: declarations}, true
}

// parseImportRule parses `@import url("x")` or `@import "x"` through the
// terminating semicolon. Trailing media text is discarded; the rule is
// reduced to its URL.
func (p *Parser) parseImportRule() (Rule, bool) {
	p.consumeWhitespace()
	var url string
	switch {
	case p.startsWith("url("):
		p.pos += 4
		p.consumeWhitespace()
		if q := p.peek(); q == '"' || q == '\'' {
			url = p.parseQuotedText()
		} else {
			url = strings.TrimSpace(p.consumeWhile(func(c byte) bool {
				return c != ')' && c != ';' && c != '}'
			}))
		}
		p.consumeWhitespace()
		p.expect(')')
	case p.peek() == '"' || p.peek() == '\'':
		url = p.parseQuotedText()
	}
	p.consumeWhile(func(c byte) bool { return c != ';' && c != '}' })
	p.expect(';')
	if url == "" {
		p.log.Debug("@import without a resolvable url")
		return nil, true
	}
	return &ImportRule{URL: url}, true
}

// skipAtRule consumes an unrecognized at-rule: either through its
// terminating ';' (statement form) or through its balanced block.
func (p *Parser) skipAtRule() {
	for !p.eof() {
		switch p.advance() {
		case ';':
			return
		case '{':
			depth := 1
			for !p.eof() && depth > 0 {
				switch p.advance() {
				case '{':
					depth++
				case '}':
					depth--
				}
			}
			return
		}
	}
}

// skipBlockRemainder consumes up to and including the '}' closing the block
// the cursor is inside of.
func (p *Parser) skipBlockRemainder() {
	depth := 1
	for !p.eof() && depth > 0 {
		switch p.advance() {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
}

// skipBlockRemainderKeepingClose consumes up to, but not including, the '}'
// closing the block the cursor is inside of.
func (p *Parser) skipBlockRemainderKeepingClose() {
	depth := 0
	for !p.eof() {
		switch p.peek() {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return
			}
			depth--
		}
		p.advance()
	}
}

// cursor primitives

func (p *Parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *Parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *Parser) peekAt(offset int) byte {
	if p.pos+offset >= len(p.src) {
		return 0
	}
	return p.src[p.pos+offset]
}

func (p *Parser) advance() byte {
	if p.eof() {
		return 0
	}
	c := p.src[p.pos]
	p.pos++
	return c
}

// expect consumes the next byte when it equals c.
func (p *Parser) expect(c byte) bool {
	if p.peek() == c {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) startsWith(s string) bool {
	return strings.HasPrefix(p.src[p.pos:], s)
}

// consumeWhile consumes bytes satisfying pred, up to the run cap, and
// returns them.
func (p *Parser) consumeWhile(pred func(byte) bool) string {
	start := p.pos
	for !p.eof() && p.pos-start < p.limits.MaxRun && pred(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// consumeWhitespace consumes whitespace and /* */ comments. An unterminated
// comment consumes the rest of the input.
func (p *Parser) consumeWhitespace() {
	for !p.eof() {
		c := p.peek()
		if isSpace(c) {
			p.advance()
			continue
		}
		if c == '/' && p.peekAt(1) == '*' {
			p.pos += 2
			for !p.eof() {
				if p.peek() == '*' && p.peekAt(1) == '/' {
					p.pos += 2
					break
				}
				p.advance()
			}
			continue
		}
		break
	}
}

// consumeIdentifier consumes an identifier run. A backslash escapes the
// following byte into the identifier, which is how selectors like
// `.hover\:underline` produce the class name "hover:underline".
func (p *Parser) consumeIdentifier() string {
	var sb strings.Builder
	for n := 0; !p.eof() && n < p.limits.MaxRun; n++ {
		c := p.peek()
		if c == '\\' && p.pos+1 < len(p.src) {
			p.advance()
			sb.WriteByte(p.advance())
			continue
		}
		if !isIdentChar(c) {
			break
		}
		sb.WriteByte(p.advance())
	}
	return sb.String()
}

// character classes

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return isLetter(c) || c == '-' || c == '_' || c == '\\' || c >= 0x80
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_' || c >= 0x80
}

func isAttrOperator(c byte) bool {
	switch c {
	case '=', '~', '^', '$', '*', '|':
		return true
	}
	return false
}
