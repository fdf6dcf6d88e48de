package css

import "strings"

// namedColors maps CSS color names to their RGBA values. It covers the
// basic palette plus the extended names commonly seen in real stylesheets.
var namedColors = map[string]Color{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"silver":      {0xc0, 0xc0, 0xc0, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"maroon":      {0x80, 0x00, 0x00, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"purple":      {0x80, 0x00, 0x80, 0xff},
	"fuchsia":     {0xff, 0x00, 0xff, 0xff},
	"magenta":     {0xff, 0x00, 0xff, 0xff},
	"green":       {0x00, 0x80, 0x00, 0xff},
	"lime":        {0x00, 0xff, 0x00, 0xff},
	"olive":       {0x80, 0x80, 0x00, 0xff},
	"yellow":      {0xff, 0xff, 0x00, 0xff},
	"navy":        {0x00, 0x00, 0x80, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"teal":        {0x00, 0x80, 0x80, 0xff},
	"aqua":        {0x00, 0xff, 0xff, 0xff},
	"cyan":        {0x00, 0xff, 0xff, 0xff},
	"orange":      {0xff, 0xa5, 0x00, 0xff},
	"brown":       {0xa5, 0x2a, 0x2a, 0xff},
	"pink":        {0xff, 0xc0, 0xcb, 0xff},
	"gold":        {0xff, 0xd7, 0x00, 0xff},
	"indigo":      {0x4b, 0x00, 0x82, 0xff},
	"violet":      {0xee, 0x82, 0xee, 0xff},
	"crimson":     {0xdc, 0x14, 0x3c, 0xff},
	"coral":       {0xff, 0x7f, 0x50, 0xff},
	"salmon":      {0xfa, 0x80, 0x72, 0xff},
	"khaki":       {0xf0, 0xe6, 0x8c, 0xff},
	"turquoise":   {0x40, 0xe0, 0xd0, 0xff},
	"darkgray":    {0xa9, 0xa9, 0xa9, 0xff},
	"darkgrey":    {0xa9, 0xa9, 0xa9, 0xff},
	"lightgray":   {0xd3, 0xd3, 0xd3, 0xff},
	"lightgrey":   {0xd3, 0xd3, 0xd3, 0xff},
	"darkred":     {0x8b, 0x00, 0x00, 0xff},
	"darkblue":    {0x00, 0x00, 0x8b, 0xff},
	"darkgreen":   {0x00, 0x64, 0x00, 0xff},
	"lightblue":   {0xad, 0xd8, 0xe6, 0xff},
	"lightgreen":  {0x90, 0xee, 0x90, 0xff},
	"lightyellow": {0xff, 0xff, 0xe0, 0xff},
	"skyblue":     {0x87, 0xce, 0xeb, 0xff},
	"steelblue":   {0x46, 0x82, 0xb4, 0xff},
	"slategray":   {0x70, 0x80, 0x90, 0xff},
	"slategrey":   {0x70, 0x80, 0x90, 0xff},
	"tomato":      {0xff, 0x63, 0x47, 0xff},
	"orchid":      {0xda, 0x70, 0xd6, 0xff},
	"plum":        {0xdd, 0xa0, 0xdd, 0xff},
	"tan":         {0xd2, 0xb4, 0x8c, 0xff},
	"beige":       {0xf5, 0xf5, 0xdc, 0xff},
	"ivory":       {0xff, 0xff, 0xf0, 0xff},
	"lavender":    {0xe6, 0xe6, 0xfa, 0xff},
	"transparent": {0x00, 0x00, 0x00, 0x00},
}

// ColorFromName resolves a CSS color name. The lookup is case-insensitive.
// The parser does not apply this: `color: red` stays a keyword, and callers
// that need an actual color resolve it here.
func ColorFromName(name string) (Color, bool) {
	c, ok := namedColors[strings.ToLower(name)]
	return c, ok
}

// ColorFromHex parses the digits of a hex color, without the leading '#'.
// Accepted forms are rgb (each digit doubled), rrggbb, and rrggbbaa.
func ColorFromHex(hex string) (Color, bool) {
	switch len(hex) {
	case 3:
		r, ok1 := hexNibble(hex[0])
		g, ok2 := hexNibble(hex[1])
		b, ok3 := hexNibble(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return Color{r<<4 | r, g<<4 | g, b<<4 | b, 0xff}, true
	case 6:
		r, ok1 := hexPair(hex[0], hex[1])
		g, ok2 := hexPair(hex[2], hex[3])
		b, ok3 := hexPair(hex[4], hex[5])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return Color{r, g, b, 0xff}, true
	case 8:
		r, ok1 := hexPair(hex[0], hex[1])
		g, ok2 := hexPair(hex[2], hex[3])
		b, ok3 := hexPair(hex[4], hex[5])
		a, ok4 := hexPair(hex[6], hex[7])
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return Color{}, false
		}
		return Color{r, g, b, a}, true
	}
	return Color{}, false
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func hexPair(hi, lo byte) (uint8, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	if !ok1 || !ok2 {
		return 0, false
	}
	return h<<4 | l, true
}
