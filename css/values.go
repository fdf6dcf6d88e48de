// Package css implements the stylesheet engine: a tokenless recursive-descent
// parser, the selector model with specificity, the value and rule models, and
// cascade-naive style resolution against a markup node.
package css

import (
	"strconv"
	"strings"
)

// ValueType discriminates the Value variants.
type ValueType int

const (
	// ValueNone marks the absence of a value, e.g. a failed parse.
	ValueNone ValueType = iota
	ValueKeyword
	ValueLength
	ValueColor
	ValueMultiple
	ValueFunction
	ValueVariable
	ValueString
)

// Unit is a CSS length unit.
type Unit int

const (
	Px Unit = iota
	Em
	Rem
	Percent
	Vh
	Vw
	Vmin
	Vmax
)

// UnitFromString maps a unit suffix to its Unit. The match is
// case-insensitive.
func UnitFromString(s string) (Unit, bool) {
	switch strings.ToLower(s) {
	case "px":
		return Px, true
	case "em":
		return Em, true
	case "rem":
		return Rem, true
	case "%":
		return Percent, true
	case "vh":
		return Vh, true
	case "vw":
		return Vw, true
	case "vmin":
		return Vmin, true
	case "vmax":
		return Vmax, true
	}
	return Px, false
}

// String returns the CSS suffix for the unit.
func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	case Em:
		return "em"
	case Rem:
		return "rem"
	case Percent:
		return "%"
	case Vh:
		return "vh"
	case Vw:
		return "vw"
	case Vmin:
		return "vmin"
	case Vmax:
		return "vmax"
	}
	return ""
}

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// Value is a parsed CSS value. Type selects which of the remaining fields
// are meaningful:
//
//	ValueKeyword  — Keyword
//	ValueLength   — Length, Unit
//	ValueColor    — Color
//	ValueMultiple — Values (always two or more entries)
//	ValueFunction — Name, Args (zero args is a valid, recovered call)
//	ValueVariable — Name (the custom property, fallback not preserved)
//	ValueString   — Str
//	ValueNone     — nothing
type Value struct {
	Type    ValueType
	Keyword string
	Length  float64
	Unit    Unit
	Color   Color
	Values  []Value
	Name    string
	Args    []Value
	Str     string
}

// None returns the absent value.
func None() Value {
	return Value{Type: ValueNone}
}

// Keyword creates a keyword value.
func Keyword(word string) Value {
	return Value{Type: ValueKeyword, Keyword: word}
}

// LengthValue creates a numeric length with its unit.
func LengthValue(n float64, unit Unit) Value {
	return Value{Type: ValueLength, Length: n, Unit: unit}
}

// ColorValue creates a color value.
func ColorValue(c Color) Value {
	return Value{Type: ValueColor, Color: c}
}

// Multiple creates a composite of space or slash separated values. A single
// element is returned unwrapped and an empty list collapses to None, so a
// Multiple value always carries at least two entries.
func Multiple(values []Value) Value {
	switch len(values) {
	case 0:
		return None()
	case 1:
		return values[0]
	}
	return Value{Type: ValueMultiple, Values: values}
}

// Function creates a function-call value.
func Function(name string, args []Value) Value {
	return Value{Type: ValueFunction, Name: name, Args: args}
}

// Variable creates a var() reference to a custom property.
func Variable(name string) Value {
	return Value{Type: ValueVariable, Name: name}
}

// StringValue creates a quoted-string value.
func StringValue(s string) Value {
	return Value{Type: ValueString, Str: s}
}

// IsNone reports whether v is the absent value.
func (v Value) IsNone() bool {
	return v.Type == ValueNone
}

// Equal reports structural equality of two values.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case ValueNone:
		return true
	case ValueKeyword:
		return v.Keyword == o.Keyword
	case ValueLength:
		return v.Length == o.Length && v.Unit == o.Unit
	case ValueColor:
		return v.Color == o.Color
	case ValueMultiple:
		return valuesEqual(v.Values, o.Values)
	case ValueFunction:
		return v.Name == o.Name && valuesEqual(v.Args, o.Args)
	case ValueVariable:
		return v.Name == o.Name
	case ValueString:
		return v.Str == o.Str
	}
	return false
}

func valuesEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// String serializes the value back to CSS text.
func (v Value) String() string {
	switch v.Type {
	case ValueKeyword:
		return v.Keyword
	case ValueLength:
		return formatNumber(v.Length) + v.Unit.String()
	case ValueColor:
		return v.Color.String()
	case ValueMultiple:
		parts := make([]string, len(v.Values))
		for i, e := range v.Values {
			parts[i] = e.String()
		}
		return strings.Join(parts, " ")
	case ValueFunction:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = a.String()
		}
		return v.Name + "(" + strings.Join(args, ", ") + ")"
	case ValueVariable:
		return "var(" + v.Name + ")"
	case ValueString:
		return strconv.Quote(v.Str)
	}
	return ""
}

// String serializes the color as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) String() string {
	if c.A != 255 {
		return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B) + hexByte(c.A)
	}
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
}

func hexByte(b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0x0f]})
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
