package css

import "strings"

// inheritedProperties lists properties whose values propagate from parent to
// child in the cascade. The engine itself does not perform inheritance; the
// catalog exists for the layout stage and for diagnostics.
var inheritedProperties = map[string]bool{
	"color":           true,
	"cursor":          true,
	"direction":       true,
	"font":            true,
	"font-family":     true,
	"font-size":       true,
	"font-style":      true,
	"font-variant":    true,
	"font-weight":     true,
	"letter-spacing":  true,
	"line-height":     true,
	"list-style":      true,
	"list-style-type": true,
	"quotes":          true,
	"text-align":      true,
	"text-indent":     true,
	"text-transform":  true,
	"visibility":      true,
	"white-space":     true,
	"word-spacing":    true,
}

// multiValueProperties lists shorthand properties that legitimately take a
// space-separated list of values.
var multiValueProperties = map[string]bool{
	"background":          true,
	"background-position": true,
	"background-size":     true,
	"border":              true,
	"border-bottom":       true,
	"border-color":        true,
	"border-left":         true,
	"border-radius":       true,
	"border-right":        true,
	"border-style":        true,
	"border-top":          true,
	"border-width":        true,
	"font":                true,
	"inset":               true,
	"margin":              true,
	"outline":             true,
	"overflow":            true,
	"padding":             true,
	"transition":          true,
}

// knownProperties is the set of property names the engine recognizes.
// Unknown names are never rejected (they pass through as-is); the set only
// feeds diagnostics.
var knownProperties = map[string]bool{
	"align-items":         true,
	"background":          true,
	"background-color":    true,
	"background-image":    true,
	"background-position": true,
	"background-repeat":   true,
	"background-size":     true,
	"border":              true,
	"border-bottom":       true,
	"border-collapse":     true,
	"border-color":        true,
	"border-left":         true,
	"border-radius":       true,
	"border-right":        true,
	"border-style":        true,
	"border-top":          true,
	"border-width":        true,
	"bottom":              true,
	"box-shadow":          true,
	"box-sizing":          true,
	"clear":               true,
	"color":               true,
	"content":             true,
	"cursor":              true,
	"direction":           true,
	"display":             true,
	"flex":                true,
	"flex-direction":      true,
	"flex-wrap":           true,
	"float":               true,
	"font":                true,
	"font-family":         true,
	"font-size":           true,
	"font-style":          true,
	"font-variant":        true,
	"font-weight":         true,
	"gap":                 true,
	"height":              true,
	"inset":               true,
	"justify-content":     true,
	"left":                true,
	"letter-spacing":      true,
	"line-height":         true,
	"list-style":          true,
	"list-style-type":     true,
	"margin":              true,
	"margin-bottom":       true,
	"margin-left":         true,
	"margin-right":        true,
	"margin-top":          true,
	"max-height":          true,
	"max-width":           true,
	"min-height":          true,
	"min-width":           true,
	"opacity":             true,
	"outline":             true,
	"overflow":            true,
	"overflow-x":          true,
	"overflow-y":          true,
	"padding":             true,
	"padding-bottom":      true,
	"padding-left":        true,
	"padding-right":       true,
	"padding-top":         true,
	"position":            true,
	"quotes":              true,
	"right":               true,
	"text-align":          true,
	"text-decoration":     true,
	"text-indent":         true,
	"text-transform":      true,
	"top":                 true,
	"transform":           true,
	"transition":          true,
	"vertical-align":      true,
	"visibility":          true,
	"white-space":         true,
	"width":               true,
	"word-spacing":        true,
	"z-index":             true,
}

// IsInherited reports whether the property inherits from the parent element.
// Custom properties always inherit.
func IsInherited(property string) bool {
	property = strings.ToLower(property)
	if IsCustomProperty(property) {
		return true
	}
	return inheritedProperties[property]
}

// AcceptsMultipleValues reports whether the property is a shorthand that
// takes a space-separated value list.
func AcceptsMultipleValues(property string) bool {
	return multiValueProperties[strings.ToLower(property)]
}

// IsCustomProperty reports whether the name is a custom property (--x).
func IsCustomProperty(name string) bool {
	return strings.HasPrefix(name, "--")
}

// IsKnownProperty reports whether the engine recognizes the property name.
// Unknown properties still parse; this only drives diagnostics.
func IsKnownProperty(property string) bool {
	property = strings.ToLower(property)
	return IsCustomProperty(property) || knownProperties[property]
}
