package workshop

import "strings"

// PlaceholderSentinel marks the "no code yet" text shown in the code panel.
// Any source containing it is treated as empty.
const PlaceholderSentinel = "Your generated code will appear here"

// Placeholder is the full text the frontend renders before any code exists.
const Placeholder = "// " + PlaceholderSentinel + "\n// Describe what you need and click \"Generate Code\""

// ResolveSource picks the code body dependent actions operate on: pasted code
// wins whenever it has non-whitespace content, otherwise the generated code.
func ResolveSource(manual, generated string) string {
	if strings.TrimSpace(manual) != "" {
		return manual
	}
	return generated
}

func IsPlaceholder(code string) bool {
	return strings.Contains(code, PlaceholderSentinel)
}

// HasUsableSource reports whether code can be sent to a dependent action.
func HasUsableSource(code string) bool {
	return strings.TrimSpace(code) != "" && !IsPlaceholder(code)
}
