package markup

import "strings"

const (
	superDigits = "⁰¹²³⁴⁵⁶⁷⁸⁹"
	subDigits   = "₀₁₂₃₄₅₆₇₈₉"
)

var (
	superRunes = []rune(superDigits)
	subRunes   = []rune(subDigits)
)

// ToSuper maps '-' and '0'-'9' to their superscript forms.
// Other runes pass through unchanged.
func ToSuper(r rune) rune {
	switch {
	case r == '-':
		return '⁻'
	case r >= '0' && r <= '9':
		return superRunes[r-'0']
	default:
		return r
	}
}

// ToSub maps '-' and '0'-'9' to their subscript forms.
// Other runes pass through unchanged.
func ToSub(r rune) rune {
	switch {
	case r == '-':
		return '₋'
	case r >= '0' && r <= '9':
		return subRunes[r-'0']
	default:
		return r
	}
}

// ToSuperscript applies ToSuper to every rune of s.
func ToSuperscript(s string) string { return strings.Map(ToSuper, s) }

// ToSubscript applies ToSub to every rune of s.
func ToSubscript(s string) string { return strings.Map(ToSub, s) }
