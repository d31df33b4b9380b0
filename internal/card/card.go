// Package card holds card and PIN identity helpers: shape validation for
// teller identifiers, display masking, and number generation.
package card

import "strings"

const (
	pinLength           = 4
	cardNumberLength    = 16
	accountNumberLength = 6
)

// ValidPIN reports whether s is exactly four digits.
func ValidPIN(s string) bool {
	return allDigits(s) && len(s) == pinLength
}

// ValidCardNumber reports whether s is exactly sixteen digits.
func ValidCardNumber(s string) bool {
	return allDigits(s) && len(s) == cardNumberLength
}

// ValidAccountNumber reports whether s is exactly six digits.
func ValidAccountNumber(s string) bool {
	return allDigits(s) && len(s) == accountNumberLength
}

// Mask returns a display-safe form of an identifier: first four and last
// four digits visible, middle digits replaced. Card numbers render as
// "4532 **** **** 9012"; shorter identifiers are fully masked.
func Mask(identifier string) string {
	if len(identifier) < 8 {
		return strings.Repeat("*", len(identifier))
	}
	if len(identifier) == cardNumberLength {
		return identifier[:4] + " **** **** " + identifier[12:]
	}
	return identifier[:4] + strings.Repeat("*", len(identifier)-8) + identifier[len(identifier)-4:]
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
