package account

import "strings"

// maxDescriptionLen bounds transaction descriptions; longer input is
// truncated, not rejected.
const maxDescriptionLen = 40

// NormalizeDescription reduces free-text input to the payment-reference
// charset: latin letters, digits, space, hyphen and full stop. Anything
// else is dropped and the result is capped at maxDescriptionLen.
func NormalizeDescription(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !validDescriptionRune(r) {
			continue
		}
		if b.Len() == maxDescriptionLen {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

func validDescriptionRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '-', r == '.':
		return true
	}
	return false
}
