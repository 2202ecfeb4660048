package phone

import "strings"

// Normalize strips raw phone input down to its digits and returns the
// canonical customer key. Local numbers typed without an area code (8 or 9
// digits) get defaultAreaCode prepended; anything else passes through
// unchanged, so a mistyped 3-digit or 20-digit value is preserved as-is
// rather than rejected.
func Normalize(raw, defaultAreaCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) == 8 || len(digits) == 9 {
		return defaultAreaCode + digits
	}
	return digits
}

// Format renders a canonical phone key for display. Ten digits become
// "(AA) NNNN-NNNN", eleven become "(AA) NNNNN-NNNN"; any other length is
// returned unchanged. Lookups always use the canonical value, never this.
func Format(canonical string) string {
	switch len(canonical) {
	case 10:
		return "(" + canonical[:2] + ") " + canonical[2:6] + "-" + canonical[6:]
	case 11:
		return "(" + canonical[:2] + ") " + canonical[2:7] + "-" + canonical[7:]
	default:
		return canonical
	}
}
