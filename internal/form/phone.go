package form

import "strings"

// FormatPhoneNumber incrementally reformats raw phone entry into
// (###) ###-#### as the user types. Non-digits are stripped first and
// anything past ten digits is dropped.
func FormatPhoneNumber(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	cleaned := digits.String()

	switch {
	case len(cleaned) <= 3:
		return cleaned
	case len(cleaned) <= 6:
		return "(" + cleaned[:3] + ") " + cleaned[3:]
	default:
		if len(cleaned) > 10 {
			cleaned = cleaned[:10]
		}
		return "(" + cleaned[:3] + ") " + cleaned[3:6] + "-" + cleaned[6:]
	}
}
