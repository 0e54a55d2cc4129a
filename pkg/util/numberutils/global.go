package numberutils

import "unicode"

// IsDigits checks if the given string is non-empty and contains only digits (0-9).
func IsDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
