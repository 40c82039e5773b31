package util

import "strings"

// Truthy reports whether s is one of the accepted spellings of an enabled
// switch: true, 1, yes or on, in any case and surrounded by spaces.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
