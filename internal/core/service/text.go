package service

import (
	"strings"
	"unicode/utf8"
)

// trimText drops surrounding whitespace. The rest is stored as typed.
func trimText(s string) string {
	return strings.TrimSpace(s)
}

func textLen(s string) int {
	return utf8.RuneCountInString(s)
}
