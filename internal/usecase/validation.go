package usecase

import (
	"strings"
	"unicode/utf8"
)

// Minimum lengths for free-text answers, in runes.
const (
	MinColorsLen   = 3
	MinDetailsLen  = 5
	MinPlatformLen = 3
)

// CleanFreeText trims an answer and checks it against a minimum length.
// Empty input and anything that looks like a command is rejected so a stray
// "/start" never becomes order details.
func CleanFreeText(text string, minLen int) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "/") {
		return "", false
	}
	if utf8.RuneCountInString(trimmed) < minLen {
		return "", false
	}
	return trimmed, true
}
