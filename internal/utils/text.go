package utils

import "strings"

// Truncate shortens text to at most maxLength characters, cutting at the
// last word boundary and trimming any trailing punctuation before appending
// the ellipsis. Text at or under the limit is returned unchanged.
func Truncate(text string, maxLength int) string {
	if text == "" || len([]rune(text)) <= maxLength {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:maxLength])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = strings.TrimRight(cut[:idx], ",.:;!?")
	}
	return cut + "..."
}
