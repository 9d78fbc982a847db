package utils

import (
	"strings"
	"testing"
)

func TestTruncateShortTextUnchanged(t *testing.T) {
	if got := Truncate("short text", 120); got != "short text" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("", 120); got != "" {
		t.Errorf("Truncate of empty = %q", got)
	}
}

func TestTruncateCutsAtWordBoundary(t *testing.T) {
	text := "The three-day free health camp organised at the district hospital concluded today"
	got := Truncate(text, 40)

	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated text missing ellipsis: %q", got)
	}
	trimmed := strings.TrimSuffix(got, "...")
	if strings.HasSuffix(trimmed, " ") {
		t.Errorf("truncated text ends mid-boundary: %q", got)
	}
	if !strings.HasPrefix(text, trimmed) {
		t.Errorf("truncated text %q is not a prefix of the input", trimmed)
	}
}

func TestTruncateStripsTrailingPunctuation(t *testing.T) {
	got := Truncate("One, two, three, four, five", 10)
	if strings.Contains(got, ",...") {
		t.Errorf("trailing punctuation kept: %q", got)
	}
}
