package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// WordCount returns the whitespace-delimited token count of s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// CapResume trims resume text to the configured maximum before scoring.
// A zero or negative limit disables the cap.
func CapResume(s string) string {
	if cfg.MaxResumeChars <= 0 {
		return s
	}
	return strutil.TruncateWith(s, cfg.MaxResumeChars, "")
}
