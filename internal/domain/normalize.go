package domain

import (
	"strings"
	"unicode"
)

// CleanText prepares free text coming from spreadsheets or forms:
//   - trims leading/trailing whitespace (including non-breaking spaces)
//   - compresses runs of spaces and tabs into a single space
//
// Line breaks, case and diacritics are preserved.
func CleanText(text string) string {
	text = strings.TrimFunc(text, unicode.IsSpace)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\u00a0' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeKey lowercases and cleans a column header or lookup key.
func NormalizeKey(text string) string {
	return strings.ToLower(CleanText(text))
}

// OptString returns nil for empty text and a cleaned copy otherwise.
func OptString(text string) *string {
	text = CleanText(text)
	if text == "" {
		return nil
	}
	return &text
}
