package card

import (
	"strings"
	"unicode/utf8"
)

const (
	// charWidthFactor approximates a glyph's advance as a fraction of the font size.
	charWidthFactor = 0.5
	// maxWrapLines caps the number of lines WordWrap returns.
	maxWrapLines = 3
	ellipsis     = "…"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape replaces the five markup-significant characters with entities so
// user text can be embedded in element content or attribute values. Invalid
// UTF-8 becomes U+FFFD and characters XML forbids are dropped.
func Escape(text string) string {
	return escaper.Replace(strings.Map(xmlChar, strings.ToValidUTF8(text, "\uFFFD")))
}

func xmlChar(r rune) rune {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return r
	case r < 0x20, r == 0xFFFE, r == 0xFFFF:
		return -1
	}
	return r
}

// Truncate shortens text to maxLength characters, replacing the last kept
// character with an ellipsis when it had to cut.
func Truncate(text string, maxLength int) string {
	if maxLength < 1 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxLength-1]) + ellipsis
}

// WordWrap greedily packs whitespace-separated words into lines no wider than
// maxWidth, estimating each character as half the font size. A word wider
// than the limit is kept whole on its own line. Lines past the third are
// dropped.
func WordWrap(text string, maxWidth, fontSize float64) []string {
	charWidth := fontSize * charWidthFactor
	lines := make([]string, 0, maxWrapLines)
	current := ""

	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if float64(utf8.RuneCountInString(candidate))*charWidth > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) > maxWrapLines {
		lines = lines[:maxWrapLines]
	}
	return lines
}
