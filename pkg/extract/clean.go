package extract

import (
	"regexp"
	"strings"
)

// tagPattern matches angle-bracket tag spans non-greedily. It is not aware of
// nesting or unbalanced brackets; a stray `<` with no closing `>` may
// over-strip. Hardening this would change output on existing malformed
// corpora, so the heuristic stays.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

var spaceRun = regexp.MustCompile(`\s+`)

// Clean normalizes free text for use as a training label: markup spans are
// stripped, newlines become spaces, whitespace runs collapse to one space,
// and the result is trimmed. Empty input yields the empty string.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = tagPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = spaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// TokenCount counts whitespace-delimited tokens. Used by the description
// length thresholds that filter boilerplate one-liners.
func TokenCount(text string) int {
	return len(strings.Fields(text))
}
