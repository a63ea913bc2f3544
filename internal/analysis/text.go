package analysis

import (
	"regexp"
	"strings"
)

var sentenceEnd = regexp.MustCompile(`([.!?])\s+`)

// splitSentences breaks text on sentence-ending punctuation followed by
// whitespace, keeping the punctuation with the sentence.
func splitSentences(text string) []string {
	marked := sentenceEnd.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// clampRunes limits text to at most max runes. max <= 0 means no limit.
func clampRunes(text string, max int) string {
	if max <= 0 {
		return text
	}
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max])
}

// round2 rounds to two decimal places, matching the confidence precision on
// the wire.
func round2(v float64) float64 {
	if v < 0 {
		return 0
	}
	return float64(int(v*100+0.5)) / 100
}
