package sbd

import "strings"

// quoteReplacer moves terminal punctuation in front of a closing quote so
// that boundary materialization sees the mark as the rightmost character:
// `Hello."` becomes `Hello".` and the boundary token lands after the quote.
var quoteReplacer = strings.NewReplacer(
	".”", "”.",
	`."`, `".`,
	`!"`, `"!`,
	`?"`, `"?`,
)

// NormalizePunctuation reorders terminal punctuation relative to closing
// quotation marks into canonical position.
func NormalizePunctuation(text string) string {
	return quoteReplacer.Replace(text)
}

var terminalReplacer = strings.NewReplacer(
	".", "."+stop,
	"?", "?"+stop,
	"!", "!"+stop,
)

// MaterializeBoundaries appends the boundary token after every remaining
// literal '.', '?' and '!' (by this point those are exactly the real
// sentence terminators), then restores placeholders to literal periods.
func MaterializeBoundaries(text string) string {
	text = terminalReplacer.Replace(text)
	return strings.ReplaceAll(text, prd, ".")
}

// ExtractSentences splits the buffer on boundary tokens, trims each fragment
// and drops the empty ones.
func ExtractSentences(text string) []string {
	parts := strings.Split(text, stop)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
