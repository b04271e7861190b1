package sbd

import (
	"regexp"
	"strings"
)

var (
	urlPattern      = regexp.MustCompile(`((http|https)://)[a-zA-Z0-9./?:@\-_=#]+\.[a-zA-Z]{2,6}[a-zA-Z0-9.&/?:@\-_=#]*`)
	ellipsisPattern = regexp.MustCompile(`\.\.+`)
)

// ApplySpecialCases handles constructs that need per-match rewriting rather
// than a single global substitution:
//
//   - URLs: every period inside the matched address becomes a placeholder;
//     periods outside the match are untouched.
//   - Ellipses: a run of two or more periods becomes a same-length run of
//     placeholders followed by one boundary token, so an ellipsis always ends
//     a sentence but none of its periods is a candidate terminator.
//   - "Ph.D.": both periods become placeholders.
//
// The function is a no-op on text containing none of these.
func ApplySpecialCases(text string) string {
	text = urlPattern.ReplaceAllStringFunc(text, func(m string) string {
		return strings.ReplaceAll(m, ".", prd)
	})
	text = ellipsisPattern.ReplaceAllStringFunc(text, func(m string) string {
		return strings.Repeat(prd, len(m)) + stop
	})
	if strings.Contains(text, "Ph.D") {
		text = strings.ReplaceAll(text, "Ph.D.", "Ph"+prd+"D"+prd)
	}
	return text
}
