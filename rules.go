package sbd

import "regexp"

// Pattern fragments shared by the substitution rules.
const (
	alpha    = `([A-Za-z])`
	digit    = `([0-9])`
	titles   = `(Mr|St|Mrs|Ms|Dr)`
	suffixes = `(Inc|Ltd|Jr|Sr|Co)`
	starters = `(Mr|Mrs|Ms|Dr|He\s|She\s|It\s|They\s|Their\s|Our\s|We\s|But\s|However\s|That\s|This\s|Wherever)`
	acronym  = `([A-Z][.][A-Z][.](?:[A-Z][.])?)`
	domains  = `(com|net|org|io|gov|uk)`
)

// rule is one rewrite step: a pattern and its replacement template.
type rule struct {
	re   *regexp.Regexp
	repl string
}

// substitutionRules run in order over the whole buffer; order is load-bearing.
// Later rules re-match text produced by earlier ones: the acronym-pair rules
// protect the periods of an acronym after the starter rule has already placed
// a boundary behind it, and the single-letter fallback picks up initials the
// stricter spacing rule missed.
var substitutionRules = []rule{
	// Title abbreviations: "Dr." never ends a sentence.
	{regexp.MustCompile(titles + `[.]`), "$1" + prd},
	// Domain suffixes embedded in prose: "example.com".
	{regexp.MustCompile(`[.]` + domains), prd + "$1"},
	// Decimal numbers: "3.14".
	{regexp.MustCompile(digit + `[.]` + digit), "$1" + prd + "$2"},
	// Single initials with surrounding spaces: " J. Smith".
	{regexp.MustCompile(`\s` + alpha + `[.] `), " $1" + prd + " "},
	// Acronym followed by a sentence starter really does end a sentence:
	// "U.S. He left." splits after the acronym.
	{regexp.MustCompile(acronym + " " + starters), "$1" + stop + " $2"},
	// Three-part acronyms: "a.b.c.".
	{regexp.MustCompile(alpha + `[.]` + alpha + `[.]` + alpha + `[.]`), "$1" + prd + "$2" + prd + "$3" + prd},
	// Two-part acronyms: "U.S.".
	{regexp.MustCompile(alpha + `[.]` + alpha + `[.]`), "$1" + prd + "$2" + prd},
	// Corporate/generational suffix before a starter ends a sentence. The
	// matched period is consumed: "King Jr. This" yields "King Jr" without
	// its period, a documented limitation.
	{regexp.MustCompile(" " + suffixes + `[.] ` + starters), " $1" + stop + " $2"},
	// Suffix with no starter following stays inside the sentence.
	{regexp.MustCompile(" " + suffixes + `[.]`), " $1" + prd},
	// Fallback for any remaining single letter before a period.
	{regexp.MustCompile(" " + alpha + `[.]`), " $1" + prd},
}

// ApplySubstitutions applies the ordered substitution rules to the whole
// buffer, marking non-boundary periods with the placeholder and confirmed
// boundaries with the boundary token. Matching is global, leftmost,
// non-overlapping.
func ApplySubstitutions(text string) string {
	for _, r := range substitutionRules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}
