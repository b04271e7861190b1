package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

const spaceMarker = '▁' // U+2581 LOWER ONE EIGHTH BLOCK

// normalized is the result of normalization: the rune sequence fed to the
// Viterbi lattice plus, per normalized rune, the byte span in the source
// text it came from. A ▁ marker spans the whitespace run it replaced; the
// dummy prefix marker spans zero bytes at the start.
type normalized struct {
	runes  []rune
	starts []int
	ends   []int
}

func (n normalized) String() string {
	return string(n.runes)
}

// normalize prepares text for tokenization following XLM-RoBERTa
// conventions: a dummy prefix before the first word, every run of whitespace
// collapsed to a single ▁ marker, trailing whitespace dropped.
func normalize(text string) normalized {
	var n normalized
	pending := true // dummy prefix before the first non-space rune
	wsStart := 0

	for i, r := range text {
		if unicode.IsSpace(r) {
			if len(n.runes) > 0 && !pending {
				wsStart = i
			}
			pending = true
			continue
		}
		if pending {
			n.runes = append(n.runes, spaceMarker)
			n.starts = append(n.starts, wsStart)
			n.ends = append(n.ends, i)
			pending = false
		}
		n.runes = append(n.runes, r)
		n.starts = append(n.starts, i)
		n.ends = append(n.ends, i+utf8.RuneLen(r))
	}

	return n
}
