package sbd

import (
	"log/slog"
	"strings"
)

// Internal rewrite markers. Neither may occur in input text; collisions make
// the output undefined.
const (
	prd  = "<prd>"  // a period that does not end a sentence
	stop = "<stop>" // a confirmed sentence boundary
)

// Splitter splits text into sentences. The zero value is not usable; create
// one with New.
type Splitter struct {
	specialCases bool
	logger       *slog.Logger
}

// New creates a Splitter.
func New(opts ...Option) *Splitter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Splitter{
		specialCases: cfg.specialCases,
		logger:       cfg.logger,
	}
}

// Split runs the full pipeline: normalization, ordered substitutions,
// special-case scans, quote reordering, boundary materialization and
// extraction. It never fails; adversarial input yields wrong splits, not
// errors.
func (s *Splitter) Split(text string) []string {
	text = Normalize(text)
	text = ApplySubstitutions(text)
	if s.specialCases {
		text = ApplySpecialCases(text)
	}
	text = NormalizePunctuation(text)
	text = MaterializeBoundaries(text)
	sentences := ExtractSentences(text)
	s.logger.Debug("split text", "sentences", len(sentences))
	return sentences
}

var defaultSplitter = New()

// Split splits text into sentences using the default configuration.
func Split(text string) []string {
	return defaultSplitter.Split(text)
}

// Normalize pads the text with one leading and two trailing spaces and
// collapses line breaks to spaces. The padding lets edge-anchored rules
// match at the very start and end of the text; collapsing turns multi-line
// input into the single stream the rules expect.
func Normalize(text string) string {
	text = " " + text + "  "
	return strings.ReplaceAll(text, "\n", " ")
}
