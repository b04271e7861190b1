// Package sbd splits natural-language text into sentences using an ordered
// sequence of regex substitutions, without a full NLP pipeline.
//
// Periods that do not terminate a sentence (title abbreviations, initials,
// acronyms, decimal numbers, domain suffixes, URLs, ellipses) are rewritten
// to an internal placeholder before boundary detection runs; real terminal
// punctuation is then marked with an internal boundary token and the text is
// split on those marks.
//
// # Quick Start
//
//	sentences := sbd.Split("Dr. Smith paid 3.14 dollars. He left.")
//	// ["Dr. Smith paid 3.14 dollars.", "He left."]
//
// # Thread Safety
//
// A Splitter holds no mutable state; all methods and package-level stage
// functions are pure and safe for concurrent use.
//
// # Known Limitations
//
// The pipeline is a deterministic heuristic, not a parser. Some inputs split
// incorrectly: a name ending in a generational suffix loses its
// period when a sentence-starter word follows, and a title abbreviation
// merges with the following sentence when extra whitespace separates them.
// Input that already contains the internal marker strings "<prd>" or
// "<stop>" produces undefined output.
package sbd
