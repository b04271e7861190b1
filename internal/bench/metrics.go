package bench

import (
	"context"
	"strings"
)

// Config holds evaluation parameters.
type Config struct {
	Threshold       float32 // neural engine boundary threshold
	Tolerance       int     // boundary match tolerance, in characters
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns the default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:       0.025,
		Tolerance:       3,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// ComputeMetrics derives precision, recall, F1 and the weighted score from
// raw counts.
func ComputeMetrics(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	if wp, wr := cfg.PrecisionWeight, cfg.RecallWeight; wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}
	return m
}

// Evaluate compares predicted boundary offsets against ground truth using
// greedy left-to-right matching within the tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			diff := p - t
			if diff < 0 {
				diff = -diff
			}
			if diff <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	fp := len(predicted) - tp
	fn := len(truth) - tp
	return ComputeMetrics(tp, fp, fn, cfg)
}

// AlignBoundaries maps an engine's sentence output back to end offsets in
// the raw text. Sentences are located left to right with exact substring
// search; a sentence the engine rewrote (trimmed whitespace aside, e.g.
// reordered quote punctuation or a consumed suffix period) that no longer
// occurs in the raw text contributes no boundary.
func AlignBoundaries(raw string, sentences []string) []int {
	var boundaries []int
	cursor := 0
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		idx := strings.Index(raw[cursor:], s)
		if idx < 0 {
			continue
		}
		end := cursor + idx + len(s)
		boundaries = append(boundaries, end)
		cursor = end
	}
	return boundaries
}

// EvaluateDocument runs an engine over one document and scores its
// boundaries against the document's reference sentences.
func EvaluateDocument(ctx context.Context, engine Engine, doc *Document, cfg Config) (Metrics, error) {
	sentences, err := engine.Split(ctx, doc.RawText)
	if err != nil {
		return Metrics{}, err
	}

	predicted := AlignBoundaries(doc.RawText, sentences)
	truth := make([]int, len(doc.Sentences))
	for i, s := range doc.Sentences {
		truth[i] = s.End
	}
	return Evaluate(predicted, truth, cfg), nil
}
