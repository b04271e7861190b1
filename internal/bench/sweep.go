package bench

import (
	"context"
	"sort"

	"github.com/fluentext/go-sbd/neural"
)

// SweepResult holds aggregate metrics for one threshold value.
type SweepResult struct {
	Threshold float32
	Metrics   Metrics
}

// SweepThresholds generates threshold values from min to max with the given
// step.
func SweepThresholds(min, max, step float32) []float32 {
	var thresholds []float32
	for t := min; t < max; t += step {
		thresholds = append(thresholds, t)
	}
	return thresholds
}

// Sweep evaluates the neural engine at each threshold over the corpus and
// returns results sorted by weighted score, best first.
func Sweep(ctx context.Context, docs []*Document, modelPath, tokenizerPath string, cfg Config, thresholds []float32) ([]SweepResult, error) {
	var results []SweepResult

	for _, threshold := range thresholds {
		seg, err := neural.New(modelPath, tokenizerPath, neural.WithThreshold(threshold))
		if err != nil {
			return nil, err
		}
		engine := NeuralEngine{Segmenter: seg}

		var tp, fp, fn int
		for _, doc := range docs {
			m, err := EvaluateDocument(ctx, engine, doc, cfg)
			if err != nil {
				_ = seg.Close()
				return nil, err
			}
			tp += m.TruePositives
			fp += m.FalsePositives
			fn += m.FalseNegatives
		}
		_ = seg.Close()

		results = append(results, SweepResult{
			Threshold: threshold,
			Metrics:   ComputeMetrics(tp, fp, fn, cfg),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})
	return results, nil
}
