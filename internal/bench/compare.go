package bench

import (
	"context"
	"time"

	sbd "github.com/fluentext/go-sbd"
	"github.com/fluentext/go-sbd/neural"
)

// Engine is a sentence splitter under evaluation.
type Engine interface {
	Name() string
	Split(ctx context.Context, text string) ([]string, error)
}

// RuleEngine adapts the rule-based splitter to the Engine interface.
type RuleEngine struct {
	Splitter *sbd.Splitter
}

func (e RuleEngine) Name() string { return "rules" }

func (e RuleEngine) Split(_ context.Context, text string) ([]string, error) {
	return e.Splitter.Split(text), nil
}

// NeuralEngine adapts the model-based segmenter to the Engine interface.
type NeuralEngine struct {
	Segmenter *neural.Segmenter
}

func (e NeuralEngine) Name() string { return "neural" }

func (e NeuralEngine) Split(ctx context.Context, text string) ([]string, error) {
	return e.Segmenter.Split(ctx, text)
}

// Timed decorates an engine with wall-clock accounting. Output passes
// through unchanged; elapsed time and call count accumulate across calls.
// Not safe for concurrent use.
type Timed struct {
	Engine
	Elapsed time.Duration
	Calls   int
}

// NewTimed wraps an engine for timing.
func NewTimed(e Engine) *Timed {
	return &Timed{Engine: e}
}

func (t *Timed) Split(ctx context.Context, text string) ([]string, error) {
	started := time.Now()
	sentences, err := t.Engine.Split(ctx, text)
	t.Elapsed += time.Since(started)
	t.Calls++
	return sentences, err
}

// Result holds one engine's aggregate evaluation over a corpus.
type Result struct {
	Engine  string
	Metrics Metrics
	Elapsed time.Duration
}

// Compare evaluates each engine over the whole corpus, aggregating boundary
// counts across documents and timing each engine's calls.
func Compare(ctx context.Context, engines []Engine, docs []*Document, cfg Config) ([]Result, error) {
	results := make([]Result, 0, len(engines))

	for _, engine := range engines {
		timed := NewTimed(engine)

		var tp, fp, fn int
		for _, doc := range docs {
			m, err := EvaluateDocument(ctx, timed, doc, cfg)
			if err != nil {
				return nil, err
			}
			tp += m.TruePositives
			fp += m.FalsePositives
			fn += m.FalseNegatives
		}

		results = append(results, Result{
			Engine:  engine.Name(),
			Metrics: ComputeMetrics(tp, fp, fn, cfg),
			Elapsed: timed.Elapsed,
		})
	}

	return results, nil
}
