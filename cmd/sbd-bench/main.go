package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	sbd "github.com/fluentext/go-sbd"
	"github.com/fluentext/go-sbd/internal/bench"
	"github.com/fluentext/go-sbd/neural"
)

func main() {
	var (
		corpusDir     = flag.String("corpus", "testdata/gutenberg", "Directory containing annotated text files")
		modelPath     = flag.String("model", "", "Path to ONNX model file (enables the neural engine)")
		tokenizerPath = flag.String("tokenizer", "", "Path to SentencePiece model file (neural engine)")
		threshold     = flag.Float64("threshold", 0.025, "Neural boundary detection threshold")
		tolerance     = flag.Int("tolerance", 3, "Character tolerance for boundary matching")
		wp            = flag.Float64("wp", 1.0, "Precision weight")
		wr            = flag.Float64("wr", 1.0, "Recall weight")
		sweep         = flag.Bool("sweep", false, "Run a neural threshold sweep instead of a comparison")
		sweepMin      = flag.Float64("sweep-min", 0.01, "Sweep minimum threshold")
		sweepMax      = flag.Float64("sweep-max", 0.20, "Sweep maximum threshold")
		sweepStep     = flag.Float64("sweep-step", 0.01, "Sweep step size")
	)
	flag.Parse()

	docs, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d documents from %s\n\n", len(docs), *corpusDir)

	cfg := bench.Config{
		Threshold:       float32(*threshold),
		Tolerance:       *tolerance,
		PrecisionWeight: *wp,
		RecallWeight:    *wr,
	}

	ctx := context.Background()

	if *sweep {
		if *modelPath == "" || *tokenizerPath == "" {
			fmt.Fprintln(os.Stderr, "error: -sweep requires -model and -tokenizer")
			os.Exit(1)
		}
		runSweep(ctx, docs, *modelPath, *tokenizerPath, cfg, float32(*sweepMin), float32(*sweepMax), float32(*sweepStep))
		return
	}

	engines := []bench.Engine{bench.RuleEngine{Splitter: sbd.New()}}

	if *modelPath != "" {
		if *tokenizerPath == "" {
			fmt.Fprintln(os.Stderr, "error: -model requires -tokenizer")
			os.Exit(1)
		}
		seg, err := neural.New(*modelPath, *tokenizerPath, neural.WithThreshold(cfg.Threshold))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating segmenter: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = seg.Close() }()
		engines = append(engines, bench.NeuralEngine{Segmenter: seg})
	}

	results, err := bench.Compare(ctx, engines, docs, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during comparison: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Engine Comparison (tolerance=%d, wp=%.1f, wr=%.1f)\n", cfg.Tolerance, cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Println(strings.Repeat("-", 64))
	fmt.Printf("%-10s %-8s %-8s %-8s %-10s %-12s\n", "Engine", "Prec", "Rec", "F1", "Weighted", "Elapsed")
	for _, r := range results {
		fmt.Printf("%-10s %-8.2f %-8.2f %-8.2f %-10.2f %-12s\n",
			r.Engine, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1, r.Metrics.WeightedScore, r.Elapsed)
	}
}

func runSweep(ctx context.Context, docs []*bench.Document, modelPath, tokenizerPath string, cfg bench.Config, min, max, step float32) {
	thresholds := bench.SweepThresholds(min, max, step)

	fmt.Printf("Threshold Sweep Results (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("%-8s %-8s %-8s %-8s %-8s\n", "Thresh", "Prec", "Rec", "F1", "Weighted")

	results, err := bench.Sweep(ctx, docs, modelPath, tokenizerPath, cfg, thresholds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	// Print sorted by threshold for readability
	for _, t := range thresholds {
		for _, r := range results {
			if r.Threshold == t {
				fmt.Printf("%-8.3f %-8.2f %-8.2f %-8.2f %-8.2f\n",
					r.Threshold, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1, r.Metrics.WeightedScore)
				break
			}
		}
	}

	fmt.Println(strings.Repeat("-", 50))
	if len(results) > 0 {
		best := results[0]
		fmt.Printf("Optimal: %.3f (Weighted: %.2f)\n", best.Threshold, best.Metrics.WeightedScore)
	}
}
