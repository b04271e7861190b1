package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	sbd "github.com/fluentext/go-sbd"
	"github.com/fluentext/go-sbd/neural"
)

func main() {
	var (
		stages        = flag.Bool("stages", false, "Print the buffer after each pipeline stage")
		noSpecial     = flag.Bool("no-special", false, "Disable URL, ellipsis and doctorate handling")
		useNeural     = flag.Bool("neural", false, "Use the neural segmenter instead of the rules")
		modelPath     = flag.String("model", "", "Path to ONNX model file (neural mode)")
		tokenizerPath = flag.String("tokenizer", "", "Path to SentencePiece model file (neural mode)")
		threshold     = flag.Float64("threshold", 0.025, "Boundary detection threshold (neural mode)")
	)
	flag.Parse()

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "Usage: sbd-cli [OPTIONS] TEXT (or pipe text on stdin)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *useNeural {
		runNeural(text, *modelPath, *tokenizerPath, float32(*threshold))
		return
	}

	if *stages {
		runStages(text, !*noSpecial)
		return
	}

	var opts []sbd.Option
	if *noSpecial {
		opts = append(opts, sbd.WithoutSpecialCases())
	}
	printSentences(sbd.New(opts...).Split(text))
}

// runStages prints the intermediate buffer after each stage of the rule
// pipeline. Useful for working out which rule claimed a given period.
func runStages(text string, special bool) {
	print := func(name, buf string) {
		fmt.Printf("%-22s %q\n", name+":", buf)
	}

	buf := sbd.Normalize(text)
	print("normalize", buf)

	buf = sbd.ApplySubstitutions(buf)
	print("substitutions", buf)

	if special {
		buf = sbd.ApplySpecialCases(buf)
		print("special cases", buf)
	}

	buf = sbd.NormalizePunctuation(buf)
	print("punctuation", buf)

	buf = sbd.MaterializeBoundaries(buf)
	print("boundaries", buf)

	printSentences(sbd.ExtractSentences(buf))
}

func runNeural(text, modelPath, tokenizerPath string, threshold float32) {
	if modelPath == "" || tokenizerPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -neural requires -model and -tokenizer")
		os.Exit(1)
	}

	seg, err := neural.New(modelPath, tokenizerPath, neural.WithThreshold(threshold))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating segmenter: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = seg.Close() }() // Cleanup error ignored in CLI

	sentences, err := seg.Split(context.Background(), text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printSentences(sentences)
}

func printSentences(sentences []string) {
	fmt.Printf("Sentences (%d):\n", len(sentences))
	for i, s := range sentences {
		fmt.Printf("  %d: %q\n", i+1, s)
	}
}
