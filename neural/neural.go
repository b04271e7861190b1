// Package neural provides a model-based sentence segmenter used as a
// comparison reference for the rule-based pipeline in the root package. It
// runs wtpsplit/SaT ONNX models over SentencePiece tokens and splits where
// the per-token boundary probability crosses a threshold.
//
// The rule-based core never depends on this package; it exists for
// benchmarking and accuracy comparison only.
package neural

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/fluentext/go-sbd/inference"
	"github.com/fluentext/go-sbd/tokenizer"
)

const (
	// maxSeqLen is the longest token sequence fed to the model in one call.
	// The model accepts 514 positions; 512 leaves margin.
	maxSeqLen = 512

	// chunkOverlap is the token overlap between adjacent chunks of a long
	// input, so boundaries near chunk edges are scored with context from
	// both sides.
	chunkOverlap = 64
)

// Segmenter splits text into sentences with a SaT ONNX model. It is safe
// for concurrent use; load one per model and share it.
type Segmenter struct {
	tok       *tokenizer.Tokenizer
	pool      *inference.Pool
	threshold float32
	logger    *slog.Logger
}

// New creates a Segmenter from an ONNX model file and a SentencePiece
// tokenizer model file. The model is loaded eagerly and never mutated
// afterwards.
func New(modelPath, tokenizerPath string, opts ...Option) (*Segmenter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := os.Stat(modelPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelPath)
		}
		return nil, fmt.Errorf("checking model file: %w", err)
	}

	tok, err := tokenizer.New(tokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenizerFailed, err)
	}

	pool, err := inference.NewPool(modelPath, cfg.sessions)
	if err != nil {
		_ = tok.Close()
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	return &Segmenter{
		tok:       tok,
		pool:      pool,
		threshold: cfg.threshold,
		logger:    cfg.logger,
	}, nil
}

// Split splits text into sentences.
func (s *Segmenter) Split(ctx context.Context, text string) ([]string, error) {
	sentences, _, err := s.SplitAt(ctx, text)
	return sentences, err
}

// SplitAt splits text into sentences and also returns the byte offsets at
// which each sentence ends.
func (s *Segmenter) SplitAt(ctx context.Context, text string) (sentences []string, boundaries []int, err error) {
	if text == "" {
		return nil, nil, nil
	}

	tokens := s.tok.Encode(text)
	if len(tokens) == 0 {
		return nil, nil, nil
	}

	logits, err := s.logits(ctx, tokens)
	if err != nil {
		return nil, nil, err
	}

	for i, logit := range logits {
		if sigmoid(logit) > s.threshold {
			boundaries = append(boundaries, tokens[i].End)
		}
	}
	s.logger.Debug("scored boundaries", "tokens", len(tokens), "boundaries", len(boundaries))

	if len(boundaries) == 0 {
		return []string{text}, []int{len(text)}, nil
	}

	start := 0
	for _, end := range boundaries {
		if end > start && end <= len(text) {
			sentences = append(sentences, text[start:end])
			start = end
		}
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
		boundaries = append(boundaries, len(text))
	}

	return sentences, boundaries, nil
}

// logits scores every token, chunking long sequences with overlap and
// averaging the logits where chunks overlap.
func (s *Segmenter) logits(ctx context.Context, tokens []tokenizer.TokenInfo) ([]float32, error) {
	session, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Release(session)

	if len(tokens) <= maxSeqLen {
		return scoreChunk(ctx, session, tokens)
	}

	logits := make([]float32, len(tokens))
	counts := make([]int, len(tokens))

	stride := maxSeqLen - chunkOverlap
	for start := 0; start < len(tokens); start += stride {
		end := min(start+maxSeqLen, len(tokens))

		chunkLogits, err := scoreChunk(ctx, session, tokens[start:end])
		if err != nil {
			return nil, err
		}
		for i, logit := range chunkLogits {
			logits[start+i] += logit
			counts[start+i]++
		}

		if end == len(tokens) {
			break
		}
	}

	for i, c := range counts {
		if c > 1 {
			logits[i] /= float32(c)
		}
	}
	return logits, nil
}

// scoreChunk runs one inference call over a chunk of tokens.
func scoreChunk(ctx context.Context, session *inference.Session, tokens []tokenizer.TokenInfo) ([]float32, error) {
	ids := make([]int64, len(tokens))
	mask := make([]int64, len(tokens))
	for i, t := range tokens {
		ids[i] = int64(t.ID)
		mask[i] = 1
	}
	return session.Logits(ctx, ids, mask)
}

// Close releases the model sessions and tokenizer.
func (s *Segmenter) Close() error {
	var errs []error
	if s.pool != nil {
		if err := s.pool.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.tok != nil {
		if err := s.tok.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func sigmoid(x float32) float32 {
	return float32(1.0 / (1.0 + math.Exp(float64(-x))))
}
