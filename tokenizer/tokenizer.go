// Package tokenizer implements XLM-RoBERTa compatible SentencePiece Unigram
// tokenization for the neural comparison segmenter.
package tokenizer

import "fmt"

// Tokenizer tokenizes text with a SentencePiece Unigram vocabulary.
//
// Token IDs follow the HuggingFace XLM-RoBERTa convention rather than raw
// SentencePiece indices:
//   - HF[0] = <s>   (SP[1])
//   - HF[1] = <pad> (not present in SentencePiece)
//   - HF[2] = </s>  (SP[2])
//   - HF[3] = <unk> (SP[0])
//   - HF[n+1] = SP[n] for n >= 3
type Tokenizer struct {
	pieces      map[string]int32   // piece -> SentencePiece index
	scores      map[string]float32 // piece -> log probability
	idToPiece   []string           // SentencePiece index -> piece
	maxPieceLen int                // longest piece, in runes of normalized text
}

// TokenInfo is a token with its byte span in the source text. The span of a
// token whose piece starts with the ▁ marker includes the whitespace the
// marker replaced.
type TokenInfo struct {
	ID    int32
	Text  string
	Start int
	End   int
}

// HuggingFace XLM-RoBERTa special token IDs.
const (
	bosID int32 = 0 // <s>
	padID int32 = 1 // <pad>
	eosID int32 = 2 // </s>
	unkID int32 = 3 // <unk>
)

// New loads a tokenizer from a SentencePiece .model file.
func New(modelPath string) (*Tokenizer, error) {
	model, err := LoadModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}

	t := &Tokenizer{
		pieces:    make(map[string]int32, len(model.Pieces)),
		scores:    make(map[string]float32, len(model.Pieces)),
		idToPiece: make([]string, len(model.Pieces)),
	}

	for i, piece := range model.Pieces {
		t.pieces[piece.Piece] = int32(i)
		t.scores[piece.Piece] = piece.Score
		t.idToPiece[i] = piece.Piece
		if len(piece.Piece) > t.maxPieceLen {
			t.maxPieceLen = len(piece.Piece)
		}
	}

	return t, nil
}

// spIndexToHFID converts a SentencePiece index to a HuggingFace token ID.
func spIndexToHFID(spIndex int32) int32 {
	switch spIndex {
	case 0: // <unk>
		return unkID
	case 1: // <s>
		return bosID
	case 2: // </s>
		return eosID
	default: // normal tokens shift by one for the inserted <pad>
		return spIndex + 1
	}
}

// hfIDToSPIndex is the inverse of spIndexToHFID. <pad> has no SentencePiece
// counterpart and maps to the <unk> index.
func hfIDToSPIndex(hfID int32) int32 {
	switch hfID {
	case bosID:
		return 1
	case padID:
		return 0
	case eosID:
		return 2
	case unkID:
		return 0
	default:
		return hfID - 1
	}
}

// Close releases tokenizer resources.
func (t *Tokenizer) Close() error {
	return nil
}

// VocabSize returns the HuggingFace-compatible vocabulary size:
// SentencePiece vocab size plus the inserted <pad> and the ID shift.
func (t *Tokenizer) VocabSize() int {
	return len(t.idToPiece) + 2
}

// BOSID returns the beginning-of-sentence token ID.
func (t *Tokenizer) BOSID() int32 { return bosID }

// PadID returns the padding token ID.
func (t *Tokenizer) PadID() int32 { return padID }

// EOSID returns the end-of-sentence token ID.
func (t *Tokenizer) EOSID() int32 { return eosID }

// UnkID returns the unknown token ID.
func (t *Tokenizer) UnkID() int32 { return unkID }
