package tokenizer

import (
	"slices"
	"testing"
)

// testVocab builds a small vocabulary. SentencePiece indices 0-2 are the
// special tokens, matching real model files.
func testVocab(t *testing.T) *Tokenizer {
	t.Helper()
	pieces := []Piece{
		{Piece: "<unk>", Score: -10, Type: PieceUnknown},
		{Piece: "<s>", Score: 0, Type: PieceControl},
		{Piece: "</s>", Score: 0, Type: PieceControl},
		{Piece: "▁Hello", Score: -1},
		{Piece: "▁world", Score: -1},
		{Piece: "▁", Score: -4},
		{Piece: "H", Score: -5},
		{Piece: "e", Score: -5},
		{Piece: "l", Score: -5},
		{Piece: "o", Score: -5},
	}
	tok, err := New(writeModel(t, pieces))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return tok
}

func TestTokenizer_Encode(t *testing.T) {
	tok := testVocab(t)

	tokens := tok.Encode("Hello world")
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens %v, want 2", len(tokens), tokens)
	}
	if tokens[0].Text != "▁Hello" || tokens[1].Text != "▁world" {
		t.Errorf("tokens = %v, want ▁Hello ▁world", tokens)
	}
	// SP index 3 maps to HF ID 4.
	if tokens[0].ID != 4 || tokens[1].ID != 5 {
		t.Errorf("IDs = %d,%d, want 4,5", tokens[0].ID, tokens[1].ID)
	}
	// Spans cover the source text contiguously, whitespace included.
	if tokens[0].Start != 0 || tokens[0].End != tokens[1].Start {
		t.Errorf("spans not contiguous: %v", tokens)
	}
	if tokens[1].End != len("Hello world") {
		t.Errorf("last span End = %d, want %d", tokens[1].End, len("Hello world"))
	}
}

func TestTokenizer_EncodeIDs(t *testing.T) {
	tok := testVocab(t)
	got := tok.EncodeIDs("Hello world")
	if !slices.Equal(got, []int32{4, 5}) {
		t.Errorf("EncodeIDs = %v, want [4 5]", got)
	}
}

func TestTokenizer_Encode_UnknownRunes(t *testing.T) {
	tok := testVocab(t)
	tokens := tok.Encode("Hexo")
	if len(tokens) == 0 {
		t.Fatal("expected tokens for partially unknown input")
	}
	// "x" is not in the vocabulary; it must come back as a single-rune
	// token carrying the <unk> ID.
	var sawUnk bool
	for _, tk := range tokens {
		if tk.Text == "x" {
			sawUnk = true
			if tk.ID != tok.UnkID() {
				t.Errorf("unknown rune ID = %d, want %d", tk.ID, tok.UnkID())
			}
		}
	}
	if !sawUnk {
		t.Errorf("no unknown token emitted: %v", tokens)
	}
}

func TestTokenizer_Encode_Empty(t *testing.T) {
	tok := testVocab(t)
	if tokens := tok.Encode(""); tokens != nil {
		t.Errorf("Encode(\"\") = %v, want nil", tokens)
	}
}

func TestTokenizer_VocabSize(t *testing.T) {
	tok := testVocab(t)
	// 10 SentencePiece pieces + <pad> + ID shift.
	if got := tok.VocabSize(); got != 12 {
		t.Errorf("VocabSize() = %d, want 12", got)
	}
}

func TestIDMappingRoundTrip(t *testing.T) {
	for _, spIndex := range []int32{0, 1, 2, 3, 10, 999} {
		hf := spIndexToHFID(spIndex)
		if got := hfIDToSPIndex(hf); got != spIndex {
			t.Errorf("round trip SP %d -> HF %d -> SP %d", spIndex, hf, got)
		}
	}
}
