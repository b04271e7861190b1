package tokenizer

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

// encodeModel serializes pieces into sentencepiece ModelProto wire format.
func encodeModel(t *testing.T, pieces []Piece) []byte {
	t.Helper()
	var out []byte
	for _, p := range pieces {
		var msg []byte
		msg = protowire.AppendTag(msg, 1, protowire.BytesType)
		msg = protowire.AppendBytes(msg, []byte(p.Piece))
		msg = protowire.AppendTag(msg, 2, protowire.Fixed32Type)
		msg = protowire.AppendFixed32(msg, math.Float32bits(p.Score))
		if p.Type != 0 {
			msg = protowire.AppendTag(msg, 3, protowire.VarintType)
			msg = protowire.AppendVarint(msg, uint64(p.Type))
		}
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, msg)
	}
	return out
}

func writeModel(t *testing.T, pieces []Piece) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.model")
	if err := os.WriteFile(path, encodeModel(t, pieces), 0o644); err != nil {
		t.Fatalf("writing model: %v", err)
	}
	return path
}

func TestLoadModel(t *testing.T) {
	pieces := []Piece{
		{Piece: "<unk>", Score: 0, Type: PieceUnknown},
		{Piece: "<s>", Score: 0, Type: PieceControl},
		{Piece: "</s>", Score: 0, Type: PieceControl},
		{Piece: "▁Hello", Score: -1.5},
		{Piece: "▁world", Score: -2.25},
	}
	path := writeModel(t, pieces)

	model, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel() error = %v", err)
	}
	if len(model.Pieces) != len(pieces) {
		t.Fatalf("got %d pieces, want %d", len(model.Pieces), len(pieces))
	}
	if model.Pieces[3].Piece != "▁Hello" || model.Pieces[3].Score != -1.5 {
		t.Errorf("piece 3 = %+v, want ▁Hello/-1.5", model.Pieces[3])
	}
	if model.Pieces[0].Type != PieceUnknown {
		t.Errorf("piece 0 type = %v, want PieceUnknown", model.Pieces[0].Type)
	}
	// Type defaults to normal when absent from the wire.
	if model.Pieces[4].Type != PieceNormal {
		t.Errorf("piece 4 type = %v, want PieceNormal", model.Pieces[4].Type)
	}
}

func TestLoadModel_Missing(t *testing.T) {
	if _, err := LoadModel(filepath.Join(t.TempDir(), "nope.model")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadModel_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.model")
	if err := os.WriteFile(path, []byte{0xff, 0xff, 0xff, 0xff}, 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if _, err := LoadModel(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestLoadModel_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.model")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if _, err := LoadModel(path); err == nil {
		t.Fatal("expected error for model without pieces")
	}
}
