package tokenizer

import (
	"fmt"
	"math"
	"os"

	"google.golang.org/protobuf/encoding/protowire"
)

// PieceType mirrors sentencepiece's SentencePiece.Type enum.
type PieceType int32

const (
	PieceNormal      PieceType = 1
	PieceUnknown     PieceType = 2
	PieceControl     PieceType = 3
	PieceUserDefined PieceType = 4
	PieceUnused      PieceType = 5
	PieceByte        PieceType = 6
)

// Piece is one vocabulary entry from the model.
type Piece struct {
	Piece string
	Score float32
	Type  PieceType
}

// Model holds the vocabulary of a SentencePiece model file.
type Model struct {
	Pieces []Piece
}

// LoadModel reads a SentencePiece .model file and decodes its vocabulary.
//
// The file is a serialized sentencepiece ModelProto; only the repeated
// `pieces` field (number 1) is needed here, so the wire format is decoded
// directly with protowire against the field numbers published in
// sentencepiece_model.proto instead of carrying generated bindings for the
// whole schema.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}

	model := &Model{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("parsing model: %w", protowire.ParseError(n))
		}
		data = data[n:]

		if num == 1 && typ == protowire.BytesType { // ModelProto.pieces
			raw, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("parsing piece: %w", protowire.ParseError(n))
			}
			data = data[n:]

			piece, err := decodePiece(raw)
			if err != nil {
				return nil, err
			}
			model.Pieces = append(model.Pieces, piece)
			continue
		}

		// trainer_spec, normalizer_spec and the rest are irrelevant here.
		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return nil, fmt.Errorf("skipping field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]
	}

	if len(model.Pieces) == 0 {
		return nil, fmt.Errorf("model contains no vocabulary pieces")
	}
	return model, nil
}

// decodePiece decodes one ModelProto.SentencePiece message.
func decodePiece(data []byte) (Piece, error) {
	p := Piece{Type: PieceNormal} // proto3 default when the field is absent
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return Piece{}, fmt.Errorf("parsing piece tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == 1 && typ == protowire.BytesType: // piece
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return Piece{}, fmt.Errorf("parsing piece text: %w", protowire.ParseError(n))
			}
			p.Piece = string(v)
			data = data[n:]
		case num == 2 && typ == protowire.Fixed32Type: // score
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return Piece{}, fmt.Errorf("parsing piece score: %w", protowire.ParseError(n))
			}
			p.Score = math.Float32frombits(v)
			data = data[n:]
		case num == 3 && typ == protowire.VarintType: // type
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return Piece{}, fmt.Errorf("parsing piece type: %w", protowire.ParseError(n))
			}
			p.Type = PieceType(v)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return Piece{}, fmt.Errorf("skipping piece field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return p, nil
}
