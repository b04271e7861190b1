package tokenizer

const negInf = -1e9

// EncodeIDs returns HuggingFace-compatible token IDs for the input text.
func (t *Tokenizer) EncodeIDs(text string) []int32 {
	tokens := t.Encode(text)
	ids := make([]int32, len(tokens))
	for i, tok := range tokens {
		ids[i] = tok.ID
	}
	return ids
}

// Encode tokenizes text with the Viterbi algorithm, returning tokens with
// their byte spans in the source text.
func (t *Tokenizer) Encode(text string) []TokenInfo {
	norm := normalize(text)
	if len(norm.runes) == 0 {
		return nil
	}

	runes := norm.runes
	n := len(runes)

	// best[i] is the best log probability of tokenizing runes[0:i];
	// parent[i] the start of the token that achieves it.
	best := make([]float64, n+1)
	parent := make([]int, n+1)
	pieceAt := make([]string, n+1)
	for i := 1; i <= n; i++ {
		best[i] = negInf
		parent[i] = -1
	}

	for i := 1; i <= n; i++ {
		maxLen := t.maxPieceLen
		if maxLen > i {
			maxLen = i
		}

		for length := 1; length <= maxLen; length++ {
			j := i - length
			candidate := string(runes[j:i])
			score, ok := t.scores[candidate]
			if !ok {
				continue
			}
			if total := best[j] + float64(score); total > best[i] {
				best[i] = total
				parent[i] = j
				pieceAt[i] = candidate
			}
		}

		// No piece ends here: fall back to a single-rune unknown token.
		if parent[i] == -1 {
			unkPiece := t.idToPiece[hfIDToSPIndex(unkID)]
			best[i] = best[i-1] + float64(t.scores[unkPiece])
			parent[i] = i - 1
			pieceAt[i] = string(runes[i-1 : i])
		}
	}

	// Backtrack from the end, then reverse into reading order.
	var tokens []TokenInfo
	for pos := n; pos > 0; pos = parent[pos] {
		piece := pieceAt[pos]
		spIndex, ok := t.pieces[piece]
		if !ok {
			spIndex = 0 // <unk>
		}
		tokens = append(tokens, TokenInfo{
			ID:    spIndexToHFID(spIndex),
			Text:  piece,
			Start: norm.starts[parent[pos]],
			End:   norm.ends[pos-1],
		})
	}
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}

	return tokens
}
