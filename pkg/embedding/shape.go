package embedding

import "encoding/json"

// ResponseShape tags the layouts a feature-extraction endpoint may answer with.
type ResponseShape int

const (
	// ShapeUnrecognized is anything that is not a numeric vector layout.
	ShapeUnrecognized ResponseShape = iota
	// ShapePooled is a flat array of numbers, already one vector per text.
	ShapePooled
	// ShapeTokenSequence is one vector per token that still needs pooling.
	ShapeTokenSequence
)

func (s ResponseShape) String() string {
	switch s {
	case ShapePooled:
		return "pooled"
	case ShapeTokenSequence:
		return "token_sequence"
	default:
		return "unrecognized"
	}
}

type DecodedResponse struct {
	Shape  ResponseShape
	Pooled []float32
	Tokens [][]float32
}

// DecodeResponse classifies a raw JSON body.
//
//	[0.1, 0.2]                  -> ShapePooled
//	[[0.1, 0.2], [0.3, 0.4]]    -> ShapeTokenSequence (token vectors of one text)
//	[[[0.1, 0.2], [0.3, 0.4]]]  -> ShapeTokenSequence (first text of a batch)
//
// Everything else, including empty arrays, is ShapeUnrecognized.
func DecodeResponse(raw []byte) DecodedResponse {
	var flat []float32
	if err := json.Unmarshal(raw, &flat); err == nil {
		if len(flat) == 0 {
			return DecodedResponse{Shape: ShapeUnrecognized}
		}
		return DecodedResponse{Shape: ShapePooled, Pooled: flat}
	}

	var tokens [][]float32
	if err := json.Unmarshal(raw, &tokens); err == nil {
		return tokenSequence(tokens)
	}

	var batch [][][]float32
	if err := json.Unmarshal(raw, &batch); err == nil && len(batch) > 0 {
		return tokenSequence(batch[0])
	}

	return DecodedResponse{Shape: ShapeUnrecognized}
}

func tokenSequence(tokens [][]float32) DecodedResponse {
	if len(tokens) == 0 || len(tokens[0]) == 0 {
		return DecodedResponse{Shape: ShapeUnrecognized}
	}
	width := len(tokens[0])
	for _, t := range tokens {
		if len(t) != width {
			return DecodedResponse{Shape: ShapeUnrecognized}
		}
	}
	return DecodedResponse{Shape: ShapeTokenSequence, Tokens: tokens}
}

// Vector maps the decoded shape to a single embedding. Unrecognized yields an
// empty, non-nil slice.
func (d DecodedResponse) Vector() []float32 {
	switch d.Shape {
	case ShapePooled:
		out := make([]float32, len(d.Pooled))
		copy(out, d.Pooled)
		return out
	case ShapeTokenSequence:
		return MeanPool(d.Tokens)
	default:
		return []float32{}
	}
}

// MeanPool averages equal-width vectors element-wise. No vectors, zero width or
// ragged input give an empty vector.
func MeanPool(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return []float32{}
	}
	width := len(vectors[0])
	if width == 0 {
		return []float32{}
	}

	sum := make([]float64, width)
	for _, vec := range vectors {
		if len(vec) != width {
			return []float32{}
		}
		for i, v := range vec {
			sum[i] += float64(v)
		}
	}

	n := float64(len(vectors))
	pooled := make([]float32, width)
	for i, s := range sum {
		pooled[i] = float32(s / n)
	}
	return pooled
}
