package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 1}, b: []float32{-1, -1}, want: -1},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 2}, want: 0},
		{name: "empty stored vector", a: []float32{1, 2}, b: []float32{}, want: 0},
		{name: "dimension mismatch", a: []float32{1, 2}, b: []float32{1, 2, 3}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 1e-6)
			assert.GreaterOrEqual(t, got, -1.0-1e-9)
			assert.LessOrEqual(t, got, 1.0+1e-9)
		})
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"best", "beaches", "galle"}, Tokenize("Best beaches in Galle?"))
	assert.Equal(t, []string{"ella"}, Tokenize("Ella, ELLA ella!"))
	assert.Equal(t, []string{"a9x"}, Tokenize("a9x is ok"))
	assert.Empty(t, Tokenize("is it in? ok"))
}

func TestKeywordScore(t *testing.T) {
	tokens := Tokenize("Best beaches in Galle")

	assert.InDelta(t, 2.0/3.0, KeywordScore(tokens, "Galle Fort\nDutch fort with ramparts and beaches nearby"), 1e-9)
	assert.InDelta(t, 1.0, KeywordScore(tokens, "The best beaches are near Galle"), 1e-9)
	assert.InDelta(t, 0.0, KeywordScore(tokens, "Tea plantations in Nuwara Eliya"), 1e-9)
	assert.InDelta(t, 0.0, KeywordScore(nil, "anything"), 1e-9)
}
