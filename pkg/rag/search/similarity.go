package search

import (
	"math"
	"strings"
)

// CosineSimilarity returns dot(a,b)/(|a||b|). When either norm is zero the
// denominator is 1, so a zero vector scores 0. Empty or mismatched vectors
// score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, aNorm, bNorm float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		aNorm += x * x
		bNorm += y * y
	}

	denom := math.Sqrt(aNorm) * math.Sqrt(bNorm)
	if denom == 0 {
		denom = 1
	}
	return dot / denom
}

// Tokenize lower-cases text, splits on anything outside [a-z0-9] and keeps the
// distinct tokens longer than two characters in first-seen order.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})

	tokens := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if len(f) <= 2 {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}

// KeywordScore is the share of tokens found as substrings of the lower-cased
// text. No tokens scores 0.
func KeywordScore(tokens []string, text string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	hay := strings.ToLower(text)
	matched := 0
	for _, t := range tokens {
		if strings.Contains(hay, t) {
			matched++
		}
	}
	return float64(matched) / float64(len(tokens))
}
