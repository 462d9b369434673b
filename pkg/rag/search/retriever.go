package search

import (
	"context"
	"fmt"
	"sort"

	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/pkg/logger"
)

type Method string

const (
	MethodVector  Method = "vector"
	MethodKeyword Method = "keyword"
)

// ScoredMatch is a retrieved index entry with its relevance score.
type ScoredMatch struct {
	Chunk  *entity.RagChunk
	Score  float64
	Method Method
}

// EntrySource lists every index entry in insertion order.
type EntrySource interface {
	AllEntries(ctx context.Context) ([]*entity.RagChunk, error)
}

type QueryEmbedder interface {
	EmbedQuery(ctx context.Context, text string) []float32
}

// Retriever ranks the whole index against a query by brute-force scan.
type Retriever struct {
	source   EntrySource
	embedder QueryEmbedder
	logger   logger.ILogger
}

func NewRetriever(source EntrySource, embedder QueryEmbedder, log logger.ILogger) *Retriever {
	return &Retriever{
		source:   source,
		embedder: embedder,
		logger:   log,
	}
}

// Retrieve returns at most limit matches in descending score order. Equal
// scores keep index order. Cosine similarity is used when the query embeds;
// otherwise keyword overlap.
func (r *Retriever) Retrieve(ctx context.Context, query string, limit int) ([]ScoredMatch, error) {
	if limit <= 0 {
		return []ScoredMatch{}, nil
	}

	entries, err := r.source.AllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading index entries: %w", err)
	}
	if len(entries) == 0 {
		return []ScoredMatch{}, nil
	}

	matches := make([]ScoredMatch, len(entries))
	queryVec := r.embedder.EmbedQuery(ctx, query)

	if len(queryVec) > 0 {
		for i, e := range entries {
			matches[i] = ScoredMatch{Chunk: e, Score: CosineSimilarity(queryVec, e.Embedding), Method: MethodVector}
		}
	} else {
		tokens := Tokenize(query)
		for i, e := range entries {
			matches[i] = ScoredMatch{Chunk: e, Score: KeywordScore(tokens, e.Content), Method: MethodKeyword}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	r.logger.Debug("RETRIEVER", "Ranked index entries", map[string]interface{}{
		"query":   query,
		"method":  matches[0].Method,
		"entries": len(entries),
		"top":     summarize(matches),
	})

	return matches, nil
}

func summarize(matches []ScoredMatch) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = fmt.Sprintf("%s %.3f", m.Chunk.Key(), m.Score)
	}
	return out
}
