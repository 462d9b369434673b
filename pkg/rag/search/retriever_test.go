package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	entries []*entity.RagChunk
	err     error
}

func (s staticSource) AllEntries(ctx context.Context) ([]*entity.RagChunk, error) {
	return s.entries, s.err
}

type fixedEmbedder []float32

func (f fixedEmbedder) EmbedQuery(ctx context.Context, text string) []float32 {
	if f == nil {
		return []float32{}
	}
	return f
}

func entry(ref, content string, vec ...float32) *entity.RagChunk {
	if vec == nil {
		vec = []float32{}
	}
	return &entity.RagChunk{Type: entity.ChunkTypeDestination, RefId: ref, Title: ref, Content: content, Embedding: vec}
}

func TestRetriever_Vector(t *testing.T) {
	entries := make([]*entity.RagChunk, 10)
	for i := range entries {
		// angle grows with i, so similarity to (1,0) strictly decreases
		entries[i] = entry(fmt.Sprintf("r%d", i), "x", 1, float32(i))
	}
	// shuffle encounter order
	entries[2], entries[7] = entries[7], entries[2]

	r := NewRetriever(staticSource{entries: entries}, fixedEmbedder{1, 0}, logger.NewNopLogger())
	got, err := r.Retrieve(context.Background(), "anything", 3)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "r0", got[0].Chunk.RefId)
	assert.Equal(t, "r1", got[1].Chunk.RefId)
	assert.Equal(t, "r2", got[2].Chunk.RefId)
	assert.Greater(t, got[0].Score, got[1].Score)
	assert.Greater(t, got[1].Score, got[2].Score)
	assert.Equal(t, MethodVector, got[0].Method)
}

func TestRetriever_VectorEmptyStoredEmbeddingScoresZero(t *testing.T) {
	entries := []*entity.RagChunk{entry("missing", "x"), entry("present", "x", 1, 0)}

	r := NewRetriever(staticSource{entries: entries}, fixedEmbedder{1, 0}, logger.NewNopLogger())
	got, err := r.Retrieve(context.Background(), "q", 5)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "present", got[0].Chunk.RefId)
	assert.Equal(t, 0.0, got[1].Score)
}

func TestRetriever_KeywordFallback(t *testing.T) {
	entries := []*entity.RagChunk{
		entry("tea", "Destination: Nuwara Eliya\nTea country"),
		entry("galle", "Destination: Galle Fort\nBeaches and ramparts"),
		entry("mirissa", "Destination: Mirissa\nBeaches and whales"),
	}

	r := NewRetriever(staticSource{entries: entries}, fixedEmbedder(nil), logger.NewNopLogger())
	got, err := r.Retrieve(context.Background(), "Best beaches in Galle", 5)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "galle", got[0].Chunk.RefId)
	assert.InDelta(t, 2.0/3.0, got[0].Score, 1e-9)
	assert.Equal(t, "mirissa", got[1].Chunk.RefId)
	assert.InDelta(t, 1.0/3.0, got[1].Score, 1e-9)
	assert.Equal(t, MethodKeyword, got[0].Method)
}

func TestRetriever_TiesKeepIndexOrder(t *testing.T) {
	entries := []*entity.RagChunk{entry("a", "same"), entry("b", "same"), entry("c", "same")}

	r := NewRetriever(staticSource{entries: entries}, fixedEmbedder(nil), logger.NewNopLogger())
	got, err := r.Retrieve(context.Background(), "no match here", 5)

	require.NoError(t, err)
	assert.Equal(t, "a", got[0].Chunk.RefId)
	assert.Equal(t, "b", got[1].Chunk.RefId)
	assert.Equal(t, "c", got[2].Chunk.RefId)
}

func TestRetriever_EmptyIndexAndErrors(t *testing.T) {
	r := NewRetriever(staticSource{}, fixedEmbedder{1}, logger.NewNopLogger())
	got, err := r.Retrieve(context.Background(), "q", 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.Retrieve(context.Background(), "q", 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	r = NewRetriever(staticSource{err: errors.New("disk gone")}, fixedEmbedder{1}, logger.NewNopLogger())
	_, err = r.Retrieve(context.Background(), "q", 5)
	assert.Error(t, err)
}
