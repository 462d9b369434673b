package index

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/pkg/logger"
	"motherlanka-be/internal/repository/unitofwork"
	"motherlanka-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingEmbedder struct {
	calls atomic.Int32
	vec   []float32
}

func (c *countingEmbedder) Embed(ctx context.Context, text string) []float32 {
	c.calls.Add(1)
	if c.vec == nil {
		return []float32{}
	}
	return c.vec
}

// slowEmbedder answers at once until slow is set. After that it closes started
// on its first call and takes delay per chunk.
type slowEmbedder struct {
	delay   time.Duration
	slow    atomic.Bool
	started chan struct{}
	once    sync.Once
}

func (s *slowEmbedder) Embed(ctx context.Context, text string) []float32 {
	if s.slow.Load() {
		s.once.Do(func() { close(s.started) })
		time.Sleep(s.delay)
	}
	return []float32{1, 0}
}

type recordingNotifier struct {
	mu      sync.Mutex
	results []RebuildResult
}

func (n *recordingNotifier) IndexRebuilt(ctx context.Context, result RebuildResult) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.results = append(n.results, result)
	return nil
}

func newIndexer(t *testing.T, embedder Embedder, opts ...Option) (*Indexer, unitofwork.RepositoryFactory) {
	t.Helper()
	factory := unitofwork.NewRepositoryFactory(testutil.NewDB(t))
	testutil.Seed(t, factory, testutil.SampleSnapshot())
	return NewIndexer(factory, embedder, logger.NewNopLogger(), opts...), factory
}

func TestIndexer_Rebuild(t *testing.T) {
	ctx := context.Background()
	embedder := &countingEmbedder{vec: []float32{0.1, 0.2, 0.3}}
	notifier := &recordingNotifier{}
	idx, _ := newIndexer(t, embedder, WithConcurrency(3), WithNotifier(notifier))

	empty, err := idx.IsEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	res, err := idx.Rebuild(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Chunks)
	assert.Equal(t, 5, res.Embedded)
	assert.Equal(t, int32(5), embedder.calls.Load())

	// twice in a row gives the same table
	res, err = idx.Rebuild(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Chunks)

	entries, err := idx.AllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	seen := map[string]bool{}
	for i, e := range entries {
		assert.False(t, seen[e.Key()], "duplicate %s", e.Key())
		seen[e.Key()] = true
		assert.Equal(t, i, e.Position)
		assert.Equal(t, []float32{0.1, 0.2, 0.3}, e.Embedding)
		assert.NotEmpty(t, e.Title)
	}
	assert.Equal(t, entity.ChunkTypeDestination, entries[0].Type)
	assert.Equal(t, entity.ChunkTypeEvent, entries[4].Type)

	assert.Len(t, notifier.results, 2)
}

func TestIndexer_RebuildWithoutEmbeddings(t *testing.T) {
	ctx := context.Background()
	idx, _ := newIndexer(t, &countingEmbedder{})

	res, err := idx.Rebuild(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Chunks)
	assert.Equal(t, 0, res.Embedded)

	entries, err := idx.AllEntries(ctx)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotNil(t, e.Embedding)
		assert.Empty(t, e.Embedding)
	}
}

func TestIndexer_EnsureIndex(t *testing.T) {
	ctx := context.Background()
	embedder := &countingEmbedder{}
	idx, _ := newIndexer(t, embedder)

	var wg sync.WaitGroup
	rebuilt := make([]bool, 4)
	for i := range rebuilt {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := idx.EnsureIndex(ctx)
			assert.NoError(t, err)
			rebuilt[i] = r
		}()
	}
	wg.Wait()

	count := 0
	for _, r := range rebuilt {
		if r {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, int32(5), embedder.calls.Load())
}

func TestIndexer_EnsureIndexDuringRebuild(t *testing.T) {
	tests := []struct {
		name     string
		deadline time.Duration
	}{
		{name: "no deadline"},
		{name: "short request deadline", deadline: 150 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embedder := &slowEmbedder{delay: 200 * time.Millisecond, started: make(chan struct{})}
			idx, _ := newIndexer(t, embedder)

			_, err := idx.Rebuild(context.Background(), "seed")
			require.NoError(t, err)
			embedder.slow.Store(true)

			done := make(chan error, 1)
			go func() {
				_, err := idx.Rebuild(context.Background(), "content_changed")
				done <- err
			}()
			<-embedder.started

			ctx := context.Background()
			if tt.deadline > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tt.deadline)
				defer cancel()
			}

			start := time.Now()
			rebuilt, err := idx.EnsureIndex(ctx)
			elapsed := time.Since(start)

			require.NoError(t, err)
			assert.False(t, rebuilt)
			assert.Less(t, elapsed, 100*time.Millisecond)

			entries, err := idx.AllEntries(context.Background())
			require.NoError(t, err)
			assert.Len(t, entries, 5)

			require.NoError(t, <-done)
		})
	}
}

func TestIndexer_RebuildPicksUpNewContent(t *testing.T) {
	ctx := context.Background()
	idx, factory := newIndexer(t, &countingEmbedder{})

	_, err := idx.Rebuild(ctx, "test")
	require.NoError(t, err)

	testutil.Seed(t, factory, &entity.ContentSnapshot{
		Destinations: []*entity.Destination{{Id: "d3", Name: "Sigiriya", Category: "Heritage"}},
	})

	res, err := idx.Rebuild(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, 6, res.Chunks)
}
