package index

import (
	"context"
	"fmt"
	"sync"
	"time"

	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/pkg/logger"
	"motherlanka-be/internal/repository/specification"
	"motherlanka-be/internal/repository/unitofwork"
	"motherlanka-be/pkg/rag/chunk"

	"golang.org/x/sync/errgroup"
)

const module = "RAG_INDEX"

type Embedder interface {
	Embed(ctx context.Context, text string) []float32
}

// RebuildResult describes a finished rebuild.
type RebuildResult struct {
	Chunks   int           `json:"chunks"`
	Embedded int           `json:"embedded"`
	Trigger  string        `json:"trigger"`
	Duration time.Duration `json:"duration"`
	BuiltAt  time.Time     `json:"built_at"`
}

// Notifier is told about every committed rebuild. Failures are logged only.
type Notifier interface {
	IndexRebuilt(ctx context.Context, result RebuildResult) error
}

// Indexer owns the rag_chunks table. Rebuild is the only write path.
type Indexer struct {
	uowFactory  unitofwork.RepositoryFactory
	embedder    Embedder
	concurrency int
	notifier    Notifier
	logger      logger.ILogger

	// mu serializes rebuilds and collapses concurrent EnsureIndex calls on an
	// empty index. A populated index is never gated on it.
	mu sync.Mutex
}

type Option func(*Indexer)

func WithConcurrency(n int) Option {
	return func(i *Indexer) {
		if n > 0 {
			i.concurrency = n
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(i *Indexer) {
		i.notifier = n
	}
}

func NewIndexer(uowFactory unitofwork.RepositoryFactory, embedder Embedder, log logger.ILogger, opts ...Option) *Indexer {
	i := &Indexer{
		uowFactory:  uowFactory,
		embedder:    embedder,
		concurrency: 1,
		logger:      log,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Rebuild reads all content, embeds every chunk and then swaps the table
// contents in one transaction. It returns the number of chunks written.
func (i *Indexer) Rebuild(ctx context.Context, trigger string) (RebuildResult, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.rebuildLocked(ctx, trigger)
}

// EnsureIndex rebuilds only when the index is empty. A populated index returns
// at once, even while a refresh rebuild runs. Callers that find it empty wait
// on the first rebuild and then see a populated index.
func (i *Indexer) EnsureIndex(ctx context.Context) (bool, error) {
	empty, err := i.IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		return false, nil
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// another caller may have built it while we waited
	empty, err = i.IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		return false, nil
	}

	if _, err := i.rebuildLocked(ctx, "first_query"); err != nil {
		return false, err
	}
	return true, nil
}

func (i *Indexer) IsEmpty(ctx context.Context) (bool, error) {
	count, err := i.Count(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (i *Indexer) Count(ctx context.Context) (int64, error) {
	uow := i.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.RagChunkRepository().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting index entries: %w", err)
	}
	return count, nil
}

// CountByType reports index entries per content type. Types with no entries
// are present with a zero count.
func (i *Indexer) CountByType(ctx context.Context) (map[entity.ChunkType]int64, error) {
	uow := i.uowFactory.NewUnitOfWork(ctx)
	counts := make(map[entity.ChunkType]int64, 4)
	for _, t := range []entity.ChunkType{
		entity.ChunkTypeDestination,
		entity.ChunkTypeStay,
		entity.ChunkTypeExperience,
		entity.ChunkTypeEvent,
	} {
		n, err := uow.RagChunkRepository().Count(ctx, specification.ByChunkType{Type: t})
		if err != nil {
			return nil, fmt.Errorf("counting %s entries: %w", t, err)
		}
		counts[t] = n
	}
	return counts, nil
}

// AllEntries returns every index entry in insertion order.
func (i *Indexer) AllEntries(ctx context.Context) ([]*entity.RagChunk, error) {
	uow := i.uowFactory.NewUnitOfWork(ctx)
	return uow.RagChunkRepository().FindAll(ctx, specification.IndexOrder())
}

func (i *Indexer) rebuildLocked(ctx context.Context, trigger string) (RebuildResult, error) {
	start := time.Now()

	snapshot, err := i.loadContent(ctx)
	if err != nil {
		return RebuildResult{}, err
	}

	chunks := chunk.BuildAll(snapshot)
	if err := i.embedAll(ctx, chunks); err != nil {
		return RebuildResult{}, err
	}

	uow := i.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return RebuildResult{}, fmt.Errorf("begin rebuild transaction: %w", err)
	}
	defer uow.Rollback()

	deleted, err := uow.RagChunkRepository().DeleteAll(ctx)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("clearing index: %w", err)
	}
	if err := uow.RagChunkRepository().CreateBulk(ctx, chunks); err != nil {
		return RebuildResult{}, fmt.Errorf("writing index: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return RebuildResult{}, fmt.Errorf("commit rebuild: %w", err)
	}

	result := RebuildResult{
		Chunks:   len(chunks),
		Embedded: countEmbedded(chunks),
		Trigger:  trigger,
		Duration: time.Since(start),
		BuiltAt:  time.Now().UTC(),
	}

	i.logger.Info(module, "Index rebuilt", map[string]interface{}{
		"chunks":   result.Chunks,
		"embedded": result.Embedded,
		"replaced": deleted,
		"trigger":  trigger,
		"took_ms":  result.Duration.Milliseconds(),
	})

	if i.notifier != nil {
		if err := i.notifier.IndexRebuilt(ctx, result); err != nil {
			i.logger.Warn(module, "Failed to announce rebuild", map[string]interface{}{"error": err.Error()})
		}
	}

	return result, nil
}

func (i *Indexer) loadContent(ctx context.Context) (*entity.ContentSnapshot, error) {
	repo := i.uowFactory.NewUnitOfWork(ctx).ContentRepository()
	byId := specification.OrderBy{Field: "id"}

	destinations, err := repo.ListDestinations(ctx, byId)
	if err != nil {
		return nil, fmt.Errorf("reading destinations: %w", err)
	}
	stays, err := repo.ListStays(ctx, byId)
	if err != nil {
		return nil, fmt.Errorf("reading stays: %w", err)
	}
	experiences, err := repo.ListExperiences(ctx, byId)
	if err != nil {
		return nil, fmt.Errorf("reading experiences: %w", err)
	}
	events, err := repo.ListEvents(ctx, byId)
	if err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}

	return &entity.ContentSnapshot{
		Destinations: destinations,
		Stays:        stays,
		Experiences:  experiences,
		Events:       events,
	}, nil
}

// embedAll fills chunk embeddings with at most i.concurrency calls in flight.
func (i *Indexer) embedAll(ctx context.Context, chunks []*entity.RagChunk) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)

	for _, c := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.Embedding = i.embedder.Embed(gctx, c.Content)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("embedding chunks: %w", err)
	}
	return nil
}

func countEmbedded(chunks []*entity.RagChunk) int {
	n := 0
	for _, c := range chunks {
		if len(c.Embedding) > 0 {
			n++
		}
	}
	return n
}
