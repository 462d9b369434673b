package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"motherlanka-be/internal/dto"
	"motherlanka-be/internal/pkg/logger"
	"motherlanka-be/internal/repository/unitofwork"
	"motherlanka-be/internal/testutil"
	"motherlanka-be/pkg/embedding"
	"motherlanka-be/pkg/llm"
	"motherlanka-be/pkg/rag/index"
	"motherlanka-be/pkg/rag/response"
	"motherlanka-be/pkg/rag/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if len(history) > 0 {
		s.lastPrompt = history[len(history)-1].Content
	}
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func (s *stubLLM) Name() string {
	return "stub"
}

type stubPublisher struct {
	triggers []string
}

func (p *stubPublisher) RequestRebuild(ctx context.Context, trigger string) error {
	p.triggers = append(p.triggers, trigger)
	return nil
}

type chatbotFixture struct {
	service   IChatbotService
	db        *gorm.DB
	llm       *stubLLM
	publisher *stubPublisher
}

func newChatbotFixture(t *testing.T, model *stubLLM, opts ChatbotOptions) *chatbotFixture {
	t.Helper()
	log := logger.NewNopLogger()

	db := testutil.NewDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	testutil.Seed(t, factory, testutil.EllaSnapshot())

	embedder := embedding.NewEmbedder(nil, log, embedding.WithDisabled(true))
	indexer := index.NewIndexer(factory, embedder, log)
	retriever := search.NewRetriever(indexer, embedder, log)
	generator := response.NewGenerator(model, log, time.Second)
	publisher := &stubPublisher{}

	return &chatbotFixture{
		service:   NewChatbotService(indexer, retriever, generator, publisher, embedder, log, opts),
		db:        db,
		llm:       model,
		publisher: publisher,
	}
}

func TestChatbotService_EllaEndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newChatbotFixture(t, &stubLLM{reply: "  Walk across the Nine Arch Bridge.  "}, ChatbotOptions{})

	rebuilt, err := f.service.RebuildIndex(ctx)
	require.NoError(t, err)
	assert.True(t, rebuilt.Ok)
	assert.Equal(t, 1, rebuilt.Chunks)
	assert.Equal(t, 0, rebuilt.Embedded)

	res := f.service.HandleChat(ctx, &dto.ChatRequest{Message: "What can I do in Ella?"})
	assert.Equal(t, "Walk across the Nine Arch Bridge.", res.Reply)
	assert.Empty(t, res.Error)

	require.Len(t, res.Sources, 1)
	assert.Equal(t, "destination", res.Sources[0].Type)
	assert.Equal(t, "Ella", res.Sources[0].Title)
	assert.Equal(t, "d1", res.Sources[0].RefId)
	assert.Greater(t, res.Sources[0].Score, 0.0)

	assert.Contains(t, f.llm.lastPrompt, "Famous for Nine Arch Bridge")
	assert.Contains(t, f.llm.lastPrompt, "Question: What can I do in Ella?")
}

func TestChatbotService_BuildsIndexOnFirstChat(t *testing.T) {
	ctx := context.Background()
	f := newChatbotFixture(t, &stubLLM{reply: "Ella is lovely."}, ChatbotOptions{})

	res := f.service.HandleChat(ctx, &dto.ChatRequest{Message: "Ella"})
	require.Len(t, res.Sources, 1)

	status, err := f.service.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.Chunks)
	assert.Equal(t, map[string]int64{"destination": 1, "stay": 0, "experience": 0, "event": 0}, status.ByType)
	assert.False(t, status.EmbeddingsEnabled)
	assert.Equal(t, 0, status.EmbeddingDimension)
}

func TestChatbotService_GenerationFailure(t *testing.T) {
	failure := &llm.GenerationError{Provider: "huggingface", StatusCode: 503, Err: errors.New("model loading")}

	tests := []struct {
		name         string
		exposeErrors bool
		wantError    bool
	}{
		{name: "error hidden", exposeErrors: false},
		{name: "error exposed", exposeErrors: true, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newChatbotFixture(t, &stubLLM{err: failure}, ChatbotOptions{ExposeErrors: tt.exposeErrors})

			res := f.service.HandleChat(context.Background(), &dto.ChatRequest{Message: "Tell me about Ella"})
			assert.Equal(t, response.DegradedWithSourcesMessage, res.Reply)
			require.Len(t, res.Sources, 1)
			assert.Equal(t, "d1", res.Sources[0].RefId)

			if tt.wantError {
				assert.Contains(t, res.Error, "status 503")
			} else {
				assert.Empty(t, res.Error)
			}
		})
	}
}

func TestChatbotService_StorageFailure(t *testing.T) {
	f := newChatbotFixture(t, &stubLLM{reply: "unused"}, ChatbotOptions{ExposeErrors: true})

	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	res := f.service.HandleChat(context.Background(), &dto.ChatRequest{Message: "Ella"})
	assert.Equal(t, response.UnavailableMessage, res.Reply)
	assert.NotNil(t, res.Sources)
	assert.Empty(t, res.Sources)
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, f.llm.lastPrompt)
}

func TestChatbotService_QueueRebuild(t *testing.T) {
	f := newChatbotFixture(t, &stubLLM{}, ChatbotOptions{})

	require.NoError(t, f.service.QueueRebuild(context.Background(), "admin:async"))
	assert.Equal(t, []string{"admin:async"}, f.publisher.triggers)
}

func TestChatbotService_WithoutPublisher(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNopLogger()

	factory := unitofwork.NewRepositoryFactory(testutil.NewDB(t))
	testutil.Seed(t, factory, testutil.EllaSnapshot())

	embedder := embedding.NewEmbedder(nil, log, embedding.WithDisabled(true))
	indexer := index.NewIndexer(factory, embedder, log)
	model := &stubLLM{err: errors.New("model loading")}
	svc := NewChatbotService(indexer, search.NewRetriever(indexer, embedder, log),
		response.NewGenerator(model, log, time.Second), nil, embedder, log,
		ChatbotOptions{TopK: 3, ExposeErrors: true})

	res := svc.HandleChat(ctx, &dto.ChatRequest{Message: "What can I do in Ella?"})
	assert.Equal(t, response.DegradedWithSourcesMessage, res.Reply)
	assert.Contains(t, res.Error, "model loading")
	require.Len(t, res.Sources, 1)
	assert.Equal(t, "Ella", res.Sources[0].Title)

	assert.ErrorIs(t, svc.QueueRebuild(ctx, "admin:async"), ErrNoRebuildQueue)
}
