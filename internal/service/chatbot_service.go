package service

import (
	"context"
	"errors"

	"motherlanka-be/internal/dto"
	"motherlanka-be/internal/pkg/logger"
	"motherlanka-be/pkg/rag/index"
	"motherlanka-be/pkg/rag/prompt"
	"motherlanka-be/pkg/rag/response"
	"motherlanka-be/pkg/rag/search"
)

const chatbotModule = "CHATBOT"

type IChatbotService interface {
	HandleChat(ctx context.Context, request *dto.ChatRequest) *dto.ChatResponse
	RebuildIndex(ctx context.Context) (*dto.RagRebuildResponse, error)
	QueueRebuild(ctx context.Context, trigger string) error
	Status(ctx context.Context) (*dto.RagStatusResponse, error)
}

// EmbeddingStatus reports embedder state for the status route.
type EmbeddingStatus interface {
	Enabled() bool
	Dimension() int
}

type chatbotService struct {
	indexer      *index.Indexer
	retriever    *search.Retriever
	generator    *response.Generator
	publisher    IPublisherService
	embeddings   EmbeddingStatus
	topK         int
	exposeErrors bool
	logger       logger.ILogger
}

// ErrNoRebuildQueue is returned by QueueRebuild when the service was built
// without a publisher, as ragctl does.
var ErrNoRebuildQueue = errors.New("rebuild queue is not configured")

type ChatbotOptions struct {
	TopK int
	// ExposeErrors attaches failure detail to chat replies (non-production only).
	ExposeErrors bool
}

func NewChatbotService(
	indexer *index.Indexer,
	retriever *search.Retriever,
	generator *response.Generator,
	publisher IPublisherService,
	embeddings EmbeddingStatus,
	log logger.ILogger,
	opts ChatbotOptions,
) IChatbotService {
	if opts.TopK <= 0 {
		opts.TopK = 5
	}
	return &chatbotService{
		indexer:      indexer,
		retriever:    retriever,
		generator:    generator,
		publisher:    publisher,
		embeddings:   embeddings,
		topK:         opts.TopK,
		exposeErrors: opts.ExposeErrors,
		logger:       log,
	}
}

// HandleChat never fails. Infrastructure errors become the unavailable reply
// with no sources; generation errors keep the sources that were found.
func (s *chatbotService) HandleChat(ctx context.Context, request *dto.ChatRequest) *dto.ChatResponse {
	if _, err := s.indexer.EnsureIndex(ctx); err != nil {
		return s.unavailable(err)
	}

	matches, err := s.retriever.Retrieve(ctx, request.Message, s.topK)
	if err != nil {
		return s.unavailable(err)
	}

	promptText := prompt.Build(request.Message, matches)
	s.logger.Debug(chatbotModule, "Prompt assembled", map[string]interface{}{
		"matches": len(matches),
		"prompt":  promptText,
	})

	reply := s.generator.Answer(ctx, promptText, len(matches) > 0)

	res := &dto.ChatResponse{
		Reply:   reply.Text,
		Sources: toSources(matches),
	}
	if reply.Err != nil && s.exposeErrors {
		res.Error = reply.Err.Error()
	}
	return res
}

func (s *chatbotService) unavailable(err error) *dto.ChatResponse {
	s.logger.Error(chatbotModule, "Chat pipeline failed before generation", map[string]interface{}{
		"error": err.Error(),
	})

	reply := response.Unavailable(err)
	res := &dto.ChatResponse{
		Reply:   reply.Text,
		Sources: []dto.ChatSource{},
	}
	if s.exposeErrors {
		res.Error = err.Error()
	}
	return res
}

func (s *chatbotService) RebuildIndex(ctx context.Context) (*dto.RagRebuildResponse, error) {
	result, err := s.indexer.Rebuild(ctx, "admin")
	if err != nil {
		s.logger.Error(chatbotModule, "RAG rebuild failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	return &dto.RagRebuildResponse{
		Ok:       true,
		Chunks:   result.Chunks,
		Embedded: result.Embedded,
	}, nil
}

func (s *chatbotService) QueueRebuild(ctx context.Context, trigger string) error {
	if s.publisher == nil {
		return ErrNoRebuildQueue
	}
	return s.publisher.RequestRebuild(ctx, trigger)
}

func (s *chatbotService) Status(ctx context.Context) (*dto.RagStatusResponse, error) {
	count, err := s.indexer.Count(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.indexer.CountByType(ctx)
	if err != nil {
		return nil, err
	}

	types := make(map[string]int64, len(byType))
	for t, n := range byType {
		types[string(t)] = n
	}
	return &dto.RagStatusResponse{
		Chunks:             count,
		ByType:             types,
		EmbeddingsEnabled:  s.embeddings.Enabled(),
		EmbeddingDimension: s.embeddings.Dimension(),
	}, nil
}

func toSources(matches []search.ScoredMatch) []dto.ChatSource {
	sources := make([]dto.ChatSource, len(matches))
	for i, m := range matches {
		sources[i] = dto.ChatSource{
			Type:  string(m.Chunk.Type),
			Title: m.Chunk.Title,
			RefId: m.Chunk.RefId,
			Score: m.Score,
		}
	}
	return sources
}
