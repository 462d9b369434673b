package contract

import (
	"context"

	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/repository/specification"
)

type RagChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.RagChunk) error
	DeleteAll(ctx context.Context) (int64, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RagChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
