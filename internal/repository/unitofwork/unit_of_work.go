package unitofwork

import (
	"context"

	"motherlanka-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ContentRepository() contract.ContentRepository
	RagChunkRepository() contract.RagChunkRepository
}
