package implementation

import (
	"context"

	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/mapper"
	"motherlanka-be/internal/model"
	"motherlanka-be/internal/repository/contract"
	"motherlanka-be/internal/repository/specification"

	"gorm.io/gorm"
)

// createBatchSize keeps multi-row inserts under SQLite's bound parameter limit.
const createBatchSize = 100

type RagChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RagChunkMapper
}

func NewRagChunkRepository(db *gorm.DB) contract.RagChunkRepository {
	return &RagChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewRagChunkMapper(),
	}
}

func (r *RagChunkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RagChunkRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.RagChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	models := r.mapper.ToModels(chunks)
	if err := r.db.WithContext(ctx).CreateInBatches(models, createBatchSize).Error; err != nil {
		return err
	}

	for i, m := range models {
		*chunks[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

// DeleteAll hard-deletes every index entry and reports how many rows went away.
func (r *RagChunkRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.RagChunk{})
	return res.RowsAffected, res.Error
}

func (r *RagChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RagChunk, error) {
	var models []*model.RagChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RagChunkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RagChunk{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
