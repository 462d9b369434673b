package mapper

import (
	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/model"

	"gorm.io/datatypes"
)

type RagChunkMapper struct{}

func NewRagChunkMapper() *RagChunkMapper {
	return &RagChunkMapper{}
}

func (m *RagChunkMapper) ToEntity(c *model.RagChunk) *entity.RagChunk {
	if c == nil {
		return nil
	}

	embedding := []float32(c.Embedding)
	if embedding == nil {
		embedding = []float32{}
	}

	return &entity.RagChunk{
		Id:        c.Id,
		Type:      entity.ChunkType(c.Type),
		RefId:     c.RefId,
		Title:     c.Title,
		Content:   c.Content,
		Embedding: embedding,
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *RagChunkMapper) ToModel(c *entity.RagChunk) *model.RagChunk {
	if c == nil {
		return nil
	}

	embedding := datatypes.JSONSlice[float32]{}
	if len(c.Embedding) > 0 {
		embedding = datatypes.NewJSONSlice(c.Embedding)
	}

	return &model.RagChunk{
		Id:        c.Id,
		Type:      string(c.Type),
		RefId:     c.RefId,
		Title:     c.Title,
		Content:   c.Content,
		Embedding: embedding,
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *RagChunkMapper) ToEntities(chunks []*model.RagChunk) []*entity.RagChunk {
	entities := make([]*entity.RagChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *RagChunkMapper) ToModels(chunks []*entity.RagChunk) []*model.RagChunk {
	models := make([]*model.RagChunk, len(chunks))
	for i, c := range chunks {
		models[i] = m.ToModel(c)
	}
	return models
}
