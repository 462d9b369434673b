package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChunkType string

const (
	ChunkTypeDestination ChunkType = "destination"
	ChunkTypeStay        ChunkType = "stay"
	ChunkTypeExperience  ChunkType = "experience"
	ChunkTypeEvent       ChunkType = "event"
)

// RagChunk is one persisted index entry: the chunk text plus its embedding.
// An empty Embedding means the vector was unavailable at build time.
type RagChunk struct {
	Id        uuid.UUID
	Type      ChunkType
	RefId     string
	Title     string
	Content   string
	Embedding []float32
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key identifies the source record of a chunk.
func (c *RagChunk) Key() string {
	return string(c.Type) + ":" + c.RefId
}
