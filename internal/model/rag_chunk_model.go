package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RagChunk struct {
	Id        uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	Type      string                       `gorm:"type:text;not null;uniqueIndex:idx_rag_chunks_type_ref"`
	RefId     string                       `gorm:"column:ref_id;type:text;not null;uniqueIndex:idx_rag_chunks_type_ref"`
	Title     string                       `gorm:"type:text;not null"`
	Content   string                       `gorm:"type:text;not null"`
	Embedding datatypes.JSONSlice[float32] `gorm:"column:embedding_json;not null"`
	Position  int                          `gorm:"not null;index"`
	CreatedAt time.Time                    `gorm:"autoCreateTime"`
	UpdatedAt time.Time                    `gorm:"autoUpdateTime"`
}

func (RagChunk) TableName() string {
	return "rag_chunks"
}

func (c *RagChunk) BeforeCreate(tx *gorm.DB) error {
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	return nil
}

// All returns every model the assistant migrates.
func All() []interface{} {
	return []interface{}{
		&Destination{},
		&Stay{},
		&Experience{},
		&Event{},
		&RagChunk{},
	}
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
