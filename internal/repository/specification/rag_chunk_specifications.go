package specification

import (
	"motherlanka-be/internal/entity"

	"gorm.io/gorm"
)

// ByChunkType restricts index entries to one content type.
type ByChunkType struct {
	Type entity.ChunkType
}

func (s ByChunkType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", string(s.Type))
}

// IndexOrder is the encounter order the index was built in.
func IndexOrder() Specification {
	return OrderBy{Field: "position"}
}
