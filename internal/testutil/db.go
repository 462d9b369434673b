// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"testing"

	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/model"
	"motherlanka-be/internal/repository/unitofwork"
	"motherlanka-be/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated, private in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewInMemorySQLite()
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Seed writes a content snapshot through the repository layer.
func Seed(t *testing.T, factory unitofwork.RepositoryFactory, snapshot *entity.ContentSnapshot) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, factory.NewUnitOfWork(ctx).ContentRepository().Seed(ctx, snapshot))
}

// EllaSnapshot is the single-destination corpus used by end-to-end tests.
func EllaSnapshot() *entity.ContentSnapshot {
	return &entity.ContentSnapshot{
		Destinations: []*entity.Destination{
			{Id: "d1", Name: "Ella", Category: "Nature", Description: "Famous for Nine Arch Bridge"},
		},
	}
}

// SampleSnapshot has one record of each content type.
func SampleSnapshot() *entity.ContentSnapshot {
	return &entity.ContentSnapshot{
		Destinations: []*entity.Destination{
			{Id: "d1", Name: "Ella", Category: "Nature", Region: "Uva", Description: "Famous for Nine Arch Bridge"},
			{Id: "d2", Name: "Galle Fort", Category: "Heritage", Region: "Southern", Weather: "Tropical", Description: "Dutch fort with ramparts and beaches nearby"},
		},
		Stays: []*entity.Stay{
			{Id: "s1", Name: "98 Acres Resort", Location: "Ella", Type: "Resort", Price: 45000, Rating: 4.8},
		},
		Experiences: []*entity.Experience{
			{Id: "x1", Title: "Whale Watching", Category: "Wildlife", Duration: "4 hours", Rating: 4.6, Short: "Blue whales off Mirissa"},
		},
		Events: []*entity.Event{
			{Id: "e1", Title: "Kandy Esala Perahera", Category: "Festival", Location: "Kandy", StartDate: "2025-08-01", EndDate: "2025-08-10", Description: "Procession of the Sacred Tooth Relic"},
		},
	}
}
