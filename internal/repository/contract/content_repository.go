package contract

import (
	"context"

	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/repository/specification"
)

// ContentRepository is the read side of the site's content tables. Seed is the
// only write and exists for fixtures and local setups.
type ContentRepository interface {
	ListDestinations(ctx context.Context, specs ...specification.Specification) ([]*entity.Destination, error)
	ListStays(ctx context.Context, specs ...specification.Specification) ([]*entity.Stay, error)
	ListExperiences(ctx context.Context, specs ...specification.Specification) ([]*entity.Experience, error)
	ListEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error)
	Seed(ctx context.Context, snapshot *entity.ContentSnapshot) error
}
