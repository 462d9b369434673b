package implementation

import (
	"context"

	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/mapper"
	"motherlanka-be/internal/model"
	"motherlanka-be/internal/repository/contract"
	"motherlanka-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewContentRepository(db *gorm.DB) contract.ContentRepository {
	return &ContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ContentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContentRepositoryImpl) ListDestinations(ctx context.Context, specs ...specification.Specification) ([]*entity.Destination, error) {
	var models []*model.Destination
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Destination, len(models))
	for i, m := range models {
		entities[i] = r.mapper.DestinationToEntity(m)
	}
	return entities, nil
}

func (r *ContentRepositoryImpl) ListStays(ctx context.Context, specs ...specification.Specification) ([]*entity.Stay, error) {
	var models []*model.Stay
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Stay, len(models))
	for i, m := range models {
		entities[i] = r.mapper.StayToEntity(m)
	}
	return entities, nil
}

func (r *ContentRepositoryImpl) ListExperiences(ctx context.Context, specs ...specification.Specification) ([]*entity.Experience, error) {
	var models []*model.Experience
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Experience, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ExperienceToEntity(m)
	}
	return entities, nil
}

func (r *ContentRepositoryImpl) ListEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error) {
	var models []*model.Event
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Event, len(models))
	for i, m := range models {
		entities[i] = r.mapper.EventToEntity(m)
	}
	return entities, nil
}

func (r *ContentRepositoryImpl) upsert(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true})
}

// Seed upserts every record in the snapshot by primary key.
func (r *ContentRepositoryImpl) Seed(ctx context.Context, snapshot *entity.ContentSnapshot) error {
	if snapshot == nil {
		return nil
	}

	if len(snapshot.Destinations) > 0 {
		models := make([]*model.Destination, len(snapshot.Destinations))
		for i, d := range snapshot.Destinations {
			models[i] = r.mapper.DestinationToModel(d)
		}
		if err := r.upsert(ctx).Create(models).Error; err != nil {
			return err
		}
	}

	if len(snapshot.Stays) > 0 {
		models := make([]*model.Stay, len(snapshot.Stays))
		for i, s := range snapshot.Stays {
			models[i] = r.mapper.StayToModel(s)
		}
		if err := r.upsert(ctx).Create(models).Error; err != nil {
			return err
		}
	}

	if len(snapshot.Experiences) > 0 {
		models := make([]*model.Experience, len(snapshot.Experiences))
		for i, e := range snapshot.Experiences {
			models[i] = r.mapper.ExperienceToModel(e)
		}
		if err := r.upsert(ctx).Create(models).Error; err != nil {
			return err
		}
	}

	if len(snapshot.Events) > 0 {
		models := make([]*model.Event, len(snapshot.Events))
		for i, e := range snapshot.Events {
			models[i] = r.mapper.EventToModel(e)
		}
		if err := r.upsert(ctx).Create(models).Error; err != nil {
			return err
		}
	}

	return nil
}
