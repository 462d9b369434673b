package service

import (
	"context"

	"motherlanka-be/internal/dto"
	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/repository/specification"
	"motherlanka-be/internal/repository/unitofwork"
)

// IContentService serves the public, read-only content listings.
type IContentService interface {
	ListDestinations(ctx context.Context) ([]*dto.DestinationResponse, error)
	ListStays(ctx context.Context) ([]*dto.StayResponse, error)
	ListExperiences(ctx context.Context) ([]*dto.ExperienceResponse, error)
	ListEvents(ctx context.Context) ([]*dto.EventResponse, error)
}

type contentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewContentService(uowFactory unitofwork.RepositoryFactory) IContentService {
	return &contentService{uowFactory: uowFactory}
}

func (s *contentService) ListDestinations(ctx context.Context) ([]*dto.DestinationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.ContentRepository().ListDestinations(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.DestinationResponse, len(rows))
	for i, d := range rows {
		res[i] = &dto.DestinationResponse{
			Id:          d.Id,
			Name:        d.Name,
			Category:    d.Category,
			Region:      d.Region,
			Weather:     d.Weather,
			Duration:    d.Duration,
			BestTime:    d.BestTime,
			Description: d.Description,
			Images:      nonNil(d.Images),
			Image:       firstImage(d.Images, ""),
		}
	}
	return res, nil
}

func (s *contentService) ListStays(ctx context.Context) ([]*dto.StayResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.ContentRepository().ListStays(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.StayResponse, len(rows))
	for i, st := range rows {
		images := stayImages(st)
		res[i] = &dto.StayResponse{
			Id:       st.Id,
			Name:     st.Name,
			Location: st.Location,
			Type:     st.Type,
			Price:    st.Price,
			Rating:   st.Rating,
			Images:   images,
			Image:    firstImage(images, st.Image),
		}
	}
	return res, nil
}

func (s *contentService) ListExperiences(ctx context.Context) ([]*dto.ExperienceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.ContentRepository().ListExperiences(ctx, specification.OrderBy{Field: "title"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ExperienceResponse, len(rows))
	for i, e := range rows {
		res[i] = &dto.ExperienceResponse{
			Id:          e.Id,
			Title:       e.Title,
			Category:    e.Category,
			Duration:    e.Duration,
			Rating:      e.Rating,
			Short:       e.Short,
			Description: e.Description,
			Image:       e.Image,
			Highlights:  nonNil(e.Highlights),
		}
	}
	return res, nil
}

func (s *contentService) ListEvents(ctx context.Context) ([]*dto.EventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.ContentRepository().ListEvents(ctx, specification.OrderBy{Field: "start_date"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.EventResponse, len(rows))
	for i, e := range rows {
		res[i] = &dto.EventResponse{
			Id:          e.Id,
			Title:       e.Title,
			Category:    e.Category,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
			Image:       e.Image,
		}
	}
	return res, nil
}

// Stays predate the images column; a lone image still counts as a gallery.
func stayImages(st *entity.Stay) []string {
	if len(st.Images) > 0 {
		return st.Images
	}
	if st.Image != "" {
		return []string{st.Image}
	}
	return []string{}
}

func firstImage(images []string, fallback string) *string {
	if len(images) > 0 {
		return &images[0]
	}
	if fallback != "" {
		return &fallback
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
