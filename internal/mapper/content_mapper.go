package mapper

import (
	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/model"

	"gorm.io/datatypes"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) DestinationToEntity(d *model.Destination) *entity.Destination {
	if d == nil {
		return nil
	}
	return &entity.Destination{
		Id:          d.Id,
		Name:        d.Name,
		Category:    d.Category,
		Region:      deref(d.Region),
		Weather:     deref(d.Weather),
		Duration:    deref(d.Duration),
		BestTime:    deref(d.BestTime),
		Description: deref(d.Description),
		Images:      []string(d.Images),
	}
}

func (m *ContentMapper) DestinationToModel(d *entity.Destination) *model.Destination {
	if d == nil {
		return nil
	}
	return &model.Destination{
		Id:          d.Id,
		Name:        d.Name,
		Category:    d.Category,
		Region:      optional(d.Region),
		Weather:     optional(d.Weather),
		Duration:    optional(d.Duration),
		BestTime:    optional(d.BestTime),
		Description: optional(d.Description),
		Images:      jsonStrings(d.Images),
	}
}

func (m *ContentMapper) StayToEntity(s *model.Stay) *entity.Stay {
	if s == nil {
		return nil
	}
	return &entity.Stay{
		Id:       s.Id,
		Name:     s.Name,
		Location: s.Location,
		Type:     s.Type,
		Price:    s.Price,
		Rating:   s.Rating,
		Image:    s.Image,
		Images:   []string(s.Images),
	}
}

func (m *ContentMapper) StayToModel(s *entity.Stay) *model.Stay {
	if s == nil {
		return nil
	}
	return &model.Stay{
		Id:       s.Id,
		Name:     s.Name,
		Location: s.Location,
		Type:     s.Type,
		Price:    s.Price,
		Rating:   s.Rating,
		Image:    s.Image,
		Images:   jsonStrings(s.Images),
	}
}

func (m *ContentMapper) ExperienceToEntity(e *model.Experience) *entity.Experience {
	if e == nil {
		return nil
	}
	return &entity.Experience{
		Id:          e.Id,
		Title:       e.Title,
		Category:    e.Category,
		Duration:    deref(e.Duration),
		Rating:      e.Rating,
		Short:       deref(e.Short),
		Description: deref(e.Description),
		Image:       deref(e.Image),
		Highlights:  []string(e.Highlights),
	}
}

func (m *ContentMapper) ExperienceToModel(e *entity.Experience) *model.Experience {
	if e == nil {
		return nil
	}
	return &model.Experience{
		Id:          e.Id,
		Title:       e.Title,
		Category:    e.Category,
		Duration:    optional(e.Duration),
		Rating:      e.Rating,
		Short:       optional(e.Short),
		Description: optional(e.Description),
		Image:       optional(e.Image),
		Highlights:  jsonStrings(e.Highlights),
	}
}

func (m *ContentMapper) EventToEntity(e *model.Event) *entity.Event {
	if e == nil {
		return nil
	}
	return &entity.Event{
		Id:          e.Id,
		Title:       e.Title,
		Category:    e.Category,
		Location:    e.Location,
		StartDate:   e.StartDate,
		EndDate:     deref(e.EndDate),
		Description: deref(e.Description),
		Image:       deref(e.Image),
	}
}

func (m *ContentMapper) EventToModel(e *entity.Event) *model.Event {
	if e == nil {
		return nil
	}
	return &model.Event{
		Id:          e.Id,
		Title:       e.Title,
		Category:    e.Category,
		Location:    e.Location,
		StartDate:   e.StartDate,
		EndDate:     optional(e.EndDate),
		Description: optional(e.Description),
		Image:       optional(e.Image),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// JSON columns are NOT NULL, so a nil slice is stored as "[]".
func jsonStrings(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.NewJSONSlice(values)
}
