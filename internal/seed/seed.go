// Package seed loads sample Sri Lanka content from YAML fixtures.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/repository/unitofwork"

	"gopkg.in/yaml.v3"
)

//go:embed default_content.yaml
var defaultContent []byte

type document struct {
	Destinations []destination `yaml:"destinations"`
	Stays        []stay        `yaml:"stays"`
	Experiences  []experience  `yaml:"experiences"`
	Events       []event       `yaml:"events"`
}

type destination struct {
	Id          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Region      string   `yaml:"region"`
	Weather     string   `yaml:"weather"`
	Duration    string   `yaml:"duration"`
	BestTime    string   `yaml:"best_time"`
	Description string   `yaml:"description"`
	Images      []string `yaml:"images"`
}

type stay struct {
	Id       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Location string   `yaml:"location"`
	Type     string   `yaml:"type"`
	Price    int      `yaml:"price"`
	Rating   float64  `yaml:"rating"`
	Image    string   `yaml:"image"`
	Images   []string `yaml:"images"`
}

type experience struct {
	Id          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Duration    string   `yaml:"duration"`
	Rating      float64  `yaml:"rating"`
	Short       string   `yaml:"short"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Highlights  []string `yaml:"highlights"`
}

type event struct {
	Id          string `yaml:"id"`
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Location    string `yaml:"location"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// Default returns the embedded sample content.
func Default() (*entity.ContentSnapshot, error) {
	return Parse(defaultContent)
}

// LoadFile reads a fixture from disk. An empty path means the embedded default.
func LoadFile(path string) (*entity.ContentSnapshot, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML fixture. Every record needs an id.
func Parse(raw []byte) (*entity.ContentSnapshot, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing seed yaml: %w", err)
	}

	snapshot := &entity.ContentSnapshot{}
	for i, d := range doc.Destinations {
		if d.Id == "" {
			return nil, fmt.Errorf("destinations[%d]: missing id", i)
		}
		snapshot.Destinations = append(snapshot.Destinations, &entity.Destination{
			Id: d.Id, Name: d.Name, Category: d.Category, Region: d.Region, Weather: d.Weather,
			Duration: d.Duration, BestTime: d.BestTime, Description: d.Description, Images: d.Images,
		})
	}
	for i, s := range doc.Stays {
		if s.Id == "" {
			return nil, fmt.Errorf("stays[%d]: missing id", i)
		}
		snapshot.Stays = append(snapshot.Stays, &entity.Stay{
			Id: s.Id, Name: s.Name, Location: s.Location, Type: s.Type,
			Price: s.Price, Rating: s.Rating, Image: s.Image, Images: s.Images,
		})
	}
	for i, x := range doc.Experiences {
		if x.Id == "" {
			return nil, fmt.Errorf("experiences[%d]: missing id", i)
		}
		snapshot.Experiences = append(snapshot.Experiences, &entity.Experience{
			Id: x.Id, Title: x.Title, Category: x.Category, Duration: x.Duration, Rating: x.Rating,
			Short: x.Short, Description: x.Description, Image: x.Image, Highlights: x.Highlights,
		})
	}
	for i, e := range doc.Events {
		if e.Id == "" {
			return nil, fmt.Errorf("events[%d]: missing id", i)
		}
		snapshot.Events = append(snapshot.Events, &entity.Event{
			Id: e.Id, Title: e.Title, Category: e.Category, Location: e.Location,
			StartDate: e.StartDate, EndDate: e.EndDate, Description: e.Description, Image: e.Image,
		})
	}
	return snapshot, nil
}

// Apply upserts the snapshot. Running it twice leaves the same rows.
func Apply(ctx context.Context, factory unitofwork.RepositoryFactory, snapshot *entity.ContentSnapshot) error {
	return factory.NewUnitOfWork(ctx).ContentRepository().Seed(ctx, snapshot)
}
