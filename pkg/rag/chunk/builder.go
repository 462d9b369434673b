package chunk

import (
	"strconv"
	"strings"

	"motherlanka-be/internal/entity"
)

// BuildAll turns a content snapshot into index chunks in a fixed order:
// destinations, stays, experiences, events. A (type, refId) pair seen twice
// keeps its first occurrence. Position is the chunk's index in the result.
func BuildAll(snapshot *entity.ContentSnapshot) []*entity.RagChunk {
	if snapshot == nil {
		return []*entity.RagChunk{}
	}

	chunks := make([]*entity.RagChunk, 0, snapshot.Len())
	seen := make(map[string]struct{}, snapshot.Len())

	add := func(c *entity.RagChunk) {
		if _, dup := seen[c.Key()]; dup {
			return
		}
		seen[c.Key()] = struct{}{}
		c.Position = len(chunks)
		chunks = append(chunks, c)
	}

	for _, d := range snapshot.Destinations {
		add(FromDestination(d))
	}
	for _, s := range snapshot.Stays {
		add(FromStay(s))
	}
	for _, e := range snapshot.Experiences {
		add(FromExperience(e))
	}
	for _, ev := range snapshot.Events {
		add(FromEvent(ev))
	}

	return chunks
}

func FromDestination(d *entity.Destination) *entity.RagChunk {
	var b lines
	b.label("Destination", d.Name)
	b.label("Category", d.Category)
	b.label("Region", d.Region)
	b.label("Weather", d.Weather)
	b.label("Duration", d.Duration)
	b.label("Best time", d.BestTime)
	b.bare(d.Description)

	return newChunk(entity.ChunkTypeDestination, d.Id, d.Name, b)
}

func FromStay(s *entity.Stay) *entity.RagChunk {
	var b lines
	b.label("Stay", s.Name)
	b.label("Location", s.Location)
	b.label("Type", s.Type)
	b.label("Price", "Rs."+strconv.Itoa(s.Price)+"/night")
	b.label("Rating", formatRating(s.Rating))

	return newChunk(entity.ChunkTypeStay, s.Id, s.Name, b)
}

func FromExperience(e *entity.Experience) *entity.RagChunk {
	var b lines
	b.label("Experience", e.Title)
	b.label("Category", e.Category)
	b.label("Duration", e.Duration)
	b.label("Rating", formatRating(e.Rating))
	b.bare(e.Short)
	b.bare(e.Description)

	return newChunk(entity.ChunkTypeExperience, e.Id, e.Title, b)
}

func FromEvent(ev *entity.Event) *entity.RagChunk {
	dates := strings.TrimSpace(ev.StartDate)
	if end := strings.TrimSpace(ev.EndDate); end != "" {
		dates += " to " + end
	}

	var b lines
	b.label("Event", ev.Title)
	b.label("Category", ev.Category)
	b.label("Location", ev.Location)
	b.label("Dates", dates)
	b.bare(ev.Description)

	return newChunk(entity.ChunkTypeEvent, ev.Id, ev.Title, b)
}

func newChunk(t entity.ChunkType, refId, title string, b lines) *entity.RagChunk {
	title = strings.TrimSpace(title)
	if title == "" {
		title = refId
	}
	return &entity.RagChunk{
		Type:      t,
		RefId:     refId,
		Title:     title,
		Content:   b.String(),
		Embedding: []float32{},
	}
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// lines collects chunk lines, skipping blank values.
type lines []string

func (l *lines) label(name, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	*l = append(*l, name+": "+value)
}

func (l *lines) bare(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	*l = append(*l, value)
}

func (l lines) String() string {
	return strings.Join(l, "\n")
}
