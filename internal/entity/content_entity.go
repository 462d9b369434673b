package entity

// Content records are owned by the site's CRUD layer. The assistant only reads them.

type Destination struct {
	Id          string
	Name        string
	Category    string
	Region      string
	Weather     string
	Duration    string
	BestTime    string
	Description string
	Images      []string
}

type Stay struct {
	Id       string
	Name     string
	Location string
	Type     string
	Price    int
	Rating   float64
	Image    string
	Images   []string
}

type Experience struct {
	Id          string
	Title       string
	Category    string
	Duration    string
	Rating      float64
	Short       string
	Description string
	Image       string
	Highlights  []string
}

type Event struct {
	Id          string
	Title       string
	Category    string
	Location    string
	StartDate   string
	EndDate     string
	Description string
	Image       string
}

// ContentSnapshot holds the four content collections read in one pass.
type ContentSnapshot struct {
	Destinations []*Destination
	Stays        []*Stay
	Experiences  []*Experience
	Events       []*Event
}

func (s *ContentSnapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Destinations) + len(s.Stays) + len(s.Experiences) + len(s.Events)
}
