package dto

type DestinationResponse struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Region      string   `json:"region,omitempty"`
	Weather     string   `json:"weather,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	BestTime    string   `json:"bestTime,omitempty"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images"`
	Image       *string  `json:"image"`
}

type StayResponse struct {
	Id       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Type     string   `json:"type"`
	Price    int      `json:"price"`
	Rating   float64  `json:"rating"`
	Images   []string `json:"images"`
	Image    *string  `json:"image"`
}

type ExperienceResponse struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration,omitempty"`
	Rating      float64  `json:"rating"`
	Short       string   `json:"short,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Highlights  []string `json:"highlights"`
}

type EventResponse struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
