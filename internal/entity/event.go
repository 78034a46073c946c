package entity

type EventType string

const (
	EventTypeMovie   EventType = "MOVIE"
	EventTypeConcert EventType = "CONCERT"
	EventTypeSports  EventType = "SPORTS"
	EventTypeTheatre EventType = "THEATRE"
)

// Event mirrors the record owned by the remote event service. The
// storefront never mutates it; availability is enforced remotely.
type Event struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Venue          string    `json:"venue"`
	EventDateTime  APITime   `json:"eventDateTime"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"availableSeats"`
	TotalSeats     int       `json:"totalSeats"`
	Type           EventType `json:"type"`
}
