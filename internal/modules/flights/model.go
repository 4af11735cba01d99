// README: Flight offers and result provenance tags.
package flights

import "github.com/Seymakarakurt/TravelGuideWithoutKi/internal/types"

// Source tags where a result set came from. Simulated data must stay
// distinguishable from live lookups (degraded mode).
type Source string

const (
	SourceLive      Source = "live"
	SourceCache     Source = "cache"
	SourceSimulated Source = "simulated"
)

type Flight struct {
	Airline       string      `json:"airline"`
	Price         types.Money `json:"price"`
	DepartureTime string      `json:"departure_time"`
	DurationHours float64     `json:"duration_hours"`
	Stops         int         `json:"stops"`
	BookingLink   string      `json:"booking_link"`
}

// Result is one search outcome: price-ascending offers plus provenance.
type Result struct {
	Flights []Flight `json:"flights"`
	Source  Source   `json:"source"`
}

type Query struct {
	Origin      string
	Destination string
	StartDate   string // YYYY-MM-DD, defaulted by the service when empty
	EndDate     string
	Budget      int // EUR, 0 = unbounded
}
