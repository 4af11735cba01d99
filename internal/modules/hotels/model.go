// README: Hotel offers and result provenance tags.
package hotels

import "github.com/Seymakarakurt/TravelGuideWithoutKi/internal/types"

type Source string

const (
	SourceLive      Source = "live"
	SourceCache     Source = "cache"
	SourceSimulated Source = "simulated"
)

type Hotel struct {
	Name        string      `json:"name"`
	Price       types.Money `json:"price"` // per night
	Rating      float64     `json:"rating"`
	Address     string      `json:"address"`
	Amenities   []string    `json:"amenities"`
	BookingLink string      `json:"booking_link"`
}

// Result is one search outcome: rating-filtered, price-ascending hotels
// plus provenance.
type Result struct {
	Hotels []Hotel `json:"hotels"`
	Source Source  `json:"source"`
}

type Query struct {
	Location string
	CheckIn  string // YYYY-MM-DD, defaulted to today+7 when empty
	CheckOut string // YYYY-MM-DD, defaulted to today+14 when empty
	Guests   int
	Budget   int // EUR per night, 0 = unbounded
}
