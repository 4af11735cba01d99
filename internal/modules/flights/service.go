// README: Flight search collaborator; cached simulated offers, price-ascending.
package flights

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/types"
)

var airlines = []string{"Lufthansa", "Air France", "British Airways", "KLM", "Ryanair", "easyJet"}

// basePrices holds typical one-way prices (EUR) per known route; routes
// outside the table fall back to defaultBasePrice.
var basePrices = map[string]map[string]int64{
	"berlin":    {"paris": 120, "london": 80, "amsterdam": 90, "rom": 150, "madrid": 180},
	"münchen":   {"paris": 140, "london": 100, "amsterdam": 110, "rom": 160, "madrid": 190},
	"hamburg":   {"paris": 130, "london": 90, "amsterdam": 100, "rom": 170, "madrid": 200},
	"frankfurt": {"paris": 110, "london": 85, "amsterdam": 95, "rom": 140, "madrid": 170},
	"köln":      {"paris": 125, "london": 95, "amsterdam": 85, "rom": 155, "madrid": 185},
}

const (
	defaultBasePrice = 150
	offersPerSearch  = 5
	defaultLeadDays  = 7
)

type Service struct {
	cache Cache
	rand  *rand.Rand
}

// NewService creates the flight collaborator. cache may be a
// RedisCache or a MemoryCache; it must not be nil.
func NewService(cache Cache) *Service {
	return &Service{
		cache: cache,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Search returns offers for the route sorted by ascending price. It
// never fails for "no results": an empty offer list is a valid Result.
// Live scraping is out of scope, so uncached routes are served from the
// simulated generator and tagged accordingly.
func (s *Service) Search(ctx context.Context, q Query) (Result, error) {
	if q.StartDate == "" {
		q.StartDate = time.Now().AddDate(0, 0, defaultLeadDays).Format("2006-01-02")
	}

	key := cacheKey(q)
	if cached, ok := s.cache.Get(ctx, key); ok {
		log.Printf("flights: cache hit %s -> %s (%d offers)", q.Origin, q.Destination, len(cached))
		return Result{Flights: applyBudget(cached, q.Budget), Source: SourceCache}, nil
	}

	offers := s.simulate(q)
	if len(offers) > 0 {
		s.cache.Set(ctx, key, offers)
	}
	log.Printf("flights: simulated %d offers %s -> %s", len(offers), q.Origin, q.Destination)
	return Result{Flights: applyBudget(offers, q.Budget), Source: SourceSimulated}, nil
}

func cacheKey(q Query) string {
	return fmt.Sprintf("%s_%s_%s_%s", strings.ToLower(q.Origin), strings.ToLower(q.Destination), q.StartDate, q.EndDate)
}

func applyBudget(offers []Flight, budget int) []Flight {
	if budget <= 0 {
		return offers
	}
	out := make([]Flight, 0, len(offers))
	for _, f := range offers {
		if f.Price.Amount <= int64(budget) {
			out = append(out, f)
		}
	}
	return out
}

func (s *Service) simulate(q Query) []Flight {
	base := int64(defaultBasePrice)
	if routes, ok := basePrices[strings.ToLower(q.Origin)]; ok {
		if p, ok := routes[strings.ToLower(q.Destination)]; ok {
			base = p
		}
	}

	link := bookingLink(q)
	offers := make([]Flight, 0, offersPerSearch)
	for i := 0; i < offersPerSearch; i++ {
		variation := 0.8 + s.rand.Float64()*0.6
		stops := 0
		if s.rand.Intn(4) == 3 {
			stops = 1
		}
		offers = append(offers, Flight{
			Airline:       airlines[s.rand.Intn(len(airlines))],
			Price:         types.EUR(int64(float64(base) * variation)),
			DepartureTime: fmt.Sprintf("%02d:%s", 6+s.rand.Intn(17), []string{"00", "15", "30", "45"}[s.rand.Intn(4)]),
			DurationHours: 1.0 + s.rand.Float64()*3.0,
			Stops:         stops,
			BookingLink:   link,
		})
	}

	sort.Slice(offers, func(i, j int) bool { return offers[i].Price.Amount < offers[j].Price.Amount })
	return offers
}

func bookingLink(q Query) string {
	return fmt.Sprintf("https://www.google.com/travel/flights?hl=de&tfs=%s_%s_%s",
		url.QueryEscape(q.Origin), url.QueryEscape(q.Destination), q.StartDate)
}

// Summary renders the human-readable result text: at most five offers,
// cheapest first, with the data-source link up front.
func (s *Service) Summary(res Result, q Query) string {
	if len(res.Flights) == 0 {
		return "Keine Flüge gefunden."
	}

	var b strings.Builder
	if q.StartDate != "" {
		if t, err := time.Parse("2006-01-02", q.StartDate); err == nil {
			fmt.Fprintf(&b, "Zeitraum: %s\n\n", t.Format("02.01.2006"))
		} else {
			fmt.Fprintf(&b, "Zeitraum: %s\n\n", q.StartDate)
		}
	}
	fmt.Fprintf(&b, "Datenquelle: %s\n\n", bookingLink(q))

	show := len(res.Flights)
	if show > 5 {
		show = 5
	}
	fmt.Fprintf(&b, "Gefunden: %d Flüge (sortiert nach Preis)\n\n", show)

	for i, f := range res.Flights[:show] {
		stopsText := "Direktflug"
		if f.Stops > 0 {
			stopsText = fmt.Sprintf("%d Stopp(s)", f.Stops)
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, f.Airline)
		fmt.Fprintf(&b, "   Preis: %d EUR\n", f.Price.Amount)
		fmt.Fprintf(&b, "   Abflug: %s\n", f.DepartureTime)
		fmt.Fprintf(&b, "   Dauer: %s\n", formatDuration(f.DurationHours))
		fmt.Fprintf(&b, "   Stopps: %s\n\n", stopsText)
	}

	if res.Source == SourceSimulated {
		b.WriteString("Hinweis: Preise sind Richtwerte (Simulation).\n")
	}
	return b.String()
}

func formatDuration(hours float64) string {
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dmin", h, m)
}
