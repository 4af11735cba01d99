// README: Hotel search collaborator; cached simulated offers, rating-filtered, price-ascending.
package hotels

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

// minRating drops poorly reviewed hotels; unrated ones are kept.
const minRating = 3.5

const (
	defaultCheckInDays  = 7
	defaultCheckOutDays = 14
)

var hotelNamePrefixes = []string{"Hotel", "Pension", "Boutique Hotel", "Grand Hotel", "City Hotel"}
var hotelNameSuffixes = []string{"Central", "Royal", "Astoria", "Bellevue", "Garni", "Am Markt", "Krone", "Europa"}
var amenityPool = []string{"WLAN", "Frühstück", "Parkplatz", "Fitness", "Spa", "Bar", "Restaurant", "Klimaanlage"}

type Service struct {
	cache Cache
	rand  *rand.Rand
}

// NewService creates the hotel collaborator; cache must not be nil.
func NewService(cache Cache) *Service {
	return &Service{
		cache: cache,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Search returns hotels for the stay sorted by ascending price, keeping
// only well-rated (>= 3.5) or unrated entries. An empty list is a valid
// result, never an error.
func (s *Service) Search(ctx context.Context, q Query) (Result, error) {
	if q.Guests <= 0 {
		q.Guests = 1
	}
	now := time.Now()
	if q.CheckIn == "" {
		q.CheckIn = now.AddDate(0, 0, defaultCheckInDays).Format("2006-01-02")
	}
	if q.CheckOut == "" {
		q.CheckOut = now.AddDate(0, 0, defaultCheckOutDays).Format("2006-01-02")
	}

	key := cacheKey(q)
	if cached, ok := s.cache.Get(ctx, key); ok {
		log.Printf("hotels: cache hit %s (%d hotels)", q.Location, len(cached))
		return Result{Hotels: filterAndSort(cached, q.Budget), Source: SourceCache}, nil
	}

	generated := s.simulate(q)
	if len(generated) > 0 {
		s.cache.Set(ctx, key, generated)
	}
	log.Printf("hotels: simulated %d hotels in %s", len(generated), q.Location)
	return Result{Hotels: filterAndSort(generated, q.Budget), Source: SourceSimulated}, nil
}

func cacheKey(q Query) string {
	return fmt.Sprintf("%s_%s_%s_%d", strings.ToLower(q.Location), q.CheckIn, q.CheckOut, q.Guests)
}

func filterAndSort(in []Hotel, budget int) []Hotel {
	out := make([]Hotel, 0, len(in))
	for _, h := range in {
		if h.Rating != 0 && h.Rating < minRating {
			continue
		}
		if budget > 0 && h.Price.Amount > int64(budget) {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price.Amount < out[j].Price.Amount })
	return out
}

func (s *Service) simulate(q Query) []Hotel {
	count := 6 + s.rand.Intn(3)
	link := sourceLink(q.Location)
	out := make([]Hotel, 0, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("%s %s",
			hotelNamePrefixes[s.rand.Intn(len(hotelNamePrefixes))],
			hotelNameSuffixes[s.rand.Intn(len(hotelNameSuffixes))])
		rating := 3.0 + s.rand.Float64()*2.0
		out = append(out, Hotel{
			Name:        name,
			Price:       types.EUR(int64(60 + s.rand.Intn(180))),
			Rating:      float64(int(rating*10)) / 10,
			Address:     fmt.Sprintf("%s, Zentrum", q.Location),
			Amenities:   s.pickAmenities(),
			BookingLink: link,
		})
	}
	return out
}

func (s *Service) pickAmenities() []string {
	n := 2 + s.rand.Intn(3)
	picked := make([]string, 0, n)
	for _, idx := range s.rand.Perm(len(amenityPool))[:n] {
		picked = append(picked, amenityPool[idx])
	}
	return picked
}

func sourceLink(location string) string {
	return "https://www.google.com/travel/hotels?q=" + url.QueryEscape(location)
}

// Summary renders the human-readable result text: stay parameters, the
// data-source link, at most five hotels, cheapest first.
func (s *Service) Summary(res Result, q Query) string {
	if len(res.Hotels) == 0 {
		return "Keine gut bewerteten Hotels gefunden."
	}

	var b strings.Builder
	if q.CheckIn != "" && q.CheckOut != "" {
		fmt.Fprintf(&b, "Zeitraum: %s bis %s\nPersonen: %d\n\n",
			formatStayDate(q.CheckIn), formatStayDate(q.CheckOut), q.Guests)
	}
	fmt.Fprintf(&b, "Datenquelle: %s\n\n", sourceLink(q.Location))

	show := len(res.Hotels)
	if show > 5 {
		show = 5
	}
	fmt.Fprintf(&b, "Gefunden: %d gut bewertete Hotels (sortiert nach Preis)\n\n", show)

	for i, h := range res.Hotels[:show] {
		fmt.Fprintf(&b, "%d. %s\n", i+1, h.Name)
		fmt.Fprintf(&b, "   Preis: %d EUR pro Nacht\n", h.Price.Amount)
		if h.Rating > 0 {
			fmt.Fprintf(&b, "   Bewertung: %.1f/5\n", h.Rating)
		}
		if h.Address != "" {
			fmt.Fprintf(&b, "   Adresse: %s\n", h.Address)
		}
		if len(h.Amenities) > 0 {
			max := len(h.Amenities)
			if max > 3 {
				max = 3
			}
			fmt.Fprintf(&b, "   Ausstattung: %s\n", strings.Join(h.Amenities[:max], ", "))
		}
		b.WriteString("\n")
	}

	if res.Source == SourceSimulated {
		b.WriteString("Hinweis: Preise sind Richtwerte (Simulation).\n")
	}
	return b.String()
}

func formatStayDate(iso string) string {
	if t, err := time.Parse("2006-01-02", iso); err == nil {
		return t.Format("02.01.2006")
	}
	return iso
}
