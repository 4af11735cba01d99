// README: Weather lookups; Google geocoding plus OpenWeatherMap, with a simulated fallback.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

const (
	currentURL  = "https://api.openweathermap.org/data/2.5/weather"
	forecastURL = "https://api.openweathermap.org/data/2.5/forecast"
)

// Geocoder resolves a free-text location to coordinates.
type Geocoder interface {
	Locate(ctx context.Context, location string) (lat, lng float64, err error)
}

// MapsGeocoder resolves locations through the Google Maps Geocoding API.
type MapsGeocoder struct {
	client *maps.Client
}

func NewMapsGeocoder(apiKey string) (*MapsGeocoder, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("weather: maps client: %w", err)
	}
	return &MapsGeocoder{client: c}, nil
}

func (g *MapsGeocoder) Locate(ctx context.Context, location string) (float64, float64, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: location})
	if err != nil {
		return 0, 0, fmt.Errorf("weather: geocode %q: %w", location, err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("weather: geocode %q: no results", location)
	}
	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

// Service fetches weather reports. When the API key is empty or any step
// fails it degrades to a simulated report instead of returning an error.
type Service struct {
	apiKey   string
	geocoder Geocoder
	client   *http.Client
}

func NewService(apiKey string, geocoder Geocoder) *Service {
	return &Service{
		apiKey:   apiKey,
		geocoder: geocoder,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Current returns the weather for a location. It never fails: on any
// upstream problem the report is marked Degraded and filled with
// plausible placeholder values.
func (s *Service) Current(ctx context.Context, location string) (*Report, error) {
	if s.apiKey == "" || s.geocoder == nil {
		return simulated(location), nil
	}

	lat, lng, err := s.geocoder.Locate(ctx, location)
	if err != nil {
		log.Printf("weather: geocoding failed for %q: %v", location, err)
		return simulated(location), nil
	}

	report, err := s.fetchCurrent(ctx, location, lat, lng)
	if err != nil {
		log.Printf("weather: current conditions failed for %q: %v", location, err)
		return simulated(location), nil
	}

	if fc, err := s.fetchForecast(ctx, lat, lng); err != nil {
		log.Printf("weather: forecast failed for %q: %v", location, err)
	} else {
		report.Forecast = fc
	}
	return report, nil
}

type owmCurrent struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility int `json:"visibility"`
}

func (s *Service) fetchCurrent(ctx context.Context, location string, lat, lng float64) (*Report, error) {
	var payload owmCurrent
	if err := s.getJSON(ctx, currentURL, lat, lng, &payload); err != nil {
		return nil, err
	}

	desc := ""
	if len(payload.Weather) > 0 {
		desc = payload.Weather[0].Description
	}
	return &Report{
		Location:     location,
		Temperature:  int(math.Round(payload.Main.Temp)),
		FeelsLike:    int(math.Round(payload.Main.FeelsLike)),
		Humidity:     payload.Main.Humidity,
		Description:  desc,
		WindKmh:      math.Round(payload.Wind.Speed*3.6*10) / 10,
		Pressure:     payload.Main.Pressure,
		VisibilityKm: float64(payload.Visibility) / 1000,
	}, nil
}

type owmForecast struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Pop float64 `json:"pop"`
	} `json:"list"`
}

// fetchForecast aggregates the 3-hourly feed into up to three daily entries.
func (s *Service) fetchForecast(ctx context.Context, lat, lng float64) ([]ForecastDay, error) {
	var payload owmForecast
	if err := s.getJSON(ctx, forecastURL, lat, lng, &payload); err != nil {
		return nil, err
	}

	type agg struct {
		min, max, pop float64
		desc          string
	}
	byDay := map[string]*agg{}
	var order []string
	for _, item := range payload.List {
		day := strings.SplitN(item.DtTxt, " ", 2)[0]
		a, ok := byDay[day]
		if !ok {
			a = &agg{min: item.Main.TempMin, max: item.Main.TempMax}
			if len(item.Weather) > 0 {
				a.desc = item.Weather[0].Description
			}
			byDay[day] = a
			order = append(order, day)
		}
		a.min = math.Min(a.min, item.Main.TempMin)
		a.max = math.Max(a.max, item.Main.TempMax)
		a.pop = math.Max(a.pop, item.Pop)
	}

	if len(order) > 3 {
		order = order[:3]
	}
	out := make([]ForecastDay, 0, len(order))
	for _, day := range order {
		a := byDay[day]
		out = append(out, ForecastDay{
			Date:        formatDay(day),
			TempMin:     int(math.Round(a.min)),
			TempMax:     int(math.Round(a.max)),
			Description: a.desc,
			RainChance:  math.Round(a.pop * 100),
		})
	}
	return out, nil
}

func (s *Service) getJSON(ctx context.Context, base string, lat, lng float64, out any) error {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.4f", lat))
	q.Set("lon", fmt.Sprintf("%.4f", lng))
	q.Set("appid", s.apiKey)
	q.Set("units", "metric")
	q.Set("lang", "de")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather: upstream status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func simulated(location string) *Report {
	return &Report{
		Location:     location,
		Temperature:  20,
		FeelsLike:    20,
		Humidity:     60,
		Description:  "Leicht bewölkt",
		WindKmh:      12,
		Pressure:     1013,
		VisibilityKm: 10,
		Degraded:     true,
		Note:         "Hinweis: Wetterdaten sind derzeit nicht live verfügbar (Simulation).",
	}
}

func formatDay(iso string) string {
	if t, err := time.Parse("2006-01-02", iso); err == nil {
		return t.Format("02.01.")
	}
	return iso
}

// Summary renders the German weather text: current conditions plus the
// short outlook when available.
func Summary(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Wetter in %s:\n\n", r.Location)
	fmt.Fprintf(&b, "Aktuell: %d°C (gefühlt %d°C), %s\n", r.Temperature, r.FeelsLike, r.Description)
	fmt.Fprintf(&b, "Luftfeuchtigkeit: %d%%\n", r.Humidity)
	fmt.Fprintf(&b, "Wind: %.0f km/h\n", r.WindKmh)
	if r.VisibilityKm > 0 {
		fmt.Fprintf(&b, "Sichtweite: %.0f km\n", r.VisibilityKm)
	}

	if len(r.Forecast) > 0 {
		b.WriteString("\nAussichten:\n")
		for _, day := range r.Forecast {
			fmt.Fprintf(&b, "%s %d°C bis %d°C, %s", day.Date, day.TempMin, day.TempMax, day.Description)
			if day.RainChance > 0 {
				fmt.Fprintf(&b, " (Regenrisiko %.0f%%)", day.RainChance)
			}
			b.WriteString("\n")
		}
	}

	if r.Note != "" {
		b.WriteString("\n" + r.Note + "\n")
	}
	return b.String()
}
