// README: Weather domain types; current conditions plus an optional short forecast.
package weather

// ForecastDay is one aggregated day of the outlook.
type ForecastDay struct {
	Date        string  `json:"date"`
	TempMin     int     `json:"temp_min"`
	TempMax     int     `json:"temp_max"`
	Description string  `json:"description"`
	RainChance  float64 `json:"rain_chance"`
}

// Report carries current conditions for a location. Degraded reports are
// simulated placeholders produced when the live provider is unreachable.
type Report struct {
	Location     string        `json:"location"`
	Temperature  int           `json:"temperature"`
	FeelsLike    int           `json:"feels_like"`
	Humidity     int           `json:"humidity"`
	Description  string        `json:"description"`
	WindKmh      float64       `json:"wind_kmh"`
	Pressure     int           `json:"pressure"`
	VisibilityKm float64       `json:"visibility_km"`
	Forecast     []ForecastDay `json:"forecast,omitempty"`
	Degraded     bool          `json:"degraded"`
	Note         string        `json:"note,omitempty"`
}
