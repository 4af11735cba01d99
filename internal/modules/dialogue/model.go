// README: Response shapes produced by the dialogue engine.
package dialogue

import (
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/flights"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/hotels"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/weather"
)

// ResponseType tags the shape of a turn response.
type ResponseType string

const (
	TypeGreeting         ResponseType = "greeting"
	TypeGreetingExisting ResponseType = "greeting_existing"
	TypeSessionReset     ResponseType = "session_reset"
	TypeContinueComplete ResponseType = "continue_complete"
	TypeContinuePartial  ResponseType = "continue_partial"

	TypeDestinationConfirmed         ResponseType = "destination_confirmed"
	TypeDestinationConfirmedComplete ResponseType = "destination_confirmed_complete"
	TypeDatesConfirmed               ResponseType = "dates_confirmed"
	TypeDatesConfirmedComplete       ResponseType = "dates_confirmed_complete"
	TypeDurationConfirmed            ResponseType = "duration_confirmed"
	TypeDurationConfirmedComplete    ResponseType = "duration_confirmed_complete"
	TypeBudgetConfirmed              ResponseType = "budget_confirmed"
	TypeBudgetConfirmedComplete      ResponseType = "budget_confirmed_complete"
	TypeBudgetConfirmedWithFlights   ResponseType = "budget_confirmed_with_flights"

	TypeInfoComplete        ResponseType = "info_complete"
	TypeInfoPartial         ResponseType = "info_partial"
	TypeClarificationNeeded ResponseType = "clarification_needed"
	TypeMissingInfo         ResponseType = "missing_info"

	TypeFlightResults ResponseType = "flight_results"
	TypeHotelResults  ResponseType = "hotel_results"
	TypeWeatherInfo   ResponseType = "weather_info"
	TypeTripPlan      ResponseType = "trip_plan"

	TypeGeneral ResponseType = "general"
	TypeGoodbye ResponseType = "goodbye"
	TypeError   ResponseType = "error"
)

// Response is one assistant turn. Suggestions never exceed five entries;
// payload fields are set only by the matching result types.
type Response struct {
	Type        ResponseType    `json:"type"`
	Message     string          `json:"message"`
	Suggestions []string        `json:"suggestions"`
	Flights     *flights.Result `json:"flights,omitempty"`
	Hotels      *hotels.Result  `json:"hotels,omitempty"`
	Weather     *weather.Report `json:"weather,omitempty"`
}
