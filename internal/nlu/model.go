// README: Intent and entity types produced by the classifier.
package nlu

// Intent names understood by the dialogue engine. The classifier only
// ever emits one of these (or IntentUnknown).
const (
	IntentGreet              = "greet"
	IntentGoodbye            = "goodbye"
	IntentNewTrip            = "new_trip"
	IntentContinueTrip       = "continue_trip"
	IntentResetSession       = "reset_session"
	IntentGetWeather         = "get_weather"
	IntentSearchFlights      = "search_flights"
	IntentSearchHotels       = "search_hotels"
	IntentProvideDestination = "provide_destination"
	IntentProvideDates       = "provide_dates"
	IntentProvideDuration    = "provide_duration"
	IntentProvideBudget      = "provide_budget"
	IntentCreatePlan         = "create_plan"
	IntentUnknown            = "unknown"
)

// Entity keys. No key is guaranteed present; consumers must treat every
// lookup as optional.
const (
	EntityDestination       = "destination"
	EntityWeatherLocation   = "weather_location"
	EntityFlightDestination = "flight_destination"
	EntityHotelLocation     = "hotel_location"
	EntityStartDate         = "start_date"
	EntityEndDate           = "end_date"
	EntityDuration          = "duration"
	EntityBudget            = "budget"
)

// Result is the classifier output for one utterance. Duration and
// budget entities carry int values, everything else string.
type Result struct {
	Intent     string
	Confidence float64
	Entities   map[string]any
}
