// README: Per-intent turn handlers; each returns a complete response for one turn.
package dialogue

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/nlu"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/flights"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/hotels"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/profile"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/session"
)

type slot string

const (
	slotDestination slot = "destination"
	slotDates       slot = "dates"
	slotDuration    slot = "duration"
	slotBudget      slot = "budget"
)

func (e *Engine) handleGreeting(sess *session.Session) Response {
	prefs := sess.Preferences
	if prefs.HasDestination() && prefs.StartDate != "" {
		return Response{
			Type: TypeGreetingExisting,
			Message: "Willkommen zurück! Ich sehe, dass Sie bereits eine Reise nach " + prefs.Destination +
				" geplant haben. Möchten Sie diese fortsetzen oder eine neue Reise planen?",
			Suggestions: []string{
				"Aktuelle Reise fortsetzen",
				"Neue Reise planen",
				"Flüge suchen",
				"Hotels suchen",
			},
		}
	}

	sess.State = session.StateCollectingPreferences
	return Response{
		Type:        TypeGreeting,
		Message:     "Hallo! Ich bin Ihr intelligenter TravelGuide. Ich helfe Ihnen gerne bei der Planung Ihrer nächsten Reise!",
		Suggestions: greetingSuggestions(sess.Profile.TravelStyle),
	}
}

func (e *Engine) handleContinueTrip(sess *session.Session) Response {
	progress := session.Evaluate(sess)

	if progress.Complete {
		return Response{
			Type:        TypeContinueComplete,
			Message:     "Perfekt! Ihre Reiseplanung ist vollständig. Was möchten Sie als nächstes tun?",
			Suggestions: searchActionSuggestions(),
		}
	}

	const lead = "Lassen Sie uns Ihre Reiseplanung vervollständigen!"
	switch {
	case !progress.Destination:
		return Response{
			Type:        TypeContinuePartial,
			Message:     lead,
			Suggestions: []string{"Wo möchten Sie hinreisen?", "Alles zurücksetzen"},
		}
	case !progress.Dates:
		examples := dateExamples()
		return Response{
			Type:        TypeContinuePartial,
			Message:     fmt.Sprintf("%s\nWann möchten Sie reisen? (z.B. %s)", lead, examples[0]),
			Suggestions: examples,
		}
	default:
		return Response{
			Type:        TypeContinuePartial,
			Message:     lead + "\nWas ist Ihr Budget? (z.B. 500€)",
			Suggestions: budgetSuggestions(),
		}
	}
}

func (e *Engine) handleGoodbye() Response {
	return Response{
		Type:        TypeGoodbye,
		Message:     "Vielen Dank für die Nutzung des TravelGuide! Ich wünsche Ihnen eine wundervolle Reise! ✈️🌍",
		Suggestions: []string{"Neue Reise planen"},
	}
}

func (e *Engine) handleDestination(ctx context.Context, sess *session.Session, raw string) Response {
	destination := nlu.NormalizeDestination(raw)
	if destination == "" {
		return Response{
			Type:        TypeClarificationNeeded,
			Message:     "Bitte geben Sie Ihr Reiseziel an.",
			Suggestions: []string{"Paris", "Rom", "London", "Berlin", "München"},
		}
	}

	sess.Preferences.Destination = destination
	progress := session.Evaluate(sess)

	if progress.Complete {
		// With the destination-only goal the trip is complete right here,
		// so the hotel search starts without a further prompt.
		if sess.Goal == session.GoalDestinationOnly {
			if resp, ok := e.eagerHotelSearch(ctx, sess, destination); ok {
				return resp
			}
		}
		return Response{
			Type:        TypeDestinationConfirmedComplete,
			Message:     fmt.Sprintf("Perfekt! %s ist ein tolles Reiseziel! 🌍 Alle Informationen sind vollständig!", destination),
			Suggestions: searchActionSuggestions(),
		}
	}

	examples := dateExamples()
	return Response{
		Type:    TypeDestinationConfirmed,
		Message: fmt.Sprintf("Perfekt! %s ist ein tolles Reiseziel! 🌍", destination),
		Suggestions: append(
			[]string{fmt.Sprintf("Wann möchten Sie reisen? (z.B. %s)", examples[0])},
			examples...,
		),
	}
}

func (e *Engine) handleDates(sess *session.Session, entities map[string]any) Response {
	start := entString(entities, nlu.EntityStartDate)
	end := entString(entities, nlu.EntityEndDate)

	// The pair fills atomically; a lone date never changes the slot.
	if start == "" || end == "" {
		return Response{
			Type:    TypeClarificationNeeded,
			Message: "Bitte geben Sie Ihren Reisezeitraum an (Format: DD.MM.YYYY bis DD.MM.YYYY):",
			Suggestions: []string{
				"15.07.2024 bis 22.07.2024",
				"01.08.2024 bis 08.08.2024",
				"23.12.2024 bis 30.12.2024",
			},
		}
	}

	sess.Preferences.StartDate = start
	sess.Preferences.EndDate = end
	progress := session.Evaluate(sess)

	if progress.Complete {
		return Response{
			Type:        TypeDatesConfirmedComplete,
			Message:     fmt.Sprintf("Verstanden! Reisezeitraum: %s bis %s 📅 Alle Informationen sind vollständig!", start, end),
			Suggestions: searchActionSuggestions(),
		}
	}
	return Response{
		Type:        TypeDatesConfirmed,
		Message:     fmt.Sprintf("Verstanden! Reisezeitraum: %s bis %s \nWas ist Ihr Budget? (z.B. 500€)", start, end),
		Suggestions: budgetSuggestions(),
	}
}

func (e *Engine) handleDuration(sess *session.Session, entities map[string]any) Response {
	duration := entInt(entities, nlu.EntityDuration)
	if duration <= 0 {
		return Response{
			Type:        TypeClarificationNeeded,
			Message:     "Bitte geben Sie Ihre Reisedauer an:",
			Suggestions: []string{"5 Tage", "1 Woche", "10 Tage"},
		}
	}

	sess.Preferences.Duration = duration
	progress := session.Evaluate(sess)

	if progress.Complete {
		return Response{
			Type:        TypeDurationConfirmedComplete,
			Message:     fmt.Sprintf("Verstanden! Reisedauer: %d Tage Alle Informationen sind vollständig!", duration),
			Suggestions: searchActionSuggestions(),
		}
	}
	return Response{
		Type:        TypeDurationConfirmed,
		Message:     fmt.Sprintf("Verstanden! Reisedauer: %d Tage", duration),
		Suggestions: nextQuestions(progress),
	}
}

func (e *Engine) handleBudget(ctx context.Context, sess *session.Session, entities map[string]any) Response {
	budget := entInt(entities, nlu.EntityBudget)
	if budget <= 0 {
		return Response{
			Type:        TypeClarificationNeeded,
			Message:     "Bitte geben Sie Ihr Budget an:",
			Suggestions: budgetSuggestions(),
		}
	}

	sess.Preferences.Budget = budget
	progress := session.Evaluate(sess)

	if !progress.Complete {
		return Response{
			Type:        TypeBudgetConfirmed,
			Message:     fmt.Sprintf("Verstanden! Budget: %d€", budget),
			Suggestions: nextQuestions(progress),
		}
	}

	// The budget is the last required input, so its arrival triggers the
	// flight search proactively. On failure we fall back to the plain
	// acknowledgment instead of surfacing the error.
	if resp, ok := e.eagerFlightSearch(ctx, sess, budget); ok {
		return resp
	}
	return Response{
		Type:        TypeBudgetConfirmedComplete,
		Message:     fmt.Sprintf("Verstanden! Budget: %d€ Alle Informationen sind vollständig!", budget),
		Suggestions: searchActionSuggestions(),
	}
}

func (e *Engine) eagerHotelSearch(ctx context.Context, sess *session.Session, destination string) (Response, bool) {
	if e.cfg.Hotels == nil {
		return Response{}, false
	}

	callCtx, cancel := e.searchCtx(ctx)
	defer cancel()

	prefs := sess.Preferences
	q := hotels.Query{
		Location: destination,
		CheckIn:  prefs.StartDate,
		CheckOut: prefs.EndDate,
		Guests:   prefs.Travelers,
		Budget:   prefs.Budget,
	}
	res, err := e.cfg.Hotels.Search(callCtx, q)
	if err != nil {
		log.Printf("dialogue: automatic hotel search failed for user=%s: %v", sess.UserID, err)
		return Response{}, false
	}

	sess.SearchResults.Hotels = &res
	sess.State = session.StatePresentingResults
	sess.Profile.PushSearch(destination)

	return Response{
		Type: TypeHotelResults,
		Message: fmt.Sprintf("Perfekt! %s ist ein tolles Reiseziel! 🌍 Hier sind passende Hotels:\n\n%s",
			destination, e.cfg.Hotels.Summary(res, q)),
		Hotels:      &res,
		Suggestions: []string{"Flüge suchen", "Wetter abfragen", "Alles zurücksetzen"},
	}, true
}

func (e *Engine) eagerFlightSearch(ctx context.Context, sess *session.Session, budget int) (Response, bool) {
	if e.cfg.Flights == nil {
		return Response{}, false
	}

	callCtx, cancel := e.searchCtx(ctx)
	defer cancel()

	q := e.flightQuery(sess)
	res, err := e.cfg.Flights.Search(callCtx, q)
	if err != nil {
		log.Printf("dialogue: automatic flight search failed for user=%s: %v", sess.UserID, err)
		return Response{}, false
	}

	sess.SearchResults.Flights = &res
	sess.State = session.StatePresentingResults
	sess.Profile.PushSearch(sess.Preferences.Destination)

	return Response{
		Type: TypeBudgetConfirmedWithFlights,
		Message: fmt.Sprintf("Verstanden! Budget: %d€ Alle Informationen sind vollständig! Hier sind Ihre Flugoptionen:\n\n%s",
			budget, e.cfg.Flights.Summary(res, q)),
		Flights: &res,
		Suggestions: []string{
			"Hotels suchen",
			"Wetter abfragen",
			"Alles zurücksetzen",
			"Weitere Flüge suchen",
		},
	}, true
}

func (e *Engine) flightQuery(sess *session.Session) flights.Query {
	prefs := sess.Preferences
	origin := prefs.Origin
	if origin == "" {
		origin = e.cfg.DefaultOrigin
	}
	return flights.Query{
		Origin:      origin,
		Destination: prefs.Destination,
		StartDate:   prefs.StartDate,
		EndDate:     prefs.EndDate,
		Budget:      prefs.Budget,
	}
}

func (e *Engine) handleFlightSearch(ctx context.Context, sess *session.Session, entities map[string]any) Response {
	if override := nlu.NormalizeDestination(entString(entities, nlu.EntityFlightDestination)); override != "" {
		sess.Preferences.Destination = override
	}
	if !sess.Preferences.HasDestination() {
		return missingDestinationResponse()
	}
	if e.cfg.Flights == nil {
		return Response{
			Type:        TypeError,
			Message:     "Entschuldigung, die Flugsuche ist derzeit nicht verfügbar.",
			Suggestions: []string{"Versuchen Sie es später erneut"},
		}
	}

	callCtx, cancel := e.searchCtx(ctx)
	defer cancel()

	q := e.flightQuery(sess)
	res, err := e.cfg.Flights.Search(callCtx, q)
	if err != nil {
		log.Printf("dialogue: flight search failed for user=%s: %v", sess.UserID, err)
		return Response{
			Type:        TypeError,
			Message:     "Entschuldigung, bei der Flugsuche ist ein Fehler aufgetreten.",
			Suggestions: []string{"Versuchen Sie es später erneut"},
		}
	}

	sess.SearchResults.Flights = &res
	sess.State = session.StatePresentingResults
	sess.Profile.PushSearch(sess.Preferences.Destination)

	return Response{
		Type:        TypeFlightResults,
		Message:     e.cfg.Flights.Summary(res, q),
		Flights:     &res,
		Suggestions: []string{"Hotels suchen", "Alles zurücksetzen", "Wetter abfragen"},
	}
}

func (e *Engine) handleHotelSearch(ctx context.Context, sess *session.Session, entities map[string]any) Response {
	if override := nlu.NormalizeDestination(entString(entities, nlu.EntityHotelLocation)); override != "" {
		sess.Preferences.Destination = override
	}
	if !sess.Preferences.HasDestination() {
		return missingDestinationResponse()
	}
	if e.cfg.Hotels == nil {
		return Response{
			Type:        TypeError,
			Message:     "Entschuldigung, die Hotelsuche ist derzeit nicht verfügbar.",
			Suggestions: []string{"Versuchen Sie es später erneut"},
		}
	}

	callCtx, cancel := e.searchCtx(ctx)
	defer cancel()

	prefs := sess.Preferences
	q := hotels.Query{
		Location: prefs.Destination,
		CheckIn:  prefs.StartDate,
		CheckOut: prefs.EndDate,
		Guests:   prefs.Travelers,
		Budget:   prefs.Budget,
	}
	res, err := e.cfg.Hotels.Search(callCtx, q)
	if err != nil {
		log.Printf("dialogue: hotel search failed for user=%s: %v", sess.UserID, err)
		return Response{
			Type:        TypeError,
			Message:     "Entschuldigung, bei der Hotelsuche ist ein Fehler aufgetreten.",
			Suggestions: []string{"Versuchen Sie es später erneut"},
		}
	}

	sess.SearchResults.Hotels = &res
	sess.State = session.StatePresentingResults
	sess.Profile.PushSearch(sess.Preferences.Destination)

	return Response{
		Type:        TypeHotelResults,
		Message:     e.cfg.Hotels.Summary(res, q),
		Hotels:      &res,
		Suggestions: []string{"Flüge suchen", "Alles zurücksetzen", "Wetter abfragen"},
	}
}

func (e *Engine) handleWeather(ctx context.Context, sess *session.Session, entities map[string]any) Response {
	location := entString(entities, nlu.EntityWeatherLocation)
	if location == "" {
		location = sess.Preferences.Destination
	}
	if location == "" {
		return Response{
			Type:        TypeMissingInfo,
			Message:     "Bitte geben Sie einen Ort an, für den Sie das Wetter wissen möchten.",
			Suggestions: []string{"Wie ist das Wetter in Berlin?", "Wetter in München", "Temperatur in Hamburg"},
		}
	}
	if e.cfg.Weather == nil {
		return Response{
			Type:        TypeError,
			Message:     "Entschuldigung, die Wetterabfrage ist derzeit nicht verfügbar.",
			Suggestions: []string{"Versuchen Sie es später erneut"},
		}
	}

	callCtx, cancel := e.searchCtx(ctx)
	defer cancel()

	report, err := e.cfg.Weather.Current(callCtx, location)
	if err != nil {
		log.Printf("dialogue: weather lookup failed for user=%s: %v", sess.UserID, err)
		return Response{
			Type:        TypeError,
			Message:     "Entschuldigung, bei der Wetterabfrage ist ein Fehler aufgetreten.",
			Suggestions: []string{"Versuchen Sie es später erneut"},
		}
	}

	sess.SearchResults.Weather = report
	sess.State = session.StatePresentingResults

	message := weatherSummary(report)
	if start := sess.Preferences.StartDate; start != "" {
		message += fmt.Sprintf("\n\nWettervorhersage für Ihr Reisedatum: %s", start)
	}

	return Response{
		Type:        TypeWeatherInfo,
		Message:     message,
		Weather:     report,
		Suggestions: []string{"Flüge suchen", "Hotels suchen", "Alles zurücksetzen"},
	}
}

func (e *Engine) handlePlanCreation(sess *session.Session) Response {
	prefs := sess.Preferences
	if !prefs.HasDestination() {
		return missingDestinationResponse()
	}

	sess.State = session.StateFinalizingPlan

	return Response{
		Type:        TypeTripPlan,
		Message:     composePlan(sess),
		Suggestions: []string{"Flüge suchen", "Hotels suchen", "Alles zurücksetzen"},
	}
}

func (e *Engine) handleAlreadyKnown(sess *session.Session, s slot, value string) Response {
	progress := session.Evaluate(sess)

	var known string
	switch s {
	case slotDestination:
		known = fmt.Sprintf("Ihr Reiseziel ist bereits %s.", value)
	case slotDates:
		known = fmt.Sprintf("Ihre Reisedaten sind bereits %s.", value)
	case slotDuration:
		known = fmt.Sprintf("Ihre Reisedauer ist bereits %s Tage.", value)
	case slotBudget:
		known = fmt.Sprintf("Ihr Budget ist bereits %s€.", value)
	}

	if progress.Complete {
		return Response{
			Type:        TypeInfoComplete,
			Message:     known + " Alle Informationen sind vollständig! Was möchten Sie als nächstes tun?",
			Suggestions: searchActionSuggestions(),
		}
	}

	// The prompt always targets the next unmet slot in canonical order.
	switch {
	case !progress.Destination:
		return Response{
			Type:        TypeInfoPartial,
			Message:     known + " Noch benötigt: Reiseziel",
			Suggestions: []string{"Wo möchten Sie hinreisen?", "Alles zurücksetzen"},
		}
	case !progress.Dates:
		examples := dateExamples()
		return Response{
			Type:        TypeInfoPartial,
			Message:     fmt.Sprintf("%s Noch benötigt: Reisedaten\nWann möchten Sie reisen? (z.B. %s)", known, examples[0]),
			Suggestions: examples,
		}
	default:
		return Response{
			Type:        TypeInfoPartial,
			Message:     known + " Noch benötigt: Budget\nWas ist Ihr Budget? (z.B. 500€ für 7 Tage)",
			Suggestions: budgetSuggestions(),
		}
	}
}

func (e *Engine) handleGeneralQuestion(ctx context.Context, sess *session.Session, message string) Response {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "wetter"):
		return Response{
			Type:        TypeMissingInfo,
			Message:     `Für Wetterinformationen können Sie fragen: "Wie ist das Wetter in [Ort]?"`,
			Suggestions: []string{"Wie ist das Wetter in Berlin?", "Wetter in München", "Temperatur in Hamburg"},
		}
	case strings.Contains(lower, "flug") || strings.Contains(lower, "fliegen"):
		return Response{
			Type:        TypeMissingInfo,
			Message:     `Für Flugsuche können Sie fragen: "Flüge nach [Ort] suchen"`,
			Suggestions: []string{"Flüge nach Paris suchen", "Flüge nach Rom suchen", "Flüge nach London suchen"},
		}
	case strings.Contains(lower, "hotel") || strings.Contains(lower, "unterkunft"):
		return Response{
			Type:        TypeMissingInfo,
			Message:     `Für Hotelsuche können Sie fragen: "Hotels in [Ort] finden"`,
			Suggestions: []string{"Hotels in Berlin finden", "Hotels in München finden", "Hotels in Hamburg finden"},
		}
	case strings.Contains(lower, "budget") || strings.Contains(lower, "preis"):
		return Response{
			Type:        TypeMissingInfo,
			Message:     `Bitte geben Sie Ihr Budget an, z.B.: "100 Euro" oder "500€"`,
			Suggestions: []string{"100 Euro", "500 Euro", "1000 Euro"},
		}
	}

	if answer, ok := e.aiAnswer(ctx, sess, message); ok {
		return Response{
			Type:        TypeGeneral,
			Message:     answer,
			Suggestions: generalSuggestions(sess.Profile.TravelStyle),
		}
	}

	return Response{
		Type:        TypeGeneral,
		Message:     "Ich helfe Ihnen gerne bei der Reiseplanung! Hier sind einige Möglichkeiten:",
		Suggestions: generalSuggestions(sess.Profile.TravelStyle),
	}
}

func (e *Engine) aiAnswer(ctx context.Context, sess *session.Session, message string) (string, bool) {
	if e.cfg.AI == nil {
		return "", false
	}

	callCtx, cancel := e.searchCtx(ctx)
	defer cancel()

	answer, err := e.cfg.AI.Answer(callCtx, message, map[string]string{
		"travel_style": sess.Profile.TravelStyle,
		"budget_range": sess.Profile.BudgetRange,
		"group_type":   sess.Profile.GroupType,
	})
	if err != nil {
		log.Printf("dialogue: ai answer failed for user=%s: %v", sess.UserID, err)
		return "", false
	}
	return answer, true
}

func missingDestinationResponse() Response {
	return Response{
		Type:        TypeMissingInfo,
		Message:     "Bitte geben Sie zuerst Ihr Reiseziel an.",
		Suggestions: []string{"Wo möchten Sie hinreisen?", "Alles zurücksetzen"},
	}
}

func composePlan(sess *session.Session) string {
	prefs := sess.Preferences
	results := sess.SearchResults

	startDate := prefs.StartDate
	if startDate == "" {
		startDate = "Startdatum"
	}
	endDate := prefs.EndDate
	if endDate == "" {
		endDate = "Enddatum"
	}
	budget := "Ihr Budget"
	if prefs.HasBudget() {
		budget = fmt.Sprintf("%d", prefs.Budget)
	}

	flightCount := 0
	if results.Flights != nil {
		flightCount = len(results.Flights.Flights)
	}
	hotelCount := 0
	if results.Hotels != nil {
		hotelCount = len(results.Hotels.Hotels)
	}
	weatherDesc := "Informationen verfügbar"
	if results.Weather != nil && results.Weather.Description != "" {
		weatherDesc = results.Weather.Description
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌍 Reiseplan für %s\n\n", prefs.Destination)
	fmt.Fprintf(&b, "Reisezeitraum: %s bis %s\n", startDate, endDate)
	fmt.Fprintf(&b, "Budget: %s€\n", budget)
	fmt.Fprintf(&b, "Reisende: %d Person(en)\n\n", prefs.Travelers)
	b.WriteString("Verfügbare Optionen:\n")
	fmt.Fprintf(&b, "• Flüge: %d verfügbar\n", flightCount)
	fmt.Fprintf(&b, "• Hotels: %d verfügbar\n", hotelCount)
	fmt.Fprintf(&b, "• Wetter: %s\n\n", weatherDesc)
	b.WriteString(`Empfohlene Aktivitäten:
• Sehenswürdigkeiten erkunden
• Lokale Küche probieren
• Stadtführungen buchen
• Museen und Kultur besuchen

Restaurant-Empfehlungen:
• Traditionelle Restaurants besuchen
• Lokale Märkte entdecken
• Empfehlungen von Einheimischen einholen

Praktische Tipps:
• Öffentliche Verkehrsmittel nutzen
• Wettervorhersage prüfen
• Notfallnummern notieren
• Reiseversicherung abschließen

Budget-Tipps:
• Frühzeitig buchen
• Nebensaison wählen
• Günstige Unterkünfte suchen
• Lokale Angebote nutzen
`)

	if p := sess.Profile; p.TravelStyle != "" {
		est := profile.EstimateBudget(profile.Traits{
			TravelStyle: p.TravelStyle,
			BudgetRange: p.BudgetRange,
			GroupType:   p.GroupType,
		}, prefs.Duration)
		fmt.Fprintf(&b, "\nGeschätztes Budget: %d€ - %d€ (%d€ pro Person, %d Reisende)\n",
			est.Min, est.Max, est.PerPerson, est.Travelers)
	}
	return b.String()
}

func greetingSuggestions(travelStyle string) []string {
	if travelStyle != "" {
		return profile.GreetingSuggestions(travelStyle)
	}
	return []string{"Wohin möchten Sie reisen?"}
}

func generalSuggestions(travelStyle string) []string {
	if travelStyle != "" {
		return profile.GreetingSuggestions(travelStyle)
	}
	return []string{
		"Wie ist das Wetter in Berlin?",
		"Flüge nach Paris suchen",
		"Hotels in München finden",
		"Ich möchte nach Rom reisen",
	}
}
