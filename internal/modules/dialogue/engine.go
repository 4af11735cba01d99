// README: Turn pipeline; classifies, routes per intent and drives the slot-filling dialogue.
package dialogue

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/nlu"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/flights"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/hotels"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/profile"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/session"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/turnlog"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/weather"
)

// Classifier turns raw text into an intent with entities.
type Classifier interface {
	Classify(message, userID string) nlu.Result
}

// FlightSearcher is the flight collaborator boundary.
type FlightSearcher interface {
	Search(ctx context.Context, q flights.Query) (flights.Result, error)
	Summary(res flights.Result, q flights.Query) string
}

// HotelSearcher is the hotel collaborator boundary.
type HotelSearcher interface {
	Search(ctx context.Context, q hotels.Query) (hotels.Result, error)
	Summary(res hotels.Result, q hotels.Query) string
}

// WeatherLookup is the weather collaborator boundary.
type WeatherLookup interface {
	Current(ctx context.Context, location string) (*weather.Report, error)
}

// AnswerProvider generates free-form replies to general travel questions.
type AnswerProvider interface {
	Answer(ctx context.Context, userMessage string, profileHints map[string]string) (string, error)
}

// TurnLogger persists processed turns for auditing.
type TurnLogger interface {
	Append(ctx context.Context, r turnlog.Record) error
}

// Config wires the engine's collaborators. AI, Turnlog and the search
// collaborators may be nil; the engine degrades per collaborator.
type Config struct {
	Sessions session.Store
	NLU      Classifier
	Flights  FlightSearcher
	Hotels   HotelSearcher
	Weather  WeatherLookup
	AI       AnswerProvider
	Turnlog  TurnLogger

	DefaultOrigin string
	SearchTimeout time.Duration
	HistoryLimit  int
}

// Engine processes dialogue turns. Safe for concurrent use; turns for
// the same user are serialized by the session store.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.DefaultOrigin == "" {
		cfg.DefaultOrigin = "BER"
	}
	if cfg.SearchTimeout <= 0 {
		cfg.SearchTimeout = 5 * time.Second
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 50
	}
	return &Engine{cfg: cfg}
}

// ProcessMessage runs one turn for the user and always returns a
// well-formed response; panics from handlers or collaborators are
// converted into the canonical error response.
func (e *Engine) ProcessMessage(ctx context.Context, message, userID string) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("dialogue: panic while processing turn for user=%s: %v", userID, r)
			resp = errorResponse()
		}
	}()

	result := e.cfg.NLU.Classify(message, userID)
	log.Printf("dialogue: user=%s intent=%s confidence=%.2f entities=%d",
		userID, result.Intent, result.Confidence, len(result.Entities))

	sess, release := e.cfg.Sessions.Acquire(userID)
	defer release()

	sess.AppendHistory(message, session.RoleUser, e.cfg.HistoryLimit)
	e.updateProfile(sess, message)

	resp = e.route(ctx, sess, result, message)
	resp = finalize(resp, sess)

	sess.AppendHistory(resp.Message, session.RoleAssistant, e.cfg.HistoryLimit)
	e.logTurn(ctx, userID, message, result, resp)
	return resp
}

// ResetSession clears all state for the user and returns the fresh-start
// response.
func (e *Engine) ResetSession(ctx context.Context, userID string) Response {
	e.cfg.Sessions.Reset(userID)
	return resetResponse()
}

// route picks the handler for the classified intent. Session-management
// intents always win; slot intents detour to the already-known handler
// when they would restate a stored value.
func (e *Engine) route(ctx context.Context, sess *session.Session, result nlu.Result, message string) Response {
	entities := result.Entities
	prefs := &sess.Preferences

	switch result.Intent {
	case nlu.IntentGreet:
		return e.handleGreeting(sess)
	case nlu.IntentNewTrip, nlu.IntentResetSession:
		sess.Reset()
		return resetResponse()
	case nlu.IntentContinueTrip:
		return e.handleContinueTrip(sess)
	case nlu.IntentGoodbye:
		return e.handleGoodbye()

	case nlu.IntentProvideDestination:
		if prefs.HasDestination() && !isNewDestination(entities, prefs.Destination) {
			return e.handleAlreadyKnown(sess, slotDestination, prefs.Destination)
		}
		return e.handleDestination(ctx, sess, entString(entities, nlu.EntityDestination))
	case nlu.IntentProvideDates:
		if prefs.HasDates() {
			return e.handleAlreadyKnown(sess, slotDates, prefs.StartDate+" bis "+prefs.EndDate)
		}
		return e.handleDates(sess, entities)
	case nlu.IntentProvideDuration:
		if prefs.HasDuration() {
			return e.handleAlreadyKnown(sess, slotDuration, strconv.Itoa(prefs.Duration))
		}
		return e.handleDuration(sess, entities)
	case nlu.IntentProvideBudget:
		if prefs.HasBudget() {
			return e.handleAlreadyKnown(sess, slotBudget, strconv.Itoa(prefs.Budget))
		}
		return e.handleBudget(ctx, sess, entities)

	case nlu.IntentSearchFlights:
		return e.handleFlightSearch(ctx, sess, entities)
	case nlu.IntentSearchHotels:
		return e.handleHotelSearch(ctx, sess, entities)
	case nlu.IntentGetWeather:
		return e.handleWeather(ctx, sess, entities)
	case nlu.IntentCreatePlan:
		return e.handlePlanCreation(sess)

	case nlu.IntentUnknown:
		if token, ok := singleAlphabeticToken(message); ok {
			// Single city names typed alone count as a destination.
			if prefs.HasDestination() && !differs(token, prefs.Destination) {
				return e.handleAlreadyKnown(sess, slotDestination, prefs.Destination)
			}
			return e.handleDestination(ctx, sess, token)
		}
		return e.handleGeneralQuestion(ctx, sess, message)
	default:
		return e.handleGeneralQuestion(ctx, sess, message)
	}
}

func (e *Engine) updateProfile(sess *session.Session, message string) {
	traits := profile.Analyze(message)
	p := &sess.Profile
	if traits.TravelStyle != "" {
		p.TravelStyle = traits.TravelStyle
	}
	if p.BudgetRange == "" || traits.BudgetRange != profile.BudgetMedium {
		p.BudgetRange = traits.BudgetRange
	}
	if p.GroupType == "" || traits.GroupType != profile.GroupSolo {
		p.GroupType = traits.GroupType
	}
	p.InteractionPattern = traits.InteractionPattern
	p.ExperienceLevel = profile.ExperienceFromHistory(len(sess.History))
}

func (e *Engine) logTurn(ctx context.Context, userID, message string, result nlu.Result, resp Response) {
	if e.cfg.Turnlog == nil {
		return
	}
	err := e.cfg.Turnlog.Append(ctx, turnlog.Record{
		UserID:       userID,
		Message:      message,
		Intent:       result.Intent,
		Confidence:   result.Confidence,
		ResponseType: string(resp.Type),
	})
	if err != nil {
		log.Printf("dialogue: turn log append failed for user=%s: %v", userID, err)
	}
}

// searchCtx bounds a collaborator call so a slow provider cannot stall
// the turn.
func (e *Engine) searchCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.cfg.SearchTimeout)
}

func isNewDestination(entities map[string]any, current string) bool {
	candidate := nlu.NormalizeDestination(entString(entities, nlu.EntityDestination))
	return differs(candidate, current)
}

func differs(candidate, current string) bool {
	return !strings.EqualFold(candidate, current)
}

func singleAlphabeticToken(message string) (string, bool) {
	fields := strings.Fields(message)
	if len(fields) != 1 {
		return "", false
	}
	for _, r := range fields[0] {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	return fields[0], true
}
