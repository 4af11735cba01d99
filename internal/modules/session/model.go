// README: Per-user session state for the slot-filling dialogue.
package session

import (
	"strings"
	"time"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/flights"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/hotels"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/weather"
)

type State string

const (
	StateGreeting              State = "greeting"
	StateCollectingPreferences State = "collecting_preferences"
	StateSearchingOptions      State = "searching_options"
	StatePresentingResults     State = "presenting_results"
	StateFinalizingPlan        State = "finalizing_plan"
)

// Goal selects the minimum slot set that makes a session "complete".
type Goal string

const (
	// GoalFullTrip requires destination, dates and budget.
	GoalFullTrip Goal = "full_trip"
	// GoalDestinationOnly requires just the destination (hotel-first flows).
	GoalDestinationOnly Goal = "destination_only"
)

func ParseGoal(s string) Goal {
	if Goal(s) == GoalDestinationOnly {
		return GoalDestinationOnly
	}
	return GoalFullTrip
}

// Preferences are the trip slots collected over the conversation.
// Zero values mean "unset"; Travelers defaults to 1.
type Preferences struct {
	Destination       string
	StartDate         string
	EndDate           string
	Duration          int
	Budget            int
	Travelers         int
	AccommodationType string
	Origin            string
}

func (p Preferences) HasDestination() bool { return p.Destination != "" }
func (p Preferences) HasDates() bool       { return p.StartDate != "" && p.EndDate != "" }
func (p Preferences) HasDuration() bool    { return p.Duration > 0 }
func (p Preferences) HasBudget() bool      { return p.Budget > 0 }

// AnySlotFilled reports whether the user has provided anything yet;
// used to decide when responses must offer a reset option.
func (p Preferences) AnySlotFilled() bool {
	return p.HasDestination() || p.StartDate != "" || p.EndDate != "" || p.HasDuration() || p.HasBudget()
}

// SameDestination compares case-insensitively; restating the same city
// must not count as a contradiction.
func (p Preferences) SameDestination(other string) bool {
	return strings.EqualFold(p.Destination, other)
}

// SearchResults holds the last result set per category. Each new search
// overwrites its category wholesale.
type SearchResults struct {
	Flights *flights.Result
	Hotels  *hotels.Result
	Weather *weather.Report
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type HistoryEntry struct {
	Message   string
	Role      Role
	Timestamp time.Time
}

// maxLastSearches bounds the AI profile search history (FIFO).
const maxLastSearches = 5

// AIProfile is a best-effort personalization layer derived from keyword
// heuristics; every field may stay empty for the whole session.
type AIProfile struct {
	TravelStyle        string
	BudgetRange        string
	GroupType          string
	InteractionPattern string
	ExperienceLevel    string
	LastSearches       []string
}

// PushSearch appends a searched destination, evicting the oldest entry
// beyond maxLastSearches.
func (p *AIProfile) PushSearch(destination string) {
	if destination == "" {
		return
	}
	p.LastSearches = append(p.LastSearches, destination)
	if len(p.LastSearches) > maxLastSearches {
		p.LastSearches = p.LastSearches[len(p.LastSearches)-maxLastSearches:]
	}
}

// Session is the per-user dialogue state. It is owned by the Store and
// must only be touched while the store's per-user lock is held.
type Session struct {
	UserID        string
	State         State
	Goal          Goal
	Preferences   Preferences
	SearchResults SearchResults
	History       []HistoryEntry
	Profile       AIProfile
	CreatedAt     time.Time
}

func New(userID string, goal Goal) *Session {
	return &Session{
		UserID: userID,
		State:  StateGreeting,
		Goal:   goal,
		Preferences: Preferences{
			Travelers:         1,
			AccommodationType: "hotel",
		},
		CreatedAt: time.Now(),
	}
}

// Reset reinitializes every field to its default while keeping the
// session pointer (and its goal) stable. Sessions have no TTL; a leaked
// session lives until process exit.
func (s *Session) Reset() {
	fresh := New(s.UserID, s.Goal)
	*s = *fresh
}

// AppendHistory records a message, trimming to limit entries when
// limit > 0. History feeds simple heuristics only, never the NLU.
func (s *Session) AppendHistory(message string, role Role, limit int) {
	s.History = append(s.History, HistoryEntry{
		Message:   message,
		Role:      role,
		Timestamp: time.Now(),
	})
	if limit > 0 && len(s.History) > limit {
		s.History = s.History[len(s.History)-limit:]
	}
}
