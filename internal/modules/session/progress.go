// README: Progress evaluation over the collected slots.
package session

// Progress reports which slots are filled and whether the session's
// goal is satisfied.
type Progress struct {
	Destination bool
	Dates       bool
	Duration    bool
	Budget      bool
	Complete    bool
}

// Evaluate computes slot progress for the session's goal and, as its
// single side effect, advances the state to searching_options once the
// goal is satisfied. Calling it twice without mutation yields the same
// report.
func Evaluate(s *Session) Progress {
	p := Progress{
		Destination: s.Preferences.HasDestination(),
		Dates:       s.Preferences.HasDates(),
		Duration:    s.Preferences.HasDuration(),
		Budget:      s.Preferences.HasBudget(),
	}

	switch s.Goal {
	case GoalDestinationOnly:
		p.Complete = p.Destination
	default:
		p.Complete = p.Destination && p.Dates && p.Budget
	}

	if p.Complete && (s.State == StateGreeting || s.State == StateCollectingPreferences) {
		s.State = StateSearchingOptions
	}
	return p
}
