// README: Composer helpers; suggestion assembly, date examples and canonical responses.
package dialogue

import (
	"fmt"
	"time"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/session"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/weather"
)

const maxSuggestions = 5

const resetSuggestion = "Alles zurücksetzen"

// finalize enforces the composer rules on every outgoing response: at
// most five suggestions, and a reset option once any slot is filled.
func finalize(resp Response, sess *session.Session) Response {
	if sess.Preferences.AnySlotFilled() && !contains(resp.Suggestions, resetSuggestion) {
		if len(resp.Suggestions) >= maxSuggestions {
			resp.Suggestions = resp.Suggestions[:maxSuggestions-1]
		}
		resp.Suggestions = append(resp.Suggestions, resetSuggestion)
	}
	if len(resp.Suggestions) > maxSuggestions {
		resp.Suggestions = resp.Suggestions[:maxSuggestions]
	}
	return resp
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

// dateExamples returns three 7-day ranges starting 30, 60 and 90 days
// from now, formatted DD.MM.YYYY bis DD.MM.YYYY.
func dateExamples() []string {
	today := time.Now()
	out := make([]string, 0, 3)
	for _, offset := range []int{30, 60, 90} {
		start := today.AddDate(0, 0, offset)
		end := start.AddDate(0, 0, 7)
		out = append(out, fmt.Sprintf("%s bis %s", start.Format("02.01.2006"), end.Format("02.01.2006")))
	}
	return out
}

// nextQuestions prompts for the first unmet slot in canonical order.
func nextQuestions(progress session.Progress) []string {
	switch {
	case !progress.Destination:
		return []string{"Wo möchten Sie hinreisen?"}
	case !progress.Dates:
		return dateExamples()
	case !progress.Budget:
		return append([]string{"Was ist Ihr Budget? (z.B. 500€ für 7 Tage)"}, budgetSuggestions()...)
	default:
		return nil
	}
}

func searchActionSuggestions() []string {
	return []string{"Flüge suchen", "Hotels suchen", "Wetter abfragen", resetSuggestion}
}

func budgetSuggestions() []string {
	return []string{"100€", "300€", "500€", "1000€"}
}

func resetResponse() Response {
	return Response{
		Type:    TypeSessionReset,
		Message: "Perfekt! Lassen Sie uns eine neue Reise planen! \n\nIch helfe Ihnen gerne bei der Reiseplanung! Hier sind einige Möglichkeiten:",
		Suggestions: []string{
			"Wie ist das Wetter in Berlin?",
			"Flüge nach Paris suchen",
			"Hotels in München finden",
			"Ich möchte nach Rom reisen",
		},
	}
}

func errorResponse() Response {
	return Response{
		Type:        TypeError,
		Message:     "Entschuldigung, es gab einen Fehler bei der Verarbeitung Ihrer Anfrage.",
		Suggestions: []string{"Versuchen Sie es erneut", "Formulieren Sie Ihre Anfrage anders"},
	}
}

func weatherSummary(r *weather.Report) string {
	return weather.Summary(r)
}

func entString(entities map[string]any, key string) string {
	if v, ok := entities[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func entInt(entities map[string]any, key string) int {
	if v, ok := entities[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return 0
}
