package profile

import "strings"

var styleKeywords = []struct {
	style    string
	keywords []string
}{
	{StyleBudget, []string{"günstig", "billig", "budget", "sparen", "preiswert"}},
	{StyleLuxury, []string{"luxus", "teuer", "premium", "5 sterne", "exklusiv"}},
	{StyleAdventure, []string{"abenteuer", "wanderung", "aktiv", "outdoor", "natur"}},
	{StyleCulture, []string{"kultur", "museum", "geschichte", "kunst", "architektur"}},
	{StyleRelaxation, []string{"entspannung", "wellness", "ruhig", "erholung", "spa"}},
}

// Analyze derives traits from a single message. It is purely keyword
// based; the first matching style wins.
func Analyze(message string) Traits {
	lower := strings.ToLower(message)

	t := Traits{
		BudgetRange: BudgetMedium,
		GroupType:   GroupSolo,
	}

	for _, entry := range styleKeywords {
		if containsAny(lower, entry.keywords) {
			t.TravelStyle = entry.style
			break
		}
	}

	if containsAny(lower, []string{"günstig", "billig", "sparen"}) {
		t.BudgetRange = BudgetLow
	} else if containsAny(lower, []string{"teuer", "luxus", "premium"}) {
		t.BudgetRange = BudgetHigh
	}

	if containsAny(lower, []string{"familie", "kinder", "kind"}) {
		t.GroupType = GroupFamily
	} else if containsAny(lower, []string{"paar", "zusammen", "romantisch"}) {
		t.GroupType = GroupCouple
	} else if containsAny(lower, []string{"geschäft", "business", "arbeit"}) {
		t.GroupType = GroupBusiness
	}

	switch words := len(strings.Fields(message)); {
	case words > 20:
		t.InteractionPattern = InteractionDetailed
	case words > 10:
		t.InteractionPattern = InteractionExploratory
	default:
		t.InteractionPattern = InteractionDirect
	}

	return t
}

// ExperienceFromHistory grades the user by how many turns the
// conversation has accumulated.
func ExperienceFromHistory(turns int) string {
	switch {
	case turns > 10:
		return ExperienceExpert
	case turns > 5:
		return ExperienceIntermediate
	default:
		return ExperienceBeginner
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

var styleSuggestions = map[string][]string{
	StyleBudget: {
		"Günstige Hotels in Barcelona",
		"Budget-Reise nach Prag",
		"Preiswerte Flüge nach Budapest",
	},
	StyleLuxury: {
		"Luxus-Hotels in Paris",
		"Premium-Flüge nach London",
		"5-Sterne Hotels in Rom",
	},
}

var defaultSuggestions = []string{
	"Hotels in Paris finden",
	"Flüge nach London",
	"Wetter in Rom abfragen",
}

// GreetingSuggestions returns the opening suggestion pool for a travel
// style; unknown styles get the neutral pool.
func GreetingSuggestions(travelStyle string) []string {
	if pool, ok := styleSuggestions[travelStyle]; ok {
		out := make([]string, len(pool))
		copy(out, pool)
		return out
	}
	out := make([]string, len(defaultSuggestions))
	copy(out, defaultSuggestions)
	return out
}

// EstimateBudget gives a rough EUR range for a trip based on traits and
// duration in days. The base rate is 500 EUR per person per week.
func EstimateBudget(t Traits, durationDays int) BudgetEstimate {
	if durationDays <= 0 {
		durationDays = 7
	}

	base := 500.0
	switch t.TravelStyle {
	case StyleBudget:
		base *= 0.6
	case StyleLuxury:
		base *= 2.5
	case StyleAdventure:
		base *= 1.2
	case StyleCulture:
		base *= 0.9
	case StyleRelaxation:
		base *= 1.1
	}

	travelers := 1
	switch t.GroupType {
	case GroupFamily:
		travelers = 4
		base *= 1.5
	case GroupCouple:
		travelers = 2
		base *= 1.3
	case GroupBusiness:
		base *= 1.4
	}

	total := base * (float64(durationDays) / 7) * float64(travelers)
	return BudgetEstimate{
		Min:       int(total * 0.8),
		Max:       int(total * 1.3),
		PerPerson: int(total / float64(travelers)),
		Travelers: travelers,
	}
}
