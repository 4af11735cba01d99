// README: Trait analysis and budget estimate tests.
package profile

import "testing"

func TestAnalyze_TravelStyles(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"Ich suche etwas günstiges", StyleBudget},
		{"Gerne ein Luxus-Hotel mit 5 Sterne Komfort", StyleLuxury},
		{"Wir wollen Abenteuer und Natur", StyleAdventure},
		{"Museen und Geschichte interessieren mich", StyleCulture},
		{"Hauptsache Wellness und Erholung", StyleRelaxation},
		{"Hotels in Berlin finden", ""},
	}

	for _, tt := range tests {
		if got := Analyze(tt.message).TravelStyle; got != tt.want {
			t.Errorf("Analyze(%q).TravelStyle = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestAnalyze_BudgetRangeAndGroup(t *testing.T) {
	got := Analyze("Günstig mit der Familie reisen")
	if got.BudgetRange != BudgetLow {
		t.Errorf("BudgetRange = %q, want %q", got.BudgetRange, BudgetLow)
	}
	if got.GroupType != GroupFamily {
		t.Errorf("GroupType = %q, want %q", got.GroupType, GroupFamily)
	}

	got = Analyze("Etwas romantisch für uns zusammen")
	if got.GroupType != GroupCouple {
		t.Errorf("GroupType = %q, want %q", got.GroupType, GroupCouple)
	}

	got = Analyze("Hotels in Berlin")
	if got.BudgetRange != BudgetMedium || got.GroupType != GroupSolo {
		t.Errorf("defaults = %q/%q, want medium/solo", got.BudgetRange, got.GroupType)
	}
}

func TestAnalyze_InteractionPattern(t *testing.T) {
	short := Analyze("Hotels in Rom")
	if short.InteractionPattern != InteractionDirect {
		t.Errorf("short message pattern = %q, want %q", short.InteractionPattern, InteractionDirect)
	}

	medium := Analyze("Ich möchte gerne wissen welche Hotels es in Rom gibt und was sie kosten")
	if medium.InteractionPattern != InteractionExploratory {
		t.Errorf("medium message pattern = %q, want %q", medium.InteractionPattern, InteractionExploratory)
	}
}

func TestGreetingSuggestions(t *testing.T) {
	budget := GreetingSuggestions(StyleBudget)
	if len(budget) == 0 || budget[0] != "Günstige Hotels in Barcelona" {
		t.Fatalf("budget pool = %v", budget)
	}

	generic := GreetingSuggestions("")
	if len(generic) != 3 {
		t.Fatalf("generic pool = %v", generic)
	}
}

func TestEstimateBudget(t *testing.T) {
	est := EstimateBudget(Traits{TravelStyle: StyleBudget, GroupType: GroupSolo}, 7)
	if est.Travelers != 1 {
		t.Fatalf("travelers = %d, want 1", est.Travelers)
	}
	if est.Min >= est.Max {
		t.Fatalf("min %d not below max %d", est.Min, est.Max)
	}

	family := EstimateBudget(Traits{TravelStyle: StyleLuxury, GroupType: GroupFamily}, 7)
	if family.Travelers != 4 {
		t.Fatalf("family travelers = %d, want 4", family.Travelers)
	}
	if family.Min <= est.Min {
		t.Fatal("luxury family trip should cost more than a solo budget trip")
	}
}

func TestExperienceFromHistory(t *testing.T) {
	cases := []struct {
		turns int
		want  string
	}{
		{0, ExperienceBeginner},
		{5, ExperienceBeginner},
		{6, ExperienceIntermediate},
		{10, ExperienceIntermediate},
		{11, ExperienceExpert},
	}
	for _, c := range cases {
		if got := ExperienceFromHistory(c.turns); got != c.want {
			t.Errorf("ExperienceFromHistory(%d) = %q, want %q", c.turns, got, c.want)
		}
	}
}
