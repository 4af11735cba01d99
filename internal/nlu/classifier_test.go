// README: Classifier unit tests covering intent routing and entity extraction.
package nlu

import (
	"testing"
)

func TestClassify_IntentTable(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"greeting", "Hallo", IntentGreet},
		{"greeting phrase", "Guten Tag, ich bin Anna", IntentGreet},
		{"weather question", "Wie ist das Wetter in Berlin?", IntentGetWeather},
		{"weather short", "Wetter in München", IntentGetWeather},
		{"flight search", "Flüge nach Paris suchen", IntentSearchFlights},
		{"flight verb", "Ich will fliegen nach London", IntentSearchFlights},
		{"hotel search", "Hotels in München finden", IntentSearchHotels},
		{"hotel generic", "Unterkunft suchen", IntentSearchHotels},
		{"goodbye", "Tschüss und danke", IntentGoodbye},
		{"destination phrase", "Ich möchte nach Rom reisen", IntentProvideDestination},
		{"bare city", "Berlin", IntentProvideDestination},
		{"date range", "15.07.2026 bis 22.07.2026", IntentProvideDates},
		{"date range with vom", "vom 01.08.2026 bis 08.08.2026", IntentProvideDates},
		{"duration", "5 Tage", IntentProvideDuration},
		{"budget euro sign", "500€", IntentProvideBudget},
		{"budget bare number", "500", IntentProvideBudget},
		{"budget word", "300 Euro", IntentProvideBudget},
		{"plan creation", "Reiseplan erstellen", IntentCreatePlan},
		{"continue", "Aktuelle Reise fortsetzen", IntentContinueTrip},
		{"reset", "Alles zurücksetzen", IntentResetSession},
		{"gibberish", "qwert zuiop asdf 99x", IntentUnknown},
		{"empty", "   ", IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message, "test-user")
			if got.Intent != tt.want {
				t.Fatalf("Classify(%q) = %s (%.2f), want %s", tt.message, got.Intent, got.Confidence, tt.want)
			}
		})
	}
}

func TestClassify_ConfidenceBounds(t *testing.T) {
	c := NewClassifier()
	for _, msg := range []string{"Hallo", "Berlin", "500€", "Wie ist das Wetter in Rom?", "blah blah"} {
		got := c.Classify(msg, "u")
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Errorf("Classify(%q) confidence %.2f out of [0,1]", msg, got.Confidence)
		}
	}
}

func TestClassify_UnknownHasZeroConfidence(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("qwert zuiop asdf 99x", "u")
	if got.Intent != IntentUnknown || got.Confidence != 0 {
		t.Fatalf("got intent=%s confidence=%.2f, want unknown with 0", got.Intent, got.Confidence)
	}
}

func TestClassify_PreservesEntityCase(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("Berlin", "u")
	if dest, _ := got.Entities[EntityDestination].(string); dest != "Berlin" {
		t.Fatalf("destination entity = %q, want %q", dest, "Berlin")
	}
}

func TestClassify_DateEntitiesComeInPairs(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("15.07.2026 bis 22.07.2026", "u")
	if got.Entities[EntityStartDate] != "15.07.2026" || got.Entities[EntityEndDate] != "22.07.2026" {
		t.Fatalf("entities = %v, want both dates", got.Entities)
	}

	got = c.Classify("vom 01.08.2026 bis 08.08.2026", "u")
	if got.Entities[EntityStartDate] != "01.08.2026" || got.Entities[EntityEndDate] != "08.08.2026" {
		t.Fatalf("entities = %v, want both dates", got.Entities)
	}
}

func TestClassify_EntityExtraction(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		message string
		key     string
		want    any
	}{
		{"Wie ist das Wetter in Berlin", EntityWeatherLocation, "Berlin"},
		{"Flüge nach Paris suchen", EntityFlightDestination, "Paris"},
		{"Hotels in München finden", EntityHotelLocation, "München"},
		{"5 Tage", EntityDuration, 5},
		{"500€", EntityBudget, 500},
		{"500", EntityBudget, 500},
		{"300 Euro", EntityBudget, 300},
	}

	for _, tt := range tests {
		got := c.Classify(tt.message, "u")
		if got.Entities[tt.key] != tt.want {
			t.Errorf("Classify(%q) entities[%s] = %v, want %v", tt.message, tt.key, got.Entities[tt.key], tt.want)
		}
	}
}
