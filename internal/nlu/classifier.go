// README: Regex intent classifier; stand-in for a real NLU behind the same contract.
package nlu

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// minConfidence is the floor below which a match is discarded and the
// utterance is classified as unknown.
const minConfidence = 0.1

type intentPatterns struct {
	intent   string
	patterns []*regexp.Regexp
}

// Classifier scores an utterance against a fixed, ordered pattern table.
// Earlier intents win ties, mirroring the behavior users already rely on
// (a bare city name classifies as provide_destination, not budget).
type Classifier struct {
	table []intentPatterns
}

func compileAll(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		res[i] = regexp.MustCompile(`(?i)` + e)
	}
	return res
}

func NewClassifier() *Classifier {
	return &Classifier{table: []intentPatterns{
		{IntentGreet, compileAll(
			`\b(hallo|hi|hey|guten tag|guten morgen|guten abend)\b`,
			`\b(ich bin|mein name ist)\b`,
		)},
		{IntentGetWeather, compileAll(
			`\b(wetter|wettervorhersage|temperatur)\s+(in|für|von)\s+([a-zA-Zäöüß\s]+)\b`,
			`\b(wie ist das wetter)\s+(in|für|von)\s+([a-zA-Zäöüß\s]+)\b`,
			`\b(wetter|temperatur)\s+([a-zA-Zäöüß\s]+)\b`,
			`\b(regnet|sonnig|kalt|warm)\s+(in|für)\s+([a-zA-Zäöüß\s]+)\b`,
			`\b(klima|jahreszeit)\s+(in|für)\s+([a-zA-Zäöüß\s]+)\b`,
		)},
		{IntentSearchFlights, compileAll(
			`\b(flug|flüge|fliegen)\s+(suchen|finden|buchen)\b`,
			`\b(flugticket|flugbuchung)\b`,
			`\b(fliegen|flug)\s+(nach|zu)\s+([a-zA-Zäöüß\s]+)\b`,
			`\b(flugpreise|flugkosten)\b`,
			`\b(flugverbindung|flugroute)\b`,
			`\b(flüge|flug)\s+(nach|zu)\s+([a-zA-Zäöüß\s]+)\s+(suchen|finden)\b`,
			`\b(flüge|flug)\s+(suchen|finden)\b`,
		)},
		{IntentSearchHotels, compileAll(
			`\b(hotels|hotel)\s+in\s+([a-zA-Zäöüß\s]+)\s+(finden|suchen)\b`,
			`\b(hotel|hotels|unterkunft)\s+(suchen|finden|buchen)\b`,
			`\b(zimmer|übernachtung)\b`,
			`\b(wohnen|schlafen)\s+in\s+([a-zA-Zäöüß\s]+)\b`,
		)},
		{IntentGoodbye, compileAll(
			`\b(tschüss|auf wiedersehen|bye|danke)\b`,
			`\b(ende|beenden|fertig)\b`,
		)},
		{IntentProvideDestination, compileAll(
			`\b(nach|zu|in)\s+([a-zA-Zäöüß\s]+)\b`,
			`\b(reise|fliege|gehe|fahre)\s+(nach|zu|in)\s+([a-zA-Zäöüß\s]+)\b`,
			`\b(ich möchte|ich will|ich plane)\s+(nach|zu|in)\s+([a-zA-Zäöüß\s]+)\b`,
			`^([a-zA-Zäöüß]+)$`,
		)},
		{IntentProvideDates, compileAll(
			`\b(vom|ab|seit)\s+(\d{1,2}\.\d{1,2}\.\d{4}|\d{1,2}\.\d{1,2})\s+(bis zum|bis)\s+(\d{1,2}\.\d{1,2}\.\d{4}|\d{1,2}\.\d{1,2})\b`,
			`\b(\d{1,2}\.\d{1,2}\.\d{4}|\d{1,2}\.\d{1,2})\s+(bis zum|bis)\s+(\d{1,2}\.\d{1,2}\.\d{4}|\d{1,2}\.\d{1,2})\b`,
			`\b(reisedatum|reisezeitraum)\b`,
		)},
		{IntentProvideDuration, compileAll(
			`\b(aufenthalt|dauer|zeitraum)\b`,
			`\b(\d+)\s*(tag|tage|woche|wochen|monat|monate)\b`,
		)},
		{IntentProvideBudget, compileAll(
			`^(\d+)$`,
			`^(\d+)(€|eur)$`,
			`\b(\d+)\s*(euro|eur|€)\b`,
			`\b(\d+)(€|eur)\b`,
			`\b(budget|preis|kosten)\s+(von|bis)\s+(\d+)\s*(euro|eur|€)\b`,
			`\b(teuer|günstig|billig|luxus)\b`,
			`\b(budget angeben)\b`,
		)},
		{IntentCreatePlan, compileAll(
			`\b(reiseplan|plan|planung)\s+(erstellen|machen)\b`,
			`\b(empfehlung|vorschlag)\b`,
			`\b(was kann ich|was sollte ich)\b`,
		)},
		{IntentContinueTrip, compileAll(
			`\b(fortsetzen|weitermachen)\b`,
			`\b(aktuelle reise)\b`,
		)},
		{IntentNewTrip, compileAll(
			`\b(neue reise planen|neue reise)\b`,
		)},
		{IntentResetSession, compileAll(
			`\b(alles zurücksetzen|zurücksetzen|neu starten)\b`,
			`\b(reset|start over|new trip)\b`,
			`\b(von vorne beginnen|alles löschen)\b`,
		)},
	}}
}

// Classify scores message against every intent pattern and returns the
// best intent with a confidence in [0,1] plus extracted entities.
// Strictly greater confidence wins, so intents earlier in the table take
// precedence on ties.
func (c *Classifier) Classify(message, userID string) Result {
	msg := strings.TrimSpace(message)
	msgLen := utf8.RuneCountInString(msg)

	bestIntent := IntentUnknown
	bestConfidence := 0.0

	if msgLen > 0 {
		for _, row := range c.table {
			for _, re := range row.patterns {
				conf := matchConfidence(re, msg, msgLen)
				if conf > bestConfidence {
					bestConfidence = conf
					bestIntent = row.intent
				}
			}
		}
	}

	if bestConfidence < minConfidence {
		bestIntent = IntentUnknown
		bestConfidence = 0
	}

	log.Printf("nlu: user=%s intent=%s confidence=%.2f", userID, bestIntent, bestConfidence)

	return Result{
		Intent:     bestIntent,
		Confidence: bestConfidence,
		Entities:   c.extractEntities(msg, bestIntent),
	}
}

// matchConfidence derives a crude confidence from how much of the
// message the pattern covers. Multi-group patterns are anchored phrases
// and score a flat 0.5.
func matchConfidence(re *regexp.Regexp, msg string, msgLen int) float64 {
	m := re.FindStringSubmatch(msg)
	if m == nil {
		return 0
	}
	switch re.NumSubexp() {
	case 0:
		return float64(utf8.RuneCountInString(m[0])) / float64(msgLen)
	case 1:
		return float64(utf8.RuneCountInString(m[1])) / float64(msgLen)
	default:
		return 0.5
	}
}

var (
	weatherEntityPatterns = compileAll(
		`\b(wetter|wettervorhersage|temperatur)\s+(in|für|von)\s+([a-zA-Zäöüß\s]+)\b`,
		`\b(wie ist das wetter)\s+(in|für|von)\s+([a-zA-Zäöüß\s]+)\b`,
		`\b(wetter|temperatur)\s+([a-zA-Zäöüß\s]+)\b`,
		`\b(regnet|sonnig|kalt|warm)\s+(in|für)\s+([a-zA-Zäöüß\s]+)\b`,
	)
	destinationEntityPatterns = compileAll(
		`\b(nach|zu|in)\s+([a-zA-Zäöüß\s]+)\b`,
		`\b(reise|fliege|gehe|fahre)\s+(nach|zu|in)\s+([a-zA-Zäöüß\s]+)\b`,
		`\b(ich möchte|ich will|ich plane)\s+(nach|zu|in)\s+([a-zA-Zäöüß\s]+)\b`,
		`^([a-zA-Zäöüß]+)$`,
	)
	dateEntityPatterns = compileAll(
		`\b(vom|ab)\s+(\d{1,2}\.\d{1,2}\.\d{4}|\d{1,2}\.\d{1,2})\s+(bis zum|bis)\s+(\d{1,2}\.\d{1,2}\.\d{4}|\d{1,2}\.\d{1,2})\b`,
		`\b(\d{1,2}\.\d{1,2}\.\d{4}|\d{1,2}\.\d{1,2})\s+(bis zum|bis)\s+(\d{1,2}\.\d{1,2}\.\d{4}|\d{1,2}\.\d{1,2})\b`,
	)
	durationEntityPattern = regexp.MustCompile(`(?i)\b(\d+)\s*(tag|tage|woche|wochen|monat|monate)\b`)
	budgetEntityPatterns  = compileAll(
		`^(\d+)$`,
		`^(\d+)(€|eur)$`,
		`\b(\d+)\s*(euro|eur|€)\b`,
		`\b(\d+)(€|eur)\b`,
		`\b(budget|preis|kosten)\s+(von|bis)\s+(\d+)\s*(euro|eur|€)\b`,
	)
	flightEntityPatterns = compileAll(
		`\b(flüge|flug)\s+(nach|zu)\s+([a-zA-Zäöüß\s]+?)\s+(suchen|finden)\b`,
		`\b(fliegen|flug)\s+(nach|zu)\s+([a-zA-Zäöüß\s]+)\b`,
	)
	hotelEntityPattern = regexp.MustCompile(`(?i)\b(hotels|hotel)\s+in\s+([a-zA-Zäöüß\s]+?)\s+(finden|suchen)\b`)
	digitsOnlyPattern  = regexp.MustCompile(`^\d+$`)
)

func (c *Classifier) extractEntities(msg, intent string) map[string]any {
	entities := map[string]any{}

	switch intent {
	case IntentGetWeather:
		for _, re := range weatherEntityPatterns {
			m := re.FindStringSubmatch(msg)
			if m == nil {
				continue
			}
			// Location is the last group.
			entities[EntityWeatherLocation] = strings.TrimSpace(m[len(m)-1])
			break
		}
	case IntentProvideDestination:
		for _, re := range destinationEntityPatterns {
			m := re.FindStringSubmatch(msg)
			if m == nil {
				continue
			}
			entities[EntityDestination] = strings.TrimSpace(m[len(m)-1])
			break
		}
	case IntentProvideDates:
		for _, re := range dateEntityPatterns {
			m := re.FindStringSubmatch(msg)
			if m == nil {
				continue
			}
			if len(m) == 5 {
				entities[EntityStartDate] = m[2]
				entities[EntityEndDate] = m[4]
			} else {
				entities[EntityStartDate] = m[1]
				entities[EntityEndDate] = m[3]
			}
			break
		}
	case IntentProvideDuration:
		if m := durationEntityPattern.FindStringSubmatch(msg); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				entities[EntityDuration] = n
			}
		}
	case IntentProvideBudget:
		for _, re := range budgetEntityPatterns {
			m := re.FindStringSubmatch(msg)
			if m == nil {
				continue
			}
			raw := m[1]
			if len(m) == 5 {
				raw = m[3]
			}
			if n, err := strconv.Atoi(raw); err == nil {
				entities[EntityBudget] = n
			}
			break
		}
	case IntentSearchFlights:
		for _, re := range flightEntityPatterns {
			m := re.FindStringSubmatch(msg)
			if m == nil {
				continue
			}
			entities[EntityFlightDestination] = strings.TrimSpace(m[3])
			break
		}
	case IntentSearchHotels:
		if m := hotelEntityPattern.FindStringSubmatch(msg); m != nil {
			entities[EntityHotelLocation] = strings.TrimSpace(m[2])
		}
	}

	// A bare number with no other signal is treated as a budget.
	if _, ok := entities[EntityBudget]; !ok {
		if digitsOnlyPattern.MatchString(msg) {
			if n, err := strconv.Atoi(msg); err == nil {
				entities[EntityBudget] = n
			}
		}
	}

	return entities
}
