// README: Lightweight user profiling from message keywords; feeds suggestion personalization.
package profile

// Travel style values derived from message keywords.
const (
	StyleBudget     = "budget"
	StyleLuxury     = "luxury"
	StyleAdventure  = "adventure"
	StyleCulture    = "culture"
	StyleRelaxation = "relaxation"
)

// Budget range values.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// Group type values.
const (
	GroupSolo     = "solo"
	GroupFamily   = "family"
	GroupCouple   = "couple"
	GroupBusiness = "business"
)

// Experience level values, keyed on conversation length.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceExpert       = "expert"
)

// Interaction pattern values, keyed on message length.
const (
	InteractionDirect      = "direct"
	InteractionExploratory = "exploratory"
	InteractionDetailed    = "detailed"
)

// Traits is the result of analyzing a single message. TravelStyle may be
// empty when no style keyword matched.
type Traits struct {
	TravelStyle        string
	BudgetRange        string
	GroupType          string
	InteractionPattern string
}

// BudgetEstimate is a rough per-trip cost range in EUR.
type BudgetEstimate struct {
	Min       int
	Max       int
	PerPerson int
	Travelers int
}
