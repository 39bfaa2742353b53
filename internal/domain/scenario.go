// Package domain contains core domain types for the negotiation trainer.
package domain

// Difficulty grades how demanding a scenario is for the trainee.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyExpert Difficulty = "Expert"
)

// Scenario is a negotiation case: a user-facing mission brief plus a hidden
// counterparty persona. The persona drives the AI counterparty and is never
// sent to the browser.
type Scenario struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Category      string     `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	UserBrief     string     `json:"user_brief"`
	SystemPersona string     `json:"-"`
}

// ScenarioSummary is the listing view of a scenario, without the brief
// or the persona.
type ScenarioSummary struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// Summary returns the listing view of the scenario.
func (s *Scenario) Summary() ScenarioSummary {
	return ScenarioSummary{
		ID:         s.ID,
		Title:      s.Title,
		Category:   s.Category,
		Difficulty: s.Difficulty,
	}
}
