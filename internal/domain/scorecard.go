package domain

// Score bounds. The grading model is asked to respect these but is not
// contractually bounded, so every scorecard must be clamped before use.
const (
	MaxTotalScore      = 100
	MaxCommercialScore = 40
	MaxStrategyScore   = 40
)

// Scorecard is the structured assessment of a completed negotiation session.
type Scorecard struct {
	TotalScore int    `json:"total_score"`
	Commercial int    `json:"commercial"`
	Strategy   int    `json:"strategy"`
	Feedback   string `json:"feedback"`
}

// Clamp forces every numeric field into its nominal range. It must be applied
// to every scorecard coming back from the grading model, regardless of how
// the response was validated upstream.
func (c *Scorecard) Clamp() {
	c.TotalScore = clampInt(c.TotalScore, 0, MaxTotalScore)
	c.Commercial = clampInt(c.Commercial, 0, MaxCommercialScore)
	c.Strategy = clampInt(c.Strategy, 0, MaxStrategyScore)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
