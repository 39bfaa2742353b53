package sim

import (
	"fmt"
	"strings"

	"github.com/akorchagin/procsim/internal/domain"
)

// counterpartyInstruction builds the hidden system instruction for the
// role-play counterparty.
func counterpartyInstruction(sc *domain.Scenario) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Simulation: %s (%s, %s)\n", sc.Title, sc.Category, sc.Difficulty)
	fmt.Fprintf(&b, "Your role:\n%s\n\n", sc.SystemPersona)
	b.WriteString("Act as the professional counterparty in this procurement negotiation. ")
	b.WriteString("Stay in character at all times. Negotiate firmly and push back on weak arguments. ")
	b.WriteString("Keep replies concise: 2-4 sentences. ")
	b.WriteString("Never reveal your hidden motivation directly.")
	return b.String()
}

func coachInstruction() string {
	return "You are a negotiation coach observing a training session. " +
		"Give exactly ONE short tactical move the trainee should make next. One or two sentences."
}

func coachPrompt(sc *domain.Scenario, transcript []domain.Turn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Context: %s\n\n", sc.UserBrief)
	b.WriteString("Transcript so far:\n")
	writeTranscript(&b, transcript)
	return b.String()
}

// gradingPrompt builds the assessment request: brief plus full transcript.
func gradingPrompt(sc *domain.Scenario, transcript []domain.Turn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Context: %s\n\n", sc.UserBrief)
	b.WriteString("Transcript:\n")
	writeTranscript(&b, transcript)
	b.WriteString("\nTask: Grade the trainee's negotiation performance. ")
	fmt.Fprintf(&b, "total_score is 0-%d overall. ", domain.MaxTotalScore)
	fmt.Fprintf(&b, "commercial (0-%d) grades commercial outcome, ", domain.MaxCommercialScore)
	fmt.Fprintf(&b, "strategy (0-%d) grades tactics and process. ", domain.MaxStrategyScore)
	b.WriteString("feedback is 2-4 sentences of concrete coaching.")
	return b.String()
}

func writeTranscript(b *strings.Builder, transcript []domain.Turn) {
	for _, turn := range transcript {
		fmt.Fprintf(b, "%s: %s\n", turn.Role, turn.Content)
	}
}
