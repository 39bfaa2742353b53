// Package llm is the boundary to the generative completion service.
package llm

import (
	"context"
	"errors"

	"github.com/akorchagin/procsim/internal/domain"
)

// ErrUnavailable marks any completion-service failure: transport errors,
// quota rejects, empty candidates, malformed structured output. Callers
// surface it once to the user and never retry automatically.
var ErrUnavailable = errors.New("completion service unavailable")

// Client is the completion-service contract. Two modes are used: free-text
// chat replies and schema-constrained scorecard grading.
type Client interface {
	// Reply sends the role-tagged history plus a system instruction and
	// returns the model's free-text reply.
	Reply(ctx context.Context, systemInstruction string, history []domain.Turn, temperature float32) (string, error)

	// Score requests a structured scorecard for the given grading prompt.
	// The returned scorecard is raw model output: callers must clamp it.
	Score(ctx context.Context, prompt string) (domain.Scorecard, error)
}
