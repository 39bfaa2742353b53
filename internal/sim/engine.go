// Package sim drives the negotiation role-play: counterparty replies,
// coaching tips and the end-of-session assessment.
package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/akorchagin/procsim/internal/catalog"
	"github.com/akorchagin/procsim/internal/domain"
	"github.com/akorchagin/procsim/internal/llm"
)

var (
	// ErrNoScenario is returned when an operation needs an active scenario.
	ErrNoScenario = errors.New("no active scenario")
	// ErrEmptyTranscript is returned when a tip is requested before any turn.
	ErrEmptyTranscript = errors.New("transcript is empty")
	// ErrInsufficientData is returned when an assessment is requested before
	// the transcript reaches the minimum length.
	ErrInsufficientData = errors.New("insufficient data for assessment")
)

// replyTemperature balances counterparty consistency against variety.
const replyTemperature = float32(0.65)

// Engine runs negotiation sessions against the completion service.
type Engine struct {
	llm     llm.Client
	catalog *catalog.Catalog
}

// NewEngine creates an engine over the given completion client and catalog.
func NewEngine(client llm.Client, cat *catalog.Catalog) *Engine {
	return &Engine{llm: client, catalog: cat}
}

// Respond sends the user's message to the counterparty and appends both the
// user turn and the reply to the session transcript. The operation is
// all-or-nothing: on any completion-service failure the session is left
// exactly as it was.
func (e *Engine) Respond(ctx context.Context, session *domain.Session, message string) (domain.Turn, error) {
	sc, err := e.scenario(session)
	if err != nil {
		return domain.Turn{}, err
	}

	history := make([]domain.Turn, 0, len(session.Transcript)+1)
	history = append(history, session.Transcript...)
	history = append(history, domain.Turn{Role: domain.RoleUser, Content: message})

	reply, err := e.llm.Reply(ctx, counterpartyInstruction(sc), history, replyTemperature)
	if err != nil {
		return domain.Turn{}, fmt.Errorf("counterparty reply: %w", err)
	}

	session.AppendTurn(domain.RoleUser, message)
	session.AppendTurn(domain.RoleCounterparty, reply)
	return domain.Turn{Role: domain.RoleCounterparty, Content: reply}, nil
}

// Tip produces one short tactical coaching tip for the negotiation so far
// and records it on the session.
func (e *Engine) Tip(ctx context.Context, session *domain.Session) (string, error) {
	sc, err := e.scenario(session)
	if err != nil {
		return "", err
	}
	if len(session.Transcript) == 0 {
		return "", ErrEmptyTranscript
	}

	tip, err := e.llm.Reply(ctx, coachInstruction(), []domain.Turn{
		{Role: domain.RoleUser, Content: coachPrompt(sc, session.Transcript)},
	}, replyTemperature)
	if err != nil {
		return "", fmt.Errorf("coach tip: %w", err)
	}

	session.LastTip = tip
	return tip, nil
}

// Assess grades the full transcript and records the clamped scorecard on the
// session. Requires at least domain.MinTurnsForAssessment turns. Nothing is
// recorded on failure.
func (e *Engine) Assess(ctx context.Context, session *domain.Session) (domain.Scorecard, error) {
	sc, err := e.scenario(session)
	if err != nil {
		return domain.Scorecard{}, err
	}
	if !session.CanAssess() {
		return domain.Scorecard{}, ErrInsufficientData
	}

	card, err := e.llm.Score(ctx, gradingPrompt(sc, session.Transcript))
	if err != nil {
		return domain.Scorecard{}, fmt.Errorf("assessment: %w", err)
	}

	// The grading model is not bounded; clamp unconditionally.
	card.Clamp()
	session.LastAssessment = &card
	return card, nil
}

func (e *Engine) scenario(session *domain.Session) (*domain.Scenario, error) {
	if !session.HasScenario() {
		return nil, ErrNoScenario
	}
	sc, err := e.catalog.Get(session.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("resolve scenario: %w", err)
	}
	return sc, nil
}
