package domain

import (
	"time"
)

// MinTurnsForAssessment is the minimum transcript length before an
// assessment may be requested.
const MinTurnsForAssessment = 2

// SessionState describes where a session is in its lifecycle.
type SessionState string

const (
	// StateIdle means no scenario has been started (or the session was reset).
	StateIdle SessionState = "idle"
	// StateActive means a scenario is running and the transcript is growing.
	StateActive SessionState = "active"
	// StateAssessed means a scorecard has been produced for the current run.
	StateAssessed SessionState = "assessed"
)

// Session holds per-user mutable negotiation state. One session per user;
// if several tabs share an identity, last write wins.
type Session struct {
	UserID         string
	Authenticated  bool
	ScenarioID     int // 0 = no active scenario
	Transcript     []Turn
	LastTip        string
	LastAssessment *Scorecard
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Start begins a new scenario run: the transcript, tip and any prior
// assessment are cleared. Authentication is untouched.
func (s *Session) Start(scenarioID int) {
	s.ScenarioID = scenarioID
	s.Transcript = nil
	s.LastTip = ""
	s.LastAssessment = nil
}

// AppendTurn adds a turn to the end of the transcript. Turns are recorded
// strictly in call order and prior turns are never modified.
func (s *Session) AppendTurn(role Role, content string) {
	s.Transcript = append(s.Transcript, Turn{Role: role, Content: content})
}

// Reset returns the session to idle: no scenario, empty transcript, no tip,
// no assessment. Authentication is kept. Reset is idempotent.
func (s *Session) Reset() {
	s.ScenarioID = 0
	s.Transcript = nil
	s.LastTip = ""
	s.LastAssessment = nil
}

// HasScenario reports whether a scenario is active.
func (s *Session) HasScenario() bool {
	return s.ScenarioID != 0
}

// CanAssess reports whether the transcript is long enough for an assessment.
func (s *Session) CanAssess() bool {
	return len(s.Transcript) >= MinTurnsForAssessment
}

// State derives the lifecycle state from the session's contents.
func (s *Session) State() SessionState {
	switch {
	case !s.HasScenario():
		return StateIdle
	case s.LastAssessment != nil:
		return StateAssessed
	default:
		return StateActive
	}
}
