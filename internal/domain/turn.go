package domain

// Role identifies who spoke a turn.
type Role string

const (
	// RoleUser is the trainee.
	RoleUser Role = "user"
	// RoleCounterparty is the AI negotiation counterparty.
	RoleCounterparty Role = "counterparty"
)

// Turn is a single chat message in a negotiation transcript.
// Turns are immutable once appended; ordering is chronological.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
