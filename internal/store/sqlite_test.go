package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/akorchagin/procsim/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Failed to close store: %v", err)
		}
	})
	return repo
}

func TestUserRoundTrip(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	got, err := repo.GetUser(ctx, "anon_missing")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got != nil {
		t.Error("Expected nil for unknown user")
	}

	now := time.Now()
	user := &domain.User{
		UserID:     "anon_abc",
		Username:   "anon-12345678",
		LastSeenAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := repo.UpsertUser(ctx, user); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}

	got, err = repo.GetUser(ctx, "anon_abc")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got == nil || got.Username != "anon-12345678" {
		t.Errorf("Unexpected user: %+v", got)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	got, err := repo.GetSession(ctx, "anon_abc")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got != nil {
		t.Error("Expected nil for unknown session")
	}

	session := &domain.Session{
		UserID:        "anon_abc",
		Authenticated: true,
		ScenarioID:    8,
		Transcript: []domain.Turn{
			{Role: domain.RoleUser, Content: "We dispute the charges."},
			{Role: domain.RoleCounterparty, Content: "The terms are contractual."},
		},
		LastTip:        "Anchor with clause 12.",
		LastAssessment: &domain.Scorecard{TotalScore: 70, Commercial: 30, Strategy: 28, Feedback: "ok"},
		CreatedAt:      time.Now(),
	}
	if err := repo.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	got, err = repo.GetSession(ctx, "anon_abc")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected stored session")
	}
	if !got.Authenticated || got.ScenarioID != 8 {
		t.Errorf("Unexpected session: %+v", got)
	}
	if len(got.Transcript) != 2 || got.Transcript[1].Role != domain.RoleCounterparty {
		t.Errorf("Transcript did not survive: %+v", got.Transcript)
	}
	if got.LastTip != session.LastTip {
		t.Errorf("Expected tip %q, got %q", session.LastTip, got.LastTip)
	}
	if got.LastAssessment == nil || got.LastAssessment.TotalScore != 70 {
		t.Errorf("Assessment did not survive: %+v", got.LastAssessment)
	}
}

func TestSaveSessionLastWriteWins(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	first := &domain.Session{UserID: "anon_abc", ScenarioID: 1, CreatedAt: time.Now()}
	if err := repo.SaveSession(ctx, first); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	second := &domain.Session{UserID: "anon_abc", ScenarioID: 2, CreatedAt: time.Now()}
	if err := repo.SaveSession(ctx, second); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	got, err := repo.GetSession(ctx, "anon_abc")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.ScenarioID != 2 {
		t.Errorf("Expected last write to win, got scenario %d", got.ScenarioID)
	}
}

func TestUpdateLastSeen(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	created := time.Now().Add(-time.Hour).Truncate(time.Second)
	user := &domain.User{
		UserID:     "anon_abc",
		Username:   "anon-12345678",
		LastSeenAt: created,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
	if err := repo.UpsertUser(ctx, user); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}

	seen := time.Now().Truncate(time.Second)
	if err := repo.UpdateLastSeen(ctx, "anon_abc", seen); err != nil {
		t.Fatalf("UpdateLastSeen failed: %v", err)
	}

	got, err := repo.GetUser(ctx, "anon_abc")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if !got.LastSeenAt.Equal(seen) {
		t.Errorf("Expected last seen %v, got %v", seen, got.LastSeenAt)
	}

	// Unknown users are logged, not errors.
	if err := repo.UpdateLastSeen(ctx, "anon_missing", seen); err != nil {
		t.Fatalf("UpdateLastSeen for unknown user failed: %v", err)
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	session := &domain.Session{UserID: "anon_abc", ScenarioID: 1, CreatedAt: time.Now()}
	if err := repo.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	// Nothing is older than an hour yet.
	n, err := repo.CleanupExpiredSessions(ctx, time.Hour)
	if err != nil {
		t.Fatalf("CleanupExpiredSessions failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 expired sessions, got %d", n)
	}

	// With a zero TTL everything just written has expired.
	n, err = repo.CleanupExpiredSessions(ctx, -time.Second)
	if err != nil {
		t.Fatalf("CleanupExpiredSessions failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 expired session, got %d", n)
	}
}

func TestIsBusyError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("SQLITE_BUSY"), true},
		{fmt.Errorf("exec: %w", errors.New("database is locked (5) (SQLITE_BUSY)")), true},
		{errors.New("database is locked"), true},
		{errors.New("no such table"), false},
	}
	for _, tt := range tests {
		if got := isBusyError(tt.err); got != tt.want {
			t.Errorf("isBusyError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
