package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/akorchagin/procsim/internal/domain"
)

type fakeRepo struct {
	mu            sync.Mutex
	users         map[string]*domain.User
	lastSeenCalls int
	lastSeenUser  string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*domain.User)}
}

func (f *fakeRepo) GetUser(_ context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user := f.users[userID]
	if user == nil {
		return nil, nil
	}
	copy := *user
	return &copy, nil
}

func (f *fakeRepo) UpsertUser(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy := *user
	f.users[user.UserID] = &copy
	return nil
}

func (f *fakeRepo) UpdateLastSeen(_ context.Context, userID string, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSeenCalls++
	f.lastSeenUser = userID
	return nil
}

func (f *fakeRepo) GetSession(_ context.Context, _ string) (*domain.Session, error) {
	return nil, nil
}
func (f *fakeRepo) SaveSession(_ context.Context, _ *domain.Session) error { return nil }
func (f *fakeRepo) CleanupExpiredSessions(_ context.Context, _ time.Duration) (int64, error) {
	return 0, nil
}
func (f *fakeRepo) Ping(_ context.Context) error { return nil }
func (f *fakeRepo) Close() error                 { return nil }

func (f *fakeRepo) lastSeen() (int, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastSeenCalls, f.lastSeenUser
}

const testAnonID = "anon_0123456789abcdef0123456789abcdef"

func serveWithCookie(t *testing.T, mw func(http.Handler) http.Handler, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	var gotUserID string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: AnonCookieName, Value: cookie})
	}
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code == http.StatusOK && gotUserID == "" {
		t.Error("Expected user ID in request context")
	}
	return rr
}

func TestMiddlewareCreatesUserOnFirstContact(t *testing.T) {
	repo := newFakeRepo()
	mw := Middleware(repo, true)

	rr := serveWithCookie(t, mw, testAnonID)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	user, err := repo.GetUser(context.Background(), testAnonID)
	if err != nil || user == nil {
		t.Fatalf("Expected user materialized, got %v, %v", user, err)
	}
	if calls, _ := repo.lastSeen(); calls != 0 {
		t.Errorf("First contact must not update last seen, got %d calls", calls)
	}
}

func TestMiddlewareTouchesLastSeenForReturningUser(t *testing.T) {
	repo := newFakeRepo()
	mw := Middleware(repo, true)

	serveWithCookie(t, mw, testAnonID)
	serveWithCookie(t, mw, testAnonID)
	serveWithCookie(t, mw, testAnonID)

	calls, userID := repo.lastSeen()
	if calls != 2 {
		t.Errorf("Expected 2 last-seen updates for returning requests, got %d", calls)
	}
	if userID != testAnonID {
		t.Errorf("Expected last seen for %s, got %s", testAnonID, userID)
	}
}

func TestMiddlewareRejectsMalformedCookie(t *testing.T) {
	repo := newFakeRepo()
	mw := Middleware(repo, true)

	rr := serveWithCookie(t, mw, "not-a-valid-id")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200 with a fresh identity, got %d", rr.Code)
	}

	// A fresh identity was minted instead of trusting the bad value.
	if _, err := repo.GetUser(context.Background(), "not-a-valid-id"); err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.users["not-a-valid-id"]; ok {
		t.Error("Malformed cookie value must not become a user ID")
	}
	if len(repo.users) != 1 {
		t.Errorf("Expected exactly one minted user, got %d", len(repo.users))
	}
}
