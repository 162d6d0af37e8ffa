package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type mockNavigator struct {
	atLogin   bool
	redirects int
}

func (m *mockNavigator) AtLogin() bool { return m.atLogin }

func (m *mockNavigator) RedirectToLogin() { m.redirects++ }

type failingStore struct {
	MemoryStore
	clearErr error
}

func (f *failingStore) Clear(_ context.Context) error { return f.clearErr }

func TestSession_AuthenticatePersistsToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(store)

	var events []Event
	s.Subscribe(func(ev Event) { events = append(events, ev) })

	if err := s.Authenticate(ctx, " tok-1 "); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if s.Token() != "tok-1" || s.State() != Authenticated {
		t.Fatalf("unexpected session state: token=%q state=%v", s.Token(), s.State())
	}
	stored, _ := store.Get(ctx)
	if stored != "tok-1" {
		t.Fatalf("expected token persisted, got %q", stored)
	}
	if len(events) != 1 || events[0] != EventLogin {
		t.Fatalf("expected one login event, got %v", events)
	}
}

func TestSession_AuthenticateRejectsBlankToken(t *testing.T) {
	s := New(NewMemoryStore())
	if err := s.Authenticate(context.Background(), "   "); !errors.Is(err, ErrEmptyToken) {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}
	if s.State() != Anonymous {
		t.Fatalf("expected anonymous state")
	}
}

func TestSession_LoadRestoresToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Set(ctx, "persisted")

	s := New(store)
	if s.State() != Anonymous {
		t.Fatalf("expected anonymous before load")
	}
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Token() != "persisted" {
		t.Fatalf("expected persisted token, got %q", s.Token())
	}
}

func TestSession_LogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(store)
	_ = s.Authenticate(ctx, "tok")

	logouts := 0
	s.Subscribe(func(ev Event) {
		if ev == EventLogout {
			logouts++
		}
	})

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("first logout: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("second logout should not fail: %v", err)
	}
	if stored, _ := store.Get(ctx); stored != "" {
		t.Fatalf("expected cleared store, got %q", stored)
	}
	if logouts != 1 {
		t.Fatalf("expected a single logout event, got %d", logouts)
	}
}

func TestSession_LogoutReturnsStoreError(t *testing.T) {
	s := New(&failingStore{clearErr: errors.New("disk full")})
	if err := s.Logout(context.Background()); err == nil {
		t.Fatalf("expected store error")
	}
}

func TestSession_ExpireBroadcastsAndRedirects(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	nav := &mockNavigator{}
	s := New(store, WithNavigator(nav))
	_ = s.Authenticate(ctx, "tok")

	expired := 0
	s.Subscribe(func(ev Event) {
		if ev == EventExpired {
			expired++
		}
	})

	s.Expire(ctx)

	if s.State() != Anonymous {
		t.Fatalf("expected anonymous after expire")
	}
	if stored, _ := store.Get(ctx); stored != "" {
		t.Fatalf("expected store cleared, got %q", stored)
	}
	if expired != 1 {
		t.Fatalf("expected exactly one expired event, got %d", expired)
	}
	if nav.redirects != 1 {
		t.Fatalf("expected one redirect, got %d", nav.redirects)
	}
}

func TestSession_ExpireSkipsRedirectAtLogin(t *testing.T) {
	nav := &mockNavigator{atLogin: true}
	s := New(NewMemoryStore(), WithNavigator(nav))
	s.Expire(context.Background())
	if nav.redirects != 0 {
		t.Fatalf("expected no redirect while at login, got %d", nav.redirects)
	}
}

func TestSession_UnsubscribeStopsNotifications(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryStore())

	calls := 0
	unsubscribe := s.Subscribe(func(Event) { calls++ })
	_ = s.Authenticate(ctx, "tok")
	unsubscribe()
	unsubscribe()
	s.Expire(ctx)

	if calls != 1 {
		t.Fatalf("expected listener called once before unsubscribe, got %d", calls)
	}
}

func TestSession_IndependentSessions(t *testing.T) {
	ctx := context.Background()
	a := New(NewMemoryStore())
	b := New(NewMemoryStore())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); _ = a.Authenticate(ctx, "token-a") }()
	go func() { defer wg.Done(); _ = b.Authenticate(ctx, "token-b") }()
	wg.Wait()

	a.Expire(ctx)
	if a.Token() != "" || b.Token() != "token-b" {
		t.Fatalf("sessions leaked state: a=%q b=%q", a.Token(), b.Token())
	}
}

func TestSession_Claims(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryStore())

	if _, err := s.Claims(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	_ = s.Authenticate(ctx, signed)

	claims, err := s.Claims()
	if err != nil {
		t.Fatalf("claims: %v", err)
	}
	if claims.Subject != "u1" || !claims.ExpiresAt.Equal(exp) {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	_ = s.Authenticate(ctx, "opaque-token")
	if _, err := s.Claims(); !errors.Is(err, ErrNotJWT) {
		t.Fatalf("expected ErrNotJWT for opaque token, got %v", err)
	}
}
