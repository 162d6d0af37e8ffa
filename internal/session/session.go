package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// State es el estado de autenticación del cliente.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Event se notifica a los observadores en cada transición.
type Event int

const (
	EventLogin Event = iota + 1
	EventLogout
	EventExpired
)

func (e Event) String() string {
	switch e {
	case EventLogin:
		return "login"
	case EventLogout:
		return "logout"
	case EventExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Listener recibe eventos de sesión. Se invoca fuera del lock.
type Listener func(Event)

// Navigator abstrae la redirección a la vista de login.
type Navigator interface {
	AtLogin() bool
	RedirectToLogin()
}

var (
	ErrEmptyToken = errors.New("session token is empty")
	ErrNoSession  = errors.New("no active session")
	ErrNotJWT     = errors.New("session token is not a jwt")
)

// Claims son los datos informativos de un token JWT. No se verifica la firma.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Session es dueña del bearer token y de su ciclo de vida.
type Session struct {
	mu        sync.RWMutex
	store     TokenStore
	token     string
	navigator Navigator
	logger    *zap.Logger

	listenersMu sync.Mutex
	listeners   map[uint64]Listener
	nextID      uint64
}

type Option func(*Session)

func WithNavigator(n Navigator) Option {
	return func(s *Session) {
		s.navigator = n
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(store TokenStore, opts ...Option) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	s := &Session{
		store:     store,
		logger:    zap.NewNop(),
		listeners: make(map[uint64]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load recupera el token persistido, si existe.
func (s *Session) Load(ctx context.Context) error {
	token, err := s.store.Get(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.token = strings.TrimSpace(token)
	s.mu.Unlock()
	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) State() State {
	if s.Token() == "" {
		return Anonymous
	}
	return Authenticated
}

// Authenticate guarda el token recibido en login o registro.
func (s *Session) Authenticate(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.store.Set(ctx, token); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.notify(EventLogin)
	return nil
}

// Logout limpia la sesión. Llamarlo sin sesión activa no es un error.
func (s *Session) Logout(ctx context.Context) error {
	wasActive := s.reset()
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	if wasActive {
		s.notify(EventLogout)
	}
	return nil
}

// Expire se ejecuta ante un 401 en una llamada autenticada: limpia el token,
// notifica EventExpired una vez y redirige al login si no se está ahí.
func (s *Session) Expire(ctx context.Context) {
	s.reset()
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Warn("clear expired token failed", zap.Error(err))
	}
	s.logger.Warn("session expired")
	s.notify(EventExpired)
	if s.navigator != nil && !s.navigator.AtLogin() {
		s.navigator.RedirectToLogin()
	}
}

// Subscribe registra un observador y devuelve la función para darlo de baja.
func (s *Session) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// Claims decodifica el token sin verificar la firma; solo es informativo.
func (s *Session) Claims() (Claims, error) {
	token := s.Token()
	if token == "" {
		return Claims{}, ErrNoSession
	}
	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &rc); err != nil {
		return Claims{}, ErrNotJWT
	}
	claims := Claims{Subject: rc.Subject}
	if rc.IssuedAt != nil {
		claims.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		claims.ExpiresAt = rc.ExpiresAt.Time
	}
	return claims, nil
}

func (s *Session) reset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	wasActive := s.token != ""
	s.token = ""
	return wasActive
}

func (s *Session) notify(ev Event) {
	s.listenersMu.Lock()
	snapshot := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		snapshot = append(snapshot, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range snapshot {
		fn(ev)
	}
}
