package session

import (
	"context"
	"strings"
	"sync"
)

// DefaultKey es la clave fija bajo la que se persiste el token.
const DefaultKey = "auth_token"

// TokenStore persiste el bearer token entre reinicios del proceso.
// Get devuelve "" sin error cuando no hay token guardado y Clear sobre
// un token inexistente no es un error.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MemoryStore guarda el token en memoria; no sobrevive al proceso.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
