package session

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore guarda el token en la tabla client_tokens.
type PostgresStore struct {
	db  pgConn
	key string
}

func NewPostgresStore(pool *pgxpool.Pool, key string) *PostgresStore {
	if pool == nil {
		return nil
	}
	return newPostgresStore(pool, key)
}

func newPostgresStore(db pgConn, key string) *PostgresStore {
	key = strings.TrimSpace(key)
	if key == "" {
		key = DefaultKey
	}
	return &PostgresStore{db: db, key: key}
}

// EnsureSchema crea la tabla si no existe.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS client_tokens (
			key        TEXT PRIMARY KEY,
			token      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	_, err := s.db.Exec(ctx, query)
	return err
}

func (s *PostgresStore) Get(ctx context.Context) (string, error) {
	const query = `
		SELECT token
		FROM client_tokens
		WHERE key = $1
	`
	var token string
	err := s.db.QueryRow(ctx, query, s.key).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

func (s *PostgresStore) Set(ctx context.Context, token string) error {
	const query = `
		INSERT INTO client_tokens (key, token, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET token = EXCLUDED.token, updated_at = now()
	`
	_, err := s.db.Exec(ctx, query, s.key, strings.TrimSpace(token))
	return err
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	const query = `DELETE FROM client_tokens WHERE key = $1`
	_, err := s.db.Exec(ctx, query, s.key)
	return err
}
