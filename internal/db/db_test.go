package db

import (
	"context"
	"testing"

	"localitybay/internal/config"
)

func TestNewPool_RequiresDatabaseURL(t *testing.T) {
	if _, err := NewPool(context.Background(), &config.Config{}); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}
	if _, err := NewPool(context.Background(), nil); err == nil {
		t.Fatalf("expected error with nil config")
	}
}

func TestNewPool_RejectsInvalidURL(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "postgres://%zz"}
	if _, err := NewPool(context.Background(), cfg); err == nil {
		t.Fatalf("expected parse error")
	}
}
