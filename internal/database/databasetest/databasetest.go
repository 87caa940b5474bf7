// Package databasetest provides database fixtures for tests.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"

	"giftshop/internal/database"
)

// NewProvider returns a Provider backed by a fresh database file in a
// per-test temporary directory, with the schema applied.
func NewProvider(t *testing.T) *database.Provider {
	t.Helper()

	p := database.NewProvider(filepath.Join(t.TempDir(), "test.db"))
	if err := database.EnsureSchema(context.Background(), p); err != nil {
		t.Fatalf("ensuring schema: %v", err)
	}
	return p
}
