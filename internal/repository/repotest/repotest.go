// Package repotest поднимает временную SQLite базу для тестов репозиториев.
package repotest

import (
	"context"
	"path/filepath"
	"testing"

	"schedule-bot/internal/models/config"
	database "schedule-bot/pkg"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := database.New(config.DatabaseConfig{Driver: "sqlite", Path: path}, zap.NewNop())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
