package database

import (
	"context"
	"fmt"
	"schedule-bot/internal/models/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc регистрирует драйвер как "sqlite", sqlx знает только "sqlite3"
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// New подключается к БД по конфигу: postgres в проде, sqlite локально
func New(cfg config.DatabaseConfig, log *zap.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Connect(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// одна запись за раз, иначе SQLITE_BUSY
		db.SetMaxOpenConns(1)
		log.Info("🗄️ Подключено к SQLite", zap.String("path", cfg.Path))
	} else {
		log.Info("🗄️ Подключено к PostgreSQL",
			zap.String("host", cfg.Host),
			zap.Int("port", cfg.Port),
			zap.String("db", cfg.Name),
		)
	}
	return db, nil
}

// Migrate создаёт таблицы, если их ещё нет
func Migrate(ctx context.Context, db *sqlx.DB) error {
	schema, ok := schemas[db.DriverName()]
	if !ok {
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
