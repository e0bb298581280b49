package chat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"schedule-bot/internal/models"
	"schedule-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type chatRepository struct {
	db *sqlx.DB
}

func NewChatRepository(db *sqlx.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) GetGroup(ctx context.Context, chatID int64) (models.Group, error) {
	query := r.db.Rebind(`SELECT gang FROM users WHERE chat_id = ?`)

	var token string
	err := r.db.GetContext(ctx, &token, query, chatID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repository.ErrNotFound
		}
		return "", fmt.Errorf("get group for chat %d: %w", chatID, err)
	}

	group, err := models.ParseGroup(token)
	if err != nil {
		return "", fmt.Errorf("stored group for chat %d: %w", chatID, err)
	}
	return group, nil
}

// Upsert привязывает чат к группе, перезаписывая прежнюю
func (r *chatRepository) Upsert(ctx context.Context, chatID int64, group models.Group) error {
	query := r.db.Rebind(`
        INSERT INTO users (chat_id, gang) VALUES (?, ?)
        ON CONFLICT (chat_id) DO UPDATE SET gang = excluded.gang
    `)

	if _, err := r.db.ExecContext(ctx, query, chatID, string(group)); err != nil {
		return fmt.Errorf("upsert group for chat %d: %w", chatID, err)
	}
	return nil
}
