package chat

import (
	"context"
	"testing"

	"schedule-bot/internal/models"
	"schedule-bot/internal/repository"
	"schedule-bot/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGroup_NotFound(t *testing.T) {
	chats := NewChatRepository(repotest.NewDB(t))

	_, err := chats.GetGroup(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpsertAndGet(t *testing.T) {
	ctx := context.Background()
	chats := NewChatRepository(repotest.NewDB(t))

	require.NoError(t, chats.Upsert(ctx, 42, models.K25))
	// повторная настройка не должна падать на уникальности
	require.NoError(t, chats.Upsert(ctx, 42, models.K25))

	group, err := chats.GetGroup(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, models.K25, group)
}
