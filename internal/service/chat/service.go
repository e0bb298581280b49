package chat_service

import (
	"context"
	"errors"
	"schedule-bot/internal/models"
	"schedule-bot/internal/repository"
	"schedule-bot/internal/service"
)

type chatService struct {
	chatRepo repository.ChatRepository
}

func NewChatService(chatRepo repository.ChatRepository) service.ChatService {
	return &chatService{chatRepo: chatRepo}
}

// ConfigureGroup привязывает чат к группе (создаёт или обновляет)
func (s *chatService) ConfigureGroup(ctx context.Context, chatID int64, token string) (models.Group, error) {
	group, err := models.ParseGroup(token)
	if err != nil {
		return "", &service.InputError{Field: "group", Value: token, Err: err}
	}

	if err := s.chatRepo.Upsert(ctx, chatID, group); err != nil {
		return "", err
	}
	return group, nil
}

func (s *chatService) GroupForChat(ctx context.Context, chatID int64) (models.Group, error) {
	group, err := s.chatRepo.GetGroup(ctx, chatID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", service.ErrNoGroupConfigured
	}
	return group, err
}
