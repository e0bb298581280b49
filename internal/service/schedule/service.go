package schedule_service

import (
	"context"
	"errors"
	"fmt"
	"schedule-bot/internal/models"
	"schedule-bot/internal/repository"
	"schedule-bot/internal/service"

	"go.uber.org/zap"
)

type scheduleService struct {
	subjectRepo repository.SubjectRepository
	chatRepo    repository.ChatRepository
	log         *zap.Logger
}

func NewScheduleService(subjectRepo repository.SubjectRepository, chatRepo repository.ChatRepository, log *zap.Logger) service.ScheduleService {
	return &scheduleService{
		subjectRepo: subjectRepo,
		chatRepo:    chatRepo,
		log:         log,
	}
}

func (s *scheduleService) Resolve(q service.Query, group models.Group) (models.LookupKey, error) {
	return Resolve(q, group)
}

// FindSubjects - пустой список без ошибки означает "в эту пару ничего нет"
func (s *scheduleService) FindSubjects(ctx context.Context, key models.LookupKey) ([]models.Subject, error) {
	rows, err := s.subjectRepo.FindCandidates(ctx, key.Weekday, key.Slot, key.Parity, key.Group)
	if err != nil {
		return nil, err
	}
	return Select(rows, key), nil
}

func (s *scheduleService) SubjectsForChat(ctx context.Context, chatID int64, q service.Query) (*service.Answer, error) {
	// Сначала разбираем ввод: ошибка в токене важнее ненастроенной группы
	key, err := Resolve(q, "")
	if err != nil {
		return nil, err
	}

	group, err := s.chatRepo.GetGroup(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrNoGroupConfigured
		}
		return nil, fmt.Errorf("get group for chat: %w", err)
	}
	key.Group = group

	return s.answer(ctx, key)
}

func (s *scheduleService) SubjectsForGroup(ctx context.Context, group models.Group, q service.Query) (*service.Answer, error) {
	key, err := Resolve(q, group)
	if err != nil {
		return nil, err
	}
	return s.answer(ctx, key)
}

func (s *scheduleService) answer(ctx context.Context, key models.LookupKey) (*service.Answer, error) {
	subjects, err := s.FindSubjects(ctx, key)
	if err != nil {
		return nil, err
	}

	s.log.Debug("subjects resolved",
		zap.Stringer("weekday", key.Weekday),
		zap.Stringer("slot", key.Slot),
		zap.Stringer("parity", key.Parity),
		zap.Stringer("group", key.Group),
		zap.Int("found", len(subjects)),
	)

	return &service.Answer{Key: key, Subjects: subjects}, nil
}
