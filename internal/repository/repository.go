package repository

import (
	"context"
	"errors"
	"schedule-bot/internal/models"
)

// ErrNotFound - запись не найдена
var ErrNotFound = errors.New("not found")

type SubjectRepository interface {
	Insert(ctx context.Context, subject *models.Subject) error
	// Кандидаты по дню, паре, чётности (вместе с Both) и группе,
	// в порядке добавления строк расписания
	FindCandidates(ctx context.Context, day models.Weekday, slot models.Slot, parity models.WeekParity, group models.Group) ([]models.ScheduledSubject, error)
}

type ScheduleRepository interface {
	Insert(ctx context.Context, entry *models.ScheduleEntry) error
}

type MeetingRepository interface {
	Insert(ctx context.Context, meeting *models.Meeting) error
	Assign(ctx context.Context, assignment *models.Assignment) error
	GetBySubjectID(ctx context.Context, subjectID int64) ([]models.Meeting, error)
}

type ChatRepository interface {
	// GetGroup возвращает ErrNotFound, если чат ещё не настроен
	GetGroup(ctx context.Context, chatID int64) (models.Group, error)
	Upsert(ctx context.Context, chatID int64, group models.Group) error
}
