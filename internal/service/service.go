package service

import (
	"context"
	"errors"
	"fmt"
	"schedule-bot/internal/models"
	"time"
)

// ErrNoGroupConfigured - чат ещё не выбрал группу через /config
var ErrNoGroupConfigured = errors.New("no group configured")

// InputError - пользователь передал то, что не разбирается или не резолвится
type InputError struct {
	Field string // slot, date, weekday, group
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Message - текст для пользователя
func (e *InputError) Message() string {
	return fmt.Sprintf("Invalid %s: %s.", e.Field, e.Value)
}

// Query - что спросил пользователь: пустые токены означают "сейчас"
type Query struct {
	Now  time.Time
	Slot string
	Date string
}

// Answer - результат поиска по расписанию
type Answer struct {
	Key      models.LookupKey
	Subjects []models.Subject
}

// Views - для отображения; встречи пока всегда пустые
func (a *Answer) Views() []models.SubjectView {
	views := make([]models.SubjectView, 0, len(a.Subjects))
	for _, s := range a.Subjects {
		views = append(views, models.SubjectView{Slot: a.Key.Slot, Title: s.Title, Meetings: []models.Meeting{}})
	}
	return views
}

type ScheduleService interface {
	// Resolve строит ключ поиска из времени и токенов
	Resolve(q Query, group models.Group) (models.LookupKey, error)
	FindSubjects(ctx context.Context, key models.LookupKey) ([]models.Subject, error)
	// SubjectsForChat - всё вместе: группа чата, ключ, предметы
	SubjectsForChat(ctx context.Context, chatID int64, q Query) (*Answer, error)
	SubjectsForGroup(ctx context.Context, group models.Group, q Query) (*Answer, error)
}

type ChatService interface {
	ConfigureGroup(ctx context.Context, chatID int64, token string) (models.Group, error)
	GroupForChat(ctx context.Context, chatID int64) (models.Group, error)
}

// ImportReport - сколько записей удалось загрузить
type ImportReport struct {
	RunID       string
	Subjects    int
	Schedule    int
	Meetings    int
	Assignments int
	Failed      int // пропущенные кодеком чанки и неудачные вставки
}

type ImportService interface {
	// Import читает *.packed из каталога и пишет в БД
	Import(ctx context.Context, dataDir string) (*ImportReport, error)
}
