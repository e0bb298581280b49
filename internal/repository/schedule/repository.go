package schedule

import (
	"context"
	"fmt"
	"schedule-bot/internal/models"
	"schedule-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type scheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Insert(ctx context.Context, entry *models.ScheduleEntry) error {
	query := r.db.Rebind(`
        INSERT INTO schedule (day, repeat, slot, subject_id)
        VALUES (?, ?, ?, ?)
    `)

	_, err := r.db.ExecContext(ctx, query,
		int64(entry.Weekday),
		int64(entry.Parity),
		int64(entry.Slot),
		entry.SubjectID,
	)
	if err != nil {
		return fmt.Errorf("insert schedule %s/%s/%s for subject %d: %w",
			entry.Weekday, entry.Parity, entry.Slot, entry.SubjectID, err)
	}
	return nil
}
