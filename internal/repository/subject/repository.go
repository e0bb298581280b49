package subject

import (
	"context"
	"fmt"
	"schedule-bot/internal/models"
	"schedule-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type subjectRepository struct {
	db *sqlx.DB
}

func NewSubjectRepository(db *sqlx.DB) repository.SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Insert(ctx context.Context, subject *models.Subject) error {
	query := r.db.Rebind(`
        INSERT INTO subjects (id, title, gang, optional)
        VALUES (?, ?, ?, ?)
    `)

	_, err := r.db.ExecContext(ctx, query,
		subject.ID,
		subject.Title,
		string(subject.Group),
		subject.Optional,
	)
	if err != nil {
		return fmt.Errorf("insert subject %d: %w", subject.ID, err)
	}
	return nil
}

func (r *subjectRepository) FindCandidates(
	ctx context.Context,
	day models.Weekday,
	slot models.Slot,
	parity models.WeekParity,
	group models.Group,
) ([]models.ScheduledSubject, error) {
	query := r.db.Rebind(`
        SELECT sc.day, sc.repeat, sc.slot, sc.subject_id,
               s.id, s.title, s.gang, s.optional
        FROM schedule sc
        JOIN subjects s ON s.id = sc.subject_id
        WHERE sc.day = ?
          AND sc.slot = ?
          AND (sc.repeat = ? OR sc.repeat = ?)
          AND s.gang = ?
        ORDER BY sc.id
    `)

	rows := []models.ScheduledSubject{}
	err := r.db.SelectContext(ctx, &rows, query,
		int64(day),
		int64(slot),
		int64(parity),
		int64(models.Both),
		string(group),
	)
	if err != nil {
		return nil, fmt.Errorf("find subjects: %w", err)
	}
	return rows, nil
}
