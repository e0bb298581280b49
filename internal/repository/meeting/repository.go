package meeting

import (
	"context"
	"fmt"
	"schedule-bot/internal/models"
	"schedule-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type meetingRepository struct {
	db *sqlx.DB
}

func NewMeetingRepository(db *sqlx.DB) repository.MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) Insert(ctx context.Context, meeting *models.Meeting) error {
	query := r.db.Rebind(`INSERT INTO meetings (id, name, gang, link) VALUES (?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query, meeting.ID, meeting.Name, string(meeting.Group), meeting.Link)
	if err != nil {
		return fmt.Errorf("insert meeting %d: %w", meeting.ID, err)
	}
	return nil
}

func (r *meetingRepository) Assign(ctx context.Context, assignment *models.Assignment) error {
	query := r.db.Rebind(`INSERT INTO assigned (meeting_id, subject_id) VALUES (?, ?)`)

	_, err := r.db.ExecContext(ctx, query, assignment.MeetingID, assignment.SubjectID)
	if err != nil {
		return fmt.Errorf("assign meeting %d to subject %d: %w", assignment.MeetingID, assignment.SubjectID, err)
	}
	return nil
}

func (r *meetingRepository) GetBySubjectID(ctx context.Context, subjectID int64) ([]models.Meeting, error) {
	query := r.db.Rebind(`
        SELECT m.id, m.name, m.gang, m.link
        FROM meetings m
        JOIN assigned a ON a.meeting_id = m.id
        WHERE a.subject_id = ?
        ORDER BY m.id
    `)

	meetings := []models.Meeting{}
	if err := r.db.SelectContext(ctx, &meetings, query, subjectID); err != nil {
		return nil, fmt.Errorf("get meetings for subject %d: %w", subjectID, err)
	}
	return meetings, nil
}
