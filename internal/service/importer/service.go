package importer_service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"path/filepath"
	"schedule-bot/internal/packed"
	"schedule-bot/internal/repository"
	"schedule-bot/internal/service"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Имена файлов выгрузки внутри каталога
const (
	SubjectsFile    = "subjects.packed"
	ScheduleFile    = "schedule.packed"
	MeetingsFile    = "meetings.packed"
	AssignmentsFile = "assigned.packed"
)

type importService struct {
	subjectRepo  repository.SubjectRepository
	scheduleRepo repository.ScheduleRepository
	meetingRepo  repository.MeetingRepository
	log          *zap.Logger
	entropy      *rand.Rand
}

func NewImportService(
	subjectRepo repository.SubjectRepository,
	scheduleRepo repository.ScheduleRepository,
	meetingRepo repository.MeetingRepository,
	log *zap.Logger,
) service.ImportService {
	return &importService{
		subjectRepo:  subjectRepo,
		scheduleRepo: scheduleRepo,
		meetingRepo:  meetingRepo,
		log:          log,
		entropy:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Import грузит предметы, затем расписание, затем (если есть) встречи.
// Ошибка вставки одной записи логируется и не останавливает загрузку.
func (s *importService) Import(ctx context.Context, dataDir string) (*service.ImportReport, error) {
	report := &service.ImportReport{
		RunID: ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String(),
	}
	log := s.log.With(zap.String("run_id", report.RunID))

	// Пропущенные кодеком чанки тоже считаются неудачными записями
	subjects, skipped, err := packed.UnpackFile(filepath.Join(dataDir, SubjectsFile), packed.SubjectFields, "subject", packed.UnpackSubject, log)
	if err != nil {
		return nil, err
	}
	report.Failed += skipped
	log.Debug("read subjects", zap.Int("count", len(subjects)), zap.Int("skipped", skipped))

	schedule, skipped, err := packed.UnpackFile(filepath.Join(dataDir, ScheduleFile), packed.ScheduleFields, "schedule", packed.UnpackScheduleEntry, log)
	if err != nil {
		return nil, err
	}
	report.Failed += skipped
	log.Debug("read schedule", zap.Int("count", len(schedule)), zap.Int("skipped", skipped))

	// встреч может не быть вовсе
	meetings, skipped, err := packed.UnpackFile(filepath.Join(dataDir, MeetingsFile), packed.MeetingFields, "meeting", packed.UnpackMeeting, log)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	report.Failed += skipped

	assignments, skipped, err := packed.UnpackFile(filepath.Join(dataDir, AssignmentsFile), packed.AssignmentFields, "assignment", packed.UnpackAssignment, log)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	report.Failed += skipped

	for i := range subjects {
		if err := s.subjectRepo.Insert(ctx, &subjects[i]); err != nil {
			log.Error("failed to add subject", zap.Int64("id", subjects[i].ID), zap.Error(err))
			report.Failed++
			continue
		}
		report.Subjects++
	}

	for i := range schedule {
		if err := s.scheduleRepo.Insert(ctx, &schedule[i]); err != nil {
			log.Error("failed to add schedule entry", zap.Int64("subject_id", schedule[i].SubjectID), zap.Error(err))
			report.Failed++
			continue
		}
		report.Schedule++
	}

	for i := range meetings {
		if err := s.meetingRepo.Insert(ctx, &meetings[i]); err != nil {
			log.Error("failed to add meeting", zap.Int64("id", meetings[i].ID), zap.Error(err))
			report.Failed++
			continue
		}
		report.Meetings++
	}

	for i := range assignments {
		if err := s.meetingRepo.Assign(ctx, &assignments[i]); err != nil {
			log.Error("failed to assign meeting",
				zap.Int64("meeting_id", assignments[i].MeetingID),
				zap.Int64("subject_id", assignments[i].SubjectID),
				zap.Error(err),
			)
			report.Failed++
			continue
		}
		report.Assignments++
	}

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("import interrupted: %w", err)
	}

	log.Info("import finished",
		zap.Int("subjects", report.Subjects),
		zap.Int("schedule", report.Schedule),
		zap.Int("meetings", report.Meetings),
		zap.Int("assignments", report.Assignments),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}
