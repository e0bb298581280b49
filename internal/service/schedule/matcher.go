package schedule_service

import "schedule-bot/internal/models"

// Matches - строка расписания подходит под ключ
func Matches(row models.ScheduledSubject, key models.LookupKey) bool {
	return row.Weekday == key.Weekday &&
		row.ScheduleEntry.Slot == key.Slot &&
		row.Parity.Covers(key.Parity) &&
		row.Subject.Group == key.Group
}

// Select оставляет подходящие предметы, порядок сохраняется
func Select(rows []models.ScheduledSubject, key models.LookupKey) []models.Subject {
	subjects := make([]models.Subject, 0, len(rows))
	for _, row := range rows {
		if Matches(row, key) {
			subjects = append(subjects, row.Subject)
		}
	}
	return subjects
}
