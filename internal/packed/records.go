package packed

import "schedule-bot/internal/models"

// Количество полей в записях выгрузки
const (
	SubjectFields    = 4
	ScheduleFields   = 4
	MeetingFields    = 4
	AssignmentFields = 2
)

// UnpackSubject: id, title, group, optional
func UnpackSubject(f *Fields) (models.Subject, error) {
	var s models.Subject

	id, err := f.Int("id")
	if err != nil {
		return s, err
	}
	title, err := f.Next("title")
	if err != nil {
		return s, err
	}
	token, err := f.Next("group")
	if err != nil {
		return s, err
	}
	group, err := models.ParseGroup(token)
	if err != nil {
		return s, err
	}
	optional, err := f.Next("optional")
	if err != nil {
		return s, err
	}

	return models.Subject{
		ID:       id,
		Title:    title,
		Group:    group,
		Optional: optional == "true",
	}, nil
}

// UnpackScheduleEntry: weekday, subject id, parity, slot
func UnpackScheduleEntry(f *Fields) (models.ScheduleEntry, error) {
	var e models.ScheduleEntry

	token, err := f.Next("day")
	if err != nil {
		return e, err
	}
	day, err := models.ParseWeekday(token)
	if err != nil {
		return e, err
	}
	subjectID, err := f.Int("subject_id")
	if err != nil {
		return e, err
	}
	if token, err = f.Next("repeat"); err != nil {
		return e, err
	}
	parity, err := models.ParseWeekParity(token)
	if err != nil {
		return e, err
	}
	if token, err = f.Next("slot"); err != nil {
		return e, err
	}
	slot, err := models.ParseSlot(token)
	if err != nil {
		return e, err
	}

	return models.ScheduleEntry{
		SubjectID: subjectID,
		Weekday:   day,
		Parity:    parity,
		Slot:      slot,
	}, nil
}

// UnpackMeeting: id, name, group, link
func UnpackMeeting(f *Fields) (models.Meeting, error) {
	var m models.Meeting

	id, err := f.Int("id")
	if err != nil {
		return m, err
	}
	name, err := f.Next("name")
	if err != nil {
		return m, err
	}
	token, err := f.Next("group")
	if err != nil {
		return m, err
	}
	group, err := models.ParseGroup(token)
	if err != nil {
		return m, err
	}
	link, err := f.Next("link")
	if err != nil {
		return m, err
	}

	return models.Meeting{ID: id, Name: name, Group: group, Link: link}, nil
}

// UnpackAssignment: meeting id, subject id
func UnpackAssignment(f *Fields) (models.Assignment, error) {
	meetingID, err := f.Int("meeting_id")
	if err != nil {
		return models.Assignment{}, err
	}
	subjectID, err := f.Int("subject_id")
	if err != nil {
		return models.Assignment{}, err
	}
	return models.Assignment{MeetingID: meetingID, SubjectID: subjectID}, nil
}
