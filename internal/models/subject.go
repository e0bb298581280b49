package models

// Subject - предмет из выгрузки, после загрузки не меняется
type Subject struct {
	ID       int64  `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Group    Group  `db:"gang" json:"group"`
	Optional bool   `db:"optional" json:"optional"`
}

// ScheduleEntry привязывает предмет к дню, чётности и паре
type ScheduleEntry struct {
	SubjectID int64      `db:"subject_id" json:"subject_id"`
	Weekday   Weekday    `db:"day" json:"weekday"`
	Parity    WeekParity `db:"repeat" json:"parity"`
	Slot      Slot       `db:"slot" json:"slot"`
}

type Meeting struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Group Group  `db:"gang" json:"group"`
	Link  string `db:"link" json:"link"`
}

// Assignment - связь встречи (преподаватель, ссылка) с предметом
type Assignment struct {
	MeetingID int64 `db:"meeting_id" json:"meeting_id"`
	SubjectID int64 `db:"subject_id" json:"subject_id"`
}

// ChatGroup - какой группе принадлежит чат
type ChatGroup struct {
	ChatID int64 `db:"chat_id" json:"chat_id"`
	Group  Group `db:"gang" json:"group"`
}

// ScheduledSubject - строка расписания вместе с предметом (JOIN)
type ScheduledSubject struct {
	ScheduleEntry
	Subject
}

// LookupKey - ключ поиска; Parity всегда Odd или Even
type LookupKey struct {
	Weekday Weekday
	Slot    Slot
	Parity  WeekParity
	Group   Group
}

// SubjectView - то, что показываем пользователю
type SubjectView struct {
	Slot     Slot
	Title    string
	Meetings []Meeting
}
