package models

import "time"

// Weekday - учебный день недели, только Пн-Пт
type Weekday uint8

const (
	Mon Weekday = iota + 1
	Tue
	Wed
	Thu
	Fri
)

var weekdayTokens = map[string]Weekday{
	"Mon": Mon,
	"Tue": Tue,
	"Wed": Wed,
	"Thu": Thu,
	"Fri": Fri,
}

func ParseWeekday(token string) (Weekday, error) {
	if day, ok := weekdayTokens[token]; ok {
		return day, nil
	}
	return 0, &TokenError{Kind: "weekday", Value: token}
}

// WeekdayFromTime переводит time.Weekday в Weekday, выходные - ошибка
func WeekdayFromTime(day time.Weekday) (Weekday, error) {
	switch day {
	case time.Monday:
		return Mon, nil
	case time.Tuesday:
		return Tue, nil
	case time.Wednesday:
		return Wed, nil
	case time.Thursday:
		return Thu, nil
	case time.Friday:
		return Fri, nil
	}
	return 0, &WeekendError{Day: day.String()[:3]}
}

func (d Weekday) Valid() bool {
	return d >= Mon && d <= Fri
}

func (d Weekday) String() string {
	switch d {
	case Mon:
		return "Mon"
	case Tue:
		return "Tue"
	case Wed:
		return "Wed"
	case Thu:
		return "Thu"
	case Fri:
		return "Fri"
	}
	return "Weekday(?)"
}
