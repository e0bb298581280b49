package models

// WeekParity - чётность недели. Both хранится только в расписании и
// никогда не получается из даты.
type WeekParity uint8

const (
	Odd  WeekParity = 0b01
	Even WeekParity = 0b10
	Both WeekParity = Odd | Even
)

func ParseWeekParity(token string) (WeekParity, error) {
	switch token {
	case "Odd":
		return Odd, nil
	case "Even":
		return Even, nil
	case "Both":
		return Both, nil
	}
	return 0, &TokenError{Kind: "parity", Value: token}
}

// Covers сообщает, проходит ли занятие с чётностью p в неделю с чётностью week
func (p WeekParity) Covers(week WeekParity) bool {
	if p == Both {
		return week == Odd || week == Even
	}
	return p == week
}

func (p WeekParity) Valid() bool {
	return p == Odd || p == Even || p == Both
}

func (p WeekParity) String() string {
	switch p {
	case Odd:
		return "Odd"
	case Even:
		return "Even"
	case Both:
		return "Both"
	}
	return "WeekParity(?)"
}
