package schedule_service

import (
	"schedule-bot/internal/models"
	"schedule-bot/internal/service"
	"time"
	_ "time/tzdata"
)

// DateLayout - формат даты в командах: Д.М.ГГГГ, день и месяц из одной или двух цифр
const DateLayout = "2.1.2006"

// Kyiv - все вычисления идут по киевскому времени, а не UTC
var Kyiv = mustLoadLocation("Europe/Kyiv")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

type slotEnd struct {
	hour, minute int
	slot         models.Slot
}

// Конец каждой пары
var slotEnds = []slotEnd{
	{10, 15, models.SlotI},
	{12, 10, models.SlotII},
	{13, 55, models.SlotIII},
	{15, 40, models.SlotIV},
}

// WeekdayOf - день недели по Киеву, выходные - ошибка
func WeekdayOf(t time.Time) (models.Weekday, error) {
	return models.WeekdayFromTime(t.In(Kyiv).Weekday())
}

// SlotOf - первая пара, которая ещё не закончилась.
// После 15:40 возвращается I, а не "пар нет".
func SlotOf(t time.Time) models.Slot {
	local := t.In(Kyiv)
	minutes := local.Hour()*60 + local.Minute()
	seconds := minutes*60 + local.Second()

	for _, end := range slotEnds {
		if seconds < (end.hour*60+end.minute)*60 {
			return end.slot
		}
	}
	return models.SlotI
}

// ParityOf - чётность недели внутри месяца: неделя = ceil(день/7),
// чётная неделя месяца - Odd, нечётная - Even. Каждый месяц начинается заново.
func ParityOf(t time.Time) models.WeekParity {
	week := (t.In(Kyiv).Day() + 6) / 7
	if week%2 == 0 {
		return models.Odd
	}
	return models.Even
}

// ParseDate разбирает ДД.ММ.ГГГГ и ставит время на полдень по Киеву
func ParseDate(token string) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, token, Kyiv)
	if err != nil {
		return time.Time{}, &service.InputError{Field: "date", Value: token, Err: err}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, Kyiv), nil
}

// Resolve строит ключ поиска. Токен пары важнее текущего времени,
// дата заменяет "сейчас" только для дня недели и чётности.
func Resolve(q service.Query, group models.Group) (models.LookupKey, error) {
	var slot models.Slot
	if q.Slot != "" {
		parsed, err := models.ParseSlot(q.Slot)
		if err != nil {
			return models.LookupKey{}, &service.InputError{Field: "slot", Value: q.Slot, Err: err}
		}
		slot = parsed
	} else {
		slot = SlotOf(q.Now)
	}

	at := q.Now
	if q.Date != "" {
		date, err := ParseDate(q.Date)
		if err != nil {
			return models.LookupKey{}, err
		}
		at = date
	}

	day, err := WeekdayOf(at)
	if err != nil {
		return models.LookupKey{}, &service.InputError{Field: "weekday", Value: at.In(Kyiv).Weekday().String()[:3], Err: err}
	}

	return models.LookupKey{
		Weekday: day,
		Slot:    slot,
		Parity:  ParityOf(at),
		Group:   group,
	}, nil
}
