package models

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedToken возвращается (через errors.Is) при разборе неизвестного токена
var ErrUnrecognizedToken = errors.New("unrecognized token")

// TokenError описывает токен, который не подошёл ни к одному значению перечисления
type TokenError struct {
	Kind  string // "weekday", "slot", "parity", "group"
	Value string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("not a %s: %s", e.Kind, e.Value)
}

func (e *TokenError) Unwrap() error {
	return ErrUnrecognizedToken
}

// WeekendError - суббота и воскресенье не входят в расписание
type WeekendError struct {
	Day string // "Sat" или "Sun"
}

func (e *WeekendError) Error() string {
	return fmt.Sprintf("%s is not a valid weekday", e.Day)
}
