package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// TimeSlot конкретный интервал [start, stop) с абсолютными датами
type TimeSlot struct {
	Start  time.Time
	Stop   time.Time
	AllDay bool
}

// DurationMinutes возвращает длительность слота в минутах
func (s TimeSlot) DurationMinutes() int {
	return int(s.Stop.Sub(s.Start).Minutes())
}

// StartClock возвращает время начала в формате HH:MM
func (s TimeSlot) StartClock() types.TimeString {
	return types.NewTimeString(s.Start)
}

// StopClock возвращает время окончания в формате HH:MM
func (s TimeSlot) StopClock() types.TimeString {
	return types.NewTimeString(s.Stop)
}

// ClockTimeCollides проверяет столкновение двух слотов по точному совпадению
// времени суток: start == start или stop == stop (сравнение строк HH:MM).
// Это НЕ проверка пересечения интервалов - частичные наложения со сдвинутыми
// границами этот предикат не ловит. Предикат вынесен отдельно, чтобы правило
// можно было заменить на настоящий interval overlap, не трогая валидатор.
func ClockTimeCollides(a, b TimeSlot) bool {
	return a.StartClock() == b.StartClock() || a.StopClock() == b.StopClock()
}

// Overlaps проверяет настоящее пересечение интервалов (строгие неравенства,
// граничащие слоты пересечением не считаются)
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start.Before(other.Stop) && s.Stop.After(other.Start)
}
