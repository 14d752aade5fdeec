package domain

import "time"

// AvailabilityWindow одно повторяющееся правило доступности площадки
// Start/Stop несут только время суток - дата нормализуется на дату запроса
type AvailabilityWindow struct {
	IntervalMinutes int       // длительность одного слота; IntervalNotSlotted = окно не делится
	MaxSlots        int       // вместимость: сколько бронирований допустимо на слот
	Start           time.Time // нижняя граница времени суток
	Stop            time.Time // верхняя граница времени суток
	AllDay          bool      // окно на весь день, границы времени игнорируются
	Week            string    // паттерн дней недели: "1-7" или "1,3,5"
}

// WeekSet возвращает распарсенный паттерн дней недели окна
func (w AvailabilityWindow) WeekSet() (WeekSet, error) {
	return ParseWeekPattern(w.Week)
}

// MatchesWeekday возвращает true, если окно действует в день недели даты
func (w AvailabilityWindow) MatchesWeekday(date time.Time) (bool, error) {
	weeks, err := w.WeekSet()
	if err != nil {
		return false, err
	}
	return weeks.Contains(ISOWeekday(date)), nil
}

// NormalizeTo переносит границы окна на календарный день date:
// год/месяц/день берутся из date, время суток - из окна
func (w AvailabilityWindow) NormalizeTo(date time.Time) (start, stop time.Time) {
	y, m, d := date.Date()
	start = time.Date(y, m, d, w.Start.Hour(), w.Start.Minute(), 0, 0, date.Location())
	stop = time.Date(y, m, d, w.Stop.Hour(), w.Stop.Minute(), 0, 0, date.Location())
	return start, stop
}

// RequiredPolicy требования площадки к бронированию
type RequiredPolicy struct {
	Requestor int      // точное число участников бронирования
	Staff     []string // группы персонала, чьё одобрение требуется (опционально)
	FormID    *int64   // привязанная форма (опционально)
}

// Area бронируемая площадка с повторяющимися правилами доступности
// Окна авторизуются внешним CRUD слоем; здесь area read-mostly
type Area struct {
	ID         int64
	Name       string
	Label      *string
	BuildingID *int64
	Required   RequiredPolicy
	Reserve    []AvailabilityWindow // порядок объявления окон значим
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
