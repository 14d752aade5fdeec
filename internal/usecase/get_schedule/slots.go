package get_schedule

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// partitionWindows разворачивает окна доступности площадки в упорядоченный
// список конкретных слотов на дату
//
// Для каждого окна, чей паттерн недели содержит день недели даты:
//   - allDay окно дает один слот на весь календарный день
//   - иначе границы окна нормализуются на дату и интервал [start, stop)
//     нарезается на подинтервалы длиной interval минут; неполный хвост,
//     короче интервала, отбрасывается
//
// Слоты конкатенируются в порядке объявления окон
func partitionWindows(windows []domain.AvailabilityWindow, date time.Time) ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0)

	for _, window := range windows {
		matches, err := window.MatchesWeekday(date)
		if err != nil {
			return nil, err
		}
		if !matches {
			continue
		}

		if window.AllDay {
			y, m, d := date.Date()
			dayStart := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
			slots = append(slots, domain.TimeSlot{
				Start:  dayStart,
				Stop:   dayStart.AddDate(0, 0, 1),
				AllDay: true,
			})
			continue
		}

		// Окно без положительного интервала (IntervalNotSlotted и прочие
		// некорректные значения) на слоты не нарезается и в расписание
		// ничего не дает; без этой проверки цикл ниже не завершится
		if window.IntervalMinutes <= 0 {
			continue
		}

		start, stop := window.NormalizeTo(date)
		interval := time.Duration(window.IntervalMinutes) * time.Minute

		for cur := start; !cur.Add(interval).After(stop); cur = cur.Add(interval) {
			slots = append(slots, domain.TimeSlot{
				Start: cur,
				Stop:  cur.Add(interval),
			})
		}
	}

	return slots, nil
}

// structSlots конвертирует слоты в модели расписания с ISO метками времени
func structSlots(slots []domain.TimeSlot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			Start: s.Start.Format(time.RFC3339),
			Stop:  s.Stop.Format(time.RFC3339),
		}
	}
	return result
}

// availableSlots строит счетчики доступности расписания
// Счетчик всегда равен 1: уже зафиксированные бронирования здесь не
// вычитаются, расписание показывает потенциальные слоты, а не остатки -
// фактическая доступность решается валидатором при создании бронирования
func availableSlots(schedule []Slot) []AvailableSlot {
	result := make([]AvailableSlot, len(schedule))
	for i, s := range schedule {
		result[i] = AvailableSlot{
			Start: s.Start,
			Stop:  s.Stop,
			N:     1,
		}
	}
	return result
}
