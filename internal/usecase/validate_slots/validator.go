package validate_slots

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Options настройки валидатора
type Options struct {
	// EnforceWindowBounds дополнительно проверяет, что слот попадает в
	// границы времени окна. Историческое поведение этого не делает -
	// проверяются только день недели и длительность; включается явно
	// через конфигурацию
	EnforceWindowBounds bool
}

// Validate решает, можно ли зафиксировать предложенные слоты для площадки
//
// Правила, в порядке применения; первое нарушение прерывает проверку:
//  1. день недели начала И конца каждого слота входит в паттерн каждого окна
//  2. длительность каждого слота в минутах точно равна интервалу каждого окна
//  3. ни один слот не сталкивается по точному времени HH:MM с уже
//     зарезервированными слотами площадки (см. domain.ClockTimeCollides -
//     это намеренно НЕ interval overlap)
//
// Все проверки - чтения без побочных эффектов. Вызывается из create_booking
// внутри сериализуемой транзакции: existing должен быть прочитан в той же границе
func Validate(windows []domain.AvailabilityWindow, proposed []domain.TimeSlot, existing []domain.TimeSlot, opts Options) error {
	for _, window := range windows {
		weeks, err := window.WeekSet()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}

		for _, slot := range proposed {
			// All-day слоты не имеют границ: их принимают только all-day окна,
			// проверки дня недели и длительности к ним неприменимы
			if slot.AllDay || window.AllDay {
				if slot.AllDay != window.AllDay {
					return fmt.Errorf("%w: all-day slot and slotted window are incompatible",
						ErrInvalidInterval)
				}
				continue
			}

			if !weeks.Contains(domain.ISOWeekday(slot.Start)) || !weeks.Contains(domain.ISOWeekday(slot.Stop)) {
				return fmt.Errorf("%w: slot %s-%s, window week %q",
					ErrInvalidWeek, slot.StartClock(), slot.StopClock(), window.Week)
			}

			if slot.DurationMinutes() != window.IntervalMinutes {
				return fmt.Errorf("%w: slot duration %d min, window interval %d min",
					ErrInvalidInterval, slot.DurationMinutes(), window.IntervalMinutes)
			}

			if opts.EnforceWindowBounds && !window.AllDay {
				if err := checkWindowBounds(window, slot); err != nil {
					return err
				}
			}
		}
	}

	for _, reserved := range existing {
		for _, slot := range proposed {
			if domain.ClockTimeCollides(slot, reserved) {
				return fmt.Errorf("%w: slot %s-%s collides with reserved %s-%s",
					ErrSlotConflict,
					slot.StartClock(), slot.StopClock(),
					reserved.StartClock(), reserved.StopClock())
			}
		}
	}

	return nil
}

// checkWindowBounds проверяет попадание слота в границы окна,
// нормализованные на дату слота
func checkWindowBounds(window domain.AvailabilityWindow, slot domain.TimeSlot) error {
	start, stop := window.NormalizeTo(slot.Start)
	if slot.Start.Before(start) || slot.Stop.After(stop) {
		return fmt.Errorf("%w: slot %s-%s, window bounds %s-%s",
			ErrOutsideWindow,
			slot.StartClock(), slot.StopClock(),
			start.Format(domain.TimeFormat), stop.Format(domain.TimeFormat))
	}
	return nil
}
