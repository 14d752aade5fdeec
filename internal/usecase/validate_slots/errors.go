package validate_slots

import "errors"

var (
	// ErrInvalidWeek возвращается, когда день недели слота не входит в паттерн окна
	ErrInvalidWeek = errors.New("validate_slots: slot weekday is outside the window week pattern")

	// ErrInvalidInterval возвращается, когда длительность слота не равна интервалу окна
	ErrInvalidInterval = errors.New("validate_slots: slot duration does not match the window interval")

	// ErrSlotConflict возвращается, когда слот совпадает по времени с уже
	// зарезервированным слотом площадки
	ErrSlotConflict = errors.New("validate_slots: slot is already reserved")

	// ErrOutsideWindow возвращается, когда слот выходит за границы окна
	// Проверка опциональна и включается конфигурацией
	ErrOutsideWindow = errors.New("validate_slots: slot is outside the window time bounds")

	// ErrInvalidPattern возвращается, когда паттерн недели окна не парсится
	ErrInvalidPattern = errors.New("validate_slots: invalid window week pattern")
)
