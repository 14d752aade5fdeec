package forward_booking

import "errors"

var (
	// ErrTaskNotFound возвращается, когда бронирование не найдено
	ErrTaskNotFound = errors.New("forward_booking: booking not found")

	// ErrNoStaffLevels возвращается, когда цепочка эскалации не настроена
	ErrNoStaffLevels = errors.New("forward_booking: staff escalation levels are not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("forward_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("forward_booking: internal error")
)
