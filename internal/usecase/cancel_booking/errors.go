package cancel_booking

import "errors"

var (
	// ErrTaskNotFound возвращается, когда бронирование не найдено
	ErrTaskNotFound = errors.New("cancel_booking: booking not found")

	// ErrNotPermitted возвращается, когда пользователь не владелец
	// бронирования и не персонал
	ErrNotPermitted = errors.New("cancel_booking: only the owner or staff may cancel")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
