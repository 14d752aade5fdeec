package confirm_booking

import "errors"

var (
	// ErrTaskNotFound возвращается, когда бронирование не найдено
	ErrTaskNotFound = errors.New("confirm_booking: booking not found")

	// ErrNotPermitted возвращается, когда пользователь не участник бронирования
	ErrNotPermitted = errors.New("confirm_booking: user is not a requestor of this booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
