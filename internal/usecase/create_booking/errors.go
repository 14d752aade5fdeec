package create_booking

import "errors"

var (
	// ErrAreaNotFound возвращается, когда площадка не найдена
	ErrAreaNotFound = errors.New("create_booking: area not found")

	// ErrUserNotFound возвращается, когда участник бронирования не существует
	ErrUserNotFound = errors.New("create_booking: requestor is not a known user")

	// ErrInvalidOwner возвращается, когда автор запроса не является
	// первым участником бронирования
	ErrInvalidOwner = errors.New("create_booking: owner must be the first requestor")

	// ErrRequestorCount возвращается, когда число участников не равно
	// требованию площадки
	ErrRequestorCount = errors.New("create_booking: invalid number of requestors")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
