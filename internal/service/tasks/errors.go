package tasks

import "errors"

var (
	// ErrTaskNotFound возвращается, когда бронирование не найдено
	ErrTaskNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidBucket возвращается при неизвестной корзине состояний
	ErrInvalidBucket = errors.New("invalid state bucket")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
