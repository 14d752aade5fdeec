package get_schedule

import "errors"

var (
	// ErrAreaNotFound возвращается, когда площадка не найдена
	ErrAreaNotFound = errors.New("get_schedule: area not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_schedule: internal error")
)
