package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// AreaRepository интерфейс репозитория площадок
type AreaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Area, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
