package tasks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// TaskRepository интерфейс репозитория бронирований
type TaskRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	GetByVID(ctx context.Context, vid string) (*domain.Task, error)
	GetByUsername(ctx context.Context, username string) ([]*domain.Task, error)
	GetLatestByUsername(ctx context.Context, username string, now time.Time) (*domain.Task, error)
	ListByCurrentState(ctx context.Context, states []domain.TaskState, offset, limit uint64) ([]*domain.Task, int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
