package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/tasks/models"
)

type TaskService interface {
	GetUserTasks(ctx context.Context, username string) (*models.TaskListResponse, error)
	GetLatestTask(ctx context.Context, username string) (*models.TaskResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
