package get_booking

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/tasks/models"
)

type TaskService interface {
	GetByID(ctx context.Context, id int64, username string, asStaff bool) (*models.TaskResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
