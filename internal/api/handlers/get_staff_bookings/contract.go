package get_staff_bookings

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/tasks/models"
)

type TaskService interface {
	GetStaffTasks(ctx context.Context, req *models.GetStaffTasksRequest) (*models.TaskListResponse, error)
	GetByVID(ctx context.Context, vid string) (*models.TaskResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
