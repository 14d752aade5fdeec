package forward_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на эскалацию бронирования
type Request struct {
	TaskID   int64  // ID бронирования
	Username string // сотрудник, выполняющий эскалацию
	Note     string // комментарий к эскалации (опционально)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        int64
	VID       string
	AreaID    int64
	State     []domain.TaskState
	Staff     []domain.StaffRequested
	Desc      *domain.Desc
	UpdatedAt time.Time
}
