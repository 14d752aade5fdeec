package reject_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на отклонение бронирования
type Request struct {
	TaskID   int64  // ID бронирования
	Username string // сотрудник, отклоняющий бронирование
	Note     string // причина отклонения (опционально)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        int64
	VID       string
	AreaID    int64
	State     []domain.TaskState
	Desc      *domain.Desc
	UpdatedAt time.Time
}
