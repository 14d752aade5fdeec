package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на отмену бронирования
type Request struct {
	TaskID   int64  // ID бронирования
	Username string // автор запроса
	AsStaff  bool   // запрос от имени персонала
	Note     string // причина отмены (опционально)
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
