package confirm_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на подтверждение участия в бронировании
type Request struct {
	TaskID   int64  // ID бронирования
	Username string // участник, подтверждающий участие
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        int64
	VID       string
	AreaID    int64
	Requestor []domain.Requestor
	State     []domain.TaskState
	UpdatedAt time.Time
}
