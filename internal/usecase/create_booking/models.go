package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	AreaID     int64             // ID площадки
	Type       domain.TaskType   // категория бронирования
	Reserve    []domain.TimeSlot // запрашиваемые слоты
	Requestors []string          // участники; первый - владелец
	Owner      string            // username автора запроса (из слоя аутентификации)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	VID       string
	AreaID    int64
	Type      domain.TaskType
	Reserve   []domain.TimeSlot
	Requestor []domain.Requestor
	State     []domain.TaskState
	CreatedAt time.Time
	UpdatedAt time.Time
}
