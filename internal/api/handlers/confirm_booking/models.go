package confirm_booking

import (
	"time"

	confirmBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/confirm_booking"
)

// RequestorResponse участник бронирования
type RequestorResponse struct {
	Username string `json:"username"`
	Confirm  bool   `json:"confirm"`
}

// TaskResponse HTTP response model
type TaskResponse struct {
	ID        int64               `json:"id"`
	VID       string              `json:"vid"`
	AreaID    int64               `json:"areaId"`
	Requestor []RequestorResponse `json:"requestor"`
	State     []string            `json:"state"`
	UpdatedAt string              `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *TaskResponse {
	out := &TaskResponse{
		ID:        resp.ID,
		VID:       resp.VID,
		AreaID:    resp.AreaID,
		Requestor: make([]RequestorResponse, len(resp.Requestor)),
		State:     make([]string, len(resp.State)),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}

	for i, r := range resp.Requestor {
		out.Requestor[i] = RequestorResponse{Username: r.Username, Confirm: r.Confirm}
	}
	for i, s := range resp.State {
		out.State[i] = string(s)
	}

	return out
}
