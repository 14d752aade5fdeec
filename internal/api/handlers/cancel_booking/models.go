package cancel_booking

import (
	"time"

	cancelBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/cancel_booking"
)

// CancelTaskRequest HTTP request model
type CancelTaskRequest struct {
	Note string `json:"note,omitempty"` // причина отмены
}

// DescResponse аудит-комментарий
type DescResponse struct {
	Msg      string `json:"msg"`
	CreateAt string `json:"createAt"` // ISO 8601
}

// TaskResponse HTTP response model
type TaskResponse struct {
	ID        int64         `json:"id"`
	VID       string        `json:"vid"`
	AreaID    int64         `json:"areaId"`
	State     []string      `json:"state"`
	Desc      *DescResponse `json:"desc,omitempty"`
	UpdatedAt string        `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *TaskResponse {
	out := &TaskResponse{
		ID:        resp.ID,
		VID:       resp.VID,
		AreaID:    resp.AreaID,
		State:     make([]string, len(resp.State)),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}

	for i, s := range resp.State {
		out.State[i] = string(s)
	}

	if resp.Desc != nil {
		out.Desc = &DescResponse{
			Msg:      resp.Desc.Msg,
			CreateAt: resp.Desc.CreateAt.Format(time.RFC3339),
		}
	}

	return out
}
