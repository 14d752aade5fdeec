package reject_booking

import (
	"time"

	rejectBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/reject_booking"
)

// RejectTaskRequest HTTP request model
type RejectTaskRequest struct {
	Note string `json:"note,omitempty"` // причина отклонения
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
func FromUseCaseResponse(resp *rejectBooking.Response) *TaskResponse {
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
