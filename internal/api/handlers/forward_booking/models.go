package forward_booking

import (
	"time"

	forwardBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/forward_booking"
)

// ForwardTaskRequest HTTP request model
type ForwardTaskRequest struct {
	Note string `json:"note,omitempty"` // комментарий к эскалации
}

// StaffResponse ступень цепочки эскалации
type StaffResponse struct {
	Group   string `json:"group"`
	Approve bool   `json:"approve"`
}

// DescResponse аудит-комментарий
type DescResponse struct {
	Msg      string `json:"msg"`
	CreateAt string `json:"createAt"` // ISO 8601
}

// TaskResponse HTTP response model
type TaskResponse struct {
	ID        int64           `json:"id"`
	VID       string          `json:"vid"`
	AreaID    int64           `json:"areaId"`
	State     []string        `json:"state"`
	Staff     []StaffResponse `json:"staff,omitempty"`
	Desc      *DescResponse   `json:"desc,omitempty"`
	UpdatedAt string          `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *forwardBooking.Response) *TaskResponse {
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

	if len(resp.Staff) > 0 {
		out.Staff = make([]StaffResponse, len(resp.Staff))
		for i, s := range resp.Staff {
			out.Staff[i] = StaffResponse{Group: s.Group, Approve: s.Approve}
		}
	}

	if resp.Desc != nil {
		out.Desc = &DescResponse{
			Msg:      resp.Desc.Msg,
			CreateAt: resp.Desc.CreateAt.Format(time.RFC3339),
		}
	}

	return out
}
