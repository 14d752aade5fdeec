package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
)

// SlotRequest один запрашиваемый слот
type SlotRequest struct {
	Start  string `json:"start"` // ISO 8601
	Stop   string `json:"stop"`  // ISO 8601
	AllDay bool   `json:"allDay,omitempty"`
}

// CreateTaskRequest HTTP request model
type CreateTaskRequest struct {
	AreaID     int64         `json:"areaId"`
	Type       string        `json:"type"`
	Reserve    []SlotRequest `json:"reserve"`
	Requestors []string      `json:"requestors"`
}

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
	Type      string              `json:"type"`
	Reserve   []SlotRequest       `json:"reserve"`
	Requestor []RequestorResponse `json:"requestor"`
	State     []string            `json:"state"`
	CreatedAt string              `json:"createdAt"`
	UpdatedAt string              `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTaskRequest) ToUseCaseRequest(owner string) (*createBooking.Request, error) {
	reserve := make([]domain.TimeSlot, len(r.Reserve))
	for i, slot := range r.Reserve {
		if slot.AllDay {
			reserve[i] = domain.TimeSlot{AllDay: true}
			continue
		}

		start, err := time.Parse(time.RFC3339, slot.Start)
		if err != nil {
			return nil, err
		}
		stop, err := time.Parse(time.RFC3339, slot.Stop)
		if err != nil {
			return nil, err
		}
		reserve[i] = domain.TimeSlot{Start: start, Stop: stop}
	}

	return &createBooking.Request{
		AreaID:     r.AreaID,
		Type:       domain.TaskType(r.Type),
		Reserve:    reserve,
		Requestors: r.Requestors,
		Owner:      owner,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *TaskResponse {
	out := &TaskResponse{
		ID:        resp.ID,
		VID:       resp.VID,
		AreaID:    resp.AreaID,
		Type:      string(resp.Type),
		Reserve:   make([]SlotRequest, len(resp.Reserve)),
		Requestor: make([]RequestorResponse, len(resp.Requestor)),
		State:     make([]string, len(resp.State)),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}

	for i, slot := range resp.Reserve {
		out.Reserve[i] = SlotRequest{
			Start:  slot.Start.Format(time.RFC3339),
			Stop:   slot.Stop.Format(time.RFC3339),
			AllDay: slot.AllDay,
		}
	}
	for i, req := range resp.Requestor {
		out.Requestor[i] = RequestorResponse{Username: req.Username, Confirm: req.Confirm}
	}
	for i, state := range resp.State {
		out.State[i] = string(state)
	}

	return out
}
