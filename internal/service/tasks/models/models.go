package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// GetStaffTasksRequest запрос staff-дашборда на список бронирований
type GetStaffTasksRequest struct {
	Bucket string `json:"bucket"` // wait | accept | reject | drop
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

// Response модели

// SlotResponse один зарезервированный слот
type SlotResponse struct {
	Start  string `json:"start"` // ISO 8601
	Stop   string `json:"stop"`  // ISO 8601
	AllDay bool   `json:"allDay,omitempty"`
}

// RequestorResponse участник бронирования
type RequestorResponse struct {
	Username string `json:"username"`
	Confirm  bool   `json:"confirm"`
}

// StaffResponse ступень цепочки эскалации
type StaffResponse struct {
	Group   string `json:"group"`
	Approve bool   `json:"approve"`
}

// DescResponse аудит-комментарий
type DescResponse struct {
	Msg      string    `json:"msg"`
	CreateAt time.Time `json:"createAt"`
}

// TaskResponse ответ с данными бронирования
type TaskResponse struct {
	ID        int64               `json:"id"`
	VID       string              `json:"vid"`
	AreaID    int64               `json:"areaId"`
	Type      string              `json:"type"`
	Reserve   []SlotResponse      `json:"reserve"`
	Requestor []RequestorResponse `json:"requestor"`
	State     []string            `json:"state"`
	Staff     []StaffResponse     `json:"staff,omitempty"`
	Desc      *DescResponse       `json:"desc,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// TaskListResponse ответ со списком бронирований
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int64          `json:"total"`
}

// Методы конвертации

// FromDomainTask конвертирует domain модель в DTO
func FromDomainTask(t *domain.Task) *TaskResponse {
	if t == nil {
		return nil
	}

	resp := &TaskResponse{
		ID:        t.ID,
		VID:       t.VID,
		AreaID:    t.AreaID,
		Type:      string(t.Type),
		Reserve:   make([]SlotResponse, len(t.Reserve)),
		Requestor: make([]RequestorResponse, len(t.Requestor)),
		State:     make([]string, len(t.State)),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}

	for i, slot := range t.Reserve {
		resp.Reserve[i] = SlotResponse{
			Start:  slot.Start.Format(time.RFC3339),
			Stop:   slot.Stop.Format(time.RFC3339),
			AllDay: slot.AllDay,
		}
	}

	for i, r := range t.Requestor {
		resp.Requestor[i] = RequestorResponse{
			Username: r.Username,
			Confirm:  r.Confirm,
		}
	}

	for i, s := range t.State {
		resp.State[i] = string(s)
	}

	if len(t.Staff) > 0 {
		resp.Staff = make([]StaffResponse, len(t.Staff))
		for i, s := range t.Staff {
			resp.Staff[i] = StaffResponse{
				Group:   s.Group,
				Approve: s.Approve,
			}
		}
	}

	if t.Desc != nil {
		resp.Desc = &DescResponse{
			Msg:      t.Desc.Msg,
			CreateAt: t.Desc.CreateAt,
		}
	}

	return resp
}

// FromDomainTaskList конвертирует список domain моделей в DTO
func FromDomainTaskList(tasks []*domain.Task, total int64) *TaskListResponse {
	resp := &TaskListResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: total,
	}

	for _, task := range tasks {
		if taskResp := FromDomainTask(task); taskResp != nil {
			resp.Tasks = append(resp.Tasks, *taskResp)
		}
	}

	return resp
}
