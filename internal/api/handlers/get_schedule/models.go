package get_schedule

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getSchedule "github.com/m04kA/SMC-ReservationService/internal/usecase/get_schedule"
)

// SlotResponse один слот расписания
type SlotResponse struct {
	Start string `json:"start"` // ISO 8601
	Stop  string `json:"stop"`  // ISO 8601
}

// AvailableSlotResponse слот расписания со счетчиком доступности
type AvailableSlotResponse struct {
	Start string `json:"start"`
	Stop  string `json:"stop"`
	N     int    `json:"n"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	AreaID    int64                   `json:"areaId"`
	Name      string                  `json:"name"`
	Label     string                  `json:"label,omitempty"`
	Date      string                  `json:"date"` // "2025-10-15"
	Schedule  []SlotResponse          `json:"schedule"`
	Available []AvailableSlotResponse `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		AreaID:    resp.AreaID,
		Name:      resp.Name,
		Label:     resp.Label,
		Date:      resp.Date.Format(domain.DateFormat),
		Schedule:  make([]SlotResponse, len(resp.Schedule)),
		Available: make([]AvailableSlotResponse, len(resp.Available)),
	}

	for i, s := range resp.Schedule {
		out.Schedule[i] = SlotResponse{Start: s.Start, Stop: s.Stop}
	}
	for i, s := range resp.Available {
		out.Available[i] = AvailableSlotResponse{Start: s.Start, Stop: s.Stop, N: s.N}
	}

	return out
}
