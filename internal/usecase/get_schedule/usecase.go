package get_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	areaRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/area"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// UseCase use case построения расписания площадки на дату
// Расписание строится для отображения, не для фиксации: результат не
// учитывает конкурирующие бронирования и не имеет побочных эффектов
type UseCase struct {
	areaRepo AreaRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(areaRepo AreaRepository, logger Logger) *UseCase {
	return &UseCase{
		areaRepo: areaRepo,
		logger:   logger,
	}
}

// Execute строит расписание площадки на дату
// Для фиксированных (area, date) результат детерминирован; если ни одно
// окно не действует в этот день недели - расписание пустое
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSchedule: area=%d, date=%s", req.AreaID, req.Date.Format(domain.DateFormat))

	if req.AreaID <= 0 {
		return nil, fmt.Errorf("%w: areaID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	area, err := uc.areaRepo.GetByID(ctx, req.AreaID)
	if err != nil {
		if errors.Is(err, areaRepo.ErrAreaNotFound) {
			uc.logger.Warn("GetSchedule: area id=%d not found", req.AreaID)
			return nil, ErrAreaNotFound
		}
		uc.logger.Error("GetSchedule: failed to get area id=%d: %v", req.AreaID, err)
		return nil, fmt.Errorf("%w: failed to get area: %v", ErrInternal, err)
	}

	slots, err := partitionWindows(area.Reserve, req.Date)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to partition windows for area id=%d: %v", req.AreaID, err)
		return nil, fmt.Errorf("%w: failed to partition windows: %v", ErrInternal, err)
	}

	schedule := structSlots(slots)

	uc.logger.Info("GetSchedule: built %d slots for area=%d, date=%s",
		len(schedule), req.AreaID, req.Date.Format(domain.DateFormat))

	return &Response{
		AreaID:    area.ID,
		Name:      area.Name,
		Label:     ptr.Value(area.Label),
		Date:      req.Date,
		Schedule:  schedule,
		Available: availableSlots(schedule),
	}, nil
}
