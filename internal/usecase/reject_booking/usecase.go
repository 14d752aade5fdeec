package reject_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	taskRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/task"
)

// UseCase use case отклонения бронирования персоналом
type UseCase struct {
	taskRepo     TaskRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(taskRepo TaskRepository, txManager TransactionManager, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		taskRepo:     taskRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute отклоняет бронирование
// Доступ персонала проверяется на транспортном слое; здесь в журнал
// состояний добавляется reject, причина сохраняется аудит-комментарием
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RejectBooking: task=%d, user=%s", req.TaskID, req.Username)

	if req.TaskID <= 0 {
		return nil, fmt.Errorf("%w: taskID must be positive", ErrInvalidInput)
	}
	if req.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	var task *domain.Task

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var err error
		task, err = uc.taskRepo.GetByID(ctx, req.TaskID)
		if err != nil {
			if errors.Is(err, taskRepo.ErrTaskNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		now := uc.timeProvider.Now()
		task.AppendState(domain.StateReject)
		task.AddNote(req.Note, now)
		task.UpdatedAt = now

		if err := uc.taskRepo.Update(ctx, task); err != nil {
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("RejectBooking: task=%d, user=%s: %v", req.TaskID, req.Username, err)
		} else {
			uc.logger.Warn("RejectBooking: task=%d, user=%s: %v", req.TaskID, req.Username, err)
		}
		return nil, err
	}

	uc.logger.Info("RejectBooking: task=%d rejected by %s", task.ID, req.Username)

	return &Response{
		ID:        task.ID,
		VID:       task.VID,
		AreaID:    task.AreaID,
		State:     task.State,
		Desc:      task.Desc,
		UpdatedAt: task.UpdatedAt,
	}, nil
}
