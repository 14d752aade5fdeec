package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	taskRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/task"
)

// UseCase use case отмены бронирования
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

// Execute отменяет бронирование
// Отменить может владелец или персонал; в журнал состояний добавляется drop,
// причина сохраняется аудит-комментарием. Отмена идемпотентна только по
// смыслу текущего состояния: повторный вызов добавит еще один токен drop
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: task=%d, user=%s, asStaff=%t", req.TaskID, req.Username, req.AsStaff)

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

		if !req.AsStaff && task.Owner() != req.Username {
			return ErrNotPermitted
		}

		now := uc.timeProvider.Now()
		task.AppendState(domain.StateDrop)
		task.AddNote(req.Note, now)
		task.UpdatedAt = now

		if err := uc.taskRepo.Update(ctx, task); err != nil {
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CancelBooking: task=%d, user=%s: %v", req.TaskID, req.Username, err)
		} else {
			uc.logger.Warn("CancelBooking: task=%d, user=%s: %v", req.TaskID, req.Username, err)
		}
		return nil, err
	}

	uc.logger.Info("CancelBooking: task=%d dropped by %s", task.ID, req.Username)

	return &Response{
		ID:        task.ID,
		VID:       task.VID,
		AreaID:    task.AreaID,
		State:     task.State,
		Desc:      task.Desc,
		UpdatedAt: task.UpdatedAt,
	}, nil
}
