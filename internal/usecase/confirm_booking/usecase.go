package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	taskRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/task"
)

// UseCase use case подтверждения участия в бронировании
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

// Execute подтверждает участие пользователя в бронировании
// Когда подтвердили все участники, в журнал состояний добавляется accept.
// Read-modify-write выполняется в сериализуемой транзакции: конкурирующие
// подтверждения не теряют друг друга
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: task=%d, user=%s", req.TaskID, req.Username)

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

		if !task.ConfirmRequestor(req.Username) {
			return ErrNotPermitted
		}

		if task.AllConfirmed() && task.CurrentState() != domain.StateAccept {
			task.AppendState(domain.StateAccept)
		}

		task.UpdatedAt = uc.timeProvider.Now()

		if err := uc.taskRepo.Update(ctx, task); err != nil {
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("ConfirmBooking: task=%d, user=%s: %v", req.TaskID, req.Username, err)
		} else {
			uc.logger.Warn("ConfirmBooking: task=%d, user=%s: %v", req.TaskID, req.Username, err)
		}
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: task=%d confirmed by %s, state=%s",
		task.ID, req.Username, task.CurrentState())

	return &Response{
		ID:        task.ID,
		VID:       task.VID,
		AreaID:    task.AreaID,
		Requestor: task.Requestor,
		State:     task.State,
		UpdatedAt: task.UpdatedAt,
	}, nil
}
