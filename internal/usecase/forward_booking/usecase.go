package forward_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	taskRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/task"
)

// UseCase use case эскалации бронирования на следующий уровень персонала
type UseCase struct {
	taskRepo     TaskRepository
	staffDir     domain.StaffDirectory
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(taskRepo TaskRepository, staffDir domain.StaffDirectory, txManager TransactionManager, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		taskRepo:     taskRepo,
		staffDir:     staffDir,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute эскалирует бронирование по цепочке уровней персонала
//
// Пустая цепочка у бронирования - эскалация на первый уровень справочника.
// Иначе добавляется уровень, следующий за текущим; когда цепочка исчерпана
// или текущий уровень справочнику неизвестен, ступени не меняются.
// Токен forward добавляется в журнал состояний в любом случае
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ForwardBooking: task=%d, user=%s", req.TaskID, req.Username)

	if req.TaskID <= 0 {
		return nil, fmt.Errorf("%w: taskID must be positive", ErrInvalidInput)
	}
	if req.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if uc.staffDir.Empty() {
		return nil, ErrNoStaffLevels
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

		if next, ok := uc.nextLevel(task); ok {
			task.Staff = append(task.Staff, domain.StaffRequested{Group: next})
		}

		now := uc.timeProvider.Now()
		task.AppendState(domain.StateForward)
		task.AddNote(req.Note, now)
		task.UpdatedAt = now

		if err := uc.taskRepo.Update(ctx, task); err != nil {
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("ForwardBooking: task=%d, user=%s: %v", req.TaskID, req.Username, err)
		} else {
			uc.logger.Warn("ForwardBooking: task=%d, user=%s: %v", req.TaskID, req.Username, err)
		}
		return nil, err
	}

	group, _ := task.CurrentStaffGroup()
	uc.logger.Info("ForwardBooking: task=%d forwarded by %s, current level=%s", task.ID, req.Username, group)

	return &Response{
		ID:        task.ID,
		VID:       task.VID,
		AreaID:    task.AreaID,
		State:     task.State,
		Staff:     task.Staff,
		Desc:      task.Desc,
		UpdatedAt: task.UpdatedAt,
	}, nil
}

// nextLevel выбирает уровень для новой ступени эскалации
func (uc *UseCase) nextLevel(task *domain.Task) (string, bool) {
	current, ok := task.CurrentStaffGroup()
	if !ok {
		return uc.staffDir.First()
	}
	return uc.staffDir.Next(current)
}
