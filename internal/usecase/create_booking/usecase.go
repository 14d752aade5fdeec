package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	areaRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/area"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/internal/usecase/validate_slots"
)

// UseCase use case создания бронирования
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции: два конкурирующих запроса на те же слоты не могут
// зафиксироваться оба
type UseCase struct {
	areaRepo  AreaRepository
	taskRepo  TaskRepository
	users     UserServiceClient
	txManager TransactionManager
	opts      validate_slots.Options
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	areaRepo AreaRepository,
	taskRepo TaskRepository,
	users UserServiceClient,
	txManager TransactionManager,
	opts validate_slots.Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		areaRepo:  areaRepo,
		taskRepo:  taskRepo,
		users:     users,
		txManager: txManager,
		opts:      opts,
		logger:    logger,
	}
}

// Execute создает бронирование площадки
//
// Вне транзакции: валидация запроса, проверка владельца и существования
// участников. Внутри сериализуемой транзакции: загрузка площадки, проверка
// числа участников, валидация слотов против текущих резервов и вставка.
// Ошибки сериализации возвращаются вызывающему как txmanager.ErrSerialization -
// повтор на стороне клиента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: area=%d, owner=%s, slots=%d", req.AreaID, req.Owner, len(req.Reserve))

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// Владелец всегда первый участник
	if req.Owner != req.Requestors[0] {
		uc.logger.Warn("CreateBooking: owner %s is not the first requestor %s", req.Owner, req.Requestors[0])
		return nil, ErrInvalidOwner
	}

	// Проверка существования участников до транзакции - внешний вызов
	// не должен жить внутри сериализуемой границы
	for _, username := range req.Requestors {
		if _, err := uc.users.GetUser(ctx, username); err != nil {
			if errors.Is(err, userservice.ErrUserNotFound) {
				uc.logger.Warn("CreateBooking: requestor %s not found", username)
				return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
			}
			uc.logger.Error("CreateBooking: failed to check requestor %s: %v", username, err)
			return nil, fmt.Errorf("%w: failed to check requestor: %v", ErrInternal, err)
		}
	}

	var created *domain.Task

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		area, err := uc.areaRepo.GetByID(ctx, req.AreaID)
		if err != nil {
			if errors.Is(err, areaRepo.ErrAreaNotFound) {
				return ErrAreaNotFound
			}
			return fmt.Errorf("%w: failed to get area: %v", ErrInternal, err)
		}

		if len(req.Requestors) != area.Required.Requestor {
			return fmt.Errorf("%w: got %d, area requires %d",
				ErrRequestorCount, len(req.Requestors), area.Required.Requestor)
		}

		existing, err := uc.taskRepo.GetReserveByArea(ctx, req.AreaID)
		if err != nil {
			return fmt.Errorf("%w: failed to get reserved slots: %v", ErrInternal, err)
		}

		if err := validate_slots.Validate(area.Reserve, req.Reserve, existing, uc.opts); err != nil {
			return err
		}

		created, err = uc.taskRepo.Create(ctx, uc.buildTask(req))
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if shouldLogAsError(err) {
			uc.logger.Error("CreateBooking: area=%d, owner=%s: %v", req.AreaID, req.Owner, err)
		} else {
			uc.logger.Warn("CreateBooking: area=%d, owner=%s: %v", req.AreaID, req.Owner, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d, vid=%s, state=%s",
		created.ID, created.VID, created.CurrentState())

	return &Response{
		ID:        created.ID,
		VID:       created.VID,
		AreaID:    created.AreaID,
		Type:      created.Type,
		Reserve:   created.Reserve,
		Requestor: created.Requestor,
		State:     created.State,
		CreatedAt: created.CreatedAt,
		UpdatedAt: created.UpdatedAt,
	}, nil
}

// buildTask собирает новое бронирование из запроса
// Владелец подтвержден сразу; единственный участник означает, что
// подтверждать больше некому - бронирование стартует в accept
func (uc *UseCase) buildTask(req *Request) *domain.Task {
	requestors := make([]domain.Requestor, len(req.Requestors))
	for i, username := range req.Requestors {
		requestors[i] = domain.Requestor{
			Username: username,
			Confirm:  i == 0,
		}
	}

	initial := domain.StateRequested
	if len(requestors) == 1 {
		initial = domain.StateAccept
	}

	return &domain.Task{
		VID:       newVID(),
		AreaID:    req.AreaID,
		Type:      req.Type,
		Reserve:   req.Reserve,
		Requestor: requestors,
		State:     []domain.TaskState{initial},
	}
}

// shouldLogAsError отличает внутренние сбои от ожидаемых бизнес-отказов
func shouldLogAsError(err error) bool {
	return errors.Is(err, ErrInternal)
}
