package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	taskRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/task"
	"github.com/m04kA/SMC-ReservationService/internal/service/tasks/models"
)

// Корзины состояний staff-дашборда
const (
	BucketWait   = "wait"
	BucketAccept = "accept"
	BucketReject = "reject"
	BucketDrop   = "drop"
)

// defaultStaffListLimit лимит страницы staff-дашборда по умолчанию
const defaultStaffListLimit = 50

// Service сервис чтения бронирований
type Service struct {
	taskRepo     TaskRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(taskRepo TaskRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		taskRepo:     taskRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - бронирование видят его участники и персонал
func (s *Service) GetByID(ctx context.Context, id int64, username string, asStaff bool) (*models.TaskResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%s", id, username)

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !asStaff && !task.HasRequestor(username) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%d", username, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainTask(task), nil
}

// GetByVID получает бронирование по человекочитаемому коду
// Используется персоналом для поиска по коду с бумажной заявки
func (s *Service) GetByVID(ctx context.Context, vid string) (*models.TaskResponse, error) {
	s.logger.Info("GetByVID: fetching booking vid=%s", vid)

	if vid == "" {
		return nil, fmt.Errorf("%w: vid is required", ErrInvalidInput)
	}

	task, err := s.taskRepo.GetByVID(ctx, vid)
	if err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			s.logger.Warn("GetByVID: booking vid=%s not found", vid)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("GetByVID: repository error for booking vid=%s: %v", vid, err)
		return nil, fmt.Errorf("%w: GetByVID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTask(task), nil
}

// GetUserTasks получает историю бронирований пользователя
func (s *Service) GetUserTasks(ctx context.Context, username string) (*models.TaskListResponse, error) {
	s.logger.Info("GetUserTasks: fetching bookings for user=%s", username)

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	tasks, err := s.taskRepo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Error("GetUserTasks: repository error for user=%s: %v", username, err)
		return nil, fmt.Errorf("%w: GetUserTasks - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserTasks: fetched %d bookings for user=%s", len(tasks), username)
	return models.FromDomainTaskList(tasks, int64(len(tasks))), nil
}

// GetLatestTask получает ближайшее предстоящее бронирование пользователя
func (s *Service) GetLatestTask(ctx context.Context, username string) (*models.TaskResponse, error) {
	s.logger.Info("GetLatestTask: fetching latest booking for user=%s", username)

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	task, err := s.taskRepo.GetLatestByUsername(ctx, username, s.timeProvider.Now())
	if err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			s.logger.Warn("GetLatestTask: no upcoming booking for user=%s", username)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("GetLatestTask: repository error for user=%s: %v", username, err)
		return nil, fmt.Errorf("%w: GetLatestTask - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTask(task), nil
}

// GetStaffTasks получает бронирования для staff-дашборда по корзине состояний
// Бронирование попадает в корзину по текущему состоянию - последнему токену журнала
func (s *Service) GetStaffTasks(ctx context.Context, req *models.GetStaffTasksRequest) (*models.TaskListResponse, error) {
	s.logger.Info("GetStaffTasks: bucket=%s, offset=%d, limit=%d", req.Bucket, req.Offset, req.Limit)

	states, err := bucketStates(req.Bucket)
	if err != nil {
		s.logger.Warn("GetStaffTasks: unknown bucket=%s", req.Bucket)
		return nil, err
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultStaffListLimit
	}

	tasks, total, err := s.taskRepo.ListByCurrentState(ctx, states, req.Offset, limit)
	if err != nil {
		s.logger.Error("GetStaffTasks: repository error for bucket=%s: %v", req.Bucket, err)
		return nil, fmt.Errorf("%w: GetStaffTasks - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStaffTasks: fetched %d of %d bookings for bucket=%s", len(tasks), total, req.Bucket)
	return models.FromDomainTaskList(tasks, total), nil
}

// bucketStates раскрывает корзину дашборда в набор состояний
func bucketStates(bucket string) ([]domain.TaskState, error) {
	switch bucket {
	case BucketWait:
		return domain.PendingStates, nil
	case BucketAccept:
		return domain.AcceptedStates, nil
	case BucketReject:
		return domain.RejectedStates, nil
	case BucketDrop:
		return domain.DroppedStates, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidBucket, bucket)
	}
}
