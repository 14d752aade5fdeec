package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	taskRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/task"
	"github.com/m04kA/SMC-ReservationService/internal/service/tasks/models"
)

type fakeTaskRepo struct {
	task  *domain.Task
	tasks []*domain.Task
	err   error

	listedStates []domain.TaskState
	listedOffset uint64
	listedLimit  uint64
}

func (f *fakeTaskRepo) GetByID(_ context.Context, _ int64) (*domain.Task, error) {
	return f.task, f.err
}

func (f *fakeTaskRepo) GetByVID(_ context.Context, _ string) (*domain.Task, error) {
	return f.task, f.err
}

func (f *fakeTaskRepo) GetByUsername(_ context.Context, _ string) ([]*domain.Task, error) {
	return f.tasks, f.err
}

func (f *fakeTaskRepo) GetLatestByUsername(_ context.Context, _ string, _ time.Time) (*domain.Task, error) {
	return f.task, f.err
}

func (f *fakeTaskRepo) ListByCurrentState(_ context.Context, states []domain.TaskState, offset, limit uint64) ([]*domain.Task, int64, error) {
	f.listedStates = states
	f.listedOffset = offset
	f.listedLimit = limit
	return f.tasks, int64(len(f.tasks)), f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func newService(repo *fakeTaskRepo) *Service {
	return NewService(repo, fixedTime{testNow}, nopLogger{})
}

func sampleTask() *domain.Task {
	return &domain.Task{
		ID:  7,
		VID: "A1B2C3D4",
		Requestor: []domain.Requestor{
			{Username: "alice", Confirm: true},
			{Username: "bob"},
		},
		State: []domain.TaskState{domain.StateRequested},
	}
}

func TestGetByID_ParticipantSeesBooking(t *testing.T) {
	svc := newService(&fakeTaskRepo{task: sampleTask()})

	resp, err := svc.GetByID(context.Background(), 7, "bob", false)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "A1B2C3D4", resp.VID)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	svc := newService(&fakeTaskRepo{task: sampleTask()})

	_, err := svc.GetByID(context.Background(), 7, "mallory", false)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_StaffSeesAnyBooking(t *testing.T) {
	svc := newService(&fakeTaskRepo{task: sampleTask()})

	_, err := svc.GetByID(context.Background(), 7, "mallory", true)
	require.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(&fakeTaskRepo{err: taskRepo.ErrTaskNotFound})

	_, err := svc.GetByID(context.Background(), 7, "alice", false)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestGetStaffTasks_BucketMapping(t *testing.T) {
	tests := []struct {
		bucket string
		states []domain.TaskState
	}{
		{BucketWait, domain.PendingStates},
		{BucketAccept, domain.AcceptedStates},
		{BucketReject, domain.RejectedStates},
		{BucketDrop, domain.DroppedStates},
	}

	for _, tt := range tests {
		t.Run(tt.bucket, func(t *testing.T) {
			repo := &fakeTaskRepo{}
			svc := newService(repo)

			_, err := svc.GetStaffTasks(context.Background(), &models.GetStaffTasksRequest{Bucket: tt.bucket})
			require.NoError(t, err)
			assert.Equal(t, tt.states, repo.listedStates)
		})
	}
}

func TestGetStaffTasks_UnknownBucket(t *testing.T) {
	svc := newService(&fakeTaskRepo{})

	_, err := svc.GetStaffTasks(context.Background(), &models.GetStaffTasksRequest{Bucket: "archive"})
	assert.ErrorIs(t, err, ErrInvalidBucket)
}

func TestGetStaffTasks_DefaultLimit(t *testing.T) {
	repo := &fakeTaskRepo{}
	svc := newService(repo)

	_, err := svc.GetStaffTasks(context.Background(), &models.GetStaffTasksRequest{
		Bucket: BucketWait,
		Offset: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(20), repo.listedOffset)
	assert.Equal(t, uint64(defaultStaffListLimit), repo.listedLimit)
}

func TestGetUserTasks_RequiresUsername(t *testing.T) {
	svc := newService(&fakeTaskRepo{})

	_, err := svc.GetUserTasks(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetLatestTask_NotFound(t *testing.T) {
	svc := newService(&fakeTaskRepo{err: taskRepo.ErrTaskNotFound})

	_, err := svc.GetLatestTask(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
