package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	taskRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/task"
)

type fakeTaskRepo struct {
	task    *domain.Task
	getErr  error
	updated *domain.Task
}

func (f *fakeTaskRepo) GetByID(_ context.Context, _ int64) (*domain.Task, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, t *domain.Task) error {
	f.updated = t
	return nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func pendingTask() *domain.Task {
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

func TestExecute_ConfirmsWithoutAccept(t *testing.T) {
	task := &domain.Task{
		ID: 7,
		Requestor: []domain.Requestor{
			{Username: "alice", Confirm: true},
			{Username: "bob"},
			{Username: "carol"},
		},
		State: []domain.TaskState{domain.StateRequested},
	}
	repo := &fakeTaskRepo{task: task}
	uc := NewUseCase(repo, passthroughTx{}, fixedTime{testNow}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "bob"})
	require.NoError(t, err)

	// carol еще не подтвердила - accept не добавляется
	assert.Equal(t, []domain.TaskState{domain.StateRequested}, resp.State)
	assert.True(t, resp.Requestor[1].Confirm)
	require.NotNil(t, repo.updated)
	assert.Equal(t, testNow, repo.updated.UpdatedAt)
}

func TestExecute_LastConfirmationAppendsAccept(t *testing.T) {
	repo := &fakeTaskRepo{task: pendingTask()}
	uc := NewUseCase(repo, passthroughTx{}, fixedTime{testNow}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "bob"})
	require.NoError(t, err)

	assert.Equal(t, []domain.TaskState{domain.StateRequested, domain.StateAccept}, resp.State)
}

func TestExecute_RepeatedConfirmKeepsSingleAccept(t *testing.T) {
	// Повторное подтверждение при текущем accept не добавляет второй токен
	task := &domain.Task{
		ID: 7,
		Requestor: []domain.Requestor{
			{Username: "alice", Confirm: true},
			{Username: "bob", Confirm: true},
		},
		State: []domain.TaskState{domain.StateRequested, domain.StateAccept},
	}
	repo := &fakeTaskRepo{task: task}
	uc := NewUseCase(repo, passthroughTx{}, fixedTime{testNow}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "bob"})
	require.NoError(t, err)

	assert.Equal(t, []domain.TaskState{domain.StateRequested, domain.StateAccept}, resp.State)
}

func TestExecute_NotARequestor(t *testing.T) {
	repo := &fakeTaskRepo{task: pendingTask()}
	uc := NewUseCase(repo, passthroughTx{}, fixedTime{testNow}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "mallory"})
	assert.ErrorIs(t, err, ErrNotPermitted)
	assert.Nil(t, repo.updated)
}

func TestExecute_TaskNotFound(t *testing.T) {
	repo := &fakeTaskRepo{getErr: taskRepo.ErrTaskNotFound}
	uc := NewUseCase(repo, passthroughTx{}, fixedTime{testNow}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "bob"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeTaskRepo{}, passthroughTx{}, fixedTime{testNow}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TaskID: 0, Username: "bob"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TaskID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
