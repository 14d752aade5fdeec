package cancel_booking

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

func acceptedTask() *domain.Task {
	return &domain.Task{
		ID: 7,
		Requestor: []domain.Requestor{
			{Username: "alice", Confirm: true},
			{Username: "bob", Confirm: true},
		},
		State: []domain.TaskState{domain.StateRequested, domain.StateAccept},
	}
}

func TestExecute_OwnerCancels(t *testing.T) {
	repo := &fakeTaskRepo{task: acceptedTask()}
	uc := NewUseCase(repo, passthroughTx{}, fixedTime{testNow}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TaskID:   7,
		Username: "alice",
		Note:     "планы изменились",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StateDrop, resp.State[len(resp.State)-1])
	require.NotNil(t, resp.Desc)
	assert.Equal(t, "планы изменились", resp.Desc.Msg)
	assert.Equal(t, testNow, resp.Desc.CreateAt)
	assert.Equal(t, testNow, repo.updated.UpdatedAt)
}

func TestExecute_StaffCancelsAnyBooking(t *testing.T) {
	repo := &fakeTaskRepo{task: acceptedTask()}
	uc := NewUseCase(repo, passthroughTx{}, fixedTime{testNow}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TaskID:   7,
		Username: "admin",
		AsStaff:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StateDrop, resp.State[len(resp.State)-1])
	assert.Nil(t, resp.Desc)
}

func TestExecute_NonOwnerParticipantRejected(t *testing.T) {
	repo := &fakeTaskRepo{task: acceptedTask()}
	uc := NewUseCase(repo, passthroughTx{}, fixedTime{testNow}, nopLogger{})

	// bob участник, но не владелец
	_, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "bob"})
	assert.ErrorIs(t, err, ErrNotPermitted)
	assert.Nil(t, repo.updated)
}

func TestExecute_TaskNotFound(t *testing.T) {
	repo := &fakeTaskRepo{getErr: taskRepo.ErrTaskNotFound}
	uc := NewUseCase(repo, passthroughTx{}, fixedTime{testNow}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "alice"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestExecute_NotePreservesHistory(t *testing.T) {
	task := acceptedTask()
	task.Desc = &domain.Desc{Msg: "создано по заявке", CreateAt: testNow.Add(-time.Hour)}
	repo := &fakeTaskRepo{task: task}
	uc := NewUseCase(repo, passthroughTx{}, fixedTime{testNow}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TaskID:   7,
		Username: "alice",
		Note:     "отменено",
	})
	require.NoError(t, err)

	assert.Equal(t, "создано по заявке\nотменено", resp.Desc.Msg)
	assert.Equal(t, testNow, resp.Desc.CreateAt)
}
