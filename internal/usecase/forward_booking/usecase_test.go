package forward_booking

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

var (
	testNow  = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	testDir  = domain.NewStaffDirectory([]string{"head", "director", "dean"})
	emptyDir = domain.NewStaffDirectory(nil)
)

func newUC(repo *fakeTaskRepo, dir domain.StaffDirectory) *UseCase {
	return NewUseCase(repo, dir, passthroughTx{}, fixedTime{testNow}, nopLogger{})
}

func requestedTask() *domain.Task {
	return &domain.Task{
		ID:    7,
		State: []domain.TaskState{domain.StateRequested},
	}
}

func TestExecute_FirstForwardUsesFirstLevel(t *testing.T) {
	repo := &fakeTaskRepo{task: requestedTask()}
	uc := newUC(repo, testDir)

	resp, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "admin"})
	require.NoError(t, err)

	require.Len(t, resp.Staff, 1)
	assert.Equal(t, "head", resp.Staff[0].Group)
	assert.Equal(t, domain.StateForward, resp.State[len(resp.State)-1])
}

func TestExecute_AdvancesToNextLevel(t *testing.T) {
	task := requestedTask()
	task.Staff = []domain.StaffRequested{{Group: "head"}}
	repo := &fakeTaskRepo{task: task}
	uc := newUC(repo, testDir)

	resp, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "admin"})
	require.NoError(t, err)

	require.Len(t, resp.Staff, 2)
	assert.Equal(t, "director", resp.Staff[1].Group)
}

func TestExecute_ExhaustedChainKeepsStaffButAppendsForward(t *testing.T) {
	task := requestedTask()
	task.Staff = []domain.StaffRequested{
		{Group: "head"},
		{Group: "director"},
		{Group: "dean"},
	}
	repo := &fakeTaskRepo{task: task}
	uc := newUC(repo, testDir)

	resp, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "admin"})
	require.NoError(t, err)

	// Ступени не меняются, но токен forward добавляется
	assert.Len(t, resp.Staff, 3)
	assert.Equal(t, []domain.TaskState{domain.StateRequested, domain.StateForward}, resp.State)
}

func TestExecute_UnknownCurrentLevelKeepsStaff(t *testing.T) {
	task := requestedTask()
	task.Staff = []domain.StaffRequested{{Group: "janitor"}}
	repo := &fakeTaskRepo{task: task}
	uc := newUC(repo, testDir)

	resp, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "admin"})
	require.NoError(t, err)

	assert.Len(t, resp.Staff, 1)
	assert.Equal(t, domain.StateForward, resp.State[len(resp.State)-1])
}

func TestExecute_NoteRecorded(t *testing.T) {
	repo := &fakeTaskRepo{task: requestedTask()}
	uc := newUC(repo, testDir)

	resp, err := uc.Execute(context.Background(), &Request{
		TaskID:   7,
		Username: "admin",
		Note:     "требуется одобрение руководителя",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Desc)
	assert.Equal(t, "требуется одобрение руководителя", resp.Desc.Msg)
}

func TestExecute_EmptyDirectoryRejected(t *testing.T) {
	repo := &fakeTaskRepo{task: requestedTask()}
	uc := newUC(repo, emptyDir)

	_, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "admin"})
	assert.ErrorIs(t, err, ErrNoStaffLevels)
	assert.Nil(t, repo.updated)
}

func TestExecute_TaskNotFound(t *testing.T) {
	repo := &fakeTaskRepo{getErr: taskRepo.ErrTaskNotFound}
	uc := newUC(repo, testDir)

	_, err := uc.Execute(context.Background(), &Request{TaskID: 7, Username: "admin"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
