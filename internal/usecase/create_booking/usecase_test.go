package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	areaRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/area"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/internal/usecase/validate_slots"
)

type fakeAreaRepo struct {
	area *domain.Area
	err  error
}

func (f *fakeAreaRepo) GetByID(_ context.Context, _ int64) (*domain.Area, error) {
	return f.area, f.err
}

type fakeTaskRepo struct {
	reserved []domain.TimeSlot
	created  *domain.Task
}

func (f *fakeTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	out := *t
	out.ID = 101
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	f.reserved = append(f.reserved, t.Reserve...)
	return &out, nil
}

func (f *fakeTaskRepo) GetReserveByArea(_ context.Context, _ int64) ([]domain.TimeSlot, error) {
	return f.reserved, nil
}

type fakeUsers struct {
	missing map[string]bool
}

func (f *fakeUsers) GetUser(_ context.Context, username string) (*userservice.User, error) {
	if f.missing[username] {
		return nil, userservice.ErrUserNotFound
	}
	return &userservice.User{Username: username}, nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2025-10-15 - среда (ISO 3)
var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func testArea(requestorCount int) *domain.Area {
	return &domain.Area{
		ID:   1,
		Name: "Спортзал",
		Required: domain.RequiredPolicy{
			Requestor: requestorCount,
		},
		Reserve: []domain.AvailabilityWindow{{
			IntervalMinutes: 60,
			MaxSlots:        1,
			Start:           time.Date(2000, 1, 1, 9, 0, 0, 0, time.UTC),
			Stop:            time.Date(2000, 1, 1, 18, 0, 0, 0, time.UTC),
			Week:            "1-7",
		}},
	}
}

func testSlot(hour int) domain.TimeSlot {
	return domain.TimeSlot{
		Start: testDate.Add(time.Duration(hour) * time.Hour),
		Stop:  testDate.Add(time.Duration(hour+1) * time.Hour),
	}
}

func newTestUseCase(area *domain.Area, tasks *fakeTaskRepo, users *fakeUsers) *UseCase {
	if users == nil {
		users = &fakeUsers{}
	}
	return NewUseCase(
		&fakeAreaRepo{area: area},
		tasks,
		users,
		passthroughTx{},
		validate_slots.Options{},
		nopLogger{},
	)
}

func TestExecute_SingleRequestorStartsAccepted(t *testing.T) {
	tasks := &fakeTaskRepo{}
	uc := newTestUseCase(testArea(1), tasks, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID:     1,
		Type:       domain.TypeSport,
		Reserve:    []domain.TimeSlot{testSlot(10)},
		Requestors: []string{"alice"},
		Owner:      "alice",
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.TaskState{domain.StateAccept}, resp.State)
	require.Len(t, resp.Requestor, 1)
	assert.True(t, resp.Requestor[0].Confirm)
	assert.NotEmpty(t, resp.VID)
	assert.Len(t, resp.VID, 8)
}

func TestExecute_MultiRequestorStartsRequested(t *testing.T) {
	tasks := &fakeTaskRepo{}
	uc := newTestUseCase(testArea(3), tasks, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID:     1,
		Type:       domain.TypeSport,
		Reserve:    []domain.TimeSlot{testSlot(10)},
		Requestors: []string{"alice", "bob", "carol"},
		Owner:      "alice",
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.TaskState{domain.StateRequested}, resp.State)
	require.Len(t, resp.Requestor, 3)
	assert.True(t, resp.Requestor[0].Confirm)
	assert.False(t, resp.Requestor[1].Confirm)
	assert.False(t, resp.Requestor[2].Confirm)
}

func TestExecute_OwnerMustBeFirstRequestor(t *testing.T) {
	uc := newTestUseCase(testArea(2), &fakeTaskRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		AreaID:     1,
		Type:       domain.TypeSport,
		Reserve:    []domain.TimeSlot{testSlot(10)},
		Requestors: []string{"bob", "alice"},
		Owner:      "alice",
	})
	assert.ErrorIs(t, err, ErrInvalidOwner)
}

func TestExecute_RequestorCountMismatch(t *testing.T) {
	uc := newTestUseCase(testArea(2), &fakeTaskRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		AreaID:     1,
		Type:       domain.TypeSport,
		Reserve:    []domain.TimeSlot{testSlot(10)},
		Requestors: []string{"alice"},
		Owner:      "alice",
	})
	assert.ErrorIs(t, err, ErrRequestorCount)
}

func TestExecute_UnknownRequestor(t *testing.T) {
	users := &fakeUsers{missing: map[string]bool{"ghost": true}}
	uc := newTestUseCase(testArea(2), &fakeTaskRepo{}, users)

	_, err := uc.Execute(context.Background(), &Request{
		AreaID:     1,
		Type:       domain.TypeSport,
		Reserve:    []domain.TimeSlot{testSlot(10)},
		Requestors: []string{"alice", "ghost"},
		Owner:      "alice",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_AreaNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeAreaRepo{err: areaRepo.ErrAreaNotFound},
		&fakeTaskRepo{},
		&fakeUsers{},
		passthroughTx{},
		validate_slots.Options{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		AreaID:     42,
		Type:       domain.TypeSport,
		Reserve:    []domain.TimeSlot{testSlot(10)},
		Requestors: []string{"alice"},
		Owner:      "alice",
	})
	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestExecute_SecondBookingOfSameSlotConflicts(t *testing.T) {
	tasks := &fakeTaskRepo{}
	uc := newTestUseCase(testArea(1), tasks, nil)

	req := &Request{
		AreaID:     1,
		Type:       domain.TypeSport,
		Reserve:    []domain.TimeSlot{testSlot(10)},
		Requestors: []string{"alice"},
		Owner:      "alice",
	}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	second := *req
	second.Requestors = []string{"bob"}
	second.Owner = "bob"

	_, err = uc.Execute(context.Background(), &second)
	assert.ErrorIs(t, err, validate_slots.ErrSlotConflict)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(testArea(1), &fakeTaskRepo{}, nil)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero area", &Request{Type: domain.TypeSport, Reserve: []domain.TimeSlot{testSlot(10)}, Requestors: []string{"a"}, Owner: "a"}},
		{"unknown type", &Request{AreaID: 1, Type: "party", Reserve: []domain.TimeSlot{testSlot(10)}, Requestors: []string{"a"}, Owner: "a"}},
		{"no slots", &Request{AreaID: 1, Type: domain.TypeSport, Requestors: []string{"a"}, Owner: "a"}},
		{"no requestors", &Request{AreaID: 1, Type: domain.TypeSport, Reserve: []domain.TimeSlot{testSlot(10)}, Owner: "a"}},
		{"no owner", &Request{AreaID: 1, Type: domain.TypeSport, Reserve: []domain.TimeSlot{testSlot(10)}, Requestors: []string{"a"}}},
		{"duplicate requestors", &Request{AreaID: 1, Type: domain.TypeSport, Reserve: []domain.TimeSlot{testSlot(10)}, Requestors: []string{"a", "a"}, Owner: "a"}},
		{"inverted slot", &Request{AreaID: 1, Type: domain.TypeSport, Reserve: []domain.TimeSlot{{Start: testDate.Add(11 * time.Hour), Stop: testDate.Add(10 * time.Hour)}}, Requestors: []string{"a"}, Owner: "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
