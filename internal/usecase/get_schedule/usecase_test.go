package get_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	areaRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/area"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type fakeAreaRepo struct {
	area *domain.Area
	err  error
}

func (f *fakeAreaRepo) GetByID(_ context.Context, _ int64) (*domain.Area, error) {
	return f.area, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func clockTime(hour, min int) time.Time {
	return time.Date(2000, 1, 1, hour, min, 0, 0, time.UTC)
}

func testArea(windows ...domain.AvailabilityWindow) *domain.Area {
	return &domain.Area{
		ID:      1,
		Name:    "Спортзал",
		Reserve: windows,
	}
}

// 2025-10-15 - среда (ISO 3)
var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func TestExecute_PartitionsWindow(t *testing.T) {
	area := testArea(domain.AvailabilityWindow{
		IntervalMinutes: 30,
		MaxSlots:        1,
		Start:           clockTime(9, 0),
		Stop:            clockTime(10, 0),
		Week:            "1-7",
	})

	uc := NewUseCase(&fakeAreaRepo{area: area}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AreaID: 1, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Schedule, 2)
	assert.Equal(t, "2025-10-15T09:00:00Z", resp.Schedule[0].Start)
	assert.Equal(t, "2025-10-15T09:30:00Z", resp.Schedule[0].Stop)
	assert.Equal(t, "2025-10-15T09:30:00Z", resp.Schedule[1].Start)
	assert.Equal(t, "2025-10-15T10:00:00Z", resp.Schedule[1].Stop)
}

func TestExecute_DropsPartialTail(t *testing.T) {
	// 09:00-10:15 с интервалом 30 минут: хвост 10:00-10:15 отбрасывается
	area := testArea(domain.AvailabilityWindow{
		IntervalMinutes: 30,
		MaxSlots:        1,
		Start:           clockTime(9, 0),
		Stop:            clockTime(10, 15),
		Week:            "1-7",
	})

	uc := NewUseCase(&fakeAreaRepo{area: area}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AreaID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Len(t, resp.Schedule, 2)
}

func TestExecute_AllDayWindow(t *testing.T) {
	area := testArea(domain.AvailabilityWindow{
		IntervalMinutes: domain.IntervalNotSlotted,
		MaxSlots:        1,
		AllDay:          true,
		Week:            "1-7",
	})

	uc := NewUseCase(&fakeAreaRepo{area: area}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AreaID: 1, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Schedule, 1)
	assert.Equal(t, "2025-10-15T00:00:00Z", resp.Schedule[0].Start)
	assert.Equal(t, "2025-10-16T00:00:00Z", resp.Schedule[0].Stop)
}

func TestExecute_NonMatchingWeekdayIsEmpty(t *testing.T) {
	// Окно действует только по понедельникам, дата - среда
	area := testArea(domain.AvailabilityWindow{
		IntervalMinutes: 60,
		MaxSlots:        1,
		Start:           clockTime(9, 0),
		Stop:            clockTime(18, 0),
		Week:            "1",
	})

	uc := NewUseCase(&fakeAreaRepo{area: area}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AreaID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Schedule)
	assert.Empty(t, resp.Available)
}

func TestExecute_WindowOrderPreserved(t *testing.T) {
	area := testArea(
		domain.AvailabilityWindow{
			IntervalMinutes: 60,
			MaxSlots:        1,
			Start:           clockTime(14, 0),
			Stop:            clockTime(15, 0),
			Week:            "1-7",
		},
		domain.AvailabilityWindow{
			IntervalMinutes: 60,
			MaxSlots:        1,
			Start:           clockTime(9, 0),
			Stop:            clockTime(10, 0),
			Week:            "1-7",
		},
	)

	uc := NewUseCase(&fakeAreaRepo{area: area}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AreaID: 1, Date: testDate})
	require.NoError(t, err)

	// Слоты идут в порядке объявления окон, не по возрастанию времени
	require.Len(t, resp.Schedule, 2)
	assert.Equal(t, "2025-10-15T14:00:00Z", resp.Schedule[0].Start)
	assert.Equal(t, "2025-10-15T09:00:00Z", resp.Schedule[1].Start)
}

func TestExecute_Deterministic(t *testing.T) {
	area := testArea(domain.AvailabilityWindow{
		IntervalMinutes: 60,
		MaxSlots:        1,
		Start:           clockTime(9, 0),
		Stop:            clockTime(12, 0),
		Week:            "1-7",
	})

	uc := NewUseCase(&fakeAreaRepo{area: area}, nopLogger{})

	first, err := uc.Execute(context.Background(), &Request{AreaID: 1, Date: testDate})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{AreaID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_NonPositiveIntervalContributesNothing(t *testing.T) {
	// Окно с interval = -1 (или 0) без all_day нарезке не поддается:
	// оно пропускается, запрос завершается, расписание строится из
	// остальных окон
	for _, interval := range []int{domain.IntervalNotSlotted, 0} {
		area := testArea(
			domain.AvailabilityWindow{
				IntervalMinutes: interval,
				MaxSlots:        1,
				Start:           clockTime(9, 0),
				Stop:            clockTime(18, 0),
				Week:            "1-7",
			},
			domain.AvailabilityWindow{
				IntervalMinutes: 60,
				MaxSlots:        1,
				Start:           clockTime(9, 0),
				Stop:            clockTime(10, 0),
				Week:            "1-7",
			},
		)

		uc := NewUseCase(&fakeAreaRepo{area: area}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{AreaID: 1, Date: testDate})
		require.NoError(t, err)

		require.Len(t, resp.Schedule, 1)
		assert.Equal(t, "2025-10-15T09:00:00Z", resp.Schedule[0].Start)
	}
}

func TestExecute_AreaInfoInResponse(t *testing.T) {
	area := testArea(domain.AvailabilityWindow{
		IntervalMinutes: 60,
		MaxSlots:        1,
		Start:           clockTime(9, 0),
		Stop:            clockTime(10, 0),
		Week:            "1-7",
	})
	area.Label = ptr.Ptr("спортзал, корпус Б")

	uc := NewUseCase(&fakeAreaRepo{area: area}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AreaID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, "Спортзал", resp.Name)
	assert.Equal(t, "спортзал, корпус Б", resp.Label)
}

func TestExecute_AvailabilityCounter(t *testing.T) {
	area := testArea(domain.AvailabilityWindow{
		IntervalMinutes: 60,
		MaxSlots:        5,
		Start:           clockTime(9, 0),
		Stop:            clockTime(11, 0),
		Week:            "1-7",
	})

	uc := NewUseCase(&fakeAreaRepo{area: area}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AreaID: 1, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Available, 2)
	for _, s := range resp.Available {
		assert.Equal(t, 1, s.N)
	}
}

func TestExecute_AreaNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAreaRepo{err: areaRepo.ErrAreaNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AreaID: 42, Date: testDate})
	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeAreaRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AreaID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{AreaID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepoFailure(t *testing.T) {
	uc := NewUseCase(&fakeAreaRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AreaID: 1, Date: testDate})
	assert.ErrorIs(t, err, ErrInternal)
}
