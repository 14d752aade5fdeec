package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func slotAt(day, startHour, startMin, stopHour, stopMin int) TimeSlot {
	return TimeSlot{
		Start: time.Date(2025, 10, day, startHour, startMin, 0, 0, time.UTC),
		Stop:  time.Date(2025, 10, day, stopHour, stopMin, 0, 0, time.UTC),
	}
}

func TestClockTimeCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeSlot
		want bool
	}{
		{
			name: "identical clock times collide",
			a:    slotAt(15, 10, 0, 11, 0),
			b:    slotAt(15, 10, 0, 11, 0),
			want: true,
		},
		{
			name: "same start different stop collides",
			a:    slotAt(15, 10, 0, 11, 0),
			b:    slotAt(15, 10, 0, 12, 0),
			want: true,
		},
		{
			name: "same stop different start collides",
			a:    slotAt(15, 10, 0, 12, 0),
			b:    slotAt(15, 11, 0, 12, 0),
			want: true,
		},
		{
			name: "same clock on different dates still collides",
			a:    slotAt(15, 10, 0, 11, 0),
			b:    slotAt(22, 10, 0, 11, 0),
			want: true,
		},
		{
			name: "shifted partial overlap does not collide",
			a:    slotAt(15, 10, 0, 11, 0),
			b:    slotAt(15, 10, 30, 11, 30),
			want: false,
		},
		{
			name: "disjoint slots do not collide",
			a:    slotAt(15, 10, 0, 11, 0),
			b:    slotAt(15, 14, 0, 15, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockTimeCollides(tt.a, tt.b))
		})
	}
}

func TestTimeSlot_DurationMinutes(t *testing.T) {
	assert.Equal(t, 60, slotAt(15, 10, 0, 11, 0).DurationMinutes())
	assert.Equal(t, 30, slotAt(15, 10, 0, 10, 30).DurationMinutes())
}

func TestTimeSlot_Overlaps(t *testing.T) {
	base := slotAt(15, 10, 0, 11, 0)

	assert.True(t, base.Overlaps(slotAt(15, 10, 30, 11, 30)))
	assert.True(t, base.Overlaps(slotAt(15, 9, 0, 12, 0)))

	// Граничащие слоты не пересекаются
	assert.False(t, base.Overlaps(slotAt(15, 11, 0, 12, 0)))
	assert.False(t, base.Overlaps(slotAt(15, 9, 0, 10, 0)))
}
