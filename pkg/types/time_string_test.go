package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"9:30", "24:00", "12:60", "12-30", "", "12:3"} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeString, invalid)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)

	later, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "10:15", later.String())
}

func TestTimeString_Comparison(t *testing.T) {
	early, _ := NewTimeStringFromString("09:00")
	late, _ := NewTimeStringFromString("18:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))

	minutes, err := early.MinutesUntil(late)
	require.NoError(t, err)
	assert.Equal(t, 540, minutes)
}
