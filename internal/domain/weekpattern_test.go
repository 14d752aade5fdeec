package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekPattern_Range(t *testing.T) {
	weeks, err := ParseWeekPattern("1-7")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, weeks.Days())
}

func TestParseWeekPattern_PartialRange(t *testing.T) {
	weeks, err := ParseWeekPattern("2-5")
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 4, 5}, weeks.Days())
	assert.False(t, weeks.Contains(1))
	assert.True(t, weeks.Contains(3))
	assert.False(t, weeks.Contains(6))
}

func TestParseWeekPattern_SingleDayRange(t *testing.T) {
	weeks, err := ParseWeekPattern("3-3")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, weeks.Days())
}

func TestParseWeekPattern_List(t *testing.T) {
	weeks, err := ParseWeekPattern("1,3,5")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 5}, weeks.Days())
	assert.True(t, weeks.Contains(1))
	assert.False(t, weeks.Contains(2))
}

func TestParseWeekPattern_SingleValue(t *testing.T) {
	weeks, err := ParseWeekPattern("7")
	require.NoError(t, err)
	assert.Equal(t, []int{7}, weeks.Days())
}

func TestParseWeekPattern_DuplicatesCollapse(t *testing.T) {
	weeks, err := ParseWeekPattern("1,1,3,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, weeks.Days())
}

func TestParseWeekPattern_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"non-numeric", "mon-fri"},
		{"zero day", "0-5"},
		{"day above seven", "1-8"},
		{"inverted range", "5-2"},
		{"list with zero", "0,1,2"},
		{"list with letters", "1,x,3"},
		{"trailing comma", "1,2,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWeekPattern(tt.pattern)
			assert.ErrorIs(t, err, ErrInvalidWeekPattern)
		})
	}
}

func TestISOWeekday_SundayIsSeven(t *testing.T) {
	// 2025-10-12 - воскресенье
	sunday := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, ISOWeekday(sunday))

	// 2025-10-13 - понедельник
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, ISOWeekday(monday))
}
