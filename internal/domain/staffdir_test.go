package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffDirectory_First(t *testing.T) {
	dir := NewStaffDirectory([]string{"head", "director", "dean"})

	first, ok := dir.First()
	require.True(t, ok)
	assert.Equal(t, "head", first)

	_, ok = NewStaffDirectory(nil).First()
	assert.False(t, ok)
}

func TestStaffDirectory_Next(t *testing.T) {
	dir := NewStaffDirectory([]string{"head", "director", "dean"})

	next, ok := dir.Next("head")
	require.True(t, ok)
	assert.Equal(t, "director", next)

	next, ok = dir.Next("director")
	require.True(t, ok)
	assert.Equal(t, "dean", next)

	// Цепочка исчерпана
	_, ok = dir.Next("dean")
	assert.False(t, ok)

	// Неизвестный уровень не продвигается
	_, ok = dir.Next("janitor")
	assert.False(t, ok)
}

func TestStaffDirectory_Immutable(t *testing.T) {
	levels := []string{"head", "director"}
	dir := NewStaffDirectory(levels)

	levels[0] = "mutated"
	first, _ := dir.First()
	assert.Equal(t, "head", first)

	out := dir.Levels()
	out[0] = "mutated"
	first, _ = dir.First()
	assert.Equal(t, "head", first)
}

func TestStaffDirectory_Empty(t *testing.T) {
	assert.True(t, NewStaffDirectory(nil).Empty())
	assert.True(t, NewStaffDirectory([]string{}).Empty())
	assert.False(t, NewStaffDirectory([]string{"head"}).Empty())
}
