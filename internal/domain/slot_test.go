package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_SortsByStart(t *testing.T) {
	grid, err := NewGrid([]Slot{
		{Label: "11:00 AM - 12:00 PM", StartMinute: 660, EndMinute: 720, Status: SlotAvailable},
		{Label: "9:00 AM - 10:00 AM", StartMinute: 540, EndMinute: 600, Status: SlotBooked},
		{Label: "10:00 AM - 11:00 AM", StartMinute: 600, EndMinute: 660, Status: SlotAvailable},
	})
	require.NoError(t, err)
	require.Equal(t, 3, grid.Len())

	assert.Equal(t, "9:00 AM - 10:00 AM", grid.At(0).Label)
	assert.Equal(t, "11:00 AM - 12:00 PM", grid.At(2).Label)

	i, ok := grid.IndexOf("10:00 AM - 11:00 AM")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, grid.AvailableCount())
}

func TestNewGrid_RejectsOverlap(t *testing.T) {
	_, err := NewGrid([]Slot{
		{Label: "a", StartMinute: 540, EndMinute: 630},
		{Label: "b", StartMinute: 600, EndMinute: 660},
	})
	assert.ErrorIs(t, err, ErrOverlappingSlots)

	_, err = NewGrid([]Slot{
		{Label: "a", StartMinute: 540, EndMinute: 600},
		{Label: "a", StartMinute: 600, EndMinute: 660},
	})
	assert.ErrorIs(t, err, ErrOverlappingSlots)
}

func TestGrid_FilterKeepsIndex(t *testing.T) {
	grid, err := NewGrid([]Slot{
		{Label: "a", StartMinute: 0, EndMinute: 60},
		{Label: "b", StartMinute: 60, EndMinute: 120},
		{Label: "c", StartMinute: 120, EndMinute: 180},
	})
	require.NoError(t, err)

	filtered := grid.Filter(func(s Slot) bool { return s.StartMinute >= 60 })
	assert.Equal(t, 2, filtered.Len())
	i, ok := filtered.IndexOf("c")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = filtered.IndexOf("a")
	assert.False(t, ok)
	// исходная сетка не изменилась
	assert.Equal(t, 3, grid.Len())
}

func TestGrid_NilSafe(t *testing.T) {
	var g *Grid
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Slots())
	_, ok := g.Get("x")
	assert.False(t, ok)
}

func TestParseBookingTag(t *testing.T) {
	tag, ok := ParseBookingTag("Upcoming")
	assert.True(t, ok)
	assert.Equal(t, TagActive, tag)

	tag, ok = ParseBookingTag("cancelled")
	assert.True(t, ok)
	assert.Equal(t, TagCancelled, tag)

	_, ok = ParseBookingTag("weird")
	assert.False(t, ok)
}

func TestRoom_HasLocation(t *testing.T) {
	assert.True(t, (&Room{Name: "Orchid", Tower: "A", Level: "3"}).HasLocation())
	assert.False(t, (&Room{Name: "Orchid", Tower: "A"}).HasLocation())
	var r *Room
	assert.False(t, r.HasLocation())
}
