package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

const testDate = "2026-01-08"

func TestSelector_TapFiresOnChange(t *testing.T) {
	grid := newGrid(t, []int{9, 10, 11}, 10)
	selector := NewSelector(logger.NewNop())

	var changes []*Interval
	selector.OnChange(func(i *Interval) { changes = append(changes, i) })

	selector.Tap(5, testDate, grid, label(9), domain.SlotAvailable)
	_, outcome := selector.Tap(5, testDate, grid, label(11), domain.SlotAvailable)

	assert.Equal(t, domain.MsgContiguousOnly, outcome.Warning)
	require.Len(t, changes, 2)
	assert.Equal(t, "09:00 – 10:00", changes[0].Display())
	assert.Equal(t, "11:00 – 12:00", changes[1].Display())

	selector.Tap(5, testDate, grid, label(11), domain.SlotAvailable)
	require.Len(t, changes, 3)
	assert.Nil(t, changes[2])
}

func TestSelector_BookedTapDoesNotNotify(t *testing.T) {
	grid := newGrid(t, []int{9, 10}, 10)
	selector := NewSelector(logger.NewNop())

	calls := 0
	selector.OnChange(func(*Interval) { calls++ })

	selector.Tap(5, testDate, grid, label(9), domain.SlotAvailable)
	snap, outcome := selector.Tap(5, testDate, grid, label(10), domain.SlotBooked)

	assert.False(t, outcome.Changed)
	assert.Equal(t, 1, calls)
	assert.Equal(t, Single(label(9)), snap.State)
}

func TestSelector_OtherRoomDiscardsSelection(t *testing.T) {
	grid := newGrid(t, []int{9, 10, 11})
	other := newGrid(t, []int{9, 10, 11})
	selector := NewSelector(logger.NewNop())

	selector.Tap(5, testDate, grid, label(9), domain.SlotAvailable)
	selector.Tap(5, testDate, grid, label(11), domain.SlotAvailable)
	assert.True(t, selector.IsSelected(5, label(10)))

	snap, _ := selector.Tap(7, testDate, other, label(11), domain.SlotAvailable)
	assert.Equal(t, int64(7), snap.RoomID)
	assert.Equal(t, Single(label(11)), snap.State)
	assert.False(t, selector.IsSelected(5, label(10)))
	assert.True(t, selector.IsSelected(7, label(11)))
}

func TestSelector_OtherDateDiscardsSelection(t *testing.T) {
	grid := newGrid(t, []int{9, 10, 11})
	selector := NewSelector(logger.NewNop())

	selector.Tap(5, testDate, grid, label(9), domain.SlotAvailable)
	snap, _ := selector.Tap(5, "2026-01-09", grid, label(10), domain.SlotAvailable)

	assert.Equal(t, Single(label(10)), snap.State)
	assert.Nil(t, selector.Current(5, testDate))
	assert.NotNil(t, selector.Current(5, "2026-01-09"))
}

func TestSelector_IsSelectedCoversSpan(t *testing.T) {
	grid := newGrid(t, []int{9, 10, 11, 12})
	selector := NewSelector(logger.NewNop())

	selector.Tap(5, testDate, grid, label(10), domain.SlotAvailable)
	selector.Tap(5, testDate, grid, label(12), domain.SlotAvailable)

	assert.False(t, selector.IsSelected(5, label(9)))
	assert.True(t, selector.IsSelected(5, label(10)))
	assert.True(t, selector.IsSelected(5, label(11)))
	assert.True(t, selector.IsSelected(5, label(12)))
	assert.False(t, selector.IsSelected(5, "garbage"))
}

func TestSelector_ClearFor(t *testing.T) {
	grid := newGrid(t, []int{9, 10})
	selector := NewSelector(logger.NewNop())

	var last *Interval
	notified := false
	selector.OnChange(func(i *Interval) { last, notified = i, true })

	selector.Tap(5, testDate, grid, label(9), domain.SlotAvailable)
	assert.False(t, selector.ClearFor(6, testDate))
	assert.False(t, selector.ClearFor(5, "2026-01-09"))
	require.NotNil(t, selector.Current(5, testDate))

	notified = false
	assert.True(t, selector.ClearFor(5, testDate))
	assert.True(t, notified)
	assert.Nil(t, last)
	assert.True(t, selector.Snapshot().State.IsEmpty())
}

func TestSelector_Clear(t *testing.T) {
	grid := newGrid(t, []int{9, 10})
	selector := NewSelector(logger.NewNop())

	calls := 0
	selector.OnChange(func(*Interval) { calls++ })

	selector.Clear()
	assert.Equal(t, 0, calls)

	selector.Tap(5, testDate, grid, label(9), domain.SlotAvailable)
	selector.Clear()
	assert.Equal(t, 2, calls)
	assert.Nil(t, selector.Current(5, testDate))
}
