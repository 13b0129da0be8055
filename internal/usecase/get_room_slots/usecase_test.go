package get_room_slots

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Fetch(ctx context.Context, roomID int64, date string) (*availability.Entry, error) {
	args := m.Called(ctx, roomID, date)
	if e := args.Get(0); e != nil {
		return e.(*availability.Entry), args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func dayEntry(t *testing.T) *availability.Entry {
	t.Helper()
	slots := make([]domain.Slot, 0, 10)
	for h := 8; h < 18; h++ {
		slots = append(slots, domain.Slot{
			Label:       fmt.Sprintf("slot-%02d", h),
			StartMinute: h * 60,
			EndMinute:   (h + 1) * 60,
			Status:      domain.SlotAvailable,
		})
	}
	grid, err := domain.NewGrid(slots)
	require.NoError(t, err)
	return &availability.Entry{
		Key:  availability.Key{RoomID: 5, Date: "2026-01-08"},
		Room: &domain.Room{ID: 5, Name: "Orchid", Tower: "A", Level: "3"},
		Grid: grid,
	}
}

func TestUseCase_Execute_TodayAppliesCutoff(t *testing.T) {
	cache := &mockCache{}
	cache.On("Fetch", mock.Anything, int64(5), "2026-01-08").Return(dayEntry(t), nil)

	now := time.Date(2026, 1, 8, 14, 37, 0, 0, time.Local)
	uc := NewUseCase(cache, logger.NewNop()).WithTimeProvider(fixedClock{now: now})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 5, Date: time.Date(2026, 1, 8, 0, 0, 0, 0, time.Local)})
	require.NoError(t, err)

	require.NotNil(t, resp.Cutoff)
	assert.Equal(t, 900, *resp.Cutoff)
	assert.Equal(t, 3, resp.Grid.Len())
	assert.Equal(t, "slot-15", resp.Grid.At(0).Label)
	assert.Equal(t, "Orchid", resp.Room.Name)
	cache.AssertExpectations(t)
}

func TestUseCase_Execute_FutureDateKeepsAllSlots(t *testing.T) {
	cache := &mockCache{}
	cache.On("Fetch", mock.Anything, int64(5), "2026-01-09").Return(dayEntry(t), nil)

	now := time.Date(2026, 1, 8, 14, 37, 0, 0, time.Local)
	uc := NewUseCase(cache, logger.NewNop()).WithTimeProvider(fixedClock{now: now})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 5, Date: time.Date(2026, 1, 9, 0, 0, 0, 0, time.Local)})
	require.NoError(t, err)
	assert.Nil(t, resp.Cutoff)
	assert.Equal(t, 10, resp.Grid.Len())
}

func TestUseCase_Execute_Errors(t *testing.T) {
	now := time.Date(2026, 1, 8, 9, 0, 0, 0, time.Local)
	today := time.Date(2026, 1, 8, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		req      *Request
		cacheErr error
		wantErr  error
	}{
		{"nil request", nil, nil, ErrInvalidInput},
		{"bad room", &Request{RoomID: 0, Date: today}, nil, ErrInvalidInput},
		{"no date", &Request{RoomID: 5}, nil, ErrInvalidInput},
		{"past date", &Request{RoomID: 5, Date: today.AddDate(0, 0, -1)}, nil, ErrInvalidDate},
		{"not found", &Request{RoomID: 5, Date: today}, availability.ErrRoomNotFound, ErrRoomNotFound},
		{"fetch failed", &Request{RoomID: 5, Date: today}, fmt.Errorf("%w: timeout", availability.ErrFetchFailed), ErrFetchFailed},
		{"cancelled", &Request{RoomID: 5, Date: today}, context.Canceled, context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := &mockCache{}
			if tt.cacheErr != nil {
				cache.On("Fetch", mock.Anything, int64(5), "2026-01-08").Return(nil, tt.cacheErr)
			}
			uc := NewUseCase(cache, logger.NewNop()).WithTimeProvider(fixedClock{now: now})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			cache.AssertExpectations(t)
		})
	}
}
