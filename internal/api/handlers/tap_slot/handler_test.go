package tap_slot

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/selection"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

type mockSession struct {
	mock.Mock
}

func (m *mockSession) Tap(roomID int64, label string, status domain.SlotStatus) (*session.TapResult, error) {
	args := m.Called(roomID, label, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.TapResult), args.Error(1)
}

func (m *mockSession) Date() time.Time {
	return time.Date(2026, 1, 8, 0, 0, 0, 0, time.Local)
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/selection/tap", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_RangeSelection(t *testing.T) {
	sess := &mockSession{}
	sess.On("Tap", int64(5), "11:00 AM - 12:00 PM", domain.SlotStatus("")).Return(&session.TapResult{
		Changed: true,
		State:   selection.Range("9:00 AM - 10:00 AM", "11:00 AM - 12:00 PM"),
		Selection: &selection.Interval{
			StartLabel:  "9:00 AM - 10:00 AM",
			EndLabel:    "11:00 AM - 12:00 PM",
			StartMinute: 540,
			EndMinute:   720,
			Start:       types.TimeString("09:00"),
			End:         types.TimeString("12:00"),
		},
	}, nil)

	rec := serve(NewHandler(sess, logger.NewNop()), `{"roomId":5,"label":"11:00 AM - 12:00 PM"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TapResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Changed)
	assert.Equal(t, "range", resp.Selection.Kind)
	assert.Equal(t, "09:00 – 12:00", resp.Selection.Display)
	assert.Equal(t, "2026-01-08", resp.Selection.Date)
	sess.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", session.ErrInvalidInput, http.StatusBadRequest},
		{"room not open", session.ErrRoomNotOpen, http.StatusNotFound},
		{"slots not loaded", session.ErrSlotsNotLoaded, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &mockSession{}
			sess.On("Tap", int64(5), "9:00 AM - 10:00 AM", domain.SlotAvailable).Return(nil, tt.err)

			rec := serve(NewHandler(sess, logger.NewNop()), `{"roomId":5,"label":"9:00 AM - 10:00 AM","status":"Available"}`)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	sess := &mockSession{}
	rec := serve(NewHandler(sess, logger.NewNop()), `{"roomId":"five"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	sess.AssertNotCalled(t, "Tap", mock.Anything, mock.Anything, mock.Anything)
}
