package get_room_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

type mockSession struct {
	mock.Mock
}

func (m *mockSession) RoomView(roomID int64) (*session.RoomView, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.RoomView), args.Error(1)
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/rooms/{roomId}/slots", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_ReturnsView(t *testing.T) {
	cutoff := 900
	sess := &mockSession{}
	sess.On("RoomView", int64(5)).Return(&session.RoomView{
		RoomID:      5,
		Room:        &domain.Room{ID: 5, Name: "Orchid", Tower: "A", Level: "3", Capacity: 8},
		Date:        "2026-01-08",
		DisplayDate: "Thursday, 8 January 2026",
		Cutoff:      &cutoff,
		Slots: []session.SlotView{
			{Label: "3:00 PM - 4:00 PM", Start: "15:00", End: "16:00", Status: domain.SlotAvailable},
			{Label: "4:00 PM - 5:00 PM", Start: "16:00", End: "17:00", Status: domain.SlotBooked, EventName: "Standup"},
		},
	}, nil)

	rec := serve(NewHandler(sess, logger.NewNop()), "/api/v1/rooms/5/slots")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RoomSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Orchid", resp.Room.Name)
	assert.Equal(t, "15:00", resp.BookableFrom)
	assert.Equal(t, "empty", resp.Selection.Kind)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "Booked", resp.Slots[1].Status)
}

func TestHandle_RoomNotOpen(t *testing.T) {
	sess := &mockSession{}
	sess.On("RoomView", int64(7)).Return(nil, session.ErrRoomNotOpen)

	rec := serve(NewHandler(sess, logger.NewNop()), "/api/v1/rooms/7/slots")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidRoomID(t *testing.T) {
	sess := &mockSession{}

	rec := serve(NewHandler(sess, logger.NewNop()), "/api/v1/rooms/abc/slots")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	sess.AssertNotCalled(t, "RoomView", mock.Anything)
}
