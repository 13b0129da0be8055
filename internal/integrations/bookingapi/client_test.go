package bookingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

const testToken = "secret-token"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", testToken, 2*time.Second, logger.NewNop(), WithRateLimit(1000, 100))
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_GetRooms(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rooms", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(headerRequestID))

		writeJSON(t, w, http.StatusOK, []RoomDTO{
			{ID: 1, Name: "Orchid", Tower: "A", Level: "3", Capacity: 8, Department: "IT"},
			{ID: 2, Name: "Lotus", Tower: "B", Level: "1", Capacity: 4},
		})
	})

	rooms, err := client.GetRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, domain.Room{ID: 1, Name: "Orchid", Tower: "A", Level: "3", Capacity: 8, Department: "IT"}, rooms[0])
}

func TestClient_GetRooms_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetRooms(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_GetRoomAvailability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rooms/5/availability", r.URL.Path)
		assert.Equal(t, "2026-01-08", r.URL.Query().Get("date"))

		writeJSON(t, w, http.StatusOK, AvailabilityResponse{
			RoomDetails: &RoomDTO{ID: 5, Name: "Orchid", Tower: "A", Level: "3"},
			Availability: map[string]SlotDTO{
				"10:00 AM - 11:00 AM": {Status: "Booked", EventName: "Standup", PIC: "Ann"},
				"9:00 AM - 10:00 AM":  {Status: "Available"},
				"11:00 AM - 12:00 PM": {Status: "available"},
			},
		})
	})

	result, err := client.GetRoomAvailability(context.Background(), 5, "2026-01-08")
	require.NoError(t, err)
	require.NotNil(t, result.Room)
	assert.Equal(t, "Orchid", result.Room.Name)

	require.Equal(t, 3, result.Grid.Len())
	assert.Equal(t, "9:00 AM - 10:00 AM", result.Grid.At(0).Label)
	assert.Equal(t, domain.SlotBooked, result.Grid.At(1).Status)
	assert.Equal(t, "Standup", result.Grid.At(1).EventName)
	assert.Equal(t, domain.SlotAvailable, result.Grid.At(2).Status)
}

func TestClient_GetRoomAvailability_MalformedLabel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, AvailabilityResponse{
			Availability: map[string]SlotDTO{"nine to ten": {Status: "Available"}},
		})
	})

	_, err := client.GetRoomAvailability(context.Background(), 5, "2026-01-08")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetRoomAvailability_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetRoomAvailability(context.Background(), 99, "2026-01-08")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestClient_GetRoomAvailability_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testToken, 20*time.Millisecond, logger.NewNop())
	_, err := client.GetRoomAvailability(context.Background(), 5, "2026-01-08")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestClient_CreateBooking(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)

		var req CreateBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "13:00", req.StartTime)
		assert.Equal(t, "15:00", req.EndTime)
		assert.Equal(t, "Orchid", req.Room)

		writeJSON(t, w, http.StatusOK, CreateBookingResponse{Success: true, BookingNumber: "BK-1"})
	})

	resp, err := client.CreateBooking(context.Background(), &CreateBookingRequest{
		Date: "2026-01-08", StartTime: "13:00", EndTime: "15:00", Room: "Orchid",
	})
	require.NoError(t, err)
	assert.Equal(t, "BK-1", resp.BookingNumber)
}

func TestClient_CreateBooking_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    interface{}
		message string
	}{
		{"error field on 200", http.StatusOK, CreateBookingResponse{Error: "Slot already booked"}, "Slot already booked"},
		{"conflict", http.StatusConflict, ErrorResponse{Error: "Room is taken"}, "Room is taken"},
		{"success false", http.StatusOK, CreateBookingResponse{}, defaultRejectMessage},
		{"bad request without body", http.StatusBadRequest, nil, defaultRejectMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.body == nil {
					w.WriteHeader(tt.status)
					return
				}
				writeJSON(t, w, tt.status, tt.body)
			})

			_, err := client.CreateBooking(context.Background(), &CreateBookingRequest{})
			require.ErrorIs(t, err, ErrBookingRejected)

			var rejected *RejectedError
			require.ErrorAs(t, err, &rejected)
			assert.Equal(t, tt.message, rejected.Message)
		})
	}
}

func TestClient_GetMyBookings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/my", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []BookingDTO{
			{
				BookingID: "BK-1", RoomName: "Orchid", Tower: "A", Level: "3",
				StartDate: "2026-01-08T13:00:00", EndDate: "2026-01-08 15:00",
				Status: "Confirmed", Tag: "Upcoming",
			},
		})
	})

	bookings, err := client.GetMyBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.TagActive, bookings[0].Tag)
	assert.Equal(t, 13, bookings[0].Start.Hour())
	assert.Equal(t, 15, bookings[0].End.Hour())
}

func TestClient_CancelBooking(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		var req CancelBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "BK-1", req.CancelBookingNumber)
		writeJSON(t, w, http.StatusOK, CancelBookingResponse{ExecuteSuccess: n == 1})
	})

	require.NoError(t, client.CancelBooking(context.Background(), "BK-1"))

	err := client.CancelBooking(context.Background(), "BK-1")
	assert.ErrorIs(t, err, ErrBookingRejected)
}
