package bookingapi

import "github.com/m04kA/SMC-RoomBooking/internal/domain"

// RoomDTO комната в формате Booking API
type RoomDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Tower      string `json:"tower"`
	Level      string `json:"level"`
	Capacity   int    `json:"capacity"`
	Department string `json:"department"`
}

// ToDomain конвертирует DTO в доменную модель
func (r RoomDTO) ToDomain() domain.Room {
	return domain.Room{
		ID:         r.ID,
		Name:       r.Name,
		Tower:      r.Tower,
		Level:      r.Level,
		Capacity:   r.Capacity,
		Department: r.Department,
	}
}

// SlotDTO состояние одного слота
type SlotDTO struct {
	Status    string `json:"status"`
	EventName string `json:"eventName,omitempty"`
	PIC       string `json:"pic,omitempty"`
}

// AvailabilityResponse ответ GET /rooms/{id}/availability
type AvailabilityResponse struct {
	RoomDetails  *RoomDTO           `json:"roomDetails"`
	Availability map[string]SlotDTO `json:"availability"`
}

// RoomAvailability сетка доступности комнаты на дату вместе с данными комнаты.
// Room равен nil, если сервер не вернул roomDetails.
type RoomAvailability struct {
	Room *domain.Room
	Grid *domain.Grid
}

// CreateBookingRequest тело POST /bookings
type CreateBookingRequest struct {
	Date      string `json:"date"`      // "2026-01-08"
	StartTime string `json:"startTime"` // "13:00"
	EndTime   string `json:"endTime"`   // "15:00"
	Room      string `json:"room"`
	Tower     string `json:"tower"`
	Level     string `json:"level"`
	Purpose   string `json:"purpose"`
	PIC       string `json:"pic"`
	Email     string `json:"email"`
}

// CreateBookingResponse ответ POST /bookings
type CreateBookingResponse struct {
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
	BookingNumber string `json:"bookingNumber,omitempty"`
}

// BookingDTO бронирование из GET /bookings/my
type BookingDTO struct {
	BookingID string `json:"bookingId"`
	Tower     string `json:"tower"`
	Level     string `json:"level"`
	RoomName  string `json:"roomName"`
	EventName string `json:"eventName"`
	PIC       string `json:"pic"`
	Email     string `json:"email,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
	Tag       string `json:"tag"`
}

// CancelBookingRequest тело POST /bookings/cancel
type CancelBookingRequest struct {
	CancelBookingNumber string `json:"cancelBookingNumber"`
}

// CancelBookingResponse ответ POST /bookings/cancel
type CancelBookingResponse struct {
	ExecuteSuccess bool   `json:"executeSuccess"`
	Error          string `json:"error,omitempty"`
}

// ErrorResponse модель ошибки от Booking API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e ErrorResponse) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
