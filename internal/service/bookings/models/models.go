package models

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// BookingResponse данные бронирования для UI
type BookingResponse struct {
	ID        string `json:"bookingId"`
	RoomName  string `json:"roomName"`
	Tower     string `json:"tower"`
	Level     string `json:"level"`
	EventName string `json:"eventName"`
	PIC       string `json:"pic"`
	Email     string `json:"email,omitempty"`
	Date      string `json:"date"`      // "2026-01-08"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "12:00"
	Status    string `json:"status,omitempty"`
	Tag       string `json:"tag"`
	CanCancel bool   `json:"canCancel"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Loading  bool              `json:"loading"`
	Error    string            `json:"error,omitempty"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:        b.ID,
		RoomName:  b.RoomName,
		Tower:     b.Tower,
		Level:     b.Level,
		EventName: b.EventName,
		PIC:       b.PIC,
		Email:     b.Email,
		Date:      b.Start.Format(domain.DateFormat),
		StartTime: b.Start.Format(domain.TimeFormat),
		EndTime:   b.End.Format(domain.TimeFormat),
		Status:    b.Status,
		Tag:       string(b.Tag),
		CanCancel: b.CanBeCancelled(),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *FromDomainBooking(&bookings[i]))
	}
	return result
}
