package domain

import (
	"strings"
	"time"
)

// BookingTag жизненный цикл бронирования пользователя
type BookingTag string

const (
	TagActive    BookingTag = "Active"
	TagPast      BookingTag = "Past"
	TagCancelled BookingTag = "Cancelled"
)

// ParseBookingTag переводит тег Booking API в доменный.
// "Upcoming" из API соответствует активному бронированию.
func ParseBookingTag(s string) (BookingTag, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upcoming", "active":
		return TagActive, true
	case "past":
		return TagPast, true
	case "cancelled", "canceled":
		return TagCancelled, true
	default:
		return "", false
	}
}

// Booking бронирование пользователя
type Booking struct {
	ID        string
	RoomName  string
	Tower     string
	Level     string
	EventName string
	PIC       string
	Email     string
	Start     time.Time
	End       time.Time
	Status    string
	Tag       BookingTag
}

// IsActive возвращает true для предстоящего бронирования
func (b *Booking) IsActive() bool {
	return b.Tag == TagActive
}

// CanBeCancelled отменить можно только активное бронирование
func (b *Booking) CanBeCancelled() bool {
	return b.Tag == TagActive
}

// IsCancelled возвращает true, если бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Tag == TagCancelled
}

// BookingForm данные формы бронирования, которые вводит пользователь
type BookingForm struct {
	Purpose        string `validate:"required,max=200"`
	PointOfContact string `validate:"required,max=100"`
	Email          string `validate:"required,email"`
}
