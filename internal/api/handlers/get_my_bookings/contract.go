package get_my_bookings

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings"
)

type Session interface {
	MyBookings(tag string) ([]domain.Booking, bookings.Status, error)
	RefreshBookings(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
