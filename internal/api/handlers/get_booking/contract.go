package get_booking

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type Session interface {
	MyBooking(bookingID string) (domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
