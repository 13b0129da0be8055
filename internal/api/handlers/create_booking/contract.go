package create_booking

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
)

type Session interface {
	SubmitBooking(ctx context.Context, form domain.BookingForm) session.SubmitResult
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
