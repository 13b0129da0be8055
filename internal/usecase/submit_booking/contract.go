package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
)

// BookingAPIClient интерфейс клиента Booking API
type BookingAPIClient interface {
	CreateBooking(ctx context.Context, req *bookingapi.CreateBookingRequest) (*bookingapi.CreateBookingResponse, error)
}

// AvailabilityCache интерфейс кэша доступности
type AvailabilityCache interface {
	Peek(roomID int64, date string) (*availability.Entry, bool)
	Invalidate(roomID int64, date string)
}

// SelectionClearer сбрасывает выбор после успешного бронирования
type SelectionClearer interface {
	ClearFor(roomID int64, date string) bool
}

// BookingsRefresher перезагружает список бронирований пользователя
type BookingsRefresher interface {
	Refresh(ctx context.Context) error
}

// Notifier показывает пользователю результат отправки
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// Metrics интерфейс сбора метрик
type Metrics interface {
	BookingSubmitted(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
