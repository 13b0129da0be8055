package bookingapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс сбора метрик вызовов Booking API
type Metrics interface {
	ObserveUpstream(operation string, status int, duration time.Duration)
}

// Названия операций для метрик и логов
const (
	opGetRooms        = "get_rooms"
	opGetAvailability = "get_availability"
	opCreateBooking   = "create_booking"
	opGetMyBookings   = "get_my_bookings"
	opCancelBooking   = "cancel_booking"
)
