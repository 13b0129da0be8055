package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/integrations/bookingapi"
)

// BookingAPIClient интерфейс клиента Booking API
type BookingAPIClient interface {
	GetRoomAvailability(ctx context.Context, roomID int64, date string) (*bookingapi.RoomAvailability, error)
}

// Metrics интерфейс учета обращений к кэшу
type Metrics interface {
	CacheLookup(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
