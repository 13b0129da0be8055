package get_room_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
)

// AvailabilityCache интерфейс кэша сеток доступности
type AvailabilityCache interface {
	Fetch(ctx context.Context, roomID int64, date string) (*availability.Entry, error)
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
