package get_towers

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
)

type Session interface {
	LoadRooms(ctx context.Context, force bool) error
	Towers() []domain.Tower
	RoomsStatus() session.RoomsStatus
	RoomStatus(roomID int64) availability.Status
	Date() time.Time
	DisplayDate() string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
