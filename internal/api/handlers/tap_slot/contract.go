package tap_slot

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
)

type Session interface {
	Tap(roomID int64, label string, status domain.SlotStatus) (*session.TapResult, error)
	Date() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
