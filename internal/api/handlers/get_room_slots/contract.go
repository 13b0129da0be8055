package get_room_slots

import (
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
)

type Session interface {
	RoomView(roomID int64) (*session.RoomView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
