package open_room

import "time"

type Session interface {
	OpenRoom(roomID int64) (<-chan struct{}, error)
	Date() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
