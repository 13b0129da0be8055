package set_date

import "time"

type Session interface {
	SetDate(date time.Time) error
	Date() time.Time
	DisplayDate() string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
