package get_date

import "time"

type Session interface {
	Date() time.Time
	DisplayDate() string
}
