package set_date

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// SetDateRequest HTTP request model
type SetDateRequest struct {
	Date string `json:"date"` // "2026-01-08"
}

// DateResponse HTTP response model
type DateResponse struct {
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
}

// ParseDate разбирает дату в локальной зоне
func (r *SetDateRequest) ParseDate() (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
}
