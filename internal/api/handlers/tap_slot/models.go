package tap_slot

import (
	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
)

// TapRequest HTTP request model
type TapRequest struct {
	RoomID int64  `json:"roomId"`
	Label  string `json:"label"`  // "9:00 AM - 10:00 AM"
	Status string `json:"status"` // необязательно: Available | Booked
}

// TapResponse HTTP response model
type TapResponse struct {
	Changed   bool                        `json:"changed"`
	Warning   string                      `json:"warning,omitempty"`
	Selection *handlers.SelectionResponse `json:"selection"`
}

// SlotStatus статус слота из запроса
func (r *TapRequest) SlotStatus() domain.SlotStatus {
	return domain.SlotStatus(r.Status)
}

// FromTapResult конвертирует результат нажатия в HTTP response
func FromTapResult(roomID int64, date string, result *session.TapResult) *TapResponse {
	return &TapResponse{
		Changed:   result.Changed,
		Warning:   result.Warning,
		Selection: handlers.NewSelectionResponse(roomID, date, result.Selection),
	}
}
