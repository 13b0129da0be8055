package create_booking

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
)

// CreateBookingRequest HTTP request model.
// Комната, дата и время берутся из текущего выбора.
type CreateBookingRequest struct {
	Purpose        string `json:"purpose"`
	PointOfContact string `json:"pointOfContact"`
	Email          string `json:"email"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success       bool   `json:"success"`
	BookingNumber string `json:"bookingNumber,omitempty"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
}

// ToForm конвертирует HTTP запрос в форму бронирования
func (r *CreateBookingRequest) ToForm() domain.BookingForm {
	return domain.BookingForm{
		Purpose:        r.Purpose,
		PointOfContact: r.PointOfContact,
		Email:          r.Email,
	}
}

// FromSubmitResult конвертирует результат отправки в HTTP response
func FromSubmitResult(result session.SubmitResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success:       result.Success,
		BookingNumber: result.BookingNumber,
		Message:       result.Message,
		Error:         result.Error,
	}
}
