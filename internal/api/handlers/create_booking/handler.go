package create_booking

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	session Session
	logger  Logger
}

func NewHandler(session Session, logger Logger) *Handler {
	return &Handler{
		session: session,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Любая ошибка отправки возвращается как 422 с сообщением для пользователя в поле error.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := h.session.SubmitBooking(r.Context(), req.ToForm())
	response := FromSubmitResult(result)

	if !result.Success {
		h.logger.Warn("POST /bookings - Booking not created: %s", result.Error)
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, response)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_number=%s", result.BookingNumber)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
