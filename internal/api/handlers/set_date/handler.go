package set_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast         = "нельзя выбрать дату в прошлом"
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

// Handle PUT /api/v1/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		h.logger.Warn("PUT /date - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.session.SetDate(date); err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidDate):
			h.logger.Warn("PUT /date - Date in the past: %s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)
		case errors.Is(err, session.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("PUT /date - Failed to set date %s: %v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /date - Date set to %s", req.Date)
	handlers.RespondJSON(w, http.StatusOK, DateResponse{
		Date:        h.session.Date().Format(domain.DateFormat),
		DisplayDate: h.session.DisplayDate(),
	})
}
