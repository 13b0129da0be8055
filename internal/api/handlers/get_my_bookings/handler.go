package get_my_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
)

const (
	msgInvalidTag = "некорректный тег, ожидается Active, Past или Cancelled"
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

// Handle GET /api/v1/my-bookings?tag=Active&refresh=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")

	if handlers.QueryBool(r, "refresh") {
		// ошибка загрузки попадает в Status и отдается в поле error
		if err := h.session.RefreshBookings(r.Context()); err != nil {
			h.logger.Warn("GET /my-bookings - Refresh failed: %v", err)
		}
	}

	list, status, err := h.session.MyBookings(tag)
	if err != nil {
		if errors.Is(err, session.ErrInvalidInput) {
			h.logger.Warn("GET /my-bookings - Invalid tag: %q", tag)
			handlers.RespondBadRequest(w, msgInvalidTag)
			return
		}
		h.logger.Error("GET /my-bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.BookingListResponse{
		Bookings: models.FromDomainBookingList(list),
		Loading:  status.Loading,
		Error:    status.Error,
	})
}
