package tap_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTap         = "необходимо указать roomId и label"
	msgRoomNotOpen        = "комната не открыта"
	msgSlotsNotLoaded     = "слоты комнаты еще не загружены"
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

// Handle POST /api/v1/selection/tap
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req TapRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/tap - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.session.Tap(req.RoomID, req.Label, req.SlotStatus())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidInput):
			h.logger.Warn("POST /selection/tap - Invalid tap: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTap)

		case errors.Is(err, session.ErrRoomNotOpen):
			h.logger.Warn("POST /selection/tap - Room is not open: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotOpen)

		case errors.Is(err, session.ErrSlotsNotLoaded):
			h.logger.Warn("POST /selection/tap - Slots not loaded: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgSlotsNotLoaded)

		default:
			h.logger.Error("POST /selection/tap - Failed to apply tap: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	date := h.session.Date().Format(domain.DateFormat)
	handlers.RespondJSON(w, http.StatusOK, FromTapResult(req.RoomID, date, result))
}
