package get_room_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgRoomNotOpen   = "комната не открыта"
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

// Handle GET /api/v1/rooms/{roomId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/slots - %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	view, err := h.session.RoomView(roomID)
	if err != nil {
		if errors.Is(err, session.ErrRoomNotOpen) {
			h.logger.Warn("GET /rooms/%d/slots - Room is not open", roomID)
			handlers.RespondNotFound(w, msgRoomNotOpen)
			return
		}
		h.logger.Error("GET /rooms/%d/slots - Failed to build view: %v", roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromRoomView(view))
}
