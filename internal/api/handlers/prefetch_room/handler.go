package prefetch_room

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
)

type Session interface {
	Prefetch(roomID int64)
}

type Logger interface {
	Warn(format string, v ...interface{})
}

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

// Handle POST /api/v1/rooms/{roomId}/prefetch
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("POST /rooms/{roomId}/prefetch - %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	h.session.Prefetch(roomID)
	handlers.RespondNoContent(w)
}
