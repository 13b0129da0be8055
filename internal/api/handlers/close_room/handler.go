package close_room

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
)

type Session interface {
	CloseRoom(roomID int64)
}

type Logger interface {
	Info(format string, v ...interface{})
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

// Handle DELETE /api/v1/rooms/{roomId}/open
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("DELETE /rooms/{roomId}/open - %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	h.session.CloseRoom(roomID)

	h.logger.Info("DELETE /rooms/%d/open - Room closed", roomID)
	handlers.RespondNoContent(w)
}
