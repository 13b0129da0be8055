package open_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
)

// OpenRoomResponse HTTP response model
type OpenRoomResponse struct {
	RoomID int64  `json:"roomId"`
	Date   string `json:"date"`
	Loaded bool   `json:"loaded"`
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

// Handle POST /api/v1/rooms/{roomId}/open?wait=true
// Без wait отвечает сразу 202, загрузка продолжается в фоне.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("POST /rooms/{roomId}/open - %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	done, err := h.session.OpenRoom(roomID)
	if err != nil {
		if errors.Is(err, session.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidRoomID)
			return
		}
		h.logger.Error("POST /rooms/%d/open - Failed to open room: %v", roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := OpenRoomResponse{
		RoomID: roomID,
		Date:   h.session.Date().Format(domain.DateFormat),
	}

	if !handlers.QueryBool(r, "wait") {
		handlers.RespondJSON(w, http.StatusAccepted, response)
		return
	}

	select {
	case <-done:
		response.Loaded = true
		handlers.RespondJSON(w, http.StatusOK, response)
	case <-r.Context().Done():
		// клиент ушел; загрузка все равно завершится и попадет в кэш
		h.logger.Warn("POST /rooms/%d/open - Client gone before load finished", roomID)
	}
}
