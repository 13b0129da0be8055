package get_towers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
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

// Handle GET /api/v1/towers?refresh=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	force := handlers.QueryBool(r, "refresh")

	if err := h.session.LoadRooms(r.Context(), force); err != nil {
		if !errors.Is(err, session.ErrRoomsFetchFailed) {
			h.logger.Error("GET /towers - Failed to load rooms: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		// ошибка загрузки отдается флагом в ответе
		h.logger.Warn("GET /towers - Rooms fetch failed: %v", err)
	}

	status := h.session.RoomsStatus()
	response := TowersResponse{
		Date:        h.session.Date().Format(domain.DateFormat),
		DisplayDate: h.session.DisplayDate(),
		Loading:     status.Loading,
		Error:       status.Error,
		Towers:      make([]TowerResponse, 0),
	}

	for _, tower := range h.session.Towers() {
		tr := TowerResponse{Name: tower.Name, RoomCount: tower.RoomCount(), Levels: make([]LevelResponse, 0, len(tower.Levels))}
		for _, level := range tower.Levels {
			lr := LevelResponse{Name: level.Name, Rooms: make([]RoomResponse, 0, len(level.Rooms))}
			for _, room := range level.Rooms {
				roomStatus := h.session.RoomStatus(room.ID)
				lr.Rooms = append(lr.Rooms, RoomResponse{
					ID:         room.ID,
					Name:       room.Name,
					Capacity:   room.Capacity,
					Department: room.Department,
					Loading:    roomStatus.Loading,
					Error:      roomStatus.Error,
				})
			}
			tr.Levels = append(tr.Levels, lr)
		}
		response.Towers = append(response.Towers, tr)
	}

	h.logger.Info("GET /towers - %d towers", len(response.Towers))
	handlers.RespondJSON(w, http.StatusOK, response)
}
