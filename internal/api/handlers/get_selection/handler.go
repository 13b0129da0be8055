package get_selection

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/service/selection"
)

type Session interface {
	Selection() selection.Snapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
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

// Handle GET /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snap := h.session.Selection()
	handlers.RespondJSON(w, http.StatusOK, handlers.NewSelectionResponse(snap.RoomID, snap.Date, snap.Interval))
}
