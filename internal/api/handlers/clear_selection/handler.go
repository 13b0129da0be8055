package clear_selection

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

type Session interface {
	ClearSelection()
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

// Handle DELETE /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.session.ClearSelection()
	h.logger.Info("DELETE /selection - Selection cleared")
	handlers.RespondNoContent(w)
}
