package get_notice

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
)

type Session interface {
	TakeNotice() *session.Notice
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NoticeResponse HTTP response model
type NoticeResponse struct {
	Kind    string    `json:"kind"` // success | error | warning
	Message string    `json:"message"`
	At      time.Time `json:"at"`
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

// Handle GET /api/v1/notice
// Уведомление отдается один раз; если его нет, ответ 204.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	notice := h.session.TakeNotice()
	if notice == nil {
		handlers.RespondNoContent(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NoticeResponse{
		Kind:    string(notice.Kind),
		Message: notice.Message,
		At:      notice.At,
	})
}
