package get_date

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// DateResponse HTTP response model
type DateResponse struct {
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
}

type Handler struct {
	session Session
}

func NewHandler(session Session) *Handler {
	return &Handler{session: session}
}

// Handle GET /api/v1/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, DateResponse{
		Date:        h.session.Date().Format(domain.DateFormat),
		DisplayDate: h.session.DisplayDate(),
	})
}
