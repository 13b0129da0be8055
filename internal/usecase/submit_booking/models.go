package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/selection"
)

const (
	msgNoTimeSelected    = domain.MsgNoTimeSelected
	msgInvalidRoomInfo   = domain.MsgInvalidRoomInfo
	msgSubmitInProgress  = domain.MsgSubmitInProgress
	msgMissingFormFields = domain.MsgMissingFormFields
	msgBookingFailed     = domain.MsgBookingFailed
	msgBookingCreated    = domain.MsgBookingCreated
)

// Исходы отправки для метрик
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomeInvalid  = "invalid"
)

// Request модель запроса на отправку бронирования
type Request struct {
	RoomID    int64               // ID комнаты
	Date      time.Time           // Дата бронирования (без времени)
	Selection *selection.Interval // Выбранный интервал; nil, если ничего не выбрано
	Form      domain.BookingForm  // Данные формы
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingNumber string
	Message       string
	RoomName      string
	Date          time.Time
	StartTime     string // "HH:MM"
	EndTime       string // "HH:MM"
}
