package session

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/selection"
)

// RoomsStatus флаги загрузки списка комнат
type RoomsStatus struct {
	Loading bool
	Error   string
}

// SlotView слот для экрана комнаты
type SlotView struct {
	Label     string
	Start     string // "HH:MM"
	End       string // "HH:MM"
	Status    domain.SlotStatus
	EventName string
	PIC       string
	Selected  bool
}

// RoomView экран комнаты на выбранную дату
type RoomView struct {
	RoomID      int64
	Room        *domain.Room
	Date        string
	DisplayDate string
	Loading     bool
	Error       string
	Cutoff      *int
	Slots       []SlotView
	Selection   *selection.Interval
	Submitting  bool
}

// TapResult результат нажатия на слот
type TapResult struct {
	Changed   bool
	Warning   string
	State     selection.State
	Selection *selection.Interval
}

// SubmitResult результат отправки бронирования
type SubmitResult struct {
	Success       bool
	BookingNumber string
	Message       string
	Error         string
}

// NoticeKind тип уведомления для пользователя
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeWarning NoticeKind = "warning"
)

// Notice уведомление для пользователя
type Notice struct {
	Kind    NoticeKind
	Message string
	At      time.Time
}
