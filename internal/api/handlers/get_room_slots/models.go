package get_room_slots

import (
	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/service/session"
	"github.com/m04kA/SMC-RoomBooking/pkg/slotlabel"
)

// RoomInfo данные комнаты
type RoomInfo struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Tower      string `json:"tower"`
	Level      string `json:"level"`
	Capacity   int    `json:"capacity"`
	Department string `json:"department,omitempty"`
}

// SlotResponse слот сетки
type SlotResponse struct {
	Label     string `json:"label"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Status    string `json:"status"`
	EventName string `json:"eventName,omitempty"`
	PIC       string `json:"pic,omitempty"`
	Selected  bool   `json:"selected"`
}

// RoomSlotsResponse HTTP response model
type RoomSlotsResponse struct {
	RoomID       int64                       `json:"roomId"`
	Room         *RoomInfo                   `json:"room,omitempty"`
	Date         string                      `json:"date"`
	DisplayDate  string                      `json:"displayDate"`
	Loading      bool                        `json:"loading"`
	Error        string                      `json:"error,omitempty"`
	BookableFrom string                      `json:"bookableFrom,omitempty"` // "HH:MM", только для сегодня
	Submitting   bool                        `json:"submitting"`
	Selection    *handlers.SelectionResponse `json:"selection"`
	Slots        []SlotResponse              `json:"slots"`
}

// FromRoomView конвертирует экран комнаты в HTTP response
func FromRoomView(view *session.RoomView) *RoomSlotsResponse {
	resp := &RoomSlotsResponse{
		RoomID:      view.RoomID,
		Date:        view.Date,
		DisplayDate: view.DisplayDate,
		Loading:     view.Loading,
		Error:       view.Error,
		Submitting:  view.Submitting,
		Slots:       make([]SlotResponse, 0, len(view.Slots)),
	}

	if view.Room != nil {
		resp.Room = &RoomInfo{
			ID:         view.Room.ID,
			Name:       view.Room.Name,
			Tower:      view.Room.Tower,
			Level:      view.Room.Level,
			Capacity:   view.Room.Capacity,
			Department: view.Room.Department,
		}
	}

	if view.Cutoff != nil {
		if from, err := slotlabel.To24h(*view.Cutoff); err == nil {
			resp.BookableFrom = from.String()
		}
	}

	resp.Selection = handlers.NewSelectionResponse(view.RoomID, view.Date, view.Selection)

	for _, slot := range view.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			Label:     slot.Label,
			Start:     slot.Start,
			End:       slot.End,
			Status:    string(slot.Status),
			EventName: slot.EventName,
			PIC:       slot.PIC,
			Selected:  slot.Selected,
		})
	}

	return resp
}
