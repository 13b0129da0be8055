package handlers

import (
	"github.com/m04kA/SMC-RoomBooking/internal/service/selection"
)

// SelectionResponse текущий выбор слотов
type SelectionResponse struct {
	Kind       string `json:"kind"` // empty | single | range
	RoomID     int64  `json:"roomId,omitempty"`
	Date       string `json:"date,omitempty"`
	StartLabel string `json:"startLabel,omitempty"`
	EndLabel   string `json:"endLabel,omitempty"`
	Start      string `json:"start,omitempty"` // "HH:MM"
	End        string `json:"end,omitempty"`   // "HH:MM"
	Display    string `json:"display,omitempty"`
}

// NewSelectionResponse собирает ответ из интервала выбора; nil означает пустой выбор
func NewSelectionResponse(roomID int64, date string, interval *selection.Interval) *SelectionResponse {
	if interval == nil {
		return &SelectionResponse{Kind: selection.KindEmpty.String()}
	}

	kind := selection.KindRange
	if interval.StartLabel == interval.EndLabel {
		kind = selection.KindSingle
	}

	return &SelectionResponse{
		Kind:       kind.String(),
		RoomID:     roomID,
		Date:       date,
		StartLabel: interval.StartLabel,
		EndLabel:   interval.EndLabel,
		Start:      interval.Start.String(),
		End:        interval.End.String(),
		Display:    interval.Display(),
	}
}
