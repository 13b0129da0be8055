package selection

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/slotlabel"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Interval выбранный промежуток времени [Start, End)
type Interval struct {
	StartLabel  string
	EndLabel    string
	StartMinute int
	EndMinute   int
	Start       types.TimeString
	End         types.TimeString
}

// Display строка для отображения, например "09:00 – 12:00"
func (i *Interval) Display() string {
	return fmt.Sprintf("%s – %s", i.Start, i.End)
}

// Contains проверяет, что слот с меткой label лежит внутри интервала
func (i *Interval) Contains(label string) bool {
	r, err := slotlabel.ParseRange(label)
	if err != nil {
		return false
	}
	return r.StartMinute >= i.StartMinute && r.EndMinute <= i.EndMinute
}

// IntervalOf строит интервал по состоянию выбора. Для пустого выбора возвращает nil.
func IntervalOf(state State, grid *domain.Grid) (*Interval, error) {
	startIdx, endIdx, ok := span(state, grid)
	if !ok {
		return nil, nil
	}

	first := grid.At(startIdx)
	last := grid.At(endIdx)

	start, err := slotlabel.To24h(first.StartMinute)
	if err != nil {
		return nil, fmt.Errorf("selection: start of %q: %w", first.Label, err)
	}
	end, err := slotlabel.To24h(last.EndMinute)
	if err != nil {
		return nil, fmt.Errorf("selection: end of %q: %w", last.Label, err)
	}

	return &Interval{
		StartLabel:  first.Label,
		EndLabel:    last.Label,
		StartMinute: first.StartMinute,
		EndMinute:   last.EndMinute,
		Start:       start,
		End:         end,
	}, nil
}
