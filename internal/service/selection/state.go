package selection

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Kind вид состояния выбора
type Kind int

const (
	KindEmpty Kind = iota
	KindSingle
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindRange:
		return "range"
	default:
		return "empty"
	}
}

// State выбранный непрерывный интервал слотов.
// Для KindSingle Start == End, для KindEmpty обе метки пустые.
type State struct {
	Kind  Kind
	Start string
	End   string
}

// Empty пустой выбор
func Empty() State {
	return State{Kind: KindEmpty}
}

// Single выбор из одного слота
func Single(label string) State {
	return State{Kind: KindSingle, Start: label, End: label}
}

// Range выбор из нескольких подряд идущих слотов
func Range(start, end string) State {
	return State{Kind: KindRange, Start: start, End: end}
}

// IsEmpty возвращает true для пустого выбора
func (s State) IsEmpty() bool {
	return s.Kind == KindEmpty
}

// Tap нажатие на слот
type Tap struct {
	Label  string
	Status domain.SlotStatus
}

// Outcome результат перехода
type Outcome struct {
	Changed bool
	// Warning сообщение для пользователя, если расширение выбора отклонено
	Warning string
}

// Transition вычисляет новое состояние выбора после нажатия на слот.
// Функция чистая: grid и state не изменяются.
func Transition(state State, grid *domain.Grid, tap Tap) (State, Outcome) {
	tappedIdx, ok := grid.IndexOf(tap.Label)
	if !ok || tap.Status == domain.SlotBooked {
		return state, Outcome{}
	}
	if slot := grid.At(tappedIdx); !slot.IsAvailable() {
		return state, Outcome{}
	}

	startIdx, endIdx, ok := span(state, grid)
	if !ok {
		return changed(state, Single(tap.Label), "")
	}

	switch {
	case state.Kind == KindSingle && tappedIdx == startIdx:
		return changed(state, Empty(), "")

	case state.Kind == KindRange && tappedIdx == startIdx:
		return changed(state, contract(grid, startIdx+1, endIdx), "")

	case state.Kind == KindRange && tappedIdx == endIdx:
		return changed(state, contract(grid, startIdx, endIdx-1), "")

	case tappedIdx < startIdx:
		if grid.AvailableBetween(tappedIdx+1, startIdx-1) {
			return changed(state, Range(tap.Label, grid.At(endIdx).Label), "")
		}
		return changed(state, Single(tap.Label), domain.MsgContiguousOnly)

	case tappedIdx > endIdx:
		if grid.AvailableBetween(endIdx+1, tappedIdx-1) {
			return changed(state, Range(grid.At(startIdx).Label, tap.Label), "")
		}
		return changed(state, Single(tap.Label), domain.MsgContiguousOnly)

	default:
		// нажатие строго внутри диапазона начинает новый выбор
		return changed(state, Single(tap.Label), "")
	}
}

// span возвращает позиции концов выбора в сетке.
// false, если выбор пуст или его метки отсутствуют в сетке.
func span(state State, grid *domain.Grid) (int, int, bool) {
	if state.IsEmpty() {
		return 0, 0, false
	}
	startIdx, ok := grid.IndexOf(state.Start)
	if !ok {
		return 0, 0, false
	}
	endIdx, ok := grid.IndexOf(state.End)
	if !ok || endIdx < startIdx {
		return 0, 0, false
	}
	return startIdx, endIdx, true
}

func contract(grid *domain.Grid, startIdx, endIdx int) State {
	switch {
	case startIdx > endIdx:
		return Empty()
	case startIdx == endIdx:
		return Single(grid.At(startIdx).Label)
	default:
		return Range(grid.At(startIdx).Label, grid.At(endIdx).Label)
	}
}

func changed(prev, next State, warning string) (State, Outcome) {
	return next, Outcome{Changed: prev != next, Warning: warning}
}
