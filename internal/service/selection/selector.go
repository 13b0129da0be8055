package selection

import (
	"sync"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Snapshot копия текущего выбора
type Snapshot struct {
	RoomID   int64
	Date     string
	State    State
	Interval *Interval
}

// Selector хранит выбор пользователя для одной активной комнаты и даты.
// Колбэки вызываются вне блокировки.
type Selector struct {
	logger Logger

	mu       sync.Mutex
	roomID   int64
	date     string
	state    State
	interval *Interval

	onChange func(*Interval)
}

// NewSelector создает пустой селектор
func NewSelector(logger Logger) *Selector {
	return &Selector{
		logger: logger,
		state:  Empty(),
	}
}

// OnChange задает обработчик изменения выбора; для пустого выбора передается nil
func (s *Selector) OnChange(fn func(*Interval)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Tap применяет нажатие на слот label комнаты roomID за дату date.
// grid должна быть уже отфильтрованной сеткой этой комнаты.
// Нажатие по другой комнате или дате сбрасывает предыдущий выбор.
func (s *Selector) Tap(roomID int64, date string, grid *domain.Grid, label string, status domain.SlotStatus) (Snapshot, Outcome) {
	s.mu.Lock()

	if status == domain.SlotBooked {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, Outcome{}
	}

	current := s.state
	if roomID != s.roomID || date != s.date {
		current = Empty()
	}

	next, outcome := Transition(current, grid, Tap{Label: label, Status: status})
	if !outcome.Changed {
		// неизвестная или занятая метка: выбор не трогаем
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, outcome
	}

	interval, err := IntervalOf(next, grid)
	if err != nil {
		s.logger.Error("Selection: failed to build interval room_id=%d label=%q: %v", roomID, label, err)
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, Outcome{}
	}

	s.roomID = roomID
	s.date = date
	s.state = next
	s.interval = interval

	snap := s.snapshotLocked()
	onChange := s.onChange
	s.mu.Unlock()

	// предупреждение возвращается вызывающему в Outcome
	if outcome.Warning != "" {
		s.logger.Warn("Selection: room_id=%d tap %q rejected: %s", roomID, label, outcome.Warning)
	}
	if onChange != nil {
		onChange(interval)
	}

	return snap, outcome
}

// Snapshot возвращает текущий выбор
func (s *Selector) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Current возвращает интервал выбора для комнаты и даты или nil
func (s *Selector) Current(roomID int64, date string) *Interval {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roomID != roomID || s.date != date {
		return nil
	}
	return s.interval
}

// IsSelected возвращает true для каждого слота внутри выбранного интервала комнаты roomID
func (s *Selector) IsSelected(roomID int64, label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.interval == nil || s.roomID != roomID {
		return false
	}
	return s.interval.Contains(label)
}

// Clear сбрасывает выбор
func (s *Selector) Clear() {
	s.mu.Lock()
	wasEmpty := s.state.IsEmpty()
	s.state = Empty()
	s.interval = nil
	onChange := s.onChange
	s.mu.Unlock()

	if !wasEmpty && onChange != nil {
		onChange(nil)
	}
}

// ClearFor сбрасывает выбор, только если он относится к roomID и date
func (s *Selector) ClearFor(roomID int64, date string) bool {
	s.mu.Lock()
	if s.roomID != roomID || s.date != date || s.state.IsEmpty() {
		s.mu.Unlock()
		return false
	}
	s.state = Empty()
	s.interval = nil
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(nil)
	}
	return true
}

func (s *Selector) snapshotLocked() Snapshot {
	return Snapshot{
		RoomID:   s.roomID,
		Date:     s.date,
		State:    s.state,
		Interval: s.interval,
	}
}
