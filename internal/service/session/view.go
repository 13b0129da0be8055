package session

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	"github.com/m04kA/SMC-RoomBooking/internal/service/cutoff"
	"github.com/m04kA/SMC-RoomBooking/internal/service/selection"
	"github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_slots"
	"github.com/m04kA/SMC-RoomBooking/pkg/slotlabel"
)

// OpenRoom открывает экран комнаты на выбранную дату и запускает загрузку сетки.
// Открытие другой комнаты сбрасывает выбор. Возвращаемый канал закрывается,
// когда загрузка завершена (результат мог быть не применен, если экран уже закрыт).
func (s *Session) OpenRoom(roomID int64) (<-chan struct{}, error) {
	if roomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	date := s.date
	prev := s.view
	s.view = &roomView{roomID: roomID, date: date.Format(domain.DateFormat), generation: gen}
	s.mu.Unlock()

	if prev != nil && prev.roomID != roomID {
		s.selector.Clear()
	}

	s.logger.Info("OpenRoom: room=%d date=%s generation=%d", roomID, date.Format(domain.DateFormat), gen)

	done := make(chan struct{})
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(done)
		s.load(roomID, date, gen)
	}()

	return done, nil
}

// load загружает сетку и применяет ее, только если экран все еще актуален
func (s *Session) load(roomID int64, date time.Time, gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
	defer cancel()

	resp, err := s.slots.Execute(ctx, &get_room_slots.Request{RoomID: roomID, Date: date})

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view == nil || s.view.generation != gen {
		// кэш уже обновлен; к неактуальному экрану результат не применяем
		s.logger.Info("OpenRoom: discarding late result for room=%d generation=%d", roomID, gen)
		return
	}

	if err != nil {
		s.view.errMsg = domain.MsgFetchFailed
		s.logger.Warn("OpenRoom: failed to load room=%d: %v", roomID, err)
		return
	}

	s.view.result = resp
	s.view.errMsg = ""
}

// CloseRoom закрывает экран комнаты. Выбор сбрасывается, запоздавший ответ не будет применен.
func (s *Session) CloseRoom(roomID int64) {
	s.mu.Lock()
	if s.view == nil || s.view.roomID != roomID {
		s.mu.Unlock()
		return
	}
	s.generation++
	s.view = nil
	s.mu.Unlock()

	s.selector.Clear()
	s.logger.Info("CloseRoom: room=%d", roomID)
}

// Prefetch запускает загрузку сетки комнаты в кэш без открытия экрана
func (s *Session) Prefetch(roomID int64) {
	s.mu.RLock()
	date := s.dateKey()
	s.mu.RUnlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
		defer cancel()
		if _, err := s.cache.Fetch(ctx, roomID, date); err != nil {
			s.logger.Warn("Prefetch: room=%d date=%s: %v", roomID, date, err)
		}
	}()
}

// RoomStatus возвращает флаги загрузки и ошибки сетки комнаты на выбранную дату
func (s *Session) RoomStatus(roomID int64) availability.Status {
	s.mu.RLock()
	date := s.dateKey()
	s.mu.RUnlock()
	return s.cache.Status(roomID, date)
}

// RoomView возвращает экран открытой комнаты
func (s *Session) RoomView(roomID int64) (*RoomView, error) {
	s.mu.RLock()
	view := s.view
	var (
		result *get_room_slots.Response
		errMsg string
	)
	if view != nil {
		result, errMsg = view.result, view.errMsg
	}
	date := s.date
	now := s.timeProvider.Now()
	s.mu.RUnlock()

	if view == nil || view.roomID != roomID {
		return nil, ErrRoomNotOpen
	}

	rv := &RoomView{
		RoomID:      roomID,
		Date:        view.date,
		DisplayDate: date.Format(domain.DisplayDateFormat),
		Error:       errMsg,
		Selection:   s.selector.Current(roomID, view.date),
		Submitting:  s.submitter.Submitting(),
		Slots:       []SlotView{},
	}

	if result == nil {
		rv.Loading = errMsg == ""
		if room, ok := s.Room(roomID); ok {
			rv.Room = room
		}
		return rv, nil
	}

	rv.Room = result.Room
	if rv.Room == nil {
		if room, ok := s.Room(roomID); ok {
			rv.Room = room
		}
	}

	// отсечка пересчитывается на каждый запрос: экран мог быть открыт до смены часа
	limit := cutoff.ComputeCutoff(date, now)
	grid := cutoff.Filter(result.Grid, limit)
	rv.Cutoff = limit

	for _, slot := range grid.Slots() {
		start, err := slotlabel.To24h(slot.StartMinute)
		if err != nil {
			s.logger.Warn("RoomView: room=%d slot %q: start: %v", roomID, slot.Label, err)
			continue
		}
		end, err := slotlabel.To24h(slot.EndMinute)
		if err != nil {
			s.logger.Warn("RoomView: room=%d slot %q: end: %v", roomID, slot.Label, err)
			continue
		}
		rv.Slots = append(rv.Slots, SlotView{
			Label:     slot.Label,
			Start:     start.String(),
			End:       end.String(),
			Status:    slot.Status,
			EventName: slot.EventName,
			PIC:       slot.PIC,
			Selected:  s.selector.IsSelected(roomID, slot.Label),
		})
	}

	return rv, nil
}

// Tap применяет нажатие на слот открытой комнаты.
// Пустой status берется из сетки; неизвестная метка ничего не меняет.
func (s *Session) Tap(roomID int64, label string, status domain.SlotStatus) (*TapResult, error) {
	if roomID <= 0 || label == "" {
		return nil, fmt.Errorf("%w: roomID and label are required", ErrInvalidInput)
	}
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown slot status %q", ErrInvalidInput, status)
	}

	grid, date, err := s.openGrid(roomID)
	if err != nil {
		return nil, err
	}

	if status == "" {
		if slot, ok := grid.Get(label); ok {
			status = slot.Status
		}
	}

	snap, outcome := s.selector.Tap(roomID, date, grid, label, status)
	if outcome.Warning != "" && s.notices != nil {
		s.notices.Warning(outcome.Warning)
	}

	return &TapResult{
		Changed:   outcome.Changed,
		Warning:   outcome.Warning,
		State:     snap.State,
		Selection: snap.Interval,
	}, nil
}

// openGrid возвращает отфильтрованную сетку открытой комнаты
func (s *Session) openGrid(roomID int64) (*domain.Grid, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.view == nil || s.view.roomID != roomID {
		return nil, "", ErrRoomNotOpen
	}
	if s.view.result == nil {
		return nil, "", ErrSlotsNotLoaded
	}

	limit := cutoff.ComputeCutoff(s.date, s.timeProvider.Now())
	return cutoff.Filter(s.view.result.Grid, limit), s.view.date, nil
}

// Selection возвращает текущий выбор
func (s *Session) Selection() selection.Snapshot {
	return s.selector.Snapshot()
}

// IsSelected возвращает true, если слот label комнаты roomID входит в выбор
func (s *Session) IsSelected(roomID int64, label string) bool {
	return s.selector.IsSelected(roomID, label)
}

// ClearSelection сбрасывает выбор
func (s *Session) ClearSelection() {
	s.selector.Clear()
}
