package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/towers"
	"github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_slots"
)

const defaultFetchTimeout = 30 * time.Second

// roomView состояние открытого экрана комнаты
type roomView struct {
	roomID int64
	date   string
	// generation растет при каждом открытии, закрытии и смене даты;
	// результат загрузки применяется, только если generation не изменился
	generation uint64
	result     *get_room_slots.Response
	errMsg     string
}

// Session состояние пользователя: список комнат, выбранная дата, открытая комната и выбор слотов
type Session struct {
	roomsClient  RoomsClient
	cache        AvailabilityCache
	slots        RoomSlotsUseCase
	submitter    SubmitUseCase
	selector     Selector
	bookings     BookingsStore
	notices      *Notices
	timeProvider TimeProvider
	logger       Logger
	fetchTimeout time.Duration

	mu           sync.RWMutex
	rooms        []domain.Room
	towers       []domain.Tower
	roomsLoading bool
	roomsErr     string
	date         time.Time
	generation   uint64
	view         *roomView

	roomsGroup singleflight.Group
	wg         sync.WaitGroup
}

// NewSession создает сессию с сегодняшней датой
func NewSession(
	roomsClient RoomsClient,
	cache AvailabilityCache,
	slots RoomSlotsUseCase,
	submitter SubmitUseCase,
	selector Selector,
	bookings BookingsStore,
	notices *Notices,
	logger Logger,
) *Session {
	s := &Session{
		roomsClient:  roomsClient,
		cache:        cache,
		slots:        slots,
		submitter:    submitter,
		selector:     selector,
		bookings:     bookings,
		notices:      notices,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		fetchTimeout: defaultFetchTimeout,
	}
	s.date = dayOf(s.timeProvider.Now())
	return s
}

// WithTimeProvider подменяет часы; дата сессии становится сегодняшней по новым часам
func (s *Session) WithTimeProvider(tp TimeProvider) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeProvider = tp
	s.date = dayOf(tp.Now())
	return s
}

// WithFetchTimeout задает таймаут фоновой загрузки сетки
func (s *Session) WithFetchTimeout(d time.Duration) *Session {
	if d > 0 {
		s.fetchTimeout = d
	}
	return s
}

// Warmup параллельно загружает список комнат и бронирования пользователя
func (s *Session) Warmup(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		return s.LoadRooms(ctx, false)
	})
	g.Go(func() error {
		return s.bookings.Refresh(ctx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("Warmup: finished with error: %v", err)
		return err
	}

	s.logger.Info("Warmup: rooms and bookings loaded")
	return nil
}

// LoadRooms загружает список комнат и группирует их по корпусам и этажам.
// Без force повторная загрузка не выполняется, если список уже есть.
func (s *Session) LoadRooms(ctx context.Context, force bool) error {
	s.mu.RLock()
	loaded := s.rooms != nil
	s.mu.RUnlock()
	if loaded && !force {
		return nil
	}

	_, err, _ := s.roomsGroup.Do("rooms", func() (interface{}, error) {
		return nil, s.loadRooms(context.WithoutCancel(ctx))
	})
	return err
}

func (s *Session) loadRooms(ctx context.Context) error {
	s.logger.Info("LoadRooms: fetching rooms")

	s.mu.Lock()
	s.roomsLoading = true
	s.mu.Unlock()

	rooms, err := s.roomsClient.GetRooms(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomsLoading = false

	if err != nil {
		s.roomsErr = domain.MsgFetchFailed
		s.logger.Error("LoadRooms: failed to fetch rooms: %v", err)
		return fmt.Errorf("%w: %v", ErrRoomsFetchFailed, err)
	}

	if rooms == nil {
		rooms = []domain.Room{}
	}
	s.rooms = rooms
	s.towers = towers.Group(rooms)
	s.roomsErr = ""

	s.logger.Info("LoadRooms: %d rooms in %d towers", len(rooms), len(s.towers))
	return nil
}

// Towers возвращает комнаты, сгруппированные по корпусам и этажам
func (s *Session) Towers() []domain.Tower {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.towers
}

// RoomsStatus возвращает флаги загрузки списка комнат
func (s *Session) RoomsStatus() RoomsStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return RoomsStatus{Loading: s.roomsLoading, Error: s.roomsErr}
}

// Room возвращает комнату из загруженного списка
func (s *Session) Room(roomID int64) (*domain.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.rooms {
		if s.rooms[i].ID == roomID {
			room := s.rooms[i]
			return &room, true
		}
	}
	return nil, false
}

// Date возвращает выбранную дату
func (s *Session) Date() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.date
}

// DisplayDate возвращает выбранную дату для заголовка, например "Thu, 08 Jan 2026"
func (s *Session) DisplayDate() string {
	return s.Date().Format(domain.DisplayDateFormat)
}

// SetDate меняет выбранную дату. Выбор слотов сбрасывается,
// открытая комната перезагружается на новую дату.
func (s *Session) SetDate(date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.mu.Lock()
	day := dayOf(date)
	today := dayOf(s.timeProvider.Now())
	if day.Before(today) {
		s.mu.Unlock()
		s.logger.Warn("SetDate: %s is in the past", day.Format(domain.DateFormat))
		return ErrInvalidDate
	}

	if day.Equal(s.date) {
		s.mu.Unlock()
		return nil
	}
	s.date = day

	var reopen int64
	if s.view != nil {
		reopen = s.view.roomID
	}
	s.mu.Unlock()

	s.logger.Info("SetDate: date changed to %s", day.Format(domain.DateFormat))
	s.selector.Clear()

	if reopen > 0 {
		if _, err := s.OpenRoom(reopen); err != nil {
			return err
		}
	}
	return nil
}

// Wait ждет завершения фоновых загрузок
func (s *Session) Wait() {
	s.wg.Wait()
}

func (s *Session) dateKey() string {
	return s.date.Format(domain.DateFormat)
}

// dayOf отбрасывает время; дата всегда в локальной зоне
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
