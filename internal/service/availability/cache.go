package availability

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
)

// State состояние ключа кэша
type State int

const (
	StateAbsent State = iota
	StateLoading
	StateLoaded
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "absent"
	}
}

// Key составной ключ кэша
type Key struct {
	RoomID int64
	Date   string // YYYY-MM-DD
}

func (k Key) String() string {
	return strconv.FormatInt(k.RoomID, 10) + "|" + k.Date
}

// Entry загруженная сетка доступности вместе с данными комнаты.
// Entry устанавливается целиком и после установки не изменяется.
type Entry struct {
	Key       Key
	Room      *domain.Room
	Grid      *domain.Grid
	FetchedAt time.Time
}

// Status флаги ключа для UI
type Status struct {
	State   State
	Loading bool
	Error   string
	// Stale true, если загруженная запись помечена к перезагрузке после бронирования
	Stale bool
}

type record struct {
	state  State
	entry  *Entry
	errMsg string
	// epoch растет при каждой инвалидации; загрузка, начатая до инвалидации, оставляет запись устаревшей
	epoch int
	stale bool
}

// Cache хранилище сеток доступности по ключу (roomID, date).
// На один ключ одновременно выполняется не больше одного запроса к API.
type Cache struct {
	client       BookingAPIClient
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger

	mu      sync.Mutex
	records map[Key]*record
	group   singleflight.Group
}

// NewCache создает новый кэш доступности
func NewCache(client BookingAPIClient, m Metrics, logger Logger) *Cache {
	return &Cache{
		client:       client,
		metrics:      m,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		records:      make(map[Key]*record),
	}
}

// Fetch возвращает сетку для (roomID, date).
//
// Загруженная запись отдается из памяти. Если запрос по ключу уже выполняется,
// вызывающий ждет его результата без повторного запроса. Иначе выполняется ровно один запрос.
// Запрос не отменяется вместе с ctx вызывающего: ответ все равно попадет в кэш,
// а вызывающий получит ctx.Err().
func (c *Cache) Fetch(ctx context.Context, roomID int64, date string) (*Entry, error) {
	key, err := newKey(roomID, date)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	rec, ok := c.records[key]
	if !ok {
		rec = &record{}
		c.records[key] = rec
	}

	if rec.state == StateLoaded && !rec.stale {
		entry := rec.entry
		c.mu.Unlock()
		c.lookup(metrics.CacheHit)
		return entry, nil
	}

	if rec.state == StateLoading {
		c.lookup(metrics.CacheShared)
	} else {
		c.lookup(metrics.CacheMiss)
		rec.state = StateLoading
	}

	// DoChan вызывается под мьютексом: загрузка не может установить результат и
	// завершиться между проверкой состояния и присоединением к ней.
	epoch := rec.epoch
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key.String(), func() (interface{}, error) {
		return c.load(detached, key, epoch)
	})
	c.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Entry), nil
	}
}

// load выполняет запрос и атомарно устанавливает результат
func (c *Cache) load(ctx context.Context, key Key, epoch int) (*Entry, error) {
	c.logger.Info("Availability: fetching room_id=%d date=%s", key.RoomID, key.Date)

	result, err := c.client.GetRoomAvailability(ctx, key.RoomID, key.Date)

	c.mu.Lock()
	defer c.mu.Unlock()

	rec := c.records[key]

	// Ключ забывается до установки результата: Fetch, увидевший errored или stale,
	// начинает новый запрос, а не присоединяется к уже завершенному.
	c.group.Forget(key.String())

	if err != nil {
		// Ранее загруженная сетка (если была) остается нетронутой
		rec.state = StateErrored
		rec.errMsg = domain.MsgFetchFailed
		c.lookup(metrics.CacheError)

		if errors.Is(err, bookingapi.ErrRoomNotFound) {
			c.logger.Warn("Availability: room_id=%d not found", key.RoomID)
			return nil, fmt.Errorf("%w: room_id=%d", ErrRoomNotFound, key.RoomID)
		}
		c.logger.Error("Availability: failed to fetch room_id=%d date=%s: %v", key.RoomID, key.Date, err)
		return nil, fmt.Errorf("%w: room_id=%d date=%s: %v", ErrFetchFailed, key.RoomID, key.Date, err)
	}

	entry := &Entry{
		Key:       key,
		Room:      result.Room,
		Grid:      result.Grid,
		FetchedAt: c.timeProvider.Now(),
	}

	rec.state = StateLoaded
	rec.entry = entry
	rec.errMsg = ""
	rec.stale = rec.epoch != epoch

	c.logger.Info("Availability: installed room_id=%d date=%s slots=%d", key.RoomID, key.Date, entry.Grid.Len())
	return entry, nil
}

// Status возвращает флаги загрузки и ошибки для ключа
func (c *Cache) Status(roomID int64, date string) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.records[Key{RoomID: roomID, Date: date}]
	if !ok {
		return Status{State: StateAbsent}
	}

	return Status{
		State:   rec.state,
		Loading: rec.state == StateLoading,
		Error:   rec.errMsg,
		Stale:   rec.stale,
	}
}

// Peek возвращает последнюю установленную запись без запроса к API
func (c *Cache) Peek(roomID int64, date string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.records[Key{RoomID: roomID, Date: date}]
	if !ok || rec.entry == nil {
		return nil, false
	}
	return rec.entry, true
}

// Invalidate помечает запись устаревшей: следующий Fetch выполнит запрос.
// Используется только после успешного бронирования.
func (c *Cache) Invalidate(roomID int64, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.records[Key{RoomID: roomID, Date: date}]
	if !ok {
		return
	}
	rec.epoch++
	if rec.state == StateLoaded {
		rec.stale = true
	}
	c.logger.Info("Availability: invalidated room_id=%d date=%s", roomID, date)
}

func (c *Cache) lookup(result string) {
	if c.metrics != nil {
		c.metrics.CacheLookup(result)
	}
}

func newKey(roomID int64, date string) (Key, error) {
	if roomID <= 0 {
		return Key{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return Key{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return Key{RoomID: roomID, Date: date}, nil
}
