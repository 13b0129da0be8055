package bookings

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Status состояние списка бронирований для UI
type Status struct {
	Loading  bool
	Error    string
	LoadedAt time.Time
}

// Service хранит список бронирований текущего пользователя.
// Список перезагружается после успешного бронирования и после отмены.
type Service struct {
	client       BookingAPIClient
	timeProvider TimeProvider
	logger       Logger

	mu       sync.RWMutex
	bookings []domain.Booking
	loading  bool
	errMsg   string
	loadedAt time.Time

	group singleflight.Group
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client BookingAPIClient, logger Logger) *Service {
	return &Service{
		client:       client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Refresh перезагружает список из Booking API.
// Одновременные вызовы разделяют один запрос. При ошибке прежний список сохраняется.
func (s *Service) Refresh(ctx context.Context) error {
	_, err, _ := s.group.Do("my-bookings", func() (interface{}, error) {
		return nil, s.load(context.WithoutCancel(ctx))
	})
	return err
}

func (s *Service) load(ctx context.Context) error {
	s.logger.Info("Refresh: fetching my bookings")

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	bookings, err := s.client.GetMyBookings(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.errMsg = domain.MsgFetchBookingsFailed
		s.logger.Error("Refresh: failed to fetch my bookings: %v", err)
		return fmt.Errorf("%w: Refresh - client error: %v", ErrFetchFailed, err)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Start.Before(bookings[j].Start)
	})

	s.bookings = bookings
	s.errMsg = ""
	s.loadedAt = s.timeProvider.Now()

	s.logger.Info("Refresh: successfully fetched %d bookings", len(bookings))
	return nil
}

// List возвращает бронирования из памяти, опционально отфильтрованные по тегу
func (s *Service) List(tag *domain.BookingTag) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if tag != nil && b.Tag != *tag {
			continue
		}
		result = append(result, b)
	}
	return result
}

// Status возвращает флаги загрузки списка
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{Loading: s.loading, Error: s.errMsg, LoadedAt: s.loadedAt}
}

// GetByID возвращает бронирование из загруженного списка
func (s *Service) GetByID(bookingID string) (domain.Booking, error) {
	if bookingID == "" {
		return domain.Booking{}, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.find(bookingID)
	if !ok {
		return domain.Booking{}, ErrBookingNotFound
	}
	return booking, nil
}

// Cancel отменяет бронирование пользователя.
// Отменить можно только активное бронирование из загруженного списка.
func (s *Service) Cancel(ctx context.Context, bookingID string) error {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	if bookingID == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	s.mu.RLock()
	booking, ok := s.find(bookingID)
	s.mu.RUnlock()

	if !ok {
		s.logger.Warn("Cancel: booking id=%s not found", bookingID)
		return ErrBookingNotFound
	}
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, tag=%s", bookingID, booking.Tag)
		return ErrCannotCancel
	}

	if err := s.client.CancelBooking(ctx, bookingID); err != nil {
		s.logger.Error("Cancel: client error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - client error: %v", ErrInternal, err)
	}

	// Отмечаем локально, чтобы список был верным даже если перезагрузка не удастся
	s.mu.Lock()
	for i := range s.bookings {
		if s.bookings[i].ID == bookingID {
			s.bookings[i].Tag = domain.TagCancelled
		}
	}
	s.mu.Unlock()

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("Cancel: booking id=%s cancelled, but refresh failed: %v", bookingID, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

func (s *Service) find(bookingID string) (domain.Booking, bool) {
	for _, b := range s.bookings {
		if b.ID == bookingID {
			return b, true
		}
	}
	return domain.Booking{}, false
}
