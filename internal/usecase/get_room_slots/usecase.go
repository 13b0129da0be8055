package get_room_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	"github.com/m04kA/SMC-RoomBooking/internal/service/cutoff"
)

// UseCase use case для получения сетки слотов комнаты на дату
type UseCase struct {
	cache        AvailabilityCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cache AvailabilityCache, logger Logger) *UseCase {
	return &UseCase{
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов и сессии с общими часами)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения сетки комнаты.
// Для сегодняшней даты слоты, начинающиеся раньше ближайшего целого часа, убираются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomSlots: validation failed: %v", err)
		return nil, err
	}

	date := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetRoomSlots: room=%d, date=%s", req.RoomID, date)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не может быть в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetRoomSlots: date %s is in the past", date)
		return nil, err
	}

	// 4. Получаем сетку из кэша (или один запрос к API)
	entry, err := uc.cache.Fetch(ctx, req.RoomID, date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrRoomNotFound):
			uc.logger.Warn("GetRoomSlots: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		case errors.Is(err, availability.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		case errors.Is(err, availability.ErrFetchFailed):
			uc.logger.Error("GetRoomSlots: failed to fetch room id=%d date=%s: %v", req.RoomID, date, err)
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		default:
			uc.logger.Error("GetRoomSlots: unexpected error for room id=%d: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: failed to fetch availability: %v", ErrInternal, err)
		}
	}

	// 5. Убираем прошедшие слоты
	limit := cutoff.ComputeCutoff(req.Date, now)
	grid := cutoff.Filter(entry.Grid, limit)

	uc.logger.Info("GetRoomSlots: room=%d, date=%s, slots=%d/%d, available=%d",
		req.RoomID, date, grid.Len(), entry.Grid.Len(), grid.AvailableCount())

	return &Response{
		Room:      entry.Room,
		Date:      req.Date,
		Grid:      grid,
		Cutoff:    limit,
		FetchedAt: entry.FetchedAt,
	}, nil
}
