package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/bookingapi"
)

// UseCase use case для отправки бронирования по выбранному интервалу.
// Одновременно выполняется не больше одной отправки.
type UseCase struct {
	client   BookingAPIClient
	cache    AvailabilityCache
	selector SelectionClearer
	bookings BookingsRefresher
	notifier Notifier
	metrics  Metrics
	logger   Logger

	mu         sync.Mutex
	submitting bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client BookingAPIClient,
	cache AvailabilityCache,
	selector SelectionClearer,
	bookings BookingsRefresher,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:   client,
		cache:    cache,
		selector: selector,
		bookings: bookings,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Submitting возвращает true, пока выполняется отправка
func (uc *UseCase) Submitting() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.submitting
}

// Execute выполняет use case отправки бронирования.
// Ошибки проверки не приводят к сетевым вызовам. При отказе сервера выбор сохраняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Только одна отправка за раз
	if !uc.begin() {
		uc.logger.Warn("SubmitBooking: rejected, previous submit still in progress")
		return nil, ErrSubmitInProgress
	}
	defer uc.end()

	// 2. Выбор обязателен
	if req == nil || req.Selection == nil {
		uc.logger.Warn("SubmitBooking: no time selected")
		return nil, uc.fail(OutcomeInvalid, ErrNoTimeSelected)
	}

	// 3. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, uc.fail(OutcomeInvalid, err)
	}

	date := req.Date.Format(domain.DateFormat)
	uc.logger.Info("SubmitBooking: room=%d, date=%s, time=%s", req.RoomID, date, req.Selection.Display())

	// 4. Данные комнаты берутся из той же записи кэша, что и сетка
	entry, ok := uc.cache.Peek(req.RoomID, date)
	var room *domain.Room
	if ok {
		room = entry.Room
	}
	if err := validateRoom(room); err != nil {
		uc.logger.Warn("SubmitBooking: room=%d has no name/tower/level", req.RoomID)
		return nil, uc.fail(OutcomeInvalid, err)
	}

	// 5. Проверяем форму
	form, err := validateForm(req.Form)
	if err != nil {
		uc.logger.Warn("SubmitBooking: %v", err)
		return nil, uc.fail(OutcomeInvalid, err)
	}

	// 6. Отправляем бронирование
	apiReq := &bookingapi.CreateBookingRequest{
		Date:      date,
		StartTime: req.Selection.Start.String(),
		EndTime:   req.Selection.End.String(),
		Room:      room.Name,
		Tower:     room.Tower,
		Level:     room.Level,
		Purpose:   form.Purpose,
		PIC:       form.PointOfContact,
		Email:     form.Email,
	}

	created, err := uc.client.CreateBooking(ctx, apiReq)
	if err != nil {
		if errors.Is(err, bookingapi.ErrBookingRejected) {
			uc.logger.Warn("SubmitBooking: rejected by server for room=%d %s: %v",
				req.RoomID, req.Selection.Display(), err)
			return nil, uc.fail(OutcomeRejected, &RejectedError{Message: err.Error()})
		}
		uc.logger.Error("SubmitBooking: failed to create booking for room=%d: %v", req.RoomID, err)
		return nil, uc.fail(OutcomeFailed, fmt.Errorf("%w: %v", ErrSubmitFailed, err))
	}

	// 7. Сверяем локальное состояние
	uc.selector.ClearFor(req.RoomID, date)
	uc.cache.Invalidate(req.RoomID, date)
	if err := uc.bookings.Refresh(ctx); err != nil {
		uc.logger.Warn("SubmitBooking: booking created, but my bookings refresh failed: %v", err)
	}

	uc.observe(OutcomeSuccess)
	if uc.notifier != nil {
		uc.notifier.Success(msgBookingCreated)
	}

	uc.logger.Info("SubmitBooking: successfully created booking number=%s room=%d %s %s",
		created.BookingNumber, req.RoomID, date, req.Selection.Display())

	return &Response{
		BookingNumber: created.BookingNumber,
		Message:       msgBookingCreated,
		RoomName:      room.Name,
		Date:          req.Date,
		StartTime:     apiReq.StartTime,
		EndTime:       apiReq.EndTime,
	}, nil
}

func (uc *UseCase) begin() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.submitting {
		return false
	}
	uc.submitting = true
	return true
}

func (uc *UseCase) end() {
	uc.mu.Lock()
	uc.submitting = false
	uc.mu.Unlock()
}

// fail учитывает неудачную отправку и сообщает о ней пользователю
func (uc *UseCase) fail(outcome string, err error) error {
	uc.observe(outcome)
	if uc.notifier != nil {
		uc.notifier.Failure(UserMessage(err))
	}
	return err
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.BookingSubmitted(outcome)
	}
}
