package session

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings"
	"github.com/m04kA/SMC-RoomBooking/internal/service/cutoff"
	"github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
)

// SubmitBooking отправляет бронирование по текущему выбору.
// Ошибки не возвращаются, а передаются в результате вместе с сообщением для пользователя.
func (s *Session) SubmitBooking(ctx context.Context, form domain.BookingForm) SubmitResult {
	s.mu.RLock()
	date := s.date
	now := s.timeProvider.Now()
	roomID := int64(0)
	if s.view != nil {
		roomID = s.view.roomID
	}
	s.mu.RUnlock()

	if snap := s.selector.Snapshot(); !snap.State.IsEmpty() {
		roomID = snap.RoomID
	}

	sel := s.selector.Current(roomID, date.Format(domain.DateFormat))
	// выбор мог устареть, пока экран был открыт: начало уже за отсечкой
	if limit := cutoff.ComputeCutoff(date, now); sel != nil && limit != nil && sel.StartMinute < *limit {
		s.logger.Warn("SubmitBooking: selection %s-%s for room=%d is behind cutoff %d", sel.Start, sel.End, roomID, *limit)
		s.selector.Clear()
		s.notices.Failure(domain.MsgSelectionExpired)
		return SubmitResult{Error: domain.MsgSelectionExpired}
	}

	resp, err := s.submitter.Execute(ctx, &submit_booking.Request{
		RoomID:    roomID,
		Date:      date,
		Selection: sel,
		Form:      form,
	})
	if err != nil {
		return SubmitResult{Error: submit_booking.UserMessage(err)}
	}

	// сетка комнаты инвалидирована: открытый экран перезагружается
	s.mu.RLock()
	reopen := s.view != nil && s.view.roomID == roomID
	s.mu.RUnlock()
	if reopen {
		if _, err := s.OpenRoom(roomID); err != nil {
			s.logger.Warn("SubmitBooking: failed to reload room=%d: %v", roomID, err)
		}
	}

	return SubmitResult{
		Success:       true,
		BookingNumber: resp.BookingNumber,
		Message:       resp.Message,
	}
}

// MyBookings возвращает бронирования пользователя; tag может быть пустым
func (s *Session) MyBookings(tag string) ([]domain.Booking, bookings.Status, error) {
	var filter *domain.BookingTag
	if tag != "" {
		parsed, ok := domain.ParseBookingTag(tag)
		if !ok {
			return nil, bookings.Status{}, fmt.Errorf("%w: unknown booking tag %q", ErrInvalidInput, tag)
		}
		filter = &parsed
	}

	return s.bookings.List(filter), s.bookings.Status(), nil
}

// MyBooking возвращает одно бронирование пользователя
func (s *Session) MyBooking(bookingID string) (domain.Booking, error) {
	return s.bookings.GetByID(bookingID)
}

// RefreshBookings перезагружает бронирования пользователя
func (s *Session) RefreshBookings(ctx context.Context) error {
	return s.bookings.Refresh(ctx)
}

// CancelBooking отменяет бронирование пользователя
func (s *Session) CancelBooking(ctx context.Context, bookingID string) error {
	if err := s.bookings.Cancel(ctx, bookingID); err != nil {
		return err
	}
	if s.notices != nil {
		s.notices.Success(domain.MsgBookingCancelled)
	}
	return nil
}

// TakeNotice возвращает последнее уведомление для пользователя и очищает его
func (s *Session) TakeNotice() *Notice {
	if s.notices == nil {
		return nil
	}
	return s.notices.Take()
}
