package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings"
	"github.com/m04kA/SMC-RoomBooking/internal/service/selection"
	"github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_slots"
	"github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
)

// RoomsClient интерфейс получения списка комнат
type RoomsClient interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
}

// AvailabilityCache интерфейс кэша доступности
type AvailabilityCache interface {
	Fetch(ctx context.Context, roomID int64, date string) (*availability.Entry, error)
	Status(roomID int64, date string) availability.Status
}

// RoomSlotsUseCase интерфейс use case получения сетки комнаты
type RoomSlotsUseCase interface {
	Execute(ctx context.Context, req *get_room_slots.Request) (*get_room_slots.Response, error)
}

// SubmitUseCase интерфейс use case отправки бронирования
type SubmitUseCase interface {
	Execute(ctx context.Context, req *submit_booking.Request) (*submit_booking.Response, error)
	Submitting() bool
}

// Selector интерфейс хранилища выбора слотов
type Selector interface {
	Tap(roomID int64, date string, grid *domain.Grid, label string, status domain.SlotStatus) (selection.Snapshot, selection.Outcome)
	Snapshot() selection.Snapshot
	Current(roomID int64, date string) *selection.Interval
	IsSelected(roomID int64, label string) bool
	Clear()
}

// BookingsStore интерфейс списка бронирований пользователя
type BookingsStore interface {
	Refresh(ctx context.Context) error
	List(tag *domain.BookingTag) []domain.Booking
	Status() bookings.Status
	GetByID(bookingID string) (domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время
func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
