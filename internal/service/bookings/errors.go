package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирования нет в списке пользователя
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrFetchFailed возвращается, когда список бронирований не удалось загрузить
	ErrFetchFailed = errors.New("service: failed to fetch bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
