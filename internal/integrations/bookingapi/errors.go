package bookingapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, сеть, таймаут)
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrUnauthorized возвращается, когда токен отклонен сервером
	ErrUnauthorized = errors.New("bookingapi client: unauthorized")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("bookingapi client: room not found")

	// ErrBookingRejected возвращается, когда сервер отказал в бронировании или отмене
	ErrBookingRejected = errors.New("bookingapi client: request rejected")
)

// RejectedError отказ сервера с сообщением, которое нужно показать пользователю как есть
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

// Is позволяет проверять отказ через errors.Is(err, ErrBookingRejected)
func (e *RejectedError) Is(target error) bool {
	return target == ErrBookingRejected
}
