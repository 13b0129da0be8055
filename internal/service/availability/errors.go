package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном ID комнаты или дате
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrRoomNotFound возвращается, когда Booking API не знает комнату
	ErrRoomNotFound = errors.New("availability: room not found")

	// ErrFetchFailed возвращается при любой ошибке загрузки сетки (сеть, таймаут, ответ)
	ErrFetchFailed = errors.New("availability: fetch failed")
)
