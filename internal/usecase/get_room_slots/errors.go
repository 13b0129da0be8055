package get_room_slots

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("get_room_slots: room not found")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("get_room_slots: invalid date")

	// ErrFetchFailed возвращается, когда сетку не удалось загрузить
	ErrFetchFailed = errors.New("get_room_slots: failed to fetch availability")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_room_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_room_slots: internal error")
)
