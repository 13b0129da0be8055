package session

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("session: invalid input data")

	// ErrInvalidDate возвращается при попытке выбрать дату в прошлом
	ErrInvalidDate = errors.New("session: date is in the past")

	// ErrRoomNotOpen возвращается, когда операция требует открытой комнаты
	ErrRoomNotOpen = errors.New("session: room is not open")

	// ErrSlotsNotLoaded возвращается, когда сетка открытой комнаты еще не загружена
	ErrSlotsNotLoaded = errors.New("session: slots are not loaded yet")

	// ErrRoomsFetchFailed возвращается, когда список комнат не удалось загрузить
	ErrRoomsFetchFailed = errors.New("session: failed to fetch rooms")
)
