package submit_booking

import "errors"

var (
	// ErrNoTimeSelected возвращается, когда не выбрано ни одного слота
	ErrNoTimeSelected = errors.New("submit_booking: no time selected")

	// ErrInvalidRoomInfo возвращается, когда у комнаты нет имени, корпуса или этажа
	ErrInvalidRoomInfo = errors.New("submit_booking: invalid room information")

	// ErrSubmitInProgress возвращается, пока выполняется предыдущая отправка
	ErrSubmitInProgress = errors.New("submit_booking: submit already in progress")

	// ErrBookingRejected возвращается, когда сервер отказал в бронировании
	ErrBookingRejected = errors.New("submit_booking: booking rejected")

	// ErrSubmitFailed возвращается при сетевой ошибке или некорректном ответе
	ErrSubmitFailed = errors.New("submit_booking: failed to create booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")
)

// RejectedError отказ сервера; Message показывается пользователю как есть
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

// UserMessage возвращает текст ошибки, который можно показать пользователю
func UserMessage(err error) string {
	var rejected *RejectedError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &rejected):
		return rejected.Message
	case errors.Is(err, ErrNoTimeSelected):
		return msgNoTimeSelected
	case errors.Is(err, ErrInvalidRoomInfo):
		return msgInvalidRoomInfo
	case errors.Is(err, ErrSubmitInProgress):
		return msgSubmitInProgress
	case errors.Is(err, ErrInvalidInput):
		return msgMissingFormFields
	default:
		return msgBookingFailed
	}
}
