package submit_booking

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateForm проверяет поля формы; пробелы по краям не учитываются
func validateForm(form domain.BookingForm) (domain.BookingForm, error) {
	form = domain.BookingForm{
		Purpose:        strings.TrimSpace(form.Purpose),
		PointOfContact: strings.TrimSpace(form.PointOfContact),
		Email:          strings.TrimSpace(form.Email),
	}

	if err := validate.Struct(form); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+":"+fe.Tag())
			}
		}
		return form, fmt.Errorf("%w: form validation failed: %s", ErrInvalidInput, strings.Join(fields, ", "))
	}

	return form, nil
}

// validateRoom проверяет, что данных комнаты достаточно для бронирования
func validateRoom(room *domain.Room) error {
	if !room.HasLocation() {
		return ErrInvalidRoomInfo
	}
	return nil
}
