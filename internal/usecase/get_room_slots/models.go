package get_room_slots

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Request модель запроса сетки комнаты
type Request struct {
	RoomID int64     // ID комнаты
	Date   time.Time // Дата (без времени)
}

// Response сетка комнаты, из которой уже убраны прошедшие слоты
type Response struct {
	Room      *domain.Room // nil, если API не вернул данные комнаты
	Date      time.Time
	Grid      *domain.Grid
	Cutoff    *int // минуты от полуночи; nil для любой даты кроме сегодня
	FetchedAt time.Time
}
