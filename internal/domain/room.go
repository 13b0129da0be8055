package domain

// Room переговорная комната из Booking API. После загрузки не изменяется.
type Room struct {
	ID         int64
	Name       string
	Tower      string
	Level      string
	Capacity   int
	Department string
}

// HasLocation возвращает true, если у комнаты заполнены имя, корпус и этаж.
// Без этих данных бронирование отправить нельзя.
func (r *Room) HasLocation() bool {
	return r != nil && r.Name != "" && r.Tower != "" && r.Level != ""
}

// Tower корпус с упорядоченным списком этажей
type Tower struct {
	Name   string
	Levels []Level
}

// Level этаж с упорядоченным списком комнат
type Level struct {
	Name  string
	Rooms []Room
}

// RoomCount количество комнат во всех этажах корпуса
func (t *Tower) RoomCount() int {
	count := 0
	for _, l := range t.Levels {
		count += len(l.Rooms)
	}
	return count
}
