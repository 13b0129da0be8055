package get_towers

// TowersResponse HTTP response model
type TowersResponse struct {
	Date        string          `json:"date"`
	DisplayDate string          `json:"displayDate"`
	Loading     bool            `json:"loading"`
	Error       string          `json:"error,omitempty"`
	Towers      []TowerResponse `json:"towers"`
}

// TowerResponse корпус
type TowerResponse struct {
	Name      string          `json:"name"`
	RoomCount int             `json:"roomCount"`
	Levels    []LevelResponse `json:"levels"`
}

// LevelResponse этаж
type LevelResponse struct {
	Name  string         `json:"name"`
	Rooms []RoomResponse `json:"rooms"`
}

// RoomResponse комната с флагами загрузки сетки на выбранную дату
type RoomResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	Department string `json:"department,omitempty"`
	Loading    bool   `json:"loading"`
	Error      string `json:"error,omitempty"`
}
