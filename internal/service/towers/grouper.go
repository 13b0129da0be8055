package towers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Group раскладывает комнаты по корпусам и этажам.
//
// Корпуса упорядочены по имени, этажи сначала числовые по номеру, затем остальные по строке,
// комнаты внутри этажа по имени, затем по ID. Комнаты без корпуса или этажа
// попадают в группу domain.UnassignedGroup. Каждая комната встречается ровно один раз.
func Group(rooms []domain.Room) []domain.Tower {
	byTower := make(map[string]map[string][]domain.Room)

	for _, room := range rooms {
		tower := groupName(room.Tower)
		level := groupName(room.Level)

		levels, ok := byTower[tower]
		if !ok {
			levels = make(map[string][]domain.Room)
			byTower[tower] = levels
		}
		levels[level] = append(levels[level], room)
	}

	towerNames := make([]string, 0, len(byTower))
	for name := range byTower {
		towerNames = append(towerNames, name)
	}
	sort.Slice(towerNames, func(i, j int) bool {
		return towerNames[i] < towerNames[j]
	})

	result := make([]domain.Tower, 0, len(towerNames))
	for _, towerName := range towerNames {
		levels := byTower[towerName]

		levelNames := make([]string, 0, len(levels))
		for name := range levels {
			levelNames = append(levelNames, name)
		}
		sort.Slice(levelNames, func(i, j int) bool {
			return compareLevels(levelNames[i], levelNames[j]) < 0
		})

		tower := domain.Tower{Name: towerName, Levels: make([]domain.Level, 0, len(levelNames))}
		for _, levelName := range levelNames {
			levelRooms := levels[levelName]
			sort.SliceStable(levelRooms, func(i, j int) bool {
				if levelRooms[i].Name != levelRooms[j].Name {
					return levelRooms[i].Name < levelRooms[j].Name
				}
				return levelRooms[i].ID < levelRooms[j].ID
			})
			tower.Levels = append(tower.Levels, domain.Level{Name: levelName, Rooms: levelRooms})
		}
		result = append(result, tower)
	}

	return result
}

func groupName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.UnassignedGroup
	}
	return name
}

// compareLevels задает полный порядок этажей: сначала числовые по возрастанию номера,
// затем остальные по строке. Одинаковые номера ("1" и "01") различаются по строке.
func compareLevels(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		if na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
