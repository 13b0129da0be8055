package towers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

func sampleRooms() []domain.Room {
	return []domain.Room{
		{ID: 1, Name: "Orchid", Tower: "B", Level: "10"},
		{ID: 2, Name: "Lotus", Tower: "A", Level: "3"},
		{ID: 3, Name: "Iris", Tower: "A", Level: "3"},
		{ID: 4, Name: "Jasmine", Tower: "A", Level: "12"},
		{ID: 5, Name: "Tulip", Tower: "B", Level: "2"},
		{ID: 6, Name: "Iris", Tower: "A", Level: "3"},
		{ID: 7, Name: "Hall", Tower: "", Level: "1"},
		{ID: 8, Name: "Annex", Tower: "B", Level: "Mezzanine"},
	}
}

func flatten(towers []domain.Tower) []int64 {
	var ids []int64
	for _, t := range towers {
		for _, l := range t.Levels {
			for _, r := range l.Rooms {
				ids = append(ids, r.ID)
			}
		}
	}
	return ids
}

func TestGroup_Ordering(t *testing.T) {
	towers := Group(sampleRooms())

	require.Len(t, towers, 3)
	assert.Equal(t, "A", towers[0].Name)
	assert.Equal(t, "B", towers[1].Name)
	assert.Equal(t, domain.UnassignedGroup, towers[2].Name)

	// числовые этажи сравниваются как числа
	require.Len(t, towers[0].Levels, 2)
	assert.Equal(t, "3", towers[0].Levels[0].Name)
	assert.Equal(t, "12", towers[0].Levels[1].Name)

	require.Len(t, towers[1].Levels, 3)
	assert.Equal(t, "2", towers[1].Levels[0].Name)
	assert.Equal(t, "10", towers[1].Levels[1].Name)
	assert.Equal(t, "Mezzanine", towers[1].Levels[2].Name)

	level3 := towers[0].Levels[0].Rooms
	require.Len(t, level3, 3)
	assert.Equal(t, []int64{3, 6, 2}, []int64{level3[0].ID, level3[1].ID, level3[2].ID})
}

func TestGroup_EveryRoomExactlyOnce(t *testing.T) {
	rooms := sampleRooms()
	towers := Group(rooms)

	ids := flatten(towers)
	assert.Len(t, ids, len(rooms))
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, ids)

	total := 0
	for i := range towers {
		total += towers[i].RoomCount()
	}
	assert.Equal(t, len(rooms), total)
}

func TestGroup_StableAcrossInputOrder(t *testing.T) {
	rooms := sampleRooms()
	expected := flatten(Group(rooms))

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]domain.Room(nil), rooms...)
		rnd.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, expected, flatten(Group(shuffled)))
	}
}

func levelNames(t domain.Tower) []string {
	names := make([]string, 0, len(t.Levels))
	for _, l := range t.Levels {
		names = append(names, l.Name)
	}
	return names
}

func TestGroup_AmbiguousLevelsHaveSingleOrder(t *testing.T) {
	tests := []struct {
		name   string
		levels []string
		want   []string
	}{
		{"same number different spelling", []string{"1", "01"}, []string{"01", "1"}},
		{"numeric before non-numeric", []string{"2", "10", "1A"}, []string{"2", "10", "1A"}},
		{"mixed", []string{"Roof", "B1", "3", "03", "12"}, []string{"03", "3", "12", "B1", "Roof"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := make([]domain.Room, 0, len(tt.levels))
			for i, level := range tt.levels {
				rooms = append(rooms, domain.Room{ID: int64(i + 1), Name: "Room", Tower: "A", Level: level})
			}

			// порядок уровней строится из map: повторяем, чтобы поймать разные обходы
			for i := 0; i < 200; i++ {
				towers := Group(rooms)
				require.Len(t, towers, 1)
				require.Equal(t, tt.want, levelNames(towers[0]))
			}
		})
	}
}

func TestCompareLevels_Antisymmetric(t *testing.T) {
	levels := []string{"1", "01", "2", "10", "1A", "B1", "Roof", "-1"}
	for _, a := range levels {
		for _, b := range levels {
			assert.Equal(t, -compareLevels(b, a), compareLevels(a, b), "%q vs %q", a, b)
			if a != b {
				assert.NotZero(t, compareLevels(a, b), "%q vs %q", a, b)
			}
		}
	}
}

func TestGroup_Unassigned(t *testing.T) {
	towers := Group([]domain.Room{{ID: 1, Name: "Pod", Tower: "C", Level: "  "}})

	require.Len(t, towers, 1)
	require.Len(t, towers[0].Levels, 1)
	assert.Equal(t, domain.UnassignedGroup, towers[0].Levels[0].Name)
}

func TestGroup_Empty(t *testing.T) {
	assert.Empty(t, Group(nil))
}
