package domain

import (
	"errors"
	"fmt"
	"sort"
)

// SlotStatus состояние слота в сетке доступности
type SlotStatus string

const (
	SlotAvailable SlotStatus = "Available"
	SlotBooked    SlotStatus = "Booked"
)

// IsValid проверяет, что статус известен
func (s SlotStatus) IsValid() bool {
	return s == SlotAvailable || s == SlotBooked
}

// ErrOverlappingSlots возвращается, когда слоты сетки пересекаются
var ErrOverlappingSlots = errors.New("domain: overlapping slots in availability grid")

// Slot один интервал сетки доступности, [StartMinute, EndMinute)
type Slot struct {
	Label       string
	StartMinute int
	EndMinute   int
	Status      SlotStatus
	EventName   string
	PIC         string
}

// IsAvailable возвращает true для свободного слота
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// Grid сетка доступности одной комнаты на одну дату.
// Слоты упорядочены по StartMinute и не пересекаются. Сетка неизменяема.
type Grid struct {
	slots []Slot
	index map[string]int
}

// NewGrid строит сетку из произвольно упорядоченных слотов
func NewGrid(slots []Slot) (*Grid, error) {
	sorted := make([]Slot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMinute < sorted[j].StartMinute
	})

	index := make(map[string]int, len(sorted))
	for i, s := range sorted {
		if i > 0 && sorted[i-1].EndMinute > s.StartMinute {
			return nil, fmt.Errorf("%w: %q and %q", ErrOverlappingSlots, sorted[i-1].Label, s.Label)
		}
		if _, dup := index[s.Label]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrOverlappingSlots, s.Label)
		}
		index[s.Label] = i
	}

	return &Grid{slots: sorted, index: index}, nil
}

// Len количество слотов
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.slots)
}

// At возвращает слот по позиции
func (g *Grid) At(i int) Slot {
	return g.slots[i]
}

// IndexOf возвращает позицию слота с меткой label
func (g *Grid) IndexOf(label string) (int, bool) {
	if g == nil {
		return 0, false
	}
	i, ok := g.index[label]
	return i, ok
}

// Get возвращает слот по метке
func (g *Grid) Get(label string) (Slot, bool) {
	i, ok := g.IndexOf(label)
	if !ok {
		return Slot{}, false
	}
	return g.slots[i], true
}

// Slots возвращает копию слотов в порядке возрастания времени
func (g *Grid) Slots() []Slot {
	if g == nil {
		return []Slot{}
	}
	out := make([]Slot, len(g.slots))
	copy(out, g.slots)
	return out
}

// Filter возвращает новую сетку из слотов, для которых keep вернул true
func (g *Grid) Filter(keep func(Slot) bool) *Grid {
	kept := make([]Slot, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		if keep(g.slots[i]) {
			kept = append(kept, g.slots[i])
		}
	}

	index := make(map[string]int, len(kept))
	for i, s := range kept {
		index[s.Label] = i
	}
	return &Grid{slots: kept, index: index}
}

// AvailableBetween возвращает true, если все слоты с позициями в [from, to] свободны.
// Пустой диапазон (from > to) считается свободным.
func (g *Grid) AvailableBetween(from, to int) bool {
	for i := from; i <= to; i++ {
		if !g.slots[i].IsAvailable() {
			return false
		}
	}
	return true
}

// AvailableCount количество свободных слотов
func (g *Grid) AvailableCount() int {
	count := 0
	for i := 0; i < g.Len(); i++ {
		if g.slots[i].IsAvailable() {
			count++
		}
	}
	return count
}
