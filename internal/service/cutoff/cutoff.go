package cutoff

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// ComputeCutoff возвращает самое раннее время начала слота, доступное для бронирования.
// Для любой даты, кроме сегодняшней, возвращает nil.
// Для сегодня это текущее время, округленное вверх до целого часа, в минутах от полуночи:
// 14:37 -> 900 (15:00), ровно 14:00:00 -> 840.
func ComputeCutoff(date, now time.Time) *int {
	if !isSameDay(date, now) {
		return nil
	}

	minutes := now.Hour()*60 + now.Minute()
	if now.Minute() > 0 || now.Second() > 0 || now.Nanosecond() > 0 {
		minutes = (now.Hour() + 1) * 60
	}

	return &minutes
}

// ComputeCutoffForDate то же, что ComputeCutoff, для даты в формате YYYY-MM-DD в локальной зоне
func ComputeCutoffForDate(date string, now time.Time) (*int, error) {
	d, err := time.ParseInLocation(domain.DateFormat, date, now.Location())
	if err != nil {
		return nil, fmt.Errorf("cutoff: invalid date %q: %w", date, err)
	}
	return ComputeCutoff(d, now), nil
}

// Filter убирает слоты, начинающиеся раньше cutoff. nil cutoff возвращает сетку без изменений.
func Filter(grid *domain.Grid, cutoff *int) *domain.Grid {
	if cutoff == nil || grid == nil {
		return grid
	}

	limit := *cutoff
	return grid.Filter(func(s domain.Slot) bool {
		return s.StartMinute >= limit
	})
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
