// Package slotlabel разбирает и форматирует метки временных слотов вида
// "9:00 AM - 10:00 AM", которые приходят из Booking API.
//
// Метки всегда формируются сервером в фиксированном формате, поэтому
// некорректная метка считается нарушением контракта: функции возвращают
// ErrMalformedLabel, а Must* варианты паникуют.
package slotlabel

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// ErrMalformedLabel возвращается, когда метка не соответствует формату "H:MM AM - H:MM PM"
var ErrMalformedLabel = errors.New("slotlabel: malformed slot label")

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)

// Range интервал слота в минутах от полуночи, [StartMinute, EndMinute)
type Range struct {
	StartMinute int
	EndMinute   int
}

// Duration длительность интервала в минутах
func (r Range) Duration() int {
	return r.EndMinute - r.StartMinute
}

// ParseStart возвращает начало слота в минутах от полуночи
func ParseStart(label string) (int, error) {
	r, err := ParseRange(label)
	if err != nil {
		return 0, err
	}
	return r.StartMinute, nil
}

// ParseEnd возвращает конец слота в минутах от полуночи (до 1440 включительно)
func ParseEnd(label string) (int, error) {
	r, err := ParseRange(label)
	if err != nil {
		return 0, err
	}
	return r.EndMinute, nil
}

// ParseRange разбирает метку целиком.
// Конец "12:00 AM" после начала в течение дня означает полночь следующих суток (1440).
func ParseRange(label string) (Range, error) {
	normalized := strings.ReplaceAll(label, "–", "-")
	parts := strings.Split(normalized, "-")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedLabel, label)
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedLabel, label)
	}

	end, err := parseClock(parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedLabel, label)
	}

	if end == 0 {
		end = types.MinutesPerDay
	}

	if end <= start {
		return Range{}, fmt.Errorf("%w: %q ends before it starts", ErrMalformedLabel, label)
	}

	return Range{StartMinute: start, EndMinute: end}, nil
}

// MustParseStart как ParseStart, но паникует на некорректной метке
func MustParseStart(label string) int {
	start, err := ParseStart(label)
	if err != nil {
		panic(err)
	}
	return start
}

// MustParseRange как ParseRange, но паникует на некорректной метке
func MustParseRange(label string) Range {
	r, err := ParseRange(label)
	if err != nil {
		panic(err)
	}
	return r
}

// Format12h форматирует минуты от полуночи как "H:MM AM/PM".
// 0 и 1440 дают "12:00 AM", 720 дает "12:00 PM".
func Format12h(minutes int) string {
	minutes %= types.MinutesPerDay
	if minutes < 0 {
		minutes += types.MinutesPerDay
	}

	hours := minutes / 60
	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}

	hours12 := hours % 12
	if hours12 == 0 {
		hours12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hours12, minutes%60, suffix)
}

// FormatLabel собирает каноническую метку из интервала
func FormatLabel(r Range) string {
	return Format12h(r.StartMinute) + " - " + Format12h(r.EndMinute)
}

// To24h переводит минуты от полуночи в "HH:MM"
func To24h(minutes int) (types.TimeString, error) {
	return types.FromMinutes(minutes)
}

func parseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, ErrMalformedLabel
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if hours < 1 || hours > 12 || minutes > 59 {
		return 0, ErrMalformedLabel
	}

	hours %= 12
	if strings.EqualFold(m[3], "PM") {
		hours += 12
	}

	return hours*60 + minutes, nil
}
