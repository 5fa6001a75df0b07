// Package clock normalizes the 12-hour time strings stored on timetable and
// exam entries into 24-hour wall-clock values.
package clock

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
)

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s+(AM|PM)$`)

// Time is a wall-clock time of day, hour in [0,23], minute in [0,59].
type Time struct {
	Hour   int
	Minute int
}

// Parse normalizes "H:MM AM|PM" (meridiem case-insensitive) to 24-hour time.
// 12 AM maps to hour 0, 12 PM stays 12, PM adds 12 to hours 1-11.
func Parse(s string) (Time, error) {
	m := timePattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return Time{}, domain.ErrInvalidTimeFormat
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return Time{}, domain.ErrInvalidTimeFormat
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return Time{}, domain.ErrInvalidTimeFormat
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return Time{}, domain.ErrInvalidTimeFormat
	}

	switch m[3] {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return Time{Hour: hour, Minute: minute}, nil
}

// Offset shifts the time by deltaMinutes, borrowing hours on negative
// minutes and wrapping across midnight in both directions.
func (t Time) Offset(deltaMinutes int) Time {
	total := t.Hour*60 + t.Minute + deltaMinutes
	const day = 24 * 60
	total %= day
	if total < 0 {
		total += day
	}
	return Time{Hour: total / 60, Minute: total % 60}
}

// Minutes returns the time of day in minutes since midnight.
func (t Time) Minutes() int {
	return t.Hour*60 + t.Minute
}
