// Package trigger turns a normalized time-of-day plus a weekly recurrence
// intent into the concrete trigger descriptors the current platform's host
// can actually fire.
package trigger

import (
	"time"

	"github.com/Demma22/REMI-APP-sub000/internal/clock"
	"github.com/Demma22/REMI-APP-sub000/internal/domain"
)

// Occurrence pairs a host trigger with its position in a fan-out. WeekIndex
// is -1 for recurring triggers, which stand for all occurrences at once.
type Occurrence struct {
	Trigger   domain.Trigger
	WeekIndex int
}

// Recurring reports whether this occurrence is a single repeating trigger
// rather than one enumerated firing.
func (o Occurrence) Recurring() bool {
	return o.WeekIndex < 0
}

// Strategy builds the occurrences for one logical weekly reminder. Planners
// are platform-agnostic call sites; the strategy is selected once at
// construction.
type Strategy interface {
	// WeeklyOccurrences returns the triggers for a reminder firing every
	// week on the given weekday at the given time. Occurrences that would
	// fire at or before now are never returned.
	WeeklyOccurrences(at clock.Time, weekday time.Weekday, now time.Time) []Occurrence

	Name() string
}
