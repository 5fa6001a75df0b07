package trigger

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/Demma22/REMI-APP-sub000/internal/clock"
	"github.com/Demma22/REMI-APP-sub000/internal/domain"
)

// EnumeratedDateStrategy fans one weekly reminder out into absolute date
// triggers over a fixed horizon. The host on this platform does not fire
// weekly exact-time triggers reliably once the app is backgrounded, and the
// subsystem gets no background execution to re-enumerate from, so the whole
// horizon is front-loaded at planning time.
type EnumeratedDateStrategy struct {
	horizonWeeks int
	loc          *time.Location
}

func NewEnumeratedDateStrategy(horizonWeeks int, loc *time.Location) *EnumeratedDateStrategy {
	if loc == nil {
		loc = time.Local
	}
	return &EnumeratedDateStrategy{
		horizonWeeks: horizonWeeks,
		loc:          loc,
	}
}

func (s *EnumeratedDateStrategy) WeeklyOccurrences(at clock.Time, weekday time.Weekday, now time.Time) []Occurrence {
	now = now.In(s.loc)

	// First candidate is today when today is the target weekday; a same-day
	// occurrence whose time already passed is dropped by the future check.
	daysAhead := (int(weekday) - int(now.Weekday()) + 7) % 7
	first := time.Date(now.Year(), now.Month(), now.Day()+daysAhead, at.Hour, at.Minute, 0, 0, s.loc)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Count:   s.horizonWeeks,
		Dtstart: first,
	})
	if err != nil {
		return nil
	}

	occurrences := make([]Occurrence, 0, s.horizonWeeks)
	for week, fireAt := range rule.All() {
		if !fireAt.After(now) {
			continue
		}
		occurrences = append(occurrences, Occurrence{
			Trigger:   domain.NewDateTrigger(fireAt),
			WeekIndex: week,
		})
	}
	return occurrences
}

func (s *EnumeratedDateStrategy) Name() string {
	return "enumerated_date"
}
