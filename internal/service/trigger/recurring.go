package trigger

import (
	"time"

	"github.com/Demma22/REMI-APP-sub000/internal/clock"
	"github.com/Demma22/REMI-APP-sub000/internal/domain"
)

// RecurringCalendarStrategy emits a single repeating calendar trigger. Used
// where the host fires weekly exact-time triggers reliably.
type RecurringCalendarStrategy struct{}

func NewRecurringCalendarStrategy() *RecurringCalendarStrategy {
	return &RecurringCalendarStrategy{}
}

func (s *RecurringCalendarStrategy) WeeklyOccurrences(at clock.Time, weekday time.Weekday, _ time.Time) []Occurrence {
	return []Occurrence{
		{
			Trigger:   domain.NewCalendarTrigger(weekday, at.Hour, at.Minute),
			WeekIndex: -1,
		},
	}
}

func (s *RecurringCalendarStrategy) Name() string {
	return "recurring_calendar"
}
