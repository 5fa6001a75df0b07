package trigger

import (
	"testing"
	"time"

	"github.com/Demma22/REMI-APP-sub000/internal/clock"
	"github.com/Demma22/REMI-APP-sub000/internal/domain"
)

func TestRecurringCalendarStrategy(t *testing.T) {
	strategy := NewRecurringCalendarStrategy()

	occurrences := strategy.WeeklyOccurrences(clock.Time{Hour: 8, Minute: 30}, time.Monday, time.Now())

	if len(occurrences) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(occurrences))
	}

	occ := occurrences[0]
	if !occ.Recurring() {
		t.Error("expected a recurring occurrence")
	}

	trig := occ.Trigger
	if trig.Type != domain.TriggerCalendar {
		t.Errorf("trigger type = %q, want calendar", trig.Type)
	}
	if trig.Weekday != 2 {
		t.Errorf("trigger weekday = %d, want 2 (Monday in host convention)", trig.Weekday)
	}
	if trig.Hour != 8 || trig.Minute != 30 || trig.Second != 0 {
		t.Errorf("trigger time = %d:%d:%d, want 8:30:0", trig.Hour, trig.Minute, trig.Second)
	}
	if !trig.Repeats {
		t.Error("expected a repeating trigger")
	}
	if trig.ChannelID != "default" {
		t.Errorf("channel = %q, want default", trig.ChannelID)
	}
}

func TestEnumeratedDateStrategyFirstOccurrence(t *testing.T) {
	loc := time.UTC
	strategy := NewEnumeratedDateStrategy(20, loc)

	// Wednesday; the Tuesday 09:00 lecture's first occurrence is 6 days out.
	now := time.Date(2026, time.January, 7, 12, 0, 0, 0, loc)
	if now.Weekday() != time.Wednesday {
		t.Fatalf("fixture drift: expected Wednesday, got %v", now.Weekday())
	}

	occurrences := strategy.WeeklyOccurrences(clock.Time{Hour: 9, Minute: 0}, time.Tuesday, now)

	if len(occurrences) != 20 {
		t.Fatalf("expected 20 future occurrences, got %d", len(occurrences))
	}

	first := occurrences[0].Trigger.Timestamp
	wantFirst := time.Date(2026, time.January, 13, 9, 0, 0, 0, loc)
	if !first.Equal(wantFirst) {
		t.Errorf("first occurrence = %v, want %v", first, wantFirst)
	}

	for i, occ := range occurrences {
		if occ.Trigger.Type != domain.TriggerDate {
			t.Fatalf("occurrence %d type = %q, want date", i, occ.Trigger.Type)
		}
		if !occ.Trigger.Timestamp.After(now) {
			t.Errorf("occurrence %d at %v is not in the future", i, occ.Trigger.Timestamp)
		}
		if occ.WeekIndex != i {
			t.Errorf("occurrence %d has week index %d", i, occ.WeekIndex)
		}
		want := wantFirst.AddDate(0, 0, 7*i)
		if !occ.Trigger.Timestamp.Equal(want) {
			t.Errorf("occurrence %d at %v, want %v", i, occ.Trigger.Timestamp, want)
		}
	}
}

func TestEnumeratedDateStrategySameDayPastTime(t *testing.T) {
	loc := time.UTC
	strategy := NewEnumeratedDateStrategy(20, loc)

	// Tuesday 10:00, lecture at 09:00: today's occurrence already passed, so
	// the first emitted trigger is next week's.
	now := time.Date(2026, time.January, 13, 10, 0, 0, 0, loc)
	if now.Weekday() != time.Tuesday {
		t.Fatalf("fixture drift: expected Tuesday, got %v", now.Weekday())
	}

	occurrences := strategy.WeeklyOccurrences(clock.Time{Hour: 9, Minute: 0}, time.Tuesday, now)

	if len(occurrences) != 19 {
		t.Fatalf("expected 19 future occurrences, got %d", len(occurrences))
	}

	wantFirst := time.Date(2026, time.January, 20, 9, 0, 0, 0, loc)
	if !occurrences[0].Trigger.Timestamp.Equal(wantFirst) {
		t.Errorf("first occurrence = %v, want %v", occurrences[0].Trigger.Timestamp, wantFirst)
	}
	if occurrences[0].WeekIndex != 1 {
		t.Errorf("first future occurrence has week index %d, want 1", occurrences[0].WeekIndex)
	}
}

func TestEnumeratedDateStrategySameDayFutureTime(t *testing.T) {
	loc := time.UTC
	strategy := NewEnumeratedDateStrategy(20, loc)

	// Tuesday 08:00, lecture at 09:00: no forced forward wait, today counts.
	now := time.Date(2026, time.January, 13, 8, 0, 0, 0, loc)

	occurrences := strategy.WeeklyOccurrences(clock.Time{Hour: 9, Minute: 0}, time.Tuesday, now)

	if len(occurrences) != 20 {
		t.Fatalf("expected 20 future occurrences, got %d", len(occurrences))
	}
	wantFirst := time.Date(2026, time.January, 13, 9, 0, 0, 0, loc)
	if !occurrences[0].Trigger.Timestamp.Equal(wantFirst) {
		t.Errorf("first occurrence = %v, want same-day %v", occurrences[0].Trigger.Timestamp, wantFirst)
	}
}
