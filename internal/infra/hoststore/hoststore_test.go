package hoststore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
	"github.com/Demma22/REMI-APP-sub000/internal/testutil"
)

func TestScheduleListCancelRoundtrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	notifier := New(client)

	content := domain.Content{
		Title: "Lecture Reminder",
		Body:  "Algorithms starts in 30 minutes",
		Data: domain.ReminderData{
			Type:     domain.CategoryLecture,
			SourceID: "L1",
			Day:      "monday",
			Time:     "9:00 AM",
		},
	}
	trig := domain.NewCalendarTrigger(time.Monday, 8, 30)

	handle, err := notifier.Schedule(ctx, content, trig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle == "" {
		t.Fatal("expected a non-empty handle")
	}

	scheduled, err := notifier.ListScheduled(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scheduled) != 1 {
		t.Fatalf("list holds %d reminders, want 1", len(scheduled))
	}
	got := scheduled[0]
	if got.Handle != handle {
		t.Errorf("handle = %q, want %q", got.Handle, handle)
	}
	if got.Content.Data.SourceID != "L1" || got.Content.Data.Type != domain.CategoryLecture {
		t.Errorf("round-tripped data = %+v", got.Content.Data)
	}
	if got.Trigger.Type != domain.TriggerCalendar || got.Trigger.Weekday != domain.HostWeekday(time.Monday) {
		t.Errorf("round-tripped trigger = %+v", got.Trigger)
	}

	if err := notifier.Cancel(ctx, handle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scheduled, err = notifier.ListScheduled(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scheduled) != 0 {
		t.Errorf("list holds %d reminders after cancel", len(scheduled))
	}
}

func TestCancelUnknownHandle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	notifier := New(client)

	err := notifier.Cancel(ctx, "no-such-handle")
	if !errors.Is(err, domain.ErrReminderNotFound) {
		t.Errorf("error = %v, want ErrReminderNotFound", err)
	}
}

func TestCancelAllClearsStoreAndIndex(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	notifier := New(client)

	for i := 0; i < 3; i++ {
		trig := domain.NewDateTrigger(time.Now().Add(time.Duration(i+1) * time.Hour))
		if _, err := notifier.Schedule(ctx, domain.Content{Title: "Exam Today"}, trig); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := notifier.CancelAll(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scheduled, err := notifier.ListScheduled(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scheduled) != 0 {
		t.Errorf("list holds %d reminders after cancel all", len(scheduled))
	}

	if n, err := client.Exists(ctx, handleIndexKey).Result(); err != nil || n != 0 {
		t.Errorf("handle index still present (exists=%d, err=%v)", n, err)
	}
}

func TestListPrunesExpiredRecords(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	notifier := New(client)

	handle, err := notifier.Schedule(ctx, domain.Content{Title: "Exam Today"},
		domain.NewDateTrigger(time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Simulate the record expiring while its handle lingers in the index.
	if err := client.Del(ctx, reminderKeyPrefix+handle).Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scheduled, err := notifier.ListScheduled(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scheduled) != 0 {
		t.Errorf("list holds %d reminders, want 0", len(scheduled))
	}

	if ok, err := client.SIsMember(ctx, handleIndexKey, handle).Result(); err != nil || ok {
		t.Errorf("stale handle still indexed (member=%v, err=%v)", ok, err)
	}
}
