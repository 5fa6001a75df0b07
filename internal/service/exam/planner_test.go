package exam

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
	"github.com/Demma22/REMI-APP-sub000/internal/host"
	"github.com/Demma22/REMI-APP-sub000/internal/service/reconcile"
)

func newTestPlanner(now time.Time) (*Planner, *host.MemoryHost) {
	mem := host.NewMemoryHost()
	reconciler := reconcile.NewReconciler(mem, nil)
	planner := NewPlanner(mem, reconciler, nil, time.UTC)
	planner.SetNowFunc(func() time.Time { return now })
	return planner, mem
}

func TestPlanFutureExamGetsAllThreeReminders(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	planner, mem := newTestPlanner(now)

	exams := []domain.ExamEntry{
		{ID: "E1", Name: "Calculus", Date: "2026-06-10", Start: "10:00 AM"},
	}

	resp, err := planner.Plan(context.Background(), "Amara", exams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ScheduledCount != 3 {
		t.Fatalf("scheduled = %d, want 3", resp.ScheduledCount)
	}

	scheduled, err := mem.ListScheduled(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFireAt := map[time.Time]string{
		time.Date(2026, time.June, 8, 9, 0, 0, 0, time.UTC):  "Exam Reminder",
		time.Date(2026, time.June, 9, 18, 0, 0, 0, time.UTC): "Exam Tomorrow",
		time.Date(2026, time.June, 10, 8, 0, 0, 0, time.UTC): "Exam Today",
	}
	for _, r := range scheduled {
		if r.Trigger.Type != domain.TriggerDate {
			t.Errorf("exam trigger type = %q, want date", r.Trigger.Type)
		}
		title, ok := wantFireAt[r.Trigger.Timestamp]
		if !ok {
			t.Errorf("unexpected fire instant %v", r.Trigger.Timestamp)
			continue
		}
		if r.Content.Title != title {
			t.Errorf("title at %v = %q, want %q", r.Trigger.Timestamp, r.Content.Title, title)
		}
		if !strings.Contains(r.Content.Body, "Amara") {
			t.Errorf("body %q not personalized", r.Content.Body)
		}
		if r.Content.Data.Type != domain.CategoryExam || r.Content.Data.SourceID != "E1" {
			t.Errorf("reminder data = %+v", r.Content.Data)
		}
	}
}

func TestPlanEmitsOnlyFutureOffsets(t *testing.T) {
	// Exam tomorrow at 10:00; the 2-day and 1-day instants are already
	// behind us, so only the 2-hour reminder survives.
	now := time.Date(2026, time.June, 9, 20, 0, 0, 0, time.UTC)
	planner, mem := newTestPlanner(now)

	exams := []domain.ExamEntry{
		{ID: "E1", Name: "Calculus", Date: "2026-06-10", Start: "10:00 AM"},
	}

	resp, err := planner.Plan(context.Background(), "Amara", exams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ScheduledCount != 1 {
		t.Fatalf("scheduled = %d, want 1", resp.ScheduledCount)
	}
	if resp.SkippedCount != 0 {
		t.Errorf("skipped = %d, want 0 (a near exam is not a skipped exam)", resp.SkippedCount)
	}

	scheduled, err := mem.ListScheduled(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scheduled) != 1 {
		t.Fatalf("host holds %d reminders, want 1", len(scheduled))
	}
	if scheduled[0].Content.Title != "Exam Today" {
		t.Errorf("title = %q, want the 2-hour reminder", scheduled[0].Content.Title)
	}
	want := time.Date(2026, time.June, 10, 8, 0, 0, 0, time.UTC)
	if !scheduled[0].Trigger.Timestamp.Equal(want) {
		t.Errorf("fire instant = %v, want %v", scheduled[0].Trigger.Timestamp, want)
	}
}

func TestPlanSkipsConcludedExam(t *testing.T) {
	// Exam started 3 hours ago, past the 2-hour grace.
	now := time.Date(2026, time.June, 10, 13, 0, 0, 0, time.UTC)
	planner, mem := newTestPlanner(now)

	exams := []domain.ExamEntry{
		{ID: "E1", Name: "Calculus", Date: "2026-06-10", Start: "10:00 AM"},
	}

	resp, err := planner.Plan(context.Background(), "", exams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ScheduledCount != 0 {
		t.Errorf("scheduled = %d, want 0", resp.ScheduledCount)
	}
	if resp.SkippedCount != 1 {
		t.Errorf("skipped = %d, want 1", resp.SkippedCount)
	}
	if got := resp.Results[0].SkipReason; got != "exam concluded" {
		t.Errorf("skip reason = %q", got)
	}

	scheduled, err := mem.ListScheduled(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scheduled) != 0 {
		t.Errorf("host holds %d reminders, want none", len(scheduled))
	}
}

func TestPlanWithinGraceEmitsNothingButIsNotSkipped(t *testing.T) {
	// Exam started an hour ago: still inside the grace window, but every
	// reminder instant is in the past.
	now := time.Date(2026, time.June, 10, 11, 0, 0, 0, time.UTC)
	planner, _ := newTestPlanner(now)

	exams := []domain.ExamEntry{
		{ID: "E1", Name: "Calculus", Date: "2026-06-10", Start: "10:00 AM"},
	}

	resp, err := planner.Plan(context.Background(), "", exams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ScheduledCount != 0 || resp.SkippedCount != 0 {
		t.Errorf("scheduled = %d, skipped = %d, want 0 and 0", resp.ScheduledCount, resp.SkippedCount)
	}
}

func TestPlanSkipsMalformedEntries(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	planner, _ := newTestPlanner(now)

	exams := []domain.ExamEntry{
		{ID: "E1", Name: "Calculus", Date: "10/06/2026", Start: "10:00 AM"},
		{ID: "E2", Name: "Physics", Date: "2026-06-10", Start: "1000"},
		{ID: "E3", Name: "Chemistry", Date: "2026-06-12", Start: "9:00 AM"},
	}

	resp, err := planner.Plan(context.Background(), "", exams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ScheduledCount != 3 {
		t.Errorf("scheduled = %d, want 3 (valid exam only)", resp.ScheduledCount)
	}
	if resp.SkippedCount != 2 {
		t.Errorf("skipped = %d, want 2", resp.SkippedCount)
	}

	reasons := make(map[string]string)
	for _, item := range resp.Results {
		if item.Skipped {
			reasons[item.ExamID] = item.SkipReason
		}
	}
	if reasons["E1"] != "invalid exam date" {
		t.Errorf("E1 skip reason = %q", reasons["E1"])
	}
	if reasons["E2"] != "invalid time format" {
		t.Errorf("E2 skip reason = %q", reasons["E2"])
	}
}

func TestPlanDefaultsStudentName(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	planner, mem := newTestPlanner(now)

	exams := []domain.ExamEntry{
		{ID: "E1", Name: "Calculus", Date: "2026-06-10", Start: "10:00 AM"},
	}

	if _, err := planner.Plan(context.Background(), "", exams); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scheduled, err := mem.ListScheduled(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range scheduled {
		if !strings.Contains(r.Content.Body, "Student") {
			t.Errorf("body %q missing fallback name", r.Content.Body)
		}
	}
}

func TestPlanReplacesPriorExamReminders(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	planner, mem := newTestPlanner(now)

	exams := []domain.ExamEntry{
		{ID: "E1", Name: "Calculus", Date: "2026-06-10", Start: "10:00 AM"},
	}

	first, err := planner.Plan(context.Background(), "Amara", exams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := planner.Plan(context.Background(), "Amara", exams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.CancelledCount != first.ScheduledCount {
		t.Errorf("second plan cancelled = %d, want %d", second.CancelledCount, first.ScheduledCount)
	}

	scheduled, err := mem.ListScheduled(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scheduled) != first.ScheduledCount {
		t.Errorf("host holds %d reminders after replanning, want %d", len(scheduled), first.ScheduledCount)
	}
}
