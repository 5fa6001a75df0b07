// Package lecture plans the weekly pre-class reminders derived from a
// timetable snapshot.
package lecture

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Demma22/REMI-APP-sub000/internal/clock"
	"github.com/Demma22/REMI-APP-sub000/internal/domain"
	"github.com/Demma22/REMI-APP-sub000/internal/host"
	"github.com/Demma22/REMI-APP-sub000/internal/observability/metrics"
	"github.com/Demma22/REMI-APP-sub000/internal/observability/tracing"
	"github.com/Demma22/REMI-APP-sub000/internal/service/reconcile"
	"github.com/Demma22/REMI-APP-sub000/internal/service/trigger"
)

// lead describes one of the two fixed pre-class reminder offsets.
type lead struct {
	minutes int
	title   string
}

var leads = []lead{
	{minutes: 30, title: "Lecture Reminder"},
	{minutes: 5, title: "Time for class!"},
}

type Planner struct {
	notifier        host.Notifier
	strategy        trigger.Strategy
	reconciler      *reconcile.Reconciler
	reminderMetrics *metrics.ReminderMetrics
	now             func() time.Time
}

func NewPlanner(
	notifier host.Notifier,
	strategy trigger.Strategy,
	reconciler *reconcile.Reconciler,
	reminderMetrics *metrics.ReminderMetrics,
) *Planner {
	return &Planner{
		notifier:        notifier,
		strategy:        strategy,
		reconciler:      reconciler,
		reminderMetrics: reminderMetrics,
		now:             time.Now,
	}
}

// SetNowFunc overrides the planning-time clock. Tests only.
func (p *Planner) SetNowFunc(now func() time.Time) {
	p.now = now
}

// Plan recomputes the whole lecture-category scheduled set from the given
// timetable snapshot. Prior lecture reminders are reconciled away first, so
// the call is safe on every add, edit, or delete. Entries with unparseable
// start times and individual host rejections are skipped without aborting
// the batch; only a list failure during reconciliation is escalated.
func (p *Planner) Plan(ctx context.Context, timetable domain.Timetable) (*Response, error) {
	ctx, span := tracing.StartPlanSpan(ctx, domain.CategoryLecture.String())
	defer span.End()
	started := p.now()

	cancelled, err := p.reconciler.Reconcile(ctx, domain.CategoryLecture)
	if err != nil {
		tracing.RecordPlanResult(span, 0, 0, 0, err)
		return nil, err
	}

	resp := &Response{
		CancelledCount: cancelled,
		Results:        make([]ResultItem, 0, len(timetable)*2),
	}

	days := make([]string, 0, len(timetable))
	for day := range timetable {
		days = append(days, day)
	}
	sort.Strings(days)

	now := p.now()
	for _, day := range days {
		weekday, err := domain.ParseWeekday(day)
		if err != nil {
			slog.WarnContext(ctx, "skipping timetable day with unknown weekday",
				slog.String("day", day),
			)
			for _, entry := range timetable[day] {
				resp.Results = append(resp.Results, p.skipped(ctx, entry, day, "unknown weekday"))
				resp.SkippedCount++
			}
			continue
		}

		for _, entry := range timetable[day] {
			startAt, err := clock.Parse(entry.Start)
			if err != nil {
				slog.WarnContext(ctx, "skipping lecture with unparseable start time",
					slog.String("lecture_id", entry.ID),
					slog.String("course", entry.Name),
					slog.String("start", entry.Start),
				)
				resp.Results = append(resp.Results, p.skipped(ctx, entry, day, "invalid time format"))
				resp.SkippedCount++
				continue
			}

			for _, l := range leads {
				item := p.planLead(ctx, entry, day, weekday, startAt, l, now)
				resp.ScheduledCount += item.Occurrences
				resp.FailedCount += item.Failures
				resp.Results = append(resp.Results, item)
			}
		}
	}

	slog.InfoContext(ctx, "lecture reminders planned",
		slog.Int("scheduled", resp.ScheduledCount),
		slog.Int("cancelled", resp.CancelledCount),
		slog.Int("skipped", resp.SkippedCount),
		slog.Int("failed", resp.FailedCount),
	)

	if p.reminderMetrics != nil {
		p.reminderMetrics.RecordScheduled(ctx, domain.CategoryLecture.String(), p.strategy.Name(), resp.ScheduledCount)
		p.reminderMetrics.RecordPlanDuration(ctx, domain.CategoryLecture.String(), p.now().Sub(started).Seconds())
	}
	tracing.RecordPlanResult(span, resp.ScheduledCount, resp.SkippedCount, resp.CancelledCount, nil)

	return resp, nil
}

func (p *Planner) planLead(
	ctx context.Context,
	entry domain.LectureEntry,
	day string,
	weekday time.Weekday,
	startAt clock.Time,
	l lead,
	now time.Time,
) ResultItem {
	item := ResultItem{
		LectureID:   entry.ID,
		Course:      entry.Name,
		Day:         day,
		LeadMinutes: l.minutes,
	}

	fireAt := startAt.Offset(-l.minutes)
	body := fmt.Sprintf("%s starts in %d minutes", entry.Name, l.minutes)
	if entry.Room != "" {
		body += " in " + entry.Room
	}

	for _, occ := range p.strategy.WeeklyOccurrences(fireAt, weekday, now) {
		tag := ""
		if !occ.Recurring() {
			tag = domain.OccurrenceTag(entry.ID, day, fireAt.Hour, fireAt.Minute, occ.WeekIndex)
		}

		content := domain.Content{
			Title: l.title,
			Body:  body,
			Data: domain.ReminderData{
				Type:          domain.CategoryLecture,
				SourceID:      entry.ID,
				OccurrenceTag: tag,
				Day:           day,
				Time:          entry.Start,
			},
		}

		if _, err := p.notifier.Schedule(ctx, content, occ.Trigger); err != nil {
			// One bad schedule call must not abort the batch.
			slog.WarnContext(ctx, "host rejected lecture reminder",
				slog.String("lecture_id", entry.ID),
				slog.Int("lead_minutes", l.minutes),
				slog.String("error", err.Error()),
			)
			item.Failures++
			if p.reminderMetrics != nil {
				p.reminderMetrics.RecordScheduleFailure(ctx, domain.CategoryLecture.String())
			}
			continue
		}
		item.Occurrences++
	}

	return item
}

func (p *Planner) skipped(ctx context.Context, entry domain.LectureEntry, day, reason string) ResultItem {
	if p.reminderMetrics != nil {
		p.reminderMetrics.RecordEntrySkipped(ctx, domain.CategoryLecture.String(), reason)
	}
	return ResultItem{
		LectureID:  entry.ID,
		Course:     entry.Name,
		Day:        day,
		Skipped:    true,
		SkipReason: reason,
	}
}
