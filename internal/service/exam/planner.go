// Package exam plans the fixed-offset reminders leading up to each exam.
package exam

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Demma22/REMI-APP-sub000/internal/clock"
	"github.com/Demma22/REMI-APP-sub000/internal/domain"
	"github.com/Demma22/REMI-APP-sub000/internal/host"
	"github.com/Demma22/REMI-APP-sub000/internal/observability/metrics"
	"github.com/Demma22/REMI-APP-sub000/internal/observability/tracing"
	"github.com/Demma22/REMI-APP-sub000/internal/service/reconcile"
)

// concludedGrace is how far past its start an exam may be before the
// planner treats it as over and emits nothing for it.
const concludedGrace = 2 * time.Hour

type Planner struct {
	notifier        host.Notifier
	reconciler      *reconcile.Reconciler
	reminderMetrics *metrics.ReminderMetrics
	loc             *time.Location
	now             func() time.Time
}

func NewPlanner(
	notifier host.Notifier,
	reconciler *reconcile.Reconciler,
	reminderMetrics *metrics.ReminderMetrics,
	loc *time.Location,
) *Planner {
	if loc == nil {
		loc = time.Local
	}
	return &Planner{
		notifier:        notifier,
		reconciler:      reconciler,
		reminderMetrics: reminderMetrics,
		loc:             loc,
		now:             time.Now,
	}
}

// SetNowFunc overrides the planning-time clock. Tests only.
func (p *Planner) SetNowFunc(now func() time.Time) {
	p.now = now
}

// Plan recomputes the exam-category scheduled set from the exam list. Exams
// are one-off, so every trigger is a date trigger and only instants still
// in the future are registered; past-dated reminders are never created.
// The student name personalizes the reminder bodies when present.
func (p *Planner) Plan(ctx context.Context, studentName string, exams []domain.ExamEntry) (*Response, error) {
	ctx, span := tracing.StartPlanSpan(ctx, domain.CategoryExam.String())
	defer span.End()
	started := p.now()

	cancelled, err := p.reconciler.Reconcile(ctx, domain.CategoryExam)
	if err != nil {
		tracing.RecordPlanResult(span, 0, 0, 0, err)
		return nil, err
	}

	if studentName == "" {
		studentName = "Student"
	}

	resp := &Response{
		CancelledCount: cancelled,
		Results:        make([]ResultItem, 0, len(exams)*3),
	}

	now := p.now().In(p.loc)
	for _, entry := range exams {
		p.planExam(ctx, entry, studentName, now, resp)
	}

	slog.InfoContext(ctx, "exam reminders planned",
		slog.Int("scheduled", resp.ScheduledCount),
		slog.Int("cancelled", resp.CancelledCount),
		slog.Int("skipped", resp.SkippedCount),
		slog.Int("failed", resp.FailedCount),
	)

	if p.reminderMetrics != nil {
		p.reminderMetrics.RecordScheduled(ctx, domain.CategoryExam.String(), string(domain.TriggerDate), resp.ScheduledCount)
		p.reminderMetrics.RecordPlanDuration(ctx, domain.CategoryExam.String(), p.now().Sub(started).Seconds())
	}
	tracing.RecordPlanResult(span, resp.ScheduledCount, resp.SkippedCount, resp.CancelledCount, nil)

	return resp, nil
}

func (p *Planner) planExam(ctx context.Context, entry domain.ExamEntry, studentName string, now time.Time, resp *Response) {
	examDay, err := entry.ExamDate(p.loc)
	if err != nil {
		p.skip(ctx, entry, "invalid exam date", resp)
		return
	}

	startAt, err := clock.Parse(entry.Start)
	if err != nil {
		p.skip(ctx, entry, "invalid time format", resp)
		return
	}

	examStart := time.Date(examDay.Year(), examDay.Month(), examDay.Day(),
		startAt.Hour, startAt.Minute, 0, 0, p.loc)

	if now.Sub(examStart) > concludedGrace {
		p.skip(ctx, entry, "exam concluded", resp)
		return
	}

	candidates := []struct {
		offset string
		fireAt time.Time
		title  string
		body   string
	}{
		{
			offset: "2_days",
			fireAt: time.Date(examDay.Year(), examDay.Month(), examDay.Day()-2, 9, 0, 0, 0, p.loc),
			title:  "Exam Reminder",
			body:   fmt.Sprintf("%s is in 2 days! Time to review, %s", entry.Name, studentName),
		},
		{
			offset: "1_day",
			fireAt: time.Date(examDay.Year(), examDay.Month(), examDay.Day()-1, 18, 0, 0, 0, p.loc),
			title:  "Exam Tomorrow",
			body:   fmt.Sprintf("%s is tomorrow! Make sure you're prepared, %s", entry.Name, studentName),
		},
		{
			offset: "2_hours",
			fireAt: examStart.Add(-2 * time.Hour),
			title:  "Exam Today",
			body:   fmt.Sprintf("Your %s exam is in 2 hours! Good luck, %s!", entry.Name, studentName),
		},
	}

	for _, c := range candidates {
		if !c.fireAt.After(now) {
			continue
		}

		item := ResultItem{
			ExamID: entry.SourceIdentity(),
			Course: entry.Name,
			Date:   entry.Date,
			Offset: c.offset,
		}

		content := domain.Content{
			Title: c.title,
			Body:  c.body,
			Data: domain.ReminderData{
				Type:     domain.CategoryExam,
				SourceID: entry.SourceIdentity(),
				Time:     entry.Start,
			},
		}

		if _, err := p.notifier.Schedule(ctx, content, domain.NewDateTrigger(c.fireAt)); err != nil {
			slog.WarnContext(ctx, "host rejected exam reminder",
				slog.String("exam_id", entry.SourceIdentity()),
				slog.String("offset", c.offset),
				slog.String("error", err.Error()),
			)
			resp.FailedCount++
			if p.reminderMetrics != nil {
				p.reminderMetrics.RecordScheduleFailure(ctx, domain.CategoryExam.String())
			}
			resp.Results = append(resp.Results, item)
			continue
		}

		item.Scheduled = true
		resp.ScheduledCount++
		resp.Results = append(resp.Results, item)
	}
}

func (p *Planner) skip(ctx context.Context, entry domain.ExamEntry, reason string, resp *Response) {
	slog.DebugContext(ctx, "skipping exam during planning",
		slog.String("exam_id", entry.SourceIdentity()),
		slog.String("course", entry.Name),
		slog.String("reason", reason),
	)
	if p.reminderMetrics != nil {
		p.reminderMetrics.RecordEntrySkipped(ctx, domain.CategoryExam.String(), reason)
	}
	resp.SkippedCount++
	resp.Results = append(resp.Results, ResultItem{
		ExamID:     entry.SourceIdentity(),
		Course:     entry.Name,
		Date:       entry.Date,
		Skipped:    true,
		SkipReason: reason,
	})
}
