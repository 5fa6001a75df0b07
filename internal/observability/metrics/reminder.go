package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const reminderMeterName = "reminder.scheduling"

type ReminderMetrics struct {
	remindersScheduled metric.Int64Counter
	remindersCancelled metric.Int64Counter
	scheduleFailures   metric.Int64Counter
	entriesSkipped     metric.Int64Counter
	planDuration       metric.Float64Histogram
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	remindersScheduled, err := meter.Int64Counter(
		"reminders_scheduled_total",
		metric.WithDescription("Total number of reminders registered with the host"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	remindersCancelled, err := meter.Int64Counter(
		"reminders_cancelled_total",
		metric.WithDescription("Total number of scheduled reminders cancelled"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	scheduleFailures, err := meter.Int64Counter(
		"reminder_schedule_failures_total",
		metric.WithDescription("Individual schedule calls that were rejected by the host"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	entriesSkipped, err := meter.Int64Counter(
		"reminder_entries_skipped_total",
		metric.WithDescription("Timetable or exam entries skipped during planning"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	planDuration, err := meter.Float64Histogram(
		"reminder_plan_duration_seconds",
		metric.WithDescription("Planner invocation duration including reconciliation"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		remindersScheduled: remindersScheduled,
		remindersCancelled: remindersCancelled,
		scheduleFailures:   scheduleFailures,
		entriesSkipped:     entriesSkipped,
		planDuration:       planDuration,
	}, nil
}

func (m *ReminderMetrics) RecordScheduled(ctx context.Context, category, triggerType string, count int) {
	m.remindersScheduled.Add(ctx, int64(count),
		metric.WithAttributes(
			attribute.String("category", category),
			attribute.String("trigger_type", triggerType),
		),
	)
}

func (m *ReminderMetrics) RecordCancelled(ctx context.Context, category, reason string, count int) {
	m.remindersCancelled.Add(ctx, int64(count),
		metric.WithAttributes(
			attribute.String("category", category),
			attribute.String("reason", reason),
		),
	)
}

func (m *ReminderMetrics) RecordScheduleFailure(ctx context.Context, category string) {
	m.scheduleFailures.Add(ctx, 1,
		metric.WithAttributes(attribute.String("category", category)),
	)
}

func (m *ReminderMetrics) RecordEntrySkipped(ctx context.Context, category, reason string) {
	m.entriesSkipped.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("category", category),
			attribute.String("reason", reason),
		),
	)
}

func (m *ReminderMetrics) RecordPlanDuration(ctx context.Context, category string, seconds float64) {
	m.planDuration.Record(ctx, seconds,
		metric.WithAttributes(attribute.String("category", category)),
	)
}
