package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const reminderTracerName = "github.com/Demma22/REMI-APP-sub000/internal/service"

func ReminderTracer() trace.Tracer {
	return otel.Tracer(reminderTracerName)
}

func StartPlanSpan(ctx context.Context, category string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminders.plan",
		trace.WithAttributes(
			attribute.String("reminder.category", category),
		),
	)
}

func StartReconcileSpan(ctx context.Context, category string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminders.reconcile",
		trace.WithAttributes(
			attribute.String("reminder.category", category),
		),
	)
}

func StartCancelByIdentitiesSpan(ctx context.Context, identityCount int) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminders.cancel_by_identities",
		trace.WithAttributes(
			attribute.Int("reminder.identity_count", identityCount),
		),
	)
}

func StartHostCallSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminders.host."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordPlanResult(span trace.Span, scheduled, skipped, cancelled int, err error) {
	span.SetAttributes(
		attribute.Int("plan.scheduled_count", scheduled),
		attribute.Int("plan.skipped_count", skipped),
		attribute.Int("plan.cancelled_count", cancelled),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordCancelResult(span trace.Span, matched, cancelled, failed int, err error) {
	span.SetAttributes(
		attribute.Int("cancel.matched_count", matched),
		attribute.Int("cancel.cancelled_count", cancelled),
		attribute.Int("cancel.failed_count", failed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
