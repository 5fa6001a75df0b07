// Package reconcile keeps the host's scheduled set consistent with the
// latest data snapshot. Planners call Reconcile for their category before
// emitting, which makes every planner invocation idempotent.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
	"github.com/Demma22/REMI-APP-sub000/internal/host"
	"github.com/Demma22/REMI-APP-sub000/internal/observability/metrics"
	"github.com/Demma22/REMI-APP-sub000/internal/observability/tracing"
)

type Reconciler struct {
	notifier        host.Notifier
	reminderMetrics *metrics.ReminderMetrics
}

func NewReconciler(notifier host.Notifier, reminderMetrics *metrics.ReminderMetrics) *Reconciler {
	return &Reconciler{
		notifier:        notifier,
		reminderMetrics: reminderMetrics,
	}
}

// Reconcile cancels every scheduled reminder tagged with the given category
// and returns the number of successful cancellations. A list failure is
// escalated: planning without the current set risks duplicate accumulation.
// Individual cancel failures are logged and do not block the rest.
func (r *Reconciler) Reconcile(ctx context.Context, category domain.Category) (int, error) {
	ctx, span := tracing.StartReconcileSpan(ctx, category.String())
	defer span.End()

	scheduled, err := r.notifier.ListScheduled(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list scheduled reminders",
			slog.String("category", category.String()),
			slog.String("error", err.Error()),
		)
		wrapped := fmt.Errorf("%w: %v", domain.ErrListFailed, err)
		tracing.RecordCancelResult(span, 0, 0, 0, wrapped)
		return 0, wrapped
	}

	handles := make([]string, 0, len(scheduled))
	for _, reminder := range scheduled {
		if reminder.Content.Data.Type == category {
			handles = append(handles, reminder.Handle)
		}
	}

	cancelled, failed := r.cancelHandles(ctx, handles)

	slog.DebugContext(ctx, "reconciled reminder category",
		slog.String("category", category.String()),
		slog.Int("matched", len(handles)),
		slog.Int("cancelled", cancelled),
		slog.Int("failed", failed),
	)

	if r.reminderMetrics != nil {
		r.reminderMetrics.RecordCancelled(ctx, category.String(), "reconcile", cancelled)
	}
	tracing.RecordCancelResult(span, len(handles), cancelled, failed, nil)

	return cancelled, nil
}

// CancelByIdentities cancels lecture reminders whose source identity is in
// the set, or whose occurrence tag is prefixed by one of the identities
// (the enumerated-date strategy fans one lecture out into many handles).
// This is the cheaper targeted path used when single lectures are deleted.
func (r *Reconciler) CancelByIdentities(ctx context.Context, identities []string) (int, error) {
	ctx, span := tracing.StartCancelByIdentitiesSpan(ctx, len(identities))
	defer span.End()

	if len(identities) == 0 {
		return 0, nil
	}

	scheduled, err := r.notifier.ListScheduled(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list scheduled reminders for targeted cancel",
			slog.String("error", err.Error()),
		)
		wrapped := fmt.Errorf("%w: %v", domain.ErrListFailed, err)
		tracing.RecordCancelResult(span, 0, 0, 0, wrapped)
		return 0, wrapped
	}

	var handles []string
	for _, reminder := range scheduled {
		if reminder.Content.Data.Type != domain.CategoryLecture {
			continue
		}
		for _, identity := range identities {
			if reminder.Content.Data.MatchesIdentity(identity) {
				handles = append(handles, reminder.Handle)
				break
			}
		}
	}

	cancelled, failed := r.cancelHandles(ctx, handles)

	slog.InfoContext(ctx, "cancelled reminders by identity",
		slog.Int("identity_count", len(identities)),
		slog.Int("matched", len(handles)),
		slog.Int("cancelled", cancelled),
		slog.Int("failed", failed),
	)

	if r.reminderMetrics != nil {
		r.reminderMetrics.RecordCancelled(ctx, domain.CategoryLecture.String(), "targeted", cancelled)
	}
	tracing.RecordCancelResult(span, len(handles), cancelled, failed, nil)

	return cancelled, nil
}

// CancelAll clears the whole scheduled set regardless of category.
func (r *Reconciler) CancelAll(ctx context.Context) error {
	if err := r.notifier.CancelAll(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCancelFailed, err)
	}
	return nil
}

// cancelHandles issues all cancellations concurrently and waits for the
// full set to settle before returning. The host serializes the actual
// mutations; the caller must not start scheduling until this returns.
func (r *Reconciler) cancelHandles(ctx context.Context, handles []string) (cancelled, failed int) {
	if len(handles) == 0 {
		return 0, 0
	}

	var wg sync.WaitGroup
	var failures atomic.Int64

	for _, handle := range handles {
		wg.Add(1)
		go func(handle string) {
			defer wg.Done()
			if err := r.notifier.Cancel(ctx, handle); err != nil {
				failures.Add(1)
				slog.WarnContext(ctx, "failed to cancel scheduled reminder",
					slog.String("handle", handle),
					slog.String("error", err.Error()),
				)
			}
		}(handle)
	}
	wg.Wait()

	failed = int(failures.Load())
	return len(handles) - failed, failed
}
