// Package audit records the outcome of each planner invocation so schedule
// drift (duplicate growth, runaway cancellation) is visible over time.
package audit

import (
	"context"
	"time"
)

// PlanRecord is one planner invocation's outcome.
type PlanRecord struct {
	Category       string
	ScheduledCount int
	CancelledCount int
	SkippedCount   int
	FailedCount    int
	PlannedAt      time.Time
}

type Recorder interface {
	RecordPlan(ctx context.Context, record PlanRecord) error
	Close() error
}
