// Package host abstracts the device's local-notification API: the only
// store of record for scheduled reminders.
package host

import (
	"context"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
)

//go:generate mockgen -source=host.go -destination=host_mock.go -package=host

// Notifier is the host notification API. Schedule returns the host-assigned
// handle; Cancel and CancelAll are best-effort on the host side.
type Notifier interface {
	Schedule(ctx context.Context, content domain.Content, trigger domain.Trigger) (string, error)
	ListScheduled(ctx context.Context) ([]domain.ScheduledReminder, error)
	Cancel(ctx context.Context, handle string) error
	CancelAll(ctx context.Context) error
}

// ReceivedHandler is invoked when a scheduled reminder fires. Registration
// happens once at process start; the handler must not retain the reminder.
type ReceivedHandler func(reminder domain.ScheduledReminder)
