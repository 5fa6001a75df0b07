package host

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
)

// MemoryHost is an in-process Notifier used for local runs and tests. The
// real host serializes access to its notification store; the mutex mirrors
// that here.
type MemoryHost struct {
	mu       sync.Mutex
	byHandle map[string]domain.ScheduledReminder
	received ReceivedHandler
}

func NewMemoryHost() *MemoryHost {
	return &MemoryHost{
		byHandle: make(map[string]domain.ScheduledReminder),
	}
}

// SetReceivedHandler registers the app-wide received callback. Call once at
// process start, before any reminder can fire.
func (h *MemoryHost) SetReceivedHandler(fn ReceivedHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.received = fn
}

func (h *MemoryHost) Schedule(_ context.Context, content domain.Content, trigger domain.Trigger) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle := uuid.NewString()
	h.byHandle[handle] = domain.ScheduledReminder{
		Handle:  handle,
		Content: content,
		Trigger: trigger,
	}
	return handle, nil
}

func (h *MemoryHost) ListScheduled(_ context.Context) ([]domain.ScheduledReminder, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.ScheduledReminder, 0, len(h.byHandle))
	for _, r := range h.byHandle {
		out = append(out, r)
	}
	return out, nil
}

func (h *MemoryHost) Cancel(_ context.Context, handle string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.byHandle[handle]; !ok {
		return domain.ErrReminderNotFound
	}
	delete(h.byHandle, handle)
	return nil
}

func (h *MemoryHost) CancelAll(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.byHandle = make(map[string]domain.ScheduledReminder)
	return nil
}

// FireDue delivers every date-triggered reminder whose timestamp is at or
// before now, removing it from the store. Calendar triggers are recurring
// and are delivered without removal when their weekday and time match.
func (h *MemoryHost) FireDue(now time.Time) int {
	h.mu.Lock()
	var due []domain.ScheduledReminder
	for handle, r := range h.byHandle {
		switch r.Trigger.Type {
		case domain.TriggerDate:
			if !r.Trigger.Timestamp.After(now) {
				due = append(due, r)
				delete(h.byHandle, handle)
			}
		case domain.TriggerCalendar:
			if r.Trigger.Weekday == domain.HostWeekday(now.Weekday()) &&
				r.Trigger.Hour == now.Hour() && r.Trigger.Minute == now.Minute() {
				due = append(due, r)
			}
		}
	}
	fn := h.received
	h.mu.Unlock()

	if fn != nil {
		for _, r := range due {
			fn(r)
		}
	}
	return len(due)
}
