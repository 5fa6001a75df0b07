// Package hoststore is a Redis-backed implementation of the notification
// host API. It stands in for the device's kernel notification store when
// the subsystem runs as a service: handles are assigned here and the
// record set is the only state of record for scheduled reminders.
package hoststore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
	"github.com/Demma22/REMI-APP-sub000/internal/host"
)

const (
	reminderKeyPrefix = "reminder:scheduled:"
	handleIndexKey    = "reminder:handles"

	// Date-triggered records outlive their fire time by a day so a late
	// reconcile still sees them; recurring records never expire.
	dateRecordSlack = 24 * time.Hour
)

type reminderRecord struct {
	Handle  string         `json:"handle"`
	Content domain.Content `json:"content"`
	Trigger domain.Trigger `json:"trigger"`
}

type store struct {
	client *redis.Client
}

func New(client *redis.Client) host.Notifier {
	return &store{client: client}
}

func (s *store) Schedule(ctx context.Context, content domain.Content, trigger domain.Trigger) (string, error) {
	handle := uuid.NewString()

	record := reminderRecord{
		Handle:  handle,
		Content: content,
		Trigger: trigger,
	}
	data, err := json.Marshal(record)
	if err != nil {
		return "", ErrInvalidReminderData
	}

	pipe := s.client.TxPipeline()
	key := reminderKeyPrefix + handle
	if trigger.Type == domain.TriggerDate {
		pipe.Set(ctx, key, data, time.Until(trigger.Timestamp)+dateRecordSlack)
	} else {
		pipe.Set(ctx, key, data, 0)
	}
	pipe.SAdd(ctx, handleIndexKey, handle)

	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return handle, nil
}

func (s *store) ListScheduled(ctx context.Context) ([]domain.ScheduledReminder, error) {
	handles, err := s.client.SMembers(ctx, handleIndexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(handles) == 0 {
		return nil, nil
	}

	keys := make([]string, len(handles))
	for i, h := range handles {
		keys[i] = reminderKeyPrefix + h
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	reminders := make([]domain.ScheduledReminder, 0, len(values))
	var expired []any
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Record expired out from under the index; drop the handle.
			expired = append(expired, handles[i])
			continue
		}

		var record reminderRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, ErrInvalidReminderData
		}
		reminders = append(reminders, domain.ScheduledReminder{
			Handle:  record.Handle,
			Content: record.Content,
			Trigger: record.Trigger,
		})
	}

	if len(expired) > 0 {
		s.client.SRem(ctx, handleIndexKey, expired...)
	}

	return reminders, nil
}

func (s *store) Cancel(ctx context.Context, handle string) error {
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, reminderKeyPrefix+handle)
	pipe.SRem(ctx, handleIndexKey, handle)

	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	if del.Val() == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func (s *store) CancelAll(ctx context.Context) error {
	handles, err := s.client.SMembers(ctx, handleIndexKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	pipe := s.client.TxPipeline()
	for _, h := range handles {
		pipe.Del(ctx, reminderKeyPrefix+h)
	}
	pipe.Del(ctx, handleIndexKey)

	_, err = pipe.Exec(ctx)
	return err
}
