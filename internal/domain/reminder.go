package domain

import (
	"fmt"
	"strings"
	"time"
)

// Category partitions scheduled reminders for bulk reconciliation.
type Category string

const (
	CategoryLecture Category = "lecture"
	CategoryExam    Category = "exam"
)

func (c Category) String() string {
	return string(c)
}

// ReminderData is the payload attached to every scheduled notification so
// the reconciler and cancellation matcher can filter by category and
// correlate back to source entries.
type ReminderData struct {
	Type          Category `json:"type"`
	SourceID      string   `json:"source_id"`
	OccurrenceTag string   `json:"occurrence_tag,omitempty"`
	Day           string   `json:"day,omitempty"`
	Time          string   `json:"time,omitempty"`
}

// Content is what the host displays when the notification fires.
type Content struct {
	Title string       `json:"title"`
	Body  string       `json:"body"`
	Data  ReminderData `json:"data"`
}

// ScheduledReminder is a host-owned resource: the handle is assigned by the
// host at schedule time.
type ScheduledReminder struct {
	Handle  string  `json:"handle"`
	Content Content `json:"content"`
	Trigger Trigger `json:"trigger"`
}

// OccurrenceTag encodes which physical occurrence of a fanned-out logical
// reminder a handle represents: {sourceID}_{day}_{hour}_{minute}_w{week}.
func OccurrenceTag(sourceID, day string, hour, minute, week int) string {
	return fmt.Sprintf("%s_%s_%d_%d_w%d", sourceID, day, hour, minute, week)
}

// MatchesIdentity reports whether the payload belongs to the given source
// entry, either directly or through the fan-out occurrence encoding.
func (d ReminderData) MatchesIdentity(identity string) bool {
	if d.SourceID == identity {
		return true
	}
	return d.OccurrenceTag != "" && strings.HasPrefix(d.OccurrenceTag, identity+"_")
}

// TriggerType distinguishes the two host trigger primitives.
type TriggerType string

const (
	TriggerCalendar TriggerType = "calendar"
	TriggerDate     TriggerType = "date"
)

// Trigger describes when the host should fire a notification. Calendar
// triggers repeat weekly on (Weekday, Hour, Minute); date triggers fire once
// at Timestamp.
type Trigger struct {
	Type      TriggerType `json:"type"`
	Weekday   int         `json:"weekday,omitempty"` // 1=Sunday..7=Saturday
	Hour      int         `json:"hour,omitempty"`
	Minute    int         `json:"minute,omitempty"`
	Second    int         `json:"second,omitempty"`
	Repeats   bool        `json:"repeats,omitempty"`
	Timestamp time.Time   `json:"timestamp,omitempty"`
	ChannelID string      `json:"channel_id,omitempty"`
}

func NewCalendarTrigger(weekday time.Weekday, hour, minute int) Trigger {
	return Trigger{
		Type:      TriggerCalendar,
		Weekday:   HostWeekday(weekday),
		Hour:      hour,
		Minute:    minute,
		Second:    0,
		Repeats:   true,
		ChannelID: "default",
	}
}

func NewDateTrigger(at time.Time) Trigger {
	return Trigger{
		Type:      TriggerDate,
		Timestamp: at,
		ChannelID: "default",
	}
}
