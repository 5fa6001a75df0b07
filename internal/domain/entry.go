package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExamDateLayout is the calendar date format stored on ExamEntry.
const ExamDateLayout = "2006-01-02"

// LectureEntry is one weekly timetable slot. Identity is assigned at
// creation and never changes; reminder cancellation matches on it.
type LectureEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Room     string `json:"room,omitempty"`
	Lecturer string `json:"lecturer,omitempty"`
	Day      string `json:"day"`
	Semester int    `json:"semester"`
}

// ExamEntry is a one-off exam. Edits are modeled as delete+recreate, so
// fields other than ID are effectively immutable.
type ExamEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Semester int    `json:"semester"`
}

// SourceIdentity returns the stable identity reminders are tagged with.
// Legacy exam documents may predate identity assignment; the exam name is
// the documented fallback for those.
func (e ExamEntry) SourceIdentity() string {
	if e.ID != "" {
		return e.ID
	}
	return e.Name
}

// ExamDate resolves the entry's calendar date in the given location.
func (e ExamEntry) ExamDate(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(ExamDateLayout, e.Date, loc)
	if err != nil {
		return time.Time{}, ErrInvalidExamDate
	}
	return t, nil
}

// Timetable maps lowercase weekday names to the lectures held that day.
type Timetable map[string][]LectureEntry

// UserRecord is the snapshot shape read from the persisted student store.
type UserRecord struct {
	Name      string      `json:"name,omitempty"`
	Timetable Timetable   `json:"timetable"`
	Exams     []ExamEntry `json:"exams"`
}

// NewLectureEntry assigns the mandatory stable identity. Identity is never
// synthesized later in the scheduling path.
func NewLectureEntry(name, start, end, room, lecturer, day string, semester int) LectureEntry {
	return LectureEntry{
		ID:       uuid.NewString(),
		Name:     name,
		Start:    start,
		End:      end,
		Room:     room,
		Lecturer: lecturer,
		Day:      strings.ToLower(day),
		Semester: semester,
	}
}

func NewExamEntry(name, date, start, end string, semester int) ExamEntry {
	return ExamEntry{
		ID:       uuid.NewString(),
		Name:     name,
		Date:     date,
		Start:    start,
		End:      end,
		Semester: semester,
	}
}

var weekdaysByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday resolves a timetable day key to a Go weekday (0=Sunday).
func ParseWeekday(name string) (time.Weekday, error) {
	w, ok := weekdaysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, ErrUnknownWeekday
	}
	return w, nil
}

// HostWeekday converts a Go weekday to the host API's 1=Sunday..7=Saturday
// convention used by calendar triggers.
func HostWeekday(w time.Weekday) int {
	return int(w) + 1
}
