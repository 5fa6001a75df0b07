package domain

import (
	"testing"
	"time"
)

func TestOccurrenceTag(t *testing.T) {
	got := OccurrenceTag("L1", "monday", 8, 30, 0)
	want := "L1_monday_8_30_w0"
	if got != want {
		t.Errorf("OccurrenceTag = %q, want %q", got, want)
	}
}

func TestMatchesIdentity(t *testing.T) {
	tests := []struct {
		name     string
		data     ReminderData
		identity string
		want     bool
	}{
		{
			name:     "direct source match",
			data:     ReminderData{SourceID: "L1"},
			identity: "L1",
			want:     true,
		},
		{
			name:     "occurrence tag prefix match",
			data:     ReminderData{SourceID: "other", OccurrenceTag: "L1_monday_8_30_w0"},
			identity: "L1",
			want:     true,
		},
		{
			name:     "no partial identity match without separator",
			data:     ReminderData{SourceID: "other", OccurrenceTag: "L10_monday_8_30_w0"},
			identity: "L1",
			want:     false,
		},
		{
			name:     "different identity",
			data:     ReminderData{SourceID: "L2", OccurrenceTag: "L2_monday_8_30_w0"},
			identity: "L1",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.data.MatchesIdentity(tt.identity); got != tt.want {
				t.Errorf("MatchesIdentity(%q) = %v, want %v", tt.identity, got, tt.want)
			}
		})
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{name: "lowercase", input: "monday", want: time.Monday},
		{name: "mixed case", input: "Friday", want: time.Friday},
		{name: "whitespace", input: " sunday ", want: time.Sunday},
		{name: "unknown day", input: "someday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseWeekday(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHostWeekday(t *testing.T) {
	if got := HostWeekday(time.Sunday); got != 1 {
		t.Errorf("HostWeekday(Sunday) = %d, want 1", got)
	}
	if got := HostWeekday(time.Saturday); got != 7 {
		t.Errorf("HostWeekday(Saturday) = %d, want 7", got)
	}
}

func TestExamSourceIdentity(t *testing.T) {
	withID := ExamEntry{ID: "E1", Name: "Algorithms"}
	if got := withID.SourceIdentity(); got != "E1" {
		t.Errorf("SourceIdentity = %q, want E1", got)
	}

	// Legacy documents without an assigned identity fall back to the name.
	withoutID := ExamEntry{Name: "Algorithms"}
	if got := withoutID.SourceIdentity(); got != "Algorithms" {
		t.Errorf("SourceIdentity = %q, want Algorithms", got)
	}
}

func TestNewLectureEntryAssignsIdentity(t *testing.T) {
	a := NewLectureEntry("Algorithms", "9:00 AM", "11:00 AM", "B12", "", "Monday", 3)
	b := NewLectureEntry("Algorithms", "9:00 AM", "11:00 AM", "B12", "", "Monday", 3)

	if a.ID == "" || b.ID == "" {
		t.Fatal("expected identity to be assigned at creation")
	}
	if a.ID == b.ID {
		t.Error("expected distinct identities for distinct entries")
	}
	if a.Day != "monday" {
		t.Errorf("expected lowercased day key, got %q", a.Day)
	}
}
