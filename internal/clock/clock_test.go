package clock

import (
	"errors"
	"testing"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
)

func TestParseSuccess(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
	}{
		{
			name:       "midnight",
			input:      "12:00 AM",
			wantHour:   0,
			wantMinute: 0,
		},
		{
			name:       "noon",
			input:      "12:00 PM",
			wantHour:   12,
			wantMinute: 0,
		},
		{
			name:       "evening time",
			input:      "9:05 PM",
			wantHour:   21,
			wantMinute: 5,
		},
		{
			name:       "morning time",
			input:      "9:00 AM",
			wantHour:   9,
			wantMinute: 0,
		},
		{
			name:       "lowercase meridiem",
			input:      "8:30 pm",
			wantHour:   20,
			wantMinute: 30,
		},
		{
			name:       "eleven pm stays before midnight",
			input:      "11:59 PM",
			wantHour:   23,
			wantMinute: 59,
		},
		{
			name:       "surrounding whitespace",
			input:      "  7:15 AM ",
			wantHour:   7,
			wantMinute: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Hour != tt.wantHour || got.Minute != tt.wantMinute {
				t.Errorf("Parse(%q) = (%d,%d), want (%d,%d)",
					tt.input, got.Hour, got.Minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "missing meridiem", input: "9:00"},
		{name: "missing minutes", input: "9 AM"},
		{name: "24-hour style", input: "21:00 PM"},
		{name: "hour zero", input: "0:30 AM"},
		{name: "minute out of range", input: "9:60 AM"},
		{name: "garbage", input: "soonish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, domain.ErrInvalidTimeFormat) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidTimeFormat", tt.input, err)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name         string
		start        Time
		deltaMinutes int
		want         Time
	}{
		{
			name:         "borrow an hour",
			start:        Time{Hour: 9, Minute: 15},
			deltaMinutes: -30,
			want:         Time{Hour: 8, Minute: 45},
		},
		{
			name:         "wrap to previous day",
			start:        Time{Hour: 0, Minute: 10},
			deltaMinutes: -30,
			want:         Time{Hour: 23, Minute: 40},
		},
		{
			name:         "small offset within the hour",
			start:        Time{Hour: 14, Minute: 45},
			deltaMinutes: -5,
			want:         Time{Hour: 14, Minute: 40},
		},
		{
			name:         "exact hour boundary",
			start:        Time{Hour: 10, Minute: 0},
			deltaMinutes: -30,
			want:         Time{Hour: 9, Minute: 30},
		},
		{
			name:         "forward across midnight",
			start:        Time{Hour: 23, Minute: 50},
			deltaMinutes: 30,
			want:         Time{Hour: 0, Minute: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Offset(tt.deltaMinutes)
			if got != tt.want {
				t.Errorf("(%d,%d).Offset(%d) = (%d,%d), want (%d,%d)",
					tt.start.Hour, tt.start.Minute, tt.deltaMinutes,
					got.Hour, got.Minute, tt.want.Hour, tt.want.Minute)
			}
		})
	}
}
