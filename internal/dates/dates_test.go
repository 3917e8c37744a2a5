package dates

import (
	"errors"
	"testing"
	"time"
)

func TestParseInputEmpty(t *testing.T) {
	ts, ok, err := ParseInput("")
	if err != nil {
		t.Fatalf("ParseInput(\"\") error = %v", err)
	}
	if ok {
		t.Error("empty input should mean no due date")
	}
	if ts != 0 {
		t.Errorf("ts = %d, want 0", ts)
	}
}

func TestParseInputDateTime(t *testing.T) {
	ts, ok, err := ParseInput("2024-03-15 14:30:00")
	if err != nil {
		t.Fatalf("ParseInput() error = %v", err)
	}
	if !ok {
		t.Fatal("expected a due date")
	}

	want := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local).Unix()
	if ts != want {
		t.Errorf("ts = %d, want %d", ts, want)
	}
}

func TestParseInputDateOnly(t *testing.T) {
	ts, ok, err := ParseInput("2024-03-15")
	if err != nil {
		t.Fatalf("ParseInput() error = %v", err)
	}
	if !ok {
		t.Fatal("expected a due date")
	}

	// Date-only input means local midnight.
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local).Unix()
	if ts != want {
		t.Errorf("ts = %d, want %d", ts, want)
	}
}

func TestParseInputInvalid(t *testing.T) {
	cases := []string{
		"not-a-date",
		"2024/03/15",
		"15-03-2024",
		"2024-03-15T14:30:00",
		"2024-03-15 14:30",
	}

	for _, input := range cases {
		_, _, err := ParseInput(input)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ParseInput(%q) error = %v, want ErrInvalidFormat", input, err)
		}
	}
}

func TestRelative(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name        string
		due         time.Time
		wantLabel   string
		wantUrgency Urgency
	}{
		{
			name:        "later today",
			due:         time.Date(2024, 3, 15, 23, 0, 0, 0, time.Local),
			wantLabel:   "Today",
			wantUrgency: Today,
		},
		{
			name:        "earlier today still counts as today",
			due:         time.Date(2024, 3, 15, 1, 0, 0, 0, time.Local),
			wantLabel:   "Today",
			wantUrgency: Today,
		},
		{
			name:        "tomorrow",
			due:         time.Date(2024, 3, 16, 9, 0, 0, 0, time.Local),
			wantLabel:   "Tomorrow",
			wantUrgency: Tomorrow,
		},
		{
			name:        "yesterday is overdue",
			due:         time.Date(2024, 3, 14, 9, 0, 0, 0, time.Local),
			wantLabel:   "2024-03-14",
			wantUrgency: Overdue,
		},
		{
			name:        "next week",
			due:         time.Date(2024, 3, 22, 9, 0, 0, 0, time.Local),
			wantLabel:   "2024-03-22",
			wantUrgency: Upcoming,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, urgency := Relative(tt.due.Unix(), now)
			if label != tt.wantLabel {
				t.Errorf("label = %s, want %s", label, tt.wantLabel)
			}
			if urgency != tt.wantUrgency {
				t.Errorf("urgency = %d, want %d", urgency, tt.wantUrgency)
			}
		})
	}
}
