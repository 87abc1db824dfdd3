package calendar

import (
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*3600)
	got := DateOf(time.Date(2024, 6, 14, 23, 59, 0, 0, loc))
	if got.String() != "2024-06-14" {
		t.Errorf("got %s, want wall-clock date 2024-06-14", got)
	}
}

func TestNewDate_Normalizes(t *testing.T) {
	if got := NewDate(2024, time.January, 32); got.String() != "2024-02-01" {
		t.Errorf("got %s, want 2024-02-01", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(NewDate(2024, time.February, 29)) {
		t.Errorf("got %s", d)
	}
	if _, err := ParseDate("2023-02-29"); err == nil {
		t.Error("expected error for invalid day")
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		ref       Date
		wantStart string
		wantEnd   string
		wantDays  int
	}{
		{NewDate(2024, time.February, 10), "2024-02-01", "2024-02-29", 29},
		{NewDate(2023, time.February, 10), "2023-02-01", "2023-02-28", 28},
		{NewDate(2024, time.December, 31), "2024-12-01", "2024-12-31", 31},
		{NewDate(2024, time.April, 1), "2024-04-01", "2024-04-30", 30},
	}
	for _, tt := range tests {
		if got := tt.ref.StartOfMonth().String(); got != tt.wantStart {
			t.Errorf("%s start: got %s, want %s", tt.ref, got, tt.wantStart)
		}
		if got := tt.ref.EndOfMonth().String(); got != tt.wantEnd {
			t.Errorf("%s end: got %s, want %s", tt.ref, got, tt.wantEnd)
		}
		if got := tt.ref.DaysInMonth(); got != tt.wantDays {
			t.Errorf("%s days: got %d, want %d", tt.ref, got, tt.wantDays)
		}
	}
}

func TestIsSameDay(t *testing.T) {
	a := NewDate(2024, time.June, 14)
	if !IsSameDay(a, DateOf(time.Date(2024, 6, 14, 8, 0, 0, 0, time.Local))) {
		t.Error("same day should match")
	}
	if IsSameDay(a, NewDate(2023, time.June, 14)) {
		t.Error("different year should not match")
	}
	if IsSameDay(a, NewDate(2024, time.July, 14)) {
		t.Error("different month should not match")
	}
	if IsSameDay(a, a.AddDays(1)) {
		t.Error("different day should not match")
	}
}

func TestWeekdayString(t *testing.T) {
	labels := Labels()
	for i, want := range []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"} {
		if Weekday(i).String() != want || labels[i] != want {
			t.Errorf("weekday %d: got %s, want %s", i, Weekday(i), want)
		}
	}
	if Weekday(9).String() != "???" {
		t.Error("out of range weekday should render as ???")
	}
}
