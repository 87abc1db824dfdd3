package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/journal"
)

func TestPrintGrid_Month(t *testing.T) {
	noColor(t)

	ref := calendar.NewDate(2024, time.February, 14)
	marks := calendar.NewMarkSet(
		calendar.NewDate(2024, time.February, 10),
		calendar.NewDate(2024, time.February, 29),
		calendar.NewDate(2024, time.March, 1), // filler, never shown
	)

	var buf bytes.Buffer
	PrintGrid(&buf, "February 2024", calendar.BuildMonthGrid(ref), PrintOpts{
		Today:     calendar.NewDate(2024, time.February, 20),
		Marks:     marks,
		CellWidth: 4,
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"       February 2024",
		" SUN MON TUE WED THU FRI SAT",
		"                  1   2   3",
		"  4   5   6   7   8   9  10*",
		" 11  12  13  14  15  16  17",
		" 18  19  20  21  22  23  24",
		" 25  26  27  28  29*",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPrintGrid_Week(t *testing.T) {
	noColor(t)

	ref := calendar.NewDate(2024, time.June, 14)
	var buf bytes.Buffer
	PrintGrid(&buf, "Jun 9 - Jun 15, 2024", calendar.BuildWeekGrid(ref), PrintOpts{CellWidth: 4})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if want := "  9  10  11  12  13  14  15"; lines[2] != want {
		t.Errorf("row = %q, want %q", lines[2], want)
	}
}

func TestPrintEntries(t *testing.T) {
	noColor(t)

	feb14 := calendar.NewDate(2024, time.February, 14)
	feb15 := calendar.NewDate(2024, time.February, 15)
	entries := []*journal.Entry{
		{ID: 3, Date: feb15, Author: "Leo", Title: "Leftovers", Body: ""},
		{ID: 1, Date: feb14, Author: "Ana", Title: "Picnic", Body: "Lake\nand sandwiches"},
		{ID: 2, Date: feb14, Author: "Leo", Title: "Movie"},
	}

	var buf bytes.Buffer
	PrintEntries(&buf, entries, 80)
	out := buf.String()

	first := strings.Index(out, "=== Wed Feb 14, 2024 ===")
	second := strings.Index(out, "=== Thu Feb 15, 2024 ===")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("day headings missing or out of order:\n%s", out)
	}
	for _, want := range []string{"  #1    Picnic (Ana)", "        Lake", "  #2    Movie (Leo)", "  #3    Leftovers (Leo)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "and sandwiches") {
		t.Errorf("preview should only show the first body line:\n%s", out)
	}
}

func TestPrintEntryDetail(t *testing.T) {
	noColor(t)

	created := time.Date(2024, time.February, 14, 18, 30, 0, 0, time.Local)
	e := &journal.Entry{
		ID:        7,
		Date:      calendar.NewDate(2024, time.February, 14),
		Author:    "Ana",
		Title:     "Picnic",
		Body:      "Lake and sandwiches",
		CreatedAt: created,
		UpdatedAt: created,
	}

	var buf bytes.Buffer
	PrintEntryDetail(&buf, e)
	out := buf.String()

	for _, want := range []string{
		"#7 Picnic\n",
		"Date:    Wednesday, February 14, 2024\n",
		"Author:  Ana\n",
		"Created: 2024-02-14 18:30\n",
		"\nLake and sandwiches\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Updated:") {
		t.Errorf("unchanged entry should not print Updated:\n%s", out)
	}

	e.UpdatedAt = created.Add(time.Hour)
	buf.Reset()
	PrintEntryDetail(&buf, e)
	if !strings.Contains(buf.String(), "Updated: 2024-02-14 19:30") {
		t.Errorf("edited entry should print Updated:\n%s", buf.String())
	}
}

func TestPadAndCenter(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string, int) string
		in    string
		width int
		want  string
	}{
		{"pad shorter", padLeft, "7", 3, "  7"},
		{"pad exact", padLeft, "SUN", 3, "SUN"},
		{"pad longer", padLeft, "SUNDAY", 3, "SUNDAY"},
		{"center odd gap", centerText, "ab", 5, " ab"},
		{"center even gap", centerText, "ab", 6, "  ab"},
		{"center overflow", centerText, "abcdef", 4, "abcdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in, tt.width); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
