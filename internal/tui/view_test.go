package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/journal"
)

func useTrueColor(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prev)
	})
}

func TestView_MonthLayout(t *testing.T) {
	useTrueColor(t)

	today := calendar.NewDate(2024, time.June, 14)
	repo := newMemRepo(
		&journal.Entry{Date: today, Title: "Anniversary dinner", Author: "Leo", Body: "the little place on the corner"},
		&journal.Entry{Date: calendar.NewDate(2024, time.June, 3), Title: "Rain walk", Author: "Ana"},
	)
	m := newTestModel(t, repo)

	out := m.View()
	plain := ansi.Strip(out)
	lines := strings.Split(out, "\n")

	if len(lines) != m.height {
		t.Fatalf("rendered %d lines, want %d", len(lines), m.height)
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != m.width {
			t.Fatalf("line %d width = %d, want %d", i, w, m.width)
		}
	}

	for _, want := range []string{
		"June 2024",
		"SUN", "SAT",
		"Friday, June 14 2024 · 1 entry",
		"Anniversary dinner (Leo)",
		"the little place on the corner",
		"2 days with entries this month",
		"q quit",
	} {
		if !strings.Contains(plain, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if got := strings.Count(plain, "•"); got < 2 {
		t.Errorf("expected markers on both marked days, found %d", got)
	}

	// Background fill uses the theme color.
	bg := "\x1b[48;2;30;30;46m" // mocha base #1e1e2e
	if !strings.Contains(out, bg) {
		t.Error("expected themed background in output")
	}
}

func TestView_WeekTitle(t *testing.T) {
	m := newTestModel(t, newMemRepo())
	m, _ = press(t, m, "m")

	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "Jun 9 - Jun 15, 2024") {
		t.Errorf("week title missing:\n%s", plain)
	}
	if !strings.Contains(plain, "No entries in this week") {
		t.Errorf("expected empty week status:\n%s", plain)
	}
}

func TestView_PromptShowsSuggestions(t *testing.T) {
	m := newTestModel(t, newMemRepo())
	m, _ = press(t, m, "a")
	m.prompt.SetValue("@a")

	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "Jun 14> @a_") {
		t.Errorf("prompt line missing:\n%s", plain)
	}
	if !strings.Contains(plain, "@Ana") {
		t.Errorf("partner suggestion missing:\n%s", plain)
	}
	if !strings.Contains(plain, "esc cancel") {
		t.Errorf("prompt help missing")
	}
}

func TestView_ConfirmDelete(t *testing.T) {
	repo := newMemRepo(&journal.Entry{Date: calendar.NewDate(2024, time.June, 14), Title: "Oops", Author: "Ana"})
	m := newTestModel(t, repo)
	m, _ = press(t, m, "x")

	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, `Delete "Oops" by Ana? (y/n)`) {
		t.Errorf("confirmation missing:\n%s", plain)
	}
}

func TestView_SetupScreen(t *testing.T) {
	m := newTestModel(t, nil, WithInitState(InitState{
		NeedsInit:  true,
		DBMissing:  true,
		DBPath:     "/tmp/together-test.db",
		ConfigPath: "/tmp/together-test.toml",
	}))

	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "Journal will be created at /tmp/together-test.db") {
		t.Errorf("setup screen missing db path:\n%s", plain)
	}
	if strings.Contains(plain, "Config will be written") {
		t.Error("config line shown although config exists")
	}
}

func TestView_SmallTerminal(t *testing.T) {
	m := newTestModel(t, newMemRepo())
	m.width, m.height = 20, 10

	if plain := ansi.Strip(m.View()); !strings.Contains(plain, "Terminal too small") {
		t.Errorf("expected small terminal notice, got:\n%s", plain)
	}

	m.width, m.height = 0, 0
	if got := m.View(); got != "Loading..." {
		t.Errorf("zero size view = %q", got)
	}
}

func TestCellWidth(t *testing.T) {
	tests := []struct {
		innerW int
		want   int
	}{
		{innerW: 10, want: minCellWidth},
		{innerW: 42, want: 6},
		{innerW: 76, want: 10},
		{innerW: 300, want: maxCellWidth},
	}
	for _, tt := range tests {
		if got := cellWidth(tt.innerW); got != tt.want {
			t.Errorf("cellWidth(%d) = %d, want %d", tt.innerW, got, tt.want)
		}
	}
}
