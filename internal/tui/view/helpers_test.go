package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPadLinesWithBackground(t *testing.T) {
	out := PadLinesWithBackground("ab\ncdef", 4, 3, lipgloss.Color(""))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 4 {
			t.Errorf("line %d width = %d, want 4", i, w)
		}
	}
}

func TestRender(t *testing.T) {
	if got := Render(ViewState{}); got != "Loading..." {
		t.Errorf("empty state = %q", got)
	}
	if got := Render(ViewState{EmptyPlaceholder: "wait"}); got != "wait" {
		t.Errorf("placeholder = %q", got)
	}
	if got := Render(ViewState{Width: 1, Height: 1, BaseContent: "x"}); got != "x" {
		t.Errorf("base = %q", got)
	}
}
