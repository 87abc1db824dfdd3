package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PromptState captures prompt input state for rendering.
type PromptState struct {
	Label       string
	Value       string
	Cursor      string
	Suggestions []string
}

// PromptLines builds the input line and partner suggestions for the given width.
func PromptLines(state PromptState, contentWidth int) []string {
	prefix := state.Label + "> "
	continuation := strings.Repeat(" ", runewidth.StringWidth(prefix))
	lines := wrapTextWithPrefix(state.Value+state.Cursor, prefix, continuation, contentWidth)
	for _, s := range state.Suggestions {
		lines = append(lines, wrapTextWithPrefix("@"+s, continuation, continuation, contentWidth)...)
	}
	return lines
}

// ClampLines clamps lines to maxLines and adds an ellipsis if needed.
func ClampLines(lines []string, maxLines, width int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}

	clamped := append([]string(nil), lines[:maxLines]...)
	clamped[maxLines-1] = addEllipsis(clamped[maxLines-1], width)
	return clamped
}

// WrapTextToWidths wraps text across the provided widths.
func WrapTextToWidths(s string, firstWidth, otherWidth int) []string {
	if firstWidth <= 0 || otherWidth <= 0 {
		return []string{""}
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 4)
	width := firstWidth
	lineStart := 0
	lastSpace := -1
	lineWidth := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == ' ' {
			lastSpace = i
		}

		rw := runewidth.RuneWidth(r)
		if lineWidth+rw > width {
			if lastSpace >= lineStart {
				lines = append(lines, string(runes[lineStart:lastSpace]))
				i = lastSpace
				lineStart = lastSpace + 1
			} else {
				lines = append(lines, string(runes[lineStart:i]))
				lineStart = i
				i--
			}
			width = otherWidth
			lastSpace = -1
			lineWidth = 0
			continue
		}
		lineWidth += rw
	}

	return append(lines, string(runes[lineStart:]))
}

// RenderPrompt renders the prompt box with the provided lines.
func RenderPrompt(width int, style lipgloss.Style, lines []string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(width-frameW, 0)
	if len(lines) == 0 {
		lines = []string{""}
	}
	return style.Width(contentWidth).Render(strings.Join(lines, "\n"))
}

func wrapTextWithPrefix(s, prefix, continuation string, width int) []string {
	if width <= 0 {
		return []string{""}
	}

	firstWidth := max(width-runewidth.StringWidth(prefix), 0)
	otherWidth := max(width-runewidth.StringWidth(continuation), 0)

	lines := WrapTextToWidths(s, firstWidth, otherWidth)
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = continuation + lines[i]
		}
	}
	return lines
}

func addEllipsis(s string, width int) string {
	switch {
	case width <= 0:
		return ""
	case width <= 3:
		return strings.Repeat(".", width)
	}
	if runewidth.StringWidth(s)+3 > width {
		return runewidth.Truncate(s, width-3, "") + "..."
	}
	return s + "..."
}
