package calendar

import "time"

// View is the navigation state of a calendar widget: the date the grid is
// anchored to, the highlighted date and the display mode. Every transition
// returns a new View.
type View struct {
	Reference Date
	Selected  Date
	Mode      Mode
}

// NewView returns a view anchored and selected on today.
func NewView(now func() time.Time, mode Mode) View {
	today := Today(now)
	return View{Reference: today, Selected: today, Mode: mode}
}

// Today resets both the reference and the selection to the current date.
func (v View) Today(now func() time.Time) View {
	today := Today(now)
	v.Reference = today
	v.Selected = today
	return v
}

// Next advances the reference by one unit of the current mode.
func (v View) Next() View {
	v.Reference = Advance(v.Reference, UnitFor(v.Mode), Forward)
	return v
}

// Previous moves the reference back by one unit of the current mode.
func (v View) Previous() View {
	v.Reference = Advance(v.Reference, UnitFor(v.Mode), Backward)
	return v
}

// ToggleMode flips between week and month without moving the reference.
func (v View) ToggleMode() View {
	if v.Mode == ModeWeek {
		v.Mode = ModeMonth
	} else {
		v.Mode = ModeWeek
	}
	return v
}

// SelectDay highlights d and re-anchors the grid on it.
func (v View) SelectDay(d Date) View {
	v.Selected = d
	v.Reference = d
	return v
}

// MoveSelection shifts the selection by days and re-anchors the grid.
func (v View) MoveSelection(days int) View {
	return v.SelectDay(v.Selected.AddDays(days))
}

// Grid builds the grid for the current reference and mode.
func (v View) Grid() Grid {
	return Build(v.Reference, v.Mode)
}

// Range returns the first and last dates shown by the current grid.
func (v View) Range() (first, last Date) {
	return v.Grid().Span()
}

// Title describes the current grid, e.g. "June 2024" or "Jun 16 - Jun 22, 2024".
func (v View) Title() string {
	if v.Mode == ModeMonth {
		return v.Reference.Time().Format("January 2006")
	}
	first, last := v.Range()
	return first.Time().Format("Jan 2") + " - " + last.Time().Format("Jan 2, 2006")
}
