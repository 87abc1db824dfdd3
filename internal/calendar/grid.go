package calendar

// DaysPerWeek is the number of columns in every grid.
const DaysPerWeek = 7

// DayCell is one square of a calendar grid.
type DayCell struct {
	Date   Date
	Label  Weekday
	Number int // day of month, 0 for filler cells in month grids
}

// IsFiller reports whether the cell lies outside the displayed month.
func (c DayCell) IsFiller() bool { return c.Number == 0 }

// Grid is an ordered run of day cells whose length is a multiple of seven.
type Grid []DayCell

// Mode selects the grid granularity.
type Mode int

const (
	ModeMonth Mode = iota
	ModeWeek
)

func (m Mode) String() string {
	if m == ModeWeek {
		return "week"
	}
	return "month"
}

// ParseMode maps "week" or "month" to a Mode. Anything else is month.
func ParseMode(s string) Mode {
	if s == "week" {
		return ModeWeek
	}
	return ModeMonth
}

// Build returns the week or month grid for ref.
func Build(ref Date, mode Mode) Grid {
	if mode == ModeWeek {
		return BuildWeekGrid(ref)
	}
	return BuildMonthGrid(ref)
}

// StartOfWeek returns the Sunday on or before d.
func StartOfWeek(d Date) Date {
	return d.AddDays(-int(d.Weekday()))
}

// BuildWeekGrid returns the seven days, Sunday through Saturday, of the week
// containing ref. Every cell is a real day, even when the week spans two months.
func BuildWeekGrid(ref Date) Grid {
	start := StartOfWeek(ref)
	g := make(Grid, DaysPerWeek)
	for i := range g {
		d := start.AddDays(i)
		g[i] = DayCell{Date: d, Label: Weekday(i), Number: d.Day()}
	}
	return g
}

// BuildMonthGrid returns the days of ref's month padded with filler cells from
// the neighbouring months so that day 1 sits in its weekday column and the last
// row is complete. A month that already ends on a Saturday gets no trailing
// fillers.
func BuildMonthGrid(ref Date) Grid {
	first := ref.StartOfMonth()
	days := first.DaysInMonth()
	lead := int(first.Weekday())
	trail := (DaysPerWeek - (lead+days)%DaysPerWeek) % DaysPerWeek

	g := make(Grid, 0, lead+days+trail)
	for i := -lead; i < days+trail; i++ {
		d := first.AddDays(i)
		n := 0
		if i >= 0 && i < days {
			n = i + 1
		}
		g = append(g, DayCell{Date: d, Label: WeekdayOf(d.Weekday()), Number: n})
	}
	return g
}

// Rows splits g into rows of seven cells.
func (g Grid) Rows() [][]DayCell {
	rows := make([][]DayCell, 0, len(g)/DaysPerWeek)
	for i := 0; i+DaysPerWeek <= len(g); i += DaysPerWeek {
		rows = append(rows, g[i:i+DaysPerWeek])
	}
	return rows
}

// Index returns the position of d in g, or -1.
func (g Grid) Index(d Date) int {
	for i, c := range g {
		if IsSameDay(c.Date, d) {
			return i
		}
	}
	return -1
}

// Span returns the first and last dates covered by g, fillers included.
func (g Grid) Span() (first, last Date) {
	if len(g) == 0 {
		return Date{}, Date{}
	}
	return g[0].Date, g[len(g)-1].Date
}

// Filler counts the leading and trailing filler cells of g.
func (g Grid) Filler() (leading, trailing int) {
	for _, c := range g {
		if !c.IsFiller() {
			break
		}
		leading++
	}
	if leading == len(g) {
		return leading, 0
	}
	for i := len(g) - 1; i >= 0 && g[i].IsFiller(); i-- {
		trailing++
	}
	return leading, trailing
}
