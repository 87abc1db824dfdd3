package calendar

// MarkSet is a caller-supplied set of dates that deserve emphasis, such as
// days with journal entries. The zero value is an empty, usable set.
type MarkSet struct {
	days map[Date]struct{}
}

// NewMarkSet returns a set holding dates.
func NewMarkSet(dates ...Date) MarkSet {
	s := MarkSet{days: make(map[Date]struct{}, len(dates))}
	for _, d := range dates {
		s.days[d] = struct{}{}
	}
	return s
}

// Add inserts d. It allocates on first use.
func (s *MarkSet) Add(d Date) {
	if s.days == nil {
		s.days = make(map[Date]struct{})
	}
	s.days[d] = struct{}{}
}

// Has reports whether d is marked.
func (s MarkSet) Has(d Date) bool {
	_, ok := s.days[d]
	return ok
}

// Len returns the number of marked dates.
func (s MarkSet) Len() int { return len(s.days) }

// DecoratedCell is a grid cell with the caller's selection and marker state applied.
type DecoratedCell struct {
	DayCell
	Selected bool
	Marked   bool
	Today    bool
}

// Decorate derives per-cell flags for g without modifying it.
func Decorate(g Grid, selected Date, marks MarkSet, today Date) []DecoratedCell {
	out := make([]DecoratedCell, len(g))
	for i, c := range g {
		out[i] = DecoratedCell{
			DayCell:  c,
			Selected: IsSameDay(c.Date, selected),
			Marked:   marks.Has(c.Date),
			Today:    IsSameDay(c.Date, today),
		}
	}
	return out
}
