package calendar

import "time"

// Weekday is a column label in Sunday-first order.
type Weekday int

const (
	Sun Weekday = iota
	Mon
	Tue
	Wed
	Thu
	Fri
	Sat
)

var weekdayLabels = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// Labels returns the seven column labels, SUN through SAT.
func Labels() [7]string { return weekdayLabels }

// WeekdayOf returns the label for a time.Weekday.
func WeekdayOf(w time.Weekday) Weekday { return Weekday(w) }

// String returns the three-letter upper-case label.
func (w Weekday) String() string {
	if w < Sun || w > Sat {
		return "???"
	}
	return weekdayLabels[w]
}
