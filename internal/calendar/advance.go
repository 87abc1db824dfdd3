package calendar

import "time"

// Unit is the step size of a navigation.
type Unit int

const (
	UnitWeek Unit = iota
	UnitMonth
)

// Direction is the sense of a navigation.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// UnitFor returns the navigation unit that matches a grid mode.
func UnitFor(m Mode) Unit {
	if m == ModeWeek {
		return UnitWeek
	}
	return UnitMonth
}

// Advance moves ref by one week or one calendar month.
// Month steps keep the day of month, clamped to the length of the target
// month, so Jan 31 advances to Feb 28 (or 29), never into March.
func Advance(ref Date, unit Unit, dir Direction) Date {
	step := 1
	if dir == Backward {
		step = -1
	}
	if unit == UnitWeek {
		return ref.AddDays(7 * step)
	}
	return AddMonths(ref, step)
}

// AddMonths shifts ref by n calendar months with day-of-month clamping.
func AddMonths(ref Date, n int) Date {
	target := NewDate(ref.Year(), ref.Month()+time.Month(n), 1)
	day := min(ref.Day(), target.DaysInMonth())
	return NewDate(target.Year(), target.Month(), day)
}
