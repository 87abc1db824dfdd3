// Package dateutil parses and validates user-supplied dates before they reach
// the calendar.
package dateutil

import (
	"errors"
	"strings"
	"time"

	"github.com/javiermolinar/together/internal/calendar"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonthFormat = errors.New("month must be in YYYY-MM format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DateRange is a validated, inclusive range of days.
type DateRange struct {
	Start calendar.Date
	End   calendar.Date
}

// NewDateRange parses start and end relative to now.
// An empty start means today; an empty end means start.
func NewDateRange(startDate, endDate string, now time.Time) (DateRange, error) {
	start, err := ParseRelativeDate(startDate, now)
	if err != nil {
		return DateRange{}, err
	}

	end := start
	if strings.TrimSpace(endDate) != "" {
		end, err = ParseRelativeDate(endDate, now)
		if err != nil {
			return DateRange{}, err
		}
	}

	if end.Before(start) {
		return DateRange{}, ErrEndDateBeforeStart
	}
	return DateRange{Start: start, End: end}, nil
}

// Days returns the number of days in the range, both ends included.
func (r DateRange) Days() int {
	return r.Start.DaysUntil(r.End) + 1
}

// ParseMonth parses a YYYY-MM string into the first day of that month.
// Empty means the current month.
func ParseMonth(s string, now time.Time) (calendar.Date, error) {
	if s == "" {
		return calendar.DateOf(now).StartOfMonth(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return calendar.Date{}, ErrInvalidMonthFormat
	}
	return calendar.NewDate(t.Year(), t.Month(), 1), nil
}

// WeekRange returns the Sunday and Saturday of the week containing t.
func WeekRange(t time.Time) (sunday, saturday calendar.Date) {
	g := calendar.BuildWeekGrid(calendar.DateOf(t))
	return g.Span()
}

// MonthRange returns the first and last day of t's month.
func MonthRange(t time.Time) (first, last calendar.Date) {
	d := calendar.DateOf(t)
	return d.StartOfMonth(), d.EndOfMonth()
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": the day of relativeTo
//   - "tomorrow" or "yesterday"
//   - Absolute date: "2025-01-15"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - "next-<weekday>" and "last-<weekday>"
//   - "next-week", "last-week", "next-month", "last-month"
//
// All inputs are case-insensitive. Past dates are allowed.
func ParseRelativeDate(s string, relativeTo time.Time) (calendar.Date, error) {
	today := calendar.DateOf(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "next-week":
		return calendar.Advance(today, calendar.UnitWeek, calendar.Forward), nil
	case "last-week":
		return calendar.Advance(today, calendar.UnitWeek, calendar.Backward), nil
	case "next-month":
		return calendar.Advance(today, calendar.UnitMonth, calendar.Forward), nil
	case "last-month":
		return calendar.Advance(today, calendar.UnitMonth, calendar.Backward), nil
	}

	if name, ok := strings.CutPrefix(input, "next-"); ok {
		if target, ok := weekdayMap[name]; ok {
			return nextWeekday(today, target), nil
		}
		return calendar.Date{}, ErrInvalidDateFormat
	}
	if name, ok := strings.CutPrefix(input, "last-"); ok {
		if target, ok := weekdayMap[name]; ok {
			return lastWeekday(today, target), nil
		}
		return calendar.Date{}, ErrInvalidDateFormat
	}
	if target, ok := weekdayMap[input]; ok {
		return nextWeekday(today, target), nil
	}

	d, err := calendar.ParseDate(input)
	if err != nil {
		return calendar.Date{}, ErrInvalidDateFormat
	}
	return d, nil
}

// nextWeekday returns the next occurrence of target after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today calendar.Date, target time.Weekday) calendar.Date {
	days := int(target) - int(today.Weekday())
	if days <= 0 {
		days += 7
	}
	return today.AddDays(days)
}

// lastWeekday returns the most recent occurrence of target before today.
func lastWeekday(today calendar.Date, target time.Weekday) calendar.Date {
	days := int(today.Weekday()) - int(target)
	if days <= 0 {
		days += 7
	}
	return today.AddDays(-days)
}
