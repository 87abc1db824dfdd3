package journal

import (
	"sort"

	"github.com/javiermolinar/together/internal/calendar"
)

// Day holds the entries written for one date.
type Day struct {
	Date    calendar.Date
	Entries []*Entry
}

// GroupByDate buckets entries by date, ordered by date.
func GroupByDate(entries []*Entry) []Day {
	byDate := make(map[calendar.Date]*Day)
	var order []calendar.Date
	for _, e := range entries {
		d, ok := byDate[e.Date]
		if !ok {
			d = &Day{Date: e.Date}
			byDate[e.Date] = d
			order = append(order, e.Date)
		}
		d.Entries = append(d.Entries, e)
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	days := make([]Day, len(order))
	for i, date := range order {
		days[i] = *byDate[date]
	}
	return days
}

// EntriesOn returns the entries dated d.
func EntriesOn(entries []*Entry, d calendar.Date) []*Entry {
	var out []*Entry
	for _, e := range entries {
		if calendar.IsSameDay(e.Date, d) {
			out = append(out, e)
		}
	}
	return out
}

// Authors returns the distinct authors of a day in first-seen order.
func (d Day) Authors() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range d.Entries {
		if !seen[e.Author] {
			seen[e.Author] = true
			out = append(out, e.Author)
		}
	}
	return out
}
