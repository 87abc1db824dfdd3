// Package summary aggregates journal activity over a calendar grid.
package summary

import (
	"context"
	"fmt"
	"sort"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/journal"
)

// Summary holds the journal activity of the real days of a grid.
// Filler cells of a month grid are ignored.
type Summary struct {
	Start         calendar.Date
	End           calendar.Date
	Days          int // real days covered
	DaysWritten   int // days with at least one entry
	LongestStreak int // longest run of consecutive days with entries
	Entries       []*journal.Entry
	ByAuthor      map[string]int
}

// AuthorCount is one row of Summary.Authors.
type AuthorCount struct {
	Author  string
	Entries int
}

// Summarize builds a Summary from g and entries that may extend beyond it.
func Summarize(g calendar.Grid, entries []*journal.Entry) *Summary {
	s := &Summary{ByAuthor: make(map[string]int)}

	var days []calendar.Date
	for _, c := range g {
		if !c.IsFiller() {
			days = append(days, c.Date)
		}
	}
	if len(days) == 0 {
		return s
	}
	s.Start, s.End = days[0], days[len(days)-1]
	s.Days = len(days)

	written := make(map[calendar.Date]bool)
	for _, e := range entries {
		if e.Date.Before(s.Start) || e.Date.After(s.End) {
			continue
		}
		s.Entries = append(s.Entries, e)
		s.ByAuthor[e.Author]++
		written[e.Date] = true
	}
	s.DaysWritten = len(written)

	run := 0
	for _, d := range days {
		if !written[d] {
			run = 0
			continue
		}
		run++
		s.LongestStreak = max(s.LongestStreak, run)
	}
	return s
}

// Build loads the entries of g from repo and summarizes them.
func Build(ctx context.Context, repo journal.Repository, g calendar.Grid) (*Summary, error) {
	start, end := g.Span()
	entries, err := repo.ListEntriesByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetching entries: %w", err)
	}
	return Summarize(g, entries), nil
}

// Authors returns per-author entry counts, most active first.
func (s *Summary) Authors() []AuthorCount {
	out := make([]AuthorCount, 0, len(s.ByAuthor))
	for a, n := range s.ByAuthor {
		out = append(out, AuthorCount{Author: a, Entries: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Entries != out[j].Entries {
			return out[i].Entries > out[j].Entries
		}
		return out[i].Author < out[j].Author
	})
	return out
}
