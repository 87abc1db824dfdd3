// Package journal defines the shared journal entries whose dates are marked on
// the calendar.
package journal

import (
	"errors"
	"strings"
	"time"

	"github.com/javiermolinar/together/internal/calendar"
)

// Validation errors.
var (
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrEmptyAuthor   = errors.New("author cannot be empty")
	ErrUnknownAuthor = errors.New("author is not one of the configured partners")
)

// Domain errors.
var (
	ErrEntryNotFound = errors.New("entry not found")
)

// MaxTitleLength bounds entry titles, in characters.
const MaxTitleLength = 120

// Entry is one journal post for a day.
type Entry struct {
	ID        int64
	Date      calendar.Date
	Author    string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a new Entry with validation.
// partners restricts the author when non-empty, and the author is stored with
// the partner's configured spelling.
func New(author, title, body string, date calendar.Date, partners []string) (*Entry, error) {
	author = strings.TrimSpace(author)

	title, err := NormalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if author == "" {
		return nil, ErrEmptyAuthor
	}
	if len(partners) > 0 {
		p, ok := canonicalPartner(author, partners)
		if !ok {
			return nil, ErrUnknownAuthor
		}
		author = p
	}

	now := time.Now()
	return &Entry{
		Date:      date,
		Author:    author,
		Title:     title,
		Body:      strings.TrimSpace(body),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NormalizeTitle trims title and cuts it to MaxTitleLength characters.
func NormalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if r := []rune(title); len(r) > MaxTitleLength {
		title = strings.TrimSpace(string(r[:MaxTitleLength]))
	}
	return title, nil
}

// canonicalPartner returns the configured spelling of author.
func canonicalPartner(author string, partners []string) (string, bool) {
	for _, p := range partners {
		if strings.EqualFold(p, author) {
			return p, true
		}
	}
	return "", false
}

// Preview returns the first line of the body, cut to n runes.
func (e *Entry) Preview(n int) string {
	line, _, _ := strings.Cut(e.Body, "\n")
	if n <= 0 {
		return ""
	}
	r := []rune(line)
	if len(r) <= n {
		return line
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
