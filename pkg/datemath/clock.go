package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used for review dates.
const DateLayout = "2006-01-02"

var agoPattern = regexp.MustCompile(`^(\d+) (day|days|week|weeks) ago$`)

// Clock buckets instants into calendar days of a fixed timezone.
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a Clock for the given IANA timezone, e.g. "Asia/Tokyo".
// "Local" and "" both mean the process's local zone.
func NewClock(timezone string) (*Clock, error) {
	if timezone == "" {
		timezone = "Local"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{location: loc, now: time.Now}, nil
}

// WithNow returns a copy of the clock that reads the current time from now.
func (c *Clock) WithNow(now func() time.Time) *Clock {
	return &Clock{location: c.location, now: now}
}

// Now returns the current instant in the clock's timezone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.location)
}

// Location returns the clock's timezone.
func (c *Clock) Location() *time.Location {
	return c.location
}

// StartOfDay returns midnight at the start of t's day.
func (c *Clock) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// SameDay reports whether a and b fall on the same calendar date.
func (c *Clock) SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(c.location).Date()
	by, bm, bd := b.In(c.location).Date()
	return ay == by && am == bm && ad == bd
}

// DateString formats t's calendar date as YYYY-MM-DD.
func (c *Clock) DateString(t time.Time) string {
	return t.In(c.location).Format(DateLayout)
}

// ParseDay resolves a day reference relative to base. Accepted forms:
// "today", "yesterday", "N days ago", "N weeks ago" and YYYY-MM-DD.
// The result is the start of that day.
func (c *Clock) ParseDay(ref string, base time.Time) (time.Time, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))

	switch ref {
	case "", "today":
		return c.StartOfDay(base), nil
	case "yesterday":
		return c.StartOfDay(base.AddDate(0, 0, -1)), nil
	}

	if m := agoPattern.FindStringSubmatch(ref); m != nil {
		n, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "week") {
			n *= 7
		}
		return c.StartOfDay(base.AddDate(0, 0, -n)), nil
	}

	d, err := time.ParseInLocation(DateLayout, ref, c.location)
	if err != nil {
		return base, fmt.Errorf("invalid day reference: %q", ref)
	}
	return d, nil
}
