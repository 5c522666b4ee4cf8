package domain

import (
	"errors"
	"fmt"
	"time"
)

const dayKeyLayout = "2006-01-02"

// TrackerTimezone is the single calendar convention for the whole app.
// Day boundaries are midnight in this zone, everywhere.
const TrackerTimezone = "Asia/Kolkata"

var ErrInvalidDayKey = errors.New("invalid day key (expected YYYY-MM-DD)")

// DayKey identifies one calendar day in the tracker timezone.
// The textual form is zero-padded YYYY-MM-DD, so lexical order is
// chronological order.
type DayKey string

func NewDayKey(t time.Time, loc *time.Location) DayKey {
	return DayKey(t.In(loc).Format(dayKeyLayout))
}

func ParseDayKey(s string) (DayKey, error) {
	if _, err := time.Parse(dayKeyLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDayKey, s)
	}
	return DayKey(s), nil
}

func (k DayKey) String() string {
	return string(k)
}

// Time returns midnight of the day in the given location.
func (k DayKey) Time(loc *time.Location) time.Time {
	t, err := time.ParseInLocation(dayKeyLayout, string(k), loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Clock supplies the current moment and the timezone used for day
// boundaries. Injected so date windows and streak transitions are
// deterministic under test.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type trackerClock struct {
	loc *time.Location
}

// NewTrackerClock returns the production clock pinned to TrackerTimezone.
// If the tz database is unavailable it falls back to a fixed +05:30
// offset, which denotes the same calendar days.
func NewTrackerClock() Clock {
	loc, err := time.LoadLocation(TrackerTimezone)
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+1800)
	}
	return &trackerClock{loc: loc}
}

func (c *trackerClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *trackerClock) Location() *time.Location {
	return c.loc
}

// Today returns the current calendar day per the clock's timezone.
func Today(c Clock) DayKey {
	return NewDayKey(c.Now(), c.Location())
}

// LastNDays returns n consecutive DayKeys ending at today, oldest first.
// Days are stepped via AddDate so DST shifts cannot skip or repeat a day.
func LastNDays(c Clock, n int) []DayKey {
	if n <= 0 {
		return []DayKey{}
	}

	loc := c.Location()
	anchor := c.Now().In(loc)
	anchor = time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, loc)

	days := make([]DayKey, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, NewDayKey(anchor.AddDate(0, 0, -i), loc))
	}
	return days
}
