package date

import (
	"fmt"
	"time"
)

// ClockFormat is the ISO-8601 format of a wall-clock time.
const ClockFormat = "15:04:05"

// Clock is a wall-clock time of day with second granularity.
type Clock struct{ h, m, s int }

// NewClock returns the Clock for the given hour, minute and second.
//
// Values out of range are normalized modulo a day.
func NewClock(hour, min, sec int) Clock {
	t := time.Date(2000, time.January, 1, hour, min, sec, 0, time.UTC)
	return Clock{t.Hour(), t.Minute(), t.Second()}
}

// ClockOf returns the wall-clock of t, in t's location.
func ClockOf(t time.Time) Clock { return Clock{t.Hour(), t.Minute(), t.Second()} }

// Hour returns the hour within the day, in the range [0, 23].
func (c Clock) Hour() int { return c.h }

// Minute returns the minute offset within the hour, in the range [0, 59].
func (c Clock) Minute() int { return c.m }

// Second returns the second offset within the minute, in the range [0, 59].
func (c Clock) Second() int { return c.s }

// String formats the clock as HH:MM:SS.
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d:%02d", c.h, c.m, c.s) }

// ParseClock parses an HH:MM:SS wall-clock time. "HH:MM" is accepted too, with
// zero seconds, and single digit fields are allowed.
func ParseClock(str string) (Clock, error) {
	for _, layout := range []string{"15:4:5", "15:4"} {
		if t, err := time.Parse(layout, str); err == nil {
			return ClockOf(t), nil
		}
	}
	return Clock{}, fmt.Errorf("invalid time %q want format %q", str, ClockFormat)
}
