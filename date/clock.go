package date

import (
	"fmt"
	"time"
)

// ClockFormat is the 24-hour format used to read and write a time of day.
const ClockFormat = "15:04:05"

// Clock represents a time of day with second granularity.
//
// Midnight is a valid Clock, so the zero value carries no time at all; use
// NewClock, Now or ParseClock to build one.
type Clock struct {
	sec int // seconds since midnight
	set bool
}

// NewClock returns the Clock for hour:min:sec, normalized modulo one day.
func NewClock(hour, min, sec int) Clock {
	s := ((hour*60+min)*60 + sec) % 86400
	if s < 0 {
		s += 86400
	}
	return Clock{sec: s, set: true}
}

// Now returns the current time of day, truncated to the second.
func Now() Clock { return ClockOf(time.Now()) }

// ClockOf returns the time of day part of t, in t's location.
func ClockOf(t time.Time) Clock { return NewClock(t.Clock()) }

// Hour returns the hour of the day in [0, 23].
func (c Clock) Hour() int { return c.sec / 3600 }

// Minute returns the minute in [0, 59].
func (c Clock) Minute() int { return c.sec / 60 % 60 }

// Second returns the second in [0, 59].
func (c Clock) Second() int { return c.sec % 60 }

// IsZero returns true if the clock is the zero value.
func (c Clock) IsZero() bool { return !c.set }

// Before reports whether c is earlier in the day than x.
func (c Clock) Before(x Clock) bool { return c.sec < x.sec }

// String formats the clock in ClockFormat.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
}

// ParseClock parses a Clock written exactly in ClockFormat.
func ParseClock(str string) (Clock, error) {
	if len(str) != len(ClockFormat) {
		return Clock{}, fmt.Errorf("invalid time %q want format %q", str, ClockFormat)
	}
	t, err := time.Parse(ClockFormat, str)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q want format %q: %w", str, ClockFormat, err)
	}
	return ClockOf(t), nil
}

// MustParseClock is like ParseClock but panics on error.
func MustParseClock(str string) Clock {
	c, err := ParseClock(str)
	if err != nil {
		panic(err.Error())
	}
	return c
}
