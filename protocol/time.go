package protocol

import (
	"fmt"
	"time"
)

const (
	nanosPerSecond = uint64(time.Second)
	nanosPerDay    = 24 * 60 * 60 * nanosPerSecond
)

// TimeOfDay is a wall clock time counted in nanoseconds since midnight.
// Valid values are below 24h.
type TimeOfDay uint64

func timeOfDay(ns uint64) (TimeOfDay, bool) {
	if ns >= nanosPerDay {
		return 0, false
	}
	return TimeOfDay(ns), true
}

// NewTimeOfDay validates ns and converts it to a TimeOfDay.
func NewTimeOfDay(ns uint64) (TimeOfDay, error) {
	t, ok := timeOfDay(ns)
	if !ok {
		return 0, &MalformedError{Reason: ReasonTimeOutOfRange, Value: ns}
	}
	return t, nil
}

// Nanoseconds returns the raw count of nanoseconds since midnight.
func (t TimeOfDay) Nanoseconds() uint64 {
	return uint64(t)
}

// Duration returns the offset from midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

func (t TimeOfDay) Hour() int {
	return int(uint64(t) / (3600 * nanosPerSecond))
}

func (t TimeOfDay) Minute() int {
	return int(uint64(t) / (60 * nanosPerSecond) % 60)
}

func (t TimeOfDay) Second() int {
	return int(uint64(t) / nanosPerSecond % 60)
}

func (t TimeOfDay) Nanosecond() int {
	return int(uint64(t) % nanosPerSecond)
}

// On places the time of day on the calendar date of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), day.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}
