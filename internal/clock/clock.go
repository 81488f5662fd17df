package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimezone reports a timezone name that the IANA database does not
// know. Callers must surface it instead of falling back to server time.
var ErrInvalidTimezone = errors.New("invalid timezone")

// Clock abstracts the current instant so services can be tested at fixed
// points in time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System is the wall clock.
var System Clock = systemClock{}

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

// Today resolves the calendar date observed in the named timezone at the
// given instant. The result is date-only: midnight UTC of that calendar day.
func Today(now time.Time, tzName string) (time.Time, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, tzName)
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
