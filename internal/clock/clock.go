// Package clock abstracts the current time so pick locking and game day
// navigation can be tested at fixed instants.
package clock

import (
	"sync"
	"time"

	"github.com/courtside/pickem/internal/domain"
)

// Clock provides an abstraction for time operations
type Clock interface {
	// Now returns the current time
	Now() time.Time
}

// RealClock uses the actual system time
type RealClock struct {
	loc *time.Location
}

// NewRealClock creates a new RealClock in the host's local zone
func NewRealClock() *RealClock {
	return &RealClock{}
}

// NewRealClockIn creates a RealClock whose times, and therefore calendar
// dates, are expressed in loc
func NewRealClockIn(loc *time.Location) *RealClock {
	return &RealClock{loc: loc}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	if c.loc != nil {
		return time.Now().In(c.loc)
	}
	return time.Now()
}

// SimulatedClock is a settable clock for tests
type SimulatedClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewSimulatedClock creates a new SimulatedClock starting at the given time
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{current: start}
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Advance moves the simulated time forward by the given duration
func (c *SimulatedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Set sets the simulated time to a specific value
func (c *SimulatedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// Today returns the clock's current calendar date as YYYY-MM-DD
func Today(c Clock) string {
	return c.Now().Format(domain.DateLayout)
}

// ShiftDate moves a YYYY-MM-DD date by days
func ShiftDate(date string, days int) (string, error) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(domain.DateLayout), nil
}
