// Package season routes calendar dates to season partitions.
package season

import (
	"fmt"
	"time"

	"github.com/courtside/pickem/internal/domain"
)

const cutoverLayout = "01-02"

// Router maps a date to the season that contains it. A season is named by
// the year in which it starts; dates before the cutover month and day belong
// to the previous year's season.
type Router struct {
	month time.Month
	day   int
}

// NewRouter creates a router from an MM-DD cutover such as "10-01"
func NewRouter(cutover string) (*Router, error) {
	t, err := time.Parse(cutoverLayout, cutover)
	if err != nil {
		return nil, fmt.Errorf("invalid season cutover %q: %w", cutover, err)
	}
	return &Router{month: t.Month(), day: t.Day()}, nil
}

// SeasonFor returns the season containing t
func (r *Router) SeasonFor(t time.Time) int {
	if t.Month() < r.month || (t.Month() == r.month && t.Day() < r.day) {
		return t.Year() - 1
	}
	return t.Year()
}

// SeasonForDate returns the season containing a YYYY-MM-DD date
func (r *Router) SeasonForDate(date string) (int, error) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return 0, err
	}
	return r.SeasonFor(t), nil
}
