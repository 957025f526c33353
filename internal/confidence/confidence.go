// Package confidence computes a user's daily confidence budget.
//
// Every game day grants a ceiling of one point per scheduled game plus a
// fixed offset. Each pick spends its confidence weight against that
// ceiling, and changes to an existing pick are charged only the difference
// between the new and the old weight.
package confidence

import (
	"fmt"

	"github.com/courtside/pickem/internal/domain"
)

// DefaultOffset is the slack added to every day's ceiling
const DefaultOffset = 2

// Policy holds the tunable budget parameters
type Policy struct {
	Offset int
}

// DefaultPolicy returns the policy with the standard offset
func DefaultPolicy() Policy {
	return Policy{Offset: DefaultOffset}
}

// Ceiling returns the day's total budget: one per game plus the offset
func (p Policy) Ceiling(games []*domain.Game) int {
	return len(games) + p.Offset
}

// Committed sums the weights of userID's picks across the day's games.
// Picks stored without a weight count as one.
func Committed(games []*domain.Game, userID string) int {
	total := 0
	for _, g := range games {
		if pick, ok := g.Picks[userID]; ok {
			total += pick.Weight()
		}
	}
	return total
}

// Remaining returns the unspent budget, never below zero
func (p Policy) Remaining(games []*domain.Game, userID string) int {
	return max(0, p.Ceiling(games)-Committed(games, userID))
}

// Compute returns the full budget summary for a day
func (p Policy) Compute(date string, games []*domain.Game, userID string) domain.ConfidenceBudget {
	ceiling := p.Ceiling(games)
	committed := Committed(games, userID)
	return domain.ConfidenceBudget{
		Date:      date,
		Ceiling:   ceiling,
		Committed: committed,
		Remaining: max(0, ceiling-committed),
	}
}

// CheckDelta validates changing a pick's weight from current to requested.
// current is zero when the user has no pick on the game yet.
func CheckDelta(remaining, requested, current int) error {
	delta := requested - current
	if remaining-delta < 0 {
		return ErrInsufficientConfidence{Remaining: remaining, Requested: delta}
	}
	return nil
}

// ErrInsufficientConfidence reports a pick that would overspend the day's budget
type ErrInsufficientConfidence struct {
	Remaining int
	// Requested is the additional confidence the change needs
	Requested int
}

func (e ErrInsufficientConfidence) Error() string {
	return fmt.Sprintf(ErrFmtInsufficientConfidence, domain.ErrMsgInsufficientConfidence, e.Remaining, e.Requested)
}

// Is allows errors.Is() to match both ErrInsufficientConfidence and domain.ErrInsufficientConfidence
func (e ErrInsufficientConfidence) Is(target error) bool {
	if target == domain.ErrInsufficientConfidence {
		return true
	}
	_, ok := target.(ErrInsufficientConfidence)
	return ok
}
