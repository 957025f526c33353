package dailyresults

import (
	"sort"

	"github.com/courtside/pickem/internal/domain"
)

// Aggregate folds a day's picks into one result per user, in the order users
// first appear. Only correct picks earn their confidence weight as points.
func Aggregate(picks []domain.DayPick) []domain.DailyResult {
	index := make(map[string]int)
	var results []domain.DailyResult

	for _, p := range picks {
		i, ok := index[p.UserID]
		if !ok {
			i = len(results)
			index[p.UserID] = i
			results = append(results, newResult(p))
		}

		r := &results[i]
		r.TotalPicks++
		if p.Correct != nil && *p.Correct {
			r.CorrectPicks++
			r.Points += domain.Pick{ConfidenceScore: p.ConfidenceScore}.Weight()
		}
	}

	for i := range results {
		if results[i].TotalPicks > 0 {
			results[i].Accuracy = float64(results[i].CorrectPicks) / float64(results[i].TotalPicks) * 100
		}
	}
	return results
}

func newResult(p domain.DayPick) domain.DailyResult {
	r := domain.DailyResult{UserID: p.UserID, FullName: domain.UnknownPlayerName}
	if p.FullName != nil && *p.FullName != "" {
		r.FullName = *p.FullName
	}
	if p.Username != nil {
		r.Username = *p.Username
	}
	if p.AvatarURL != nil {
		r.AvatarURL = *p.AvatarURL
	}
	return r
}

// SortResults orders by points, then correct picks, then accuracy, all
// descending
func SortResults(results []domain.DailyResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.CorrectPicks != b.CorrectPicks {
			return a.CorrectPicks > b.CorrectPicks
		}
		return a.Accuracy > b.Accuracy
	})
}

// UserRank returns the 1-based position of userID in ranked results
func UserRank(results []domain.DailyResult, userID string) (int, bool) {
	for i, r := range results {
		if r.UserID == userID {
			return i + 1, true
		}
	}
	return 0, false
}
