package leaderboard

import (
	"math"

	"github.com/courtside/pickem/internal/domain"
)

// WinStreak counts the trailing run of days at or above the streak
// threshold, walking the series from its last entry backwards
func WinStreak(e domain.LeaderboardEntry) int {
	values := e.LatestDailyAccuracy.Values()
	streak := 0
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] < domain.StreakAccuracyThreshold {
			break
		}
		streak++
	}
	return streak
}

// ConsistencyScore is 100 minus twice the population standard deviation of
// daily accuracy, clamped to [0, 100]. Fewer than three days scores 0.
func ConsistencyScore(e domain.LeaderboardEntry) float64 {
	values := e.LatestDailyAccuracy.Values()
	if len(values) < domain.MinDaysForDerivedStats {
		return 0
	}

	m := mean(values)
	variance := 0.0
	for _, v := range values {
		variance += (v - m) * (v - m)
	}
	variance /= float64(len(values))

	return math.Max(0, math.Min(100, 100-2*math.Sqrt(variance)))
}

// BestDayAccuracy returns the highest daily accuracy, or 0 without data
func BestDayAccuracy(e domain.LeaderboardEntry) float64 {
	values := e.LatestDailyAccuracy.Values()
	if len(values) == 0 {
		return 0
	}
	best := values[0]
	for _, v := range values[1:] {
		best = math.Max(best, v)
	}
	return best
}

// AveragePointsPerPick returns points per pick rounded to two decimals
func AveragePointsPerPick(e domain.LeaderboardEntry) float64 {
	if e.TotalPicks == 0 {
		return 0
	}
	return math.Round(float64(e.Points)/float64(e.TotalPicks)*100) / 100
}

// PerformanceTrend compares the mean of the last three days against the
// three days before them, by position in the series
func PerformanceTrend(e domain.LeaderboardEntry) string {
	values := e.LatestDailyAccuracy.Values()
	n := len(values)
	if n < domain.MinDaysForDerivedStats {
		return domain.TrendInsufficientData
	}

	recent := values[n-domain.TrendWindow:]
	earlier := values[max(0, n-2*domain.TrendWindow) : n-domain.TrendWindow]
	if len(earlier) == 0 {
		return domain.TrendInsufficientData
	}

	diff := mean(recent) - mean(earlier)
	switch {
	case diff > domain.TrendThreshold:
		return domain.TrendImproving
	case diff < -domain.TrendThreshold:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

// Derive computes every derived metric for an entry
func Derive(e domain.LeaderboardEntry) domain.DerivedStats {
	return domain.DerivedStats{
		WinStreak:            WinStreak(e),
		ConsistencyScore:     ConsistencyScore(e),
		BestDayAccuracy:      BestDayAccuracy(e),
		AveragePointsPerPick: AveragePointsPerPick(e),
		PerformanceTrend:     PerformanceTrend(e),
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
