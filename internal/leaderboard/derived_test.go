package leaderboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtside/pickem/internal/domain"
)

func entryWith(accuracies ...float64) domain.LeaderboardEntry {
	var series domain.DailyAccuracySeries
	for i, a := range accuracies {
		series = series.Set(fmt.Sprintf("2025-01-%02d", i+1), a)
	}
	return domain.LeaderboardEntry{LatestDailyAccuracy: series}
}

func TestWinStreak(t *testing.T) {
	tests := []struct {
		name       string
		accuracies []float64
		want       int
	}{
		{"no data", nil, 0},
		{"all wins", []float64{50, 75, 100}, 3},
		{"broken by latest day", []float64{100, 100, 49.9}, 0},
		{"trailing run", []float64{100, 20, 60, 50}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WinStreak(entryWith(tt.accuracies...)))
		})
	}
}

func TestWinStreak_UsesReceivedOrder(t *testing.T) {
	// Dates arrive out of calendar order; the series is not re-sorted
	var series domain.DailyAccuracySeries
	series = series.Set("2025-01-05", 10)
	series = series.Set("2025-01-01", 90)

	assert.Equal(t, 1, WinStreak(domain.LeaderboardEntry{LatestDailyAccuracy: series}))
}

func TestConsistencyScore(t *testing.T) {
	assert.Equal(t, 100.0, ConsistencyScore(entryWith(100, 100, 100)))
	assert.Equal(t, 0.0, ConsistencyScore(entryWith(100, 100)))
	assert.Equal(t, 0.0, ConsistencyScore(entryWith()))

	// Population stddev of [0, 100] repeated is 50, so the score clamps to 0
	assert.Equal(t, 0.0, ConsistencyScore(entryWith(0, 100, 0, 100)))

	// [40, 50, 60]: stddev = sqrt(200/3) ≈ 8.165
	assert.InDelta(t, 83.67, ConsistencyScore(entryWith(40, 50, 60)), 0.01)
}

func TestBestDayAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, BestDayAccuracy(entryWith()))
	assert.Equal(t, 87.5, BestDayAccuracy(entryWith(40, 87.5, 60)))
}

func TestAveragePointsPerPick(t *testing.T) {
	assert.Equal(t, 0.0, AveragePointsPerPick(domain.LeaderboardEntry{Points: 4}))
	assert.Equal(t, 0.67, AveragePointsPerPick(domain.LeaderboardEntry{Points: 2, TotalPicks: 3}))
	assert.Equal(t, 1.5, AveragePointsPerPick(domain.LeaderboardEntry{Points: 9, TotalPicks: 6}))
}

func TestPerformanceTrend(t *testing.T) {
	tests := []struct {
		name       string
		accuracies []float64
		want       string
	}{
		{"improving", []float64{40, 40, 40, 80, 80, 80}, domain.TrendImproving},
		{"declining", []float64{80, 80, 80, 40, 40, 40}, domain.TrendDeclining},
		{"stable within threshold", []float64{60, 60, 60, 64, 64, 64}, domain.TrendStable},
		{"too few days", []float64{10, 90}, domain.TrendInsufficientData},
		{"no earlier window", []float64{10, 50, 90}, domain.TrendInsufficientData},
		{"partial earlier window", []float64{20, 80, 80, 80}, domain.TrendImproving},
		{"only last six count", []float64{100, 100, 100, 40, 40, 40, 40, 40, 40}, domain.TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PerformanceTrend(entryWith(tt.accuracies...)))
		})
	}
}

func TestDerive(t *testing.T) {
	e := entryWith(40, 40, 40, 80, 80, 80)
	e.Points = 12
	e.TotalPicks = 20

	d := Derive(e)
	assert.Equal(t, 3, d.WinStreak)
	assert.Equal(t, 60.0, d.ConsistencyScore)
	assert.Equal(t, 80.0, d.BestDayAccuracy)
	assert.Equal(t, 0.6, d.AveragePointsPerPick)
	assert.Equal(t, domain.TrendImproving, d.PerformanceTrend)
}
