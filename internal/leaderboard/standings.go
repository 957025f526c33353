package leaderboard

import (
	"math"
	"sort"

	"github.com/courtside/pickem/internal/domain"
)

// buildStandings joins each user's past records into their summary,
// projects the summaries into entries and sorts them by rank
func buildStandings(users []domain.UserPicksSummary, records []domain.PastRecord) *domain.Standings {
	byUser := make(map[string][]domain.PastRecord, len(users))
	for _, r := range records {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	joined := make([]domain.UserPicksSummary, len(users))
	entries := make([]domain.LeaderboardEntry, len(users))
	for i, u := range users {
		u.PastRecords = byUser[u.ID]
		if u.PastRecords == nil {
			u.PastRecords = []domain.PastRecord{}
		}
		joined[i] = u
		entries[i] = project(u)
	}

	SortEntries(entries)
	return &domain.Standings{Entries: entries, Users: joined}
}

func project(u domain.UserPicksSummary) domain.LeaderboardEntry {
	var series domain.DailyAccuracySeries
	for _, r := range u.PastRecords {
		series = series.Set(r.GameDate, r.Accuracy)
	}
	return domain.LeaderboardEntry{
		ID:                  u.ID,
		Name:                u.FullName,
		AvatarURL:           u.AvatarURL,
		Points:              u.CorrectPicks,
		TotalPicks:          u.TotalPicks,
		LatestDailyAccuracy: series,
		Accuracy:            u.Accuracy,
		BestTeamIDs:         u.BestTeamIDs,
		BestTeamAccuracy:    u.BestTeamAccuracy,
		WorstTeamIDs:        u.WorstTeamIDs,
		WorstTeamAccuracy:   u.WorstTeamAccuracy,
	}
}

// SortEntries orders by points descending, then by total picks ascending
func SortEntries(entries []domain.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].TotalPicks < entries[j].TotalPicks
	})
}

// Rank attaches 1-based positions and derived metrics to sorted entries
func Rank(entries []domain.LeaderboardEntry) []domain.RankedEntry {
	ranked := make([]domain.RankedEntry, len(entries))
	for i, e := range entries {
		ranked[i] = domain.RankedEntry{
			Rank:             i + 1,
			LeaderboardEntry: e,
			Derived:          Derive(e),
		}
	}
	return ranked
}

// SortScoreStats orders by total score descending, then correct picks descending
func SortScoreStats(stats []domain.ScoreStats) {
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].TotalScore != stats[j].TotalScore {
			return stats[i].TotalScore > stats[j].TotalScore
		}
		return stats[i].CorrectPicks > stats[j].CorrectPicks
	})
}

// Aggregate summarizes score stats across every player
func Aggregate(stats []domain.ScoreStats) domain.AggregatedScoreStats {
	if len(stats) == 0 {
		return domain.AggregatedScoreStats{}
	}

	var agg domain.AggregatedScoreStats
	accuracy := 0.0
	for _, s := range stats {
		agg.TotalPicks += s.TotalPicks
		agg.TotalCorrect += s.CorrectPicks
		agg.TotalScore += s.TotalScore
		accuracy += s.Accuracy
	}
	agg.TotalPlayers = len(stats)
	agg.AvgAccuracy = int(math.Round(accuracy / float64(len(stats))))
	return agg
}
