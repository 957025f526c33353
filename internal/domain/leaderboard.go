package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// DailyAccuracy is one game day's accuracy percentage for a user
type DailyAccuracy struct {
	Date     string
	Accuracy float64
}

// DailyAccuracySeries maps game date to accuracy while keeping the order in
// which days were received. Derived metrics read values positionally.
type DailyAccuracySeries []DailyAccuracy

// Set assigns the accuracy for date. An existing date keeps its position.
func (s DailyAccuracySeries) Set(date string, accuracy float64) DailyAccuracySeries {
	for i := range s {
		if s[i].Date == date {
			s[i].Accuracy = accuracy
			return s
		}
	}
	return append(s, DailyAccuracy{Date: date, Accuracy: accuracy})
}

// Get returns the accuracy for date
func (s DailyAccuracySeries) Get(date string) (float64, bool) {
	for _, d := range s {
		if d.Date == date {
			return d.Accuracy, true
		}
	}
	return 0, false
}

// Values returns the accuracies in series order
func (s DailyAccuracySeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, d := range s {
		values[i] = d.Accuracy
	}
	return values
}

// MarshalJSON encodes the series as a JSON object in series order
func (s DailyAccuracySeries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(d.Date)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(d.Accuracy, 'f', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the series, preserving key order
func (s *DailyAccuracySeries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	var out DailyAccuracySeries
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		date, _ := tok.(string)
		var acc float64
		if err := dec.Decode(&acc); err != nil {
			return err
		}
		out = out.Set(date, acc)
	}
	*s = out
	return nil
}

// UserPicksSummary is the per-user season aggregate returned by the store
type UserPicksSummary struct {
	ID                string  `json:"id"`
	FullName          string  `json:"full_name"`
	AvatarURL         string  `json:"avatar_url"`
	CorrectPicks      int     `json:"correct_picks"`
	TotalPicks        int     `json:"total_picks"`
	Accuracy          float64 `json:"accuracy"`
	BestTeamIDs       []int64 `json:"best_team_ids"`
	BestTeamAccuracy  float64 `json:"best_team_accuracy"`
	WorstTeamIDs      []int64 `json:"worst_team_ids"`
	WorstTeamAccuracy float64 `json:"worst_team_accuracy"`

	// PastRecords is joined in from the per-day history
	PastRecords []PastRecord `json:"picks"`
}

// PastRecord is one user's outcome on one game day
type PastRecord struct {
	UserID       string  `json:"user_id"`
	GameDate     string  `json:"game_date"`
	Accuracy     float64 `json:"accuracy"`
	CorrectPicks int     `json:"correct_picks"`
	TotalPicks   int     `json:"total_picks"`
}

// LeaderboardEntry is a ranked row of the season standings
type LeaderboardEntry struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	AvatarURL           string              `json:"avatar_url"`
	Points              int                 `json:"points"`
	TotalPicks          int                 `json:"totalPicks"`
	LatestDailyAccuracy DailyAccuracySeries `json:"latestDailyAccuracy"`
	Accuracy            float64             `json:"accuracy"`
	BestTeamIDs         []int64             `json:"best_team_ids"`
	BestTeamAccuracy    float64             `json:"best_team_accuracy"`
	WorstTeamIDs        []int64             `json:"worst_team_ids"`
	WorstTeamAccuracy   float64             `json:"worst_team_accuracy"`
}

// DerivedStats are metrics computed from a leaderboard entry on demand
type DerivedStats struct {
	WinStreak            int     `json:"win_streak"`
	ConsistencyScore     float64 `json:"consistency_score"`
	BestDayAccuracy      float64 `json:"best_day_accuracy"`
	AveragePointsPerPick float64 `json:"average_points_per_pick"`
	PerformanceTrend     string  `json:"performance_trend"`
}

// RankedEntry pairs a standings row with its derived metrics
type RankedEntry struct {
	Rank int `json:"rank"`
	LeaderboardEntry
	Derived DerivedStats `json:"derived"`
}

// Standings is a cached leaderboard along with the raw rows it was built from
type Standings struct {
	Entries []LeaderboardEntry
	Users   []UserPicksSummary
}

// YesterdayReport is a user's result on the previous game day
type YesterdayReport struct {
	Date     string  `json:"date"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

// ScoreStats is a per-user scoring aggregate for a season
type ScoreStats struct {
	UserID       string  `json:"user_id"`
	FullName     string  `json:"full_name"`
	AvatarURL    string  `json:"avatar_url"`
	TotalScore   int     `json:"total_score"`
	CorrectPicks int     `json:"correct_picks"`
	TotalPicks   int     `json:"total_picks"`
	Accuracy     float64 `json:"accuracy"`
}

// AggregatedScoreStats summarizes every player's score stats
type AggregatedScoreStats struct {
	TotalPlayers int `json:"totalPlayers"`
	TotalPicks   int `json:"totalPicks"`
	TotalCorrect int `json:"totalCorrect"`
	AvgAccuracy  int `json:"avgAccuracy"`
	TotalScore   int `json:"totalScore"`
}

// Team is a row of the team catalog
type Team struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}
