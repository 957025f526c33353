package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtside/pickem/internal/domain"
)

// LeaderboardRepository implements repository.Leaderboard and repository.Teams for PostgreSQL
type LeaderboardRepository struct {
	db *pgxpool.Pool
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// GetUserPicksSummary returns season totals and best/worst team accuracy per user
func (r *LeaderboardRepository) GetUserPicksSummary(ctx context.Context, season int, postseason bool) ([]domain.UserPicksSummary, error) {
	query := `
		WITH totals AS (
			SELECT user_id,
				SUM(correct_picks)::int AS correct_picks,
				SUM(total_picks)::int AS total_picks
			FROM user_daily_records
			WHERE season = $1 AND postseason = $2
			GROUP BY user_id
		),
		team_acc AS (
			SELECT user_id, team_id, accuracy
			FROM user_team_accuracy
			WHERE season = $1 AND postseason = $2
		),
		bounds AS (
			SELECT user_id, MAX(accuracy) AS best, MIN(accuracy) AS worst
			FROM team_acc
			GROUP BY user_id
		)
		SELECT t.user_id::text,
			COALESCE(pr.full_name, ''),
			COALESCE(pr.avatar_url, ''),
			t.correct_picks,
			t.total_picks,
			CASE WHEN t.total_picks > 0
				THEN ROUND(100.0 * t.correct_picks / t.total_picks, 2)::float8
				ELSE 0 END,
			COALESCE((SELECT array_agg(ta.team_id ORDER BY ta.team_id) FROM team_acc ta
				WHERE ta.user_id = t.user_id AND ta.accuracy = b.best), '{}'),
			COALESCE(b.best, 0),
			COALESCE((SELECT array_agg(ta.team_id ORDER BY ta.team_id) FROM team_acc ta
				WHERE ta.user_id = t.user_id AND ta.accuracy = b.worst), '{}'),
			COALESCE(b.worst, 0)
		FROM totals t
		LEFT JOIN profiles pr ON pr.id = t.user_id
		LEFT JOIN bounds b ON b.user_id = t.user_id
		ORDER BY t.user_id
	`

	rows, err := r.db.Query(ctx, query, season, postseason)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySummary, err)
	}
	defer rows.Close()

	var summaries []domain.UserPicksSummary
	for rows.Next() {
		var s domain.UserPicksSummary
		err := rows.Scan(
			&s.ID,
			&s.FullName,
			&s.AvatarURL,
			&s.CorrectPicks,
			&s.TotalPicks,
			&s.Accuracy,
			&s.BestTeamIDs,
			&s.BestTeamAccuracy,
			&s.WorstTeamIDs,
			&s.WorstTeamAccuracy,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanSummary, err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}

	return summaries, nil
}

// GetUserPicksPastRecord returns each user's per game day accuracy in date order
func (r *LeaderboardRepository) GetUserPicksPastRecord(ctx context.Context, season int, postseason bool) ([]domain.PastRecord, error) {
	query := `
		SELECT user_id::text, game_date::text, accuracy, correct_picks::int, total_picks::int
		FROM user_daily_records
		WHERE season = $1 AND postseason = $2
		ORDER BY game_date, user_id
	`

	rows, err := r.db.Query(ctx, query, season, postseason)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPastRecord, err)
	}
	defer rows.Close()

	var records []domain.PastRecord
	for rows.Next() {
		var rec domain.PastRecord
		if err := rows.Scan(&rec.UserID, &rec.GameDate, &rec.Accuracy, &rec.CorrectPicks, &rec.TotalPicks); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanPastRecord, err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}

	return records, nil
}

// GetLeaderboardStats returns confidence weighted score totals per user
func (r *LeaderboardRepository) GetLeaderboardStats(ctx context.Context, season int, postseason bool) ([]domain.ScoreStats, error) {
	query := `
		SELECT d.user_id::text,
			COALESCE(pr.full_name, ''),
			COALESCE(pr.avatar_url, ''),
			SUM(d.points)::int AS total_score,
			SUM(d.correct_picks)::int AS correct_picks,
			SUM(d.total_picks)::int AS total_picks,
			ROUND(100.0 * SUM(d.correct_picks) / NULLIF(SUM(d.total_picks), 0), 2)::float8
		FROM user_daily_records d
		LEFT JOIN profiles pr ON pr.id = d.user_id
		WHERE d.season = $1 AND d.postseason = $2
		GROUP BY d.user_id, pr.full_name, pr.avatar_url
		ORDER BY total_score DESC, correct_picks DESC
	`

	rows, err := r.db.Query(ctx, query, season, postseason)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryScoreStats, err)
	}
	defer rows.Close()

	var stats []domain.ScoreStats
	for rows.Next() {
		var s domain.ScoreStats
		var accuracy *float64
		err := rows.Scan(
			&s.UserID,
			&s.FullName,
			&s.AvatarURL,
			&s.TotalScore,
			&s.CorrectPicks,
			&s.TotalPicks,
			&accuracy,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanScoreStats, err)
		}
		if accuracy != nil {
			s.Accuracy = *accuracy
		}
		stats = append(stats, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}

	return stats, nil
}

// ListTeams returns the team catalog ordered by name
func (r *LeaderboardRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, abbreviation FROM teams ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTeams, err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Abbreviation); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanTeam, err)
		}
		teams = append(teams, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}

	return teams, nil
}
