package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtside/pickem/internal/domain"
)

// GameRepository implements repository.Games and repository.DailyResults for PostgreSQL
type GameRepository struct {
	db *pgxpool.Pool
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{db: db}
}

// finalResultsCTE expands each final game of a season into one row per team.
// Ties resolve to the away side.
const finalResultsCTE = `
	final_results AS (
		SELECT id, date, home_team_id AS team_id,
			home_team_score > away_team_score AS won
		FROM games
		WHERE season = $%[1]d AND status = '` + statusFinal + `'
		UNION ALL
		SELECT id, date, away_team_id AS team_id,
			away_team_score >= home_team_score AS won
		FROM games
		WHERE season = $%[1]d AND status = '` + statusFinal + `'
	)`

// ListGamesByDate returns the day's games with team records and every pick
func (r *GameRepository) ListGamesByDate(ctx context.Context, date string, season int) ([]domain.GameRow, error) {
	query := `
		WITH ` + fmt.Sprintf(finalResultsCTE, 2) + `,
		records AS (
			SELECT team_id,
				COUNT(*) FILTER (WHERE won) AS wins,
				COUNT(*) FILTER (WHERE NOT won) AS losses
			FROM final_results
			GROUP BY team_id
		)
		SELECT g.id, g.date::text, g.season, g.postseason, g.status,
			g.home_team_id, g.away_team_id, ht.abbreviation, at.abbreviation,
			hr.wins, hr.losses, ar.wins, ar.losses,
			g.home_team_score, g.away_team_score,
			COALESCE((
				SELECT json_agg(json_build_object(
					'id', p.id,
					'game_id', p.game_id,
					'user_id', p.user_id,
					'picked_team', p.picked_team,
					'confidence_score', p.confidence_score,
					'correct', p.correct
				) ORDER BY p.id)
				FROM picks p
				WHERE p.game_id = g.id
			), '[]'::json)
		FROM games g
		JOIN teams ht ON ht.id = g.home_team_id
		JOIN teams at ON at.id = g.away_team_id
		LEFT JOIN records hr ON hr.team_id = g.home_team_id
		LEFT JOIN records ar ON ar.team_id = g.away_team_id
		WHERE g.date = $1::date
		ORDER BY g.id
	`

	rows, err := r.db.Query(ctx, query, date, season)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryGames, err)
	}
	defer rows.Close()

	var games []domain.GameRow
	for rows.Next() {
		var g domain.GameRow
		var picksJSON []byte
		err := rows.Scan(
			&g.ID,
			&g.Date,
			&g.Season,
			&g.Postseason,
			&g.Status,
			&g.HomeTeamID,
			&g.AwayTeamID,
			&g.HomeTeamAbbreviation,
			&g.AwayTeamAbbreviation,
			&g.HomeTeamWins,
			&g.HomeTeamLosses,
			&g.AwayTeamWins,
			&g.AwayTeamLosses,
			&g.HomeTeamScore,
			&g.AwayTeamScore,
			&picksJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanGame, err)
		}
		if err := json.Unmarshal(picksJSON, &g.Picks); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodePicks, err)
		}
		games = append(games, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}

	return games, nil
}

// ListLast5ResultsPerTeam returns up to five results per team, most recent first
func (r *GameRepository) ListLast5ResultsPerTeam(ctx context.Context, season int) ([]domain.TeamResult, error) {
	query := `
		WITH ` + fmt.Sprintf(finalResultsCTE, 1) + `,
		ranked AS (
			SELECT team_id,
				CASE WHEN won THEN '` + domain.ResultWin + `' ELSE '` + domain.ResultLoss + `' END AS result,
				ROW_NUMBER() OVER (PARTITION BY team_id ORDER BY date DESC, id DESC) AS rn
			FROM final_results
		)
		SELECT team_id, result
		FROM ranked
		WHERE rn <= $2
		ORDER BY team_id, rn
	`

	rows, err := r.db.Query(ctx, query, season, domain.RecordLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTeamResults, err)
	}
	defer rows.Close()

	var results []domain.TeamResult
	for rows.Next() {
		var tr domain.TeamResult
		if err := rows.Scan(&tr.TeamID, &tr.Result); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanTeamResult, err)
		}
		results = append(results, tr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}

	return results, nil
}

// UpsertGames writes schedule feed games and their teams in one transaction
func (r *GameRepository) UpsertGames(ctx context.Context, games []domain.ScheduledGame) (int, error) {
	if len(games) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	teamQuery := `
		INSERT INTO teams (id, name, abbreviation)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, abbreviation = EXCLUDED.abbreviation
	`
	gameQuery := `
		INSERT INTO games (id, date, season, postseason, status, period, time,
			home_team_id, away_team_id, home_team_score, away_team_score)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			date = EXCLUDED.date,
			season = EXCLUDED.season,
			postseason = EXCLUDED.postseason,
			status = EXCLUDED.status,
			period = EXCLUDED.period,
			time = EXCLUDED.time,
			home_team_id = EXCLUDED.home_team_id,
			away_team_id = EXCLUDED.away_team_id,
			home_team_score = EXCLUDED.home_team_score,
			away_team_score = EXCLUDED.away_team_score,
			updated_at = NOW()
	`

	batch := &pgx.Batch{}
	seenTeams := make(map[int64]bool)
	for _, g := range games {
		for _, t := range []domain.Team{g.HomeTeam, g.AwayTeam} {
			if seenTeams[t.ID] {
				continue
			}
			seenTeams[t.ID] = true
			batch.Queue(teamQuery, t.ID, t.Name, t.Abbreviation)
		}
	}
	for _, g := range games {
		batch.Queue(gameQuery,
			g.ID, g.Date, g.Season, g.Postseason, g.Status, g.Period, g.Time,
			g.HomeTeam.ID, g.AwayTeam.ID, g.HomeTeamScore, g.AwayTeamScore)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertGames, err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertGames, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}

	return len(games), nil
}

// HasFinalGameOn reports whether any game on date has concluded
func (r *GameRepository) HasFinalGameOn(ctx context.Context, date string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM games WHERE date = $1::date AND status = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, date, statusFinal).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckFinalGames, err)
	}
	return exists, nil
}

// ListGameIDsByDate returns the ids of every game on date
func (r *GameRepository) ListGameIDsByDate(ctx context.Context, date string) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM games WHERE date = $1::date ORDER BY id`, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryGameIDs, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryGameIDs, err)
	}
	return ids, nil
}

// ListPicksForGames returns every pick on the given games with the picker's profile
func (r *GameRepository) ListPicksForGames(ctx context.Context, gameIDs []int64) ([]domain.DayPick, error) {
	if len(gameIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT p.user_id::text, p.confidence_score, p.correct,
			pr.full_name, pr.username, pr.avatar_url
		FROM picks p
		LEFT JOIN profiles pr ON pr.id = p.user_id
		WHERE p.game_id = ANY($1)
		ORDER BY p.id
	`

	rows, err := r.db.Query(ctx, query, gameIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDayPicks, err)
	}
	defer rows.Close()

	var picks []domain.DayPick
	for rows.Next() {
		var p domain.DayPick
		err := rows.Scan(
			&p.UserID,
			&p.ConfidenceScore,
			&p.Correct,
			&p.FullName,
			&p.Username,
			&p.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanDayPick, err)
		}
		picks = append(picks, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}

	return picks, nil
}
