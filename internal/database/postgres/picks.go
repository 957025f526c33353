package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtside/pickem/internal/domain"
)

// PickRepository implements repository.Picks for PostgreSQL
type PickRepository struct {
	db *pgxpool.Pool
}

// NewPickRepository creates a new PickRepository
func NewPickRepository(db *pgxpool.Pool) *PickRepository {
	return &PickRepository{db: db}
}

const pickColumns = `id, game_id, user_id::text, picked_team, confidence_score, correct`

// UpsertPick inserts a new pick or updates the user's existing one by id
func (r *PickRepository) UpsertPick(ctx context.Context, pick domain.PickUpsert) (*domain.Pick, error) {
	userID, err := parseUserUUID(pick.UserID)
	if err != nil {
		return nil, err
	}

	confidence := pick.ConfidenceScore
	if confidence <= 0 {
		confidence = domain.DefaultConfidenceScore
	}

	var row pgx.Row
	if pick.ID != 0 {
		row = r.db.QueryRow(ctx, `
			UPDATE picks
			SET picked_team = $3, confidence_score = $4, correct = $5, updated_at = NOW()
			WHERE id = $1 AND user_id = $2 AND game_id = $6
			RETURNING `+pickColumns,
			pick.ID, userID, pick.PickedTeam, confidence, pick.Correct, pick.GameID)
	} else {
		row = r.db.QueryRow(ctx, `
			INSERT INTO picks (game_id, user_id, picked_team, confidence_score, correct)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (game_id, user_id) DO UPDATE SET
				picked_team = EXCLUDED.picked_team,
				confidence_score = EXCLUDED.confidence_score,
				correct = EXCLUDED.correct,
				updated_at = NOW()
			RETURNING `+pickColumns,
			pick.GameID, userID, pick.PickedTeam, confidence, pick.Correct)
	}

	var p domain.Pick
	err = row.Scan(&p.ID, &p.GameID, &p.UserID, &p.PickedTeam, &p.ConfidenceScore, &p.Correct)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: pick %d", domain.ErrPickNotFound, pick.ID)
	}
	if isPgError(err, PgErrorCodeForeignKeyViolation) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPickReferencesUnknown)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertPick, err)
	}

	return &p, nil
}

// DeletePick removes a pick only when it belongs to userID
func (r *PickRepository) DeletePick(ctx context.Context, id int64, userID string) (int64, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM picks WHERE id = $1 AND user_id = $2`, id, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeletePick, err)
	}

	return tag.RowsAffected(), nil
}
