// Package picks validates and persists pick submissions and cancellations
// against the day's confidence budget.
package picks

import (
	"context"
	"fmt"
	"time"

	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/concurrency"
	"github.com/courtside/pickem/internal/confidence"
	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/games"
	"github.com/courtside/pickem/internal/logger"
	"github.com/courtside/pickem/internal/metrics"
	"github.com/courtside/pickem/internal/repository"
)

// Service defines the interface for pick operations
type Service interface {
	SubmitPick(ctx context.Context, userID string, req domain.SubmitPickRequest) (*domain.Pick, error)
	// CancelPick removes userID's pick on gameID. Cancelling a game without a
	// pick is a no-op.
	CancelPick(ctx context.Context, userID, date string, gameID int64) error
	Budget(ctx context.Context, userID, date string) (*domain.ConfidenceBudget, error)
}

// Options configures pick rules
type Options struct {
	// AllowPastVotes accepts picks on games that are no longer upcoming, as
	// long as their scheduled start has not passed
	AllowPastVotes bool
	Policy         confidence.Policy
}

type service struct {
	repo  repository.Picks
	games games.Service
	locks *concurrency.LockManager
	clock clock.Clock
	opts  Options
}

// NewService creates a new pick service
func NewService(repo repository.Picks, gamesSvc games.Service, locks *concurrency.LockManager, clk clock.Clock, opts Options) Service {
	return &service{
		repo:  repo,
		games: gamesSvc,
		locks: locks,
		clock: clk,
		opts:  opts,
	}
}

func (s *service) SubmitPick(ctx context.Context, userID string, req domain.SubmitPickRequest) (*domain.Pick, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Debug(LogMsgNoUser, "game_id", req.GameID)
		return nil, reject(ReasonUnauthenticated, domain.ErrUnauthenticated)
	}

	score := req.ConfidenceScore
	if score == 0 {
		score = domain.DefaultConfidenceScore
	}
	if score < 1 {
		return nil, reject(ReasonInvalidInput, fmt.Errorf("%w: confidence score must be at least 1", domain.ErrInvalidInput))
	}

	// Checking the budget and writing the pick must not interleave with
	// another change to the same user's day
	unlock := s.locks.Lock(concurrency.UserDayKey(userID, req.Date))
	defer unlock()

	roster, game, err := s.findGame(ctx, req.Date, req.GameID)
	if err != nil {
		return nil, err
	}

	if !game.HasTeam(req.TeamID) {
		return nil, reject(ReasonInvalidTeam, fmt.Errorf("%w: team %d", domain.ErrInvalidTeam, req.TeamID))
	}

	now := s.clock.Now()
	if err := s.checkPickable(game, now); err != nil {
		log.Info(LogMsgPickRejected, "game_id", game.ID, "error", err)
		return nil, err
	}

	existing, hasPick := game.Picks[userID]
	current := 0
	if hasPick {
		current = existing.Weight()
	}
	remaining := s.opts.Policy.Remaining(roster, userID)
	if err := confidence.CheckDelta(remaining, score, current); err != nil {
		log.Info(LogMsgPickRejected, "game_id", game.ID, "error", err)
		return nil, reject(ReasonNoConfidence, err)
	}

	upsert := domain.PickUpsert{
		GameID:          game.ID,
		UserID:          userID,
		PickedTeam:      req.TeamID,
		ConfidenceScore: score,
	}
	if hasPick {
		upsert.ID = existing.ID
	}
	if s.opts.AllowPastVotes && game.IsFinal() {
		correct := req.TeamID == game.WinnerID()
		upsert.Correct = &correct
	}

	stored, err := s.repo.UpsertPick(ctx, upsert)
	if err != nil {
		log.Error(LogMsgUpsertFailed, "error", err, "game_id", game.ID)
		return nil, &domain.PersistenceError{Op: ErrMsgSavePick, Err: err}
	}

	s.games.ApplyPick(req.Date, *stored)

	kind := metrics.KindCreated
	if hasPick {
		kind = metrics.KindUpdated
	}
	metrics.PicksSubmitted.WithLabelValues(kind).Inc()
	log.Info(LogMsgPickSaved, "game_id", game.ID, "pick_id", stored.ID, "confidence", stored.ConfidenceScore, "kind", kind)

	return stored, nil
}

func (s *service) CancelPick(ctx context.Context, userID, date string, gameID int64) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Debug(LogMsgNoUser, "game_id", gameID)
		return reject(ReasonUnauthenticated, domain.ErrUnauthenticated)
	}

	unlock := s.locks.Lock(concurrency.UserDayKey(userID, date))
	defer unlock()

	_, game, err := s.findGame(ctx, date, gameID)
	if err != nil {
		return err
	}

	if err := s.checkPickable(game, s.clock.Now()); err != nil {
		log.Info(LogMsgPickRejected, "game_id", game.ID, "error", err)
		return err
	}

	existing, ok := game.Picks[userID]
	if !ok {
		log.Debug(LogMsgCancelNoop, "game_id", game.ID)
		return nil
	}

	deleted, err := s.repo.DeletePick(ctx, existing.ID, userID)
	if err != nil {
		log.Error(LogMsgDeleteFailed, "error", err, "pick_id", existing.ID)
		return &domain.PersistenceError{Op: ErrMsgDeletePick, Err: err}
	}
	if deleted == 0 {
		return reject(ReasonNotFound, fmt.Errorf("%w: pick %d", domain.ErrPickNotFound, existing.ID))
	}

	s.games.RemovePick(date, game.ID, userID)
	metrics.PicksCancelled.Inc()
	log.Info(LogMsgPickCancelled, "game_id", game.ID, "pick_id", existing.ID)
	return nil
}

func (s *service) Budget(ctx context.Context, userID, date string) (*domain.ConfidenceBudget, error) {
	roster, err := s.games.GamesForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	budget := s.opts.Policy.Compute(date, roster, userID)
	return &budget, nil
}

func (s *service) findGame(ctx context.Context, date string, gameID int64) ([]*domain.Game, *domain.Game, error) {
	roster, err := s.games.GamesForDate(ctx, date)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgLoadGamesFailed, "error", err, "date", date)
		return nil, nil, err
	}
	for _, g := range roster {
		if g.ID == gameID {
			return roster, g, nil
		}
	}
	return nil, nil, reject(ReasonGameNotFound, fmt.Errorf("%w: %d on %s", domain.ErrGameNotFound, gameID, date))
}

// checkPickable enforces the hard start-time lock, then the pick window.
// A game whose start has passed is always locked, even when past votes are
// allowed.
func (s *service) checkPickable(game *domain.Game, now time.Time) error {
	if game.StartedBefore(now) {
		return reject(ReasonAlreadyStarted, domain.ErrGameAlreadyStarted)
	}
	if !s.opts.AllowPastVotes && game.State(now) != domain.GameStateNotStarted {
		return reject(ReasonWindowClosed, domain.ErrPickWindowClosed)
	}
	return nil
}

func reject(reason string, err error) error {
	metrics.PicksRejected.WithLabelValues(reason).Inc()
	return err
}
