// Package games serves the shaped game roster for a calendar date.
//
// Rosters are memoized per date for the life of the process. Pick
// mutations rewrite a single game in the cached roster instead of
// refetching the day.
package games

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/courtside/pickem/internal/cache"
	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/injury"
	"github.com/courtside/pickem/internal/logger"
	"github.com/courtside/pickem/internal/repository"
	"github.com/courtside/pickem/internal/season"
)

// Service defines the interface for the per-date game roster
type Service interface {
	// Initialize loads recent team results and the injury report
	Initialize(ctx context.Context) error
	// GamesForDate returns the shaped roster for date. The returned games are
	// shared with the cache and must not be modified.
	GamesForDate(ctx context.Context, date string) ([]*domain.Game, error)
	// ApplyPick stores pick on its game in the cached roster for date
	ApplyPick(date string, pick domain.Pick)
	// RemovePick drops userID's pick on gameID from the cached roster for date
	RemovePick(date string, gameID int64, userID string)
	InvalidateDate(date string) bool
	// Shift moves date by days for previous and next day navigation
	Shift(date string, days int) (string, error)
	// Today returns the current calendar date
	Today() string
}

type service struct {
	repo     repository.Games
	injuries injury.Source
	seasons  *season.Router
	clock    clock.Clock
	rosters  *cache.Cache[string, []*domain.Game]
	loads    singleflight.Group

	// mu serializes roster rewrites. generations counts invalidations and
	// missed rewrites per date so a load that started earlier does not
	// cache rows read before them.
	mu          sync.Mutex
	generations map[string]uint64

	stateMu     sync.RWMutex
	initialized bool
	results     map[int][]domain.TeamResult
	report      []domain.Injury
}

// NewService creates a new game roster service. A ttl of 0 keeps rosters for
// the life of the process.
func NewService(repo repository.Games, injuries injury.Source, seasons *season.Router, clk clock.Clock, ttl time.Duration) Service {
	return &service{
		repo:        repo,
		injuries:    injuries,
		seasons:     seasons,
		clock:       clk,
		rosters:     cache.New[string, []*domain.Game](domain.CacheGames, 0, ttl),
		generations: make(map[string]uint64),
		results:     make(map[int][]domain.TeamResult),
	}
}

func (s *service) Initialize(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	current := s.seasons.SeasonFor(s.clock.Now())
	var firstErr error
	if _, ok := s.results[current]; !ok {
		results, err := s.repo.ListLast5ResultsPerTeam(ctx, current)
		if err != nil {
			log.Error(LogMsgTeamResultsFailed, "error", err, "season", current)
			firstErr = fmt.Errorf("%s: %w", ErrMsgTeamResults, err)
		} else {
			s.results[current] = results
		}
	}

	if !s.initialized && s.injuries != nil {
		report, err := s.injuries.Fetch(ctx)
		if err != nil {
			log.Warn(LogMsgInjuryReportFailed, "error", err)
		} else {
			s.report = report
		}
	}
	s.initialized = true

	log.Info(LogMsgInitialized, "season", current, "injuries", len(s.report))
	return firstErr
}

func (s *service) GamesForDate(ctx context.Context, date string) ([]*domain.Game, error) {
	if games, ok := s.rosters.Get(date); ok {
		return games, nil
	}

	// Joined callers share the load, so it must outlive the first caller
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.loads.Do(date, func() (any, error) {
		return s.load(loadCtx, date)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*domain.Game), nil
}

func (s *service) load(ctx context.Context, date string) ([]*domain.Game, error) {
	log := logger.FromContext(ctx)

	seasonYear, err := s.seasons.SeasonForDate(date)
	if err != nil {
		log.Debug(LogMsgSeasonResolveFailed, "date", date, "error", err)
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDate, date)
	}

	s.stateMu.RLock()
	initialized := s.initialized
	s.stateMu.RUnlock()
	if !initialized {
		// Errors are already logged; shaping proceeds without the missing data
		_ = s.Initialize(ctx)
	}

	results := s.teamResults(ctx, seasonYear)

	s.mu.Lock()
	generation := s.generations[date]
	s.mu.Unlock()

	s.stateMu.RLock()
	report := s.report
	s.stateMu.RUnlock()

	rows, err := s.repo.ListGamesByDate(ctx, date, seasonYear)
	if err != nil {
		log.Error(LogMsgListGamesFailed, "error", err, "date", date)
		return nil, fmt.Errorf("%s: %w", ErrMsgListGames, err)
	}

	games := make([]*domain.Game, 0, len(rows))
	for _, row := range rows {
		games = append(games, shapeGame(row, results, report))
	}

	s.mu.Lock()
	stale := s.generations[date] != generation
	if !stale {
		s.rosters.Set(date, games)
	}
	s.mu.Unlock()

	if stale {
		log.Debug(LogMsgStaleLoadDropped, "date", date)
		return games, nil
	}
	log.Debug(LogMsgGamesCached, "date", date, "games", len(games))
	return games, nil
}

// teamResults returns the memoized recent results for a season, loading them
// on first use. A failed load is not memoized.
func (s *service) teamResults(ctx context.Context, seasonYear int) []domain.TeamResult {
	s.stateMu.RLock()
	results, ok := s.results[seasonYear]
	s.stateMu.RUnlock()
	if ok {
		return results
	}

	results, err := s.repo.ListLast5ResultsPerTeam(ctx, seasonYear)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgTeamResultsFailed, "error", err, "season", seasonYear)
		return nil
	}

	s.stateMu.Lock()
	s.results[seasonYear] = results
	s.stateMu.Unlock()
	return results
}

func (s *service) ApplyPick(date string, pick domain.Pick) {
	s.rewrite(date, pick.GameID, func(g *domain.Game) *domain.Game {
		return withPick(g, pick)
	})
}

func (s *service) RemovePick(date string, gameID int64, userID string) {
	s.rewrite(date, gameID, func(g *domain.Game) *domain.Game {
		return withoutPick(g, userID)
	})
}

// rewrite replaces one game of a cached roster with a modified copy. Readers
// holding the previous roster keep an unchanged snapshot.
func (s *service) rewrite(date string, gameID int64, fn func(*domain.Game) *domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	games, ok := s.rosters.Peek(date)
	if !ok {
		s.generations[date]++
		return
	}

	next := make([]*domain.Game, len(games))
	copy(next, games)
	for i, g := range next {
		if g.ID == gameID {
			next[i] = fn(g)
			s.rosters.Set(date, next)
			return
		}
	}
}

func (s *service) InvalidateDate(date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[date]++
	return s.rosters.Invalidate(date)
}

func (s *service) Shift(date string, days int) (string, error) {
	shifted, err := clock.ShiftDate(date, days)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidDate, date)
	}
	return shifted, nil
}

func (s *service) Today() string {
	return clock.Today(s.clock)
}
