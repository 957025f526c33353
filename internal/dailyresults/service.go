// Package dailyresults ranks every player on the most recent completed game day.
package dailyresults

import (
	"context"
	"fmt"
	"time"

	"github.com/courtside/pickem/internal/cache"
	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/logger"
	"github.com/courtside/pickem/internal/repository"
)

// Service defines the interface for daily results
type Service interface {
	// FindLastCompletedDate searches backwards from yesterday for a day with a
	// final game
	FindLastCompletedDate(ctx context.Context) (string, error)
	// SnapshotForDate returns the ranked results for one game day
	SnapshotForDate(ctx context.Context, date string) ([]domain.DailyResult, error)
	// Latest returns the ranking for the last completed day along with
	// userID's own row and rank when they played
	Latest(ctx context.Context, userID string) (*domain.DailySnapshot, error)
	// ForDate is Latest for an explicit date
	ForDate(ctx context.Context, date, userID string) (*domain.DailySnapshot, error)
	InvalidateSnapshot(date string) bool
}

type service struct {
	repo     repository.DailyResults
	clock    clock.Clock
	lookback int
	results  *cache.Cache[string, []domain.DailyResult]
}

// NewService creates a new daily results service. A lookback below one uses
// DefaultLookbackDays.
func NewService(repo repository.DailyResults, clk clock.Clock, lookbackDays int, ttl time.Duration) Service {
	if lookbackDays < 1 {
		lookbackDays = DefaultLookbackDays
	}
	return &service{
		repo:     repo,
		clock:    clk,
		lookback: lookbackDays,
		results:  cache.New[string, []domain.DailyResult](domain.CacheDailyResults, 0, ttl),
	}
}

func (s *service) FindLastCompletedDate(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	day := s.clock.Now()
	for i := 0; i < s.lookback; i++ {
		day = day.AddDate(0, 0, -1)
		date := day.Format(domain.DateLayout)

		found, err := s.repo.HasFinalGameOn(ctx, date)
		if err != nil {
			log.Warn(LogMsgCheckFailed, "error", err, "date", date)
			continue
		}
		if found {
			return date, nil
		}
	}

	log.Debug(LogMsgNoCompletedDay, "days", s.lookback)
	return "", domain.ErrNoCompletedGameDays
}

func (s *service) SnapshotForDate(ctx context.Context, date string) ([]domain.DailyResult, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDate, date)
	}

	if results, ok := s.results.Get(date); ok {
		return results, nil
	}

	log := logger.FromContext(ctx)

	gameIDs, err := s.repo.ListGameIDsByDate(ctx, date)
	if err != nil {
		log.Error(LogMsgGameIDsFailed, "error", err, "date", date)
		return nil, fmt.Errorf("%s: %w", ErrMsgListGames, err)
	}
	if len(gameIDs) == 0 {
		return []domain.DailyResult{}, nil
	}

	picks, err := s.repo.ListPicksForGames(ctx, gameIDs)
	if err != nil {
		log.Error(LogMsgDayPicksFailed, "error", err, "date", date, "games", len(gameIDs))
		return nil, fmt.Errorf("%s: %w", ErrMsgListPicks, err)
	}

	results := Aggregate(picks)
	if results == nil {
		results = []domain.DailyResult{}
	}
	SortResults(results)

	s.results.Set(date, results)
	log.Debug(LogMsgSnapshotCached, "date", date, "players", len(results))
	return results, nil
}

func (s *service) Latest(ctx context.Context, userID string) (*domain.DailySnapshot, error) {
	date, err := s.FindLastCompletedDate(ctx)
	if err != nil {
		return nil, err
	}
	return s.ForDate(ctx, date, userID)
}

func (s *service) ForDate(ctx context.Context, date, userID string) (*domain.DailySnapshot, error) {
	results, err := s.SnapshotForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	day, _ := time.Parse(domain.DateLayout, date)
	snapshot := &domain.DailySnapshot{
		Date:          date,
		FormattedDate: day.Format(FormattedDateLayout),
		Results:       results,
	}

	if userID != "" {
		if rank, ok := UserRank(results, userID); ok {
			own := results[rank-1]
			snapshot.User = &own
			snapshot.Rank = &rank
		}
	}
	return snapshot, nil
}

func (s *service) InvalidateSnapshot(date string) bool {
	return s.results.Invalidate(date)
}
