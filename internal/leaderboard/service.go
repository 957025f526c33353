// Package leaderboard aggregates season standings and score statistics.
package leaderboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/courtside/pickem/internal/cache"
	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/logger"
	"github.com/courtside/pickem/internal/repository"
)

// Service defines the interface for leaderboard operations
type Service interface {
	// FetchStandings returns the sorted standings for a season partition
	FetchStandings(ctx context.Context, season int, postseason bool) (*domain.Standings, error)
	// Ranked returns the standings with rank and derived metrics attached
	Ranked(ctx context.Context, season int, postseason bool) ([]domain.RankedEntry, error)
	// YesterdayReport returns userID's result on the day before today
	YesterdayReport(ctx context.Context, season int, postseason bool, userID string) (*domain.YesterdayReport, error)
	InvalidateStandings(season int, postseason bool) bool

	FetchScoreStats(ctx context.Context, season int, postseason bool) ([]domain.ScoreStats, error)
	InvalidateScoreStats(season int, postseason bool) bool

	// ListTeams returns the team catalog ordered by name
	ListTeams(ctx context.Context) ([]domain.Team, error)
}

type service struct {
	repo  repository.Leaderboard
	teams repository.Teams
	clock clock.Clock

	standings  *cache.Cache[cache.SeasonKey, *domain.Standings]
	scoreStats *cache.Cache[cache.SeasonKey, []domain.ScoreStats]
	catalog    *cache.Cache[string, []domain.Team]
	loads      singleflight.Group
}

// NewService creates a new leaderboard service. A ttl of 0 keeps cached
// partitions for the life of the process.
func NewService(repo repository.Leaderboard, teams repository.Teams, clk clock.Clock, ttl time.Duration) Service {
	return &service{
		repo:       repo,
		teams:      teams,
		clock:      clk,
		standings:  cache.New[cache.SeasonKey, *domain.Standings](domain.CacheStandings, SeasonCacheSize, ttl),
		scoreStats: cache.New[cache.SeasonKey, []domain.ScoreStats](domain.CacheScoreStats, SeasonCacheSize, ttl),
		catalog:    cache.New[string, []domain.Team](domain.CacheTeams, 0, 0),
	}
}

func (s *service) FetchStandings(ctx context.Context, season int, postseason bool) (*domain.Standings, error) {
	key := cache.SeasonKey{Season: season, Postseason: postseason}
	if standings, ok := s.standings.Get(key); ok {
		return standings, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.loads.Do(domain.CacheStandings+":"+key.String(), func() (any, error) {
		return s.loadStandings(loadCtx, key)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Standings), nil
}

func (s *service) loadStandings(ctx context.Context, key cache.SeasonKey) (*domain.Standings, error) {
	log := logger.FromContext(ctx)

	users, err := s.repo.GetUserPicksSummary(ctx, key.Season, key.Postseason)
	if err != nil {
		log.Error(LogMsgSummaryFailed, "error", err, "season", key.Season, "postseason", key.Postseason)
		return nil, fmt.Errorf("%s: %w", ErrMsgFetchSummary, err)
	}

	records, err := s.repo.GetUserPicksPastRecord(ctx, key.Season, key.Postseason)
	if err != nil {
		log.Error(LogMsgPastRecordFailed, "error", err, "season", key.Season, "postseason", key.Postseason)
		return nil, fmt.Errorf("%s: %w", ErrMsgFetchPastRecord, err)
	}

	standings := buildStandings(users, records)
	s.standings.Set(key, standings)

	log.Debug(LogMsgStandingsCached, "season", key.Season, "postseason", key.Postseason, "users", len(users))
	return standings, nil
}

func (s *service) Ranked(ctx context.Context, season int, postseason bool) ([]domain.RankedEntry, error) {
	standings, err := s.FetchStandings(ctx, season, postseason)
	if err != nil {
		return nil, err
	}
	return Rank(standings.Entries), nil
}

func (s *service) YesterdayReport(ctx context.Context, season int, postseason bool, userID string) (*domain.YesterdayReport, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	standings, err := s.FetchStandings(ctx, season, postseason)
	if err != nil {
		return nil, err
	}

	yesterday := s.clock.Now().AddDate(0, 0, -1).Format(domain.DateLayout)
	for _, u := range standings.Users {
		if u.ID != userID {
			continue
		}
		for _, r := range u.PastRecords {
			if r.GameDate == yesterday {
				return &domain.YesterdayReport{
					Date:     yesterday,
					Correct:  r.CorrectPicks,
					Total:    r.TotalPicks,
					Accuracy: r.Accuracy,
				}, nil
			}
		}
		break
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUserNotRanked, yesterday)
}

func (s *service) InvalidateStandings(season int, postseason bool) bool {
	return s.standings.Invalidate(cache.SeasonKey{Season: season, Postseason: postseason})
}

func (s *service) FetchScoreStats(ctx context.Context, season int, postseason bool) ([]domain.ScoreStats, error) {
	key := cache.SeasonKey{Season: season, Postseason: postseason}
	if stats, ok := s.scoreStats.Get(key); ok {
		return stats, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.loads.Do(domain.CacheScoreStats+":"+key.String(), func() (any, error) {
		stats, err := s.repo.GetLeaderboardStats(loadCtx, key.Season, key.Postseason)
		if err != nil {
			logger.FromContext(loadCtx).Error(LogMsgStatsFailed, "error", err, "season", key.Season, "postseason", key.Postseason)
			return nil, fmt.Errorf("%s: %w", ErrMsgFetchStats, err)
		}
		if stats == nil {
			stats = []domain.ScoreStats{}
		}
		SortScoreStats(stats)
		s.scoreStats.Set(key, stats)
		logger.FromContext(loadCtx).Debug(LogMsgStatsCached, "season", key.Season, "postseason", key.Postseason, "users", len(stats))
		return stats, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.ScoreStats), nil
}

func (s *service) InvalidateScoreStats(season int, postseason bool) bool {
	return s.scoreStats.Invalidate(cache.SeasonKey{Season: season, Postseason: postseason})
}

func (s *service) ListTeams(ctx context.Context) ([]domain.Team, error) {
	if teams, ok := s.catalog.Get(teamsKey); ok {
		return teams, nil
	}

	teams, err := s.teams.ListTeams(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgTeamsFailed, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgFetchTeams, err)
	}
	if teams == nil {
		teams = []domain.Team{}
	}
	s.catalog.Set(teamsKey, teams)
	return teams, nil
}
