package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/concurrency"
	"github.com/courtside/pickem/internal/confidence"
	"github.com/courtside/pickem/internal/config"
	"github.com/courtside/pickem/internal/dailyresults"
	"github.com/courtside/pickem/internal/games"
	"github.com/courtside/pickem/internal/injury"
	"github.com/courtside/pickem/internal/leaderboard"
	"github.com/courtside/pickem/internal/picks"
	"github.com/courtside/pickem/internal/season"
	"github.com/courtside/pickem/internal/server"
)

// Services bundles the domain services with the shared collaborators they
// were built from
type Services struct {
	server.Services
	Seasons *season.Router
	Clock   clock.Clock
}

// InitializeServices builds every domain service. injuries may be nil.
func InitializeServices(cfg *config.Config, repos *Repositories, injuries injury.Source, clk clock.Clock) (*Services, error) {
	seasons, err := season.NewRouter(cfg.SeasonCutover)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidSeasonCutover, err)
	}

	gamesSvc := games.NewService(repos.Games, injuries, seasons, clk, cfg.CacheTTL)
	picksSvc := picks.NewService(repos.Picks, gamesSvc, concurrency.NewLockManager(), clk, picks.Options{
		AllowPastVotes: cfg.AllowPastVotes,
		Policy:         confidence.Policy{Offset: cfg.ConfidenceOffset},
	})

	return &Services{
		Services: server.Services{
			Games:        gamesSvc,
			Picks:        picksSvc,
			Leaderboard:  leaderboard.NewService(repos.Leaderboard, repos.Teams, clk, cfg.CacheTTL),
			DailyResults: dailyresults.NewService(repos.DailyResults, clk, cfg.DailyResultsLookbackDays, cfg.CacheTTL),
		},
		Seasons: seasons,
		Clock:   clk,
	}, nil
}

// InitializeInjurySource builds the injury feed, cached in Redis when
// REDIS_URL is set. It returns a nil source when no feed is configured, and
// the Redis store (possibly nil) so the caller can ping and close it.
func InitializeInjurySource(ctx context.Context, cfg *config.Config) (injury.Source, *injury.RedisStore) {
	if !cfg.InjuryFeedEnabled() {
		slog.Warn(LogMsgInjuryFeedDisabled)
		return nil, nil
	}

	client := injury.NewClient(cfg.InjuryAPIURL, cfg.InjuryAPIKey, cfg.HTTPClientTimeout)
	if cfg.RedisURL == "" {
		slog.Info(LogMsgInjuryCacheDisabled)
		return client, nil
	}

	store, err := injury.NewRedisStore(ctx, cfg.RedisURL)
	if err != nil {
		slog.Warn(LogMsgRedisUnavailable, "error", err)
		return client, nil
	}
	return injury.NewCachedSource(client, store, cfg.InjuryCacheTTL), store
}
