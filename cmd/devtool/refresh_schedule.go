package main

import (
	"context"
	"errors"

	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/config"
	"github.com/courtside/pickem/internal/database/postgres"
	"github.com/courtside/pickem/internal/schedule"
	"github.com/courtside/pickem/internal/season"
)

// RefreshScheduleCommand runs one schedule refresh outside the server. A
// running server keeps its cached rosters until they are invalidated through
// the admin cache route or the nightly rollover.
type RefreshScheduleCommand struct{}

func (c *RefreshScheduleCommand) Name() string {
	return "refresh-schedule"
}

func (c *RefreshScheduleCommand) Description() string {
	return "Fetch upcoming games from the schedule feed once"
}

func (c *RefreshScheduleCommand) Run(ctx context.Context, args []string) error {
	PrintHeader("Refreshing schedule...")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.ScheduleAPIURL == "" {
		return errors.New("SCHEDULE_API_URL is not set")
	}

	seasons, err := season.NewRouter(cfg.SeasonCutover)
	if err != nil {
		return err
	}

	pool, err := connect(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	fetcher := schedule.NewClient(cfg.ScheduleAPIURL, cfg.ScheduleAPIKey, cfg.HTTPClientTimeout)
	job := schedule.NewRefreshJob(fetcher, postgres.NewGameRepository(pool), nil, seasons,
		clock.NewRealClockIn(cfg.Location()), cfg.ScheduleDaysAhead)

	if err := job.Process(ctx); err != nil {
		return err
	}
	PrintSuccess("Schedule refreshed through %d days ahead", cfg.ScheduleDaysAhead)
	return nil
}
