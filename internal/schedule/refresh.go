package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/logger"
	"github.com/courtside/pickem/internal/metrics"
	"github.com/courtside/pickem/internal/season"
)

// Store persists fetched games
type Store interface {
	UpsertGames(ctx context.Context, games []domain.ScheduledGame) (int, error)
}

// Invalidator drops cached rosters for a game day
type Invalidator interface {
	InvalidateDate(date string) bool
}

// RefreshJob pulls the schedule from today through DaysAhead and stores it.
// It implements worker.Job.
type RefreshJob struct {
	fetcher   Fetcher
	store     Store
	rosters   Invalidator
	seasons   *season.Router
	clock     clock.Clock
	daysAhead int
}

// NewRefreshJob creates a refresh job. rosters may be nil.
func NewRefreshJob(fetcher Fetcher, store Store, rosters Invalidator, seasons *season.Router, clk clock.Clock, daysAhead int) *RefreshJob {
	if daysAhead < 0 {
		daysAhead = DefaultDaysAhead
	}
	return &RefreshJob{
		fetcher:   fetcher,
		store:     store,
		rosters:   rosters,
		seasons:   seasons,
		clock:     clk,
		daysAhead: daysAhead,
	}
}

// Process fetches, stores, and invalidates every date in the window
func (j *RefreshJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	bySeason, err := j.window()
	if err != nil {
		return err
	}
	log.Info(LogMsgRefreshStarting, "days", j.daysAhead+1, "seasons", len(bySeason))

	seasons := make([]int, 0, len(bySeason))
	for s := range bySeason {
		seasons = append(seasons, s)
	}
	sort.Ints(seasons)

	total := 0
	touched := make(map[string]struct{})
	for _, s := range seasons {
		games, err := j.fetcher.FetchGames(ctx, s, bySeason[s])
		if err != nil {
			log.Error(LogMsgRefreshFailed, "season", s, "error", err)
			return err
		}
		if len(games) == 0 {
			continue
		}

		n, err := j.store.UpsertGames(ctx, games)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgUpsertGames, err)
		}
		total += n
		for _, g := range games {
			touched[g.Date] = struct{}{}
		}
	}

	metrics.ScheduleGamesRefreshed.Add(float64(total))
	if j.rosters != nil {
		for date := range touched {
			j.rosters.InvalidateDate(date)
		}
	}

	log.Info(LogMsgRefreshCompleted, "games", total, "dates", len(touched))
	return nil
}

// window groups today through today+daysAhead by season
func (j *RefreshJob) window() (map[int][]string, error) {
	today := clock.Today(j.clock)
	out := make(map[int][]string)
	for i := 0; i <= j.daysAhead; i++ {
		date, err := clock.ShiftDate(today, i)
		if err != nil {
			return nil, err
		}
		s, err := j.seasons.SeasonForDate(date)
		if err != nil {
			return nil, err
		}
		out[s] = append(out[s], date)
	}
	return out, nil
}
