package bootstrap

import (
	"context"

	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/logger"
	"github.com/courtside/pickem/internal/worker"
)

// RolloverCaches returns the midnight rollover for svcs. It drops the current
// season's standings and score stats in both partitions, yesterday's snapshot,
// and the rosters for yesterday and today, since overnight grading rewrites
// all of them.
func RolloverCaches(svcs *Services) worker.RolloverFunc {
	return func(ctx context.Context) {
		now := svcs.Clock.Now()
		current := svcs.Seasons.SeasonFor(now)
		for _, postseason := range []bool{false, true} {
			svcs.Leaderboard.InvalidateStandings(current, postseason)
			svcs.Leaderboard.InvalidateScoreStats(current, postseason)
		}

		today := clock.Today(svcs.Clock)
		yesterday, _ := clock.ShiftDate(today, -1)
		svcs.DailyResults.InvalidateSnapshot(yesterday)
		svcs.Games.InvalidateDate(yesterday)
		svcs.Games.InvalidateDate(today)

		logger.FromContext(ctx).Info(LogMsgCachesRolledOver, "season", current, "today", today)
	}
}
