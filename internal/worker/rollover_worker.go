package worker

import (
	"context"
	"time"

	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/logger"
)

const rolloverTimer = "rollover"

// RolloverFunc drops cached data that overnight grading may have changed
type RolloverFunc func(ctx context.Context)

// CacheRolloverWorker runs a rollover at midnight in the configured location
// so memoized standings and results pick up grades written overnight
type CacheRolloverWorker struct {
	BaseWorker
	clock    clock.Clock
	location *time.Location
	rollover RolloverFunc
}

// NewCacheRolloverWorker creates a rollover worker. A nil location uses UTC.
func NewCacheRolloverWorker(clk clock.Clock, location *time.Location, rollover RolloverFunc) *CacheRolloverWorker {
	if location == nil {
		location = time.UTC
	}
	w := &CacheRolloverWorker{clock: clk, location: location, rollover: rollover}
	w.init()
	return w
}

// Start schedules the first rollover
func (w *CacheRolloverWorker) Start() {
	w.scheduleNext()
}

// Trigger runs a rollover immediately
func (w *CacheRolloverWorker) Trigger(ctx context.Context) {
	w.execute(ctx)
}

func (w *CacheRolloverWorker) scheduleNext() {
	if w.stopping() {
		return
	}

	duration := timeUntilNextRollover(w.clock.Now(), w.location)
	log := logger.FromContext(context.Background())

	// Long waits wake up shortly before midnight and reschedule, which keeps
	// the final timer short and accurate
	if duration > rolloverStandbyThreshold {
		wait := duration - rolloverStandbyLead
		w.registerTimer(rolloverTimer, time.AfterFunc(wait, w.scheduleNext))
		log.Info(LogMsgRolloverStandby, "next_check_in", wait)
		return
	}

	w.registerTimer(rolloverTimer, time.AfterFunc(duration, func() {
		if w.stopping() {
			return
		}
		rem := timeUntilNextRollover(w.clock.Now(), w.location)
		if rem > rolloverEarlyTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}
		w.track(func() { w.execute(context.Background()) })
		w.scheduleNext()
	}))
	log.Info(LogMsgRolloverScheduled, "next_rollover_in", duration)
}

func (w *CacheRolloverWorker) execute(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRolloverStarting)
	w.rollover(ctx)
	log.Info(LogMsgRolloverCompleted)
}

// Shutdown cancels the pending rollover and waits for a running one
func (w *CacheRolloverWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, "cache rollover worker")
}

// timeUntilNextRollover returns the duration until the next midnight in loc
func timeUntilNextRollover(now time.Time, loc *time.Location) time.Duration {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
