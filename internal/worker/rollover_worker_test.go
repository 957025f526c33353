package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/pickem/internal/clock"
)

func TestTimeUntilNextRollover(t *testing.T) {
	eastern := time.FixedZone("UTC-5", -5*60*60)
	tests := []struct {
		name string
		now  time.Time
		loc  *time.Location
		want time.Duration
	}{
		{"one in the morning", time.Date(2026, 2, 2, 1, 0, 0, 0, time.UTC), time.UTC, 23 * time.Hour},
		{"one minute to midnight", time.Date(2026, 2, 2, 23, 59, 0, 0, time.UTC), time.UTC, time.Minute},
		{"exactly midnight waits a full day", time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), time.UTC, 24 * time.Hour},
		{"other location", time.Date(2026, 2, 2, 4, 0, 0, 0, time.UTC), eastern, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeUntilNextRollover(tt.now, tt.loc))
		})
	}
}

func TestCacheRolloverWorker_Trigger(t *testing.T) {
	var runs int32
	w := NewCacheRolloverWorker(clock.NewRealClock(), nil, func(ctx context.Context) {
		atomic.AddInt32(&runs, 1)
	})

	w.Trigger(context.Background())
	assert.Equal(t, int32(1), atomic.LoadInt32(&runs))
}

func TestCacheRolloverWorker_StartAndShutdown(t *testing.T) {
	var runs int32
	clk := clock.NewSimulatedClock(time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC))
	w := NewCacheRolloverWorker(clk, time.UTC, func(ctx context.Context) {
		atomic.AddInt32(&runs, 1)
	})

	w.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))

	// A second shutdown is harmless
	require.NoError(t, w.Shutdown(ctx))
	assert.Equal(t, int32(0), atomic.LoadInt32(&runs))
}

func TestCacheRolloverWorker_FiresNearMidnight(t *testing.T) {
	fired := make(chan struct{}, 1)
	// 50ms before midnight
	clk := clock.NewSimulatedClock(time.Date(2026, 2, 2, 23, 59, 59, 950_000_000, time.UTC))
	w := NewCacheRolloverWorker(clk, time.UTC, func(ctx context.Context) {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	defer func() { _ = w.Shutdown(context.Background()) }()

	// The simulated clock does not move on its own; advance it past midnight
	// so the jitter check sees a full day remaining
	w.Start()
	clk.Advance(time.Second)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("rollover did not fire")
	}
}
