package injury

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/logger"
)

// CachedSource serves the report from a shared Store, falling back to the
// wrapped source on a miss. Store failures never fail a fetch.
type CachedSource struct {
	source Source
	store  Store
	ttl    time.Duration
}

// NewCachedSource wraps source with store. A nil store disables caching.
func NewCachedSource(source Source, store Store, ttl time.Duration) *CachedSource {
	return &CachedSource{source: source, store: store, ttl: ttl}
}

// Fetch returns the cached report or fetches and caches a fresh one
func (c *CachedSource) Fetch(ctx context.Context) ([]domain.Injury, error) {
	if c.store == nil {
		return c.source.Fetch(ctx)
	}

	log := logger.FromContext(ctx)

	raw, err := c.store.Get(ctx, ReportCacheKey)
	switch {
	case err == nil:
		var report []domain.Injury
		if err := json.Unmarshal([]byte(raw), &report); err == nil {
			return report, nil
		}
		log.Warn(LogMsgCacheDecode)
	case !errors.Is(err, ErrCacheMiss):
		log.Warn(LogMsgCacheReadFailed, "error", err)
	}

	report, err := c.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeReport, err)
	}
	if err := c.store.Set(ctx, ReportCacheKey, string(data), c.ttl); err != nil {
		log.Warn(LogMsgCacheWriteFailed, "error", err)
	}

	return report, nil
}
