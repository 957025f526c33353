package handler

import (
	"fmt"
	"net/http"

	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/dailyresults"
	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/games"
	"github.com/courtside/pickem/internal/leaderboard"
	"github.com/courtside/pickem/internal/logger"
	"github.com/courtside/pickem/internal/season"
)

// InvalidateCacheRequest names one cached entry to drop. Date keys the games
// and daily_results caches; season and postseason key the others.
type InvalidateCacheRequest struct {
	Cache      string `json:"cache" validate:"required,oneof=games standings score_stats daily_results"`
	Date       string `json:"date" validate:"omitempty,gamedate"`
	Season     int    `json:"season" validate:"omitempty,min=1"`
	Postseason bool   `json:"postseason"`
}

// InvalidateCacheResponse reports whether an entry was dropped
type InvalidateCacheResponse struct {
	Message     string `json:"message"`
	Invalidated bool   `json:"invalidated"`
}

// AdminCacheHandler handles admin cache operations
type AdminCacheHandler struct {
	games       games.Service
	leaderboard leaderboard.Service
	daily       dailyresults.Service
	seasons     *season.Router
	clock       clock.Clock
}

// NewAdminCacheHandler creates a new admin cache handler
func NewAdminCacheHandler(gamesSvc games.Service, leaderboardSvc leaderboard.Service, dailySvc dailyresults.Service, seasons *season.Router, clk clock.Clock) *AdminCacheHandler {
	return &AdminCacheHandler{
		games:       gamesSvc,
		leaderboard: leaderboardSvc,
		daily:       dailySvc,
		seasons:     seasons,
		clock:       clk,
	}
}

// HandleInvalidate drops one cache entry so the next read refetches it
// POST /api/v1/admin/cache/invalidate
func (h *AdminCacheHandler) HandleInvalidate(w http.ResponseWriter, r *http.Request) {
	var req InvalidateCacheRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Invalidate cache"); err != nil {
		return
	}

	s := req.Season
	if s == 0 {
		s = h.seasons.SeasonFor(h.clock.Now())
	}

	var dropped bool
	switch req.Cache {
	case domain.CacheGames, domain.CacheDailyResults:
		if req.Date == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgCacheDateRequired, req.Cache))
			return
		}
		if req.Cache == domain.CacheGames {
			dropped = h.games.InvalidateDate(req.Date)
		} else {
			dropped = h.daily.InvalidateSnapshot(req.Date)
		}
	case domain.CacheStandings:
		dropped = h.leaderboard.InvalidateStandings(s, req.Postseason)
	case domain.CacheScoreStats:
		dropped = h.leaderboard.InvalidateScoreStats(s, req.Postseason)
	}

	logger.FromContext(r.Context()).Info(LogMsgCacheInvalidated,
		"cache", req.Cache, "date", req.Date, "season", s, "postseason", req.Postseason, "dropped", dropped)

	msg := MsgCacheInvalidated
	if !dropped {
		msg = MsgCacheNotCached
	}
	respondJSON(w, http.StatusOK, InvalidateCacheResponse{Message: msg, Invalidated: dropped})
}
