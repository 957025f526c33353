package handler

import (
	"net/http"

	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/leaderboard"
	"github.com/courtside/pickem/internal/season"
)

// LeaderboardResponse is the ranked standings for one season partition
type LeaderboardResponse struct {
	Season     int                  `json:"season"`
	Postseason bool                 `json:"postseason"`
	Entries    []domain.RankedEntry `json:"entries"`
}

// ScoreStatsResponse carries per-user score stats and their totals
type ScoreStatsResponse struct {
	Season     int                         `json:"season"`
	Postseason bool                        `json:"postseason"`
	Stats      []domain.ScoreStats         `json:"stats"`
	Summary    domain.AggregatedScoreStats `json:"summary"`
}

// LeaderboardHandler serves standings, score stats and the team catalog
type LeaderboardHandler struct {
	service leaderboard.Service
	seasons *season.Router
	clock   clock.Clock
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(svc leaderboard.Service, seasons *season.Router, clk clock.Clock) *LeaderboardHandler {
	return &LeaderboardHandler{service: svc, seasons: seasons, clock: clk}
}

// HandleGetLeaderboard returns ranked standings
// GET /api/v1/leaderboard?season=2024&postseason=false
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	s, postseason, ok := seasonParams(w, r, h.seasons, h.clock)
	if !ok {
		return
	}

	entries, err := h.service.Ranked(r.Context(), s, postseason)
	if err != nil {
		respondServiceError(w, r, "Get leaderboard", err)
		return
	}
	if entries == nil {
		entries = []domain.RankedEntry{}
	}
	respondJSON(w, http.StatusOK, LeaderboardResponse{Season: s, Postseason: postseason, Entries: entries})
}

// HandleGetScoreStats returns score stats with an aggregate summary
// GET /api/v1/leaderboard/stats
func (h *LeaderboardHandler) HandleGetScoreStats(w http.ResponseWriter, r *http.Request) {
	s, postseason, ok := seasonParams(w, r, h.seasons, h.clock)
	if !ok {
		return
	}

	stats, err := h.service.FetchScoreStats(r.Context(), s, postseason)
	if err != nil {
		respondServiceError(w, r, "Get score stats", err)
		return
	}
	if stats == nil {
		stats = []domain.ScoreStats{}
	}
	respondJSON(w, http.StatusOK, ScoreStatsResponse{
		Season:     s,
		Postseason: postseason,
		Stats:      stats,
		Summary:    leaderboard.Aggregate(stats),
	})
}

// HandleGetYesterday returns the caller's result on the previous day
// GET /api/v1/leaderboard/yesterday
func (h *LeaderboardHandler) HandleGetYesterday(w http.ResponseWriter, r *http.Request) {
	s, postseason, ok := seasonParams(w, r, h.seasons, h.clock)
	if !ok {
		return
	}

	report, err := h.service.YesterdayReport(r.Context(), s, postseason, currentUser(r))
	if err != nil {
		respondServiceError(w, r, "Get yesterday report", err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// HandleListTeams returns the team catalog
// GET /api/v1/teams
func (h *LeaderboardHandler) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.ListTeams(r.Context())
	if err != nil {
		respondServiceError(w, r, "List teams", err)
		return
	}
	if teams == nil {
		teams = []domain.Team{}
	}
	respondJSON(w, http.StatusOK, teams)
}
