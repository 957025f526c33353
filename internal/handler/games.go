package handler

import (
	"net/http"

	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/games"
	"github.com/courtside/pickem/internal/logger"
	"github.com/courtside/pickem/internal/picks"
)

// GamesResponse is one game day with navigation and the caller's budget
type GamesResponse struct {
	Date     string                   `json:"date"`
	Previous string                   `json:"previous"`
	Next     string                   `json:"next"`
	Games    []*domain.Game           `json:"games"`
	Budget   *domain.ConfidenceBudget `json:"budget,omitempty"`
}

// GameHandler serves the game day roster and pick endpoints
type GameHandler struct {
	games games.Service
	picks picks.Service
	clock clock.Clock
}

// NewGameHandler creates a new game handler
func NewGameHandler(gamesSvc games.Service, picksSvc picks.Service, clk clock.Clock) *GameHandler {
	return &GameHandler{games: gamesSvc, picks: picksSvc, clock: clk}
}

// HandleGetGames returns the roster for a date (default today)
// GET /api/v1/games?date=YYYY-MM-DD
func (h *GameHandler) HandleGetGames(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r, h.clock)
	if !ok {
		return
	}

	roster, err := h.games.GamesForDate(r.Context(), date)
	if err != nil {
		respondServiceError(w, r, "Get games", err)
		return
	}

	resp := GamesResponse{Date: date, Games: roster}
	if resp.Games == nil {
		resp.Games = []*domain.Game{}
	}
	// date already validated, so Shift cannot fail
	resp.Previous, _ = h.games.Shift(date, -1)
	resp.Next, _ = h.games.Shift(date, 1)

	if userID := currentUser(r); userID != "" {
		budget, err := h.picks.Budget(r.Context(), userID, date)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgBudgetUnavailable, "error", err)
		} else {
			resp.Budget = budget
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// HandleGetBudget returns the caller's confidence budget for a date
// GET /api/v1/games/budget?date=YYYY-MM-DD
func (h *GameHandler) HandleGetBudget(w http.ResponseWriter, r *http.Request) {
	userID := currentUser(r)
	if userID == "" {
		respondServiceError(w, r, "Get budget", domain.ErrUnauthenticated)
		return
	}
	date, ok := dateParam(w, r, h.clock)
	if !ok {
		return
	}

	budget, err := h.picks.Budget(r.Context(), userID, date)
	if err != nil {
		respondServiceError(w, r, "Get budget", err)
		return
	}
	respondJSON(w, http.StatusOK, budget)
}

// HandleSubmitPick creates or changes the caller's pick on a game
// POST /api/v1/picks
func (h *GameHandler) HandleSubmitPick(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitPickRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit pick"); err != nil {
		return
	}

	pick, err := h.picks.SubmitPick(r.Context(), currentUser(r), req)
	if err != nil {
		respondServiceError(w, r, "Submit pick", err)
		return
	}
	respondJSON(w, http.StatusOK, pick)
}

// HandleCancelPick removes the caller's pick on a game
// DELETE /api/v1/picks
func (h *GameHandler) HandleCancelPick(w http.ResponseWriter, r *http.Request) {
	var req domain.CancelPickRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Cancel pick"); err != nil {
		return
	}

	if err := h.picks.CancelPick(r.Context(), currentUser(r), req.Date, req.GameID); err != nil {
		respondServiceError(w, r, "Cancel pick", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPickCancelled})
}
