package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/pickem/internal/dailyresults"
)

// DailyResultsHandler serves per-day rankings
type DailyResultsHandler struct {
	service dailyresults.Service
}

// NewDailyResultsHandler creates a new daily results handler
func NewDailyResultsHandler(svc dailyresults.Service) *DailyResultsHandler {
	return &DailyResultsHandler{service: svc}
}

// HandleGetLatest returns the ranking for the last completed game day
// GET /api/v1/daily-results
func (h *DailyResultsHandler) HandleGetLatest(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Latest(r.Context(), currentUser(r))
	if err != nil {
		respondServiceError(w, r, "Get latest daily results", err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// HandleGetForDate returns the ranking for one game day
// GET /api/v1/daily-results/{date}
func (h *DailyResultsHandler) HandleGetForDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := GetValidator().ValidateVar(date, "required,gamedate"); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "date"))
		return
	}

	snapshot, err := h.service.ForDate(r.Context(), date, currentUser(r))
	if err != nil {
		respondServiceError(w, r, "Get daily results", err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}
