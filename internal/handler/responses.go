package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/courtside/pickem/internal/confidence"
	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Detail carries the store's
// message when a write fails.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// InsufficientConfidenceResponse carries the numbers behind a budget rejection
type InsufficientConfidenceResponse struct {
	Error     string `json:"error"`
	Remaining int    `json:"remaining"`
	Requested int    `json:"requested"`
}

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "error", err, "status", status)
	}

	var budget confidence.ErrInsufficientConfidence
	if errors.As(err, &budget) {
		respondJSON(w, status, InsufficientConfidenceResponse{Error: msg, Remaining: budget.Remaining, Requested: budget.Requested})
		return
	}
	var write *domain.PersistenceError
	if errors.As(err, &write) {
		respondJSON(w, status, ErrorResponse{Error: msg, Detail: write.Err.Error()})
		return
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgUnauthenticatedError      = "Sign in to make picks"
	ErrMsgInvalidInputError         = "Invalid request. Please check your inputs."
	ErrMsgInvalidDateError          = "Dates must look like YYYY-MM-DD"
	ErrMsgGameNotFoundError         = "Game not found"
	ErrMsgInvalidTeamError          = "That team is not playing in this game"
	ErrMsgGameStartedError          = "This game has already started"
	ErrMsgPickWindowClosedError     = "Picks are closed for this game"
	ErrMsgInsufficientConfidenceErr = "Not enough confidence points remaining for today"
	ErrMsgPickNotFoundError         = "Pick not found"
	ErrMsgUserNotRankedError        = "No results for you yet"
	ErrMsgNoCompletedDaysError      = "No completed game days yet"
	ErrMsgPersistenceError          = "Your change could not be saved"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act on. Unrecognized errors become a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrMsgUnauthenticatedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest, ErrMsgInvalidDateError
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound, ErrMsgGameNotFoundError
	case errors.Is(err, domain.ErrInvalidTeam):
		return http.StatusBadRequest, ErrMsgInvalidTeamError
	case errors.Is(err, domain.ErrGameAlreadyStarted):
		return http.StatusConflict, ErrMsgGameStartedError
	case errors.Is(err, domain.ErrPickWindowClosed):
		return http.StatusConflict, ErrMsgPickWindowClosedError
	case errors.Is(err, domain.ErrInsufficientConfidence):
		return http.StatusUnprocessableEntity, ErrMsgInsufficientConfidenceErr
	case errors.Is(err, domain.ErrPickNotFound):
		return http.StatusNotFound, ErrMsgPickNotFoundError
	case errors.Is(err, domain.ErrUserNotRanked):
		return http.StatusNotFound, ErrMsgUserNotRankedError
	case errors.Is(err, domain.ErrNoCompletedGameDays):
		return http.StatusNotFound, ErrMsgNoCompletedDaysError
	case errors.Is(err, domain.ErrPersistence):
		return http.StatusInternalServerError, ErrMsgPersistenceError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
