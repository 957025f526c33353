package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/identity"
	"github.com/courtside/pickem/internal/logger"
	"github.com/courtside/pickem/internal/season"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the HTTP response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req domain.SubmitPickRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Submit pick"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter. If ok is false, the
// HTTP response has already been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(LogMsgMissingQueryParam, "param", paramName)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns the parameter value, or defaultValue when it
// is missing
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// dateParam returns the date query parameter, defaulting to today. An
// unparseable date writes a 400 and returns false.
func dateParam(w http.ResponseWriter, r *http.Request, clk clock.Clock) (string, bool) {
	date := GetOptionalQueryParam(r, "date", clock.Today(clk))
	if err := GetValidator().ValidateVar(date, "gamedate"); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "date"))
		return "", false
	}
	return date, true
}

// Season query bounds. Seasons after the current one have no picks yet.
const (
	minSeason         = 1946
	maxSeasonsAhead   = 1
	defaultPostseason = false
)

// seasonParams reads season and postseason. Season defaults to the one
// containing today and postseason to the regular season.
func seasonParams(w http.ResponseWriter, r *http.Request, seasons *season.Router, clk clock.Clock) (int, bool, bool) {
	current := seasons.SeasonFor(clk.Now())
	s := current
	if raw := r.URL.Query().Get("season"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < minSeason || parsed > current+maxSeasonsAhead {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "season"))
			return 0, false, false
		}
		s = parsed
	}

	postseason := defaultPostseason
	if raw := r.URL.Query().Get("postseason"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "postseason"))
			return 0, false, false
		}
		postseason = parsed
	}
	return s, postseason, true
}

// currentUser returns the caller's id from the request context, or "" when
// the request is anonymous
func currentUser(r *http.Request) string {
	return identity.UserID(r.Context())
}
