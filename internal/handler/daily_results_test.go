package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/courtside/pickem/internal/domain"
)

func dailyRouter(h *DailyResultsHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/daily-results", h.HandleGetLatest)
	r.Get("/daily-results/{date}", h.HandleGetForDate)
	return r
}

func TestHandleGetLatest(t *testing.T) {
	svc := new(MockDailyResultsService)
	rank := 1
	svc.On("Latest", mock.Anything, testUser).Return(&domain.DailySnapshot{
		Date:          "2025-01-09",
		FormattedDate: "Thursday, January 9, 2025",
		Results:       []domain.DailyResult{{UserID: testUser, Points: 4}},
		User:          &domain.DailyResult{UserID: testUser, Points: 4},
		Rank:          &rank,
	}, nil)

	w := httptest.NewRecorder()
	dailyRouter(NewDailyResultsHandler(svc)).ServeHTTP(w, newRequest(t, http.MethodGet, "/daily-results", nil, testUser))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"formatted_date":"Thursday, January 9, 2025"`)
	assert.Contains(t, w.Body.String(), `"rank":1`)
}

func TestHandleGetLatest_NoCompletedDays(t *testing.T) {
	svc := new(MockDailyResultsService)
	svc.On("Latest", mock.Anything, "").Return(nil, domain.ErrNoCompletedGameDays)

	w := httptest.NewRecorder()
	dailyRouter(NewDailyResultsHandler(svc)).ServeHTTP(w, newRequest(t, http.MethodGet, "/daily-results", nil, ""))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgNoCompletedDaysError)
}

func TestHandleGetForDate(t *testing.T) {
	svc := new(MockDailyResultsService)
	svc.On("ForDate", mock.Anything, "2025-01-05", "").Return(&domain.DailySnapshot{
		Date:    "2025-01-05",
		Results: []domain.DailyResult{},
	}, nil)

	w := httptest.NewRecorder()
	dailyRouter(NewDailyResultsHandler(svc)).ServeHTTP(w, newRequest(t, http.MethodGet, "/daily-results/2025-01-05", nil, ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"results":[]`)
	assert.NotContains(t, w.Body.String(), `"rank"`)
}

func TestHandleGetForDate_InvalidDate(t *testing.T) {
	svc := new(MockDailyResultsService)

	w := httptest.NewRecorder()
	dailyRouter(NewDailyResultsHandler(svc)).ServeHTTP(w, newRequest(t, http.MethodGet, "/daily-results/yesterday", nil, ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ForDate", mock.Anything, mock.Anything, mock.Anything)
}
