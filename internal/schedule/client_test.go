package schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageOne = `{
  "data": [
    {"id": 10, "date": "2025-01-10T00:00:00.000Z", "season": 2024, "status": "2025-01-11T00:30:00Z", "period": 0, "time": null,
     "postseason": false, "home_team_score": 0, "visitor_team_score": 0,
     "home_team": {"id": 14, "abbreviation": "LAL", "full_name": "Los Angeles Lakers"},
     "visitor_team": {"id": 2, "abbreviation": "BOS", "full_name": "Boston Celtics"}},
    {"id": 0, "date": "bad"}
  ],
  "meta": {"next_cursor": 42}
}`

const pageTwo = `{
  "data": [
    {"id": 11, "date": "2025-01-11", "season": 2024, "status": "Final", "period": 4, "time": "Final",
     "postseason": false, "home_team_score": 110, "visitor_team_score": 99,
     "home_team": {"id": 20, "abbreviation": "NYK", "full_name": "New York Knicks"},
     "visitor_team": {"id": 16, "abbreviation": "MIA", "full_name": "Miami Heat"}}
  ],
  "meta": {"next_cursor": null}
}`

func TestClient_FetchGames_FollowsCursor(t *testing.T) {
	var cursors []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, gamesPath, r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, []string{"2024"}, q["seasons[]"])
		assert.Equal(t, []string{"2025-01-10", "2025-01-11"}, q["dates[]"])
		assert.Equal(t, "100", q.Get("per_page"))

		cursors = append(cursors, q.Get("cursor"))
		if q.Get("cursor") == "" {
			_, _ = w.Write([]byte(pageOne))
			return
		}
		_, _ = w.Write([]byte(pageTwo))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "secret", 0)
	games, err := c.FetchGames(context.Background(), 2024, []string{"2025-01-10", "2025-01-11"})
	require.NoError(t, err)

	assert.Equal(t, []string{"", "42"}, cursors)
	require.Len(t, games, 2)

	assert.Equal(t, int64(10), games[0].ID)
	assert.Equal(t, "2025-01-10", games[0].Date)
	assert.Equal(t, "LAL", games[0].HomeTeam.Abbreviation)
	assert.Equal(t, "Boston Celtics", games[0].AwayTeam.Name)
	assert.Empty(t, games[0].Time)

	assert.Equal(t, "Final", games[1].Status)
	assert.Equal(t, 110, games[1].HomeTeamScore)
	assert.Equal(t, 99, games[1].AwayTeamScore)
}

func TestClient_FetchGames_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", 0).FetchGames(context.Background(), 2024, []string{"2025-01-10"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestClient_FetchGames_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", 0).FetchGames(context.Background(), 2024, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgDecodePage)
}

func TestClient_FetchGames_NoAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data": [], "meta": {}}`))
	}))
	defer srv.Close()

	games, err := NewClient(srv.URL, "", 0).FetchGames(context.Background(), 2024, []string{"2025-01-10"})
	require.NoError(t, err)
	assert.Empty(t, games)
}
