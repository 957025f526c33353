// Package schedule pulls upcoming games from the third-party schedule API and
// stores them for the game roster.
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/logger"
)

// Fetcher returns the games scheduled on the given dates of a season
type Fetcher interface {
	FetchGames(ctx context.Context, season int, dates []string) ([]domain.ScheduledGame, error)
}

// Client reads games from the schedule API, following cursor pagination
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a schedule client. A zero timeout uses DefaultTimeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type apiTeam struct {
	ID           int64  `json:"id"`
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"full_name"`
}

type apiGame struct {
	ID               int64   `json:"id"`
	Date             string  `json:"date"`
	Season           int     `json:"season"`
	Status           string  `json:"status"`
	Period           int     `json:"period"`
	Time             *string `json:"time"`
	Postseason       bool    `json:"postseason"`
	HomeTeamScore    int     `json:"home_team_score"`
	VisitorTeamScore int     `json:"visitor_team_score"`
	HomeTeam         apiTeam `json:"home_team"`
	VisitorTeam      apiTeam `json:"visitor_team"`
}

type apiPage struct {
	Data []apiGame `json:"data"`
	Meta struct {
		NextCursor *int64 `json:"next_cursor"`
	} `json:"meta"`
}

// FetchGames pages through every game on dates for season
func (c *Client) FetchGames(ctx context.Context, season int, dates []string) ([]domain.ScheduledGame, error) {
	log := logger.FromContext(ctx)

	var games []domain.ScheduledGame
	var cursor *int64
	for page := 0; ; page++ {
		if page == maxPages {
			return nil, errors.New(ErrMsgTooManyPages)
		}

		log.Debug(LogMsgFetchingPage, "season", season, "page", page)
		p, err := c.fetchPage(ctx, season, dates, cursor)
		if err != nil {
			return nil, err
		}

		for _, g := range p.Data {
			sg, ok := toScheduledGame(g)
			if !ok {
				log.Warn(LogMsgSkippedGame, "game_id", g.ID, "date", g.Date)
				continue
			}
			games = append(games, sg)
		}

		if p.Meta.NextCursor == nil {
			return games, nil
		}
		cursor = p.Meta.NextCursor
	}
}

func (c *Client) fetchPage(ctx context.Context, season int, dates []string, cursor *int64) (*apiPage, error) {
	q := url.Values{}
	q.Add("seasons[]", strconv.Itoa(season))
	for _, d := range dates {
		q.Add("dates[]", d)
	}
	q.Set("per_page", strconv.Itoa(PageSize))
	if cursor != nil {
		q.Set("cursor", strconv.FormatInt(*cursor, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+gamesPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildRequest, err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf(ErrMsgBadStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var p apiPage
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodePage, err)
	}
	return &p, nil
}

// toScheduledGame maps an API game, trimming timestamped dates to the
// calendar day
func toScheduledGame(g apiGame) (domain.ScheduledGame, bool) {
	if g.ID == 0 || len(g.Date) < len(domain.DateLayout) || g.HomeTeam.ID == 0 || g.VisitorTeam.ID == 0 {
		return domain.ScheduledGame{}, false
	}
	date := g.Date[:len(domain.DateLayout)]
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.ScheduledGame{}, false
	}

	sg := domain.ScheduledGame{
		ID:            g.ID,
		Date:          date,
		Season:        g.Season,
		Postseason:    g.Postseason,
		Period:        g.Period,
		Status:        g.Status,
		HomeTeamScore: g.HomeTeamScore,
		AwayTeamScore: g.VisitorTeamScore,
		HomeTeam:      domain.Team{ID: g.HomeTeam.ID, Name: g.HomeTeam.FullName, Abbreviation: g.HomeTeam.Abbreviation},
		AwayTeam:      domain.Team{ID: g.VisitorTeam.ID, Name: g.VisitorTeam.FullName, Abbreviation: g.VisitorTeam.Abbreviation},
	}
	if g.Time != nil {
		sg.Time = *g.Time
	}
	return sg, true
}
