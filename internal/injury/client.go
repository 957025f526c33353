// Package injury fetches the player injury report consumed by the game roster.
package injury

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/logger"
	"github.com/courtside/pickem/internal/metrics"
)

// Source provides the current injury report
type Source interface {
	Fetch(ctx context.Context) ([]domain.Injury, error)
}

// Client reads the injury report from the hosted feed function
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a feed client. A zero timeout uses DefaultTimeout.
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

// Fetch downloads and normalizes the report
func (c *Client) Fetch(ctx context.Context) ([]domain.Injury, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+reportPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildRequest, err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.InjuryFeedErrors.Inc()
		return nil, fmt.Errorf("%s: %w", ErrMsgRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.InjuryFeedErrors.Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf(ErrMsgBadStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var report []domain.Injury
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		metrics.InjuryFeedErrors.Inc()
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeReport, err)
	}

	normalize(report)
	logger.FromContext(ctx).Debug(LogMsgReportFetched, "entries", len(report))
	return report, nil
}

// normalize trims entries so they match team abbreviations and read
// consistently regardless of how the feed capitalizes them
func normalize(report []domain.Injury) {
	title := cases.Title(language.English)
	for i := range report {
		report[i].Team = strings.ToUpper(strings.TrimSpace(report[i].Team))
		report[i].Player = strings.TrimSpace(report[i].Player)
		report[i].Status = title.String(strings.TrimSpace(report[i].Status))
	}
}
