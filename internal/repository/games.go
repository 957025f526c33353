package repository

import (
	"context"

	"github.com/courtside/pickem/internal/domain"
)

// Games defines the interface for game schedule data access
type Games interface {
	// ListGamesByDate returns the day's games with every pick made on them
	ListGamesByDate(ctx context.Context, date string, season int) ([]domain.GameRow, error)
	// ListLast5ResultsPerTeam returns recent results, most recent first per team
	ListLast5ResultsPerTeam(ctx context.Context, season int) ([]domain.TeamResult, error)
	UpsertGames(ctx context.Context, games []domain.ScheduledGame) (int, error)
}

// Picks defines the interface for pick persistence
type Picks interface {
	// UpsertPick inserts a pick, or updates it in place when ID is set
	UpsertPick(ctx context.Context, pick domain.PickUpsert) (*domain.Pick, error)
	// DeletePick removes a pick owned by userID and returns the rows deleted
	DeletePick(ctx context.Context, id int64, userID string) (int64, error)
}

// Leaderboard defines the interface for season aggregates
type Leaderboard interface {
	GetUserPicksSummary(ctx context.Context, season int, postseason bool) ([]domain.UserPicksSummary, error)
	GetUserPicksPastRecord(ctx context.Context, season int, postseason bool) ([]domain.PastRecord, error)
	GetLeaderboardStats(ctx context.Context, season int, postseason bool) ([]domain.ScoreStats, error)
}

// DailyResults defines the interface for single game day lookups
type DailyResults interface {
	HasFinalGameOn(ctx context.Context, date string) (bool, error)
	ListGameIDsByDate(ctx context.Context, date string) ([]int64, error)
	// ListPicksForGames returns picks joined with the picking user's profile
	ListPicksForGames(ctx context.Context, gameIDs []int64) ([]domain.DayPick, error)
}

// Teams defines the interface for the team catalog
type Teams interface {
	// ListTeams returns every team ordered by name
	ListTeams(ctx context.Context) ([]domain.Team, error)
}
