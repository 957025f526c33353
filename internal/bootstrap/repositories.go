package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtside/pickem/internal/database/postgres"
	"github.com/courtside/pickem/internal/repository"
)

// Repositories holds every repository implementation used by the application
type Repositories struct {
	Games        repository.Games
	Picks        repository.Picks
	Leaderboard  repository.Leaderboard
	Teams        repository.Teams
	DailyResults repository.DailyResults
}

// InitializeRepositories creates the postgres repositories. One game
// repository serves both the roster and the daily results lookups.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	gameRepo := postgres.NewGameRepository(dbPool)
	boardRepo := postgres.NewLeaderboardRepository(dbPool)
	return &Repositories{
		Games:        gameRepo,
		Picks:        postgres.NewPickRepository(dbPool),
		Leaderboard:  boardRepo,
		Teams:        boardRepo,
		DailyResults: gameRepo,
	}
}
