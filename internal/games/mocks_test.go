package games

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/courtside/pickem/internal/domain"
)

// MockRepository implements repository.Games for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListGamesByDate(ctx context.Context, date string, season int) ([]domain.GameRow, error) {
	args := m.Called(ctx, date, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameRow), args.Error(1)
}

func (m *MockRepository) ListLast5ResultsPerTeam(ctx context.Context, season int) ([]domain.TeamResult, error) {
	args := m.Called(ctx, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamResult), args.Error(1)
}

func (m *MockRepository) UpsertGames(ctx context.Context, games []domain.ScheduledGame) (int, error) {
	args := m.Called(ctx, games)
	return args.Int(0), args.Error(1)
}

// MockInjurySource implements injury.Source for testing
type MockInjurySource struct {
	mock.Mock
}

func (m *MockInjurySource) Fetch(ctx context.Context) ([]domain.Injury, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Injury), args.Error(1)
}
