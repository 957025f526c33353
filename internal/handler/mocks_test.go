package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/courtside/pickem/internal/domain"
)

type MockGamesService struct {
	mock.Mock
}

func (m *MockGamesService) Initialize(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGamesService) GamesForDate(ctx context.Context, date string) ([]*domain.Game, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Game), args.Error(1)
}

func (m *MockGamesService) ApplyPick(date string, pick domain.Pick) {
	m.Called(date, pick)
}

func (m *MockGamesService) RemovePick(date string, gameID int64, userID string) {
	m.Called(date, gameID, userID)
}

func (m *MockGamesService) InvalidateDate(date string) bool {
	return m.Called(date).Bool(0)
}

func (m *MockGamesService) Shift(date string, days int) (string, error) {
	args := m.Called(date, days)
	return args.String(0), args.Error(1)
}

func (m *MockGamesService) Today() string {
	return m.Called().String(0)
}

type MockPicksService struct {
	mock.Mock
}

func (m *MockPicksService) SubmitPick(ctx context.Context, userID string, req domain.SubmitPickRequest) (*domain.Pick, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pick), args.Error(1)
}

func (m *MockPicksService) CancelPick(ctx context.Context, userID, date string, gameID int64) error {
	return m.Called(ctx, userID, date, gameID).Error(0)
}

func (m *MockPicksService) Budget(ctx context.Context, userID, date string) (*domain.ConfidenceBudget, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConfidenceBudget), args.Error(1)
}

type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) FetchStandings(ctx context.Context, season int, postseason bool) (*domain.Standings, error) {
	args := m.Called(ctx, season, postseason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Standings), args.Error(1)
}

func (m *MockLeaderboardService) Ranked(ctx context.Context, season int, postseason bool) ([]domain.RankedEntry, error) {
	args := m.Called(ctx, season, postseason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankedEntry), args.Error(1)
}

func (m *MockLeaderboardService) YesterdayReport(ctx context.Context, season int, postseason bool, userID string) (*domain.YesterdayReport, error) {
	args := m.Called(ctx, season, postseason, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.YesterdayReport), args.Error(1)
}

func (m *MockLeaderboardService) InvalidateStandings(season int, postseason bool) bool {
	return m.Called(season, postseason).Bool(0)
}

func (m *MockLeaderboardService) FetchScoreStats(ctx context.Context, season int, postseason bool) ([]domain.ScoreStats, error) {
	args := m.Called(ctx, season, postseason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScoreStats), args.Error(1)
}

func (m *MockLeaderboardService) InvalidateScoreStats(season int, postseason bool) bool {
	return m.Called(season, postseason).Bool(0)
}

func (m *MockLeaderboardService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

type MockDailyResultsService struct {
	mock.Mock
}

func (m *MockDailyResultsService) FindLastCompletedDate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockDailyResultsService) SnapshotForDate(ctx context.Context, date string) ([]domain.DailyResult, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyResult), args.Error(1)
}

func (m *MockDailyResultsService) Latest(ctx context.Context, userID string) (*domain.DailySnapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySnapshot), args.Error(1)
}

func (m *MockDailyResultsService) ForDate(ctx context.Context, date, userID string) (*domain.DailySnapshot, error) {
	args := m.Called(ctx, date, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySnapshot), args.Error(1)
}

func (m *MockDailyResultsService) InvalidateSnapshot(date string) bool {
	return m.Called(date).Bool(0)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
