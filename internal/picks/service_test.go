package picks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/concurrency"
	"github.com/courtside/pickem/internal/confidence"
	"github.com/courtside/pickem/internal/domain"
	"github.com/courtside/pickem/internal/metrics"
)

const (
	gameDay = "2025-01-10"
	alice   = "11111111-1111-1111-1111-111111111111"
	bob     = "22222222-2222-2222-2222-222222222222"
)

var now = time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)

func upcoming(id int64) *domain.Game {
	start := now.Add(2 * time.Hour)
	return &domain.Game{
		ID:       id,
		Date:     gameDay,
		Status:   start.Format(time.RFC3339),
		StartsAt: &start,
		HomeTeam: domain.TeamSide{ID: id * 10},
		AwayTeam: domain.TeamSide{ID: id*10 + 1},
		Picks:    map[string]domain.Pick{},
	}
}

type fixture struct {
	svc   Service
	repo  *fakePickRepository
	games *fakeGames
}

func newFixture(allowPast bool, games ...*domain.Game) fixture {
	repo := newFakePickRepository()
	fg := newFakeGames(gameDay, games...)
	svc := NewService(repo, fg, concurrency.NewLockManager(), clock.NewSimulatedClock(now), Options{
		AllowPastVotes: allowPast,
		Policy:         confidence.DefaultPolicy(),
	})
	return fixture{svc: svc, repo: repo, games: fg}
}

func (f fixture) submit(t *testing.T, userID string, gameID, teamID int64, score int) (*domain.Pick, error) {
	t.Helper()
	return f.svc.SubmitPick(context.Background(), userID, domain.SubmitPickRequest{
		Date: gameDay, GameID: gameID, TeamID: teamID, ConfidenceScore: score,
	})
}

func (f fixture) budget(t *testing.T, userID string) *domain.ConfidenceBudget {
	t.Helper()
	b, err := f.svc.Budget(context.Background(), userID, gameDay)
	require.NoError(t, err)
	return b
}

func counterValue(t *testing.T, c prometheus.Metric) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.Counter.GetValue()
}

func TestBudget_CeilingAndRemaining(t *testing.T) {
	f := newFixture(false, upcoming(1), upcoming(2), upcoming(3))

	b := f.budget(t, alice)
	assert.Equal(t, 5, b.Ceiling)
	assert.Equal(t, 0, b.Committed)
	assert.Equal(t, 5, b.Remaining)

	_, err := f.submit(t, alice, 1, 10, 2)
	require.NoError(t, err)
	_, err = f.submit(t, alice, 2, 20, 3)
	require.NoError(t, err)

	b = f.budget(t, alice)
	assert.Equal(t, 5, b.Committed)
	assert.Equal(t, 0, b.Remaining)

	_, err = f.submit(t, alice, 3, 30, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientConfidence)

	// Another user's budget is independent
	assert.Equal(t, 5, f.budget(t, bob).Remaining)
}

func TestSubmitPick_ResubmitChargesDelta(t *testing.T) {
	f := newFixture(false, upcoming(1), upcoming(2))

	first, err := f.submit(t, alice, 1, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, f.budget(t, alice).Committed)

	second, err := f.submit(t, alice, 1, 11, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, f.budget(t, alice).Committed)
	assert.Equal(t, first.ID, second.ID, "resubmission updates the same pick")
	assert.Equal(t, first.ID, f.repo.upserts[1].ID)

	// Raising back to the full ceiling only needs the difference
	_, err = f.submit(t, alice, 1, 11, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, f.budget(t, alice).Committed)
}

func TestSubmitPick_InsufficientConfidenceReportsDelta(t *testing.T) {
	f := newFixture(false, upcoming(1), upcoming(2))

	_, err := f.submit(t, alice, 1, 10, 3)
	require.NoError(t, err)

	before := counterValue(t, metrics.PicksRejected.WithLabelValues(ReasonNoConfidence))
	_, err = f.submit(t, alice, 2, 20, 2)
	require.Error(t, err)

	var budgetErr confidence.ErrInsufficientConfidence
	require.True(t, errors.As(err, &budgetErr))
	assert.Equal(t, 1, budgetErr.Remaining)
	assert.Equal(t, 2, budgetErr.Requested)
	assert.Contains(t, err.Error(), domain.ErrMsgInsufficientConfidence)
	assert.Equal(t, before+1, counterValue(t, metrics.PicksRejected.WithLabelValues(ReasonNoConfidence)))
	assert.Equal(t, 1, f.repo.upsertCount(), "rejected pick is not persisted")
}

func TestSubmitPick_DefaultsScoreToOne(t *testing.T) {
	f := newFixture(false, upcoming(1))

	pick, err := f.submit(t, alice, 1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, pick.ConfidenceScore)

	_, err = f.submit(t, alice, 1, 10, -2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmitPick_Unauthenticated(t *testing.T) {
	f := newFixture(false, upcoming(1))

	_, err := f.submit(t, "", 1, 10, 1)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, 0, f.repo.upsertCount())
}

func TestSubmitPick_UnknownGameOrTeam(t *testing.T) {
	f := newFixture(false, upcoming(1))

	_, err := f.submit(t, alice, 99, 10, 1)
	assert.ErrorIs(t, err, domain.ErrGameNotFound)

	_, err = f.submit(t, alice, 1, 55, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidTeam)
}

func TestSubmitPick_StartedGameAlwaysRejected(t *testing.T) {
	for _, allowPast := range []bool{false, true} {
		started := upcoming(1)
		past := now.Add(-time.Minute)
		started.StartsAt = &past

		f := newFixture(allowPast, started)
		_, err := f.submit(t, alice, 1, 10, 1)
		assert.ErrorIs(t, err, domain.ErrGameAlreadyStarted, "allowPastVotes=%t", allowPast)
		assert.Equal(t, 0, f.repo.upsertCount())
	}
}

func TestSubmitPick_PickWindow(t *testing.T) {
	inProgress := &domain.Game{
		ID:       1,
		Status:   "3rd Qtr",
		HomeTeam: domain.TeamSide{ID: 10},
		AwayTeam: domain.TeamSide{ID: 11},
		Picks:    map[string]domain.Pick{},
	}

	f := newFixture(false, inProgress)
	_, err := f.submit(t, alice, 1, 10, 1)
	assert.ErrorIs(t, err, domain.ErrPickWindowClosed)

	f = newFixture(true, inProgress.Clone())
	pick, err := f.submit(t, alice, 1, 10, 1)
	require.NoError(t, err)
	assert.Nil(t, pick.Correct, "games still in progress stay ungraded")
}

func TestSubmitPick_LatePickOnFinalGameIsGraded(t *testing.T) {
	final := &domain.Game{
		ID:       1,
		Status:   domain.GameStatusFinal,
		HomeTeam: domain.TeamSide{ID: 10, Score: 99},
		AwayTeam: domain.TeamSide{ID: 11, Score: 104},
		Picks:    map[string]domain.Pick{},
	}
	f := newFixture(true, final)

	pick, err := f.submit(t, alice, 1, 11, 1)
	require.NoError(t, err)
	require.NotNil(t, pick.Correct)
	assert.True(t, *pick.Correct)

	pick, err = f.submit(t, alice, 1, 10, 1)
	require.NoError(t, err)
	require.NotNil(t, pick.Correct)
	assert.False(t, *pick.Correct)
}

func TestSubmitPick_BackendErrorLeavesRosterUntouched(t *testing.T) {
	f := newFixture(false, upcoming(1))
	f.repo.upsertErr = errors.New(`duplicate key value violates unique constraint "picks_game_id_user_id_key"`)

	_, err := f.submit(t, alice, 1, 10, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Contains(t, err.Error(), "duplicate key value")
	assert.Equal(t, 0, f.budget(t, alice).Committed)
}

func TestCancelPick_RestoresWeight(t *testing.T) {
	f := newFixture(false, upcoming(1), upcoming(2))
	ctx := context.Background()

	_, err := f.submit(t, alice, 1, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, f.budget(t, alice).Remaining)

	require.NoError(t, f.svc.CancelPick(ctx, alice, gameDay, 1))
	assert.Equal(t, 4, f.budget(t, alice).Remaining)
	assert.Empty(t, f.repo.rows)
}

func TestCancelPick_NoPickIsNoop(t *testing.T) {
	f := newFixture(false, upcoming(1))
	assert.NoError(t, f.svc.CancelPick(context.Background(), alice, gameDay, 1))
}

func TestCancelPick_ZeroRowsIsNotFound(t *testing.T) {
	f := newFixture(false, upcoming(1))
	_, err := f.submit(t, alice, 1, 10, 2)
	require.NoError(t, err)

	f.repo.deleteNone = true
	err = f.svc.CancelPick(context.Background(), alice, gameDay, 1)
	assert.ErrorIs(t, err, domain.ErrPickNotFound)
	assert.Equal(t, 2, f.budget(t, alice).Committed, "roster keeps the pick")
}

func TestCancelPick_TransportErrorIsDistinct(t *testing.T) {
	f := newFixture(false, upcoming(1))
	_, err := f.submit(t, alice, 1, 10, 1)
	require.NoError(t, err)

	f.repo.deleteErr = errors.New("connection reset")
	err = f.svc.CancelPick(context.Background(), alice, gameDay, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPickNotFound)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Contains(t, err.Error(), ErrMsgDeletePick)
}

func TestCancelPick_LockedGame(t *testing.T) {
	g := upcoming(1)
	g.Picks[alice] = domain.Pick{ID: 5, GameID: 1, UserID: alice, PickedTeam: 10, ConfidenceScore: 1}
	past := now.Add(-time.Hour)
	g.StartsAt = &past

	f := newFixture(true, g)
	err := f.svc.CancelPick(context.Background(), alice, gameDay, 1)
	assert.ErrorIs(t, err, domain.ErrGameAlreadyStarted)

	err = f.svc.CancelPick(context.Background(), "", gameDay, 1)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSubmitPick_ConcurrentSubmissionsNeverOverspend(t *testing.T) {
	// Ceiling is 5; only two weight-2 picks fit
	f := newFixture(false, upcoming(1), upcoming(2), upcoming(3))

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for _, id := range []int64{1, 2, 3} {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if _, err := f.submit(t, alice, id, id*10, 2); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	b := f.budget(t, alice)
	assert.Equal(t, 2, accepted)
	assert.Equal(t, 4, b.Committed)
	assert.LessOrEqual(t, b.Committed, b.Ceiling)
}
