package picks

import (
	"context"
	"sync"

	"github.com/courtside/pickem/internal/domain"
)

// fakePickRepository is an in-memory repository.Picks
type fakePickRepository struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[int64]domain.Pick
	upserts   []domain.PickUpsert
	upsertErr error
	deleteErr error
	// deleteNone simulates a row owned by someone else
	deleteNone bool
}

func newFakePickRepository() *fakePickRepository {
	return &fakePickRepository{rows: make(map[int64]domain.Pick)}
}

func (r *fakePickRepository) UpsertPick(ctx context.Context, p domain.PickUpsert) (*domain.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts = append(r.upserts, p)
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	id := p.ID
	if id == 0 {
		r.nextID++
		id = r.nextID
	}
	stored := domain.Pick{
		ID:              id,
		GameID:          p.GameID,
		UserID:          p.UserID,
		PickedTeam:      p.PickedTeam,
		ConfidenceScore: p.ConfidenceScore,
		Correct:         p.Correct,
	}
	r.rows[id] = stored
	return &stored, nil
}

func (r *fakePickRepository) DeletePick(ctx context.Context, id int64, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	p, ok := r.rows[id]
	if r.deleteNone || !ok || p.UserID != userID {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *fakePickRepository) upsertCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.upserts)
}

// fakeGames is an in-memory games.Service holding fixed rosters
type fakeGames struct {
	mu      sync.Mutex
	rosters map[string][]*domain.Game
}

func newFakeGames(date string, games ...*domain.Game) *fakeGames {
	return &fakeGames{rosters: map[string][]*domain.Game{date: games}}
}

func (f *fakeGames) Initialize(ctx context.Context) error { return nil }

func (f *fakeGames) GamesForDate(ctx context.Context, date string) ([]*domain.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	games, ok := f.rosters[date]
	if !ok {
		return []*domain.Game{}, nil
	}
	return games, nil
}

func (f *fakeGames) ApplyPick(date string, pick domain.Pick) {
	f.rewrite(date, pick.GameID, func(g *domain.Game) { g.Picks[pick.UserID] = pick })
}

func (f *fakeGames) RemovePick(date string, gameID int64, userID string) {
	f.rewrite(date, gameID, func(g *domain.Game) { delete(g.Picks, userID) })
}

func (f *fakeGames) rewrite(date string, gameID int64, fn func(*domain.Game)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	games := f.rosters[date]
	next := make([]*domain.Game, len(games))
	for i, g := range games {
		next[i] = g
		if g.ID == gameID {
			c := g.Clone()
			fn(c)
			next[i] = c
		}
	}
	f.rosters[date] = next
}

func (f *fakeGames) InvalidateDate(date string) bool { return false }

func (f *fakeGames) Shift(date string, days int) (string, error) { return date, nil }

func (f *fakeGames) Today() string { return "" }
