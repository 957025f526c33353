package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_State(t *testing.T) {
	now := time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	earlier := now.Add(-time.Hour)

	tests := []struct {
		name string
		game Game
		want GameState
	}{
		{"scheduled in the future", Game{StartsAt: &later}, GameStateNotStarted},
		{"start time passed", Game{StartsAt: &earlier}, GameStateLocked},
		{"in progress status", Game{Status: "3rd Qtr"}, GameStateLocked},
		{"final", Game{Status: GameStatusFinal}, GameStateFinal},
		{"final wins over start time", Game{Status: GameStatusFinal, StartsAt: &later}, GameStateFinal},
		{"start time equal to now", Game{StartsAt: &now}, GameStateLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.game.State(now))
		})
	}
}

func TestGame_StartedBefore(t *testing.T) {
	now := time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Minute)

	assert.True(t, (&Game{StartsAt: &earlier}).StartedBefore(now))
	assert.False(t, (&Game{StartsAt: &now}).StartedBefore(now))
	assert.False(t, (&Game{Status: GameStatusFinal}).StartedBefore(now))
}

func TestGame_WinnerID(t *testing.T) {
	g := Game{HomeTeam: TeamSide{ID: 1, Score: 101}, AwayTeam: TeamSide{ID: 2, Score: 99}}
	assert.Equal(t, int64(1), g.WinnerID())

	g.AwayTeam.Score = 110
	assert.Equal(t, int64(2), g.WinnerID())

	g.AwayTeam.Score = 101
	assert.Equal(t, int64(2), g.WinnerID(), "ties resolve to the away side")
}

func TestGame_Clone(t *testing.T) {
	g := &Game{
		ID:       1,
		Picks:    map[string]Pick{"u1": {ID: 7, UserID: "u1"}},
		HomeTeam: TeamSide{Picks: []Pick{{ID: 7}}},
	}

	c := g.Clone()
	c.Picks["u2"] = Pick{ID: 8}
	c.HomeTeam.Picks = append(c.HomeTeam.Picks, Pick{ID: 8})

	assert.Len(t, g.Picks, 1)
	assert.Len(t, g.HomeTeam.Picks, 1)
	assert.Len(t, c.Picks, 2)
}

func TestParseStartTime(t *testing.T) {
	ts, ok := ParseStartTime("2025-01-10T19:30:00Z")
	require.True(t, ok)
	assert.Equal(t, 19, ts.Hour())

	_, ok = ParseStartTime(GameStatusFinal)
	assert.False(t, ok)

	_, ok = ParseStartTime("4th Qtr")
	assert.False(t, ok)
}

func TestPick_Weight(t *testing.T) {
	assert.Equal(t, 1, Pick{}.Weight())
	assert.Equal(t, 4, Pick{ConfidenceScore: 4}.Weight())
}
