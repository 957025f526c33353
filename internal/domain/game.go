package domain

import "time"

// GameState is the pickability state of a game
type GameState string

const (
	// GameStateNotStarted accepts new and changed picks
	GameStateNotStarted GameState = "not_started"
	// GameStateLocked means the game has tipped off or its start time has passed
	GameStateLocked GameState = "locked"
	// GameStateFinal means the game has concluded
	GameStateFinal GameState = "final"
)

// GameStatusFinal is the terminal status marker written by the schedule feed
const GameStatusFinal = "Final"

// DateLayout is the calendar date format used for game days
const DateLayout = "2006-01-02"

// TeamSide holds one side of a game as shaped for display
type TeamSide struct {
	ID           int64    `json:"id"`
	Abbreviation string   `json:"abbreviation"`
	Name         string   `json:"name,omitempty"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
	Score        int      `json:"score"`
	Record       []string `json:"record"`
	Injuries     []Injury `json:"injuries,omitempty"`
	Picks        []Pick   `json:"picks"`
}

// Game is a scheduled game with the picks made on it
type Game struct {
	ID         int64      `json:"game_id"`
	Date       string     `json:"date"`
	Season     int        `json:"season"`
	Postseason bool       `json:"postseason"`
	Status     string     `json:"game_status"`
	StartsAt   *time.Time `json:"starts_at,omitempty"`
	HomeTeam   TeamSide   `json:"home_team"`
	AwayTeam   TeamSide   `json:"away_team"`

	// Picks maps user id to that user's pick on this game
	Picks map[string]Pick `json:"picks"`
}

// ParseStartTime interprets a raw game status as a scheduled start time.
// The schedule feed stores the tip-off timestamp in the status column until
// the game begins, after which the status becomes a period or "Final".
func ParseStartTime(status string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, status); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsFinal reports whether the game has concluded
func (g *Game) IsFinal() bool {
	return g.Status == GameStatusFinal
}

// HasScheduledStart reports whether the game still carries a parseable start time
func (g *Game) HasScheduledStart() bool {
	return g.StartsAt != nil
}

// State resolves the pickability state at the given instant
func (g *Game) State(now time.Time) GameState {
	switch {
	case g.IsFinal():
		return GameStateFinal
	case g.StartsAt != nil && now.Before(*g.StartsAt):
		return GameStateNotStarted
	default:
		return GameStateLocked
	}
}

// StartedBefore reports whether the scheduled start is strictly before now.
// Games without a known start time never report true.
func (g *Game) StartedBefore(now time.Time) bool {
	return g.StartsAt != nil && g.StartsAt.Before(now)
}

// HasTeam reports whether teamID plays in this game
func (g *Game) HasTeam(teamID int64) bool {
	return teamID == g.HomeTeam.ID || teamID == g.AwayTeam.ID
}

// WinnerID returns the id of the higher scoring side. A tie resolves to the
// away side.
func (g *Game) WinnerID() int64 {
	if g.HomeTeam.Score > g.AwayTeam.Score {
		return g.HomeTeam.ID
	}
	return g.AwayTeam.ID
}

// Clone returns a copy of the game whose picks map and pick slices can be
// modified without affecting the original
func (g *Game) Clone() *Game {
	c := *g
	c.Picks = make(map[string]Pick, len(g.Picks))
	for k, v := range g.Picks {
		c.Picks[k] = v
	}
	c.HomeTeam.Picks = append([]Pick(nil), g.HomeTeam.Picks...)
	c.AwayTeam.Picks = append([]Pick(nil), g.AwayTeam.Picks...)
	return &c
}

// GameRow is a game as returned by the daily game listing, before shaping
type GameRow struct {
	ID                   int64
	Date                 string
	Season               int
	Postseason           bool
	Status               string
	HomeTeamID           int64
	AwayTeamID           int64
	HomeTeamAbbreviation string
	AwayTeamAbbreviation string
	HomeTeamWins         *int
	HomeTeamLosses       *int
	AwayTeamWins         *int
	AwayTeamLosses       *int
	HomeTeamScore        int
	AwayTeamScore        int
	Picks                []Pick
}

// TeamResult is one historical outcome for a team, most recent first
type TeamResult struct {
	TeamID int64  `json:"team_id"`
	Result string `json:"result"`
}

// ScheduledGame is a game as delivered by the schedule feed
type ScheduledGame struct {
	ID            int64
	Date          string
	Season        int
	Postseason    bool
	Period        int
	Time          string
	Status        string
	HomeTeam      Team
	AwayTeam      Team
	HomeTeamScore int
	AwayTeamScore int
}
