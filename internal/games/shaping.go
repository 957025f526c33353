package games

import "github.com/courtside/pickem/internal/domain"

// shapeGame turns a listing row into a display game. results must be ordered
// most recent first per team; the record is emitted most recent last.
func shapeGame(row domain.GameRow, results []domain.TeamResult, injuries []domain.Injury) *domain.Game {
	g := &domain.Game{
		ID:         row.ID,
		Date:       row.Date,
		Season:     row.Season,
		Postseason: row.Postseason,
		Status:     row.Status,
		HomeTeam: domain.TeamSide{
			ID:           row.HomeTeamID,
			Abbreviation: row.HomeTeamAbbreviation,
			Wins:         intOrZero(row.HomeTeamWins),
			Losses:       intOrZero(row.HomeTeamLosses),
			Score:        row.HomeTeamScore,
			Record:       teamRecord(results, row.HomeTeamID),
			Picks:        []domain.Pick{},
		},
		AwayTeam: domain.TeamSide{
			ID:           row.AwayTeamID,
			Abbreviation: row.AwayTeamAbbreviation,
			Wins:         intOrZero(row.AwayTeamWins),
			Losses:       intOrZero(row.AwayTeamLosses),
			Score:        row.AwayTeamScore,
			Record:       teamRecord(results, row.AwayTeamID),
			Picks:        []domain.Pick{},
		},
		Picks: make(map[string]domain.Pick, len(row.Picks)),
	}

	if t, ok := domain.ParseStartTime(row.Status); ok {
		g.StartsAt = &t
	}

	for _, p := range row.Picks {
		switch p.PickedTeam {
		case g.HomeTeam.ID:
			g.HomeTeam.Picks = append(g.HomeTeam.Picks, p)
		case g.AwayTeam.ID:
			g.AwayTeam.Picks = append(g.AwayTeam.Picks, p)
		}
		g.Picks[p.UserID] = p
	}

	// Injury reports only matter while the game is still upcoming
	if g.HasScheduledStart() {
		g.HomeTeam.Injuries = teamInjuries(injuries, g.HomeTeam.Abbreviation)
		g.AwayTeam.Injuries = teamInjuries(injuries, g.AwayTeam.Abbreviation)
	}

	return g
}

func teamRecord(results []domain.TeamResult, teamID int64) []string {
	record := make([]string, 0, domain.RecordLength)
	for _, r := range results {
		if r.TeamID != teamID {
			continue
		}
		record = append(record, r.Result)
		if len(record) == domain.RecordLength {
			break
		}
	}
	for i, j := 0, len(record)-1; i < j; i, j = i+1, j-1 {
		record[i], record[j] = record[j], record[i]
	}
	return record
}

func teamInjuries(injuries []domain.Injury, abbreviation string) []domain.Injury {
	var out []domain.Injury
	for _, i := range injuries {
		if i.Team == abbreviation {
			out = append(out, i)
		}
	}
	return out
}

// withPick returns a copy of g with userID's pick replaced by pick
func withPick(g *domain.Game, pick domain.Pick) *domain.Game {
	c := withoutPick(g, pick.UserID)
	c.Picks[pick.UserID] = pick
	switch pick.PickedTeam {
	case c.HomeTeam.ID:
		c.HomeTeam.Picks = append(c.HomeTeam.Picks, pick)
	case c.AwayTeam.ID:
		c.AwayTeam.Picks = append(c.AwayTeam.Picks, pick)
	}
	return c
}

// withoutPick returns a copy of g with userID's pick removed
func withoutPick(g *domain.Game, userID string) *domain.Game {
	c := g.Clone()
	delete(c.Picks, userID)
	c.HomeTeam.Picks = dropUser(c.HomeTeam.Picks, userID)
	c.AwayTeam.Picks = dropUser(c.AwayTeam.Picks, userID)
	return c
}

func dropUser(picks []domain.Pick, userID string) []domain.Pick {
	out := make([]domain.Pick, 0, len(picks))
	for _, p := range picks {
		if p.UserID != userID {
			out = append(out, p)
		}
	}
	return out
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
