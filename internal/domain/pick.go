package domain

// DefaultConfidenceScore is applied to picks stored without a weight
const DefaultConfidenceScore = 1

// Pick is a user's chosen winner for a game
type Pick struct {
	ID              int64  `json:"id"`
	GameID          int64  `json:"game_id"`
	UserID          string `json:"user_id"`
	PickedTeam      int64  `json:"picked_team"`
	ConfidenceScore int    `json:"confidence_score"`

	// Correct is nil until the game is graded
	Correct *bool `json:"correct"`
}

// Weight returns the confidence weight, treating an unset score as the default
func (p Pick) Weight() int {
	if p.ConfidenceScore <= 0 {
		return DefaultConfidenceScore
	}
	return p.ConfidenceScore
}

// PickUpsert is the write model for inserting or updating a pick.
// A zero ID inserts a new row.
type PickUpsert struct {
	ID              int64
	GameID          int64
	UserID          string
	PickedTeam      int64
	ConfidenceScore int
	Correct         *bool
}

// SubmitPickRequest is a pick submission for one game on a game day
type SubmitPickRequest struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	GameID          int64  `json:"game_id" validate:"required,min=1"`
	TeamID          int64  `json:"team_id" validate:"required,min=1"`
	ConfidenceScore int    `json:"confidence_score" validate:"omitempty,min=1,max=100"`
}

// CancelPickRequest removes a user's pick on one game
type CancelPickRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	GameID int64  `json:"game_id" validate:"required,min=1"`
}

// ConfidenceBudget summarizes a user's confidence for one game day
type ConfidenceBudget struct {
	Date      string `json:"date"`
	Ceiling   int    `json:"ceiling"`
	Committed int    `json:"committed"`
	Remaining int    `json:"remaining"`
}
