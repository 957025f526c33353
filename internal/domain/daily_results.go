package domain

// UnknownPlayerName is shown for picks whose profile could not be joined
const UnknownPlayerName = "Unknown"

// DayPick is a pick on a game day joined with the picking user's profile
type DayPick struct {
	UserID          string
	ConfidenceScore int
	Correct         *bool
	FullName        *string
	Username        *string
	AvatarURL       *string
}

// DailyResult is one user's aggregate for a single game day
type DailyResult struct {
	UserID       string  `json:"user_id"`
	FullName     string  `json:"user_full_name"`
	Username     string  `json:"username,omitempty"`
	AvatarURL    string  `json:"avatar_url,omitempty"`
	TotalPicks   int     `json:"total_picks"`
	CorrectPicks int     `json:"correct_picks"`
	Points       int     `json:"points"`
	Accuracy     float64 `json:"accuracy"`
}

// DailySnapshot is the ranking for the most recent completed game day
type DailySnapshot struct {
	Date          string        `json:"date"`
	FormattedDate string        `json:"formatted_date"`
	Results       []DailyResult `json:"results"`

	// User and Rank are set when the requesting user played that day
	User *DailyResult `json:"user,omitempty"`
	Rank *int         `json:"rank,omitempty"`
}
