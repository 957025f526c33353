package domain

// Injury is a player status entry from the injury report
type Injury struct {
	Team     string `json:"team"`
	Player   string `json:"player"`
	Injury   string `json:"injury"`
	Position string `json:"position"`
	Status   string `json:"status"`
}
