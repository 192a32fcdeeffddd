package models

// Score breakdown keys
const (
	SubScoreDistance      = "distance"
	SubScoreReputation    = "reputation"
	SubScoreAccessibility = "accessibility"
)

// SubScore is one named component of a match score
type SubScore struct {
	Raw      float64 `json:"raw"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// MatchResult is a booking the driver is eligible for, with its ranking score
type MatchResult struct {
	Booking        *BookingCandidate   `json:"booking"`
	Score          float64             `json:"score"`
	Distance       float64             `json:"distance"`
	ScoreBreakdown map[string]SubScore `json:"scoreBreakdown"`
}

// MatchPage is a window over a ranked result list
type MatchPage struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// MatchList is the paginated response for a driver's matches
type MatchList struct {
	DriverID string         `json:"driverId"`
	Total    int            `json:"total"`
	Limit    int            `json:"limit"`
	Offset   int            `json:"offset"`
	Matches  []*MatchResult `json:"matches"`
}
