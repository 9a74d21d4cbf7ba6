package domain

// LeaderboardEntry is a single scored result. Rank is a derived field:
// it is computed over a score-sorted view at read time and never stored
// back, so an entry's rank is always consistent with the query that
// produced it.
type LeaderboardEntry struct {
	ID       string   `json:"id"`
	Rank     int      `json:"rank"`
	Username string   `json:"username"`
	Score    int      `json:"score"`
	GameMode GameMode `json:"gameMode"`
	Date     Date     `json:"date"`
}
