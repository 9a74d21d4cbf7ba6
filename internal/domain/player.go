package domain

import "time"

// User represents a registered account
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActivePlayer is a spectatable session record paired with a game-state
// snapshot. Username is a denormalized copy, not a reference to a User.
type ActivePlayer struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	GameState GameState `json:"gameState"`
	StartedAt time.Time `json:"startedAt"`
}
