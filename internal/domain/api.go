package domain

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /auth/signup
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SubmitScoreRequest is the body of POST /leaderboard
type SubmitScoreRequest struct {
	Score    int      `json:"score"`
	GameMode GameMode `json:"gameMode"`
}

// AuthResponse is the envelope for login, signup and current-user
// operations. Token carries the bearer token issued on successful
// login/signup; the password never appears in any response.
type AuthResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

// LogoutResponse is the envelope for POST /auth/logout
type LogoutResponse struct {
	Success bool `json:"success"`
}

// LeaderboardResponse is the envelope for GET /leaderboard
type LeaderboardResponse struct {
	Success bool               `json:"success"`
	Entries []LeaderboardEntry `json:"entries"`
	Error   string             `json:"error,omitempty"`
}

// SubmitScoreResponse is the envelope for POST /leaderboard
type SubmitScoreResponse struct {
	Success bool              `json:"success"`
	Entry   *LeaderboardEntry `json:"entry,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// ActivePlayersResponse is the envelope for GET /spectate/active
type ActivePlayersResponse struct {
	Success bool           `json:"success"`
	Players []ActivePlayer `json:"players"`
	Error   string         `json:"error,omitempty"`
}

// GameStateResponse is the envelope for GET /spectate/{playerID}
type GameStateResponse struct {
	Success   bool       `json:"success"`
	GameState *GameState `json:"gameState,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// MessageResponse is the envelope for the root endpoint
type MessageResponse struct {
	Message string `json:"message"`
}
