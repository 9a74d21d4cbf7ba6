package domain

import "errors"

// Domain errors. The messages are part of the wire contract: clients
// match on them, so they must not change.
var (
	ErrUserNotFound    = errors.New("User not found. Please sign up first.")
	ErrInvalidPassword = errors.New("Invalid password.")
	ErrEmailTaken      = errors.New("Email already registered.")
	ErrUsernameTaken   = errors.New("Username already taken.")
	ErrNotLoggedIn     = errors.New("Not logged in")
	ErrScoreNeedsLogin = errors.New("Must be logged in to submit score")
	ErrPlayerNotFound  = errors.New("Player not found or no longer playing")
)
