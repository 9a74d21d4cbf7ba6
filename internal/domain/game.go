package domain

import (
	"fmt"
	"time"
)

// GameMode represents the collision ruleset for a game
type GameMode string

const (
	GameModeWalls       GameMode = "walls"
	GameModePassThrough GameMode = "pass-through"
)

// Valid reports whether m is a known game mode
func (m GameMode) Valid() bool {
	return m == GameModeWalls || m == GameModePassThrough
}

// Direction represents the snake's current heading
type Direction string

const (
	DirectionUp    Direction = "UP"
	DirectionDown  Direction = "DOWN"
	DirectionLeft  Direction = "LEFT"
	DirectionRight Direction = "RIGHT"
)

// Valid reports whether d is a known direction
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}

// Position is a cell on the game grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SnakeSegment is one cell of the snake's body. DotSide is a rendering
// hint ("left" or "right") for alternating segment visuals; segments are
// ordered head first.
type SnakeSegment struct {
	Position
	DotSide string `json:"dotSide"`
}

// GameState is a snapshot of a single game in progress
type GameState struct {
	Snake      []SnakeSegment `json:"snake"`
	Food       Position       `json:"food"`
	Direction  Direction      `json:"direction"`
	Score      int            `json:"score"`
	IsGameOver bool           `json:"isGameOver"`
	IsPaused   bool           `json:"isPaused"`
	GameMode   GameMode       `json:"gameMode"`
	Speed      int            `json:"speed"`
}

// MinSpeed is the fastest allowed tick interval in milliseconds. The
// speed derivation (150 - 5*length) is clamped here so long snakes
// cannot drive the interval to zero or below.
const MinSpeed = 50

// SpeedForLength returns the tick interval in milliseconds for a snake
// of the given length. Lower is faster.
func SpeedForLength(length int) int {
	speed := 150 - length*5
	if speed < MinSpeed {
		return MinSpeed
	}
	return speed
}

// Date is a calendar date without a time component. It marshals as
// "2006-01-02" on the wire.
type Date struct {
	time.Time
}

// NewDate creates a Date for the given calendar day
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	t, err := time.Parse("2006-01-02", s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("parsing date: %w", err)
	}
	d.Time = t
	return nil
}
