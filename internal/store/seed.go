package store

import (
	"fmt"
	"time"

	"github.com/snake-showdown/internal/domain"
)

type userFixture struct {
	id       string
	username string
	email    string
	created  time.Time
}

type entryFixture struct {
	id       string
	username string
	score    int
	mode     domain.GameMode
	date     domain.Date
}

type playerFixture struct {
	id       string
	username string
	mode     domain.GameMode
	score    int
	length   int
	food     domain.Position
	heading  domain.Direction
}

// seedPassword is the shared credential for every fixture account
const seedPassword = "password123"

var userFixtures = []userFixture{
	{"1", "SnakeMaster", "snake@game.com", time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)},
	{"2", "RetroGamer", "retro@game.com", time.Date(2024, 2, 20, 14, 30, 0, 0, time.UTC)},
	{"3", "PixelKing", "pixel@game.com", time.Date(2024, 3, 10, 9, 15, 0, 0, time.UTC)},
	{"4", "ArcadeQueen", "arcade@game.com", time.Date(2024, 3, 25, 16, 45, 0, 0, time.UTC)},
	{"5", "NeonPlayer", "neon@game.com", time.Date(2024, 4, 1, 11, 20, 0, 0, time.UTC)},
	{"6", "GameWizard", "wizard@game.com", time.Date(2024, 4, 15, 8, 30, 0, 0, time.UTC)},
	{"7", "SnakeCharmer", "charmer@game.com", time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC)},
	{"8", "ByteBiter", "byte@game.com", time.Date(2024, 5, 20, 16, 10, 0, 0, time.UTC)},
	{"9", "CobraKid", "cobra@game.com", time.Date(2024, 6, 5, 9, 25, 0, 0, time.UTC)},
	{"10", "VenomViper", "venom@game.com", time.Date(2024, 6, 18, 14, 50, 0, 0, time.UTC)},
	{"11", "PythonPro", "python@game.com", time.Date(2024, 7, 2, 11, 15, 0, 0, time.UTC)},
	{"12", "AnacondaAce", "anaconda@game.com", time.Date(2024, 7, 15, 15, 30, 0, 0, time.UTC)},
	{"13", "SerpentSlayer", "serpent@game.com", time.Date(2024, 8, 1, 10, 40, 0, 0, time.UTC)},
	{"14", "ViperVictory", "viper@game.com", time.Date(2024, 8, 20, 12, 55, 0, 0, time.UTC)},
	{"15", "RattlerRuler", "rattler@game.com", time.Date(2024, 9, 5, 9, 5, 0, 0, time.UTC)},
}

var entryFixtures = []entryFixture{
	{"1", "SnakeMaster", 2450, domain.GameModeWalls, domain.NewDate(2024, 11, 27)},
	{"2", "PixelKing", 2180, domain.GameModePassThrough, domain.NewDate(2024, 11, 26)},
	{"3", "RetroGamer", 1950, domain.GameModeWalls, domain.NewDate(2024, 11, 28)},
	{"4", "ArcadeQueen", 1820, domain.GameModePassThrough, domain.NewDate(2024, 11, 25)},
	{"5", "NeonPlayer", 1650, domain.GameModeWalls, domain.NewDate(2024, 11, 27)},
	{"6", "GameWizard", 1480, domain.GameModePassThrough, domain.NewDate(2024, 11, 24)},
	{"7", "SnakeCharmer", 1320, domain.GameModeWalls, domain.NewDate(2024, 11, 23)},
	{"8", "ByteBiter", 1150, domain.GameModePassThrough, domain.NewDate(2024, 11, 22)},
	{"9", "CobraKid", 980, domain.GameModeWalls, domain.NewDate(2024, 11, 21)},
	{"10", "VenomViper", 850, domain.GameModePassThrough, domain.NewDate(2024, 11, 20)},
	{"11", "PythonPro", 720, domain.GameModeWalls, domain.NewDate(2024, 11, 19)},
	{"12", "AnacondaAce", 650, domain.GameModePassThrough, domain.NewDate(2024, 11, 18)},
	{"13", "SerpentSlayer", 580, domain.GameModeWalls, domain.NewDate(2024, 11, 17)},
	{"14", "ViperVictory", 520, domain.GameModePassThrough, domain.NewDate(2024, 11, 16)},
	{"15", "RattlerRuler", 450, domain.GameModeWalls, domain.NewDate(2024, 11, 15)},
}

var playerFixtures = []playerFixture{
	{"active-1", "LiveSnaker", domain.GameModeWalls, 350, 8, domain.Position{X: 4, Y: 7}, domain.DirectionRight},
	{"active-2", "ProGamer99", domain.GameModePassThrough, 520, 12, domain.Position{X: 15, Y: 3}, domain.DirectionUp},
	{"active-3", "SnakeEnthusiast", domain.GameModeWalls, 180, 5, domain.Position{X: 9, Y: 14}, domain.DirectionLeft},
	{"active-4", "QuickSlither", domain.GameModePassThrough, 720, 15, domain.Position{X: 2, Y: 18}, domain.DirectionDown},
	{"active-5", "MegaSnake", domain.GameModeWalls, 890, 18, domain.Position{X: 12, Y: 6}, domain.DirectionRight},
}

// Seed populates the store with the fixture users, leaderboard entries
// and active players. It must be called once before serving; a seeding
// error is fatal to startup.
func (s *Store) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range userFixtures {
		user := domain.User{
			ID:        f.id,
			Username:  f.username,
			Email:     f.email,
			CreatedAt: f.created,
		}
		if err := s.addUser(user, seedPassword); err != nil {
			return fmt.Errorf("seeding users: %w", err)
		}
	}

	for _, f := range entryFixtures {
		s.leaderboard = append(s.leaderboard, domain.LeaderboardEntry{
			ID:       f.id,
			Username: f.username,
			Score:    f.score,
			GameMode: f.mode,
			Date:     f.date,
		})
	}

	now := time.Now()
	for _, f := range playerFixtures {
		player := domain.ActivePlayer{
			ID:        f.id,
			Username:  f.username,
			GameState: fixtureGameState(f),
			StartedAt: now,
		}
		if err := s.addActivePlayer(player); err != nil {
			return fmt.Errorf("seeding active players: %w", err)
		}
	}

	s.logger.Info("store seeded",
		"users", len(s.users),
		"leaderboard_entries", len(s.leaderboard),
		"active_players", len(s.activePlayers),
	)
	return nil
}

// fixtureGameState builds a mid-game snapshot: a horizontal snake with
// its head at (10, 10), alternating dot sides along the body.
func fixtureGameState(f playerFixture) domain.GameState {
	snake := make([]domain.SnakeSegment, 0, f.length)
	for i := 0; i < f.length; i++ {
		side := "left"
		if i%2 == 1 {
			side = "right"
		}
		snake = append(snake, domain.SnakeSegment{
			Position: domain.Position{X: 10 - i, Y: 10},
			DotSide:  side,
		})
	}
	return domain.GameState{
		Snake:     snake,
		Food:      f.food,
		Direction: f.heading,
		Score:     f.score,
		GameMode:  f.mode,
		Speed:     domain.SpeedForLength(f.length),
	}
}
