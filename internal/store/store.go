package store

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/snake-showdown/internal/domain"
)

// Store is the in-memory source of truth for all entities. Users and
// passwords are keyed by email, active players by player id. The
// leaderboard is held unsorted; order and rank are derived per read.
//
// All state lives in process memory. Seed populates the fixtures once
// at startup; signup is the only mutation after that, and nothing is
// ever deleted.
type Store struct {
	mu            sync.RWMutex
	users         map[string]domain.User
	passwords     map[string]string
	leaderboard   []domain.LeaderboardEntry
	activePlayers map[string]domain.ActivePlayer
	activeOrder   []string
	logger        *slog.Logger
}

// New creates an empty store
func New(logger *slog.Logger) *Store {
	return &Store{
		users:         make(map[string]domain.User),
		passwords:     make(map[string]string),
		activePlayers: make(map[string]domain.ActivePlayer),
		logger:        logger,
	}
}

// FindUserByEmail returns the user registered under email
func (s *Store) FindUserByEmail(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[email]
	return user, ok
}

// CreateUser registers a new user and its password credential. It fails
// with domain.ErrEmailTaken if the email is already registered and with
// domain.ErrUsernameTaken if any existing username matches
// case-insensitively. Both maps are written under one lock, so there is
// no partial-failure window.
func (s *Store) CreateUser(username, email, password string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; ok {
		return domain.User{}, domain.ErrEmailTaken
	}
	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, username) {
			return domain.User{}, domain.ErrUsernameTaken
		}
	}

	user := domain.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
	}
	s.users[email] = user
	s.passwords[email] = password

	s.logger.Info("user created", "username", username)
	return user, nil
}

// VerifyPassword reports whether password matches the stored credential
// for email. Credentials are stored in plain text: this is a mock
// backend, never deploy it against real accounts.
func (s *Store) VerifyPassword(email, password string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.passwords[email]
	return ok && stored == password
}

// UserCount returns the number of registered users
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// ListLeaderboard returns leaderboard entries sorted by descending
// score, optionally filtered to a single game mode (empty mode means
// no filter). Ties keep their existing relative order. Rank is set to
// the 1-based position within the returned view; the stored entries
// are never modified.
func (s *Store) ListLeaderboard(mode domain.GameMode) []domain.LeaderboardEntry {
	s.mu.RLock()
	entries := make([]domain.LeaderboardEntry, 0, len(s.leaderboard))
	for _, e := range s.leaderboard {
		if mode != "" && e.GameMode != mode {
			continue
		}
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// GetActivePlayer returns the active player with the given id
func (s *Store) GetActivePlayer(id string) (domain.ActivePlayer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.activePlayers[id]
	return player, ok
}

// ListActivePlayers returns all active players in insertion order
func (s *Store) ListActivePlayers() []domain.ActivePlayer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]domain.ActivePlayer, 0, len(s.activeOrder))
	for _, id := range s.activeOrder {
		players = append(players, s.activePlayers[id])
	}
	return players
}

// addUser inserts a fixture user during seeding
func (s *Store) addUser(user domain.User, password string) error {
	if _, ok := s.users[user.Email]; ok {
		return fmt.Errorf("duplicate fixture user email %q", user.Email)
	}
	s.users[user.Email] = user
	s.passwords[user.Email] = password
	return nil
}

// addActivePlayer inserts a fixture session during seeding
func (s *Store) addActivePlayer(player domain.ActivePlayer) error {
	if _, ok := s.activePlayers[player.ID]; ok {
		return fmt.Errorf("duplicate fixture player id %q", player.ID)
	}
	s.activePlayers[player.ID] = player
	s.activeOrder = append(s.activeOrder, player.ID)
	return nil
}
