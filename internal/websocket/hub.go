package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/snake-showdown/internal/domain"
)

// Message types
const (
	MessageTypeGameState     = "game_state"
	MessageTypeActivePlayers = "active_players"
	MessageTypeSubscribe     = "subscribe"
	MessageTypeUnsubscribe   = "unsubscribe"
	MessageTypePing          = "ping"
	MessageTypePong          = "pong"
	MessageTypeError         = "error"
)

// Message represents a spectator feed message
type Message struct {
	Type      string      `json:"type"`
	PlayerID  string      `json:"playerId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ConnectionObserver is notified when spectator connections open and
// close. The metrics collector implements it.
type ConnectionObserver interface {
	WSOpened()
	WSClosed()
}

// Hub maintains the set of connected spectators and routes game-state
// snapshots to the clients watching each player.
type Hub struct {
	// Watchers by player ID
	watchers map[string]map[*Client]bool

	// All connected clients
	allClients map[*Client]bool

	register    chan *Client
	unregister  chan *Client
	broadcast   chan *Message
	subscribe   chan *watchRequest
	unsubscribe chan *watchRequest

	mu       sync.RWMutex
	observer ConnectionObserver
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

type watchRequest struct {
	client   *Client
	playerID string
}

// NewHub creates a new Hub. observer may be nil.
func NewHub(observer ConnectionObserver, logger *slog.Logger) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		watchers:    make(map[string]map[*Client]bool),
		allClients:  make(map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		broadcast:   make(chan *Message, 256),
		subscribe:   make(chan *watchRequest, 64),
		unsubscribe: make(chan *watchRequest, 64),
		observer:    observer,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	h.logger.Info("spectator hub started")
	for {
		select {
		case <-h.ctx.Done():
			h.logger.Info("spectator hub stopping")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.allClients[client] = true
			h.mu.Unlock()
			if h.observer != nil {
				h.observer.WSOpened()
			}
			h.logger.Debug("spectator connected", "client_id", client.id)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.allClients[client]; ok {
				delete(h.allClients, client)
				for playerID, clients := range h.watchers {
					if _, ok := clients[client]; ok {
						delete(clients, client)
						if len(clients) == 0 {
							delete(h.watchers, playerID)
						}
					}
				}
				close(client.send)
				if h.observer != nil {
					h.observer.WSClosed()
				}
			}
			h.mu.Unlock()
			h.logger.Debug("spectator disconnected", "client_id", client.id)

		case req := <-h.subscribe:
			h.mu.Lock()
			if _, ok := h.watchers[req.playerID]; !ok {
				h.watchers[req.playerID] = make(map[*Client]bool)
			}
			h.watchers[req.playerID][req.client] = true
			h.mu.Unlock()
			h.logger.Debug("spectator watching player", "client_id", req.client.id, "player_id", req.playerID)

		case req := <-h.unsubscribe:
			h.mu.Lock()
			if clients, ok := h.watchers[req.playerID]; ok {
				delete(clients, req.client)
				if len(clients) == 0 {
					delete(h.watchers, req.playerID)
				}
			}
			h.mu.Unlock()
			h.logger.Debug("spectator stopped watching", "client_id", req.client.id, "player_id", req.playerID)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Stop stops the hub
func (h *Hub) Stop() {
	h.cancel()
}

// broadcastMessage sends a message to its audience: the watchers of the
// message's player, or every connected client when no player is set.
func (h *Hub) broadcastMessage(message *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal message", "error", err)
		return
	}

	if message.PlayerID != "" {
		if clients, ok := h.watchers[message.PlayerID]; ok {
			for client := range clients {
				select {
				case client.send <- data:
				default:
					h.logger.Warn("client buffer full, skipping", "client_id", client.id)
				}
			}
		}
	} else {
		for client := range h.allClients {
			select {
			case client.send <- data:
			default:
				h.logger.Warn("client buffer full, skipping", "client_id", client.id)
			}
		}
	}
}

// BroadcastGameState sends a player's game-state snapshot to the
// clients watching that player.
func (h *Hub) BroadcastGameState(playerID string, state domain.GameState) {
	message := &Message{
		Type:      MessageTypeGameState,
		PlayerID:  playerID,
		Data:      state,
		Timestamp: time.Now(),
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("broadcast channel full, dropping message")
	}
}

// BroadcastActivePlayers sends the active-player roster to every
// connected client.
func (h *Hub) BroadcastActivePlayers(players []domain.ActivePlayer) {
	message := &Message{
		Type:      MessageTypeActivePlayers,
		Data:      players,
		Timestamp: time.Now(),
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("broadcast channel full, dropping message")
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Watch subscribes a client to a player's feed
func (h *Hub) Watch(client *Client, playerID string) {
	h.subscribe <- &watchRequest{client: client, playerID: playerID}
}

// Unwatch unsubscribes a client from a player's feed
func (h *Hub) Unwatch(client *Client, playerID string) {
	h.unsubscribe <- &watchRequest{client: client, playerID: playerID}
}

// WatcherCount returns the number of clients watching a player
func (h *Hub) WatcherCount(playerID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if clients, ok := h.watchers[playerID]; ok {
		return len(clients)
	}
	return 0
}

// TotalConnections returns the total number of connected clients
func (h *Hub) TotalConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.allClients)
}
