package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/snake-showdown/internal/config"
	"github.com/snake-showdown/internal/store"
	"github.com/snake-showdown/internal/websocket"
)

// FeedWorker periodically pushes spectator feed updates over the
// websocket hub: each watched player's game-state snapshot, plus the
// full active-player roster to every connected client. The snapshots
// are the seeded fixtures; no game loop mutates them.
type FeedWorker struct {
	hub     *websocket.Hub
	store   *store.Store
	config  *config.SpectateConfig
	logger  *slog.Logger
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewFeedWorker creates a new feed worker
func NewFeedWorker(hub *websocket.Hub, st *store.Store, cfg *config.SpectateConfig, logger *slog.Logger) *FeedWorker {
	return &FeedWorker{
		hub:    hub,
		store:  st,
		config: cfg,
		logger: logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start begins the background feed loop
func (w *FeedWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info("spectator feed worker started", "interval", w.config.FeedInterval)

	go w.run(ctx)
	return nil
}

// Stop stops the background feed loop
func (w *FeedWorker) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	w.mu.Lock()
	w.running = false
	w.mu.Unlock()

	w.logger.Info("spectator feed worker stopped")
	return nil
}

// run is the main worker loop
func (w *FeedWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.config.FeedInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.BroadcastOnce()
		}
	}
}

// BroadcastOnce pushes one round of feed updates
func (w *FeedWorker) BroadcastOnce() {
	if w.hub.TotalConnections() == 0 {
		return
	}

	players := w.store.ListActivePlayers()
	w.hub.BroadcastActivePlayers(players)

	for _, p := range players {
		if w.hub.WatcherCount(p.ID) == 0 {
			continue
		}
		w.hub.BroadcastGameState(p.ID, p.GameState)
	}
}

// IsRunning returns whether the worker is currently running
func (w *FeedWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
