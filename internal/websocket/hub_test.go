package websocket

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	gws "github.com/gorilla/websocket"

	"github.com/snake-showdown/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// dialTestHub starts a hub behind an httptest server and dials it
func dialTestHub(t *testing.T, hub *Hub) *gws.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, testLogger(), w, r)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *gws.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read message: %v", err)
	}
	return msg
}

// waitForWatcher waits until the hub has registered a watcher for the
// player; the subscribe request travels over a buffered channel, so the
// client ack can arrive before the hub processes it.
func waitForWatcher(t *testing.T, hub *Hub, playerID string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.WatcherCount(playerID) > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("watcher for %s never registered", playerID)
}

func TestHub_SubscribeAndBroadcast(t *testing.T) {
	hub := NewHub(nil, testLogger())
	go hub.Run()
	defer hub.Stop()

	conn := dialTestHub(t, hub)

	if err := conn.WriteJSON(ClientMessage{Type: MessageTypeSubscribe, PlayerID: "active-1"}); err != nil {
		t.Fatalf("write subscribe: %v", err)
	}

	ack := readMessage(t, conn)
	if ack.Type != "subscribed" || ack.PlayerID != "active-1" {
		t.Fatalf("ack = %+v, want subscribed/active-1", ack)
	}
	waitForWatcher(t, hub, "active-1")
	if got := hub.TotalConnections(); got != 1 {
		t.Errorf("total connections = %d, want 1", got)
	}

	state := domain.GameState{
		Snake:     []domain.SnakeSegment{{Position: domain.Position{X: 10, Y: 10}, DotSide: "left"}},
		Direction: domain.DirectionRight,
		Score:     42,
		GameMode:  domain.GameModeWalls,
		Speed:     145,
	}
	hub.BroadcastGameState("active-1", state)

	msg := readMessage(t, conn)
	if msg.Type != MessageTypeGameState {
		t.Fatalf("type = %q, want %q", msg.Type, MessageTypeGameState)
	}
	if msg.PlayerID != "active-1" {
		t.Errorf("playerId = %q, want active-1", msg.PlayerID)
	}
	data, ok := msg.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T, want object", msg.Data)
	}
	if data["score"] != float64(42) {
		t.Errorf("score = %v, want 42", data["score"])
	}
	if data["gameMode"] != "walls" {
		t.Errorf("gameMode = %v, want walls", data["gameMode"])
	}
}

func TestHub_BroadcastNotDeliveredToNonWatchers(t *testing.T) {
	hub := NewHub(nil, testLogger())
	go hub.Run()
	defer hub.Stop()

	conn := dialTestHub(t, hub)

	if err := conn.WriteJSON(ClientMessage{Type: MessageTypeSubscribe, PlayerID: "active-1"}); err != nil {
		t.Fatalf("write subscribe: %v", err)
	}
	readMessage(t, conn) // ack
	waitForWatcher(t, hub, "active-1")

	// A snapshot for a different player must not reach this client;
	// the roster broadcast that follows must.
	hub.BroadcastGameState("active-2", domain.GameState{Score: 1})
	hub.BroadcastActivePlayers([]domain.ActivePlayer{{ID: "active-1", Username: "LiveSnaker"}})

	msg := readMessage(t, conn)
	if msg.Type != MessageTypeActivePlayers {
		t.Fatalf("type = %q, want %q (active-2 snapshot must be skipped)", msg.Type, MessageTypeActivePlayers)
	}
}

func TestHub_Ping(t *testing.T) {
	hub := NewHub(nil, testLogger())
	go hub.Run()
	defer hub.Stop()

	conn := dialTestHub(t, hub)

	if err := conn.WriteJSON(ClientMessage{Type: MessageTypePing}); err != nil {
		t.Fatalf("write ping: %v", err)
	}

	msg := readMessage(t, conn)
	if msg.Type != MessageTypePong {
		t.Errorf("type = %q, want %q", msg.Type, MessageTypePong)
	}
}

type countingObserver struct {
	opened atomic.Int64
	closed atomic.Int64
}

func (o *countingObserver) WSOpened() { o.opened.Add(1) }
func (o *countingObserver) WSClosed() { o.closed.Add(1) }

func TestHub_NotifiesObserver(t *testing.T) {
	observer := &countingObserver{}
	hub := NewHub(observer, testLogger())
	go hub.Run()
	defer hub.Stop()

	conn := dialTestHub(t, hub)

	// Registration is complete once a round trip succeeds
	if err := conn.WriteJSON(ClientMessage{Type: MessageTypePing}); err != nil {
		t.Fatalf("write ping: %v", err)
	}
	readMessage(t, conn)

	if got := observer.opened.Load(); got != 1 {
		t.Errorf("opened = %d, want 1", got)
	}

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for observer.closed.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("observer never notified of disconnect")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_NilObserver(t *testing.T) {
	// Metrics-disabled wiring hands the hub a nil observer; connecting
	// and disconnecting must work without observer calls.
	hub := NewHub(nil, testLogger())
	go hub.Run()
	defer hub.Stop()

	conn := dialTestHub(t, hub)
	if err := conn.WriteJSON(ClientMessage{Type: MessageTypePing}); err != nil {
		t.Fatalf("write ping: %v", err)
	}
	if msg := readMessage(t, conn); msg.Type != MessageTypePong {
		t.Errorf("type = %q, want %q", msg.Type, MessageTypePong)
	}
}

func TestHub_SubscribeRequiresPlayerID(t *testing.T) {
	hub := NewHub(nil, testLogger())
	go hub.Run()
	defer hub.Stop()

	conn := dialTestHub(t, hub)

	if err := conn.WriteJSON(ClientMessage{Type: MessageTypeSubscribe}); err != nil {
		t.Fatalf("write subscribe: %v", err)
	}

	msg := readMessage(t, conn)
	if msg.Type != MessageTypeError {
		t.Errorf("type = %q, want %q", msg.Type, MessageTypeError)
	}
}
