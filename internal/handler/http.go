package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/snake-showdown/internal/metrics"
	"github.com/snake-showdown/internal/session"
	"github.com/snake-showdown/internal/store"
	"github.com/snake-showdown/internal/websocket"
)

// welcomeMessage is returned by the root endpoint
const welcomeMessage = "Welcome to Snake Showdown API"

// Handler provides the HTTP handlers for the Snake Showdown API
type Handler struct {
	store    *store.Store
	sessions *session.Manager
	hub      *websocket.Hub
	metrics  *metrics.Collector
	logger   *slog.Logger
}

// NewHandler creates a new HTTP handler. collector may be nil when
// metrics are disabled.
func NewHandler(st *store.Store, sessions *session.Manager, hub *websocket.Hub, collector *metrics.Collector, logger *slog.Logger) *Handler {
	return &Handler{
		store:    st,
		sessions: sessions,
		hub:      hub,
		metrics:  collector,
		logger:   logger,
	}
}

// transportError is the envelope for request-schema failures. These are
// distinct from domain failures: schema errors carry a non-200 status,
// domain failures are always HTTP 200 with success=false.
type transportError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Router creates and configures the HTTP router
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(corsMiddleware)
	if h.metrics != nil {
		r.Use(h.metrics.Middleware)
	}

	r.Get("/", h.Root)
	r.Get("/health", h.HealthCheck)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/signup", h.Signup)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.CurrentUser)
	})

	r.Get("/leaderboard", h.GetLeaderboard)
	r.Post("/leaderboard", h.SubmitScore)

	r.Route("/spectate", func(r chi.Router) {
		r.Get("/active", h.ActivePlayers)
		r.Get("/ws", h.SpectateWS)
		r.Get("/ws/stats", h.SpectateWSStats)
		r.Get("/{playerID}", h.PlayerState)
	})

	return r
}

// corsMiddleware permits cross-origin requests from any origin with
// credentials allowed. The origin is echoed rather than wildcarded
// because browsers reject "*" when credentials are in play.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeBadRequest rejects a request at the schema layer
func (h *Handler) writeBadRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, transportError{Success: false, Error: msg})
}

// bearerToken extracts the bearer token from the Authorization header,
// or returns "" when none is presented.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Root returns the API welcome message
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// SpectateWS upgrades the request to a spectator feed connection
func (h *Handler) SpectateWS(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWs(h.hub, h.logger, w, r)
}

// SpectateWSStats returns spectator connection statistics
func (h *Handler) SpectateWSStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":           true,
		"total_connections": h.hub.TotalConnections(),
	})
}
