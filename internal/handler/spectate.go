package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snake-showdown/internal/domain"
)

// ActivePlayers handles GET /spectate/active
func (h *Handler) ActivePlayers(w http.ResponseWriter, r *http.Request) {
	players := h.store.ListActivePlayers()
	h.writeJSON(w, http.StatusOK, domain.ActivePlayersResponse{
		Success: true,
		Players: players,
	})
}

// PlayerState handles GET /spectate/{playerID}. An unknown id is a
// domain failure, not an HTTP 404.
func (h *Handler) PlayerState(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	player, ok := h.store.GetActivePlayer(playerID)
	if !ok {
		h.writeJSON(w, http.StatusOK, domain.GameStateResponse{
			Success: false,
			Error:   domain.ErrPlayerNotFound.Error(),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, domain.GameStateResponse{
		Success:   true,
		GameState: &player.GameState,
	})
}
