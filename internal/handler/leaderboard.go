package handler

import (
	"encoding/json"
	"net/http"

	"github.com/snake-showdown/internal/domain"
)

// GetLeaderboard handles GET /leaderboard. The optional mode query
// parameter filters entries to one game mode; the result is sorted by
// descending score and ranked 1..N over the returned view.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	mode := domain.GameMode(r.URL.Query().Get("mode"))
	if mode != "" && !mode.Valid() {
		h.writeBadRequest(w, "invalid game mode")
		return
	}

	entries := h.store.ListLeaderboard(mode)
	h.writeJSON(w, http.StatusOK, domain.LeaderboardResponse{
		Success: true,
		Entries: entries,
	})
}

// SubmitScore handles POST /leaderboard. Submission is a deliberate
// stub: once the body passes schema validation, the response is always
// the "Must be logged in to submit score" domain failure. There is no
// submission path, with or without a session.
func (h *Handler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}
	if !req.GameMode.Valid() {
		h.writeBadRequest(w, "invalid game mode")
		return
	}

	h.writeJSON(w, http.StatusOK, domain.SubmitScoreResponse{
		Success: false,
		Error:   domain.ErrScoreNeedsLogin.Error(),
	})
}
