package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"github.com/snake-showdown/internal/domain"
)

// Login handles POST /auth/login. Unknown emails and wrong passwords
// are domain failures: HTTP 200 with success=false.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}
	// Only the email shape is schema-validated; an empty or wrong
	// password is a domain failure, not a schema error.
	if !validEmail(req.Email) {
		h.writeBadRequest(w, "invalid email address")
		return
	}

	user, ok := h.store.FindUserByEmail(req.Email)
	if !ok {
		h.recordLogin("user_not_found")
		h.writeJSON(w, http.StatusOK, domain.AuthResponse{
			Success: false,
			Error:   domain.ErrUserNotFound.Error(),
		})
		return
	}

	if !h.store.VerifyPassword(req.Email, req.Password) {
		h.recordLogin("invalid_password")
		h.writeJSON(w, http.StatusOK, domain.AuthResponse{
			Success: false,
			Error:   domain.ErrInvalidPassword.Error(),
		})
		return
	}

	token := h.sessions.Create(user.Email)
	h.recordLogin("success")
	h.writeJSON(w, http.StatusOK, domain.AuthResponse{
		Success: true,
		User:    &user,
		Token:   token,
	})
}

// Signup handles POST /auth/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}
	if !validEmail(req.Email) {
		h.writeBadRequest(w, "invalid email address")
		return
	}

	user, err := h.store.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrUsernameTaken) {
			h.recordSignup("rejected")
			h.writeJSON(w, http.StatusOK, domain.AuthResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}
		h.logger.Error("failed to create user", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, transportError{Success: false, Error: "internal server error"})
		return
	}

	token := h.sessions.Create(user.Email)
	h.recordSignup("success")
	h.writeJSON(w, http.StatusOK, domain.AuthResponse{
		Success: true,
		User:    &user,
		Token:   token,
	})
}

// Logout handles POST /auth/logout. A presented token is revoked; the
// response is success regardless, since there may be no session to
// invalidate.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		h.sessions.Destroy(token)
	}
	h.writeJSON(w, http.StatusOK, domain.LogoutResponse{Success: true})
}

// CurrentUser handles GET /auth/me. Without a valid bearer token the
// response is the "Not logged in" domain failure.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		h.writeJSON(w, http.StatusOK, domain.AuthResponse{
			Success: false,
			Error:   domain.ErrNotLoggedIn.Error(),
		})
		return
	}

	email, ok := h.sessions.Resolve(token)
	if !ok {
		h.writeJSON(w, http.StatusOK, domain.AuthResponse{
			Success: false,
			Error:   domain.ErrNotLoggedIn.Error(),
		})
		return
	}

	user, ok := h.store.FindUserByEmail(email)
	if !ok {
		// Session exists but the account does not; treat as logged out
		h.sessions.Destroy(token)
		h.writeJSON(w, http.StatusOK, domain.AuthResponse{
			Success: false,
			Error:   domain.ErrNotLoggedIn.Error(),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, domain.AuthResponse{
		Success: true,
		User:    &user,
	})
}

// validEmail reports whether s parses as a bare email address
func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func (h *Handler) recordLogin(result string) {
	if h.metrics != nil {
		h.metrics.RecordLogin(result)
	}
}

func (h *Handler) recordSignup(result string) {
	if h.metrics != nil {
		h.metrics.RecordSignup(result)
	}
}
