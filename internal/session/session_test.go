package session

import "testing"

func TestCreateAndResolve(t *testing.T) {
	m := NewManager()

	token := m.Create("snake@game.com")
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	email, ok := m.Resolve(token)
	if !ok {
		t.Fatal("expected token to resolve")
	}
	if email != "snake@game.com" {
		t.Errorf("email = %q, want snake@game.com", email)
	}

	if other := m.Create("snake@game.com"); other == token {
		t.Error("tokens must be unique per session")
	}
}

func TestResolve_UnknownToken(t *testing.T) {
	m := NewManager()

	if _, ok := m.Resolve("not-a-token"); ok {
		t.Error("unknown token must not resolve")
	}
}

func TestDestroy(t *testing.T) {
	m := NewManager()

	token := m.Create("retro@game.com")
	m.Destroy(token)

	if _, ok := m.Resolve(token); ok {
		t.Error("destroyed token must not resolve")
	}
	if got := m.Count(); got != 0 {
		t.Errorf("session count = %d, want 0", got)
	}

	// Destroying an unknown token is a no-op
	m.Destroy("not-a-token")
}
