package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordLogin("success")
	c.RecordSignup("rejected")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	bodyStr := string(body)

	if !strings.Contains(bodyStr, "snake_showdown_logins_total") {
		t.Error("response should contain snake_showdown_logins_total")
	}
	if !strings.Contains(bodyStr, "snake_showdown_signups_total") {
		t.Error("response should contain snake_showdown_signups_total")
	}
}

func TestMiddleware_RecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	mw := httptest.NewRecorder()
	Handler(reg).ServeHTTP(mw, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(mw.Result().Body)

	if !strings.Contains(string(body), `snake_showdown_http_requests_total{method="GET",route="/leaderboard",status="200"} 1`) {
		t.Errorf("request counter not recorded, body:\n%s", body)
	}
}

func TestWSConnectionGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.WSOpened()
	c.WSOpened()
	c.WSClosed()

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() == "snake_showdown_ws_connections" {
			if got := mf.GetMetric()[0].GetGauge().GetValue(); got != 1 {
				t.Errorf("ws connections = %v, want 1", got)
			}
			return
		}
	}
	t.Error("snake_showdown_ws_connections not registered")
}
