// Package metrics provides Prometheus metric collection and exposure.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector registers and records the service metrics
type Collector struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  prometheus.Histogram
	logins        *prometheus.CounterVec
	signups       *prometheus.CounterVec
	wsConnections prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics on reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snake_showdown_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "snake_showdown_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snake_showdown_logins_total",
			Help: "Login attempts by result",
		}, []string{"result"}),
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snake_showdown_signups_total",
			Help: "Signup attempts by result",
		}, []string{"result"}),
		wsConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "snake_showdown_ws_connections",
			Help: "Currently connected spectator websocket clients",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.logins,
		c.signups,
		c.wsConnections,
	)

	return c
}

// RecordLogin records a login attempt outcome
func (c *Collector) RecordLogin(result string) {
	c.logins.WithLabelValues(result).Inc()
}

// RecordSignup records a signup attempt outcome
func (c *Collector) RecordSignup(result string) {
	c.signups.WithLabelValues(result).Inc()
}

// WSOpened records a new spectator websocket connection
func (c *Collector) WSOpened() {
	c.wsConnections.Inc()
}

// WSClosed records a closed spectator websocket connection
func (c *Collector) WSClosed() {
	c.wsConnections.Dec()
}

// Middleware returns an HTTP middleware recording request counts and
// latency. The route label is the chi route pattern, not the raw path,
// to keep label cardinality bounded.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		c.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		c.httpDuration.Observe(time.Since(start).Seconds())
	})
}
