package main

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/snake-showdown/internal/metrics"
)

func TestSpectatorObserver_NilCollector(t *testing.T) {
	// With metrics disabled the collector stays a nil pointer; the
	// observer interface handed to the hub must be nil too, not an
	// interface wrapping the typed nil.
	var collector *metrics.Collector
	if obs := spectatorObserver(collector); obs != nil {
		t.Fatal("nil collector must yield a nil observer interface")
	}
}

func TestSpectatorObserver_WithCollector(t *testing.T) {
	collector := metrics.NewCollector(prometheus.NewRegistry())
	obs := spectatorObserver(collector)
	if obs == nil {
		t.Fatal("expected a non-nil observer for a live collector")
	}
	// Must be callable without panicking
	obs.WSOpened()
	obs.WSClosed()
}
