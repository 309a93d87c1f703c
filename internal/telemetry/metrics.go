package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TicksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tween_ticks_total",
		Help: "Clock ticks applied across all transition controllers.",
	})
	WritesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tween_property_writes_total",
		Help: "Property writes dispatched.",
	})
	MarshaledWritesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tween_marshaled_writes_total",
		Help: "Property writes marshaled onto a foreign dispatch loop.",
	})
	TransitionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tween_transitions_active",
		Help: "Transition controllers currently running.",
	})
	TransitionsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tween_transitions_completed_total",
		Help: "Transition controllers that ran to completion.",
	})
	TransitionsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tween_transitions_failed_total",
		Help: "Transition controllers retired by a write failure.",
	})
)

// Handler serves the prometheus scrape endpoint; the transport server mounts
// it under /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
