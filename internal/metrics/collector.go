package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/scoreboard/internal/scoreboard"
)

// Namespace prefixes every metric name.
const Namespace = "scoreboard"

// Outcome label values for scoreboard_operations_total. Rejections use the
// scoreboard error code instead (e.g. "invalid_score").
const OutcomeAccepted = "accepted"

// Collector records board activity on a private Prometheus registry. It
// implements scoreboard.Observer; register it with scoreboard.WithObserver.
type Collector struct {
	registry    *prometheus.Registry
	activeGames prometheus.Gauge
	operations  *prometheus.CounterVec
	goals       prometheus.Counter

	mu       sync.Mutex
	revision uint64
}

// NewCollector creates a Collector whose registry also carries the Go runtime
// and process collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		activeGames: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "active_games",
			Help:      "Number of games currently in progress.",
		}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Board operations by kind and outcome.",
		}, []string{"op", "outcome"}),
		goals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "goals_total",
			Help:      "Goals added by accepted score updates. Score corrections downward are not subtracted.",
		}),
	}
	c.registry.MustRegister(
		c.activeGames,
		c.operations,
		c.goals,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Observe implements scoreboard.Observer.
func (c *Collector) Observe(ev scoreboard.Event) {
	outcome := OutcomeAccepted
	if !ev.Accepted() {
		outcome = scoreboard.Code(ev.Err)
		if outcome == "" {
			outcome = "error"
		}
	}
	c.operations.WithLabelValues(string(ev.Op), outcome).Inc()
	if !ev.Accepted() {
		return
	}

	c.setActive(ev)

	if ev.Op == scoreboard.OpUpdate {
		if delta := ev.Game.Total() - ev.Previous.Total(); delta > 0 {
			c.goals.Add(float64(delta))
		}
	}
}

// setActive moves the active games gauge to the count carried by ev unless a
// later revision has already been applied.
func (c *Collector) setActive(ev scoreboard.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ev.Revision <= c.revision {
		return
	}
	c.revision = ev.Revision
	c.activeGames.Set(float64(ev.Active))
}

// Registry returns the registry so other components (the HTTP server) can
// add their own collectors.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
