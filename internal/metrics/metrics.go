// Package metrics defines the Prometheus instruments of routeopt.
//
// Instruments are registered on an explicit registry rather than the global
// default, so tests and multiple sessions never collide.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Command outcome labels.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics groups every routeopt instrument.
type Metrics struct {
	Registry *prometheus.Registry

	// CommandsTotal counts dispatched commands by name and outcome.
	CommandsTotal *prometheus.CounterVec

	// SolverDuration observes solver wall time by algorithm.
	SolverDuration *prometheus.HistogramVec

	GraphNodes prometheus.Gauge
	GraphEdges prometheus.Gauge
}

// New creates the instruments on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		CommandsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routeopt_commands_total",
				Help: "Total number of commands processed",
			},
			[]string{"command", "status"},
		),
		SolverDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "routeopt_solver_duration_seconds",
				Help: "Duration of shortest-path computations in seconds",
				// Microseconds for small Dijkstra queries up to seconds for dense APSP.
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"algorithm"},
		),
		GraphNodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "routeopt_graph_nodes",
			Help: "Number of nodes in the loaded graph",
		}),
		GraphEdges: f.NewGauge(prometheus.GaugeOpts{
			Name: "routeopt_graph_edges",
			Help: "Number of edges in the loaded graph",
		}),
	}
}

// ObserveCommand records one command outcome.
func (m *Metrics) ObserveCommand(name string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.CommandsTotal.WithLabelValues(name, status).Inc()
}

// ObserveSolver records the time elapsed since start for algorithm.
func (m *Metrics) ObserveSolver(algorithm string, start time.Time) {
	m.SolverDuration.WithLabelValues(algorithm).Observe(time.Since(start).Seconds())
}

// SetGraphSize updates the graph gauges.
func (m *Metrics) SetGraphSize(nodes, edges int) {
	m.GraphNodes.Set(float64(nodes))
	m.GraphEdges.Set(float64(edges))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
