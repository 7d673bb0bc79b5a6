// Package metrics exposes Prometheus instrumentation for the hexroute
// driver. Collectors live on a private registry rather than the global
// default one so that a test can construct any number of Collectors without
// tripping a duplicate-registration panic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector owns one registry's worth of hexroute metrics.
type Collector struct {
	registry *prometheus.Registry

	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	diffusionRadius prometheus.Histogram
	gridCells       prometheus.Gauge
}

// New builds a Collector with its own private registry.
func New() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		commandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hexroute_commands_total",
			Help: "Total commands processed, by command and result.",
		}, []string{"command", "result"}),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hexroute_command_duration_seconds",
			Help:    "Time spent executing a command, by command.",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
		diffusionRadius: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hexroute_diffusion_radius",
			Help:    "Radius argument supplied to change_cost.",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128, 256},
		}),
		gridCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hexroute_grid_cells",
			Help: "Number of cells in the currently initialized grid.",
		}),
	}

	reg.MustRegister(c.commandsTotal, c.commandDuration, c.diffusionRadius, c.gridCells)
	return c
}

// Registry returns the registry backing this collector, for wiring into an
// HTTP handler.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordCommand records that command finished in duration with the given
// result ("ok" or "error").
func (c *Collector) RecordCommand(command, result string, seconds float64) {
	c.commandsTotal.WithLabelValues(command, result).Inc()
	c.commandDuration.WithLabelValues(command).Observe(seconds)
}

// RecordDiffusionRadius records the radius argument of a change_cost call.
func (c *Collector) RecordDiffusionRadius(radius int) {
	c.diffusionRadius.Observe(float64(radius))
}

// SetGridCells records the size of the currently initialized grid.
func (c *Collector) SetGridCells(cells int) {
	c.gridCells.Set(float64(cells))
}
