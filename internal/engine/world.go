// Package engine provides World, the facade the driver holds across the
// lifetime of one grid: it owns the arena and the reusable bucket queue and
// wires optional metrics around each of the four commands.
package engine

import (
	"fmt"

	"github.com/gravitas-015/hexroute/internal/airroute"
	"github.com/gravitas-015/hexroute/internal/bucketqueue"
	"github.com/gravitas-015/hexroute/internal/diffusion"
	"github.com/gravitas-015/hexroute/internal/hexgrid"
	"github.com/gravitas-015/hexroute/internal/metrics"
	"github.com/gravitas-015/hexroute/internal/routing"
)

// World holds the process-wide grid state for one init..init lifetime.
type World struct {
	grid      *hexgrid.Grid
	queue     *bucketqueue.Queue
	collector *metrics.Collector
}

// New constructs an empty World. collector may be nil, in which case no
// metrics are recorded.
func New(collector *metrics.Collector) *World {
	return &World{collector: collector}
}

// Init allocates a new cols x rows grid, discarding any prior one. Matches
// init(cols, rows): a bad dimension is unrecoverable for the caller, who
// should treat a non-nil error as fatal.
func (w *World) Init(cols, rows int) error {
	grid, err := hexgrid.NewGrid(cols, rows)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	w.grid = grid
	w.queue = bucketqueue.New(grid)
	if w.collector != nil {
		w.collector.SetGridCells(grid.Size())
	}
	return nil
}

// ChangeCost applies change_cost(x, y, p, radius) and returns whether the
// command succeeded.
func (w *World) ChangeCost(x, y, p, radius int) bool {
	ok := diffusion.ChangeCost(w.grid, x, y, p, radius)
	if w.collector != nil && ok {
		w.collector.RecordDiffusionRadius(radius)
	}
	return ok
}

// ToggleAirRoute applies toggle_air_route(x1, y1, x2, y2) and returns
// whether the command succeeded.
func (w *World) ToggleAirRoute(x1, y1, x2, y2 int) bool {
	return airroute.Toggle(w.grid, x1, y1, x2, y2)
}

// TravelCost applies travel_cost(x1, y1, x2, y2) and returns the minimum
// cost, or routing.Unreachable.
func (w *World) TravelCost(x1, y1, x2, y2 int) int {
	return routing.TravelCost(w.grid, w.queue, x1, y1, x2, y2)
}

// Initialized reports whether Init has successfully run at least once.
func (w *World) Initialized() bool {
	return w.grid != nil
}

// RecordCommand forwards a command outcome to the underlying collector, if
// any was configured. Safe to call on a World built with a nil collector.
func (w *World) RecordCommand(command, result string, seconds float64) {
	if w.collector != nil {
		w.collector.RecordCommand(command, result, seconds)
	}
}
