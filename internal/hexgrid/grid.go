package hexgrid

import "fmt"

// cellColor is the transient BFS marker used by the diffusion engine.
type cellColor uint8

const (
	White cellColor = iota
	Grey
	Black
)

// UnreachableDistance is the sentinel "infinite" distance both the diffusion
// BFS (bounded by radius, itself < 1<<16) and the shortest-path engine use
// for a scratch field that has not yet been touched this query.
const UnreachableDistance = ^uint32(0)

// Cell is one hex record: persistent terrain/route state plus the scratch
// fields used by exactly one operation at a time. Distance is shared by the
// diffusion BFS hop-count and the shortest-path tentative cost because the
// two operations never run concurrently against the same grid.
type Cell struct {
	LandCost      int
	Routes        [MaxAirRoutes]AirRoute
	RoutesNum     int

	Color    cellColor
	Distance uint32
	Version  uint32

	BucketIndex   int
	BucketNext    int
	BucketVersion uint32
}

// Grid is the single process-wide hex arena. Exactly one Grid exists at a
// time; init (via NewGrid) replaces it wholesale.
type Grid struct {
	Dims
	Cells          []Cell
	CurrentVersion uint32
}

// NewGrid allocates and initialises a cols x rows arena. Every cell starts
// with LandCost 1 and no air routes, matching the distilled spec's lifecycle
// rule. Dimensions outside [1, MaxDimension] are a fatal, unrecoverable
// condition per the error-handling design; NewGrid reports it as an error so
// the driver can decide how to terminate instead of panicking.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols < 1 || cols > MaxDimension || rows < 1 || rows > MaxDimension {
		return nil, fmt.Errorf("hexgrid: invalid dimensions cols=%d rows=%d (want 1..%d each)", cols, rows, MaxDimension)
	}
	n := cols * rows
	g := &Grid{
		Dims:  Dims{Cols: cols, Rows: rows},
		Cells: make([]Cell, n),
	}
	for i := range g.Cells {
		g.Cells[i].LandCost = 1
	}
	return g, nil
}

// Size returns the total cell count N = cols*rows.
func (g *Grid) Size() int { return len(g.Cells) }

// BumpVersion advances the process-wide version counter used to lazily
// reinitialise travel_cost's per-cell scratch fields, and returns the new
// value. Both change_cost and travel_cost bump the same counter: a
// change_cost call between two travel_cost calls must invalidate any stale
// distances left over from the earlier query.
func (g *Grid) BumpVersion() uint32 {
	g.CurrentVersion++
	return g.CurrentVersion
}
