// Package routing implements travel_cost: Dijkstra's algorithm over hex
// adjacency and air-route edges, using a monotone bucket queue and lazy
// per-cell version stamps to avoid an O(N) reset on every query.
package routing

import (
	"github.com/gravitas-015/hexroute/internal/bucketqueue"
	"github.com/gravitas-015/hexroute/internal/hexgrid"
)

// Unreachable is the sentinel travel_cost prints (-1) when the target cannot
// be reached, when either endpoint is out of bounds, or when the source has
// zero land cost and therefore cannot be departed from.
const Unreachable = -1

// TravelCost computes the minimum-cost route from (x1,y1) to (x2,y2) over
// hex-neighbour edges and air-route edges, or Unreachable if no such route
// exists.
func TravelCost(grid *hexgrid.Grid, queue *bucketqueue.Queue, x1, y1, x2, y2 int) int {
	source := grid.OffsetToLinear(x1, y1)
	target := grid.OffsetToLinear(x2, y2)
	if source == hexgrid.None || target == hexgrid.None {
		return Unreachable
	}
	if grid.Cells[source].LandCost == 0 {
		return Unreachable
	}
	if source == target {
		return 0
	}

	version := grid.BumpVersion()
	queue.Initialize()

	grid.Cells[source].Distance = 0
	grid.Cells[source].Version = version
	queue.Push(source)

	var neighborBuf []hexgrid.Neighbor
	for !queue.Empty() {
		u := queue.Pop()
		if u == target {
			break
		}

		uCell := &grid.Cells[u]
		if uCell.LandCost == 0 {
			continue
		}

		step := uCell.Distance + uint32(uCell.LandCost)
		neighborBuf = grid.Neighbors(u, neighborBuf)
		for _, nb := range neighborBuf {
			relax(grid, queue, nb.Index, version, step)
		}

		for i := 0; i < uCell.RoutesNum; i++ {
			route := uCell.Routes[i]
			relax(grid, queue, route.Dest, version, uCell.Distance+uint32(route.Cost))
		}
	}

	targetCell := &grid.Cells[target]
	if targetCell.Version != version || targetCell.Distance == hexgrid.UnreachableDistance {
		return Unreachable
	}
	return int(targetCell.Distance)
}

// relax lazily resets v's scratch distance if it hasn't been touched this
// query, then pushes it if step improves on its current tentative distance.
func relax(grid *hexgrid.Grid, queue *bucketqueue.Queue, v int, version uint32, step uint32) {
	cell := &grid.Cells[v]
	if cell.Version != version {
		cell.Distance = hexgrid.UnreachableDistance
		cell.Version = version
	}
	if step < cell.Distance {
		cell.Distance = step
		queue.Push(v)
	}
}
