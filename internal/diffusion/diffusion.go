// Package diffusion implements change_cost: a radius-bounded BFS from a
// source hex that applies a floor-division cost delta to every visited
// hex's land cost and outgoing air-route costs.
package diffusion

import "github.com/gravitas-015/hexroute/internal/hexgrid"

const (
	minParam  = -10
	maxParam  = 10
	maxRadius = 1<<16 - 1
)

// ChangeCost applies change_cost(x, y, p, radius) to grid. It reports
// whether the command succeeded (OK) or was rejected (KO); on rejection the
// grid is left entirely unchanged, as validation precedes every write.
func ChangeCost(grid *hexgrid.Grid, x, y, p, radius int) bool {
	source := grid.OffsetToLinear(x, y)
	if radius < 1 || radius > maxRadius || p < minParam || p > maxParam || source == hexgrid.None {
		return false
	}

	grid.BumpVersion()

	for i := range grid.Cells {
		if i == source {
			continue
		}
		grid.Cells[i].Color = hexgrid.White
		grid.Cells[i].Distance = hexgrid.UnreachableDistance
	}
	grid.Cells[source].Color = hexgrid.Grey
	grid.Cells[source].Distance = 0
	applyCostDelta(&grid.Cells[source], p, radius, 0)

	queue := hexgrid.NewAxialQueue(grid.Size())
	queue.Enqueue(grid.LinearToAxial(source))

	for !queue.Empty() {
		cur := queue.Dequeue()
		curIdx := grid.AxialToLinear(cur)
		curCell := &grid.Cells[curIdx]

		if curCell.Distance == uint32(radius) {
			continue
		}

		for _, nb := range hexgrid.AxialNeighbors(cur) {
			nbIdx := grid.AxialToLinear(nb)
			if nbIdx == hexgrid.None {
				continue
			}
			nbCell := &grid.Cells[nbIdx]
			if nbCell.Color != hexgrid.White {
				continue
			}
			nbCell.Color = hexgrid.Grey
			nbCell.Distance = curCell.Distance + 1
			queue.Enqueue(nb)
			applyCostDelta(nbCell, p, radius, nbCell.Distance)
		}
		curCell.Color = hexgrid.Black
	}

	return true
}

// applyCostDelta computes delta for a hex visited at graph distance d and,
// if non-zero, applies it to the hex's land cost and every outgoing air
// route cost, each clamped to its own valid range.
func applyCostDelta(cell *hexgrid.Cell, p, radius int, d uint32) {
	num := p * (radius - int(d))
	delta := floorDiv(num, radius)
	if delta == 0 {
		return
	}

	cell.LandCost = clamp(cell.LandCost+delta, 0, 100)

	for i := 0; i < cell.RoutesNum; i++ {
		newCost := cell.Routes[i].Cost + delta
		if newCost <= 0 {
			cell.Routes[i].Cost = 1
		} else if newCost > 100 {
			cell.Routes[i].Cost = 100
		} else {
			cell.Routes[i].Cost = newCost
		}
	}
}

// floorDiv computes floor(a/b) for b > 0, since Go's "/" truncates toward
// zero and the distilled spec requires floored division for negative p.
func floorDiv(a, b int) int {
	if a >= 0 {
		return a / b
	}
	return -((-a + b - 1) / b)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
