// Package airroute implements toggle_air_route: creating or removing a
// directed outgoing shortcut on a hex.
package airroute

import "github.com/gravitas-015/hexroute/internal/hexgrid"

// Toggle applies toggle_air_route(x1,y1,x2,y2) to grid, returning whether the
// command succeeded. On rejection the grid is left unchanged.
func Toggle(grid *hexgrid.Grid, x1, y1, x2, y2 int) bool {
	source := grid.OffsetToLinear(x1, y1)
	target := grid.OffsetToLinear(x2, y2)
	if source == hexgrid.None || target == hexgrid.None {
		return false
	}

	cell := &grid.Cells[source]
	for i := 0; i < cell.RoutesNum; i++ {
		if cell.Routes[i].Dest == target {
			removeRoute(cell, i)
			return true
		}
	}

	if cell.RoutesNum == hexgrid.MaxAirRoutes {
		return false
	}

	sum := cell.LandCost
	for i := 0; i < cell.RoutesNum; i++ {
		sum += cell.Routes[i].Cost
	}
	cost := sum / (cell.RoutesNum + 1)

	cell.Routes[cell.RoutesNum] = hexgrid.AirRoute{Dest: target, Cost: cost}
	cell.RoutesNum++
	return true
}

// removeRoute deletes the route at position from cell by shifting every
// later route down one slot, preserving the order of the survivors.
func removeRoute(cell *hexgrid.Cell, position int) {
	for i := position; i < cell.RoutesNum-1; i++ {
		cell.Routes[i] = cell.Routes[i+1]
	}
	cell.RoutesNum--
}
