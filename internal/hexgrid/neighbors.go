package hexgrid

// offsetDelta is a single (dx, dy) neighbour step in offset coordinates.
type offsetDelta struct {
	dx, dy int
}

// evenRowDeltas and oddRowDeltas are the six offset-coordinate neighbour
// deltas for the odd-row-shoved-right layout, keyed by the parity of the
// row the source cell sits on.
var (
	evenRowDeltas = [6]offsetDelta{
		{+1, 0}, {0, -1}, {-1, -1}, {-1, 0}, {-1, +1}, {0, +1},
	}
	oddRowDeltas = [6]offsetDelta{
		{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {0, +1}, {+1, +1},
	}
)

// Neighbor is one live out-edge to an adjacent hex, identified by its linear
// index. It carries no weight: the caller supplies the traversal weight,
// which is the source's land cost, not a property of the edge itself.
type Neighbor struct {
	Index int
}

// Neighbors enumerates the linear indices of the up to six hex-adjacency
// neighbours of idx. The deltas are applied in offset coordinates; steps
// past the left/right column or outside the grid are dropped.
func (d Dims) Neighbors(idx int, out []Neighbor) []Neighbor {
	o := d.LinearToOffset(idx)
	deltas := &evenRowDeltas
	if o.Y&1 == 1 {
		deltas = &oddRowDeltas
	}
	out = out[:0]
	for _, delta := range deltas {
		if delta.dx == -1 && o.X == 0 {
			continue
		}
		if delta.dx == +1 && o.X == d.Cols-1 {
			continue
		}
		nx, ny := o.X+delta.dx, o.Y+delta.dy
		if !d.Valid(nx, ny) {
			continue
		}
		out = append(out, Neighbor{Index: d.OffsetToLinear(nx, ny)})
	}
	return out
}
