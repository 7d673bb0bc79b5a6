// Package hexgrid implements the odd-row-shoved-right hex grid data model:
// coordinate conversions, the per-cell arena, and the scratch fields shared
// by the diffusion and shortest-path engines.
package hexgrid

// None is the sentinel linear index returned for out-of-bounds conversions.
const None = -1

// MaxDimension bounds cols and rows, per the grid's size budget.
const MaxDimension = 1 << 20

// Offset is column/row grid coordinates, the form used by every external command.
type Offset struct {
	X int
	Y int
}

// Axial is (r, q) axial coordinates for the same odd-row-shoved-right layout.
// r is the row; q is the column shifted by half the row.
type Axial struct {
	R int
	Q int
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{R: a.R + b.R, Q: a.Q + b.Q} }

// axialDirections are the six constant axial neighbour deltas (Δr, Δq).
var axialDirections = [6]Axial{
	{R: 0, Q: +1},
	{R: 0, Q: -1},
	{R: +1, Q: 0},
	{R: -1, Q: 0},
	{R: -1, Q: +1},
	{R: +1, Q: -1},
}

// OffsetToAxial converts offset coordinates to axial coordinates.
func OffsetToAxial(x, y int) Axial {
	return Axial{R: y, Q: x - floorDiv2(y)}
}

// AxialToOffset converts axial coordinates back to offset coordinates.
func AxialToOffset(a Axial) Offset {
	return Offset{X: a.Q + floorDiv2(a.R), Y: a.R}
}

// floorDiv2 computes floor(n/2), which for Go's truncating "/" only needs
// adjustment on negative odd values.
func floorDiv2(n int) int {
	if n >= 0 {
		return n / 2
	}
	return -((-n + 1) / 2)
}

// Dims describes the dimensions an Offset or linear index is valid against.
// Coordinate conversions are methods on Dims rather than on the arena, so
// they can be unit tested without allocating one.
type Dims struct {
	Cols int
	Rows int
}

// Size returns the total cell count cols*rows for these dimensions.
func (d Dims) Size() int { return d.Cols * d.Rows }

// Valid reports whether (x, y) addresses a cell of a grid with these dimensions.
func (d Dims) Valid(x, y int) bool {
	return x >= 0 && x < d.Cols && y >= 0 && y < d.Rows
}

// OffsetToLinear maps offset coordinates to a linear index, or None if out of bounds.
func (d Dims) OffsetToLinear(x, y int) int {
	if !d.Valid(x, y) {
		return None
	}
	return y*d.Cols + x
}

// LinearToOffset maps a linear index back to offset coordinates.
func (d Dims) LinearToOffset(idx int) Offset {
	return Offset{X: idx % d.Cols, Y: idx / d.Cols}
}

// AxialToLinear maps axial coordinates to a linear index, or None if out of bounds.
func (d Dims) AxialToLinear(a Axial) int {
	o := AxialToOffset(a)
	return d.OffsetToLinear(o.X, o.Y)
}

// LinearToAxial maps a linear index to axial coordinates.
func (d Dims) LinearToAxial(idx int) Axial {
	o := d.LinearToOffset(idx)
	return OffsetToAxial(o.X, o.Y)
}

// AxialNeighbors returns the axial coordinates of the (up to) six neighbours
// of a, regardless of whether they fall inside the grid. Callers filter with
// AxialToLinear, which returns None for anything out of bounds.
func AxialNeighbors(a Axial) [6]Axial {
	var out [6]Axial
	for i, d := range axialDirections {
		out[i] = a.Add(d)
	}
	return out
}
