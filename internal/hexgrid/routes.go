package hexgrid

// MaxAirRoutes is the maximum number of outgoing air routes a single hex may own.
const MaxAirRoutes = 5

// AirRoute is a directed shortcut out of a hex. The original C source packs
// (destination, cost) into one 32-bit word; this implementation keeps them
// as plain fields instead (see DESIGN.md).
type AirRoute struct {
	Dest int
	Cost int
}
