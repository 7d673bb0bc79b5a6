package diffusion

import (
	"testing"

	"github.com/gravitas-015/hexroute/internal/hexgrid"
)

func newTestGrid(t *testing.T, cols, rows int) *hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.NewGrid(cols, rows)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestChangeCostRejectsZeroRadius(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	if ok := ChangeCost(g, 1, 1, 1, 0); ok {
		t.Fatalf("expected KO for radius=0")
	}
	for i, c := range g.Cells {
		if c.LandCost != 1 {
			t.Fatalf("cell %d mutated despite rejection", i)
		}
	}
}

func TestChangeCostRejectsOutOfRangeParam(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	if ok := ChangeCost(g, 1, 1, 11, 1); ok {
		t.Fatalf("expected KO for p=11")
	}
	if ok := ChangeCost(g, 1, 1, -11, 1); ok {
		t.Fatalf("expected KO for p=-11")
	}
}

func TestChangeCostRejectsOutOfBoundsSource(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	if ok := ChangeCost(g, 99, 99, 1, 1); ok {
		t.Fatalf("expected KO for out-of-bounds source")
	}
}

func TestChangeCostZeroParamIsNoOp(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	before := make([]int, g.Size())
	for i, c := range g.Cells {
		before[i] = c.LandCost
	}
	if ok := ChangeCost(g, 2, 2, 0, 3); !ok {
		t.Fatalf("expected OK")
	}
	for i, c := range g.Cells {
		if c.LandCost != before[i] {
			t.Fatalf("cell %d: p=0 should not change land cost, got %d want %d", i, c.LandCost, before[i])
		}
	}
}

func TestChangeCostRadiusOneOnlyTouchesSource(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	src := g.OffsetToLinear(2, 2)
	if ok := ChangeCost(g, 2, 2, 5, 1); !ok {
		t.Fatalf("expected OK")
	}
	if g.Cells[src].LandCost != 6 {
		t.Fatalf("source land cost: want 6, got %d", g.Cells[src].LandCost)
	}
	for i, c := range g.Cells {
		if i == src {
			continue
		}
		if c.LandCost != 1 {
			t.Fatalf("non-source cell %d should be untouched with radius=1, got LandCost=%d", i, c.LandCost)
		}
	}
}

func TestChangeCostFlooredDivisionSign(t *testing.T) {
	// p=-1, radius=3: a neighbour at distance 1 gets num=-1*(3-1)=-2,
	// delta=floor(-2/3)=-1, not 0 (truncation toward zero would give 0).
	g := newTestGrid(t, 7, 7)
	src := g.OffsetToLinear(3, 3)
	if ok := ChangeCost(g, 3, 3, -1, 3); !ok {
		t.Fatalf("expected OK")
	}
	axial := g.LinearToAxial(src)
	foundDistanceOne := false
	for _, nb := range hexgrid.AxialNeighbors(axial) {
		idx := g.AxialToLinear(nb)
		if idx == hexgrid.None {
			continue
		}
		foundDistanceOne = true
		if g.Cells[idx].LandCost != 0 {
			t.Fatalf("neighbour at distance 1: want LandCost=0 (1 + floor(-2/3)=1-1=0), got %d", g.Cells[idx].LandCost)
		}
	}
	if !foundDistanceOne {
		t.Fatalf("test setup error: source has no neighbours")
	}
}

func TestChangeCostRoundTripWithoutSaturation(t *testing.T) {
	g := newTestGrid(t, 6, 6)
	before := make([]int, g.Size())
	for i, c := range g.Cells {
		before[i] = c.LandCost
	}
	ChangeCost(g, 3, 3, 4, 2)
	ChangeCost(g, 3, 3, -4, 2)
	for i, c := range g.Cells {
		if c.LandCost != before[i] {
			t.Fatalf("cell %d: expected round trip to restore LandCost=%d, got %d", i, before[i], c.LandCost)
		}
	}
}

func TestChangeCostSaturatesLandCostToZeroFloor(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	src := g.OffsetToLinear(1, 1)
	if ok := ChangeCost(g, 1, 1, -10, 1); !ok {
		t.Fatalf("expected OK")
	}
	if g.Cells[src].LandCost != 0 {
		t.Fatalf("expected land cost clamped to 0, got %d", g.Cells[src].LandCost)
	}
}

func TestChangeCostRadiusLargerThanGridIsUnbounded(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	// p=10, radius=1000: cells at d=1 and d=2 get floor(10*999/1000) and
	// floor(10*998/1000), both 9, so every cell ends above 1.
	if ok := ChangeCost(g, 1, 1, 10, 1000); !ok {
		t.Fatalf("expected OK")
	}
	for i, c := range g.Cells {
		if c.LandCost <= 1 {
			t.Fatalf("cell %d should have received a positive delta under an unbounded diffusion, got %d", i, c.LandCost)
		}
	}
}

func TestChangeCostAirRouteLowerClampIsOne(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	src := g.OffsetToLinear(0, 0)
	g.Cells[src].Routes[0] = hexgrid.AirRoute{Dest: 1, Cost: 1}
	g.Cells[src].RoutesNum = 1

	if ok := ChangeCost(g, 0, 0, -5, 1); !ok {
		t.Fatalf("expected OK")
	}
	if g.Cells[src].Routes[0].Cost != 1 {
		t.Fatalf("air route cost should clamp to 1 (not 0), got %d", g.Cells[src].Routes[0].Cost)
	}
}
