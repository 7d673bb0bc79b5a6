package engine

import (
	"testing"

	"github.com/gravitas-015/hexroute/internal/routing"
)

func TestWorldNotInitializedUntilInit(t *testing.T) {
	w := New(nil)
	if w.Initialized() {
		t.Fatalf("expected not initialized before Init")
	}
	if err := w.Init(4, 4); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !w.Initialized() {
		t.Fatalf("expected initialized after Init")
	}
}

func TestWorldInitRejectsBadDimensions(t *testing.T) {
	w := New(nil)
	if err := w.Init(0, 4); err == nil {
		t.Fatalf("expected error for zero cols")
	}
}

func TestWorldReinitResetsState(t *testing.T) {
	w := New(nil)
	if err := w.Init(3, 3); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !w.ChangeCost(1, 1, 10, 2) {
		t.Fatalf("expected change_cost OK")
	}
	if err := w.Init(3, 3); err != nil {
		t.Fatalf("reinit: %v", err)
	}
	if got := w.TravelCost(0, 0, 2, 2); got != 3 {
		t.Fatalf("expected fresh grid travel cost 3, got %d", got)
	}
}

func TestWorldCommandsRoundTrip(t *testing.T) {
	w := New(nil)
	if err := w.Init(4, 4); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := w.TravelCost(1, 1, 1, 1); got != 0 {
		t.Fatalf("expected 0 for same-cell travel cost, got %d", got)
	}
	if !w.ToggleAirRoute(0, 0, 1, 1) {
		t.Fatalf("expected toggle OK")
	}
	if got := w.TravelCost(0, 0, 1, 1); got == routing.Unreachable {
		t.Fatalf("expected air route to make target reachable")
	}
	if !w.ToggleAirRoute(0, 0, 1, 1) {
		t.Fatalf("expected toggle removal OK")
	}
}
