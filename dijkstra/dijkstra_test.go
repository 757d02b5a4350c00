// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate error ordering, travel times on the sample network,
// MaxDistance, predecessor maps and edge cases such as isolated stops.
package dijkstra_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/dijkstra"
	"github.com/katalvlaran/metroroute/sample"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	n := core.NewNetwork()
	_, _, err := dijkstra.Dijkstra(n)
	if !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilNetworkWithoutSource(t *testing.T) {
	// ErrEmptySource has priority over ErrNilNetwork.
	_, _, err := dijkstra.Dijkstra(nil)
	if !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource when network is nil and Source is empty, got %v", err)
	}
}

func TestDijkstra_NilNetworkWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrNilNetwork) {
		t.Fatalf("Expected ErrNilNetwork, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(sample.Network(), dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrSourceNotFound) {
		t.Fatalf("Expected ErrSourceNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeMaxDistance(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(sample.Network(), dijkstra.Source("M1"), dijkstra.WithMaxDistance(-1))
	if !errors.Is(err, dijkstra.ErrBadMaxDistance) {
		t.Fatalf("Expected ErrBadMaxDistance, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: travel times and predecessor maps.
// ------------------------------------------------------------------------

func TestDijkstra_SampleFromM1(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(sample.Network(), dijkstra.Source("M1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != nil {
		t.Errorf("prev should be nil without WithReturnPath, got %v", prev)
	}

	want := map[string]int64{
		"M1": 0, "M2": 5, "K1": 7, "M3": 8, "K2": 11, "M4": 12,
		"T3": 14, "K3": 17, "T4": 19, "T2": 20, "K4": 25, "T1": 27,
	}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("dist = %v; want %v", dist, want)
	}
}

func TestDijkstra_ReturnPath(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(sample.Network(), dijkstra.Source("M1"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev["M1"] != "" {
		t.Errorf("prev[M1] = %q; want empty", prev["M1"])
	}

	path, err := dijkstra.PathTo(dist, prev, "K4")
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if want := []string{"M1", "M2", "K1", "K2", "K3", "K4"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}

	path, err = dijkstra.PathTo(dist, prev, "M1")
	if err != nil || !reflect.DeepEqual(path, []string{"M1"}) {
		t.Errorf("path to source = %v, %v; want [M1], nil", path, err)
	}
}

func TestDijkstra_MaxDistance(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(sample.Network(),
		dijkstra.Source("M1"), dijkstra.WithMaxDistance(8), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for id, want := range map[string]int64{"M1": 0, "M2": 5, "K1": 7, "M3": 8} {
		if dist[id] != want {
			t.Errorf("dist[%s] = %d; want %d", id, dist[id], want)
		}
	}
	for _, id := range []string{"K2", "M4", "K4", "T1"} {
		if dist[id] != dijkstra.Unreachable {
			t.Errorf("dist[%s] = %d; want Unreachable", id, dist[id])
		}
		if prev[id] != "" {
			t.Errorf("prev[%s] = %q; want empty", id, prev[id])
		}
	}

	if _, err := dijkstra.PathTo(dist, prev, "K4"); !errors.Is(err, core.ErrNoRoute) {
		t.Errorf("PathTo beyond cap: want ErrNoRoute, got %v", err)
	}
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(sample.Network(), dijkstra.Source("K1"), dijkstra.WithMaxDistance(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist["K1"] != 0 || dist["M2"] != dijkstra.Unreachable {
		t.Errorf("dist = %v; want only K1 reached", dist)
	}
}

// ------------------------------------------------------------------------
// 3. Edge cases: isolated stops, parallel connections, zero costs, ties.
// ------------------------------------------------------------------------

func TestDijkstra_IsolatedSource(t *testing.T) {
	n := core.NewNetwork()
	mustStop(t, n, "A", "L")
	mustStop(t, n, "B", "L")

	dist, prev, err := dijkstra.Dijkstra(n, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist["A"] != 0 || dist["B"] != dijkstra.Unreachable {
		t.Errorf("dist = %v", dist)
	}
	if _, err := dijkstra.PathTo(dist, prev, "B"); !errors.Is(err, core.ErrNoRoute) {
		t.Errorf("want ErrNoRoute, got %v", err)
	}
	if _, err := dijkstra.PathTo(dist, prev, "missing"); !errors.Is(err, core.ErrNoRoute) {
		t.Errorf("unknown dest: want ErrNoRoute, got %v", err)
	}
}

func TestDijkstra_ParallelConnectionsUseCheapest(t *testing.T) {
	n := core.NewNetwork()
	mustStop(t, n, "A", "L")
	mustStop(t, n, "B", "L")
	mustConn(t, n, "A", "B", 9)
	mustConn(t, n, "A", "B", 3)

	dist, _, err := dijkstra.Dijkstra(n, dijkstra.Source("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist["B"] != 3 {
		t.Errorf("dist[B] = %d; want 3", dist["B"])
	}
}

func TestDijkstra_ZeroCostAndSelfLoop(t *testing.T) {
	n := core.NewNetwork()
	mustStop(t, n, "A", "L")
	mustStop(t, n, "B", "L")
	mustConn(t, n, "A", "A", 4)
	mustConn(t, n, "A", "B", 0)

	dist, _, err := dijkstra.Dijkstra(n, dijkstra.Source("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist["A"] != 0 || dist["B"] != 0 {
		t.Errorf("dist = %v; want A=0 B=0", dist)
	}
}

func TestDijkstra_TieKeepsFirstPredecessor(t *testing.T) {
	// A→B→D and A→C→D both cost 2; B is linked first, so it wins.
	n := core.NewNetwork()
	for _, id := range []string{"A", "B", "C", "D"} {
		mustStop(t, n, id, "L")
	}
	mustConn(t, n, "A", "B", 1)
	mustConn(t, n, "A", "C", 1)
	mustConn(t, n, "B", "D", 1)
	mustConn(t, n, "C", "D", 1)

	for i := 0; i < 20; i++ {
		_, prev, err := dijkstra.Dijkstra(n, dijkstra.Source("A"), dijkstra.WithReturnPath())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prev["D"] != "B" {
			t.Fatalf("run %d: prev[D] = %q; want B", i, prev["D"])
		}
	}
}

func mustStop(t *testing.T, n *core.Network, id, line string) {
	t.Helper()
	if err := n.AddStop(id, id, line); err != nil {
		t.Fatalf("AddStop(%s): %v", id, err)
	}
}

func mustConn(t *testing.T, n *core.Network, a, b string, cost int64) {
	t.Helper()
	if err := n.AddConnection(a, b, cost); err != nil {
		t.Fatalf("AddConnection(%s,%s): %v", a, b, err)
	}
}
