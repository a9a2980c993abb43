package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/conveyor/bfs"
	"github.com/katalvlaran/conveyor/builder"
	"github.com/katalvlaran/conveyor/core"
)

// mustGraph builds a bidirectional graph from links or fails the test.
func mustGraph(t testing.TB, links ...core.Link) *core.Graph {
	t.Helper()
	g, err := core.FromLinks(links)
	if err != nil {
		t.Fatalf("FromLinks: %v", err)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := mustGraph(t, core.Link{A: "A", B: "B", Cost: 1})
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleJunction covers the trivial one-junction graph.
func TestBFS_SingleJunction(t *testing.T) {
	g, err := core.NewGraph([]string{"A"}, nil)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if _, ok := res.Parent["A"]; ok {
		t.Errorf("start must have no parent")
	}
}

// TestBFS_GridOrder checks layering on a 3×3 grid.
func TestBFS_GridOrder(t *testing.T) {
	net, err := builder.Build(nil, builder.Grid(3, 3))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g, err := net.Graph()
	if err != nil {
		t.Fatalf("Graph: %v", err)
	}
	res, err := bfs.BFS(g, "0,0")
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	want := []string{"0,0", "0,1", "1,0", "0,2", "1,1", "2,0", "1,2", "2,1", "2,2"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["2,2"]; d != 4 {
		t.Errorf("Depth[2,2] = %d; want 4", d)
	}
	path, err := res.PathTo("2,2")
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if len(path) != 5 || path[0] != "0,0" || path[4] != "2,2" {
		t.Errorf("PathTo(2,2) = %v; want 5 hops from 0,0", path)
	}
}

// TestBFS_IgnoresCost checks that hop count, not cost, drives depth.
func TestBFS_IgnoresCost(t *testing.T) {
	g := mustGraph(t,
		core.Link{A: "A", B: "B", Cost: 1},
		core.Link{A: "B", B: "C", Cost: 1},
		core.Link{A: "A", B: "C", Cost: 100},
	)
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if d := res.Depth["C"]; d != 1 {
		t.Errorf("Depth[C] = %d; want 1", d)
	}
}

// TestBFS_MaxDepth limits exploration.
func TestBFS_MaxDepth(t *testing.T) {
	net, err := builder.Build([]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)}, builder.Path(5))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g, err := net.Graph()
	if err != nil {
		t.Fatalf("Graph: %v", err)
	}
	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, err := res.PathTo("E"); err == nil {
		t.Errorf("PathTo(E) beyond MaxDepth: want error")
	}
}

// TestBFS_FilterNeighbor skips expensive belts.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := mustGraph(t,
		core.Link{A: "A", B: "B", Cost: 1},
		core.Link{A: "A", B: "C", Cost: 50},
	)
	cheap := func(_, _ string, cost int64) bool { return cost < 10 }
	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(cheap))
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if _, ok := res.Depth["C"]; ok {
		t.Errorf("C should be filtered out, got Depth %v", res.Depth)
	}
}

// TestBFS_OnVisitError aborts the traversal with the hook error.
func TestBFS_OnVisitError(t *testing.T) {
	g := mustGraph(t, core.Link{A: "A", B: "B", Cost: 1}, core.Link{A: "B", B: "C", Cost: 1})
	stop := errors.New("stop")
	var seen []string
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(name string, _ int) error {
		seen = append(seen, name)
		if name == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want hook error, got %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("visited %v; want %v", seen, want)
	}
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	g := mustGraph(t, core.Link{A: "A", B: "B", Cost: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_Directed follows connection direction.
func TestBFS_Directed(t *testing.T) {
	g, err := core.NewGraph([]string{"A", "B"}, []core.Connection{{From: "B", To: "A", Cost: 1}})
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if len(res.Order) != 1 {
		t.Errorf("Order = %v; want only A", res.Order)
	}
}
