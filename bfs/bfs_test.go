package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/internal/fixture"
)

// adj is a minimal Adjacency for hand-written graphs.
type adj [][]int

func (a adj) Len() int              { return len(a) }
func (a adj) Neighbors(i int) []int { return a[i] }

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	if _, err := bfs.Walk(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := adj{{}}
	if _, err := bfs.Walk(g, 1); !errors.Is(err, bfs.ErrSourceOutOfRange) {
		t.Errorf("source 1: want ErrSourceOutOfRange, got %v", err)
	}
	if _, err := bfs.Walk(g, -1); !errors.Is(err, bfs.ErrSourceOutOfRange) {
		t.Errorf("source -1: want ErrSourceOutOfRange, got %v", err)
	}
	var noCtx context.Context
	if _, err := bfs.Walk(g, 0, bfs.WithContext(noCtx)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("nil context: want ErrOptionViolation, got %v", err)
	}
}

// TestWalk_SampleDepths checks depths from AA on the reference network.
func TestWalk_SampleDepths(t *testing.T) {
	g := fixture.SampleGraph()
	aa, _ := g.Index("AA")

	res, err := bfs.Walk(g, aa)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{
		"AA": 0, "BB": 1, "DD": 1, "II": 1,
		"CC": 2, "EE": 2, "JJ": 2,
		"FF": 3, "GG": 4, "HH": 5,
	}
	for label, d := range want {
		id, _ := g.Index(label)
		if res.Depth[id] != d {
			t.Errorf("Depth[%s] = %d; want %d", label, res.Depth[id], d)
		}
	}
	if res.Order[0] != aa {
		t.Errorf("first visited = %d; want %d", res.Order[0], aa)
	}
	if len(res.Order) != g.Len() {
		t.Errorf("visited %d nodes; want %d", len(res.Order), g.Len())
	}
}

// TestWalk_Directed ensures edges are followed in one direction only.
func TestWalk_Directed(t *testing.T) {
	// 0 → 1 → 2, 3 isolated
	g := adj{{1}, {2}, {}, {}}
	res, err := bfs.Walk(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{bfs.Unreached, 0, 1, bfs.Unreached}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestWalk_OnVisitDepths checks that the hook sees every reached node
// once, in Order, with its final depth.
func TestWalk_OnVisitDepths(t *testing.T) {
	g := adj{{1, 2}, {3}, {3}, {}, {0}}
	var ids, depths []int
	res, err := bfs.Walk(g, 0, bfs.WithOnVisit(func(id, depth int) error {
		ids = append(ids, id)
		depths = append(depths, depth)
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids, res.Order) {
		t.Errorf("hook ids = %v; want Order %v", ids, res.Order)
	}
	if want := []int{0, 1, 1, 2}; !reflect.DeepEqual(depths, want) {
		t.Errorf("hook depths = %v; want %v", depths, want)
	}
}

// TestWalk_HookAndCancel covers OnVisit aborts and context cancellation.
func TestWalk_HookAndCancel(t *testing.T) {
	g := adj{{1}, {0}}
	stop := errors.New("stop")
	_, err := bfs.Walk(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want hook error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.Walk(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
