package par_test

import (
	"testing"

	"github.com/greenpak-par/xbpar/par"
)

// ComputeUnroutableCost must truncate its out-param before appending, so
// a slice reused across iterations never carries stale entries from a
// previous, better placement.
func TestComputeUnroutableCost_truncatesStaleEntries(t *testing.T) {
	net := &par.Graph{}
	a, b := net.AddNode(1, nil), net.AddNode(2, nil)
	net.AddEdge(a, "OUT", b, "Q")
	dev := &par.Graph{}
	da, db := dev.AddNode(1, nil), dev.AddNode(2, nil)
	dev.AddEdge(da, "OUT", db, "D")

	e := par.NewEngine(net, dev)
	e.Logger = par.NewLevelSplitLogger(discard{}, discard{})
	e.InitialPlacement(false)

	unroutes := make([]*par.Edge, 3) // pre-populated with stale entries
	cost := e.ComputeUnroutableCost(&unroutes)
	if cost != 1 || len(unroutes) != 1 {
		t.Fatalf("cost=%d len(unroutes)=%d, want 1 and 1", cost, len(unroutes))
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
