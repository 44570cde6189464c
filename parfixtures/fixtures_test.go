package parfixtures_test

import (
	"testing"

	"github.com/greenpak-par/xbpar/par"
	"github.com/greenpak-par/xbpar/parfixtures"
)

func TestChain(t *testing.T) {
	g := parfixtures.Chain(4)
	if g.NumNodes() != 4 || g.NumEdges() != 3 {
		t.Fatalf("NumNodes()=%d NumEdges()=%d, want 4 and 3", g.NumNodes(), g.NumEdges())
	}
	if g.MaxLabel() != 2 {
		t.Fatalf("MaxLabel() = %d, want 2", g.MaxLabel())
	}
}

func TestGrid(t *testing.T) {
	g := parfixtures.Grid(3, 3, 1)
	if g.NumNodes() != 9 {
		t.Fatalf("NumNodes() = %d, want 9", g.NumNodes())
	}
	// interior connectivity: corner (0,0) connects right and down only.
	corner := g.NodeByIndex(0)
	if corner.EdgeCount() != 2 {
		t.Fatalf("corner.EdgeCount() = %d, want 2", corner.EdgeCount())
	}
}

func TestCongestionByEdgeUsage(t *testing.T) {
	net := &par.Graph{}
	a := net.AddNode(1, "a")
	b := net.AddNode(1, "b")
	sink := net.AddNode(2, "sink")
	net.AddEdge(a, "OUT", sink, "D")
	net.AddEdge(b, "OUT", sink, "D")

	dev := &par.Graph{}
	da := dev.AddNode(1, "da")
	db := dev.AddNode(1, "db")
	dsink := dev.AddNode(2, "dsink")
	dev.AddEdge(da, "OUT", dsink, "D")
	dev.AddEdge(db, "OUT", dsink, "D")

	e := par.NewEngine(net, dev)
	e.CongestionCost = parfixtures.CongestionByEdgeUsage
	e.InitialPlacement(false)

	// Both a and b route through dsink's single device-graph edge slot
	// conceptually, but since a and b use distinct device sources (da,
	// db) with their own edges to dsink, no single device edge is
	// double-claimed: congestion should be 0.
	if got := e.CongestionCost(e); got != 0 {
		t.Fatalf("CongestionCost() = %d, want 0", got)
	}
}
