package par_test

import (
	"testing"

	"github.com/greenpak-par/xbpar/par"
)

func TestGraph_labelIndex(t *testing.T) {
	g := &par.Graph{}
	g.AddNode(0, "a")
	g.AddNode(1, "b")
	g.AddNode(1, "c")
	g.AddNode(3, "d")

	if got := g.MaxLabel(); got != 3 {
		t.Fatalf("MaxLabel() = %d, want 3", got)
	}

	g.IndexNodesByLabel()

	cases := []struct {
		label, count int
	}{
		{0, 1},
		{1, 2},
		{2, 0},
		{3, 1},
	}
	for _, c := range cases {
		if got := g.NumNodesWithLabel(c.label); got != c.count {
			t.Errorf("NumNodesWithLabel(%d) = %d, want %d", c.label, got, c.count)
		}
	}

	if n := g.NodeByLabelAndIndex(1, 0); n.Payload != "b" {
		t.Errorf("NodeByLabelAndIndex(1, 0).Payload = %v, want b", n.Payload)
	}
	if n := g.NodeByLabelAndIndex(1, 1); n.Payload != "c" {
		t.Errorf("NodeByLabelAndIndex(1, 1).Payload = %v, want c", n.Payload)
	}
}

func TestGraph_addEdge(t *testing.T) {
	g := &par.Graph{}
	a := g.AddNode(0, nil)
	b := g.AddNode(0, nil)
	g.AddEdge(a, "OUT", b, "D")

	if g.NumEdges() != 1 {
		t.Fatalf("NumEdges() = %d, want 1", g.NumEdges())
	}
	if a.EdgeCount() != 1 {
		t.Fatalf("a.EdgeCount() = %d, want 1", a.EdgeCount())
	}
	e := a.EdgeByIndex(0)
	if e.Source != a || e.Dest != b || e.SourcePort != "OUT" || e.DestPort != "D" {
		t.Errorf("unexpected edge: %+v", e)
	}
}

// Mating symmetry: n.Mate() == m iff m.Mate() == n, and mate_with clears
// prior mates on both sides.
func TestNode_mateWith(t *testing.T) {
	net := &par.Graph{}
	dev := &par.Graph{}
	n1 := net.AddNode(1, nil)
	n2 := net.AddNode(1, nil)
	d1 := dev.AddNode(1, nil)
	d2 := dev.AddNode(1, nil)

	n1.MateWith(d1)
	if n1.Mate() != d1 || d1.Mate() != n1 {
		t.Fatal("mating invariant broken after first MateWith")
	}

	n2.MateWith(d1)
	if n2.Mate() != d1 || d1.Mate() != n2 {
		t.Fatal("n2 should now be mated with d1")
	}
	if n1.Mate() != nil {
		t.Fatal("n1's old mate should have been cleared when d1 was reassigned")
	}

	n2.MateWith(d2)
	if n2.Mate() != d2 || d2.Mate() != n2 {
		t.Fatal("n2 should now be mated with d2")
	}
	if d1.Mate() != nil {
		t.Fatal("d1's old mate should have been cleared when n2 moved away")
	}
}
