// Package partest provides test helpers that check the structural
// invariants a par.Engine placement must uphold, in the spirit of the
// teacher corpus's hwtest package of circuit-comparison helpers.
package partest

import (
	"testing"

	"github.com/greenpak-par/xbpar/par"
)

// AssertMatingInvariant fails t unless mate symmetry holds for every
// node in both graphs: n.Mate() == m implies m.Mate() == n.
func AssertMatingInvariant(t *testing.T, netlist, device *par.Graph) {
	t.Helper()
	check := func(g *par.Graph) {
		for i := 0; i < g.NumNodes(); i++ {
			n := g.NodeByIndex(i)
			m := n.Mate()
			if m == nil {
				continue
			}
			if m.Mate() != n {
				t.Errorf("mating invariant broken: node %d's mate does not point back", i)
			}
		}
	}
	check(netlist)
	check(device)
}

// AssertLabelCompatibility fails t unless every mated pair in netlist
// has equal labels on both sides.
func AssertLabelCompatibility(t *testing.T, netlist *par.Graph) {
	t.Helper()
	for i := 0; i < netlist.NumNodes(); i++ {
		n := netlist.NodeByIndex(i)
		m := n.Mate()
		if m == nil {
			continue
		}
		if n.Label() != m.Label() {
			t.Errorf("label mismatch: netlist node %d has label %d, mate has label %d", i, n.Label(), m.Label())
		}
	}
}

// AssertCapacity fails t unless, for every label used in netlist, the
// number of mated netlist nodes with that label does not exceed the
// device's site count for the same label.
func AssertCapacity(t *testing.T, netlist, device *par.Graph) {
	t.Helper()
	netlist.IndexNodesByLabel()
	device.CountLabels()
	max := netlist.MaxLabel()
	for label := 0; label <= max; label++ {
		mated := 0
		n := netlist.NumNodesWithLabel(label)
		for k := 0; k < n; k++ {
			if netlist.NodeByLabelAndIndex(label, k).Mate() != nil {
				mated++
			}
		}
		if cap := device.NumNodesWithLabel(label); mated > cap {
			t.Errorf("label %d: %d mated netlist nodes exceed device capacity %d", label, mated, cap)
		}
	}
}
