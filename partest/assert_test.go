package partest_test

import (
	"testing"

	"github.com/greenpak-par/xbpar/par"
	"github.com/greenpak-par/xbpar/partest"
)

func TestAssertMatingInvariant_passesOnSymmetricMating(t *testing.T) {
	netlist, device := &par.Graph{}, &par.Graph{}
	n := netlist.AddNode(1, nil)
	d := device.AddNode(1, nil)
	n.MateWith(d)

	partest.AssertMatingInvariant(t, netlist, device)
}

func TestAssertLabelCompatibility_passesOnMatchingLabels(t *testing.T) {
	netlist, device := &par.Graph{}, &par.Graph{}
	n := netlist.AddNode(2, nil)
	d := device.AddNode(2, nil)
	n.MateWith(d)

	partest.AssertLabelCompatibility(t, netlist)
}

func TestAssertLabelCompatibility_failsOnLabelMismatch(t *testing.T) {
	netlist, device := &par.Graph{}, &par.Graph{}
	n := netlist.AddNode(1, nil)
	d := device.AddNode(2, nil)
	n.MateWith(d)

	sub := &testing.T{}
	partest.AssertLabelCompatibility(sub, netlist)
	if !sub.Failed() {
		t.Fatal("expected AssertLabelCompatibility to fail on a label mismatch")
	}
}

func TestAssertCapacity_passesWithinDeviceSiteCount(t *testing.T) {
	netlist, device := &par.Graph{}, &par.Graph{}
	n1 := netlist.AddNode(1, nil)
	n2 := netlist.AddNode(1, nil)
	d1 := device.AddNode(1, nil)
	d2 := device.AddNode(1, nil)
	n1.MateWith(d1)
	n2.MateWith(d2)

	partest.AssertCapacity(t, netlist, device)
}

// AssertCapacity only checks mated-ness and label, not mate identity, so
// an over-capacity failure can be forced by mating netlist nodes onto an
// unrelated graph that happens to share the label, sidestepping
// MateWith's own one-mate-per-site bookkeeping on the real device.
func TestAssertCapacity_failsWhenMatedCountExceedsDeviceSites(t *testing.T) {
	netlist, device, other := &par.Graph{}, &par.Graph{}, &par.Graph{}
	n1 := netlist.AddNode(1, nil)
	n2 := netlist.AddNode(1, nil)
	device.AddNode(1, nil)
	o1 := other.AddNode(1, nil)
	o2 := other.AddNode(1, nil)
	n1.MateWith(o1)
	n2.MateWith(o2)

	sub := &testing.T{}
	partest.AssertCapacity(sub, netlist, device)
	if !sub.Failed() {
		t.Fatal("expected AssertCapacity to fail when mated count exceeds device capacity")
	}
}
