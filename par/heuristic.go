package par

// DefaultFindSuboptimalPlacements is the base FindSuboptimalPlacements
// hook. It collects every distinct netlist node that is an endpoint of
// a currently-unrouted edge: both the edge's source (whose mate lacks
// the needed device edge) and its destination (the node nothing can
// currently reach). An empty netlist, or one that is already fully
// routed, yields an empty (nil) slice, which ends the optimization loop
// as spec'd.
func DefaultFindSuboptimalPlacements(e *Engine) []*Node {
	var unroutes []*Edge
	e.ComputeUnroutableCost(&unroutes)
	if len(unroutes) == 0 {
		return nil
	}

	seen := make(map[*Node]bool, len(unroutes)*2)
	var bad []*Node
	add := func(n *Node) {
		if n != nil && !seen[n] {
			seen[n] = true
			bad = append(bad, n)
		}
	}
	for _, edge := range unroutes {
		add(edge.Source)
		add(edge.Dest)
	}
	return bad
}

// DefaultGetNewPlacementForNode is the base GetNewPlacementForNode
// hook. It picks a uniformly random device node sharing pivot's label,
// other than pivot's current site, using the engine's seeded RNG. If
// the device has only one site of that label (so there is nothing to
// try), it returns nil. Otherwise it makes at most as many draws as
// there are sites of that label, and returns nil if every draw lands on
// the current site.
func DefaultGetNewPlacementForNode(e *Engine, pivot *Node) *Node {
	label := pivot.Label()
	n := e.Device.NumNodesWithLabel(label)
	if n <= 1 {
		return nil
	}

	current := pivot.Mate()
	for tries := 0; tries < n; tries++ {
		candidate := e.Device.NodeByLabelAndIndex(label, e.rng.intn(n))
		if candidate != current {
			return candidate
		}
	}
	return nil
}

// DefaultPrintUnroutes is the base PrintUnroutes hook. It renders
// nothing, matching the original engine's empty default implementation
// -- device-specific subclasses are expected to know how to name their
// own nets and ports.
func DefaultPrintUnroutes(e *Engine, unroutes []*Edge) {}
