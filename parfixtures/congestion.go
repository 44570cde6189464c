package parfixtures

import "github.com/greenpak-par/xbpar/par"

// CongestionByEdgeUsage returns a par.Engine-compatible CongestionCost
// hook that counts device edges claimed by more than one netlist edge.
// spec.md's base cost model always returns 0 for congestion and leaves
// counting claimed device edges as a subclass extension; this is that
// extension, expressed as a standalone function so callers opt in by
// assigning it to Engine.CongestionCost rather than getting it whether
// they want it or not.
//
// Each routed netlist edge "claims" the specific device edge it routes
// through (same source/dest mate pair and destination port, exactly the
// relation par.Engine.ComputeUnroutableCost uses to decide routability).
// A device edge claimed by k > 1 netlist edges contributes k-1 to the
// cost. The device edge itself, not just its (destination, port) pair,
// identifies the routing resource: two distinct device edges that
// happen to share a (destination, port) signature are still distinct
// physical resources and do not congest each other.
func CongestionByEdgeUsage(e *par.Engine) uint32 {
	usage := make(map[*par.Edge]uint32)

	for i := 0; i < e.Netlist.NumNodes(); i++ {
		netSrc := e.Netlist.NodeByIndex(i)
		devSrc := netSrc.Mate()
		if devSrc == nil {
			continue
		}
		for j := 0; j < netSrc.EdgeCount(); j++ {
			nedge := netSrc.EdgeByIndex(j)
			devDst := nedge.Dest.Mate()
			for k := 0; k < devSrc.EdgeCount(); k++ {
				dedge := devSrc.EdgeByIndex(k)
				if dedge.Dest == devDst && dedge.DestPort == nedge.DestPort {
					usage[dedge]++
					break
				}
			}
		}
	}

	var cost uint32
	for _, n := range usage {
		if n > 1 {
			cost += n - 1
		}
	}
	return cost
}
