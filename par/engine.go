package par

import (
	"os"

	"github.com/sirupsen/logrus"
)

// stagnationLimit is the number of consecutive iterations without a new
// best cost after which the optimization loop gives up.
const stagnationLimit = 5

// initialTemperature is the starting value of Engine.Temperature. It
// decrements by one after every accepted or rejected iteration, so the
// loop runs at most this many optimization iterations.
const initialTemperature = 100

// Engine runs placement and routing between a netlist graph and a
// device graph. The core algorithm (feasibility check, deterministic
// initial placement, annealing-style move/accept loop, cost
// decomposition) is fixed; device-specific intelligence is supplied
// through the five function-valued fields below, which stand in for the
// "subclass hooks" of the original design. NewEngine wires in
// defaults that reproduce the base (device-agnostic) behavior.
type Engine struct {
	Netlist *Graph
	Device  *Graph

	// Temperature is the annealing control. It starts at 100 and
	// decrements by one after every iteration of the optimization loop,
	// linearly shrinking the probability of accepting a cost-increasing
	// move from 100% to 0%. Exported so tests can pin down the schedule.
	Temperature uint32

	Logger *logrus.Logger

	// FindSuboptimalPlacements returns the set of netlist nodes worth
	// reconsidering this iteration. An empty return means "nothing to
	// do" and ends the optimization loop.
	FindSuboptimalPlacements func(e *Engine) []*Node

	// GetNewPlacementForNode proposes a candidate device site of
	// matching label for pivot, or nil if none is worth trying.
	GetNewPlacementForNode func(e *Engine, pivot *Node) *Node

	// PrintUnroutes renders the final list of unrouted edges when
	// PlaceAndRoute fails to converge.
	PrintUnroutes func(e *Engine, unroutes []*Edge)

	// CongestionCost and TimingCost compute the remaining two terms of
	// the cost function. The base engine's defaults always return 0,
	// matching the original's "no congestion/timing analysis
	// performed."
	CongestionCost func(e *Engine) uint32
	TimingCost     func(e *Engine) uint32

	rng *rng
}

// NewEngine returns an Engine ready to place and route netlist onto
// device, with the base (device-agnostic) heuristics and a default
// logger wired in. Callers targeting a specific device family typically
// override FindSuboptimalPlacements, GetNewPlacementForNode and
// PrintUnroutes (and optionally CongestionCost/TimingCost) after
// construction.
func NewEngine(netlist, device *Graph) *Engine {
	logger := NewLevelSplitLogger(os.Stdout, os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
	return &Engine{
		Netlist:                  netlist,
		Device:                   device,
		Temperature:              initialTemperature,
		Logger:                   logger,
		FindSuboptimalPlacements: DefaultFindSuboptimalPlacements,
		GetNewPlacementForNode:   DefaultGetNewPlacementForNode,
		PrintUnroutes:            DefaultPrintUnroutes,
		CongestionCost:           func(*Engine) uint32 { return 0 },
		TimingCost:               func(*Engine) uint32 { return 0 },
	}
}

// PlaceAndRoute assigns every netlist node to a device site and
// iteratively refines the assignment. It returns true iff the final
// mating has zero unroutable edges. Progress is logged at info level
// when verbose is true; errors always go through the Error level.
// Identical (netlist, device, seed) triples are guaranteed to produce
// identical results.
func (e *Engine) PlaceAndRoute(verbose bool, seed uint32) bool {
	if verbose {
		e.Logger.Info("initializing...")
	}
	e.Temperature = initialTemperature
	e.rng = newRNG(seed)

	if !e.SanityCheck(verbose) {
		return false
	}

	e.InitialPlacement(verbose)

	iteration := uint32(0)
	var unroutes []*Edge
	bestCost := uint32(1000000)
	iterationsSinceBest := uint32(0)

	for {
		cost := e.computeAndPrintScore(&unroutes, iteration, verbose)
		iterationsSinceBest++
		iteration++

		if cost < bestCost {
			bestCost = cost
			iterationsSinceBest = 0
		}

		if iterationsSinceBest >= stagnationLimit {
			break
		}

		if !e.optimizePlacement() {
			break
		}

		e.Temperature--
	}

	unroutes = unroutes[:0]
	if n := e.ComputeUnroutableCost(&unroutes); n != 0 {
		e.Logger.Error("ERROR: Some nets could not be completely routed!")
		e.PrintUnroutes(e, unroutes)
		return false
	}

	return true
}

// computeAndPrintScore recomputes all three cost terms, logs the
// diagnostic line in the exact format external tooling greps for when
// verbose is true, and returns the total cost.
func (e *Engine) computeAndPrintScore(unroutes *[]*Edge, iteration uint32, verbose bool) uint32 {
	ucost := e.ComputeUnroutableCost(unroutes)
	ccost := e.CongestionCost(e)
	tcost := e.TimingCost(e)
	cost := ucost + ccost + tcost

	if verbose {
		e.Logger.Infof(
			"Optimizing placement (iteration %d)\n    unroutability cost %d, congestion cost %d, timing cost %d (total %d)",
			iteration, ucost, ccost, tcost, cost,
		)
	}

	return cost
}

// SanityCheck rejects designs that are obviously impossible to route:
// either the netlist uses a label the device has none of, or some label
// is used by more netlist nodes than the device has matching sites.
func (e *Engine) SanityCheck(verbose bool) bool {
	if verbose {
		e.Logger.Info("initial design feasibility check...")
	}

	nmaxNet := e.Netlist.MaxLabel()
	nmaxDev := e.Device.MaxLabel()

	if nmaxNet > nmaxDev {
		e.Logger.Errorf("ERROR: Netlist contains a node with label %d, largest in device is %d", nmaxNet, nmaxDev)
		return false
	}

	e.Netlist.CountLabels()
	e.Device.CountLabels()

	for label := 0; label <= nmaxNet; label++ {
		nnet := e.Netlist.NumNodesWithLabel(label)
		ndev := e.Device.NumNodesWithLabel(label)
		if nnet > ndev {
			e.Logger.Errorf(
				"ERROR: Design is too big for the device (netlist has %d nodes with label %d, device only has %d)",
				nnet, label, ndev,
			)
			return false
		}
	}

	return true
}

// InitialPlacement produces a legal, but not necessarily routable,
// mating by pairing netlist and device nodes in label-then-index order.
// It is intentionally deterministic: reproducibility of the starting
// point matters more than its quality, which the optimizer improves.
func (e *Engine) InitialPlacement(verbose bool) {
	if verbose {
		e.Logger.Infof("global placement of %d instances into %d sites...", e.Netlist.NumNodes(), e.Device.NumNodes())
		e.Logger.Infof("    %d nets, %d routing channels available", e.Netlist.NumEdges(), e.Device.NumEdges())
	}

	e.Netlist.IndexNodesByLabel()
	e.Device.IndexNodesByLabel()

	nmaxNet := e.Netlist.MaxLabel()
	for label := 0; label <= nmaxNet; label++ {
		nnet := e.Netlist.NumNodesWithLabel(label)
		for k := 0; k < nnet; k++ {
			netNode := e.Netlist.NodeByLabelAndIndex(label, k)
			devNode := e.Device.NodeByLabelAndIndex(label, k)
			netNode.MateWith(devNode)
		}
	}
}

// optimizePlacement runs a single iteration of the move/accept loop. It
// returns false when the loop as a whole should stop (temperature
// exhausted, or no suboptimal nodes left), and true otherwise --
// including when this particular iteration found a pivot but no legal
// candidate site, in which case it is simply skipped.
func (e *Engine) optimizePlacement() bool {
	if e.Temperature == 0 {
		return false
	}

	badNodes := e.FindSuboptimalPlacements(e)
	if len(badNodes) == 0 {
		return false
	}

	pivot := badNodes[e.rng.intn(len(badNodes))]

	oldMate := pivot.Mate()
	newMate := e.GetNewPlacementForNode(e, pivot)
	if newMate == nil {
		return true
	}

	originalCost := e.ComputeCost()
	e.MoveNode(pivot, newMate)
	newCost := e.ComputeCost()

	if newCost < originalCost {
		return true
	}
	if uint32(e.rng.intn(100)) < e.Temperature {
		return true
	}

	e.MoveNode(pivot, oldMate)
	return true
}

// MoveNode moves the netlist node n to the device site newSite. If
// newSite is already occupied, the two netlist nodes are swapped
// between their sites, preserving the mating invariant and the
// per-label occupancy at every site. It panics with an *InvariantError
// if n and newSite have different labels: that can only happen if a
// GetNewPlacementForNode hook is buggy, and continuing would corrupt the
// mating invariant.
func (e *Engine) MoveNode(n, newSite *Node) {
	if n.Label() != newSite.Label() {
		panic(newInvariantError("tried to assign node with label %d to site with label %d", n.Label(), newSite.Label()))
	}

	if displaced := newSite.Mate(); displaced != nil {
		oldSite := n.Mate()
		displaced.MateWith(oldSite)
	}

	n.MateWith(newSite)
}

// ComputeCost returns the unweighted sum of the unroutability,
// congestion and timing sub-costs for the current mating.
func (e *Engine) ComputeCost() uint32 {
	var unroutes []*Edge
	return e.ComputeUnroutableCost(&unroutes) + e.CongestionCost(e) + e.TimingCost(e)
}

// ComputeUnroutableCost counts netlist edges with no corresponding
// device edge between their mated endpoints, appending each one to
// *unroutes (which is truncated to length 0 first, so stale entries
// from a previous call never leak through). Only the destination port
// is checked against the device edge; the source port is not -- this
// matches the original engine and is documented, not accidental.
func (e *Engine) ComputeUnroutableCost(unroutes *[]*Edge) uint32 {
	*unroutes = (*unroutes)[:0]
	var cost uint32

	for i := 0; i < e.Netlist.NumNodes(); i++ {
		netSrc := e.Netlist.NodeByIndex(i)
		devSrc := netSrc.Mate()
		for j := 0; j < netSrc.EdgeCount(); j++ {
			nedge := netSrc.EdgeByIndex(j)
			devDst := nedge.Dest.Mate()

			found := false
			for k := 0; k < devSrc.EdgeCount(); k++ {
				dedge := devSrc.EdgeByIndex(k)
				if dedge.Dest == devDst && dedge.DestPort == nedge.DestPort {
					found = true
					break
				}
			}

			if !found {
				*unroutes = append(*unroutes, nedge)
				cost++
			}
		}
	}

	return cost
}
