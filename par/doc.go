// Package par implements the placement-and-routing core of a bitstream
// compiler for small mixed-signal programmable logic devices.
//
// A netlist graph of logical cells is assigned onto a device graph of
// physical sites such that every node lands on a site of a compatible
// label and every netlist edge has a corresponding routing resource
// between its mated device endpoints. The assignment starts from a
// deterministic initial placement and is refined by an annealing-style
// local search driven by a pluggable cost function.
//
// The engine itself knows nothing about any particular device family: it
// operates purely on Graph, Node and Edge values tagged with integer
// labels. Device-specific intelligence (which nodes are worth moving,
// where to move them) is supplied through the function-valued hook
// fields on Engine.
package par
