// Package parfixtures provides a library of reusable synthetic graph
// generators for exercising the par engine, in the spirit of the
// teacher corpus's libraries of ready-made, tested building blocks: a
// chain of cells ending in a differently-labeled sink for a basic
// routability test, a grid of interchangeable sites for swap-driven
// optimization tests, and a helper that adds a single site of another
// label to a device graph.
package parfixtures

import (
	"fmt"

	"github.com/greenpak-par/xbpar/par"
)

// Chain builds a netlist of n nodes, all label 1 except the last which
// is label 2, wired src -> dst on port "D" in a straight line:
// n0 -> n1 -> ... -> n(len-1). It is the minimal fixture with at least
// one edge to route.
func Chain(n int) *par.Graph {
	g := &par.Graph{Name: "chain-netlist"}
	nodes := make([]*par.Node, n)
	for i := 0; i < n; i++ {
		label := 1
		if i == n-1 {
			label = 2
		}
		nodes[i] = g.AddNode(label, fmt.Sprintf("n%d", i))
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(nodes[i], "OUT", nodes[i+1], "D")
	}
	return g
}

// Grid builds a device graph of rows*cols sites all sharing label, each
// wired to its right and bottom neighbor on port "D". It adds no sites
// of any other label; ExtraLabelPin adds those.
func Grid(rows, cols, label int) *par.Graph {
	g := &par.Graph{Name: "grid-device"}
	nodes := make([][]*par.Node, rows)
	for r := 0; r < rows; r++ {
		nodes[r] = make([]*par.Node, cols)
		for c := 0; c < cols; c++ {
			nodes[r][c] = g.AddNode(label, fmt.Sprintf("site(%d,%d)", r, c))
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				g.AddEdge(nodes[r][c], "OUT", nodes[r][c+1], "D")
			}
			if r+1 < rows {
				g.AddEdge(nodes[r][c], "OUT", nodes[r+1][c], "D")
			}
		}
	}
	return g
}

// ExtraLabelPin adds a single unconnected node of the given label to g
// and returns it. Used to give a device graph a matching sink site for
// a netlist's terminal label (e.g. label 2 in Chain).
func ExtraLabelPin(g *par.Graph, label int) *par.Node {
	return g.AddNode(label, fmt.Sprintf("pin-label-%d", label))
}
