package par

// A Node is either a netlist cell instance or a physical device site,
// depending on which Graph owns it. Label is the node's type tag: nodes
// across the netlist and device graphs with equal labels are considered
// interchangeable for mating purposes. Payload is an opaque value the
// engine never inspects; callers typically stash the cell or site object
// that will later serialize configuration bits there.
type Node struct {
	label   int
	edges   []*Edge
	mate    *Node
	index   int
	Payload any
}

// Label returns the node's type tag.
func (n *Node) Label() int { return n.label }

// Mate returns the node currently mated with n, or nil if unmated.
func (n *Node) Mate() *Node { return n.mate }

// EdgeCount returns the number of outgoing edges owned by n.
func (n *Node) EdgeCount() int { return len(n.edges) }

// EdgeByIndex returns n's j-th outgoing edge.
func (n *Node) EdgeByIndex(j int) *Edge { return n.edges[j] }

// Index returns n's stable position in its owning graph's node slice.
func (n *Node) Index() int { return n.index }

// MateWith sets the bidirectional pairing between n and m, clearing any
// prior mate of either side. Passing a nil m unmates n without creating
// a new pairing.
func (n *Node) MateWith(m *Node) {
	if n.mate != nil {
		n.mate.mate = nil
	}
	if m != nil && m.mate != nil {
		m.mate.mate = nil
	}
	n.mate = m
	if m != nil {
		m.mate = n
	}
}

// An Edge is a directed, named-port connection owned by its source node.
// In a device graph an edge models a real routing resource; in a netlist
// graph it models a logical signal's connection to the destination
// cell's input port.
type Edge struct {
	Source     *Node
	SourcePort string
	Dest       *Node
	DestPort   string
}

// Graph is an ordered collection of nodes and their outgoing edges. Two
// structurally identical Graph values participate in placement and
// routing: the netlist (logical cells and signals) and the device
// (physical sites and routing resources).
type Graph struct {
	// Name identifies the graph in diagnostics (e.g. "netlist" or the
	// device part number). Purely cosmetic.
	Name string

	nodes    []*Node
	numEdges int

	labelCounts []int
	byLabel     [][]*Node
}

// AddNode appends a new node with the given label and opaque payload to
// the graph and returns it.
func (g *Graph) AddNode(label int, payload any) *Node {
	n := &Node{label: label, index: len(g.nodes), Payload: payload}
	g.nodes = append(g.nodes, n)
	g.labelCounts = nil
	g.byLabel = nil
	return n
}

// AddEdge adds a directed edge from src to dst, tagging the ports the
// edge connects on each side, and returns it.
func (g *Graph) AddEdge(src *Node, srcPort string, dst *Node, dstPort string) *Edge {
	e := &Edge{Source: src, SourcePort: srcPort, Dest: dst, DestPort: dstPort}
	src.edges = append(src.edges, e)
	g.numEdges++
	return e
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() int { return g.numEdges }

// NodeByIndex returns the node at position i, in the order AddNode was
// called.
func (g *Graph) NodeByIndex(i int) *Node { return g.nodes[i] }

// MaxLabel returns the largest label used by any node in the graph, or
// -1 if the graph has no nodes.
func (g *Graph) MaxLabel() int {
	max := -1
	for _, n := range g.nodes {
		if n.label > max {
			max = n.label
		}
	}
	return max
}

// CountLabels populates the per-label node count table. It must be
// called (directly, or indirectly via IndexNodesByLabel) before
// NumNodesWithLabel is used, and again after any call to AddNode.
func (g *Graph) CountLabels() {
	max := g.MaxLabel()
	counts := make([]int, max+1)
	for _, n := range g.nodes {
		counts[n.label]++
	}
	g.labelCounts = counts
}

// IndexNodesByLabel populates the (label, k) -> node lookup table used by
// NodeByLabelAndIndex. It must be called again after any call to
// AddNode.
func (g *Graph) IndexNodesByLabel() {
	g.CountLabels()
	byLabel := make([][]*Node, len(g.labelCounts))
	for l, cnt := range g.labelCounts {
		byLabel[l] = make([]*Node, 0, cnt)
	}
	for _, n := range g.nodes {
		byLabel[n.label] = append(byLabel[n.label], n)
	}
	g.byLabel = byLabel
}

// NumNodesWithLabel returns the number of nodes tagged with the given
// label. CountLabels (or IndexNodesByLabel) must have been called first.
func (g *Graph) NumNodesWithLabel(label int) int {
	if label < 0 || label >= len(g.labelCounts) {
		return 0
	}
	return g.labelCounts[label]
}

// NodeByLabelAndIndex returns the k-th node (in AddNode order) tagged
// with the given label. IndexNodesByLabel must have been called first.
func (g *Graph) NodeByLabelAndIndex(label, k int) *Node {
	return g.byLabel[label][k]
}
