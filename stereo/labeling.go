package stereo

import (
	"math"

	"github.com/katalvlaran/disparity/pixgrid"
)

// Labeling is a mutable assignment of one disparity per pixel, with a
// cached total energy. The zero assignment (all disparities zero) is
// always feasible, so a fresh labeling has finite penalty.
type Labeling[C pixgrid.Color[C]] struct {
	graph *DisparityGraph[C]
	nodes []Node
	// penalty caches the total energy; +Inf marks the cache dirty (the
	// same sentinel the energy itself takes on an infeasible forced
	// assignment, which therefore is simply recomputed on demand).
	penalty float64
}

// NewLabeling creates a labeling over graph with every pixel at
// disparity zero.
func NewLabeling[C pixgrid.Color[C]](graph *DisparityGraph[C]) *Labeling[C] {
	return &Labeling[C]{
		graph:   graph,
		nodes:   graph.AvailableNodes(),
		penalty: math.Inf(1),
	}
}

// Graph returns the disparity graph the labeling is built over.
func (l *Labeling[C]) Graph() *DisparityGraph[C] { return l.graph }

// Nodes returns the stored node sequence in row-major pixel order.
// The slice is a view: callers must not modify it.
func (l *Labeling[C]) Nodes() []Node { return l.nodes }

// Disparity returns the currently assigned disparity at node's pixel.
func (l *Labeling[C]) Disparity(node Node) int {
	return l.nodes[l.graph.NodeIndex(node)].Disparity
}

// Neighbors returns the current, labeled neighbors of node: the 4-neighbor
// pixels with their assigned disparities. Direction follows
// DisparityGraph.NodeNeighbors.
func (l *Labeling[C]) Neighbors(node Node, directed bool) []Node {
	pixels := l.graph.NodeNeighbors(node, directed)
	neighbors := make([]Node, 0, len(pixels))
	for _, pixel := range pixels {
		neighbors = append(neighbors, l.nodes[l.graph.NodeIndex(pixel)])
	}
	return neighbors
}

// NodeDisparities returns the disparities feasible at node's pixel given
// the current assignments of all its neighbors: the intersection of every
// neighbor's allowed set. A disparity survives when each neighbor permits
// it.
func (l *Labeling[C]) NodeDisparities(node Node) []int {
	neighbors := l.Neighbors(node, false)
	pixel := Node{Row: node.Row, Column: node.Column}
	counts := make([]int, l.graph.MaxDisparity(pixel))
	for _, neighbor := range neighbors {
		for _, d := range l.graph.NeighborDisparities(neighbor, pixel) {
			if d < len(counts) {
				counts[d]++
			}
		}
	}
	disparities := make([]int, 0, len(counts))
	for d, count := range counts {
		if count == len(neighbors) {
			disparities = append(disparities, d)
		}
	}
	return disparities
}

// SetNode assigns node.Disparity to node's pixel. The disparity must be
// feasible given the current neighbor assignments; otherwise
// ErrDisparityUnavailable is returned and the labeling is unchanged.
// Invalidates the energy cache.
func (l *Labeling[C]) SetNode(node Node) error {
	if err := l.graph.CheckNode(node); err != nil {
		return err
	}
	available := false
	for _, d := range l.NodeDisparities(node) {
		if d == node.Disparity {
			available = true
			break
		}
	}
	if !available {
		return ErrDisparityUnavailable
	}
	l.nodes[l.graph.NodeIndex(node)] = node
	l.penalty = math.Inf(1)
	return nil
}

// SetNodeForce assigns node.Disparity to node's pixel without the
// feasibility check. Used by solvers extracting a labeling from
// pre-validated structures; callers must restore feasibility before
// reading Penalty. Invalidates the energy cache.
func (l *Labeling[C]) SetNodeForce(node Node) {
	l.nodes[l.graph.NodeIndex(node)] = node
	l.penalty = math.Inf(1)
}

// Penalty returns the total energy: the sum of graph.Penalty over every
// unordered 4-neighbor pair, visited once via the directed (east, south)
// neighbors of each pixel. The value is cached until the next mutation.
func (l *Labeling[C]) Penalty() float64 {
	if !math.IsInf(l.penalty, 1) {
		return l.penalty
	}
	total := 0.0
	for _, node := range l.nodes {
		for _, neighbor := range l.Neighbors(node, true) {
			// Both endpoints come from the stored assignment; Penalty
			// cannot error on them.
			p, _ := l.graph.Penalty(node, neighbor)
			total += p
		}
	}
	l.penalty = total
	return l.penalty
}

// Assign copies another labeling's assignment and cached energy into l.
// Both labelings must be built over the same graph (identity, not
// equality); otherwise ErrGraphMismatch is returned.
func (l *Labeling[C]) Assign(other *Labeling[C]) error {
	if l.graph != other.graph {
		return ErrGraphMismatch
	}
	copy(l.nodes, other.nodes)
	l.penalty = other.penalty
	return nil
}

// Clone returns an independent copy of the labeling sharing the same
// graph reference.
func (l *Labeling[C]) Clone() *Labeling[C] {
	nodes := make([]Node, len(l.nodes))
	copy(nodes, l.nodes)
	return &Labeling[C]{
		graph:   l.graph,
		nodes:   nodes,
		penalty: l.penalty,
	}
}
