package diffusion

import (
	"github.com/katalvlaran/disparity/pixgrid"
	"github.com/katalvlaran/disparity/stereo"
)

// forwardSlots is the number of canonical edge directions stored per
// (pixel, disparity): east and south. Backward lookups swap the endpoints
// into canonical order first.
const forwardSlots = 2

// BooleanGraph is an availability mask over the nodes and edges of a
// disparity graph, used as a crossing-minima detector: after the solver
// removes every edge whose reparameterized weight strays from the local
// minimum, IsFinished reports whether an arc-consistent labeling survives.
//
// Only the canonical direction of each edge is stored — from the
// lexicographically smaller pixel to the larger, slot 0 for east and
// slot 1 for south. Node availability is maintained by the deletion loop:
// an available edge always has available endpoints.
type BooleanGraph[C pixgrid.Color[C]] struct {
	graph *stereo.DisparityGraph[C]
	nodes []stereo.Node

	// nodesAvailability[pixel][disparity]
	nodesAvailability [][]bool
	// edgesAvailability[pixel][disparity][slot][neighborDisparity]
	edgesAvailability [][][forwardSlots][]bool
}

// NewBooleanGraph allocates the availability storage for graph, sized
// from its feasible disparities, with every bit available.
func NewBooleanGraph[C pixgrid.Color[C]](graph *stereo.DisparityGraph[C]) (*BooleanGraph[C], error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	bg := &BooleanGraph[C]{
		graph: graph,
		nodes: graph.AvailableNodes(),
	}
	bg.nodesAvailability = make([][]bool, len(bg.nodes))
	bg.edgesAvailability = make([][][forwardSlots][]bool, len(bg.nodes))
	for _, node := range bg.nodes {
		index := graph.NodeIndex(node)
		maxDisparity := graph.MaxDisparity(node)
		bg.nodesAvailability[index] = make([]bool, maxDisparity)
		bg.edgesAvailability[index] = make([][forwardSlots][]bool, maxDisparity)
		for d := 0; d < maxDisparity; d++ {
			node.Disparity = d
			for _, neighbor := range graph.NodeNeighbors(node, true) {
				slot := forwardSlot(node, neighbor)
				bg.edgesAvailability[index][d][slot] = make(
					[]bool, graph.MaxNeighborDisparity(node, neighbor))
			}
		}
	}
	bg.Reset()
	return bg, nil
}

// forwardSlot maps a canonical (node → neighbor) direction to its storage
// slot: 2·Δrow + Δcolumn − 1, i.e. east = 0, south = 1.
func forwardSlot(node, neighbor stereo.Node) int {
	return 2*(neighbor.Row-node.Row) + neighbor.Column - node.Column - 1
}

// Reset marks every allocated node and edge bit available. It is called
// before each removal pass and is idempotent.
func (bg *BooleanGraph[C]) Reset() {
	for _, node := range bg.nodes {
		index := bg.graph.NodeIndex(node)
		maxDisparity := bg.graph.MaxDisparity(node)
		for d := 0; d < maxDisparity; d++ {
			node.Disparity = d
			bg.nodesAvailability[index][d] = true
			for _, neighbor := range bg.graph.NodeNeighbors(node, true) {
				slot := forwardSlot(node, neighbor)
				minDisparity := bg.graph.MinNeighborDisparity(node, neighbor)
				maxNeighbor := bg.graph.MaxNeighborDisparity(node, neighbor)
				for nd := minDisparity; nd < maxNeighbor; nd++ {
					bg.edgesAvailability[index][d][slot][nd] = true
				}
			}
		}
	}
}

// NodeAvailable reports whether the (pixel, disparity) candidate is still
// available.
func (bg *BooleanGraph[C]) NodeAvailable(node stereo.Node) bool {
	return bg.nodesAvailability[bg.graph.NodeIndex(node)][node.Disparity]
}

// EdgeAvailable reports whether the edge between node and neighbor is
// still available. The query is symmetric.
func (bg *BooleanGraph[C]) EdgeAvailable(node, neighbor stereo.Node) bool {
	if neighbor.Less(node) {
		node, neighbor = neighbor, node
	}
	slot := forwardSlot(node, neighbor)
	return bg.edgesAvailability[bg.graph.NodeIndex(node)][node.Disparity][slot][neighbor.Disparity]
}

// RemoveEdge marks the edge between node and neighbor unavailable.
func (bg *BooleanGraph[C]) RemoveEdge(node, neighbor stereo.Node) {
	if neighbor.Less(node) {
		node, neighbor = neighbor, node
	}
	slot := forwardSlot(node, neighbor)
	bg.edgesAvailability[bg.graph.NodeIndex(node)][node.Disparity][slot][neighbor.Disparity] = false
}

// RemoveNode marks the candidate unavailable together with every edge
// incident to it.
func (bg *BooleanGraph[C]) RemoveNode(node stereo.Node) {
	bg.nodesAvailability[bg.graph.NodeIndex(node)][node.Disparity] = false
	for _, neighbor := range bg.graph.NodeNeighbors(node, false) {
		minDisparity := bg.graph.MinNeighborDisparity(node, neighbor)
		maxDisparity := bg.graph.MaxNeighborDisparity(node, neighbor)
		for nd := minDisparity; nd < maxDisparity; nd++ {
			neighbor.Disparity = nd
			bg.RemoveEdge(node, neighbor)
		}
	}
}

// IsFinished runs deletion iterations until the mask stops changing, then
// reports whether at least one available node remains — i.e. whether an
// arc-consistent labeling survives the current availability.
func (bg *BooleanGraph[C]) IsFinished() bool {
	for bg.deletionIteration() {
	}

	for _, node := range bg.nodes {
		maxDisparity := bg.graph.MaxDisparity(node)
		for d := 0; d < maxDisparity; d++ {
			node.Disparity = d
			if bg.NodeAvailable(node) {
				return true
			}
		}
	}
	return false
}

// deletionIteration sweeps every candidate once: a candidate with no
// surviving edge toward some neighbor is removed together with its edges.
// When a full sweep leaves the final pixel without any supported
// candidate, the whole mask is purged and "no change" is reported to stop
// the caller's loop.
func (bg *BooleanGraph[C]) deletionIteration() bool {
	changed := false

	graphExists := false
	for _, node := range bg.nodes {
		graphExists = false
		maxDisparity := bg.graph.MaxDisparity(node)
		for d := 0; d < maxDisparity; d++ {
			node.Disparity = d
			if !bg.NodeAvailable(node) {
				continue
			}
			for _, neighbor := range bg.graph.NodeNeighbors(node, false) {
				supported := false
				minND := bg.graph.MinNeighborDisparity(node, neighbor)
				maxND := bg.graph.MaxNeighborDisparity(node, neighbor)
				for nd := minND; nd < maxND; nd++ {
					neighbor.Disparity = nd
					if bg.EdgeAvailable(node, neighbor) {
						supported = true
						break
					}
				}
				if !supported {
					changed = true
					bg.RemoveNode(node)
				} else {
					graphExists = true
				}
			}
		}
	}

	if !graphExists {
		for _, node := range bg.nodes {
			maxDisparity := bg.graph.MaxDisparity(node)
			for d := 0; d < maxDisparity; d++ {
				node.Disparity = d
				bg.RemoveNode(node)
			}
		}
		changed = false
	}

	return changed
}
