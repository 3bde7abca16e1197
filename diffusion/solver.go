package diffusion

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/disparity/pixgrid"
	"github.com/katalvlaran/disparity/stereo"
)

// potentialSlots is the number of neighbor directions a candidate passes
// potential toward: west = 0, north = 1, east = 2, south = 3.
const potentialSlots = 4

// Solver finds disparities by min-plus diffusion. It owns a working
// labeling, a BooleanGraph for the termination check, and the passed
// potentials φ[pixel][disparity][direction]. It implements stereo.Solver.
type Solver[C pixgrid.Color[C]] struct {
	graph        *stereo.DisparityGraph[C]
	labeling     *stereo.Labeling[C]
	booleanGraph *BooleanGraph[C]
	opts         Options

	// potentials[pixel][disparity][slot]; the reparameterized weight of an
	// edge is φ_node[toward neighbor] + φ_neighbor[toward node] + g(node, neighbor).
	potentials [][][potentialSlots]float64
}

// New builds a diffusion solver over graph.
func New[C pixgrid.Color[C]](graph *stereo.DisparityGraph[C], opts Options) (*Solver[C], error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	booleanGraph, err := NewBooleanGraph(graph)
	if err != nil {
		return nil, err
	}
	s := &Solver[C]{
		graph:        graph,
		labeling:     stereo.NewLabeling(graph),
		booleanGraph: booleanGraph,
		opts:         opts,
	}
	s.potentials = make([][][potentialSlots]float64, len(s.labeling.Nodes()))
	for _, node := range s.labeling.Nodes() {
		s.potentials[graph.NodeIndex(node)] = make([][potentialSlots]float64, graph.MaxDisparity(node))
	}
	return s, nil
}

// Find runs diffusion iterations until the thresholded availability mask
// admits an arc-consistent labeling, then extracts it: the first surviving
// disparity of each pixel, in row-major order. When Options.MaxIterations
// is exhausted first, the current extraction is returned best-effort.
func (s *Solver[C]) Find() (*stereo.Labeling[C], error) {
	s.resetPotentials()
	threshold := 1 / float64(8*s.graph.Rows()*s.graph.Columns())

	iteration := 0
	for !s.isFinished(threshold) {
		iteration++
		if s.opts.MaxIterations > 0 && iteration > s.opts.MaxIterations {
			break
		}
		s.iterate()
		if s.opts.Progress != nil {
			s.opts.Progress(iteration)
		}
	}
	return s.bestLabeling(), nil
}

// resetPotentials zeroes every passed potential.
func (s *Solver[C]) resetPotentials() {
	for index := range s.potentials {
		for d := range s.potentials[index] {
			s.potentials[index][d] = [potentialSlots]float64{}
		}
	}
}

// towardSlots returns the potential slots of the (node → neighbor) and
// (neighbor → node) directions. Writing from the lexicographically smaller
// endpoint toward the larger uses 2·Δrow + Δcolumn + 1 (east = 2,
// south = 3); the opposite direction uses 2·Δrow + Δcolumn − 1 (west = 0,
// north = 1).
func towardSlots(node, neighbor stereo.Node) (toNeighbor, toNode int) {
	if neighbor.Row <= node.Row && neighbor.Column <= node.Column {
		dr, dc := node.Row-neighbor.Row, node.Column-neighbor.Column
		return 2*dr + dc - 1, 2*dr + dc + 1
	}
	dr, dc := neighbor.Row-node.Row, neighbor.Column-node.Column
	return 2*dr + dc + 1, 2*dr + dc - 1
}

// passedPenalty returns the reparameterized component of the edge between
// node and neighbor: the sum of the potentials both endpoints pass toward
// each other. Symmetric in its arguments.
func (s *Solver[C]) passedPenalty(node, neighbor stereo.Node) float64 {
	toNeighbor, toNode := towardSlots(node, neighbor)
	return s.potentials[s.graph.NodeIndex(node)][node.Disparity][toNeighbor] +
		s.potentials[s.graph.NodeIndex(neighbor)][neighbor.Disparity][toNode]
}

// changePassedPenalty adds change to the potential node passes toward
// neighbor.
func (s *Solver[C]) changePassedPenalty(node, neighbor stereo.Node, change float64) {
	toNeighbor, _ := towardSlots(node, neighbor)
	s.potentials[s.graph.NodeIndex(node)][node.Disparity][toNeighbor] += change
}

// edgeWeight returns the reparameterized weight of the edge between node
// and neighbor: passed potentials plus the graph penalty.
func (s *Solver[C]) edgeWeight(node, neighbor stereo.Node) float64 {
	penalty, err := s.graph.Penalty(node, neighbor)
	if err != nil {
		panic(fmt.Sprintf("diffusion: invalid edge %+v-%+v: %v", node, neighbor, err))
	}
	return s.passedPenalty(node, neighbor) + penalty
}

// minEdgePenalty returns the minimum reparameterized weight over the
// disparities feasible at neighbor given node's disparity. The minimum
// over a feasible range is always finite; a non-finite result means the
// potentials were corrupted and is reported loudly.
func (s *Solver[C]) minEdgePenalty(node, neighbor stereo.Node) float64 {
	minPenalty := math.Inf(1)
	minDisparity := s.graph.MinNeighborDisparity(node, neighbor)
	maxDisparity := s.graph.MaxNeighborDisparity(node, neighbor)
	for nd := minDisparity; nd < maxDisparity; nd++ {
		neighbor.Disparity = nd
		if w := s.edgeWeight(node, neighbor); w < minPenalty {
			minPenalty = w
		}
	}
	if math.IsInf(minPenalty, 0) || math.IsNaN(minPenalty) {
		panic(fmt.Sprintf("diffusion: non-finite minimum edge penalty at %+v toward (%d,%d)",
			node, neighbor.Row, neighbor.Column))
	}
	return minPenalty
}

// processNode performs one diffusion step at the candidate: subtract each
// neighbor's minimum edge weight from the potential passed toward it, then
// add the mean of those minima back to every direction. Afterwards the
// minimum outgoing weight toward each neighbor equals that mean.
func (s *Solver[C]) processNode(node stereo.Node) {
	neighbors := s.graph.NodeNeighbors(node, false)
	nodeSum := 0.0
	for _, neighbor := range neighbors {
		minPenalty := s.minEdgePenalty(node, neighbor)
		nodeSum += minPenalty / float64(len(neighbors))
		s.changePassedPenalty(node, neighbor, -minPenalty)
	}
	for _, neighbor := range neighbors {
		s.changePassedPenalty(node, neighbor, nodeSum)
	}
}

// iterate runs one full diffusion iteration: a red sweep over pixels with
// even (row ⊕ column) parity, a barrier, then a black sweep over the rest.
// Same-colored pixels never share an edge, so sweep-internal parallelism
// only ever writes disjoint potentials.
func (s *Solver[C]) iterate() {
	s.sweep(0)
	s.sweep(1)
}

// sweep processes every candidate of one color class, fanning out over
// Options.Workers goroutines partitioned by pixel index.
func (s *Solver[C]) sweep(parity int) {
	workers := s.opts.Workers
	if workers < 2 {
		s.sweepPartition(parity, 1, 0)
		return
	}
	var wg sync.WaitGroup
	for offset := 0; offset < workers; offset++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			s.sweepPartition(parity, workers, offset)
		}(offset)
	}
	wg.Wait()
}

// sweepPartition processes the candidates of one color class whose pixel
// index is congruent to offset modulo modulo.
func (s *Solver[C]) sweepPartition(parity, modulo, offset int) {
	for index, node := range s.labeling.Nodes() {
		if (node.Row^node.Column)&1 != parity {
			continue
		}
		if index%modulo != offset {
			continue
		}
		maxDisparity := s.graph.MaxDisparity(node)
		for d := 0; d < maxDisparity; d++ {
			node.Disparity = d
			s.processNode(node)
		}
	}
}

// isFinished rebuilds the availability mask against threshold and asks the
// boolean graph whether an arc-consistent labeling survives.
func (s *Solver[C]) isFinished(threshold float64) bool {
	s.initializeAvailability(threshold)
	return s.booleanGraph.IsFinished()
}

// initializeAvailability resets the boolean graph, then removes every
// directed edge whose reparameterized weight exceeds the node's best edge
// toward that neighbor by more than threshold.
func (s *Solver[C]) initializeAvailability(threshold float64) {
	s.booleanGraph.Reset()
	for _, node := range s.labeling.Nodes() {
		for _, neighbor := range s.graph.NodeNeighbors(node, true) {
			minPenalty := math.Inf(1)
			maxDisparity := s.graph.MaxDisparity(node)
			for d := 0; d < maxDisparity; d++ {
				node.Disparity = d
				if p := s.minEdgePenalty(node, neighbor); p < minPenalty {
					minPenalty = p
				}
			}
			minPenalty += threshold

			for d := 0; d < maxDisparity; d++ {
				node.Disparity = d
				minND := s.graph.MinNeighborDisparity(node, neighbor)
				maxND := s.graph.MaxNeighborDisparity(node, neighbor)
				for nd := minND; nd < maxND; nd++ {
					neighbor.Disparity = nd
					if s.edgeWeight(node, neighbor) > minPenalty {
						s.booleanGraph.RemoveEdge(node, neighbor)
					}
				}
			}
		}
	}
}

// bestLabeling commits, for each pixel in row-major order, the first
// disparity whose candidate survived in the boolean graph. A pixel with no
// survivor — possible only on a best-effort exit — keeps its current
// label.
func (s *Solver[C]) bestLabeling() *stereo.Labeling[C] {
	for _, node := range s.labeling.Nodes() {
		maxDisparity := s.graph.MaxDisparity(node)
		for d := 0; d < maxDisparity; d++ {
			node.Disparity = d
			if s.booleanGraph.NodeAvailable(node) {
				s.labeling.SetNodeForce(node)
				break
			}
		}
	}
	return s.labeling
}
