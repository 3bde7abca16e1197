package bruteforce

import (
	"errors"

	"github.com/katalvlaran/disparity/pixgrid"
	"github.com/katalvlaran/disparity/stereo"
)

// ErrNilGraph indicates a nil disparity graph was passed to New.
var ErrNilGraph = errors.New("bruteforce: disparity graph must not be nil")

// Solver enumerates every feasible labeling and keeps the cheapest one.
// It implements stereo.Solver.
type Solver[C pixgrid.Color[C]] struct {
	graph *stereo.DisparityGraph[C]
}

// New builds a brute-force solver over graph.
func New[C pixgrid.Color[C]](graph *stereo.DisparityGraph[C]) (*Solver[C], error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	return &Solver[C]{graph: graph}, nil
}

// Find returns the minimum-energy labeling. The initial best is the
// all-zero labeling, so the result is never worse than that.
func (s *Solver[C]) Find() (*stereo.Labeling[C], error) {
	labeling := stereo.NewLabeling(s.graph)
	best := labeling.Clone()
	return s.search(labeling, best, 0)
}

// search tries every feasible disparity at pixel index, recursing into the
// remaining pixels after each assignment. The working labeling is not
// restored between attempts: later pixels see the most recent assignment,
// which keeps every explored state reachable by feasible moves.
func (s *Solver[C]) search(labeling, best *stereo.Labeling[C], index int) (*stereo.Labeling[C], error) {
	nodes := labeling.Nodes()
	if index == len(nodes) {
		return best, nil
	}

	pixel := nodes[index]
	for _, d := range labeling.NodeDisparities(pixel) {
		node := stereo.Node{Row: pixel.Row, Column: pixel.Column, Disparity: d}
		if err := labeling.SetNode(node); err != nil {
			return nil, err
		}

		if labeling.Penalty() < best.Penalty() {
			best = labeling.Clone()
		}

		better, err := s.search(labeling, best, index+1)
		if err != nil {
			return nil, err
		}
		best = better
	}
	return best, nil
}
