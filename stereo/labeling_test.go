package stereo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disparity/stereo"
)

// TestLabeling_Initial verifies the all-zero initial assignment.
func TestLabeling_Initial(t *testing.T) {
	graph := newGrayGraph(t, 10, 10)
	labeling := stereo.NewLabeling(graph)

	require.Len(t, labeling.Nodes(), 100)
	for _, node := range labeling.Nodes() {
		assert.Equal(t, 0, node.Disparity)
	}
	assert.Same(t, graph, labeling.Graph())
}

// TestLabeling_NodeDisparities verifies the neighbor-constrained feasible
// sets on a fresh 10×10 labeling: only {0} at the far corner, {0,1} at
// the origin.
func TestLabeling_NodeDisparities(t *testing.T) {
	graph := newGrayGraph(t, 10, 10)
	labeling := stereo.NewLabeling(graph)

	disparities := labeling.NodeDisparities(stereo.Node{Row: 9, Column: 9})
	assert.Equal(t, []int{0}, disparities)

	disparities = labeling.NodeDisparities(stereo.Node{Row: 0, Column: 0})
	assert.Equal(t, []int{0, 1}, disparities)
}

// TestLabeling_SetNode verifies assignment round-trips.
func TestLabeling_SetNode(t *testing.T) {
	graph := newGrayGraph(t, 10, 10)
	labeling := stereo.NewLabeling(graph)

	assert.Equal(t, 0, labeling.Disparity(stereo.Node{Row: 0, Column: 0}))
	require.NoError(t, labeling.SetNode(stereo.Node{Row: 0, Column: 0, Disparity: 1}))
	assert.Equal(t, 1, labeling.Disparity(stereo.Node{Row: 0, Column: 0}))
	require.NoError(t, labeling.SetNode(stereo.Node{Row: 0, Column: 0, Disparity: 0}))
	assert.Equal(t, 0, labeling.Disparity(stereo.Node{Row: 0, Column: 0}))
}

// TestLabeling_SetNodes verifies a feasibility-preserving staircase of
// assignments along a row.
func TestLabeling_SetNodes(t *testing.T) {
	graph := newGrayGraph(t, 10, 10)
	labeling := stereo.NewLabeling(graph)

	assert.Equal(t, 0, labeling.Disparity(stereo.Node{Row: 5, Column: 5}))
	require.NoError(t, labeling.SetNode(stereo.Node{Row: 5, Column: 5, Disparity: 1}))
	assert.Equal(t, 1, labeling.Disparity(stereo.Node{Row: 5, Column: 5}))
	require.NoError(t, labeling.SetNode(stereo.Node{Row: 5, Column: 4, Disparity: 2}))
	assert.Equal(t, 2, labeling.Disparity(stereo.Node{Row: 5, Column: 4}))
	require.NoError(t, labeling.SetNode(stereo.Node{Row: 5, Column: 3, Disparity: 3}))
	assert.Equal(t, 3, labeling.Disparity(stereo.Node{Row: 5, Column: 3}))
}

// TestLabeling_SetNode_Unavailable verifies the feasibility check: a
// disparity outside the neighbor-constrained set is rejected and the
// assignment is untouched.
func TestLabeling_SetNode_Unavailable(t *testing.T) {
	graph := newGrayGraph(t, 10, 10)
	labeling := stereo.NewLabeling(graph)

	// All neighbors sit at disparity 0, so 2 exceeds the allowed +1 step.
	err := labeling.SetNode(stereo.Node{Row: 5, Column: 5, Disparity: 2})
	assert.ErrorIs(t, err, stereo.ErrDisparityUnavailable)
	assert.Equal(t, 0, labeling.Disparity(stereo.Node{Row: 5, Column: 5}))

	err = labeling.SetNode(stereo.Node{Row: 10, Column: 0})
	assert.ErrorIs(t, err, stereo.ErrNodeOutOfRange)
}

// TestLabeling_Penalty verifies the energy ladder on zero images, where
// the total is the α-weighted sum of squared disparity steps.
func TestLabeling_Penalty(t *testing.T) {
	graph := newGrayGraph(t, 10, 10)
	labeling := stereo.NewLabeling(graph)

	assert.InDelta(t, 0, labeling.Penalty(), 1e-12)
	require.NoError(t, labeling.SetNode(stereo.Node{Row: 0, Column: 0, Disparity: 1}))
	assert.InDelta(t, 2, labeling.Penalty(), 1e-12)
	require.NoError(t, labeling.SetNode(stereo.Node{Row: 5, Column: 5, Disparity: 1}))
	assert.InDelta(t, 2+4*1, labeling.Penalty(), 1e-12)
	require.NoError(t, labeling.SetNode(stereo.Node{Row: 5, Column: 4, Disparity: 2}))
	assert.InDelta(t, 2+4*1+3*4, labeling.Penalty(), 1e-12)
	require.NoError(t, labeling.SetNode(stereo.Node{Row: 5, Column: 3, Disparity: 3}))
	assert.InDelta(t, 2+4*1+2*4+1*1+3*9, labeling.Penalty(), 1e-12)
}

// TestLabeling_PenaltyCache verifies the cache is stable across repeated
// reads and invalidated by mutation.
func TestLabeling_PenaltyCache(t *testing.T) {
	graph := newGrayGraph(t, 5, 5)
	labeling := stereo.NewLabeling(graph)

	first := labeling.Penalty()
	assert.Equal(t, first, labeling.Penalty())
	require.NoError(t, labeling.SetNode(stereo.Node{Row: 0, Column: 0, Disparity: 1}))
	assert.Greater(t, labeling.Penalty(), first)
}

// TestLabeling_Neighbors verifies that neighbor nodes carry the current
// assignment.
func TestLabeling_Neighbors(t *testing.T) {
	graph := newGrayGraph(t, 10, 10)
	labeling := stereo.NewLabeling(graph)
	require.NoError(t, labeling.SetNode(stereo.Node{Row: 5, Column: 6, Disparity: 1}))

	neighbors := labeling.Neighbors(stereo.Node{Row: 5, Column: 5}, true)
	require.Len(t, neighbors, 2)
	assert.Equal(t, stereo.Node{Row: 5, Column: 6, Disparity: 1}, neighbors[0])
	assert.Equal(t, stereo.Node{Row: 6, Column: 5, Disparity: 0}, neighbors[1])
}

// TestLabeling_Assign verifies copy-assignment between labelings of the
// same graph and rejection across graphs.
func TestLabeling_Assign(t *testing.T) {
	graph := newGrayGraph(t, 10, 10)
	source := stereo.NewLabeling(graph)
	require.NoError(t, source.SetNode(stereo.Node{Row: 0, Column: 0, Disparity: 1}))

	target := stereo.NewLabeling(graph)
	require.NoError(t, target.Assign(source))
	assert.Equal(t, source.Penalty(), target.Penalty())
	for _, node := range source.Nodes() {
		assert.Equal(t, source.Disparity(node), target.Disparity(node))
	}

	other := newGrayGraph(t, 10, 10)
	foreign := stereo.NewLabeling(other)
	assert.ErrorIs(t, target.Assign(foreign), stereo.ErrGraphMismatch)
}

// TestLabeling_Clone verifies independence of the copy.
func TestLabeling_Clone(t *testing.T) {
	graph := newGrayGraph(t, 10, 10)
	labeling := stereo.NewLabeling(graph)
	clone := labeling.Clone()

	require.NoError(t, clone.SetNode(stereo.Node{Row: 0, Column: 0, Disparity: 1}))
	assert.Equal(t, 0, labeling.Disparity(stereo.Node{Row: 0, Column: 0}))
	assert.Equal(t, 1, clone.Disparity(stereo.Node{Row: 0, Column: 0}))
	assert.Same(t, labeling.Graph(), clone.Graph())
}

// TestLabeling_SetNodeForce verifies that forced assignments bypass the
// feasibility check and that feasibility restores a finite penalty.
func TestLabeling_SetNodeForce(t *testing.T) {
	graph := newGrayGraph(t, 10, 10)
	labeling := stereo.NewLabeling(graph)

	labeling.SetNodeForce(stereo.Node{Row: 5, Column: 5, Disparity: 3})
	assert.Equal(t, 3, labeling.Disparity(stereo.Node{Row: 5, Column: 5}))

	labeling.SetNodeForce(stereo.Node{Row: 5, Column: 5, Disparity: 0})
	assert.InDelta(t, 0, labeling.Penalty(), 1e-12)
}
