package stereo

import "errors"

// Sentinel errors for stereo operations. Callers match via errors.Is.
var (
	// ErrNilImage indicates a nil grid was passed to NewDisparityGraph.
	ErrNilImage = errors.New("stereo: image grids must not be nil")

	// ErrEmptyImage indicates the right image has no rows or no columns.
	ErrEmptyImage = errors.New("stereo: right image must have at least one row and one column")

	// ErrRowsMismatch indicates the images differ in row count.
	ErrRowsMismatch = errors.New("stereo: images must have the same number of rows")

	// ErrLeftTooNarrow indicates the left image is narrower than the right.
	ErrLeftTooNarrow = errors.New("stereo: left image must be at least as wide as the right image")

	// ErrNegativeConsistency indicates a consistency multiplier below zero.
	ErrNegativeConsistency = errors.New("stereo: consistency multiplier must be non-negative")

	// ErrNodeOutOfRange indicates node coordinates outside the right image.
	ErrNodeOutOfRange = errors.New("stereo: node lies outside the right image")

	// ErrDisparityOverflow indicates a disparity leading outside the left image.
	ErrDisparityOverflow = errors.New("stereo: disparity leads outside the left image")

	// ErrSelfEdge indicates an edge query between a pixel and itself.
	ErrSelfEdge = errors.New("stereo: a pixel cannot neighbor itself")

	// ErrDisparityUnavailable indicates a labeling mutation whose disparity
	// is not in the feasible set given the current neighbor assignments.
	ErrDisparityUnavailable = errors.New("stereo: disparity is not available for the node")

	// ErrGraphMismatch indicates an assignment between labelings built over
	// different disparity graphs (identity, not equality).
	ErrGraphMismatch = errors.New("stereo: labelings must share the same disparity graph")
)
