package stereo

import "github.com/katalvlaran/disparity/pixgrid"

// Node identifies a candidate labeling of a single pixel: the pixel
// coordinates within the right image plus a chosen disparity.
type Node struct {
	// Row of the pixel, zero-based.
	Row int
	// Column of the pixel, zero-based.
	Column int
	// Disparity is the horizontal offset to the corresponding left-image
	// pixel: right (Row, Column) matches left (Row, Column+Disparity).
	Disparity int
}

// Less orders nodes lexicographically by (Row, Column), ignoring the
// disparity. It defines the canonical direction of an edge between two
// neighboring pixels.
func (n Node) Less(other Node) bool {
	if n.Row != other.Row {
		return n.Row < other.Row
	}
	return n.Column < other.Column
}

// Options configures a DisparityGraph.
type Options struct {
	// Consistency is the multiplier α applied to the squared disparity
	// difference of every edge. Larger values produce smoother maps.
	// Must be non-negative.
	Consistency float64
}

// DefaultOptions returns the default graph configuration: Consistency = 1.
func DefaultOptions() Options {
	return Options{Consistency: 1}
}

// Solver finds a low-energy labeling of a disparity graph. The returned
// labeling references the same graph the solver was built over.
type Solver[C pixgrid.Color[C]] interface {
	Find() (*Labeling[C], error)
}
