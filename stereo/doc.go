// Package stereo encodes dense stereo matching as a pairwise energy
// minimization problem over a grid graph.
//
// 🚀 The model
//
//	Every pixel t of the right image is a variable whose label is a
//	disparity k ≥ 0, meaning "t corresponds to the left-image pixel k
//	columns to the right". A candidate (pixel, disparity) pair is a Node.
//	Nodes of 4-adjacent pixels are connected by edges; along a row the
//	ordering constraint forbids ray crossings: the west pixel's disparity
//	may exceed the east pixel's by at most one.
//
//	Node penalty:  q(t,k) = ‖right(t) − left(t→k)‖²
//	Edge penalty:  g(tt', kk') = q(t,k)/|N(t)| + q(t',k')/|N(t')| + α(k−k')²
//
//	where |N(t)| counts the 4-neighbors inside the grid (2 at corners,
//	3 at borders, 4 inside) and α ≥ 0 is the consistency multiplier.
//	Pairs that are not 4-neighbors, or that violate the ordering
//	constraint, have infinite penalty.
//
// DisparityGraph is the immutable problem descriptor; Labeling is a
// mutable assignment with a cached total energy; Solver is the contract
// implemented by the bruteforce and diffusion packages.
//
// All errors are sentinel values matched via errors.Is; see errors.go.
package stereo
