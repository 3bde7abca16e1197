// Package diffusion solves the stereo disparity problem by min-plus
// diffusion: an iterative reparameterization of edge potentials that
// preserves every labeling's total energy while concentrating the minimum
// into locally readable form.
//
// 🚀 How it works
//
//  1. Each (pixel, disparity) candidate owns four passed potentials, one
//     per neighbor direction. A diffusion step at a candidate equalizes
//     its minimum outgoing reparameterized edge weights by subtracting
//     each neighbor's minimum and adding back their mean.
//  2. Steps run in red/black sweeps over the pixel checkerboard, so
//     same-sweep candidates never share an edge; sweeps may fan out over
//     several workers partitioned by pixel index.
//  3. After every iteration the solver keeps only edges within a small
//     threshold of each node's best edge and asks a BooleanGraph whether
//     an arc-consistent labeling survives. When one does, the first
//     surviving disparity of each pixel becomes its label.
//
// Convergence in bounded time is not guaranteed for arbitrary inputs;
// Options.MaxIterations is the safety valve, after which the current
// extraction is returned best-effort.
package diffusion
