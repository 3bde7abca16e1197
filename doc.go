// Package disparity computes dense stereo disparity maps from rectified
// image pairs by approximate energy minimization.
//
// 🚀 What is disparity?
//
//	Given a left and a right image of the same scene, every pixel of the
//	right image is assigned a non-negative horizontal offset — a disparity —
//	pointing at the matching pixel of the left image. The assignment
//	minimizes a pairwise energy combining photoconsistency with a squared
//	smoothness term, subject to an ordering constraint along each row.
//
// The module is split into focused packages:
//
//	• pixgrid    — generic 2D color grids (Gray, Float, RGB)
//	• stereo     — the disparity graph, labelings and the Solver contract
//	• bruteforce — exhaustive oracle solver for tiny instances
//	• diffusion  — min-plus diffusion solver with arc-consistency culling
//
// ✨ Why choose disparity?
//
//   - Minimal API — build a graph, call Find, read the labeling
//   - Deterministic — fixed loop orders, no map iteration in hot paths
//   - Honest errors — sentinel errors everywhere, matched via errors.Is
//   - Optional parallel sweeps — red/black partition, disjoint writes
//
// ⚙️ Quick start:
//
//	left, _ := pixgrid.FromRows(leftRows)
//	right, _ := pixgrid.FromRows(rightRows)
//	graph, err := stereo.NewDisparityGraph(left, right, stereo.DefaultOptions())
//	if err != nil { ... }
//	solver, _ := diffusion.New(graph, diffusion.DefaultOptions())
//	labeling, err := solver.Find()
//	d := labeling.Disparity(stereo.Node{Row: 2, Column: 1})
//
// See cmd/disparity for a small CLI that decodes two images and writes the
// resulting disparity map as a grayscale PNG.
package disparity
