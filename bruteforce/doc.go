// Package bruteforce finds the minimum-energy labeling of a disparity
// graph by exhaustive enumeration.
//
// The search walks pixels in row-major order and, at each pixel, tries
// every disparity feasible under the current neighbor assignments, so only
// feasibility-preserving moves are explored. Complexity is exponential in
// the pixel count: the solver is meant for tiny instances (a 3×3 grid with
// a handful of disparities) and serves as the ground-truth oracle for the
// diffusion solver's tests.
package bruteforce
