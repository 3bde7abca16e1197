// Package pixgrid provides dense, rectangular 2D containers for pixel
// colors, used as the image representation of the stereo solver.
//
// A Grid is row-major and bounds-checked: At and Set return ErrOutOfRange
// instead of panicking. Grids are parameterized by a color type that can
// report its squared distance to another color of the same type:
//
//   - Gray  — single 8-bit channel, squared scalar difference
//   - Float — single float64 channel, squared scalar difference
//   - RGB   — three 8-bit channels, sum of squared channel differences
//
// Complexity quicksheet:
//   - New: O(r·c) zero-init; At/Set: O(1); FromRows: O(r·c) copy.
package pixgrid
