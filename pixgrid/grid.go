// SPDX-License-Identifier: MIT

package pixgrid

// Grid is a dense row-major 2D container of colors. The zero extent is
// legal: a 0×0 grid simply has no cells. Cells are zero-initialized.
type Grid[C Color[C]] struct {
	rows, cols int
	cells      []C
}

// New creates a rows×cols grid with all cells set to the zero color.
// Returns ErrBadShape when either extent is negative.
func New[C Color[C]](rows, cols int) (*Grid[C], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	return &Grid[C]{
		rows:  rows,
		cols:  cols,
		cells: make([]C, rows*cols),
	}, nil
}

// FromRows builds a grid from a non-empty rectangular 2D slice,
// deep-copying the input. Returns ErrEmptyGrid when the slice has no rows
// or no columns, ErrNonRectangular when row lengths differ.
func FromRows[C Color[C]](rows [][]C) (*Grid[C], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid[C]{
		rows:  len(rows),
		cols:  w,
		cells: make([]C, len(rows)*w),
	}
	for r, row := range rows {
		copy(g.cells[r*w:(r+1)*w], row)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid[C]) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid[C]) Columns() int { return g.cols }

// At returns the color stored at (row, col).
// Returns ErrOutOfRange when the index lies past the grid extent.
func (g *Grid[C]) At(row, col int) (C, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		var zero C
		return zero, ErrOutOfRange
	}
	return g.cells[row*g.cols+col], nil
}

// Set stores v at (row, col).
// Returns ErrOutOfRange when the index lies past the grid extent.
func (g *Grid[C]) Set(row, col int, v C) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return ErrOutOfRange
	}
	g.cells[row*g.cols+col] = v
	return nil
}
