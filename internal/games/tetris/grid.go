package tetris

import (
	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Grid is the board of locked cells, H rows by W columns.
// Row 0 is the top visible row. Negative rows form the hidden spawn buffer
// above the board: they are in bounds for movement and never occupied.
type Grid struct {
	w, h  int
	cells [][]core.Color // cells[row][col], core.ColorDefault means empty
}

// NewGrid creates an empty grid. Panics if either dimension is not positive.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic("tetris: grid dimensions must be positive")
	}
	g := &Grid{w: w, h: h}
	g.Clear()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of visible rows.
func (g *Grid) Height() int {
	return g.h
}

// Clear empties every cell.
func (g *Grid) Clear() {
	g.cells = make([][]core.Color, g.h)
	for row := range g.cells {
		g.cells[row] = make([]core.Color, g.w)
	}
}

// IsWithinBounds reports whether (row, col) is a legal position for a piece
// cell: 0 <= col < W and row < H.
func (g *Grid) IsWithinBounds(row, col int) bool {
	return col >= 0 && col < g.w && row < g.h
}

// IsOccupied reports whether a locked cell exists at (row, col).
// Rows above the board are always empty.
func (g *Grid) IsOccupied(row, col int) (bool, error) {
	if !g.IsWithinBounds(row, col) {
		return false, g.rangeError("is_occupied", row, col)
	}
	if row < 0 {
		return false, nil
	}
	return !g.cells[row][col].IsEmpty(), nil
}

// SetCell writes an identifier into a visible cell.
func (g *Grid) SetCell(row, col int, id core.Color) error {
	if row < 0 || !g.IsWithinBounds(row, col) {
		return g.rangeError("set_cell", row, col)
	}
	g.cells[row][col] = id
	return nil
}

// Cell returns the identifier at (row, col), or empty outside the visible board.
func (g *Grid) Cell(row, col int) core.Color {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		return core.ColorDefault
	}
	return g.cells[row][col]
}

// ClearCompletedRows removes every fully occupied row at once, shifts the
// rows above down by the number of removed rows below them, and inserts the
// same number of empty rows at the top. Returns the number of rows removed.
func (g *Grid) ClearCompletedRows() int {
	kept := make([][]core.Color, 0, g.h)
	cleared := 0

	// Top-to-bottom scan keeps the relative order of surviving rows
	for row := 0; row < g.h; row++ {
		if g.rowComplete(row) {
			cleared++
			continue
		}
		kept = append(kept, g.cells[row])
	}

	if cleared == 0 {
		return 0
	}

	cells := make([][]core.Color, 0, g.h)
	for range cleared {
		cells = append(cells, make([]core.Color, g.w))
	}
	g.cells = append(cells, kept...)
	return cleared
}

// rowComplete reports whether every column in the row is occupied.
func (g *Grid) rowComplete(row int) bool {
	for _, c := range g.cells[row] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, row := range g.cells {
		for _, c := range row {
			if !c.IsEmpty() {
				count++
			}
		}
	}
	return count
}

// Rows returns a deep copy of the visible cells, indexed [row][col].
func (g *Grid) Rows() [][]core.Color {
	rows := make([][]core.Color, g.h)
	for i, row := range g.cells {
		rows[i] = append([]core.Color(nil), row...)
	}
	return rows
}

func (g *Grid) rangeError(op string, row, col int) error {
	return &CellRangeError{Op: op, Row: row, Col: col, Width: g.w, Height: g.h}
}
