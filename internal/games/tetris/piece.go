package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindJ
	KindL
	KindS
	KindZ
	KindT
)

// shapeDef is a catalog entry. Layouts use '#' for an occupied cell.
type shapeDef struct {
	name   string
	layout []string
	color  core.Color
}

// catalog is the closed set of shapes in spawn orientation.
var catalog = [...]shapeDef{
	KindI: {"I", []string{"####"}, core.ColorCyan},
	KindO: {"O", []string{"##", "##"}, core.ColorYellow},
	KindJ: {"J", []string{"#..", "###"}, core.ColorBlue},
	KindL: {"L", []string{"..#", "###"}, core.ColorOrange},
	KindS: {"S", []string{".##", "##."}, core.ColorGreen},
	KindZ: {"Z", []string{"##.", ".##"}, core.ColorRed},
	KindT: {"T", []string{".#.", "###"}, core.ColorMagenta},
}

// AllKinds returns every shape in catalog order.
func AllKinds() []Kind {
	kinds := make([]Kind, len(catalog))
	for i := range catalog {
		kinds[i] = Kind(i)
	}
	return kinds
}

// String returns the single-letter shape name.
func (k Kind) String() string {
	if int(k) < len(catalog) {
		return catalog[k].name
	}
	return "?"
}

// Color returns the canonical cell identifier for the shape.
func (k Kind) Color() core.Color {
	if int(k) < len(catalog) {
		return catalog[k].color
	}
	return core.ColorDefault
}

// Mask returns a fresh copy of the shape's spawn orientation.
func (k Kind) Mask() Mask {
	if int(k) >= len(catalog) {
		return nil
	}
	return ParseMask(catalog[k].layout...)
}

// Cell is an absolute or relative (row, col) coordinate.
type Cell struct {
	Row, Col int
}

// Mask is a rectangular boolean cell pattern, indexed [row][col].
// Masks are treated as immutable once built; transforms return new masks.
type Mask [][]bool

// ParseMask builds a mask from rows where '#' marks an occupied cell.
func ParseMask(rows ...string) Mask {
	m := make(Mask, len(rows))
	for i, row := range rows {
		m[i] = make([]bool, len(row))
		for j, ch := range row {
			m[i][j] = ch == '#'
		}
	}
	return m
}

// Height returns the number of rows.
func (m Mask) Height() int {
	return len(m)
}

// Width returns the number of columns.
func (m Mask) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Valid reports whether the mask is non-empty and rectangular.
func (m Mask) Valid() bool {
	if len(m) == 0 || len(m[0]) == 0 {
		return false
	}
	for _, row := range m {
		if len(row) != len(m[0]) {
			return false
		}
	}
	return true
}

// Rotated returns the mask turned 90 degrees clockwise.
// For an h x w mask the result is w x h with out[i][j] = m[h-1-j][i].
func (m Mask) Rotated() Mask {
	h, w := m.Height(), m.Width()
	out := make(Mask, w)
	for i := range w {
		out[i] = make([]bool, h)
		for j := range h {
			out[i][j] = m[h-1-j][i]
		}
	}
	return out
}

// Cells returns the offsets of occupied cells in row-major order.
func (m Mask) Cells() []Cell {
	var cells []Cell
	for i, row := range m {
		for j, on := range row {
			if on {
				cells = append(cells, Cell{Row: i, Col: j})
			}
		}
	}
	return cells
}

// Equal reports whether two masks have the same shape and contents.
func (m Mask) Equal(other Mask) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the mask with '#' and '.', rows separated by '/'.
func (m Mask) String() string {
	rows := make([]string, len(m))
	for i, row := range m {
		var sb strings.Builder
		for _, on := range row {
			if on {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[i] = sb.String()
	}
	return strings.Join(rows, "/")
}

// Piece is the falling shape: a mask anchored at (Row, Col), the grid
// position of the mask's top-left corner. Pieces are values; Translated and
// Rotated return candidates that the resolver validates before they replace
// the active piece.
type Piece struct {
	Kind  Kind
	Color core.Color
	Row   int
	Col   int
	Mask  Mask
}

// NewPiece creates a piece of the given kind in spawn orientation.
func NewPiece(kind Kind, row, col int) Piece {
	return Piece{
		Kind:  kind,
		Color: kind.Color(),
		Row:   row,
		Col:   col,
		Mask:  kind.Mask(),
	}
}

// SpawnPiece creates a piece horizontally centered on a board of the given
// width, anchored at row 0.
func SpawnPiece(kind Kind, width int) Piece {
	mask := kind.Mask()
	return Piece{
		Kind:  kind,
		Color: kind.Color(),
		Row:   0,
		Col:   width/2 - mask.Width()/2,
		Mask:  mask,
	}
}

// Translated returns a copy shifted by (dr, dc).
func (p Piece) Translated(dr, dc int) Piece {
	p.Row += dr
	p.Col += dc
	return p
}

// Rotated returns a copy with the mask turned clockwise around a fixed anchor.
func (p Piece) Rotated() Piece {
	p.Mask = p.Mask.Rotated()
	return p
}

// Cells returns the absolute grid coordinates of every occupied cell.
func (p Piece) Cells() []Cell {
	cells := p.Mask.Cells()
	for i := range cells {
		cells[i].Row += p.Row
		cells[i].Col += p.Col
	}
	return cells
}

// Equal reports whether two pieces are identical in every field.
func (p Piece) Equal(other Piece) bool {
	return p.Kind == other.Kind &&
		p.Color == other.Color &&
		p.Row == other.Row &&
		p.Col == other.Col &&
		p.Mask.Equal(other.Mask)
}
