package tetris

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by every CellRangeError. It marks a caller bug
// (for example a piece resolved against a grid of different dimensions),
// never a rejected move.
var ErrOutOfRange = errors.New("tetris: cell out of range")

// CellRangeError describes an access outside the grid's fixed dimensions.
type CellRangeError struct {
	Op            string // "is_occupied" or "set_cell"
	Row, Col      int
	Width, Height int
}

func (e *CellRangeError) Error() string {
	return fmt.Sprintf("tetris: %s at row %d, col %d outside %dx%d grid", e.Op, e.Row, e.Col, e.Width, e.Height)
}

// Unwrap allows errors.Is(err, ErrOutOfRange).
func (e *CellRangeError) Unwrap() error {
	return ErrOutOfRange
}
