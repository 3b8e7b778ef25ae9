package tetris

// Collision and placement. These functions never report a rejected move as
// an error: a blocked translation or rotation returns false and leaves the
// piece untouched.

// CanPlace reports whether every occupied cell of p lies within the grid's
// bounds and, for visible rows, on an empty cell. Cells in the spawn buffer
// (row < 0) only need to be within the horizontal bounds.
func CanPlace(g *Grid, p Piece) bool {
	for _, c := range p.Cells() {
		if !g.IsWithinBounds(c.Row, c.Col) {
			return false
		}
		occupied, err := g.IsOccupied(c.Row, c.Col)
		if err != nil || occupied {
			return false
		}
	}
	return true
}

// TryTranslate moves p by (dr, dc) if the destination is free.
// It is the single primitive behind left/right moves, soft drop and gravity.
func TryTranslate(g *Grid, p *Piece, dr, dc int) bool {
	candidate := p.Translated(dr, dc)
	if !CanPlace(g, candidate) {
		return false
	}
	*p = candidate
	return true
}

// TryRotate turns p clockwise around its fixed anchor if the rotated shape
// fits. Blocked rotations are rejected outright; there is no wall kick.
func TryRotate(g *Grid, p *Piece) bool {
	candidate := p.Rotated()
	if !CanPlace(g, candidate) {
		return false
	}
	*p = candidate
	return true
}

// DropDistance returns how many rows p can fall before it comes to rest.
func DropDistance(g *Grid, p Piece) int {
	dist := 0
	for CanPlace(g, p.Translated(dist+1, 0)) {
		dist++
	}
	return dist
}

// Lock writes the visible cells of p into the grid. Cells still in the spawn
// buffer are skipped and reported through overflow, which the session treats
// as game over. Every visible cell is range-checked before any write, so a
// failed lock leaves the grid untouched.
func Lock(g *Grid, p Piece) (overflow bool, err error) {
	cells := p.Cells()
	for _, c := range cells {
		if c.Row < 0 {
			overflow = true
			continue
		}
		if _, err := g.IsOccupied(c.Row, c.Col); err != nil {
			return false, err
		}
	}

	for _, c := range cells {
		if c.Row < 0 {
			continue
		}
		if err := g.SetCell(c.Row, c.Col, p.Color); err != nil {
			return false, err
		}
	}
	return overflow, nil
}
