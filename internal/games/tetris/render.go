package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

const (
	cellWidth  = 2 // terminal columns per board cell
	hudWidth   = 18
	hudSpacing = 3
)

// BoardRect returns the screen rectangle of the framed board, centered
// together with the HUD panel.
func (s Snapshot) BoardRect(screenW, screenH int) core.Rect {
	w := s.Width*cellWidth + 2
	h := s.Height + 2
	area := core.NewRect(0, 0, screenW, screenH).Centered(w+hudSpacing+hudWidth, h)
	return core.NewRect(core.Clamp(area.X, 0, screenW), core.Clamp(area.Y, 0, screenH), w, h)
}

// Render draws the snapshot into dst: framed board with locked cells, ghost
// and active piece, a HUD panel to its right, and a state overlay.
func (s Snapshot) Render(dst *core.Screen) {
	dst.Clear()

	board := s.BoardRect(dst.Width(), dst.Height())
	if board.Right()+hudSpacing+hudWidth > dst.Width() || board.Bottom() > dst.Height() {
		dst.DrawTextCentered(dst.Height()/2, "Enlarge the terminal to play")
		return
	}
	dst.DrawBox(board, core.ColorDefault)

	inner := board.Inset(1)
	ox, oy := inner.X, inner.Y
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			x := ox + col*cellWidth
			if c := s.Cells[row][col]; !c.IsEmpty() {
				drawBlock(dst, x, oy+row, c)
			} else {
				dst.SetColored(x, oy+row, ' ', core.ColorDefault)
				dst.SetColored(x+1, oy+row, '.', core.ColorGray)
			}
		}
	}

	if s.HasActive {
		for _, c := range s.Ghost {
			if c.Row >= 0 && c.Row < s.Height {
				x := ox + c.Col*cellWidth
				dst.SetColored(x, oy+c.Row, '░', core.ColorGray)
				dst.SetColored(x+1, oy+c.Row, '░', core.ColorGray)
			}
		}
		for _, c := range s.Active {
			if c.Row >= 0 && c.Row < s.Height {
				drawBlock(dst, ox+c.Col*cellWidth, oy+c.Row, s.ActiveColor)
			}
		}
	}

	s.renderHUD(dst, board.Right()+hudSpacing, board.Y)

	st := s.Status
	switch st.State {
	case StateIdle:
		renderOverlay(dst, board, "Ready", "", "Enter to start")
	case StatePaused:
		renderOverlay(dst, board, "Paused", "", "P to resume")
	case StateGameOver:
		renderOverlay(dst, board,
			"Game Over",
			"",
			fmt.Sprintf("Score %d", st.Score),
			fmt.Sprintf("Lines %d", st.Lines),
			fmt.Sprintf("Level %d", st.Level),
			"",
			"R to reset",
		)
	}
}

// renderHUD draws the status panel at (x, y).
func (s Snapshot) renderHUD(dst *core.Screen, x, y int) {
	st := s.Status
	lines := []string{
		"BLOCKS",
		"",
		fmt.Sprintf("Score  %d", st.Score),
		fmt.Sprintf("Lines  %d", st.Lines),
		fmt.Sprintf("Level  %d", st.Level),
		fmt.Sprintf("Speed  %dms", st.Interval.Milliseconds()),
	}
	dst.DrawTextColored(x, y, lines[0], core.ColorBrightCyan)
	for i, line := range lines[1:] {
		dst.DrawText(x, y+1+i, line)
	}

	if !s.HasNext {
		return
	}

	ny := y + len(lines) + 1
	dst.DrawText(x, ny, "Next")
	for _, c := range s.Next.Mask().Cells() {
		drawBlock(dst, x+c.Col*cellWidth, ny+2+c.Row, s.Next.Color())
	}
}

// drawBlock draws one board cell.
func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetColored(x, y, '█', c)
	dst.SetColored(x+1, y, '█', c)
}

// renderOverlay draws a centered message box over the board.
func renderOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	box := board.Centered(width+4, len(lines)+2)
	dst.Fill(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(box.X+(box.W-len(line))/2, box.Y+1+i, line)
	}
}
