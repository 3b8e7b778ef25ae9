// Package tui provides the Bubble Tea presentation for the block stacking
// engine. It maps keys to engine actions and draws session snapshots; the
// engine's own loop owns gravity timing.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
)

// TickMsg is sent to trigger a redraw.
type TickMsg time.Time

// LoopStoppedMsg is sent when the gravity loop returns.
type LoopStoppedMsg struct {
	Err error
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// runLoopCmd runs the gravity loop until ctx is cancelled.
func runLoopCmd(ctx context.Context, loop *tetris.Loop) tea.Cmd {
	return func() tea.Msg {
		return LoopStoppedMsg{Err: loop.Run(ctx)}
	}
}
