package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// ModelOptions configures a game model.
type ModelOptions struct {
	// Context bounds the gravity loop. Defaults to context.Background().
	Context context.Context

	Game       config.TetrisConfig
	Runtime    core.RuntimeConfig
	Difficulty config.DifficultyPreset
	Player     string
	Store      *storage.Store   // optional
	Logger     *log.Logger      // optional
	Generator  tetris.Generator // optional, seeded from Runtime.Seed when nil
}

// Model is the Bubble Tea model for one game session.
// The session and its gravity loop live outside the model value, so the
// copies Bubble Tea makes all drive the same game.
type Model struct {
	loop   *tetris.Loop
	ctx    context.Context
	cancel context.CancelFunc

	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model

	player     string
	difficulty config.DifficultyPreset
	savedGame  int // last game number whose result was handled
	quitting   bool
}

// NewModel creates a new Bubble Tea model with a fresh, idle session.
func NewModel(opts ModelOptions) Model {
	cfg := opts.Runtime.Normalized(time.Now())

	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gen := opts.Generator
	if gen == nil {
		gen = tetris.NewRandomGenerator(cfg.Seed)
	}
	session := tetris.NewSession(opts.Game, gen)

	return Model{
		loop:       tetris.NewLoop(session, logger),
		ctx:        ctx,
		cancel:     cancel,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		player:     opts.Player,
		difficulty: opts.Difficulty,
	}
}

// Init starts the gravity loop and the redraw ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(runLoopCmd(m.ctx, m.loop), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case LoopStoppedMsg:
		if msg.Err != nil {
			m.logger.Error("gravity loop failed", "error", msg.Err)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	m.loop.Dispatch(action)
	return m, nil
}

// handleTick consumes the outcomes published since the last frame and
// schedules the next redraw.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for drained := false; !drained; {
		select {
		case out := <-m.loop.Updates():
			if out.Result != nil {
				m.saveResult(*out.Result)
			}
		default:
			drained = true
		}
	}

	// Outcomes can be dropped under load; the session keeps the last result
	if res, ok := m.loop.Session().LastResult(); ok {
		m.saveResult(res)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult stores a finished game once. Each stored game gets its own
// session ID.
func (m *Model) saveResult(res tetris.GameResult) {
	if res.Game <= m.savedGame {
		return
	}
	m.savedGame = res.Game

	st := res.Status
	m.logger.Info("game over", "player", m.player, "game", res.Game, "score", st.Score, "lines", st.Lines, "level", st.Level)

	if m.store == nil || st.Score <= 0 {
		return
	}

	_, err := m.store.SaveResult(storage.Result{
		SessionID:  uuid.NewString(),
		Player:     m.player,
		Difficulty: string(m.difficulty),
		Score:      st.Score,
		Lines:      st.Lines,
		Level:      st.Level,
		Pieces:     st.Pieces,
		Duration:   res.Ended.Sub(res.Started),
	})
	if err != nil {
		// Best-effort save, the game continues regardless
		m.logger.Warn("could not save result", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.loop.Session().Snapshot().Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".blocks", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blocks_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.loop.Session().Snapshot().Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// boardHeight leaves the last terminal row for the help bar.
func boardHeight(screenH int) int {
	return max(screenH-1, 1)
}

// Stop cancels the gravity loop. Safe to call more than once.
func (m Model) Stop() {
	m.cancel()
}

// Status returns the session counters.
func (m Model) Status() tetris.Status {
	return m.loop.Session().Status()
}

// Run starts the Bubble Tea program with a new model and returns the final
// session status.
func Run(opts ModelOptions) (tetris.Status, error) {
	model := NewModel(opts)
	defer model.Stop()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return model.Status(), err
}
