package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m := NewModel(ModelOptions{
		Game:       config.DefaultTetrisConfig(),
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1},
		Difficulty: config.DifficultyNormal,
		Player:     "tester",
		Store:      store,
	})
	t.Cleanup(m.Stop)
	return m
}

// newShortGameModel plays on a 4x3 board fed I, O, O: the first hard drop
// clears a line for 100 points and the second ends the game.
func newShortGameModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	game := config.DefaultTetrisConfig()
	game.Board.Width, game.Board.Height = 4, 3
	m := NewModel(ModelOptions{
		Game:      game,
		Runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1},
		Player:    "tester",
		Store:     store,
		Generator: tetris.NewSequenceGenerator(tetris.KindI, tetris.KindO, tetris.KindO),
	})
	t.Cleanup(m.Stop)
	return m
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// playShortGame starts a game and hard drops until it ends.
func playShortGame(t *testing.T, m Model) Model {
	t.Helper()
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, space)
	m, _ = update(t, m, space)
	if st := m.Status(); st.State != tetris.StateGameOver || st.Score != 100 {
		t.Fatalf("short game ended as %+v, want game over with 100 points", st)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelStartsIdle(t *testing.T) {
	m := newTestModel(t, nil)

	if got := m.Status().State; got != tetris.StateIdle {
		t.Fatalf("initial state = %v, want idle", got)
	}
	if !strings.Contains(m.View(), "Enter to start") {
		t.Error("idle view should prompt to start")
	}
}

func TestModelKeysDriveSession(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Status().State; got != tetris.StateRunning {
		t.Fatalf("state after enter = %v, want running", got)
	}

	m, _ = update(t, m, runeKey('p'))
	if got := m.Status().State; got != tetris.StatePaused {
		t.Fatalf("state after p = %v, want paused", got)
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := m.Status().Pieces; got != 1 {
		t.Errorf("pieces after hard drop = %d, want 1", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
	if m.ctx.Err() == nil {
		t.Error("quit should cancel the gravity loop context")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	for i := 0; i < 500 && m.Status().State != tetris.StateGameOver; i++ {
		m, _ = update(t, m, space)
	}
	if m.Status().State != tetris.StateGameOver {
		t.Fatal("hard drops should eventually end the game")
	}

	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	results, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	st := m.Status()
	want := 0
	if st.Score > 0 {
		want = 1
	}
	if len(results) != want {
		t.Fatalf("saved %d results, want %d (score %d)", len(results), want, st.Score)
	}
	if want == 1 {
		r := results[0]
		if r.Player != "tester" || r.Score != st.Score || r.Lines != st.Lines || r.Level != st.Level {
			t.Errorf("saved result %+v does not match status %+v", r, st)
		}
	}
}

func TestModelSavesResultWhenResetBeforeRedraw(t *testing.T) {
	store := openTestStore(t)
	m := newShortGameModel(t, store)

	m = playShortGame(t, m)
	m, _ = update(t, m, runeKey('r'))
	if got := m.Status().Score; got != 0 {
		t.Fatalf("score after reset = %d, want 0", got)
	}
	m, _ = update(t, m, TickMsg{})

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("saved %d results, want 1", len(results))
	}
	if r := results[0]; r.Score != 100 || r.Lines != 1 || r.Pieces != 2 {
		t.Errorf("saved result %+v, want the finished game's counters", r)
	}
}

func TestModelSavesEachGameUnderItsOwnID(t *testing.T) {
	store := openTestStore(t)
	m := newShortGameModel(t, store)

	m = playShortGame(t, m)
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey('r'))

	// Flood the update stream so the reset and game over outcomes are
	// dropped. Each start draws a piece, so a multiple of three keeps the
	// next game opening with the I piece.
	for i := 0; i < 99; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m, _ = update(t, m, runeKey('r'))
	}

	m = playShortGame(t, m)
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("saved %d results, want 2", len(results))
	}
	if results[0].SessionID == results[1].SessionID {
		t.Errorf("games share session ID %q", results[0].SessionID)
	}
}
