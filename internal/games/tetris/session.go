package tetris

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

// RunState is the session's position in its state machine.
type RunState int

const (
	StateIdle     RunState = iota // no piece in play, waiting for start
	StateRunning                  // gravity active, accepting input
	StatePaused                   // gravity suspended, state retained
	StateGameOver                 // terminal until reset
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome reports what a single command or tick did.
// A command received outside its valid state, or a blocked move, comes back
// with Accepted false and no other effect.
type Outcome struct {
	Action       core.Action // ActionNone for gravity ticks
	Tick         bool
	Accepted     bool
	Dropped      int // rows fallen during a hard drop
	Locked       bool
	LinesCleared int
	LevelUp      bool
	GameOver     bool        // this step ended the game
	Result       *GameResult // final counters, set with GameOver
	From, To     RunState
	Err          error // grid contract violation; never set for rejected moves
}

// GameResult is the summary of one finished game, captured at the moment
// the game ended.
type GameResult struct {
	Game    int // 1-based count of games started on this session
	Status  Status
	Started time.Time
	Ended   time.Time
}

// StateChanged reports whether the step moved the session to another state.
func (o Outcome) StateChanged() bool {
	return o.From != o.To
}

// Status is the display summary of a session.
type Status struct {
	State    RunState
	Score    int
	Lines    int
	Level    int
	Pieces   int // pieces locked this game
	Interval time.Duration
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Width, Height int
	Cells         [][]core.Color // visible rows, [row][col]

	HasActive   bool
	ActiveKind  Kind
	ActiveColor core.Color
	Active      []Cell // absolute coordinates, may include negative rows
	Ghost       []Cell // where Active would come to rest

	HasNext bool
	Next    Kind

	Status Status
}

// Session owns one grid, at most one active piece and the game counters.
// Every exported method takes the session lock, so ticks and input events
// from different goroutines are applied strictly one after another. The
// lock -> clear -> score -> respawn pipeline runs inside a single critical
// section and is never observed half done.
type Session struct {
	mu sync.Mutex

	cfg     config.TetrisConfig
	scoring Scoring
	gen     Generator

	grid  *Grid
	piece *Piece // nil while idle, after game over, or between lock and spawn

	state    RunState
	score    int
	lines    int
	level    int
	pieces   int
	interval time.Duration

	games   int // games started so far
	started time.Time
	last    *GameResult
}

// NewSession creates an idle session. Sessions share nothing, so any number
// may run side by side.
func NewSession(cfg config.TetrisConfig, gen Generator) *Session {
	s := &Session{
		cfg:     cfg,
		scoring: NewScoring(cfg),
		gen:     gen,
		grid:    NewGrid(cfg.Board.Width, cfg.Board.Height),
	}
	s.resetCounters()
	return s
}

func (s *Session) resetCounters() {
	s.state = StateIdle
	s.piece = nil
	s.score = 0
	s.lines = 0
	s.level = 1
	s.pieces = 0
	s.interval = s.scoring.GravityInterval(1)
}

func (s *Session) begin(a core.Action) Outcome {
	return Outcome{Action: a, From: s.state}
}

func (s *Session) finish(out Outcome) Outcome {
	out.To = s.state
	return out
}

// Start spawns the first piece. Idle only. If the spawn position is already
// blocked the session goes straight to game over.
func (s *Session) Start() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.begin(core.ActionStart)
	if s.state != StateIdle {
		return s.finish(out)
	}

	out.Accepted = true
	s.state = StateRunning
	s.games++
	s.started = time.Now()
	if !s.spawn() {
		s.endGame(&out)
	}
	return s.finish(out)
}

// Pause suspends gravity. Running only.
func (s *Session) Pause() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pause()
}

func (s *Session) pause() Outcome {
	out := s.begin(core.ActionPause)
	if s.state == StateRunning {
		s.state = StatePaused
		out.Accepted = true
	}
	return s.finish(out)
}

// Resume restarts gravity. Paused only.
func (s *Session) Resume() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume()
}

func (s *Session) resume() Outcome {
	out := s.begin(core.ActionResume)
	if s.state == StatePaused {
		s.state = StateRunning
		out.Accepted = true
	}
	return s.finish(out)
}

// TogglePause pauses a running session or resumes a paused one.
func (s *Session) TogglePause() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StatePaused {
		return s.resume()
	}
	return s.pause()
}

// Reset discards the grid, the piece and all counters and returns to idle.
// Accepted from any state except idle.
func (s *Session) Reset() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.begin(core.ActionReset)
	if s.state == StateIdle {
		return s.finish(out)
	}

	s.grid.Clear()
	s.resetCounters()
	out.Accepted = true
	return s.finish(out)
}

// MoveLeft shifts the piece one column left.
func (s *Session) MoveLeft() Outcome {
	return s.move(core.ActionMoveLeft, 0, -1)
}

// MoveRight shifts the piece one column right.
func (s *Session) MoveRight() Outcome {
	return s.move(core.ActionMoveRight, 0, 1)
}

func (s *Session) move(a core.Action, dr, dc int) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.begin(a)
	if s.state != StateRunning || s.piece == nil {
		return s.finish(out)
	}
	out.Accepted = TryTranslate(s.grid, s.piece, dr, dc)
	return s.finish(out)
}

// Rotate turns the piece clockwise if the rotated shape fits.
func (s *Session) Rotate() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.begin(core.ActionRotate)
	if s.state != StateRunning || s.piece == nil {
		return s.finish(out)
	}
	out.Accepted = TryRotate(s.grid, s.piece)
	return s.finish(out)
}

// SoftDrop moves the piece down one row, locking it if it cannot descend.
func (s *Session) SoftDrop() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.descend(s.begin(core.ActionSoftDrop))
}

// Tick is the gravity step: identical to a soft drop, issued by the timer.
func (s *Session) Tick() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.begin(core.ActionNone)
	out.Tick = true
	return s.descend(out)
}

func (s *Session) descend(out Outcome) Outcome {
	if s.state != StateRunning || s.piece == nil {
		return s.finish(out)
	}

	out.Accepted = true
	if !TryTranslate(s.grid, s.piece, 1, 0) {
		s.lockAndRespawn(&out)
	}
	return s.finish(out)
}

// HardDrop drops the piece to rest and locks it immediately.
func (s *Session) HardDrop() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.begin(core.ActionHardDrop)
	if s.state != StateRunning || s.piece == nil {
		return s.finish(out)
	}

	out.Accepted = true
	for TryTranslate(s.grid, s.piece, 1, 0) {
		out.Dropped++
	}
	s.lockAndRespawn(&out)
	return s.finish(out)
}

// lockAndRespawn merges the piece, clears rows, updates the counters and
// spawns the next piece. Caller holds the lock.
func (s *Session) lockAndRespawn(out *Outcome) {
	piece := *s.piece
	s.piece = nil

	overflow, err := Lock(s.grid, piece)
	if err != nil {
		out.Err = err
		s.endGame(out)
		return
	}
	out.Locked = true
	s.pieces++

	if overflow {
		s.endGame(out)
		return
	}

	if n := s.grid.ClearCompletedRows(); n > 0 {
		out.LinesCleared = n
		s.score += s.scoring.ApplyLineClear(n, s.level)
		s.lines += n
		if level := s.scoring.NextLevel(s.lines); level > s.level {
			s.level = level
			s.interval = s.scoring.GravityInterval(level)
			out.LevelUp = true
		}
	}

	if !s.spawn() {
		s.endGame(out)
	}
}

// endGame moves to game over and records the final counters. Caller holds
// the lock.
func (s *Session) endGame(out *Outcome) {
	s.state = StateGameOver
	s.piece = nil
	res := GameResult{
		Game:    s.games,
		Status:  s.status(),
		Started: s.started,
		Ended:   time.Now(),
	}
	s.last = &res
	out.GameOver = true
	out.Result = &res
}

// spawn requests the next piece and makes it active if it fits.
func (s *Session) spawn() bool {
	p := s.gen.Next(s.grid.Width())
	if !CanPlace(s.grid, p) {
		return false
	}
	s.piece = &p
	return true
}

// Apply routes an input action to the matching command.
// Unknown actions and ActionQuit are ignored.
func (s *Session) Apply(a core.Action) Outcome {
	switch a {
	case core.ActionMoveLeft:
		return s.MoveLeft()
	case core.ActionMoveRight:
		return s.MoveRight()
	case core.ActionSoftDrop:
		return s.SoftDrop()
	case core.ActionHardDrop:
		return s.HardDrop()
	case core.ActionRotate:
		return s.Rotate()
	case core.ActionPause:
		return s.TogglePause()
	case core.ActionStart:
		return s.Start()
	case core.ActionReset:
		return s.Reset()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finish(s.begin(a))
}

// State returns the current run state.
func (s *Session) State() RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// GravityInterval returns the tick period for the current level.
func (s *Session) GravityInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Status returns the counters and run state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status()
}

// LastResult returns the most recent finished game. It survives resets, so a
// result can be collected after the counters were cleared.
func (s *Session) LastResult() (GameResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return GameResult{}, false
	}
	return *s.last, true
}

func (s *Session) status() Status {
	return Status{
		State:    s.state,
		Score:    s.score,
		Lines:    s.lines,
		Level:    s.level,
		Pieces:   s.pieces,
		Interval: s.interval,
	}
}

// Snapshot returns a consistent copy of the board, the active piece and the
// counters, taken under the session lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Width:  s.grid.Width(),
		Height: s.grid.Height(),
		Cells:  s.grid.Rows(),
		Status: s.status(),
	}

	if s.piece != nil {
		snap.HasActive = true
		snap.ActiveKind = s.piece.Kind
		snap.ActiveColor = s.piece.Color
		snap.Active = s.piece.Cells()
		snap.Ghost = s.piece.Translated(DropDistance(s.grid, *s.piece), 0).Cells()
	}

	if pv, ok := s.gen.(Previewer); ok && s.cfg.Preview.Enabled {
		snap.HasNext = true
		snap.Next = pv.Peek()
	}

	return snap
}
