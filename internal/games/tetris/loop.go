package tetris

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Loop drives a Session in real time: it owns the gravity timer and
// forwards input to the session. One Loop per Session; Run must not be
// called concurrently with itself.
type Loop struct {
	session *Session
	logger  *log.Logger

	wake    chan struct{} // run state changed, re-evaluate the timer
	updates chan Outcome

	runMu sync.Mutex
}

// NewLoop creates a loop for session. A nil logger discards output.
func NewLoop(session *Session, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		session: session,
		logger:  logger,
		wake:    make(chan struct{}, 1),
		updates: make(chan Outcome, 64),
	}
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

// Updates returns a stream of accepted outcomes for renderers.
// When the buffer is full the oldest outcome is dropped.
func (l *Loop) Updates() <-chan Outcome {
	return l.updates
}

// Dispatch applies an input action. Actions that change the run state
// (start, pause, resume, reset) wake the loop so it arms or suspends the
// gravity timer; plain moves leave the running timer alone.
func (l *Loop) Dispatch(a core.Action) Outcome {
	out := l.session.Apply(a)
	if out.StateChanged() {
		l.signal()
	}
	l.report(out)
	return out
}

// Run schedules gravity ticks until ctx is cancelled. The period is the
// session's current gravity interval, re-read and re-armed after every tick.
// No timer runs while the session is not running. Cancellation only stops
// scheduling: a tick already inside the session completes first.
func (l *Loop) Run(ctx context.Context) error {
	l.runMu.Lock()
	defer l.runMu.Unlock()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	l.logger.Debug("loop started")
	for {
		var tickC <-chan time.Time
		if l.session.State() == StateRunning {
			timer.Reset(l.session.GravityInterval())
			tickC = timer.C
		}

		select {
		case <-ctx.Done():
			l.logger.Debug("loop stopped", "reason", ctx.Err())
			return nil

		case <-l.wake:
			timer.Stop()

		case <-tickC:
			l.report(l.session.Tick())
		}
	}
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// report logs notable outcomes and publishes accepted ones.
func (l *Loop) report(out Outcome) {
	if !out.Accepted {
		return
	}

	if out.Err != nil {
		l.logger.Error("lock failed", "error", out.Err)
	}
	if out.LinesCleared > 0 {
		l.logger.Info("lines cleared", "lines", out.LinesCleared, "level_up", out.LevelUp)
	}
	if out.StateChanged() {
		st := l.session.Status()
		l.logger.Info("state changed", "from", out.From, "to", out.To, "score", st.Score, "lines", st.Lines, "level", st.Level)
	}
	if !out.Tick {
		l.logger.Debug("input", "action", out.Action, "locked", out.Locked)
	}

	select {
	case l.updates <- out:
		return
	default:
	}

	// Buffer full, drop oldest and retry
	select {
	case <-l.updates:
	default:
	}
	select {
	case l.updates <- out:
	default:
	}
}
