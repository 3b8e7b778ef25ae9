package tetris

import (
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

// Scoring converts line clears into score, level and gravity speed.
type Scoring struct {
	pointsPerLine int
	linesPerLevel int
	gravity       config.GravityConfig
}

// NewScoring builds a scoring controller from configuration.
func NewScoring(cfg config.TetrisConfig) Scoring {
	linesPerLevel := cfg.Scoring.LinesPerLevel
	if linesPerLevel <= 0 {
		linesPerLevel = 10
	}
	return Scoring{
		pointsPerLine: cfg.Scoring.PointsPerLine,
		linesPerLevel: linesPerLevel,
		gravity:       cfg.Gravity,
	}
}

// ApplyLineClear returns the score delta for clearing lines at level:
// lines x points-per-line x level, with no multi-line bonus.
func (s Scoring) ApplyLineClear(lines, level int) int {
	if lines <= 0 {
		return 0
	}
	return lines * s.pointsPerLine * level
}

// NextLevel returns the level reached after totalLines cleared lines.
func (s Scoring) NextLevel(totalLines int) int {
	return totalLines/s.linesPerLevel + 1
}

// GravityInterval returns the tick period for level, never below the floor.
func (s Scoring) GravityInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := s.gravity.Base() - time.Duration(level-1)*s.gravity.Step()
	return max(s.gravity.Min(), interval)
}
