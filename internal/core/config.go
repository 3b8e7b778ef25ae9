package core

import "time"

// RuntimeConfig carries terminal and seeding parameters for one platform
// session. Game rules are configured through internal/config.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Redraw frames per second
	Seed     int64 // Piece generator seed, 0 picks one from the clock
}

// DefaultConfig returns the runtime defaults for an 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// Normalized fills unset fields: a non-positive tick rate takes the default
// and a zero seed is drawn from now.
func (c RuntimeConfig) Normalized(now time.Time) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}
