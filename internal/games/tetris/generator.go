package tetris

import (
	"math/rand"
	"sync"
)

// Generator produces the sequence of pieces to play, each positioned at
// spawn for a board of the given width.
type Generator interface {
	Next(width int) Piece
}

// Previewer is implemented by generators that know their upcoming piece.
type Previewer interface {
	Peek() Kind
}

// RandomGenerator selects shapes uniformly at random from the catalog.
// It keeps one shape drawn ahead so the upcoming piece can be previewed.
type RandomGenerator struct {
	mu       sync.Mutex
	rng      *rand.Rand
	upcoming Kind
}

// NewRandomGenerator creates a generator seeded with seed.
func NewRandomGenerator(seed int64) *RandomGenerator {
	return NewRandomGeneratorFrom(rand.New(rand.NewSource(seed)))
}

// NewRandomGeneratorFrom creates a generator drawing from rng.
func NewRandomGeneratorFrom(rng *rand.Rand) *RandomGenerator {
	g := &RandomGenerator{rng: rng}
	g.upcoming = g.draw()
	return g
}

func (g *RandomGenerator) draw() Kind {
	return Kind(g.rng.Intn(len(catalog)))
}

// Next returns the upcoming piece and draws a new one.
func (g *RandomGenerator) Next(width int) Piece {
	g.mu.Lock()
	defer g.mu.Unlock()

	kind := g.upcoming
	g.upcoming = g.draw()
	return SpawnPiece(kind, width)
}

// Peek returns the kind the next call to Next will produce.
func (g *RandomGenerator) Peek() Kind {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.upcoming
}

// SequenceGenerator replays a fixed list of kinds, cycling when exhausted.
// Useful for scripted scenarios and tests.
type SequenceGenerator struct {
	mu    sync.Mutex
	kinds []Kind
	pos   int
}

// NewSequenceGenerator creates a generator over kinds. Panics on an empty list.
func NewSequenceGenerator(kinds ...Kind) *SequenceGenerator {
	if len(kinds) == 0 {
		panic("tetris: sequence generator needs at least one kind")
	}
	return &SequenceGenerator{kinds: append([]Kind(nil), kinds...)}
}

// Next returns the next piece in the sequence.
func (g *SequenceGenerator) Next(width int) Piece {
	g.mu.Lock()
	defer g.mu.Unlock()

	kind := g.kinds[g.pos]
	g.pos = (g.pos + 1) % len(g.kinds)
	return SpawnPiece(kind, width)
}

// Peek returns the kind the next call to Next will produce.
func (g *SequenceGenerator) Peek() Kind {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.kinds[g.pos]
}
