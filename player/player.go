package player

import (
	"rpsplus/game"
	"sync"

	"golang.org/x/exp/rand"
)

// Selector picks the bot's move for a round.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector returns a Selector seeded with seed. Equal seeds give equal
// move sequences.
func NewSelector(seed uint64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// SelectMove returns a uniformly random move. The special move is only a
// candidate while specialUsed is false.
func (s *Selector) SelectMove(specialUsed bool) game.Move {
	candidates := game.Moves
	if specialUsed {
		candidates = game.BasicMoves
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return candidates[s.rng.Intn(len(candidates))]
}
