package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"rpsplus/communication"
	"rpsplus/engine"
	"rpsplus/game"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrMatchNotFound = errors.New("match not found")

// GameMaster keeps every live match and routes rounds to them.
type GameMaster struct {
	engine  *engine.Engine
	mu      sync.RWMutex
	matches map[string]*engine.Match
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(e *engine.Engine) *GameMaster {
	return &GameMaster{
		engine:  e,
		matches: make(map[string]*engine.Match),
	}
}

// NewMatch starts a match under a fresh random ID.
func (gm *GameMaster) NewMatch() *engine.Match {
	m := engine.NewMatch(uuid.NewString())

	gm.mu.Lock()
	gm.matches[m.ID()] = m
	gm.mu.Unlock()

	log.Info().Str("match", m.ID()).Msg("match started")
	return m
}

func (gm *GameMaster) Match(id string) (*engine.Match, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	m, ok := gm.matches[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	return m, nil
}

// PlayRound plays one round of the match with the given ID and returns the
// state that round produced. Only the match's own lock is held while the
// judge is consulted.
func (gm *GameMaster) PlayRound(ctx context.Context, id, input string) (string, game.Snapshot, error) {
	m, err := gm.Match(id)
	if err != nil {
		return "", game.Snapshot{}, err
	}
	return gm.engine.PlayRound(ctx, m, input)
}

// Matches returns the IDs of all live matches, sorted.
func (gm *GameMaster) Matches() []string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	ids := make([]string, 0, len(gm.matches))
	for id := range gm.matches {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (gm *GameMaster) Delete(id string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if _, ok := gm.matches[id]; !ok {
		return fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	delete(gm.matches, id)
	log.Info().Str("match", id).Msg("match ended")
	return nil
}

// LocalCommunicator plays a single in-process match.
type LocalCommunicator struct {
	gm *GameMaster
	id string
}

var _ communication.Communicator = (*LocalCommunicator)(nil)

// NewLocalCommunicator starts a new match on gm and binds to it.
func NewLocalCommunicator(gm *GameMaster) *LocalCommunicator {
	return &LocalCommunicator{gm: gm, id: gm.NewMatch().ID()}
}

func (lc *LocalCommunicator) MatchID() string {
	return lc.id
}

func (lc *LocalCommunicator) PlayRound(ctx context.Context, input string) (string, error) {
	reply, _, err := lc.gm.PlayRound(ctx, lc.id, input)
	return reply, err
}

func (lc *LocalCommunicator) State(ctx context.Context) (game.Snapshot, error) {
	m, err := lc.gm.Match(lc.id)
	if err != nil {
		return game.Snapshot{}, err
	}
	return m.Snapshot(), nil
}
