package engine

import (
	"context"
	"fmt"
	"rpsplus/game"
	"rpsplus/judge"
	"rpsplus/parser"
	"rpsplus/player"
	"rpsplus/transcript"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithPrompts sets the system instruction and the header placed before each
// round's state block.
func WithPrompts(system, header string) Option {
	return func(e *Engine) {
		e.system = system
		e.header = header
	}
}

func WithCollector(c transcript.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.collector = c
		}
	}
}

// Engine plays rounds against the external judge. It holds no match state of
// its own and can serve any number of matches.
type Engine struct {
	oracle    judge.Oracle
	selector  *player.Selector
	system    string
	header    string
	collector transcript.Collector
}

func NewEngine(oracle judge.Oracle, selector *player.Selector, options ...Option) *Engine {
	e := &Engine{
		oracle:    oracle,
		selector:  selector,
		collector: transcript.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Match owns the state of one match. Rounds of the same match never overlap.
type Match struct {
	id    string
	mu    sync.Mutex
	state *game.MatchState
}

func NewMatch(id string) *Match {
	return &Match{id: id, state: game.NewMatchState()}
}

func (m *Match) ID() string {
	return m.id
}

func (m *Match) Snapshot() game.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Snapshot()
}

// PlayRound runs one round of m and returns the judge's reply verbatim along
// with the state right after that round. If the judge call fails the state is
// left exactly as it was and returned unchanged.
func (e *Engine) PlayRound(ctx context.Context, m *Match, userInput string) (string, game.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := m.state.Snapshot()
	botMove := e.selector.SelectMove(before.BotSpecialUsed)
	req := judge.NewRequest(before, botMove, userInput)

	start := time.Now()
	reply, err := e.oracle.Judge(ctx, e.system, judge.Instruction(e.header, req))
	elapsed := time.Since(start)
	if err != nil {
		log.Warn().Err(err).Str("match", m.id).Int("round", before.Round).Msg("judge call failed, state unchanged")
		return "", before, fmt.Errorf("round %d: %w", before.Round, err)
	}

	parsed := parser.Parse(reply)
	m.state.ApplyRoundResult(parsed, botMove.IsSpecial())
	after := m.state.Snapshot()

	log.Info().
		Str("match", m.id).
		Int("round", before.Round).
		Str("bot_move", botMove.String()).
		Str("winner", parsed.Winner.String()).
		Bool("judge_scores", parsed.Scores != nil).
		Msgf("score %d-%d", after.UserScore, after.BotScore)

	e.collector.Record(transcript.RoundRecord{
		Match:           m.id,
		Round:           before.Round,
		BotMove:         botMove.String(),
		UserInput:       userInput,
		Winner:          parsed.Winner.String(),
		UserScore:       after.UserScore,
		BotScore:        after.BotScore,
		UserSpecialUsed: after.UserSpecialUsed,
		BotSpecialUsed:  after.BotSpecialUsed,
		Duration:        elapsed,
		Time:            start,
	})

	return reply, after, nil
}
