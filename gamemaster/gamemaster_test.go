package gamemaster

import (
	"context"
	"fmt"
	"regexp"
	"rpsplus/engine"
	"rpsplus/judge"
	"rpsplus/player"
	"strconv"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestGameMaster(reply string, err error) *GameMaster {
	oracle := judge.OracleFunc(func(context.Context, string, string) (string, error) {
		return reply, err
	})
	return NewGameMaster(engine.NewEngine(oracle, player.NewSelector(1)))
}

func TestGameMaster(t *testing.T) {
	ctx := context.Background()

	t.Run("new matches get distinct uuid ids", func(t *testing.T) {
		gm := newTestGameMaster("", nil)
		a, b := gm.NewMatch(), gm.NewMatch()

		require.NotEqual(t, a.ID(), b.ID())
		_, err := uuid.Parse(a.ID())
		require.NoError(t, err, "Match ID should be a UUID")
		require.ElementsMatch(t, []string{a.ID(), b.ID()}, gm.Matches())
	})

	t.Run("matches keep separate state", func(t *testing.T) {
		gm := newTestGameMaster("Round Result: User wins", nil)
		a, b := gm.NewMatch(), gm.NewMatch()

		_, state, err := gm.PlayRound(ctx, a.ID(), "rock")
		require.NoError(t, err)
		require.Equal(t, 2, state.Round)
		require.Equal(t, 1, state.UserScore)
		require.Equal(t, 1, b.Snapshot().Round, "Other match should not advance")
	})

	t.Run("unknown match", func(t *testing.T) {
		gm := newTestGameMaster("", nil)

		_, err := gm.Match("nope")
		require.ErrorIs(t, err, ErrMatchNotFound)
		_, _, err = gm.PlayRound(ctx, "nope", "rock")
		require.ErrorIs(t, err, ErrMatchNotFound)
		require.ErrorIs(t, gm.Delete("nope"), ErrMatchNotFound)
	})

	t.Run("delete removes the match", func(t *testing.T) {
		gm := newTestGameMaster("", nil)
		m := gm.NewMatch()

		require.NoError(t, gm.Delete(m.ID()))
		require.Empty(t, gm.Matches())
	})

	t.Run("judge failure returns unchanged state", func(t *testing.T) {
		gm := newTestGameMaster("", judge.ErrUnavailable)
		m := gm.NewMatch()

		_, state, err := gm.PlayRound(ctx, m.ID(), "rock")
		require.ErrorIs(t, err, judge.ErrUnavailable)
		require.Equal(t, 1, state.Round)
	})
}

func TestPlayRoundConcurrentState(t *testing.T) {
	ctx := context.Background()
	roundLine := regexp.MustCompile(`(?m)^Round: (\d+)$`)
	// the user wins every round and the reply names the round it judged
	oracle := judge.OracleFunc(func(_ context.Context, _, instruction string) (string, error) {
		match := roundLine.FindStringSubmatch(instruction)
		if match == nil {
			return "", fmt.Errorf("no round in instruction")
		}
		return "Round: " + match[1] + "\nRound Result: User wins", nil
	})
	gm := NewGameMaster(engine.NewEngine(oracle, player.NewSelector(1)))
	m := gm.NewMatch()

	const rounds = 32
	var wg sync.WaitGroup
	errs := make(chan error, rounds)
	for i := 0; i < rounds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reply, state, err := gm.PlayRound(ctx, m.ID(), "rock")
			if err != nil {
				errs <- err
				return
			}
			played, err := strconv.Atoi(roundLine.FindStringSubmatch(reply)[1])
			if err != nil {
				errs <- err
				return
			}
			if state.Round != played+1 || state.UserScore != played {
				errs <- fmt.Errorf("round %d reported state %+v", played, state)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err, "Each round should report the state it produced")
	}
	require.Equal(t, rounds+1, m.Snapshot().Round)
}

func TestLocalCommunicator(t *testing.T) {
	ctx := context.Background()
	gm := newTestGameMaster("Round Result: Bot wins", nil)
	lc := NewLocalCommunicator(gm)

	reply, err := lc.PlayRound(ctx, "rock")
	require.NoError(t, err)
	require.Equal(t, "Round Result: Bot wins", reply)

	state, err := lc.State(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, state.Round)
	require.Equal(t, 1, state.BotScore)
	require.Equal(t, []string{lc.MatchID()}, gm.Matches())
}
