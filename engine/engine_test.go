package engine

import (
	"context"
	"errors"
	"path/filepath"
	"surround/config"
	"surround/experiments/metrics"
	"surround/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// scriptedAgent plays the result of fn and records the updates it receives.
type scriptedAgent struct {
	fn       func(ctx context.Context, state *game.GameState) (game.Action, error)
	received [][]Update
}

func (a *scriptedAgent) Play(ctx context.Context, state *game.GameState, updates []Update, _ time.Duration) (game.Action, metrics.SearchMetric, error) {
	a.received = append(a.received, updates)
	action, err := a.fn(ctx, state)
	return action, metrics.SearchMetric{}, err
}

func firstAction(_ context.Context, state *game.GameState) (game.Action, error) {
	return state.Actions()[0], nil
}

func TestNewLocal(t *testing.T) {
	_, err := NewLocal(nil, []Agent{NewRandomAgent(1)}, Options{})
	require.Error(t, err)

	e, err := NewLocal(nil, []Agent{NewRandomAgent(1), NewRandomAgent(2)}, Options{})
	require.NoError(t, err)
	require.NotNil(t, e.board)
}

func TestRun(t *testing.T) {
	t.Run("random game replays to the same board", func(t *testing.T) {
		e, err := NewLocal(game.NewBoard(), []Agent{NewRandomAgent(3), NewRandomAgent(4)}, Options{MaxSteps: 60})
		require.NoError(t, err)

		result, err := e.Run(context.Background())
		require.NoError(t, err)
		require.LessOrEqual(t, result.Steps, 60)
		require.Len(t, result.Moves, result.Steps)
		require.Equal(t, result.Steps, result.Game.TotalMoves)
		if result.Reason == ReasonMaxSteps {
			require.Equal(t, 60, result.Steps)
		} else {
			require.Empty(t, result.Reason)
			require.True(t, result.Board.IsFinished())
		}

		board, err := result.Trace.Replay()
		require.NoError(t, err)
		require.Equal(t, result.Board.Percepts(), board.Percepts())
	})

	t.Run("invalid action forfeits", func(t *testing.T) {
		cheater := &scriptedAgent{fn: func(context.Context, *game.GameState) (game.Action, error) {
			return game.Place(game.Racer.Of(game.PlayerA), game.Coord{Q: 5, R: 5}), nil
		}}
		e, err := NewLocal(nil, []Agent{cheater, NewRandomAgent(1)}, Options{})
		require.NoError(t, err)

		result, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, game.PlayerB, result.Winner)
		require.Equal(t, ReasonInvalid, result.Reason)
		require.Zero(t, result.Steps)
		require.Equal(t, "Player2", result.Game.Winner)
	})

	t.Run("agent error forfeits", func(t *testing.T) {
		broken := &scriptedAgent{fn: func(context.Context, *game.GameState) (game.Action, error) {
			return game.Action{}, errors.New("crashed")
		}}
		e, err := NewLocal(nil, []Agent{NewRandomAgent(1), broken}, Options{})
		require.NoError(t, err)

		result, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, game.PlayerA, result.Winner)
		require.Equal(t, ReasonInvalid, result.Reason)
		require.Equal(t, 1, result.Steps)
	})

	t.Run("expired credit forfeits", func(t *testing.T) {
		slow := &scriptedAgent{fn: func(ctx context.Context, state *game.GameState) (game.Action, error) {
			<-ctx.Done()
			return game.Action{}, ctx.Err()
		}}
		e, err := NewLocal(nil, []Agent{slow, NewRandomAgent(1)}, Options{TimeCredit: 20 * time.Millisecond})
		require.NoError(t, err)

		result, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, game.PlayerB, result.Winner)
		require.Equal(t, ReasonTimeout, result.Reason)
		require.Equal(t, []time.Duration{20 * time.Millisecond, 20 * time.Millisecond}, result.Trace.TimeLimits)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		quitter := &scriptedAgent{fn: func(context.Context, *game.GameState) (game.Action, error) {
			cancel()
			return game.Pass(), nil
		}}
		e, err := NewLocal(nil, []Agent{quitter, NewRandomAgent(1)}, Options{})
		require.NoError(t, err)

		_, err = e.Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("updates since previous turn", func(t *testing.T) {
		a := &scriptedAgent{fn: firstAction}
		b := &scriptedAgent{fn: firstAction}
		e, err := NewLocal(nil, []Agent{a, b}, Options{MaxSteps: 4})
		require.NoError(t, err)

		result, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, ReasonMaxSteps, result.Reason)

		require.Len(t, a.received, 2)
		require.Empty(t, a.received[0])
		require.Len(t, a.received[1], 2)
		require.Equal(t, game.PlayerA, a.received[1][0].Player)
		require.Equal(t, game.PlayerB, a.received[1][1].Player)

		require.Len(t, b.received, 2)
		require.Len(t, b.received[0], 1)
		require.Equal(t, game.PlayerA, b.received[0][0].Player)
		require.Len(t, b.received[1], 2)

		// The hash of the last update is the state the agent is asked about
		replayed := game.NewGameState(game.NewBoard())
		for _, update := range a.received[1] {
			next, err := replayed.Apply(update.Action)
			require.NoError(t, err)
			require.Equal(t, next.Hash(), update.Hash)
			replayed = next
		}
	})
}

func TestSearchAgents(t *testing.T) {
	mcts, err := NewAgent(config.Agent{Kind: config.MCTS, Goroutines: 2, Episodes: 30, Cutoff: 20, Evaluation: "surround"})
	require.NoError(t, err)
	alphabeta, err := NewAgent(config.Agent{Kind: config.AlphaBeta, Goroutines: 2, Depth: 1, Evaluation: "mobility", Seed: 5})
	require.NoError(t, err)

	e, err := NewLocal(nil, []Agent{mcts, alphabeta}, Options{MaxSteps: 12})
	require.NoError(t, err)

	result, err := e.Run(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, ReasonInvalid, result.Reason)
	require.NotEqual(t, ReasonTimeout, result.Reason)
	for _, move := range result.Moves {
		if move.Player == "Player1" {
			require.Equal(t, 30, move.Episodes)
		} else {
			require.Positive(t, move.Episodes)
		}
	}
}

func TestNewAgent(t *testing.T) {
	for _, kind := range []string{config.Random, config.MCTS, config.MCTSSample, config.AlphaBeta} {
		t.Run(kind, func(t *testing.T) {
			cfg := config.Agent{Kind: kind}
			cfg.SetDefaults()
			agent, err := NewAgent(cfg)
			require.NoError(t, err)
			require.NotNil(t, agent)
		})
	}

	_, err := NewAgent(config.Agent{Kind: "oracle", Evaluation: "surround"})
	require.Error(t, err)

	t.Run("unknown evaluation", func(t *testing.T) {
		cfg := config.Agent{Kind: config.AlphaBeta}
		cfg.SetDefaults()
		cfg.Evaluation = "magic"

		agent, err := NewAgent(cfg)
		require.ErrorContains(t, err, "magic")
		require.Nil(t, agent)
	})
}

func TestAdaptersRespectTimeLeft(t *testing.T) {
	state := game.NewGameState(game.NewBoard())

	t.Run("mcts", func(t *testing.T) {
		agent, err := NewAgent(config.Agent{Kind: config.MCTS, Goroutines: 2, Duration: 10 * time.Second, Cutoff: 5, Evaluation: "surround"})
		require.NoError(t, err)

		start := time.Now()
		_, _, err = agent.Play(context.Background(), state, nil, 20*time.Millisecond)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("alphabeta", func(t *testing.T) {
		agent, err := NewAgent(config.Agent{Kind: config.AlphaBeta, Goroutines: 1, Depth: 2, Evaluation: "surround"})
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err = agent.Play(ctx, state, nil, time.Second)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestTraceFile(t *testing.T) {
	e, err := NewLocal(nil, []Agent{NewRandomAgent(8), NewRandomAgent(9)}, Options{MaxSteps: 30})
	require.NoError(t, err)
	result, err := e.Run(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "trace.yaml")
	require.NoError(t, result.Trace.Write(path))

	loaded, err := LoadTrace(path)
	require.NoError(t, err)
	require.Equal(t, result.Trace.Winner, loaded.Winner)
	require.Equal(t, result.Trace.Reason, loaded.Reason)
	require.Len(t, loaded.Actions, len(result.Trace.Actions))

	board, err := loaded.Replay()
	require.NoError(t, err)
	require.Equal(t, result.Board.Percepts(), board.Percepts())
}

func TestReplayRejectsTamperedTrace(t *testing.T) {
	trace := NewTrace(game.NewBoard(), 0)
	trace.Add(game.PlayerA, game.MoveFrom(game.Origin, game.Coord{Q: 1, R: 0}).Encode(game.NewBoard()), time.Millisecond)

	_, err := trace.Replay()
	require.ErrorIs(t, err, game.ErrInvalidAction)
}
