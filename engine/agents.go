package engine

import (
	"context"
	"fmt"
	"surround/config"
	"surround/experiments/metrics"
	"surround/game"
	"surround/minimax"
	"surround/searcher"
	"surround/searcher/agent"
	"time"

	"golang.org/x/exp/rand"
)

// NewAgent builds the agent described by cfg.
func NewAgent(cfg config.Agent) (Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	evaluate, err := cfg.EvaluateFn()
	if err != nil {
		return nil, err
	}

	switch cfg.Kind {
	case config.Random:
		return NewRandomAgent(cfg.Seed), nil
	case config.MCTS:
		return &MCTSAdapter{InternalAgent: agent.NewEvaluationAgent(NewMCTS(cfg, evaluate))}, nil
	case config.MCTSSample:
		return &MCTSAdapter{InternalAgent: agent.NewTrainingAgent(NewMCTS(cfg, evaluate), cfg.Temperature, cfg.Seed)}, nil
	case config.AlphaBeta:
		return &MinimaxAdapter{Options: minimax.Options{
			Depth:      cfg.Depth,
			Goroutines: cfg.Goroutines,
			Evaluate:   evaluate,
			Seed:       cfg.Seed,
		}}, nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", cfg.Kind)
}

// NewMCTS returns a searcher configured by cfg, collecting metrics.
func NewMCTS(cfg config.Agent, evaluate game.Evaluate) *searcher.MCTS {
	options := []searcher.Option{}

	if cfg.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(cfg.Episodes))
	}
	if cfg.Duration > 0 {
		options = append(options, searcher.WithDuration(cfg.Duration))
	}
	if cfg.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(cfg.Cutoff))
	}
	if evaluate != nil {
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(cfg.Goroutines, options...)
}

// RandomAgent plays a uniformly random legal action.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Play(_ context.Context, state *game.GameState, _ []Update, _ time.Duration) (game.Action, metrics.SearchMetric, error) {
	actions := state.Actions()
	if len(actions) == 0 {
		return game.Action{}, metrics.SearchMetric{}, fmt.Errorf("no legal action at step %d", state.Step)
	}
	return actions[a.rng.Intn(len(actions))], metrics.SearchMetric{}, nil
}

// MCTSAdapter feeds the game's updates to a tree-search agent as a lineage
// so the agent can keep its tree between turns.
type MCTSAdapter struct {
	InternalAgent agent.Agent
}

func (ma *MCTSAdapter) Play(ctx context.Context, state *game.GameState, updates []Update, timeLeft time.Duration) (game.Action, metrics.SearchMetric, error) {
	if timeLeft > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeLeft)
		defer cancel()
	}

	segments := make([]searcher.Segment, len(updates))
	for i, update := range updates {
		segments[i] = searcher.Segment{
			Move:      update.Action,
			StateHash: update.Hash,
		}
	}
	candidate, metric := ma.InternalAgent.FindMove(ctx, state, segments)
	if err := ctx.Err(); err != nil {
		return game.Action{}, metric, err
	}

	action, ok := candidate.(game.Action)
	if !ok {
		return game.Action{}, metric, fmt.Errorf("search returned unexpected move %v", candidate)
	}
	return action, metric, nil
}

// MinimaxAdapter plays the result of a depth-limited alpha-beta search.
type MinimaxAdapter struct {
	Options minimax.Options
}

func (ma *MinimaxAdapter) Play(ctx context.Context, state *game.GameState, _ []Update, timeLeft time.Duration) (game.Action, metrics.SearchMetric, error) {
	if timeLeft > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeLeft)
		defer cancel()
	}

	options := ma.Options
	if options.Seed != 0 {
		options.Seed += uint64(state.Step)
	}

	start := time.Now()
	result, err := minimax.Search(ctx, state, options)
	metric := metrics.SearchMetric{
		Goroutines: options.Goroutines,
		Duration:   time.Since(start),
		Episodes:   result.Nodes,
		Cutoff:     options.Depth,
		Evaluate:   options.Evaluate,
	}
	if err != nil {
		return game.Action{}, metric, fmt.Errorf("step %d: %w", state.Step, err)
	}

	action, ok := result.Move.(game.Action)
	if !ok {
		return game.Action{}, metric, fmt.Errorf("search returned unexpected move %v", result.Move)
	}
	return action, metric, nil
}
