package minimax

import (
	"context"
	"errors"
	"math"
	"surround/game"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/rand"
)

const DefaultDepth = 2

var ErrNoMoves = errors.New("no legal move to search")

type Options struct {
	Depth      int
	Goroutines int
	Evaluate   game.Evaluate
	// Seed shuffles the root moves so equal-valued moves are chosen at
	// random. Zero keeps the order of Successors.
	Seed uint64
}

type Result struct {
	Move  game.Move
	Value float64
	Nodes int
}

// Search runs a depth-limited alpha-beta search from state and returns the
// best move for the player to act. Root moves are searched concurrently,
// each on its own successor state. The search is abandoned with ctx's error
// once ctx is done.
func Search(ctx context.Context, state game.Tree, options Options) (Result, error) {
	if options.Depth <= 0 {
		options.Depth = DefaultDepth
	}
	if options.Goroutines <= 0 {
		options.Goroutines = 1
	}
	if options.Evaluate == nil {
		options.Evaluate = game.EvaluateSurround
	}

	successors := state.Successors()
	if len(successors) == 0 {
		return Result{}, ErrNoMoves
	}
	if options.Seed != 0 {
		rng := rand.New(rand.NewSource(options.Seed))
		rng.Shuffle(len(successors), func(i, j int) {
			successors[i], successors[j] = successors[j], successors[i]
		})
	}

	s := &searcher{ctx: ctx, maxDepth: options.Depth, evaluate: options.Evaluate}
	values := make([]float64, len(successors))
	sem := make(chan struct{}, options.Goroutines)

	var wg sync.WaitGroup
	for i, successor := range successors {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, child game.Tree) {
			defer wg.Done()
			defer func() { <-sem }()
			values[i] = -s.negamax(child, 1, math.Inf(-1), math.Inf(1))
		}(i, successor.State.(game.Tree))
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	best := 0
	for i := range values {
		if values[i] > values[best] {
			best = i
		}
	}
	return Result{
		Move:  successors[best].Move,
		Value: values[best],
		Nodes: int(s.nodes.Load()) + 1,
	}, nil
}

type searcher struct {
	ctx      context.Context
	maxDepth int
	evaluate game.Evaluate
	nodes    atomic.Int64
}

// negamax returns the value of state for the player to act in it.
func (s *searcher) negamax(state game.Tree, depth int, alpha, beta float64) float64 {
	s.nodes.Add(1)
	if state.Cutoff(depth, s.maxDepth) {
		return s.evaluate(state)
	}
	if s.ctx.Err() != nil {
		return 0 // Discarded by Search
	}

	successors := state.Successors()
	if len(successors) == 0 {
		return s.evaluate(state)
	}

	best := math.Inf(-1)
	for _, successor := range successors {
		value := -s.negamax(successor.State.(game.Tree), depth+1, -beta, -alpha)
		if value > best {
			best = value
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
