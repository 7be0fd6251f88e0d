package agent

import (
	"context"
	"math"
	"strings"
	"surround/experiments/metrics"
	"surround/game"
	"surround/searcher"
	"sync"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	mu          *sync.Mutex
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play during training. Moves
// are sampled from the visit distribution sharpened by temperature.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		mu:          &sync.Mutex{},
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a trainingAgent) FindMove(ctx context.Context, state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.SimulateContext(ctx, state, updates)
	policy = adjustTemperature(policy, a.temperature)

	a.mu.Lock()
	defer a.mu.Unlock()
	return sample(policy, a.rng.Float64()), metric
}

func adjustTemperature(policy map[game.Move]float64, temperature float64) map[game.Move]float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[game.Move]float64, len(policy))
	for move, visit := range policy {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[move] = prob
	}
	if sum == 0 {
		// No visits at all, fall back to uniform
		for move := range adjusted {
			adjusted[move] = 1.0 / float64(len(adjusted))
		}
		return adjusted
	}
	// Normalize
	for move := range adjusted {
		adjusted[move] /= sum
	}
	return adjusted
}

// sample walks the cumulative distribution in a fixed move order and returns
// the move whose interval contains sampled, a number in [0, 1).
func sample(policy map[game.Move]float64, sampled float64) game.Move {
	moves := make([]game.Move, 0, len(policy))
	for move := range policy {
		moves = append(moves, move)
	}
	slices.SortFunc(moves, func(a, b game.Move) int {
		return strings.Compare(a.String(), b.String())
	})

	cumulative := 0.0
	var lastMove game.Move
	for _, move := range moves {
		lastMove = move
		cumulative += policy[move]
		if sampled < cumulative {
			return move
		}
	}
	return lastMove // Fallback in case of rounding errors
}
