package agent

import (
	"context"
	"surround/experiments/metrics"
	"surround/game"
	"surround/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(ctx context.Context, state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.SimulateContext(ctx, state, updates)
	return findMax(policy), metric
}

// findMax picks the most visited move. Ties go to the move with the smallest
// string form so the choice does not depend on map order.
func findMax(policy map[game.Move]float64) game.Move {
	var maxMove game.Move
	maxVisit := -1.0
	for move, visit := range policy {
		if visit > maxVisit || (visit == maxVisit && move.String() < maxMove.String()) {
			maxVisit = visit
			maxMove = move
		}
	}
	return maxMove
}
