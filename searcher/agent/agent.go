package agent

import (
	"context"
	"surround/experiments/metrics"
	"surround/game"
	"surround/searcher"
)

// Agent turns a search over the current state into the move to play.
type Agent interface {
	// FindMove searches state until the search budget runs out or ctx is
	// done. updates are the moves played since the agent's previous call,
	// letting the search keep the matching subtree.
	FindMove(ctx context.Context, state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric)
}
