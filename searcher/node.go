package searcher

import (
	"surround/game"
)

type Node interface {
	// SelectOrExpand descends one level from the node, returning the child,
	// its state and whether the child was selected (true) or newly added.
	SelectOrExpand(state game.State) (child Node, childState game.State, selected bool)
	// Backup records an episode scored for player and returns the parent.
	Backup(player string, score float64) Node
	Policy() map[game.Move]float64
	applyLoss()
	stats() (player string, rewards float64, visits float64)
}

// computeReward converts a score obtained by scorer into the reward of
// player. Scores are zero-sum.
func computeReward(scorer string, score float64, player string) float64 {
	if scorer == player {
		return score
	}
	return -score
}
