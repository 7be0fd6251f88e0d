package engine

import (
	"context"
	"errors"
	"surround/experiments/metrics"
	"surround/game"
	"time"
)

// Reasons recorded for a game that did not end on the board
const (
	ReasonTimeout  = "Opponent's time credit has expired."
	ReasonInvalid  = "Opponent has played an invalid action."
	ReasonMaxSteps = "Step limit reached."
)

var ErrTimeCreditExpired = errors.New("time credit expired")

// Agent chooses the actions of one player.
type Agent interface {
	// Play returns the action for the player to act in state. updates lists
	// the actions played since the agent's previous turn and timeLeft is its
	// remaining credit, 0 when unlimited. ctx expires with the credit.
	Play(ctx context.Context, state *game.GameState, updates []Update, timeLeft time.Duration) (game.Action, metrics.SearchMetric, error)
}

// Update is one action played during the game.
type Update struct {
	Player game.Player
	Action game.Action
	Hash   game.StateHash // Hash of the state the action produced
}

type Options struct {
	TimeCredit time.Duration // Per agent, 0 for unlimited
	MaxSteps   int           // 0 for no limit
}

// Result of a finished game.
type Result struct {
	Winner game.Player // 0 for a draw
	Reason string      // Empty when the game ended on the board
	Steps  int
	Board  *game.Board
	Trace  *Trace
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}

func winnerName(winner game.Player) string {
	if winner == 0 {
		return ""
	}
	return winner.String()
}
