package metrics

import (
	"surround/game"
	"time"
)

// SearchMetric describes one decision made by a search agent.
type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Episodes     int // Simulations, or nodes visited by alpha-beta
	Cutoff       int // Rollout cutoff, or alpha-beta depth
	Evaluate     game.Evaluate
	FullPlayouts int // Rollouts that reached a finished game
	IsTreeReset  bool
}

// MoveMetric is one turn of a game.
type MoveMetric struct {
	Step   int
	Player string
	Action string
	SearchMetric
}

// GameMetric summarises a finished game.
type GameMetric struct {
	ID             string // Trace ID
	StartingPlayer string
	Winner         string // "" for a draw
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}
