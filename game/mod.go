package game

import "fmt"

// Move is an opaque, comparable move understood by the State that produced
// it. Searchers key their trees on it.
type Move interface {
	fmt.Stringer
}

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() string
}

// Successor pairs a move with the state it leads to.
type Successor struct {
	Move  Move
	State State
}

// Tree is a State that can enumerate its children and tell a depth-limited
// search where to stop.
type Tree interface {
	State
	Successors() []Successor
	Cutoff(depth, maxDepth int) bool
}

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64
