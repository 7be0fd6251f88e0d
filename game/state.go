package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is one turn of a game: the board, the player to act and the
// global step number, starting at 1.
type GameState struct {
	Board   *Board
	Current Player
	Step    int
}

// NewGameState starts a game on board with PlayerA to play step 1.
func NewGameState(board *Board) *GameState {
	return &GameState{
		Board:   board,
		Current: PlayerA,
		Step:    1,
	}
}

func (gs *GameState) Copy() *GameState {
	return &GameState{
		Board:   gs.Board.Clone(),
		Current: gs.Current,
		Step:    gs.Step,
	}
}

// Player returns the identifier of the current player.
func (gs *GameState) Player() string {
	return gs.Current.String()
}

// Actions returns the legal actions of the current player, or nil once the
// game is over.
func (gs *GameState) Actions() []Action {
	if gs.Board.IsFinished() {
		return nil
	}
	return gs.Board.Actions(gs.Current, gs.Step)
}

// LegalMoves returns all legal moves for the current player.
func (gs *GameState) LegalMoves() []Move {
	actions := gs.Actions()
	if actions == nil {
		return nil
	}
	moves := make([]Move, len(actions))
	for i, action := range actions {
		moves[i] = action
	}
	return moves
}

// Apply returns the state reached by action. gs is left untouched, also when
// the action is refused.
func (gs *GameState) Apply(action Action) (*GameState, error) {
	board := gs.Board.Clone()
	if _, err := board.Execute(action, gs.Current, gs.Step); err != nil {
		return nil, err
	}
	return &GameState{
		Board:   board,
		Current: gs.Current.Opponent(),
		Step:    gs.Step + 1,
	}, nil
}

func (gs *GameState) Play(move Move) State {
	action, ok := move.(Action)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}
	next, err := gs.Apply(action)
	if err != nil {
		panic(err)
	}
	return next
}

// Winner returns the identifier of the winning player, "" while the game is
// running or after a level finish.
func (gs *GameState) Winner() string {
	if winner := gs.Board.Winner(); winner != 0 {
		return winner.String()
	}
	return ""
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Current))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Step))

	// Tiles in coordinate order so equal boards hash equally
	for _, c := range gs.Board.Coords() {
		tile := gs.Board.tiles[c]
		binary.Write(hasher, binary.LittleEndian, int64(c.Q))
		binary.Write(hasher, binary.LittleEndian, int64(c.R))
		binary.Write(hasher, binary.LittleEndian, int64(tile.Height()))
		for _, p := range tile.stack {
			binary.Write(hasher, binary.LittleEndian, int8(p))
		}
	}

	for _, player := range []Player{PlayerA, PlayerB} {
		for _, a := range Archetypes {
			binary.Write(hasher, binary.LittleEndian, int64(gs.Board.unplaced[a.Of(player)]))
		}
	}

	return StateHash(hasher.Sum64())
}

// Successors returns every legal action paired with the state it leads to,
// in the order of Actions.
func (gs *GameState) Successors() []Successor {
	actions := gs.Actions()
	successors := make([]Successor, 0, len(actions))
	for _, action := range actions {
		next, err := gs.Apply(action)
		if err != nil {
			panic(err)
		}
		successors = append(successors, Successor{Move: action, State: next})
	}
	return successors
}

// Cutoff reports whether a depth-limited search should stop descending at gs.
func (gs *GameState) Cutoff(depth, maxDepth int) bool {
	return depth >= maxDepth || gs.Board.IsFinished()
}

func (gs *GameState) String() string {
	return fmt.Sprintf("step %d, %s to play\n%s", gs.Step, gs.Current, gs.Board)
}
