package game

import (
	"fmt"
)

// ActionKind tags an Action.
type ActionKind int

const (
	PlaceAction ActionKind = iota
	MoveAction
	PassAction
)

// Wire tags of the external (kind, first, second) triple.
const (
	placeTag = "P"
	moveTag  = "M"
	passTag  = "S"
)

func (k ActionKind) String() string {
	switch k {
	case PlaceAction:
		return "Place"
	case MoveAction:
		return "Move"
	case PassAction:
		return "Pass"
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is a placement of an unplaced piece, a move of a piece already on
// the board, or a pass. Actions are comparable values.
type Action struct {
	Kind  ActionKind
	Piece Piece // placed piece, PlaceAction only
	From  Coord // origin, MoveAction only
	To    Coord // destination, PlaceAction and MoveAction
}

// Place returns the action placing piece at to.
func Place(piece Piece, to Coord) Action {
	return Action{Kind: PlaceAction, Piece: piece, To: to}
}

// MoveFrom returns the action moving the top piece at from to to.
func MoveFrom(from, to Coord) Action {
	return Action{Kind: MoveAction, From: from, To: to}
}

// Pass returns the action played when nothing else is legal.
func Pass() Action {
	return Action{Kind: PassAction}
}

func (a Action) String() string {
	switch a.Kind {
	case PlaceAction:
		return fmt.Sprintf("Place %s at %s", a.Piece, a.To)
	case MoveAction:
		return fmt.Sprintf("Move %s->%s", a.From, a.To)
	case PassAction:
		return "Pass"
	}
	return fmt.Sprintf("Action(%d)", int(a.Kind))
}

// EncodedAction is the external triple: a kind tag, a first operand that is
// either the origin (move) or the piece descriptor (place, Q holds the
// signed piece and R the remaining count), and the destination.
type EncodedAction struct {
	Kind   string `yaml:"kind" json:"kind"`
	First  Coord  `yaml:"first" json:"first"`
	Second Coord  `yaml:"second" json:"second"`
}

// Encode converts a to its external triple. Placements carry the number of
// pieces of that kind still unplaced on b before the action.
func (a Action) Encode(b *Board) EncodedAction {
	switch a.Kind {
	case PlaceAction:
		return EncodedAction{Kind: placeTag, First: Coord{int(a.Piece), b.Unplaced(a.Piece)}, Second: a.To}
	case MoveAction:
		return EncodedAction{Kind: moveTag, First: a.From, Second: a.To}
	default:
		return EncodedAction{Kind: passTag}
	}
}

// Decode converts the external triple back into an Action.
func (e EncodedAction) Decode() (Action, error) {
	return DecodeAction(e.Kind, e.First, e.Second)
}

// DecodeAction builds an Action from the (kind, first, second) triple.
func DecodeAction(kind string, first, second Coord) (Action, error) {
	switch kind {
	case placeTag:
		piece := Piece(first.Q)
		if !piece.Valid() {
			return Action{}, fmt.Errorf("decode action: invalid piece %d", first.Q)
		}
		return Place(piece, second), nil
	case moveTag:
		return MoveFrom(first, second), nil
	case passTag:
		return Pass(), nil
	}
	return Action{}, fmt.Errorf("decode action: unknown kind %q", kind)
}
