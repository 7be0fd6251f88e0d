package game

import (
	"strings"

	"golang.org/x/exp/slices"
)

// TileKind tags the content of a known coordinate.
type TileKind int

const (
	EmptyTile TileKind = iota
	SingleTile
	StackTile
)

// Tile is the content of a known coordinate: empty, a single piece, or a
// stack of pieces ordered bottom to top. Only the top piece is active.
type Tile struct {
	stack []Piece
}

// Empty is the content of a known but unoccupied coordinate.
var Empty = Tile{}

// Single returns a tile holding one piece.
func Single(p Piece) Tile {
	return Tile{stack: []Piece{p}}
}

// Stack returns a tile holding pieces, bottom first.
func Stack(pieces ...Piece) Tile {
	return Tile{stack: slices.Clone(pieces)}
}

func (t Tile) Kind() TileKind {
	switch len(t.stack) {
	case 0:
		return EmptyTile
	case 1:
		return SingleTile
	default:
		return StackTile
	}
}

func (t Tile) IsEmpty() bool {
	return len(t.stack) == 0
}

func (t Tile) Occupied() bool {
	return len(t.stack) > 0
}

// Top returns the active piece, or NoPiece for an empty tile.
func (t Tile) Top() Piece {
	if len(t.stack) == 0 {
		return NoPiece
	}
	return t.stack[len(t.stack)-1]
}

// Height is the number of pieces on the tile.
func (t Tile) Height() int {
	return len(t.stack)
}

// Pieces returns a copy of the pieces, bottom first.
func (t Tile) Pieces() []Piece {
	return slices.Clone(t.stack)
}

// Contains reports whether p is anywhere in the tile, buried or not.
func (t Tile) Contains(p Piece) bool {
	return slices.Contains(t.stack, p)
}

// push returns the tile with p climbed on top. The stack is always
// reallocated so tiles never share a backing array.
func (t Tile) push(p Piece) Tile {
	return Tile{stack: append(slices.Clip(t.stack), p)}
}

// pop returns the tile without its top piece, and that piece.
func (t Tile) pop() (Tile, Piece) {
	n := len(t.stack)
	if n == 0 {
		return t, NoPiece
	}
	if n == 1 {
		return Empty, t.stack[0]
	}
	return Tile{stack: slices.Clone(t.stack[:n-1])}, t.stack[n-1]
}

func (t Tile) clone() Tile {
	if len(t.stack) == 0 {
		return Empty
	}
	return Tile{stack: slices.Clone(t.stack)}
}

func (t Tile) String() string {
	switch t.Kind() {
	case EmptyTile:
		return "Empty"
	case SingleTile:
		return t.stack[0].String()
	case StackTile:
		names := make([]string, len(t.stack))
		for i, p := range t.stack {
			names[i] = p.String()
		}
		return "[" + strings.Join(names, ", ") + "]"
	}
	return ""
}
