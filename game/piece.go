package game

import "fmt"

// Player identifies one side. PlayerA moves first.
type Player int8

const (
	PlayerA Player = 1
	PlayerB Player = -1
)

func (p Player) Opponent() Player {
	return -p
}

// String returns the player identifier used by the searcher and traces.
func (p Player) String() string {
	switch p {
	case PlayerA:
		return "Player1"
	case PlayerB:
		return "Player2"
	}
	return fmt.Sprintf("Player(%d)", int8(p))
}

// Archetype is the unsigned kind of a piece.
type Archetype int8

const (
	NoArchetype Archetype = iota
	Anchor
	Clinger
	Leaper
	Crawler
	Racer
)

// Archetypes lists every placeable archetype in placement order.
var Archetypes = []Archetype{Anchor, Clinger, Leaper, Crawler, Racer}

var archetypeNames = [...]string{"Empty", "Anchor", "Clinger", "Leaper", "Crawler", "Racer"}

// Allotment is the number of pieces of each archetype a player starts with.
var Allotment = map[Archetype]int{
	Anchor:  1,
	Clinger: 2,
	Leaper:  3,
	Crawler: 2,
	Racer:   3,
}

func (a Archetype) String() string {
	if a < 0 || int(a) >= len(archetypeNames) {
		return fmt.Sprintf("Archetype(%d)", int8(a))
	}
	return archetypeNames[a]
}

// Of returns the piece of this archetype owned by player.
func (a Archetype) Of(player Player) Piece {
	return Piece(int8(a) * int8(player))
}

// Piece is a signed archetype: the sign gives the owner (positive for
// PlayerA), the magnitude the archetype. Zero means no piece.
type Piece int8

const NoPiece Piece = 0

func (p Piece) Archetype() Archetype {
	if p < 0 {
		return Archetype(-p)
	}
	return Archetype(p)
}

// Owner returns the owning player, or 0 for NoPiece.
func (p Piece) Owner() Player {
	switch {
	case p > 0:
		return PlayerA
	case p < 0:
		return PlayerB
	}
	return 0
}

// OwnedBy reports whether the piece belongs to player.
func (p Piece) OwnedBy(player Player) bool {
	return p != NoPiece && p.Owner() == player
}

// Valid reports whether p encodes one of the five archetypes.
func (p Piece) Valid() bool {
	a := p.Archetype()
	return a >= Anchor && a <= Racer
}

func (p Piece) String() string {
	if p == NoPiece {
		return "Empty"
	}
	return fmt.Sprintf("%s (%s)", p.Archetype(), p.Owner())
}
