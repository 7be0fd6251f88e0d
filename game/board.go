package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Origin is the only known coordinate of a fresh board.
var Origin = Coord{0, 0}

// Board is the sparse grid store: every known coordinate maps to its tile,
// and every occupied tile has its six neighbours known (the frontier).
// It also tracks how many pieces of each signed archetype remain to place.
//
// A Board is owned by a single caller. Clone before handing it to another
// goroutine.
type Board struct {
	tiles    map[Coord]Tile
	unplaced map[Piece]int
}

// NewBoard returns the starting board: one known Empty coordinate and the
// full allotment for both players.
func NewBoard() *Board {
	b := &Board{
		tiles:    map[Coord]Tile{Origin: Empty},
		unplaced: make(map[Piece]int, 2*len(Archetypes)),
	}
	for _, player := range []Player{PlayerA, PlayerB} {
		for _, a := range Archetypes {
			b.unplaced[a.Of(player)] = Allotment[a]
		}
	}
	return b
}

// Clone returns a deep copy sharing no mutable state with b.
func (b *Board) Clone() *Board {
	tiles := make(map[Coord]Tile, len(b.tiles))
	for c, t := range b.tiles {
		tiles[c] = t.clone()
	}
	unplaced := make(map[Piece]int, len(b.unplaced))
	for p, n := range b.unplaced {
		unplaced[p] = n
	}
	return &Board{tiles: tiles, unplaced: unplaced}
}

// Tile returns the content at c, or an *UnknownCoordinateError if c is not
// part of the grid.
func (b *Board) Tile(c Coord) (Tile, error) {
	t, ok := b.tiles[c]
	if !ok {
		return Empty, &UnknownCoordinateError{Coord: c}
	}
	return t, nil
}

// Has reports whether c is a known coordinate.
func (b *Board) Has(c Coord) bool {
	_, ok := b.tiles[c]
	return ok
}

// Occupied reports whether c is known and holds at least one piece.
func (b *Board) Occupied(c Coord) bool {
	return b.tiles[c].Occupied()
}

// isEmpty reports whether c is known and holds no piece.
func (b *Board) isEmpty(c Coord) bool {
	t, ok := b.tiles[c]
	return ok && t.IsEmpty()
}

// Top returns the active piece at c, NoPiece if empty or unknown.
func (b *Board) Top(c Coord) Piece {
	return b.tiles[c].Top()
}

// Unplaced returns how many pieces p remain to be placed.
func (b *Board) Unplaced(p Piece) int {
	return b.unplaced[p]
}

// UnplacedCounts returns a copy of the remaining counts.
func (b *Board) UnplacedCounts() map[Piece]int {
	out := make(map[Piece]int, len(b.unplaced))
	for p, n := range b.unplaced {
		out[p] = n
	}
	return out
}

// Len is the number of known coordinates.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Coords returns every known coordinate ordered by q, then r.
func (b *Board) Coords() []Coord {
	coords := make([]Coord, 0, len(b.tiles))
	for c := range b.tiles {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, compareCoords)
	return coords
}

// OccupiedCoords returns the occupied coordinates ordered by q, then r.
func (b *Board) OccupiedCoords() []Coord {
	var coords []Coord
	for c, t := range b.tiles {
		if t.Occupied() {
			coords = append(coords, c)
		}
	}
	slices.SortFunc(coords, compareCoords)
	return coords
}

// EmptyTiles returns the known empty coordinates ordered by q, then r.
func (b *Board) EmptyTiles() []Coord {
	var coords []Coord
	for c, t := range b.tiles {
		if t.IsEmpty() {
			coords = append(coords, c)
		}
	}
	slices.SortFunc(coords, compareCoords)
	return coords
}

// OccupiedNeighbors returns the occupied neighbours of c in Directions order.
func (b *Board) OccupiedNeighbors(c Coord) []Coord {
	out := make([]Coord, 0, NumDirections)
	for _, n := range c.Neighbors() {
		if b.Occupied(n) {
			out = append(out, n)
		}
	}
	return out
}

func (b *Board) countOccupiedNeighbors(c Coord) int {
	count := 0
	for _, n := range c.Neighbors() {
		if b.Occupied(n) {
			count++
		}
	}
	return count
}

// AnchorPosition returns the tile holding player's Anchor, buried or not.
func (b *Board) AnchorPosition(player Player) (Coord, bool) {
	anchor := Anchor.Of(player)
	for c, t := range b.tiles {
		if t.Contains(anchor) {
			return c, true
		}
	}
	return Coord{}, false
}

// AnchorPlaced reports whether player has no Anchor left to place.
func (b *Board) AnchorPlaced(player Player) bool {
	return b.unplaced[Anchor.Of(player)] == 0
}

func (b *Board) set(c Coord, t Tile) {
	b.tiles[c] = t
}

// insertFrontier makes every neighbour of c known.
func (b *Board) insertFrontier(c Coord) {
	for _, n := range c.Neighbors() {
		if _, ok := b.tiles[n]; !ok {
			b.tiles[n] = Empty
		}
	}
}

// shrinkFrontier forgets every empty neighbour of the vacated tile that no
// longer touches an occupied tile.
func (b *Board) shrinkFrontier(vacated Coord) {
	for _, n := range vacated.Neighbors() {
		if b.isEmpty(n) && b.countOccupiedNeighbors(n) == 0 {
			delete(b.tiles, n)
		}
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for _, player := range []Player{PlayerA, PlayerB} {
		fmt.Fprintf(&sb, "UNPLACED %s:", player)
		for _, a := range Archetypes {
			fmt.Fprintf(&sb, " (%s: %d);", a, b.unplaced[a.Of(player)])
		}
		sb.WriteString("\n")
	}
	sb.WriteString("PLACED PIECES\n")
	for _, c := range b.OccupiedCoords() {
		fmt.Fprintf(&sb, "%s: %s\n", c, b.tiles[c])
	}
	return sb.String()
}
