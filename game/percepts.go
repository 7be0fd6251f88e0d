package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Percepts is an external snapshot of a board, as handed to agents and
// stored in traces.
type Percepts struct {
	Tiles    []TilePercept     `yaml:"tiles"`
	Unplaced []UnplacedPercept `yaml:"unplaced"`
}

// TilePercept is one known coordinate with its pieces, bottom first. An
// empty list is an Empty tile.
type TilePercept struct {
	At     Coord   `yaml:"at,flow"`
	Pieces []Piece `yaml:"pieces,flow"`
}

type UnplacedPercept struct {
	Piece Piece `yaml:"piece"`
	Count int   `yaml:"count"`
}

// Percepts exports b. The snapshot shares nothing with b.
func (b *Board) Percepts() Percepts {
	var p Percepts
	for _, c := range b.Coords() {
		p.Tiles = append(p.Tiles, TilePercept{At: c, Pieces: b.tiles[c].Pieces()})
	}
	for _, player := range []Player{PlayerA, PlayerB} {
		for _, a := range Archetypes {
			piece := a.Of(player)
			p.Unplaced = append(p.Unplaced, UnplacedPercept{Piece: piece, Count: b.unplaced[piece]})
		}
	}
	return p
}

// NewBoardFromPercepts rebuilds a board from a snapshot. Missing frontier
// tiles around occupied ones are added as Empty. An empty snapshot gives the
// starting board's single Origin tile with no pieces left to place unless
// the snapshot lists them.
func NewBoardFromPercepts(p Percepts) (*Board, error) {
	b := &Board{
		tiles:    make(map[Coord]Tile, len(p.Tiles)),
		unplaced: make(map[Piece]int, 2*len(Archetypes)),
	}
	for _, u := range p.Unplaced {
		if !u.Piece.Valid() {
			return nil, fmt.Errorf("percepts: invalid unplaced piece %d", u.Piece)
		}
		if u.Count < 0 {
			return nil, fmt.Errorf("percepts: negative count %d for %s", u.Count, u.Piece)
		}
		b.unplaced[u.Piece] = u.Count
	}
	for _, t := range p.Tiles {
		if b.Has(t.At) {
			return nil, fmt.Errorf("percepts: duplicate tile %s", t.At)
		}
		for _, piece := range t.Pieces {
			if !piece.Valid() {
				return nil, fmt.Errorf("percepts: invalid piece %d at %s", piece, t.At)
			}
		}
		b.set(t.At, Stack(t.Pieces...).clone())
	}
	if len(b.tiles) == 0 {
		b.set(Origin, Empty)
	}
	for _, c := range b.OccupiedCoords() {
		b.insertFrontier(c)
	}
	return b, nil
}

// LoadPercepts reads a YAML snapshot from path.
func LoadPercepts(path string) (Percepts, error) {
	var p Percepts
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read percepts: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse percepts: %w", err)
	}
	return p, nil
}
