package game

import "fmt"

// Coord is an axial hex coordinate (q, r).
type Coord struct {
	Q int `yaml:"q" json:"q"`
	R int `yaml:"r" json:"r"`
}

// NumDirections is the number of hex neighbours of a tile.
const NumDirections = 6

// Directions are the six axial unit vectors. Direction i and i+3 are opposite,
// and the flanks of an edge in direction i lie in directions i-1 and i+1.
var Directions = [NumDirections]Coord{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

func (c Coord) Add(d Coord) Coord {
	return Coord{c.Q + d.Q, c.R + d.R}
}

// Step returns the neighbour of c in direction dir.
func (c Coord) Step(dir int) Coord {
	return c.Add(Directions[dir])
}

// Neighbors returns the six neighbours of c, in Directions order.
func (c Coord) Neighbors() [NumDirections]Coord {
	var out [NumDirections]Coord
	for i, d := range Directions {
		out[i] = c.Add(d)
	}
	return out
}

// DirectionTo returns the direction index leading from c to the adjacent
// coordinate b, or -1 if the two are not adjacent.
func (c Coord) DirectionTo(b Coord) int {
	delta := Coord{b.Q - c.Q, b.R - c.R}
	for i, d := range Directions {
		if d == delta {
			return i
		}
	}
	return -1
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Q, c.R)
}

// Distance returns the hex distance between a and b.
func Distance(a, b Coord) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// Adjacent reports whether a and b are neighbours.
func Adjacent(a, b Coord) bool {
	return Distance(a, b) == 1
}

// compareCoords orders coordinates by q, then r.
func compareCoords(a, b Coord) int {
	if a.Q != b.Q {
		return a.Q - b.Q
	}
	return a.R - b.R
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
