package game

import "golang.org/x/exp/slices"

// crawlerSteps is the exact number of slides a Crawler makes.
const crawlerSteps = 3

// Anchor deployment deadline: a player who reaches one of these steps with
// the Anchor still in hand must place it.
const (
	anchorDeadlineA = 7
	anchorDeadlineB = 8
)

// MovesFrom returns the destinations of the top piece at origin, ordered
// deterministically. A piece whose removal would split the occupied tiles
// has no moves.
func (b *Board) MovesFrom(origin Coord) []Coord {
	piece := b.Top(origin)
	if piece == NoPiece || !b.staysConnectedWithout(origin) {
		return nil
	}
	switch piece.Archetype() {
	case Anchor:
		return b.anchorMoves(origin)
	case Clinger:
		return b.clingerMoves(origin)
	case Leaper:
		return b.leaperMoves(origin)
	case Crawler:
		return b.crawlerMoves(origin)
	case Racer:
		return b.Reachable(origin)
	}
	return nil
}

func (b *Board) anchorMoves(origin Coord) []Coord {
	return b.slideSteps(origin, origin, b.vacates(origin))
}

// clingerMoves ignores liberty and may climb onto any occupied neighbour.
func (b *Board) clingerMoves(origin Coord) []Coord {
	vacates := b.vacates(origin)
	moves := make([]Coord, 0, NumDirections)
	for _, n := range origin.Neighbors() {
		if !b.Has(n) {
			continue
		}
		if b.isEmpty(n) && vacates && b.IsIsolated(n, origin) {
			continue
		}
		moves = append(moves, n)
	}
	return moves
}

func (b *Board) leaperMoves(origin Coord) []Coord {
	moves := make([]Coord, 0, NumDirections)
	for dir := 0; dir < NumDirections; dir++ {
		if dest, ok := b.LineOfSight(origin, dir); ok {
			moves = append(moves, dest)
		}
	}
	return moves
}

// crawlerMoves returns the distinct endpoints of every exact-length path.
func (b *Board) crawlerMoves(origin Coord) []Coord {
	var moves []Coord
	for _, path := range b.PathsOfLength(origin, crawlerSteps) {
		end := path[len(path)-1]
		if !slices.Contains(moves, end) {
			moves = append(moves, end)
		}
	}
	slices.SortFunc(moves, compareCoords)
	return moves
}

// Placements returns the tiles where player may put a new piece at step.
// The first two steps accept any empty tile; afterwards the tile must touch
// a friendly top piece and no opposing one.
func (b *Board) Placements(player Player, step int) []Coord {
	empty := b.EmptyTiles()
	if step <= 2 {
		return empty
	}
	placements := empty[:0]
	for _, c := range empty {
		if b.placementAllowed(c, player) {
			placements = append(placements, c)
		}
	}
	return placements
}

func (b *Board) placementAllowed(c Coord, player Player) bool {
	friendly := false
	for _, n := range c.Neighbors() {
		top := b.Top(n)
		if top == NoPiece {
			continue
		}
		if !top.OwnedBy(player) {
			return false
		}
		friendly = true
	}
	return friendly
}

// mustPlaceAnchor reports whether the deployment deadline restricts player
// to placing the Anchor at step.
func (b *Board) mustPlaceAnchor(player Player, step int) bool {
	return (step == anchorDeadlineA || step == anchorDeadlineB) && !b.AnchorPlaced(player)
}

// Actions returns every legal action for player at step: placements by
// archetype then destination, followed by moves by origin then
// destination. The result is [Pass] when nothing else is legal.
func (b *Board) Actions(player Player, step int) []Action {
	placements := b.Placements(player, step)
	var actions []Action

	if b.mustPlaceAnchor(player, step) {
		anchor := Anchor.Of(player)
		for _, to := range placements {
			actions = append(actions, Place(anchor, to))
		}
	} else {
		for _, a := range Archetypes {
			piece := a.Of(player)
			if b.unplaced[piece] == 0 {
				continue
			}
			for _, to := range placements {
				actions = append(actions, Place(piece, to))
			}
		}
		if b.AnchorPlaced(player) {
			for _, from := range b.OccupiedCoords() {
				if !b.Top(from).OwnedBy(player) {
					continue
				}
				for _, to := range b.MovesFrom(from) {
					actions = append(actions, MoveFrom(from, to))
				}
			}
		}
	}

	if len(actions) == 0 {
		return []Action{Pass()}
	}
	return actions
}
