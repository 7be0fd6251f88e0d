package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// newTestBoard builds a board holding pieces with nothing left to place.
// Frontier tiles are filled in.
func newTestBoard(t *testing.T, pieces map[Coord][]Piece) *Board {
	t.Helper()
	var p Percepts
	for c, stack := range pieces {
		p.Tiles = append(p.Tiles, TilePercept{At: c, Pieces: stack})
	}
	b, err := NewBoardFromPercepts(p)
	require.NoError(t, err)
	return b
}

// ringBoard has PlayerA's Anchor at the origin and five PlayerB pieces
// around it, leaving (1, 0) as a hole no piece can slide into.
func ringBoard(t *testing.T) *Board {
	return newTestBoard(t, map[Coord][]Piece{
		{0, 0}:  {Anchor.Of(PlayerA)},
		{1, -1}: {Leaper.Of(PlayerB)},
		{2, -1}: {Leaper.Of(PlayerB)},
		{2, 0}:  {Anchor.Of(PlayerB)},
		{1, 1}:  {Racer.Of(PlayerB)},
		{0, 1}:  {Racer.Of(PlayerB)},
	})
}

// playRandomGame plays up to steps random legal actions from a fresh board
// and calls check with every state reached, the first one included.
func playRandomGame(t *testing.T, seed uint64, steps int, check func(gs *GameState, chosen Action)) *GameState {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	gs := NewGameState(NewBoard())
	check(gs, Action{})
	for i := 0; i < steps; i++ {
		actions := gs.Actions()
		if len(actions) == 0 {
			break
		}
		action := actions[rng.Intn(len(actions))]
		next, err := gs.Apply(action)
		require.NoError(t, err, "generated action %s should be valid at step %d", action, gs.Step)
		gs = next
		check(gs, action)
	}
	return gs
}

// occupiedConnected reports whether the occupied tiles form one group.
func occupiedConnected(b *Board) bool {
	occupied := b.OccupiedCoords()
	if len(occupied) == 0 {
		return true
	}
	visited := map[Coord]bool{occupied[0]: true}
	queue := []Coord{occupied[0]}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range current.Neighbors() {
			if b.Occupied(n) && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(occupied)
}
