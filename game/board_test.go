package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, 1, b.Len(), "Fresh board should know a single coordinate")
	tile, err := b.Tile(Origin)
	require.NoError(t, err)
	require.Equal(t, EmptyTile, tile.Kind())
	for _, player := range []Player{PlayerA, PlayerB} {
		for _, a := range Archetypes {
			require.Equal(t, Allotment[a], b.Unplaced(a.Of(player)))
		}
	}
}

func TestBoardTile(t *testing.T) {
	t.Run("unknown coordinate is an error, not an empty tile", func(t *testing.T) {
		b := NewBoard()

		_, err := b.Tile(Coord{5, 5})

		require.ErrorIs(t, err, ErrUnknownCoordinate)
		var unknown *UnknownCoordinateError
		require.ErrorAs(t, err, &unknown)
		require.Equal(t, Coord{5, 5}, unknown.Coord)
	})

	t.Run("stack keeps only the top active", func(t *testing.T) {
		b := newTestBoard(t, map[Coord][]Piece{
			Origin: {Anchor.Of(PlayerA), Clinger.Of(PlayerB)},
		})

		tile, err := b.Tile(Origin)
		require.NoError(t, err)
		require.Equal(t, StackTile, tile.Kind())
		require.Equal(t, Clinger.Of(PlayerB), b.Top(Origin))
		require.True(t, tile.Contains(Anchor.Of(PlayerA)))
		pos, ok := b.AnchorPosition(PlayerA)
		require.True(t, ok, "Buried Anchor should still be found")
		require.Equal(t, Origin, pos)
	})
}

func TestBoardClone(t *testing.T) {
	b := newTestBoard(t, map[Coord][]Piece{
		Origin: {Anchor.Of(PlayerA), Clinger.Of(PlayerB)},
		{1, 0}: {Anchor.Of(PlayerB)},
	})
	b.unplaced[Racer.Of(PlayerA)] = 2

	clone := b.Clone()
	require.Equal(t, b, clone)

	clone.set(Origin, clone.tiles[Origin].push(Leaper.Of(PlayerA)))
	clone.unplaced[Racer.Of(PlayerA)]--
	clone.set(Coord{9, 9}, Empty)

	require.Equal(t, Clinger.Of(PlayerB), b.Top(Origin), "Original stack should be untouched")
	require.Equal(t, 2, b.tiles[Origin].Height())
	require.Equal(t, 2, b.Unplaced(Racer.Of(PlayerA)))
	require.False(t, b.Has(Coord{9, 9}))
}

func TestFrontier(t *testing.T) {
	t.Run("placing makes every neighbour known", func(t *testing.T) {
		b := NewBoard()

		_, err := b.Execute(Place(Anchor.Of(PlayerA), Origin), PlayerA, 1)

		require.NoError(t, err)
		require.Equal(t, 7, b.Len())
		for _, n := range Origin.Neighbors() {
			require.True(t, b.Has(n))
		}
	})

	t.Run("vacating forgets empty tiles left without occupied neighbours", func(t *testing.T) {
		b := newTestBoard(t, map[Coord][]Piece{
			{0, 0}:  {Anchor.Of(PlayerA)},
			{1, 0}:  {Anchor.Of(PlayerB)},
			{-1, 0}: {Clinger.Of(PlayerA)},
		})

		_, err := b.Execute(MoveFrom(Coord{-1, 0}, Origin), PlayerA, 9)

		require.NoError(t, err)
		require.True(t, b.Has(Coord{-1, 0}), "Vacated tile still touches the origin stack")
		require.False(t, b.Has(Coord{-2, 0}))
		require.False(t, b.Has(Coord{-1, -1}))
		require.False(t, b.Has(Coord{-2, 1}))
		require.True(t, b.Has(Coord{0, -1}))
		require.True(t, b.Has(Coord{-1, 1}))
	})

	t.Run("random games keep the frontier tight", func(t *testing.T) {
		for seed := uint64(1); seed <= 5; seed++ {
			playRandomGame(t, seed, 60, func(gs *GameState, _ Action) {
				b := gs.Board
				for _, c := range b.OccupiedCoords() {
					for _, n := range c.Neighbors() {
						require.True(t, b.Has(n), "Neighbour %s of occupied %s should be known", n, c)
					}
				}
				if len(b.OccupiedCoords()) == 0 {
					return
				}
				for _, c := range b.EmptyTiles() {
					require.NotZero(t, b.countOccupiedNeighbors(c), "Empty %s should touch an occupied tile", c)
				}
			})
		}
	})
}
