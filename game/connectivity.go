package game

// StaysConnectedWithout reports whether the occupied tiles remain one
// connected group once the top piece at pos is lifted. Lifting from a stack
// never disconnects anything since the tile stays occupied.
func (b *Board) StaysConnectedWithout(pos Coord) (bool, error) {
	if !b.Has(pos) {
		return false, &UnknownCoordinateError{Coord: pos}
	}
	return b.staysConnectedWithout(pos), nil
}

func (b *Board) staysConnectedWithout(pos Coord) bool {
	if b.tiles[pos].Kind() == StackTile {
		return true
	}

	remaining := make(map[Coord]bool, len(b.tiles))
	var start Coord
	for c, t := range b.tiles {
		if c != pos && t.Occupied() {
			remaining[c] = true
			start = c
		}
	}
	if len(remaining) == 0 {
		return true
	}

	// Plain BFS, nothing cached between calls.
	visited := map[Coord]bool{start: true}
	queue := []Coord{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range current.Neighbors() {
			if remaining[n] && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(remaining)
}

// IsIsolated reports whether candidate's only occupied neighbour is origin,
// i.e. landing there would leave a dangling tile once origin is vacated.
func (b *Board) IsIsolated(candidate, origin Coord) bool {
	occupied := 0
	for _, n := range candidate.Neighbors() {
		if !b.Occupied(n) {
			continue
		}
		if n != origin {
			return false
		}
		occupied++
	}
	return occupied == 1
}
