package game

import "golang.org/x/exp/slices"

// LineOfSight scans from origin in direction dir over a run of occupied
// tiles and returns the first empty tile past it. ok is false if the
// neighbour in that direction is not occupied or the run does not end on a
// known empty tile.
func (b *Board) LineOfSight(origin Coord, dir int) (Coord, bool) {
	pos := origin.Step(dir)
	run := 0
	for b.Occupied(pos) {
		pos = pos.Step(dir)
		run++
	}
	if run == 0 || !b.isEmpty(pos) {
		return Coord{}, false
	}
	return pos, true
}

// slideSteps returns the tiles a piece that started at origin may slide to
// from `from` in one step, in Directions order. When the origin tile will be
// vacated, tiles whose only support is the origin are rejected.
func (b *Board) slideSteps(from, origin Coord, vacates bool) []Coord {
	steps := make([]Coord, 0, NumDirections)
	for _, n := range from.Neighbors() {
		if !b.canSlide(from, n) {
			continue
		}
		if vacates && b.IsIsolated(n, origin) {
			continue
		}
		steps = append(steps, n)
	}
	return steps
}

func (b *Board) vacates(origin Coord) bool {
	return b.tiles[origin].Kind() == SingleTile
}

// PathsOfLength enumerates every simple path of exactly length slides
// starting at origin. Each path lists origin first. Paths never revisit a
// tile and every intermediate tile passes the liberty and isolation checks.
func (b *Board) PathsOfLength(origin Coord, length int) [][]Coord {
	if !b.Has(origin) || length <= 0 {
		return nil
	}
	vacates := b.vacates(origin)

	var paths [][]Coord
	stack := [][]Coord{{origin}}
	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(path) == length+1 {
			paths = append(paths, path)
			continue
		}
		steps := b.slideSteps(path[len(path)-1], origin, vacates)
		// Push in reverse so paths come out in Directions order.
		for i := len(steps) - 1; i >= 0; i-- {
			next := steps[i]
			if slices.Contains(path, next) {
				continue
			}
			extended := append(slices.Clip(path), next)
			stack = append(stack, extended)
		}
	}
	return paths
}

// Reachable returns every empty tile reachable from origin through any
// sequence of slides, origin excluded, ordered by q, then r.
func (b *Board) Reachable(origin Coord) []Coord {
	if !b.Has(origin) {
		return nil
	}
	vacates := b.vacates(origin)

	visited := map[Coord]bool{origin: true}
	queue := []Coord{origin}
	var reached []Coord
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range b.slideSteps(current, origin, vacates) {
			if visited[next] {
				continue
			}
			visited[next] = true
			reached = append(reached, next)
			queue = append(queue, next)
		}
	}
	slices.SortFunc(reached, compareCoords)
	return reached
}

// ShortestPath returns a shortest sequence of slides from `from` to `to`,
// excluding `from` and ending with `to`. It returns ErrNoPath when no
// liberty-respecting path exists.
func (b *Board) ShortestPath(from, to Coord) ([]Coord, error) {
	if !b.Has(from) {
		return nil, &UnknownCoordinateError{Coord: from}
	}
	if !b.Has(to) {
		return nil, &UnknownCoordinateError{Coord: to}
	}
	if from == to {
		return []Coord{}, nil
	}
	vacates := b.vacates(from)

	prev := map[Coord]Coord{}
	visited := map[Coord]bool{from: true}
	queue := []Coord{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == to {
			path := []Coord{to}
			for step := prev[to]; step != from; step = prev[step] {
				path = append(path, step)
			}
			slices.Reverse(path)
			return path, nil
		}
		for _, next := range b.slideSteps(current, from, vacates) {
			if visited[next] {
				continue
			}
			visited[next] = true
			prev[next] = current
			queue = append(queue, next)
		}
	}
	return nil, ErrNoPath
}

// PathExists answers whether `to` can be reached from `from` by slides.
func (b *Board) PathExists(from, to Coord) bool {
	_, err := b.ShortestPath(from, to)
	return err == nil
}
