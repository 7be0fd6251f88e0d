package game

// Flanks returns the two tiles bordering the edge between adjacent tiles p
// and q. ok is false when p and q are not adjacent.
func Flanks(p, q Coord) (left, right Coord, ok bool) {
	dir := p.DirectionTo(q)
	if dir < 0 {
		return Coord{}, Coord{}, false
	}
	left = p.Step((dir + 1) % NumDirections)
	right = p.Step((dir + NumDirections - 1) % NumDirections)
	return left, right, true
}

// HasLiberty reports whether a piece may squeeze through the edge between
// p and q: at least one flank must be unknown or empty. The result only
// depends on the unordered pair.
func (b *Board) HasLiberty(p, q Coord) (bool, error) {
	if !b.Has(p) {
		return false, &UnknownCoordinateError{Coord: p}
	}
	if !b.Has(q) {
		return false, &UnknownCoordinateError{Coord: q}
	}
	return b.hasLiberty(p, q), nil
}

func (b *Board) hasLiberty(p, q Coord) bool {
	left, right, ok := Flanks(p, q)
	if !ok {
		return false
	}
	return !b.Occupied(left) || !b.Occupied(right)
}

// canSlide reports whether a single slide step from p into q is allowed:
// q must be a known empty tile and the edge must have liberty.
func (b *Board) canSlide(p, q Coord) bool {
	return b.isEmpty(q) && b.hasLiberty(p, q)
}
