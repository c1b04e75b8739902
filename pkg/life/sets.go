package life

// LiveSet holds every currently alive cell.
type LiveSet map[Position]struct{}

// NewLiveSet builds a set from the given positions. Duplicates collapse.
func NewLiveSet(ps ...Position) LiveSet {
	s := make(LiveSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

// Add marks p alive.
func (s LiveSet) Add(p Position) { s[p] = struct{}{} }

// Remove marks p dead.
func (s LiveSet) Remove(p Position) { delete(s, p) }

// Contains reports whether p is alive.
func (s LiveSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

// Len returns the population.
func (s LiveSet) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s LiveSet) Clone() LiveSet {
	out := make(LiveSet, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}

// Sorted returns the live positions ordered by Y then X.
func (s LiveSet) Sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sortPositions(out)
	return out
}

// Bounds returns the inclusive bounding box of the set. ok is false when the
// set is empty.
func (s LiveSet) Bounds() (lo, hi Position, ok bool) {
	for p := range s {
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi, ok
}

// NeighborCounts maps a position to how many of its eight neighbours are
// alive. Positions with no live neighbour are never stored.
type NeighborCounts map[Position]uint8
