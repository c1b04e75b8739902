package life

// Pattern is a set of cells in lattice units relative to an anchor.
type Pattern struct {
	Name  string
	Cells [][2]int64
}

var (
	// Block is the 2x2 still life.
	Block = Pattern{Name: "block", Cells: [][2]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}
	// Blinker is the period-2 oscillator, horizontal phase.
	Blinker = Pattern{Name: "blinker", Cells: [][2]int64{{-1, 0}, {0, 0}, {1, 0}}}
	// Glider travels one cell diagonally every four generations.
	Glider = Pattern{Name: "glider", Cells: [][2]int64{{1, 2}, {2, 1}, {0, 0}, {1, 0}, {2, 0}}}
)

// Place adds the pattern to live with its anchor at the given position.
func (pt Pattern) Place(live LiveSet, anchor Position, pitch int64) {
	for _, c := range pt.Cells {
		live.Add(Position{X: anchor.X + c[0]*pitch, Y: anchor.Y + c[1]*pitch})
	}
}

// LiveSet returns the pattern as a fresh set anchored at anchor.
func (pt Pattern) LiveSet(anchor Position, pitch int64) LiveSet {
	live := make(LiveSet, len(pt.Cells))
	pt.Place(live, anchor, pitch)
	return live
}
