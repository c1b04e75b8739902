package life

// Transition is the outcome of evaluating one generation: cells to create and
// cells to remove. Born and Killed never share a position.
type Transition struct {
	Born   []Position
	Killed []Position
}

// Empty reports whether the step changed nothing.
func (t Transition) Empty() bool { return len(t.Born) == 0 && len(t.Killed) == 0 }

// Births returns every dead position whose neighbour count equals the rule's
// upper bound.
func Births(counts NeighborCounts, live LiveSet, rule Rule) []Position {
	var out []Position
	for p, n := range counts {
		if rule.Born(n) && !live.Contains(p) {
			out = append(out, p)
		}
	}
	sortPositions(out)
	return out
}

// Deaths returns every live position that lies outside the world bound or
// whose neighbour count falls outside the survival band. A live cell with no
// counts entry has no live neighbours and always dies, whatever the band.
func Deaths(counts NeighborCounts, live LiveSet, rule Rule, bound WorldBound) []Position {
	var out []Position
	for p := range live {
		n, ok := counts[p]
		if bound.Exceeds(p) || !ok || !rule.Survives(n) {
			out = append(out, p)
		}
	}
	sortPositions(out)
	return out
}

// Evaluate runs both decisions against the same counts snapshot.
func Evaluate(counts NeighborCounts, live LiveSet, rule Rule, bound WorldBound) Transition {
	return Transition{
		Born:   Births(counts, live, rule),
		Killed: Deaths(counts, live, rule, bound),
	}
}

// Apply mutates live by removing killed cells and adding born ones.
func (t Transition) Apply(live LiveSet) {
	for _, p := range t.Killed {
		live.Remove(p)
	}
	for _, p := range t.Born {
		live.Add(p)
	}
}
