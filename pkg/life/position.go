package life

import (
	"math"
	"sort"
)

// Position identifies a lattice cell. Coordinates are in world units, so
// neighbouring cells differ by the lattice pitch rather than by one.
type Position struct {
	X, Y int64
}

// Direction is one of the eight compass offsets around a cell.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists every compass offset in clockwise order starting at North.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// unit deltas; y grows northwards like the world coordinates of the renderer camera.
var directionDeltas = [8][2]int64{
	North:     {0, 1},
	NorthEast: {1, 1},
	East:      {1, 0},
	SouthEast: {1, -1},
	South:     {0, -1},
	SouthWest: {-1, -1},
	West:      {-1, 0},
	NorthWest: {-1, 1},
}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "?"
	}
	return directionNames[d]
}

// Delta returns the unit lattice step for the direction.
func (d Direction) Delta() (dx, dy int64) {
	v := directionDeltas[d&7]
	return v[0], v[1]
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction { return (d + 4) & 7 }

// Offset returns the neighbouring position one cell away in direction d.
func (p Position) Offset(d Direction, pitch int64) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx*pitch, Y: p.Y + dy*pitch}
}

// Neighbors returns the eight positions surrounding p.
func (p Position) Neighbors(pitch int64) [8]Position {
	var out [8]Position
	for i, d := range Directions {
		out[i] = p.Offset(d, pitch)
	}
	return out
}

// DistanceFromOrigin is the Euclidean length of p.
func (p Position) DistanceFromOrigin() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// sortPositions orders positions by Y then X so results are reproducible.
func sortPositions(ps []Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
}
