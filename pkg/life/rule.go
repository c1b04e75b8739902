package life

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidRule is returned when a Rule's bounds are out of order or above 8.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidPitch is returned for a non-positive lattice pitch.
	ErrInvalidPitch = errors.New("invalid pitch")
)

// Rule is the survival band [Lower, Upper]. A dead cell is born when its
// neighbour count equals Upper exactly.
type Rule struct {
	Lower uint8
	Upper uint8
}

// ConwayRule is B3/S23.
var ConwayRule = Rule{Lower: 2, Upper: 3}

// Validate checks Lower <= Upper <= 8.
func (r Rule) Validate() error {
	if r.Upper > 8 {
		return errors.Wrapf(ErrInvalidRule, "[Rule.Validate] upper %d exceeds 8", r.Upper)
	}
	if r.Lower > r.Upper {
		return errors.Wrapf(ErrInvalidRule, "[Rule.Validate] lower %d above upper %d", r.Lower, r.Upper)
	}
	return nil
}

// Born reports whether a dead cell with count live neighbours comes alive.
func (r Rule) Born(count uint8) bool { return count == r.Upper }

// Survives reports whether a live cell with count live neighbours stays alive.
func (r Rule) Survives(count uint8) bool { return count >= r.Lower && count <= r.Upper }

// WorldBound removes any cell farther than Radius from the origin. A
// non-positive radius disables the cutoff.
type WorldBound struct {
	Radius float64
}

// Exceeds reports whether p lies strictly outside the bound.
func (b WorldBound) Exceeds(p Position) bool {
	if b.Radius <= 0 {
		return false
	}
	return p.DistanceFromOrigin() > b.Radius
}
