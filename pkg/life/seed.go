package life

import (
	"math"
	"slices"

	perlin "github.com/aquilax/go-perlin"
	"github.com/pkg/errors"

	"sparse-life/pkg/core"
)

// SeedMode selects how the initial square is populated.
type SeedMode string

const (
	// SeedRandom makes every lattice cell alive independently.
	SeedRandom SeedMode = "random"
	// SeedNoise thresholds 2D Perlin noise, producing clustered colonies.
	SeedNoise SeedMode = "noise"
)

// ParseSeedMode maps a flag value onto a SeedMode.
func ParseSeedMode(s string) (SeedMode, error) {
	switch SeedMode(s) {
	case SeedRandom, SeedNoise:
		return SeedMode(s), nil
	case "":
		return SeedRandom, nil
	}
	return "", errors.Errorf("[ParseSeedMode] unknown seed mode %q", s)
}

// SeedConfig describes the initial population: a Dim x Dim square of cells
// centred on the origin, each alive with probability FillChance.
type SeedConfig struct {
	Dim        int
	FillChance float64
	Mode       SeedMode
}

// DefaultSeedConfig is a 64x64 square at 5% density.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{Dim: 64, FillChance: 0.05, Mode: SeedRandom}
}

// Seed builds the initial LiveSet for cfg using the given seed value.
func Seed(cfg SeedConfig, pitch int64, seed int64) LiveSet {
	if cfg.Mode == SeedNoise {
		return SeedNoiseField(cfg.Dim, pitch, cfg.FillChance, seed)
	}
	return SeedUniform(cfg.Dim, pitch, cfg.FillChance, core.NewRNG(seed))
}

// latticePosition maps grid indices in [0, dim) onto world coordinates with
// the square centred on the origin.
func latticePosition(i, j, dim int, pitch int64) Position {
	half := int64(dim) * pitch / 2
	return Position{X: pitch*int64(i) - half, Y: pitch*int64(j) - half}
}

// SeedUniform fills the square with independent draws.
func SeedUniform(dim int, pitch int64, chance float64, rng *core.RNG) LiveSet {
	live := LiveSet{}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if rng.Chance(chance) {
				live.Add(latticePosition(i, j, dim, pitch))
			}
		}
	}
	return live
}

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.15
)

// SeedNoiseField keeps the cells with the highest noise samples, as many as
// a chance fraction of the square, so density matches SeedUniform.
func SeedNoiseField(dim int, pitch int64, chance float64, seed int64) LiveSet {
	live := LiveSet{}
	if dim <= 0 || chance <= 0 {
		return live
	}
	gen := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	samples := make([]float64, 0, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			samples = append(samples, gen.Noise2D(float64(i)*noiseScale, float64(j)*noiseScale))
		}
	}
	keep := int(math.Round(chance * float64(len(samples))))
	if keep <= 0 {
		return live
	}
	threshold := math.Inf(-1)
	if keep < len(samples) {
		sorted := append([]float64(nil), samples...)
		slices.Sort(sorted)
		threshold = sorted[len(sorted)-keep]
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if samples[i*dim+j] >= threshold {
				live.Add(latticePosition(i, j, dim, pitch))
			}
		}
	}
	return live
}
