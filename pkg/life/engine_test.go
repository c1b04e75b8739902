package life

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const testPitch = 10

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func sameSet(a, b LiveSet) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b.Contains(p) {
			return false
		}
	}
	return true
}

func TestBlinkerOscillation(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	horizontal := Blinker.LiveSet(Position{}, testPitch)
	vertical := NewLiveSet(Position{0, -10}, Position{0, 0}, Position{0, 10})

	s, tr := e.Step(NewState(horizontal.Clone()))
	if !sameSet(s.Live, vertical) {
		t.Fatalf("after one step got %v, expected vertical blinker", s.Live.Sorted())
	}
	if len(tr.Born) != 2 || len(tr.Killed) != 2 {
		t.Fatalf("expected 2 births and 2 deaths, got %d/%d", len(tr.Born), len(tr.Killed))
	}

	s, _ = e.Step(s)
	if !sameSet(s.Live, horizontal) {
		t.Fatalf("after second step got %v, expected horizontal blinker", s.Live.Sorted())
	}
	if s.Generation != 2 {
		t.Fatalf("generation = %d, expected 2", s.Generation)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	in := NewState(Blinker.LiveSet(Position{}, testPitch))
	before := in.Live.Clone()

	e.Step(in)

	if !sameSet(in.Live, before) || in.Generation != 0 {
		t.Fatal("Step modified the state it was given")
	}
}

func TestGliderTranslates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bound = WorldBound{}
	e := newTestEngine(t, cfg)
	start := Glider.LiveSet(Position{}, testPitch)
	s := NewState(start.Clone())
	for i := 0; i < 4; i++ {
		s, _ = e.Step(s)
	}
	want := Glider.LiveSet(Position{X: testPitch, Y: -testPitch}, testPitch)
	if !sameSet(s.Live, want) {
		t.Fatalf("glider after 4 steps = %v, expected %v", s.Live.Sorted(), want.Sorted())
	}
}

func TestGliderFarFromOrigin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bound = WorldBound{}
	e := newTestEngine(t, cfg)
	anchor := Position{X: 1 << 40, Y: -(1 << 40)}
	s := NewState(Glider.LiveSet(anchor, testPitch))
	for i := 0; i < 4; i++ {
		s, _ = e.Step(s)
	}
	want := Glider.LiveSet(Position{X: anchor.X + testPitch, Y: anchor.Y - testPitch}, testPitch)
	if !sameSet(s.Live, want) {
		t.Fatalf("distant glider after 4 steps = %v, expected %v", s.Live.Sorted(), want.Sorted())
	}
}

func TestStepContextMatchesStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 4
	e := newTestEngine(t, cfg)
	seeded := Seed(DefaultSeedConfig(), cfg.Pitch, 42)

	serial := NewState(seeded)
	parallel := NewState(seeded)
	for i := 0; i < 10; i++ {
		var err error
		serial, _ = e.Step(serial)
		parallel, _, err = e.StepContext(context.Background(), parallel)
		if err != nil {
			t.Fatalf("StepContext: %v", err)
		}
		if !sameSet(serial.Live, parallel.Live) {
			t.Fatalf("generation %d diverged between serial and parallel stepping", i+1)
		}
	}
}

func TestStepContextCancelled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 4
	e := newTestEngine(t, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := NewState(Seed(DefaultSeedConfig(), cfg.Pitch, 3))
	out, tr, err := e.StepContext(ctx, in)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out.Generation != in.Generation || !tr.Empty() {
		t.Fatal("cancelled step should leave the state unchanged")
	}
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pitch = 0
	if _, err := NewEngine(cfg); !errors.Is(err, ErrInvalidPitch) {
		t.Fatalf("expected ErrInvalidPitch, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Rule = Rule{Lower: 4, Upper: 3}
	if _, err := NewEngine(cfg); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule for inverted band, got %v", err)
	}

	cfg.Rule = Rule{Lower: 2, Upper: 9}
	if _, err := NewEngine(cfg); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule for upper > 8, got %v", err)
	}
}

func TestSeedDeterministic(t *testing.T) {
	cfg := DefaultSeedConfig()
	a := Seed(cfg, testPitch, 99)
	b := Seed(cfg, testPitch, 99)
	if !sameSet(a, b) {
		t.Fatal("same seed produced different populations")
	}
	if a.Len() == 0 {
		t.Fatal("expected a non-empty population at 5% fill")
	}

	half := int64(cfg.Dim) * testPitch / 2
	for p := range a {
		if p.X < -half || p.X >= half || p.Y < -half || p.Y >= half {
			t.Fatalf("seeded cell %v outside the initial square", p)
		}
		if (p.X+half)%testPitch != 0 || (p.Y+half)%testPitch != 0 {
			t.Fatalf("seeded cell %v not on the lattice", p)
		}
	}
}

func TestSeedNoiseDensity(t *testing.T) {
	cfg := SeedConfig{Dim: 40, FillChance: 0.1, Mode: SeedNoise}
	live := Seed(cfg, testPitch, 5)
	want := 160
	if live.Len() < want || live.Len() > want+40 {
		t.Fatalf("noise seeding produced %d cells, expected about %d", live.Len(), want)
	}
	if !sameSet(live, Seed(cfg, testPitch, 5)) {
		t.Fatal("noise seeding not deterministic")
	}
}

func TestParseSeedMode(t *testing.T) {
	if m, err := ParseSeedMode(""); err != nil || m != SeedRandom {
		t.Fatalf("empty mode = %q, %v", m, err)
	}
	if m, err := ParseSeedMode("noise"); err != nil || m != SeedNoise {
		t.Fatalf("noise mode = %q, %v", m, err)
	}
	_, err := ParseSeedMode("glider-gun")
	if err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
	if !strings.Contains(err.Error(), "[ParseSeedMode]") {
		t.Fatalf("error %q lacks its origin", err)
	}
}
