package sim

import (
	"context"
	"errors"
	"math"
	"strconv"
	"testing"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
)

func testOptions() core.Options {
	return core.Options{Engine: life.DefaultConfig(), Seed: life.DefaultSeedConfig()}
}

func newRunner(t *testing.T) *Runner {
	t.Helper()
	r, err := New(testOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestPhaseTransitions(t *testing.T) {
	r := newRunner(t)
	if r.Phase() != Uninitialized {
		t.Fatalf("new runner phase = %v", r.Phase())
	}
	if _, ok := r.Tick(); ok {
		t.Fatal("uninitialized runner must not step")
	}
	r.Toggle()
	if r.Phase() != Uninitialized {
		t.Fatal("toggle before seeding should be ignored")
	}

	r.Seed(42)
	if r.Phase() != Running {
		t.Fatalf("after seeding phase = %v, expected running", r.Phase())
	}
	if r.Live().Len() == 0 {
		t.Fatal("seeding produced an empty world")
	}

	r.Toggle()
	if !r.Paused() {
		t.Fatal("toggle should pause a running sim")
	}
	r.Toggle()
	if r.Phase() != Running {
		t.Fatal("toggle should resume a paused sim")
	}
}

func TestPausedFreezesState(t *testing.T) {
	r := newRunner(t)
	r.Seed(7)
	r.Tick()
	r.Toggle()

	gen := r.Generation()
	live := r.Live().Clone()
	for i := 0; i < 5; i++ {
		if _, ok := r.Tick(); ok {
			t.Fatal("paused runner stepped")
		}
	}
	if r.Generation() != gen || r.Live().Len() != live.Len() {
		t.Fatal("paused runner changed state")
	}

	if _, ok := r.StepOnce(); !ok {
		t.Fatal("StepOnce should advance a paused runner")
	}
	if r.Generation() != gen+1 || !r.Paused() {
		t.Fatal("StepOnce should advance one generation and stay paused")
	}
}

func TestResetReseeds(t *testing.T) {
	r := newRunner(t)
	r.Seed(11)
	first := r.Live().Clone()
	for i := 0; i < 3; i++ {
		r.Tick()
	}
	r.Toggle()

	r.Reset(11)
	if r.Phase() != Running {
		t.Fatalf("reset should leave the runner running, got %v", r.Phase())
	}
	if r.Generation() != 0 {
		t.Fatalf("generation after reset = %d", r.Generation())
	}
	if r.Live().Len() != first.Len() {
		t.Fatal("reset with the same seed should reproduce the population")
	}
	for p := range first {
		if !r.Live().Contains(p) {
			t.Fatalf("cell %v missing after reset", p)
		}
	}
}

func TestSeedIgnoredOnceRunning(t *testing.T) {
	r := newRunner(t)
	r.Seed(1)
	before := r.Live().Clone()
	r.Seed(2)
	if r.SeedValue() != 1 || r.Live().Len() != before.Len() {
		t.Fatal("Seed should only act from the uninitialized phase")
	}
}

func TestLiveMirrorsTransitions(t *testing.T) {
	r := newRunner(t)
	r.Seed(5)
	mirror := r.Live().Clone()
	for i := 0; i < 25; i++ {
		tr, _ := r.Tick()
		tr.Apply(mirror)
		if mirror.Len() != r.Live().Len() {
			t.Fatalf("generation %d: mirror has %d cells, runner %d", r.Generation(), mirror.Len(), r.Live().Len())
		}
	}
	for p := range mirror {
		if !r.Live().Contains(p) {
			t.Fatalf("mirror holds orphan cell %v", p)
		}
	}
}

func TestStatsTracksStillLife(t *testing.T) {
	opts := testOptions()
	opts.Seed.Dim = 0
	r, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.Seed(0)
	if !r.Stats().Extinct() {
		t.Fatal("empty seed square should start extinct")
	}
	r.Tick()
	r.Tick()
	if got := r.Stats().StillGenerations; got != 2 {
		t.Fatalf("still generations = %d, expected 2", got)
	}
}

func TestParametersExposeRule(t *testing.T) {
	r := newRunner(t)
	r.Seed(3)
	snap := r.Parameters()
	for key, want := range map[string]string{
		"rule_lower":   "2",
		"rule_upper":   "3",
		"world_radius": "1000",
		"pitch":        "10",
		"phase":        "running",
	} {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("parameter %q = %q, expected %q", key, p.Value, want)
		}
	}
}

func TestParametersReportAveragePopulation(t *testing.T) {
	r := newRunner(t)
	r.Seed(5)
	first := float64(r.Live().Len())
	if _, ok := r.Tick(); !ok {
		t.Fatal("running runner did not step")
	}
	second := float64(r.Live().Len())

	p, ok := r.Parameters().Lookup("average_population")
	if !ok {
		t.Fatal("average_population missing")
	}
	got, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		t.Fatalf("average_population %q: %v", p.Value, err)
	}
	want := math.Round((first*0.9+second*0.1)*10) / 10
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("average_population = %v, expected %v", got, want)
	}
}

func TestNewRejectsInvalidRule(t *testing.T) {
	opts := testOptions()
	opts.Engine.Rule = life.Rule{Lower: 5, Upper: 4}
	if _, err := New(opts); !errors.Is(err, life.ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()[Name]
	if !ok {
		t.Fatal("life sim not registered")
	}
	s, err := factory(testOptions())
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if s.Name() != Name {
		t.Fatalf("registered sim name = %q", s.Name())
	}
}

func TestTickContextCancelled(t *testing.T) {
	opts := testOptions()
	opts.Engine.Workers = 4
	r, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.Seed(9)
	before := r.Live().Len()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, ok, err := r.TickContext(ctx); ok || !errors.Is(err, context.Canceled) {
		t.Fatalf("TickContext on cancelled ctx = %v, %v", ok, err)
	}
	if r.Generation() != 0 || r.Live().Len() != before {
		t.Fatal("cancelled tick changed state")
	}

	if _, ok, err := r.TickContext(context.Background()); !ok || err != nil {
		t.Fatalf("TickContext = %v, %v", ok, err)
	}
	if r.Generation() != 1 {
		t.Fatalf("generation = %d, expected 1", r.Generation())
	}
}
