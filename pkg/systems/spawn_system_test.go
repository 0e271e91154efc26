package systems

import (
	"math"
	"testing"

	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/ecs"
	"github.com/decker502/spheresmash/pkg/utils"
)

func newTestSpawnSystem(t *testing.T, cfg *config.GameConfig, rng utils.RandomSource) (*SpawnSystem, *ecs.EntityManager) {
	t.Helper()
	em := ecs.NewEntityManager()
	s, err := NewSpawnSystem(em, cfg, newPlayingState(cfg), rng)
	if err != nil {
		t.Fatalf("NewSpawnSystem() error: %v", err)
	}
	return s, em
}

// TestSpawnProbabilityAfterTenSeconds 0.2 + 0.005×10 ≈ 0.25
func TestSpawnProbabilityAfterTenSeconds(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s, em := newTestSpawnSystem(t, cfg, neverSpawn())

	for i := 0; i < 600; i++ {
		if _, err := s.Update(1.0 / 60); err != nil {
			t.Fatalf("Update() error: %v", err)
		}
	}

	if got := s.state.SpawnProbability; math.Abs(got-0.25) > 1e-9 {
		t.Errorf("SpawnProbability: got %v, want 0.25", got)
	}
	if n := countSpheres(em); n != 0 {
		t.Errorf("No sphere should spawn with a failing trial, got %d", n)
	}
}

func TestGrowProbabilityCap(t *testing.T) {
	tests := []struct {
		name string
		cap  float64
		want float64
	}{
		{"不设上限", 0, 0.25},
		{"上限0.22", 0.22, 0.22},
		{"上限高于结果", 0.9, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultGameConfig()
			cfg.Spawn.ProbabilityCap = tt.cap
			s, _ := newTestSpawnSystem(t, cfg, neverSpawn())

			if got := s.GrowProbability(0.2, 10); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("GrowProbability() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestTrySpawnWaitsForInterval 倒计时未到期时不做试验
func TestTrySpawnWaitsForInterval(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rng := &scriptedRandom{values: []float64{0.1, 0.5, 0.5, 0.5, 0.75}}
	s, _ := newTestSpawnSystem(t, cfg, rng)

	if _, ok := s.TrySpawn(0.02, 0.5); ok {
		t.Fatal("Should not spawn before the attempt interval elapses")
	}
	if rng.next != 0 {
		t.Fatalf("No random sample should be drawn before the interval, drew %d", rng.next)
	}

	req, ok := s.TrySpawn(0.05, 0.5)
	if !ok {
		t.Fatal("Should spawn once the interval elapsed")
	}
	if req.Kind != components.NormalKind(components.ColorRed) {
		t.Errorf("Kind: got %s, want red", req.Kind)
	}
	if math.Abs(req.X) > 1e-9 || req.Y != cfg.Spawn.Height {
		t.Errorf("Position: got (%v, %v), want (0, %v)", req.X, req.Y, cfg.Spawn.Height)
	}
	if math.Abs(req.ImpulseX-150) > 1e-9 {
		t.Errorf("ImpulseX: got %v, want 150", req.ImpulseX)
	}
	if s.state.SpawnAttemptCountdown != cfg.Spawn.AttemptInterval {
		t.Errorf("Countdown should reset to %v, got %v", cfg.Spawn.AttemptInterval, s.state.SpawnAttemptCountdown)
	}
}

func TestTrySpawnPowerup(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rng := &scriptedRandom{values: []float64{0.0, 0.01, 0.6, 0.5, 0.5}}
	s, _ := newTestSpawnSystem(t, cfg, rng)

	req, ok := s.TrySpawn(1, 0.2)
	if !ok {
		t.Fatal("Expected a spawn")
	}
	if req.Kind != components.PowerupKind(components.PowerupNuke) {
		t.Errorf("Kind: got %s, want nuke", req.Kind)
	}
}

// TestTrySpawnClampsProbability 概率越界时被限制在 [0,1]
func TestTrySpawnClampsProbability(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s, _ := newTestSpawnSystem(t, cfg, &scriptedRandom{values: []float64{0.0}})

	if _, ok := s.TrySpawn(1, -0.5); ok {
		t.Error("Negative probability should never spawn")
	}
	if _, ok := s.TrySpawn(1, 3); !ok {
		t.Error("Probability above 1 should always spawn")
	}
}

func TestTrySpawnStaysInBand(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Spawn.PowerupProbability = 0
	cfg.Spawn.Powerups = nil
	s, _ := newTestSpawnSystem(t, cfg, utils.NewPRNG(99))

	for i := 0; i < 500; i++ {
		req, ok := s.TrySpawn(1, 1)
		if !ok {
			t.Fatal("p=1 should always spawn")
		}
		if req.Kind.IsPowerup() {
			t.Fatalf("Powerups are disabled, got %s", req.Kind)
		}
		if req.X < cfg.Spawn.BandMinX || req.X > cfg.Spawn.BandMaxX {
			t.Fatalf("X out of band: %v", req.X)
		}
		if math.Abs(req.ImpulseX) > cfg.Spawn.ImpulseRange {
			t.Fatalf("Impulse out of range: %v", req.ImpulseX)
		}
	}
}

func TestSpawnUpdateCreatesSphere(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s, em := newTestSpawnSystem(t, cfg, &scriptedRandom{values: []float64{0.0, 0.9, 0.3, 0.5, 0.5}})

	id, err := s.Update(cfg.Spawn.AttemptInterval)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if id == 0 {
		t.Fatal("Expected a sphere to spawn")
	}

	sphere, ok := ecs.GetComponent[*components.SphereComponent](em, id)
	if !ok {
		t.Fatal("Spawned entity should be a sphere")
	}
	if sphere.Kind != components.NormalKind(components.ColorGreen) {
		t.Errorf("Kind: got %s, want green", sphere.Kind)
	}
	if !sphere.IsSafe() {
		t.Error("New sphere should be safe")
	}
}
