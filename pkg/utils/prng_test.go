package utils

import "testing"

// fixedSource 按顺序返回预设值
type fixedSource struct {
	floats []float64
	i      int
}

func (f *fixedSource) Float64() float64 {
	v := f.floats[f.i%len(f.floats)]
	f.i++
	return v
}

func (f *fixedSource) Intn(n int) int {
	return int(f.Float64() * float64(n))
}

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNG(12345)
	b := NewPRNG(12345)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("Sequences diverged at %d", i)
		}
	}
	if a.Seed() != 12345 {
		t.Errorf("Seed() = %d, want 12345", a.Seed())
	}
}

func TestPRNGZeroSeedUsesClock(t *testing.T) {
	if NewPRNG(0).Seed() == 0 {
		t.Error("Zero seed should be replaced")
	}
}

func TestUniform(t *testing.T) {
	src := &fixedSource{floats: []float64{0, 0.5, 0.999999}}
	if got := Uniform(src, -5.9, 5.9); got != -5.9 {
		t.Errorf("Uniform at 0 = %v", got)
	}
	if got := Uniform(src, -5.9, 5.9); got != 0 {
		t.Errorf("Uniform at 0.5 = %v", got)
	}
	if got := Uniform(src, -5.9, 5.9); got > 5.9 {
		t.Errorf("Uniform upper bound exceeded: %v", got)
	}
	if got := Uniform(src, 3, 3); got != 3 {
		t.Errorf("Uniform on empty range = %v", got)
	}
}

func TestChanceClamps(t *testing.T) {
	src := &fixedSource{floats: []float64{0.5}}
	if Chance(src, -1) {
		t.Error("Negative probability should never succeed")
	}
	if !Chance(src, 1.7) {
		t.Error("Probability above 1 should always succeed")
	}
	if !Chance(src, 0.6) {
		t.Error("0.5 < 0.6 should succeed")
	}
	if Chance(src, 0.4) {
		t.Error("0.5 < 0.4 should fail")
	}
}
