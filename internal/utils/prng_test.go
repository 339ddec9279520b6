package utils

import "testing"

func TestFloatRange(t *testing.T) {
	rng := NewPRNGService(123)
	for i := 0; i < 1000; i++ {
		v := rng.FloatRange(45, 495)
		if v < 45 || v >= 495 {
			t.Fatalf("FloatRange returned %v, want [45, 495)", v)
		}
	}
}

func TestIntn(t *testing.T) {
	rng := NewPRNGService(123)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := rng.Intn(3)
		if v < 0 || v > 2 {
			t.Fatalf("Intn(3) returned %v", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all values 0..2 over 1000 draws, got %v", seen)
	}
}

func TestChanceExtremes(t *testing.T) {
	rng := NewPRNGService(123)
	for i := 0; i < 100; i++ {
		if rng.Chance(0) {
			t.Fatal("Chance(0) must never be true")
		}
		if !rng.Chance(1) {
			t.Fatal("Chance(1) must always be true")
		}
	}
}

// Одинаковый сид — одинаковая последовательность.
func TestSeededDeterminism(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed must produce the same sequence")
		}
	}
}
