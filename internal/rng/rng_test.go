package rng

import "testing"

func TestSeededSourceIsReproducible(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() || a.Intn(100) != b.Intn(100) {
			t.Fatalf("Sources with the same seed diverged at draw %d", i)
		}
	}
}

func TestFixedCycles(t *testing.T) {
	f := &Fixed{Floats: []float64{0.1, 0.9}, Ints: []int{4, -1}}

	floats := []float64{f.Float64(), f.Float64(), f.Float64()}
	if floats[0] != 0.1 || floats[1] != 0.9 || floats[2] != 0.1 {
		t.Errorf("Unexpected float sequence %v", floats)
	}
	if got := f.Intn(3); got != 1 {
		t.Errorf("Expected 4 %% 3 = 1, got %d", got)
	}
	if got := f.Intn(3); got != 1 {
		t.Errorf("Expected negative draws folded into range, got %d", got)
	}

	var empty Fixed
	if empty.Float64() != 0 || empty.Intn(5) != 0 {
		t.Error("Empty Fixed must return zeros")
	}
}
