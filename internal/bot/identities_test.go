package bot

import (
	"math/rand"
	"testing"
)

func TestDrawNamesDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	names := DrawNames(rng, 2)
	if len(names) != 2 {
		t.Fatalf("got %d names, want 2", len(names))
	}
	if names[0] == names[1] {
		t.Errorf("duplicate name %q drawn", names[0])
	}
}

func TestDrawNamesCapsAtPoolSize(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	names := DrawNames(rng, len(defaultNamePool)+10)
	if len(names) != len(defaultNamePool) {
		t.Fatalf("got %d names, want %d", len(names), len(defaultNamePool))
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Fatalf("duplicate name %q", n)
		}
		seen[n] = true
	}
}

func TestNewTuningRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		tn := NewTuning("three_player", rng)
		if tn.StopOpponentThreshold != 3 && tn.StopOpponentThreshold != 4 {
			t.Fatalf("stop threshold = %d", tn.StopOpponentThreshold)
		}
		if tn.WildPassRatio != 0.40 && tn.WildPassRatio != 0.50 {
			t.Fatalf("wild ratio = %v", tn.WildPassRatio)
		}
		if tn.CheapRankThreshold < 6 || tn.CheapRankThreshold > 10 {
			t.Fatalf("cheap rank threshold = %d", tn.CheapRankThreshold)
		}
		if tn.FallingBehindMargin != 5 {
			t.Fatalf("margin = %d, want 5", tn.FallingBehindMargin)
		}
	}
	if tn := NewTuning("heads_up", rng); tn.FallingBehindMargin != 3 {
		t.Fatalf("heads-up margin = %d, want 3", tn.FallingBehindMargin)
	}
}
