package utils

import (
	"math"
	"testing"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

func TestDirectionCoincidentPointsHasNoNaN(t *testing.T) {
	nx, ny, dist := Direction(5, 5, 5, 5, 0.1)
	if math.IsNaN(nx) || math.IsNaN(ny) {
		t.Fatalf("Direction returned NaN: (%f, %f)", nx, ny)
	}
	if dist != 0 {
		t.Errorf("Expected distance 0, got %f", dist)
	}
}

func TestDirectionIsUnitLength(t *testing.T) {
	nx, ny, dist := Direction(0, 0, 3, 4, 0.1)
	if dist != 5 {
		t.Fatalf("dist = %f, want 5", dist)
	}
	if got := math.Hypot(nx, ny); math.Abs(got-1) > 1e-9 {
		t.Errorf("Expected unit vector, got length %f", got)
	}
}

func TestClampPoint(t *testing.T) {
	p := ClampPoint(types.Point{X: -10, Y: 900}, 22, 1200, 800)
	if p.X != 22 || p.Y != 778 {
		t.Errorf("Expected (22, 778), got (%f, %f)", p.X, p.Y)
	}
}

func TestChooseWeightedIsSeededAndRespectsZeroWeights(t *testing.T) {
	entries := []defs.LootEntry{
		{Mask: types.MaskBuffHP, Weight: 0},
		{Mask: types.MaskBuffSpeed, Weight: 5},
	}
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 50; i++ {
		ma := a.ChooseWeighted(entries)
		if ma != types.MaskBuffSpeed {
			t.Fatalf("draw %d picked %s, a zero-weight entry", i, ma)
		}
		if mb := b.ChooseWeighted(entries); mb != ma {
			t.Fatalf("same seed diverged at draw %d: %s vs %s", i, ma, mb)
		}
	}
}

func TestBetweenStaysInRange(t *testing.T) {
	rng := NewPRNGService(11)
	for i := 0; i < 500; i++ {
		if v := rng.Between(150, 1050); v < 150 || v >= 1050 {
			t.Fatalf("Between(150, 1050) = %f", v)
		}
	}
}

func TestChooseWeightedCoversAllPositiveEntries(t *testing.T) {
	rng := NewPRNGService(7)
	seen := map[types.MaskType]bool{}
	for i := 0; i < 2000; i++ {
		seen[rng.ChooseWeighted(defs.DefaultMaskLootTable())] = true
	}
	for _, m := range types.MaskTypes {
		if !seen[m] {
			t.Errorf("mask %s never drawn in 2000 draws", m)
		}
	}
}
