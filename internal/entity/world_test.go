package entity

import (
	"testing"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

func TestNewEntityIsMonotonic(t *testing.T) {
	w := NewWorld()
	a, b := w.NewEntity(), w.NewEntity()
	if a == 0 || b != a+1 {
		t.Fatalf("ids = %d, %d; want consecutive non-zero ids", a, b)
	}
}

func TestEnemiesFiltersSideAndLiveness(t *testing.T) {
	w := NewWorld()
	ally := component.NewMinion(w.NewEntity(), 0, 0, types.SideRed, types.ClassFighter, types.LaneMid)
	foe := component.NewMinion(w.NewEntity(), 0, 0, types.SideBlue, types.ClassFighter, types.LaneMid)
	dying := component.NewMinion(w.NewEntity(), 0, 0, types.SideBlue, types.ClassFighter, types.LaneMid)
	dying.Kill()
	w.AddMinion(ally)
	w.AddMinion(foe)
	w.AddMinion(dying)
	for _, p := range defs.TowerPlacements {
		w.AddTower(component.NewTower(w.NewEntity(), p, defs.DefaultTower))
	}
	w.Towers[1].HP = 0 // blue mid tower destroyed

	enemies := w.Enemies(types.SideRed)
	if len(enemies) != 3 {
		t.Fatalf("len(enemies) = %d, want 3 (1 minion + 2 standing towers)", len(enemies))
	}
	if enemies[0].TargetID() != foe.ID {
		t.Errorf("Expected minions before towers, got %v first", enemies[0].Kind())
	}
	for _, e := range enemies[1:] {
		if e.Kind() != component.KindTower || !e.Alive() {
			t.Errorf("Expected standing towers after minions, got %v alive=%v", e.Kind(), e.Alive())
		}
	}
}

func TestRemoveMinionsDropsTargetLookup(t *testing.T) {
	w := NewWorld()
	m := component.NewMinion(w.NewEntity(), 0, 0, types.SideRed, types.ClassFighter, types.LaneTop)
	w.AddMinion(m)
	if _, ok := w.Target(m.ID); !ok {
		t.Fatal("Expected minion to be resolvable as a target")
	}

	w.RemoveMinions(func(*component.Minion) bool { return true })
	if len(w.Minions) != 0 {
		t.Fatalf("len(Minions) = %d, want 0", len(w.Minions))
	}
	if _, ok := w.Target(m.ID); ok {
		t.Error("Expected removed minion to no longer resolve")
	}
	if m.State() != component.MinionRemoved {
		t.Errorf("state = %v, want removed", m.State())
	}
}

func TestPruneKeepsOrder(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		w.AddMask(component.NewMask(w.NewEntity(), float64(i), 0, types.MaskBuffHP))
	}
	w.Masks[1].Active = false
	w.PruneMasks()
	if len(w.Masks) != 3 {
		t.Fatalf("len(Masks) = %d, want 3", len(w.Masks))
	}
	for i, want := range []float64{0, 2, 3} {
		if w.Masks[i].X != want {
			t.Errorf("Masks[%d].X = %f, want %f", i, w.Masks[i].X, want)
		}
	}
}
