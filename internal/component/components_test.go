package component

import (
	"testing"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

func newFighter() *Minion {
	return NewMinion(1, 100, 100, types.SideRed, types.ClassFighter, types.LaneMid)
}

func TestNewMinionUsesClassStats(t *testing.T) {
	m := newFighter()
	def := defs.MustUnit(types.ClassFighter)
	if m.HP != def.Health || m.MaxHP != def.Health || m.Damage != def.Damage {
		t.Fatalf("fighter stats = %d/%d/%d, want %d/%d/%d", m.HP, m.MaxHP, m.Damage, def.Health, def.Health, def.Damage)
	}
	if !m.Active || m.State() != MinionAlive {
		t.Error("Expected a fresh minion to be alive")
	}
	if got := m.Waypoints[len(m.Waypoints)-1]; got != defs.BlueBase {
		t.Errorf("Expected red route to end at blue base, got %v", got)
	}
}

func TestConversionMaskResetsStats(t *testing.T) {
	for _, tt := range []struct {
		mask  types.MaskType
		class types.UnitClass
	}{
		{types.MaskConvertMage, types.ClassMage},
		{types.MaskConvertArcher, types.ClassArcher},
		{types.MaskConvertFighter, types.ClassFighter},
	} {
		m := newFighter()
		m.HP = 3
		m.Damage = 99
		m.ApplyMask(tt.mask)

		def := defs.MustUnit(tt.class)
		if m.Class != tt.class {
			t.Errorf("%s: class = %s, want %s", tt.mask, m.Class, tt.class)
		}
		if m.HP != def.Health || m.MaxHP != def.Health {
			t.Errorf("%s: hp = %d/%d, want %d/%d", tt.mask, m.HP, m.MaxHP, def.Health, def.Health)
		}
		if m.Damage != def.Damage {
			t.Errorf("%s: damage = %d, want %d", tt.mask, m.Damage, def.Damage)
		}
		if !m.HasMask {
			t.Errorf("%s: Expected HasMask to be set", tt.mask)
		}
	}
}

func TestBuffMasksIncreaseStatAndKeepClass(t *testing.T) {
	m := newFighter()
	m.HP = 40
	m.ApplyMask(types.MaskBuffHP)
	if m.HP != 40+config.BuffHPAmount || m.MaxHP != 80+config.BuffHPAmount {
		t.Errorf("hp buff: got %d/%d", m.HP, m.MaxHP)
	}

	damage := m.Damage
	m.ApplyMask(types.MaskBuffDamage)
	if m.Damage <= damage {
		t.Errorf("damage buff: %d -> %d, want strictly more", damage, m.Damage)
	}

	speed := m.Speed
	m.ApplyMask(types.MaskBuffSpeed)
	if m.Speed <= speed {
		t.Errorf("speed buff: %f -> %f, want strictly more", speed, m.Speed)
	}

	if m.Class != types.ClassFighter {
		t.Errorf("Expected buffs to keep class FIGHTER, got %s", m.Class)
	}
	if !m.HasMask {
		t.Error("Expected HasMask after buffs")
	}
}

func TestApplyUnknownMaskPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic for unknown mask")
		}
	}()
	newFighter().ApplyMask(types.MaskType("GOLDEN"))
}

func TestMinionAtZeroHPIsDyingBeforeDeactivation(t *testing.T) {
	m := newFighter()
	m.TakeDamage(m.HP + 5)
	if !m.Active {
		t.Fatal("Expected damage alone to leave the minion active")
	}
	if m.Alive() || m.State() != MinionDying {
		t.Errorf("state = %v alive = %v, want dying", m.State(), m.Alive())
	}
}

func TestMinionLifecycle(t *testing.T) {
	m := newFighter()
	m.Kill()
	if m.HP != 0 || m.Active {
		t.Fatalf("Kill left hp=%d active=%v", m.HP, m.Active)
	}
	if m.State() != MinionDying {
		t.Errorf("state = %v, want dying", m.State())
	}
	m.Removed = true
	if m.State() != MinionRemoved {
		t.Errorf("state = %v, want removed", m.State())
	}
}

func TestTowerCondition(t *testing.T) {
	tw := NewTower(1, defs.TowerPlacements[0], defs.DefaultTower)
	if tw.Condition() != TowerHealthy {
		t.Errorf("Expected healthy tower")
	}
	tw.TakeDamage(tw.MaxHP - int(float64(tw.MaxHP)*config.TowerDamagedRatio))
	if tw.Condition() != TowerDamaged {
		t.Errorf("Expected damaged tower at hp %d", tw.HP)
	}
	tw.TakeDamage(tw.HP)
	if tw.Condition() != TowerDestroyed || tw.Alive() {
		t.Errorf("Expected destroyed tower at hp %d", tw.HP)
	}
}

func TestMatchStatsBySide(t *testing.T) {
	var s MatchStats
	s.AddDamage(types.SideBlue, 15)
	s.AddDamage(types.SideRed, 4)
	s.AddDamage(types.SideBlue, 5)
	s.AddSpawned(types.SideRed)

	if s.DamageDealt(types.SideBlue) != 20 || s.BlueDamageDealt != 20 {
		t.Errorf("blue damage = %d, want 20", s.BlueDamageDealt)
	}
	if s.DamageDealt(types.SideRed) != 4 {
		t.Errorf("red damage = %d, want 4", s.RedDamageDealt)
	}
	if s.MinionsSpawned(types.SideRed) != 1 || s.MinionsSpawned(types.SideBlue) != 0 {
		t.Errorf("spawned = %d/%d, want 1/0", s.RedMinionsSpawned, s.BlueMinionsSpawned)
	}
}

func TestHeroCarryAndDrop(t *testing.T) {
	h := NewHero(1, types.SideBlue, defs.HeroSpawn(types.SideBlue))
	if h.Carrying() {
		t.Fatal("Expected a fresh hero to carry nothing")
	}
	h.Carry(types.MaskBuffSpeed)
	if !h.Carrying() {
		t.Fatal("Expected hero to carry a mask")
	}
	if got := h.Drop(); got != types.MaskBuffSpeed || h.Carrying() {
		t.Errorf("Drop() = %s, carrying=%v", got, h.Carrying())
	}
}
