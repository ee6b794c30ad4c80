// internal/entity/world.go
package entity

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// World owns every entity collection of a match. Slices keep insertion order so
// iteration, and with it tie-breaking, is stable from tick to tick.
type World struct {
	NextID      types.EntityID
	Heroes      []*component.Hero
	Minions     []*component.Minion
	Towers      []*component.Tower
	Masks       []*component.Mask
	Projectiles []*component.Projectile

	targets map[types.EntityID]component.Target
}

func NewWorld() *World {
	return &World{
		NextID:  1,
		targets: make(map[types.EntityID]component.Target),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) AddHero(h *component.Hero) {
	w.Heroes = append(w.Heroes, h)
}

func (w *World) AddMinion(m *component.Minion) {
	w.Minions = append(w.Minions, m)
	w.targets[m.ID] = m
}

func (w *World) AddTower(t *component.Tower) {
	w.Towers = append(w.Towers, t)
	w.targets[t.ID] = t
}

func (w *World) AddMask(m *component.Mask) {
	w.Masks = append(w.Masks, m)
}

func (w *World) AddProjectile(p *component.Projectile) {
	w.Projectiles = append(w.Projectiles, p)
}

// Target resolves an attackable entity still present in the world.
func (w *World) Target(id types.EntityID) (component.Target, bool) {
	t, ok := w.targets[id]
	return t, ok
}

// Hero returns the hero of side.
func (w *World) Hero(side types.Side) *component.Hero {
	for _, h := range w.Heroes {
		if h.Side == side {
			return h
		}
	}
	return nil
}

// Enemies builds the enemy set of side: active opposing minions followed by
// opposing towers that still stand.
func (w *World) Enemies(side types.Side) []component.Target {
	enemies := make([]component.Target, 0, len(w.Minions)+len(w.Towers))
	for _, m := range w.Minions {
		if m.Side != side && m.Active {
			enemies = append(enemies, m)
		}
	}
	for _, t := range w.Towers {
		if t.Side != side && t.HP > 0 {
			enemies = append(enemies, t)
		}
	}
	return enemies
}

// RemoveMinions drops every minion for which remove returns true and marks it removed.
func (w *World) RemoveMinions(remove func(m *component.Minion) bool) {
	kept := w.Minions[:0]
	for _, m := range w.Minions {
		if remove(m) {
			m.Removed = true
			delete(w.targets, m.ID)
			continue
		}
		kept = append(kept, m)
	}
	clearTail(w.Minions, len(kept))
	w.Minions = kept
}

// PruneProjectiles drops inactive projectiles.
func (w *World) PruneProjectiles() {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Active {
			kept = append(kept, p)
		}
	}
	clearTail(w.Projectiles, len(kept))
	w.Projectiles = kept
}

// PruneMasks drops claimed masks.
func (w *World) PruneMasks() {
	kept := w.Masks[:0]
	for _, m := range w.Masks {
		if m.Active {
			kept = append(kept, m)
		}
	}
	clearTail(w.Masks, len(kept))
	w.Masks = kept
}

// clearTail nils out the slots past n so removed entities can be collected.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
