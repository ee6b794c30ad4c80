package system

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/entity"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/interfaces"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// CombatSystem управляет атаками миньонов и башен
type CombatSystem struct {
	world           *entity.World
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
}

// DamageAgainst returns what attacker deals to target, type advantage included.
// The advantage only applies against minions.
func DamageAgainst(attacker *component.Minion, target component.Target) int {
	damage := attacker.Damage
	if class, ok := target.UnitClass(); ok && attacker.Class.Beats(class) {
		damage *= config.TypeAdvantageMultiplier
	}
	return damage
}

// AcquireMinionTarget picks the closest enemy within the minion's range (inclusive).
func (s *CombatSystem) AcquireMinionTarget(m *component.Minion) component.Target {
	return findNearest(m.Pos(), s.world.Enemies(m.Side), func(dist float64) bool {
		return dist <= m.Range
	})
}

// MinionAttack strikes target: fighters hit instantly, ranged classes launch a
// homing projectile whose damage lands on arrival.
func (s *CombatSystem) MinionAttack(m *component.Minion, target component.Target) {
	damage := DamageAgainst(m, target)
	if m.Attack == defs.AttackMelee {
		ApplyDamage(s.gameContext.Stats(), s.eventDispatcher, m.Side, target, damage)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.MeleeHit,
			Data: event.HitData{Attacker: m.Side, TargetID: target.TargetID(), Damage: damage, At: target.Position()},
		})
		return
	}
	s.launchProjectile(m.Pos(), target, damage, m.Side, m.Style)
}

// UpdateTowers ticks tower cooldowns and fires at the nearest enemy minion in range.
func (s *CombatSystem) UpdateTowers() {
	tuning := s.gameContext.Tuning()
	for _, t := range s.world.Towers {
		if t.HP <= 0 {
			continue
		}
		if t.Cooldown > 0 {
			t.Cooldown--
		}
		if t.Cooldown > 0 {
			continue
		}

		target := findNearest(t.Pos(), s.enemyMinions(t.Side), func(dist float64) bool {
			return dist < t.Range
		})
		if target == nil {
			continue
		}
		s.launchProjectile(t.Pos(), target, t.Damage, t.Side, defs.StyleTowerArrow)
		t.Cooldown = tuning.TowerAttackCooldown
	}
}

func (s *CombatSystem) enemyMinions(side types.Side) []component.Target {
	var out []component.Target
	for _, m := range s.world.Minions {
		if m.Side != side && m.Active {
			out = append(out, m)
		}
	}
	return out
}

func (s *CombatSystem) launchProjectile(from types.Point, target component.Target, damage int, side types.Side, style defs.ProjectileStyle) {
	p := component.NewProjectile(s.world.NewEntity(), from.X, from.Y, target.TargetID(), damage, side, s.gameContext.Tuning().ProjectileSpeed, style)
	s.world.AddProjectile(p)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.HitData{Attacker: side, TargetID: target.TargetID(), Style: style, At: from},
	})
}
