// internal/system/projectile.go
package system

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/entity"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/interfaces"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world           *entity.World
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
}

// Update moves every projectile towards the current position of its target.
// Arrival applies the damage; a target that is gone or dead makes the projectile fizzle.
func (s *ProjectileSystem) Update() {
	tuning := s.gameContext.Tuning()
	for _, p := range s.world.Projectiles {
		if !p.Active {
			continue
		}

		target, ok := s.world.Target(p.TargetID)
		if !ok || !target.Alive() {
			// Цель пропала, снаряд гаснет без урона
			p.Active = false
			continue
		}

		at := target.Position()
		nx, ny, dist := utils.Direction(p.X, p.Y, at.X, at.Y, config.SeparationEpsilon)
		if dist < tuning.ProjectileArrival {
			ApplyDamage(s.gameContext.Stats(), s.eventDispatcher, p.Side, target, p.Damage)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.ProjectileHit,
				Data: event.HitData{Attacker: p.Side, TargetID: p.TargetID, Damage: p.Damage, Style: p.Style, At: at},
			})
			p.Active = false
			continue
		}
		p.X += nx * p.Speed
		p.Y += ny * p.Speed
	}
	s.world.PruneProjectiles()
}
