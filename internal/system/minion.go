package system

import (
	"log"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/entity"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/interfaces"
)

// MinionSystem drives the minion state machine: seek, attack, walk, reach the
// enemy base, die and disappear after the grace period.
type MinionSystem struct {
	world           *entity.World
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
	combat          *CombatSystem
	movement        *MovementSystem
	logger          *log.Logger
}

func NewMinionSystem(world *entity.World, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher,
	combat *CombatSystem, movement *MovementSystem, logger *log.Logger) *MinionSystem {
	return &MinionSystem{
		world:           world,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
		combat:          combat,
		movement:        movement,
		logger:          logger,
	}
}

// Update runs one tick of behaviour for every minion, then base reach checks.
func (s *MinionSystem) Update() {
	tuning := s.gameContext.Tuning()
	for _, m := range s.world.Minions {
		s.step(m)

		if !m.Active {
			continue
		}
		enemyBase := defs.BaseAnchor(m.Side.Opponent())
		if m.DistanceTo(enemyBase.X, enemyBase.Y) < tuning.BaseReachRadius {
			s.reachBase(m)
		}
	}
}

func (s *MinionSystem) step(m *component.Minion) {
	if m.HP <= 0 {
		if m.Active {
			m.Active = false
			s.died(m, event.ReasonKilled)
		}
		return
	}

	if m.Cooldown > 0 {
		m.Cooldown--
	}

	target := s.combat.AcquireMinionTarget(m)
	if target == nil {
		s.movement.Walk(m)
		return
	}
	if m.Cooldown <= 0 {
		s.combat.MinionAttack(m, target)
		m.Cooldown = s.gameContext.Tuning().MinionAttackCooldown
	}
}

func (s *MinionSystem) reachBase(m *component.Minion) {
	defender := m.Side.Opponent()
	left := s.gameContext.DamageBase(defender)
	m.Kill()

	s.logger.Printf("%s minion reached the %s base, %d hp left", m.Side, defender, left)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BaseHit,
		Data: event.BaseData{Side: defender, HP: left},
	})
	s.died(m, event.ReasonReachedBase)
}

func (s *MinionSystem) died(m *component.Minion, reason string) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MinionDied,
		Data: event.UnitData{ID: m.ID, Side: m.Side, Lane: m.Lane, Class: m.Class, Reason: reason},
	})
}

// Separate resolves minion overlaps.
func (s *MinionSystem) Separate() {
	SeparateMinions(s.world.Minions)
}

// Decay advances death timers and removes minions whose grace period ran out.
func (s *MinionSystem) Decay() {
	grace := s.gameContext.Tuning().DeathGraceTicks
	for _, m := range s.world.Minions {
		if !m.Active {
			m.DeathTimer++
		}
	}
	s.world.RemoveMinions(func(m *component.Minion) bool {
		return !m.Active && m.DeathTimer >= grace
	})
}
