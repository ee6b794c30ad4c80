// internal/system/player_system.go
package system

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/entity"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
)

// PlayerSystem отвечает за героев: движение по вводу, подбор и доставку масок.
type PlayerSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	movement        *MovementSystem
}

func NewPlayerSystem(world *entity.World, eventDispatcher *event.Dispatcher, movement *MovementSystem) *PlayerSystem {
	return &PlayerSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		movement:        movement,
	}
}

// Update moves every hero, then resolves pickup and delivery. A hero may claim a
// mask and hand it over in the same tick.
func (s *PlayerSystem) Update() {
	for _, h := range s.world.Heroes {
		next := s.movement.HeroDestination(h)
		next = PushHeroOut(next, h.Radius, s.world.Minions)
		h.X, h.Y = next.X, next.Y

		s.pickup(h)
		s.deliver(h)
	}
	s.world.PruneMasks()
}

func (s *PlayerSystem) pickup(h *component.Hero) {
	if h.Carrying() {
		return
	}
	for _, mask := range s.world.Masks {
		if !mask.Active || !h.Touches(&mask.Body) {
			continue
		}
		h.Carry(mask.Type)
		mask.Active = false
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.MaskClaimed,
			Data: event.MaskData{Type: mask.Type, Side: h.Side, At: mask.Pos()},
		})
		return
	}
}

func (s *PlayerSystem) deliver(h *component.Hero) {
	if !h.Carrying() {
		return
	}
	for _, m := range s.world.Minions {
		// Melee that lands after a minion's own step leaves it active at hp <= 0
		// until the next tick; it is dying and takes no mask.
		if m.Side != h.Side || !m.Alive() {
			continue
		}
		// Push-back stops the hero exactly at contact, so contact plus DeliverySlop
		// counts as overlap here. Pickup stays strict.
		if h.DistanceTo(m.X, m.Y) >= h.Radius+m.Radius+config.DeliverySlop {
			continue
		}
		maskType := h.Drop()
		m.ApplyMask(maskType)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.MaskDelivered,
			Data: event.MaskData{Type: maskType, Side: h.Side, MinionID: m.ID, At: m.Pos()},
		})
		return
	}
}
