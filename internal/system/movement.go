// internal/system/movement.go
package system

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/input"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/utils"
)

// MovementSystem перемещает миньонов по маршрутам и героев по вводу.
type MovementSystem struct {
	waypointRadius float64
}

func NewMovementSystem(waypointRadius float64) *MovementSystem {
	return &MovementSystem{waypointRadius: waypointRadius}
}

// Walk moves m one step towards its current waypoint. Close to a waypoint that is
// not the last one, the index advances; the step itself still uses the direction
// to the waypoint that was current when the tick started.
func (s *MovementSystem) Walk(m *component.Minion) {
	wp := m.CurrentWaypoint()
	nx, ny, dist := utils.Direction(m.X, m.Y, wp.X, wp.Y, config.MoveEpsilon)

	if dist < s.waypointRadius && !m.AtFinalWaypoint() {
		m.WaypointIndex++
	}
	if dist <= config.MoveEpsilon {
		return
	}
	m.X += nx * m.Speed
	m.Y += ny * m.Speed
}

// HeroDestination returns where the held keys would take h this tick, kept inside
// the arena.
func (s *MovementSystem) HeroDestination(h *component.Hero) types.Point {
	ax, ay := input.BindingsFor(h.Side).Axis(h.Keys)
	next := types.Point{X: h.X + ax*h.Speed, Y: h.Y + ay*h.Speed}
	return utils.ClampPoint(next, h.Radius, config.ScreenWidth, config.ScreenHeight)
}

func distance(a, b types.Point) float64 {
	return utils.Distance(a.X, a.Y, b.X, b.Y)
}
