// internal/system/utils.go
package system

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// ApplyDamage наносит урон цели и засчитывает его атакующей стороне.
// Урон не обрезается по нулю: сумма статистики всегда равна снятому здоровью.
func ApplyDamage(stats *component.MatchStats, dispatcher *event.Dispatcher, attacker types.Side, target component.Target, amount int) {
	wasStanding := target.Health() > 0
	target.TakeDamage(amount)
	stats.AddDamage(attacker, amount)

	if tower, ok := target.(*component.Tower); ok && wasStanding && tower.HP <= 0 {
		dispatcher.Dispatch(event.Event{
			Type: event.TowerDestroyed,
			Data: event.TowerData{ID: tower.ID, Side: tower.Side, Lane: tower.Lane},
		})
	}
}

// findNearest returns the closest alive candidate to from. A candidate qualifies when
// inRange(dist) holds; ties go to the earliest candidate.
func findNearest(from types.Point, candidates []component.Target, inRange func(dist float64) bool) component.Target {
	var best component.Target
	bestDist := 0.0
	for _, c := range candidates {
		if !c.Alive() {
			continue
		}
		p := c.Position()
		dist := distance(from, p)
		if !inRange(dist) {
			continue
		}
		if best == nil || dist < bestDist {
			best = c
			bestDist = dist
		}
	}
	return best
}
