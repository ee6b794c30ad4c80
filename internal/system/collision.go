package system

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// SeparateMinions pushes every overlapping pair of active minions apart, each by
// half the overlap along the line between their centres. Pairs are visited in
// slice order, so the result is deterministic.
func SeparateMinions(minions []*component.Minion) {
	for i := 0; i < len(minions); i++ {
		for j := i + 1; j < len(minions); j++ {
			a, b := minions[i], minions[j]
			if !a.Active || !b.Active {
				continue
			}

			dx := b.X - a.X
			dy := b.Y - a.Y
			minDist := a.Radius + b.Radius
			distSq := dx*dx + dy*dy
			if distSq >= minDist*minDist {
				continue
			}

			dist := distance(a.Pos(), b.Pos())
			if dist == 0 {
				dist = config.SeparationEpsilon
			}
			overlap := minDist - dist
			pushX := dx / dist * overlap * 0.5
			pushY := dy / dist * overlap * 0.5
			a.X -= pushX
			a.Y -= pushY
			b.X += pushX
			b.Y += pushY
		}
	}
}

// PushHeroOut moves a hero's intended position out of every active minion it
// overlaps. Minions are never moved by heroes.
func PushHeroOut(next types.Point, radius float64, minions []*component.Minion) types.Point {
	for _, m := range minions {
		if !m.Active {
			continue
		}
		dx := next.X - m.X
		dy := next.Y - m.Y
		dist := distance(next, m.Pos())
		minDist := radius + m.Radius
		if dist >= minDist {
			continue
		}
		overlap := minDist - dist
		d := dist
		if d == 0 {
			d = config.SeparationEpsilon
		}
		next.X += dx / d * overlap
		next.Y += dy / d * overlap
	}
	return next
}
