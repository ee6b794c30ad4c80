// Package bot drives a hero from snapshots, for headless runs and the
// single-player terminal view.
package bot

import (
	"math"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/input"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/snapshot"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// deadZone avoids jitter when the bot sits on its goal
const deadZone = 3.0

// Bot fetches the nearest mask and carries it to the friendly minion closest
// to the enemy base.
type Bot struct {
	Side     types.Side
	bindings input.Bindings
}

func New(side types.Side) *Bot {
	return &Bot{Side: side, bindings: input.BindingsFor(side)}
}

// Keys returns the keys to hold for the next tick.
func (b *Bot) Keys(f *snapshot.Frame) input.State {
	hero, ok := b.hero(f)
	if !ok {
		return input.State{}
	}
	goal, ok := b.Goal(f, hero)
	if !ok {
		return input.State{}
	}
	return b.steer(hero.X, hero.Y, goal)
}

// Goal picks where the hero should head next.
func (b *Bot) Goal(f *snapshot.Frame, hero snapshot.Hero) (types.Point, bool) {
	if hero.Mask == "" {
		best, bestDist := types.Point{}, math.MaxFloat64
		for _, m := range f.Masks {
			if d := math.Hypot(m.X-hero.X, m.Y-hero.Y); d < bestDist {
				best, bestDist = types.Point{X: m.X, Y: m.Y}, d
			}
		}
		return best, bestDist < math.MaxFloat64
	}

	// Deliver to the most advanced friendly minion.
	enemyBase := defs.BaseAnchor(b.Side.Opponent())
	best, bestDist := types.Point{}, math.MaxFloat64
	for _, m := range f.Minions {
		if m.Side != b.Side || !m.Active || m.HasMask {
			continue
		}
		if d := math.Hypot(m.X-enemyBase.X, m.Y-enemyBase.Y); d < bestDist {
			best, bestDist = types.Point{X: m.X, Y: m.Y}, d
		}
	}
	return best, bestDist < math.MaxFloat64
}

func (b *Bot) steer(x, y float64, goal types.Point) input.State {
	keys := input.State{}
	if goal.X > x+deadZone {
		keys[b.bindings.Right] = true
	} else if goal.X < x-deadZone {
		keys[b.bindings.Left] = true
	}
	if goal.Y > y+deadZone {
		keys[b.bindings.Down] = true
	} else if goal.Y < y-deadZone {
		keys[b.bindings.Up] = true
	}
	return keys
}

func (b *Bot) hero(f *snapshot.Frame) (snapshot.Hero, bool) {
	for _, h := range f.Heroes {
		if h.Side == b.Side {
			return h, true
		}
	}
	return snapshot.Hero{}, false
}
