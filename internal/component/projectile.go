// internal/component/projectile.go
package component

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// Projectile представляет летящий снаряд. Цель хранится по ID и
// разыскивается в мире на каждом тике, поэтому снаряд самонаводящийся.
type Projectile struct {
	ID types.EntityID
	Body
	TargetID types.EntityID
	Speed    float64
	Damage   int
	Side     types.Side // сторона стрелявшего, ей засчитывается урон
	Style    defs.ProjectileStyle
	Active   bool
}

// NewProjectile launches a projectile from (x, y).
func NewProjectile(id types.EntityID, x, y float64, target types.EntityID, damage int, side types.Side, speed float64, style defs.ProjectileStyle) *Projectile {
	return &Projectile{
		ID:       id,
		Body:     Body{X: x, Y: y, Radius: config.ProjectileRadius},
		TargetID: target,
		Speed:    speed,
		Damage:   damage,
		Side:     side,
		Style:    style,
		Active:   true,
	}
}
