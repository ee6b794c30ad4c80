// component/movement.go
package component

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/utils"
)

// Body — позиция и радиус круглой сущности на арене.
type Body struct {
	X, Y   float64
	Radius float64
}

// Pos returns the centre of the body.
func (b *Body) Pos() types.Point {
	return types.Point{X: b.X, Y: b.Y}
}

// DistanceTo returns the centre distance to (x, y).
func (b *Body) DistanceTo(x, y float64) float64 {
	return utils.Distance(b.X, b.Y, x, y)
}

// Touches reports whether two bodies overlap.
func (b *Body) Touches(o *Body) bool {
	return utils.Overlaps(b.X, b.Y, b.Radius, o.X, o.Y, o.Radius)
}
