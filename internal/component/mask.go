package component

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// Mask — подбираемая маска, лежащая на арене.
type Mask struct {
	ID types.EntityID
	Body
	Type   types.MaskType
	Active bool
}

// NewMask places an unclaimed mask at (x, y).
func NewMask(id types.EntityID, x, y float64, t types.MaskType) *Mask {
	return &Mask{
		ID:     id,
		Body:   Body{X: x, Y: y, Radius: config.MaskRadius},
		Type:   t,
		Active: true,
	}
}
