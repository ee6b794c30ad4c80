package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/input"
)

// Both heroes share one keyboard: WASD for Red, arrows for Blue.
var keyBindings = map[ebiten.Key]input.Key{
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyD:          input.KeyD,
	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowRight: input.KeyArrowRight,
}

// readKeys builds the held-key state from a pressed predicate,
// normally ebiten.IsKeyPressed.
func readKeys(pressed func(ebiten.Key) bool) input.State {
	s := make(input.State, len(keyBindings))
	for ek, k := range keyBindings {
		if pressed(ek) {
			s[k] = true
		}
	}
	return s
}
