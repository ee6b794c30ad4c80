// Package input defines the key-state contract between input collaborators
// (window, terminal, scripted bots) and the simulation. The simulation never
// listens to devices itself: frontends fill a State before every tick.
package input

import "github.com/hanokhaloni/MaskTheMinion-draft/internal/types"

// Key identifies a movement key, named the way browsers report them.
type Key string

const (
	KeyW          Key = "w"
	KeyA          Key = "a"
	KeyS          Key = "s"
	KeyD          Key = "d"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// State maps a key to its pressed state for one tick.
type State map[Key]bool

// Pressed reports whether k is held. A nil State has nothing pressed.
func (s State) Pressed(k Key) bool {
	return s[k]
}

// Clone returns an independent copy so the caller can keep mutating its map.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Bindings is the key set that moves one hero.
type Bindings struct {
	Up, Down, Left, Right Key
}

var bindings = map[types.Side]Bindings{
	types.SideRed:  {Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD},
	types.SideBlue: {Up: KeyArrowUp, Down: KeyArrowDown, Left: KeyArrowLeft, Right: KeyArrowRight},
}

// BindingsFor returns the fixed key mapping of side.
func BindingsFor(side types.Side) Bindings {
	return bindings[side]
}

// Axis returns the held direction on each axis as -1, 0 or 1.
// Opposite keys cancel out.
func (b Bindings) Axis(s State) (x, y float64) {
	if s.Pressed(b.Up) {
		y--
	}
	if s.Pressed(b.Down) {
		y++
	}
	if s.Pressed(b.Left) {
		x--
	}
	if s.Pressed(b.Right) {
		x++
	}
	return x, y
}
