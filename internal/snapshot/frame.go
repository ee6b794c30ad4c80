// Package snapshot captures value copies of the arena for renderers and
// out-of-process viewers. Frames never alias engine state.
package snapshot

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/entity"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// Header carries the match level numbers of a frame.
type Header struct {
	Tick       int                  `msgpack:"t"`
	WaveTimer  int                  `msgpack:"wt"`
	Wave       int                  `msgpack:"w"`
	RedBaseHP  int                  `msgpack:"rb"`
	BlueBaseHP int                  `msgpack:"bb"`
	Over       bool                 `msgpack:"go"`
	Stats      component.MatchStats `msgpack:"st"`
}

type Hero struct {
	ID     types.EntityID `msgpack:"id"`
	Side   types.Side     `msgpack:"s"`
	X      float64        `msgpack:"x"`
	Y      float64        `msgpack:"y"`
	Radius float64        `msgpack:"r"`
	Mask   types.MaskType `msgpack:"m,omitempty"`
}

type Minion struct {
	ID         types.EntityID  `msgpack:"id"`
	Side       types.Side      `msgpack:"s"`
	Lane       types.Lane      `msgpack:"l"`
	Class      types.UnitClass `msgpack:"c"`
	X          float64         `msgpack:"x"`
	Y          float64         `msgpack:"y"`
	Radius     float64         `msgpack:"r"`
	HP         int             `msgpack:"hp"`
	MaxHP      int             `msgpack:"mhp"`
	Active     bool            `msgpack:"a"`
	HasMask    bool            `msgpack:"hm"`
	DeathTimer int             `msgpack:"dt"`
}

type Tower struct {
	ID        types.EntityID           `msgpack:"id"`
	Side      types.Side               `msgpack:"s"`
	Lane      types.Lane               `msgpack:"l"`
	X         float64                  `msgpack:"x"`
	Y         float64                  `msgpack:"y"`
	Radius    float64                  `msgpack:"r"`
	HP        int                      `msgpack:"hp"`
	MaxHP     int                      `msgpack:"mhp"`
	Condition component.TowerCondition `msgpack:"cd"`
}

type Mask struct {
	ID   types.EntityID `msgpack:"id"`
	Type types.MaskType `msgpack:"k"`
	X    float64        `msgpack:"x"`
	Y    float64        `msgpack:"y"`
}

type Projectile struct {
	ID    types.EntityID       `msgpack:"id"`
	Side  types.Side           `msgpack:"s"`
	Style defs.ProjectileStyle `msgpack:"st"`
	X     float64              `msgpack:"x"`
	Y     float64              `msgpack:"y"`
}

// Frame is the full arena at the end of one tick.
type Frame struct {
	Header      Header       `msgpack:"h"`
	Heroes      []Hero       `msgpack:"hr"`
	Minions     []Minion     `msgpack:"mn"`
	Towers      []Tower      `msgpack:"tw"`
	Masks       []Mask       `msgpack:"mk"`
	Projectiles []Projectile `msgpack:"pj"`
}

// Capture copies every entity of w into a new frame.
func Capture(w *entity.World, h Header) Frame {
	f := Frame{
		Header:      h,
		Heroes:      make([]Hero, 0, len(w.Heroes)),
		Minions:     make([]Minion, 0, len(w.Minions)),
		Towers:      make([]Tower, 0, len(w.Towers)),
		Masks:       make([]Mask, 0, len(w.Masks)),
		Projectiles: make([]Projectile, 0, len(w.Projectiles)),
	}
	for _, hero := range w.Heroes {
		fh := Hero{ID: hero.ID, Side: hero.Side, X: hero.X, Y: hero.Y, Radius: hero.Radius}
		if hero.Carrying() {
			fh.Mask = *hero.CurrentMask
		}
		f.Heroes = append(f.Heroes, fh)
	}
	for _, m := range w.Minions {
		f.Minions = append(f.Minions, Minion{
			ID: m.ID, Side: m.Side, Lane: m.Lane, Class: m.Class,
			X: m.X, Y: m.Y, Radius: m.Radius,
			HP: m.HP, MaxHP: m.MaxHP,
			Active: m.Active, HasMask: m.HasMask, DeathTimer: m.DeathTimer,
		})
	}
	for _, t := range w.Towers {
		f.Towers = append(f.Towers, Tower{
			ID: t.ID, Side: t.Side, Lane: t.Lane,
			X: t.X, Y: t.Y, Radius: t.Radius,
			HP: t.HP, MaxHP: t.MaxHP, Condition: t.Condition(),
		})
	}
	for _, m := range w.Masks {
		if m.Active {
			f.Masks = append(f.Masks, Mask{ID: m.ID, Type: m.Type, X: m.X, Y: m.Y})
		}
	}
	for _, p := range w.Projectiles {
		if p.Active {
			f.Projectiles = append(f.Projectiles, Projectile{ID: p.ID, Side: p.Side, Style: p.Style, X: p.X, Y: p.Y})
		}
	}
	return f
}

// BaseHP returns the base hp of side recorded in the frame.
func (f *Frame) BaseHP(side types.Side) int {
	if side == types.SideBlue {
		return f.Header.BlueBaseHP
	}
	return f.Header.RedBaseHP
}
