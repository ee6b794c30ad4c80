// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// ArenaColors holds all the color definitions needed to render the arena.
type ArenaColors struct {
	BackgroundColor color.RGBA
	LaneColor       color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	HPBarBackColor  color.RGBA
	MaskRingColor   color.RGBA
	DestroyedColor  color.RGBA
	StrokeWidth     float32
}

// DefaultArenaColors reads the palette from config.
func DefaultArenaColors() ArenaColors {
	return ArenaColors{
		BackgroundColor: config.BackgroundColor,
		LaneColor:       config.LaneColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		HPBarBackColor:  config.HPBarBackColor,
		MaskRingColor:   config.MaskRingColor,
		DestroyedColor:  config.DestroyedColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade scales the alpha of c (premultiplied, so every channel).
func Fade(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

// Flash blends c towards white by f.
func Flash(c color.RGBA, f float64) color.RGBA {
	if f <= 0 {
		return c
	}
	if f > 1 {
		f = 1
	}
	mix := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*f) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// ProjectileColor returns the color of a shot style.
func ProjectileColor(style defs.ProjectileStyle) color.RGBA {
	switch style {
	case defs.StyleSpell:
		return config.SpellColor
	case defs.StyleTowerArrow:
		return config.TowerArrowColor
	}
	return config.ArrowColor
}

// ClassGlyph is the single letter drawn on a minion.
func ClassGlyph(class types.UnitClass) string {
	switch class {
	case types.ClassMage:
		return "M"
	case types.ClassArcher:
		return "A"
	}
	return "F"
}

// MaskGlyph is the short label drawn on a mask pickup.
func MaskGlyph(m types.MaskType) string {
	switch m {
	case types.MaskConvertMage:
		return "M"
	case types.MaskConvertFighter:
		return "F"
	case types.MaskConvertArcher:
		return "A"
	case types.MaskBuffHP:
		return "+H"
	case types.MaskBuffDamage:
		return "+D"
	case types.MaskBuffSpeed:
		return "+S"
	}
	return "?"
}
