package render

import (
	"image/color"
	"testing"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

func TestFlashBlendsTowardsWhite(t *testing.T) {
	c := color.RGBA{100, 0, 200, 255}
	if got := Flash(c, 0); got != c {
		t.Errorf("Expected unchanged color, got %v", got)
	}
	if got := Flash(c, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected white, got %v", got)
	}
	if got := Flash(c, 2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected clamped flash, got %v", got)
	}
}

func TestFadeClamps(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := Fade(c, -1); got != (color.RGBA{}) {
		t.Errorf("Expected transparent, got %v", got)
	}
	if got := Fade(c, 3); got != c {
		t.Errorf("Expected opaque, got %v", got)
	}
}

func TestProjectileColorByStyle(t *testing.T) {
	if ProjectileColor(defs.StyleSpell) != config.SpellColor {
		t.Errorf("Expected spell color")
	}
	if ProjectileColor(defs.StyleTowerArrow) != config.TowerArrowColor {
		t.Errorf("Expected tower arrow color")
	}
	if ProjectileColor(defs.StyleArrow) != config.ArrowColor {
		t.Errorf("Expected arrow color")
	}
}

func TestGlyphsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range []types.UnitClass{types.ClassFighter, types.ClassMage, types.ClassArcher} {
		g := ClassGlyph(c)
		if g == "" || seen[g] {
			t.Errorf("Expected a distinct glyph for %s, got %q", c, g)
		}
		seen[g] = true
	}
	masks := map[string]bool{}
	for _, m := range types.MaskTypes {
		masks[MaskGlyph(m)] = true
	}
	if len(masks) != len(types.MaskTypes) {
		t.Errorf("Expected %d distinct mask glyphs, got %d", len(types.MaskTypes), len(masks))
	}
}
