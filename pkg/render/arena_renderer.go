package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/snapshot"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

const (
	laneWidth   = 36
	baseSize    = 56
	hpBarHeight = 4
)

// ArenaRenderer draws frames. Lanes and bases never change, so they are
// rendered once into a background image.
type ArenaRenderer struct {
	width, height int
	colors        ArenaColors
	fontFace      font.Face
	mapImage      *ebiten.Image
	deathGrace    int
	flashes       Flashes
}

// Flashes reports how strongly an entity flashes from a recent hit, 0..1.
type Flashes interface {
	Intensity(id types.EntityID) float64
}

// SetFlashes enables damage flashes. Nil disables them.
func (r *ArenaRenderer) SetFlashes(f Flashes) {
	r.flashes = f
}

func (r *ArenaRenderer) flash(id types.EntityID) float64 {
	if r.flashes == nil {
		return 0
	}
	return r.flashes.Intensity(id)
}

func NewArenaRenderer(width, height int, face font.Face, colors ArenaColors, deathGrace int) *ArenaRenderer {
	r := &ArenaRenderer{
		width:      width,
		height:     height,
		colors:     colors,
		fontFace:   face,
		mapImage:   ebiten.NewImage(width, height),
		deathGrace: deathGrace,
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение арены
func (r *ArenaRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)

	for _, lane := range types.Lanes {
		prev := defs.BaseAnchor(types.SideRed)
		for _, wp := range defs.Route(types.SideRed, lane) {
			vector.StrokeLine(r.mapImage, float32(prev.X), float32(prev.Y), float32(wp.X), float32(wp.Y), laneWidth, r.colors.LaneColor, true)
			prev = wp
		}
	}
	for _, side := range types.Sides {
		at := defs.BaseAnchor(side)
		c := DarkenColor(config.TowerColors[string(side)])
		vector.DrawFilledRect(r.mapImage, float32(at.X-baseSize/2), float32(at.Y-baseSize/2), baseSize, baseSize, c, true)
		vector.StrokeRect(r.mapImage, float32(at.X-baseSize/2), float32(at.Y-baseSize/2), baseSize, baseSize, r.colors.StrokeWidth, config.HeroColors[string(side)], true)
	}
}

// Draw renders the frame on top of the arena background.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, f *snapshot.Frame) {
	screen.DrawImage(r.mapImage, nil)

	for i := range f.Towers {
		r.drawTower(screen, &f.Towers[i])
	}
	for i := range f.Masks {
		r.drawMask(screen, &f.Masks[i])
	}
	for i := range f.Minions {
		r.drawMinion(screen, &f.Minions[i])
	}
	for i := range f.Projectiles {
		p := &f.Projectiles[i]
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.ProjectileRadius, ProjectileColor(p.Style), true)
	}
	for i := range f.Heroes {
		r.drawHero(screen, &f.Heroes[i])
	}
}

func (r *ArenaRenderer) drawTower(screen *ebiten.Image, t *snapshot.Tower) {
	x, y := float32(t.X), float32(t.Y)
	c := config.TowerColors[string(t.Side)]
	switch t.Condition {
	case component.TowerDestroyed:
		vector.DrawFilledCircle(screen, x, y, float32(t.Radius), r.colors.DestroyedColor, true)
		return
	case component.TowerDamaged:
		c = DarkenColor(c)
	}
	c = Flash(c, r.flash(t.ID))
	vector.DrawFilledCircle(screen, x, y, float32(t.Radius), c, true)
	vector.StrokeCircle(screen, x, y, float32(t.Radius), r.colors.StrokeWidth, config.HeroColors[string(t.Side)], true)
	r.drawHPBar(screen, t.X, t.Y-t.Radius-8, t.Radius*2, t.HP, t.MaxHP, config.HeroColors[string(t.Side)])
}

func (r *ArenaRenderer) drawMask(screen *ebiten.Image, m *snapshot.Mask) {
	x, y := float32(m.X), float32(m.Y)
	vector.DrawFilledCircle(screen, x, y, config.MaskRadius, config.MaskPickupColor, true)
	vector.StrokeCircle(screen, x, y, config.MaskRadius+2, r.colors.StrokeWidth, r.colors.MaskRingColor, true)
	r.drawCentered(screen, MaskGlyph(m.Type), m.X, m.Y, r.colors.TextDarkColor)
}

func (r *ArenaRenderer) drawMinion(screen *ebiten.Image, m *snapshot.Minion) {
	c := config.MinionColors[string(m.Side)]
	if !m.Active {
		// Умирающий миньон тает за время грейс-периода
		fade := 1.0
		if r.deathGrace > 0 {
			fade = 1 - float64(m.DeathTimer)/float64(r.deathGrace)
		}
		vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), float32(m.Radius), Fade(c, fade*0.6), true)
		return
	}

	vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), float32(m.Radius), Flash(c, r.flash(m.ID)), true)
	if m.HasMask {
		vector.StrokeCircle(screen, float32(m.X), float32(m.Y), float32(m.Radius)+3, r.colors.StrokeWidth, r.colors.MaskRingColor, true)
	}
	r.drawCentered(screen, ClassGlyph(m.Class), m.X, m.Y, r.colors.TextDarkColor)
	r.drawHPBar(screen, m.X, m.Y-m.Radius-6, m.Radius*2, m.HP, m.MaxHP, config.HeroColors[string(m.Side)])
}

func (r *ArenaRenderer) drawHero(screen *ebiten.Image, h *snapshot.Hero) {
	x, y := float32(h.X), float32(h.Y)
	vector.DrawFilledCircle(screen, x, y, float32(h.Radius), config.HeroColors[string(h.Side)], true)
	vector.StrokeCircle(screen, x, y, float32(h.Radius), r.colors.StrokeWidth, r.colors.TextLightColor, true)
	if h.Mask != "" {
		vector.StrokeCircle(screen, x, y, float32(h.Radius)+4, r.colors.StrokeWidth*1.5, r.colors.MaskRingColor, true)
		r.drawCentered(screen, MaskGlyph(h.Mask), h.X, h.Y, r.colors.TextLightColor)
	}
}

func (r *ArenaRenderer) drawHPBar(screen *ebiten.Image, cx, y, width float64, hp, maxHP int, c color.RGBA) {
	if maxHP <= 0 {
		return
	}
	ratio := float64(hp) / float64(maxHP)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	x := float32(cx - width/2)
	vector.DrawFilledRect(screen, x, float32(y), float32(width), hpBarHeight, r.colors.HPBarBackColor, false)
	vector.DrawFilledRect(screen, x, float32(y), float32(width*ratio), hpBarHeight, c, false)
}

func (r *ArenaRenderer) drawCentered(screen *ebiten.Image, s string, cx, cy float64, c color.Color) {
	if r.fontFace == nil {
		return
	}
	w := len(s) * config.TextCharWidth
	text.Draw(screen, s, r.fontFace, int(cx)-w/2, int(cy)+4, c)
}
