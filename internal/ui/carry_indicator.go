package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// CarryIndicator shows which mask a hero holds under the base pips.
type CarryIndicator struct {
	X, Y     int
	Side     types.Side
	Align    int // 1 left aligned, -1 right aligned
	fontFace font.Face
}

func NewCarryIndicator(x, y int, side types.Side, align int, face font.Face) *CarryIndicator {
	return &CarryIndicator{X: x, Y: y, Side: side, Align: align, fontFace: face}
}

// CarryLabel is the text for a carried mask, or the empty-handed hint.
func CarryLabel(m types.MaskType) string {
	if m == "" {
		return "no mask"
	}
	return "carrying " + m.Label()
}

func (c *CarryIndicator) Draw(screen *ebiten.Image, m types.MaskType) {
	label := CarryLabel(m)
	x := c.X
	if c.Align < 0 {
		x -= len(label) * config.TextCharWidth
	}
	var clr color.Color = config.TextLightColor
	if m != "" {
		clr = config.MaskRingColor
	}
	text.Draw(screen, label, c.fontFace, x, c.Y, clr)
}
