// internal/ui/player_health_indicator.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// BaseHealthIndicator отображает здоровье базы стороны рядом кружков.
// Кружки растут от края экрана к центру.
type BaseHealthIndicator struct {
	X, Y float32
	Side types.Side
	// Direction is 1 to grow rightwards, -1 leftwards
	Direction float32
}

// NewBaseHealthIndicator создает новый индикатор здоровья базы.
func NewBaseHealthIndicator(x, y float32, side types.Side, direction float32) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y, Side: side, Direction: direction}
}

// PipCenters returns where each of maxHP pips is drawn.
func (i *BaseHealthIndicator) PipCenters(maxHP int) [][2]float32 {
	out := make([][2]float32, 0, maxHP)
	step := float32(config.PipRadius*2 + config.PipSpacing)
	for j := 0; j < maxHP; j++ {
		out = append(out, [2]float32{i.X + i.Direction*float32(j)*step, i.Y})
	}
	return out
}

// Draw рисует кружки: заполненные для оставшегося здоровья, пустые для потерянного.
func (i *BaseHealthIndicator) Draw(screen *ebiten.Image, hp, maxHP int) {
	full := config.HeroColors[string(i.Side)]
	for j, c := range i.PipCenters(maxHP) {
		clr := config.PipEmptyColor
		if j < hp {
			clr = full
		}
		vector.DrawFilledCircle(screen, c[0], c[1], config.PipRadius, clr, true)
		vector.StrokeCircle(screen, c[0], c[1], config.PipRadius, 1, config.TextLightColor, true)
	}
}
