// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

const (
	panelWidth  = 420
	panelMargin = 24
	lineHeight  = 22
)

// InfoPanel displays the final match statistics.
type InfoPanel struct {
	fontFace      font.Face
	titleFontFace font.Face
	Background    color.RGBA
}

// NewInfoPanel creates a new statistics panel.
func NewInfoPanel(face font.Face, titleFace font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace:      face,
		titleFontFace: titleFace,
		Background:    config.HPBarBackColor,
	}
}

// Title returns the headline for the winner.
func Title(winner types.Side) string {
	if winner == "" {
		return "DRAW"
	}
	return fmt.Sprintf("%s TEAM WINS", winner)
}

// StatsLines formats the stats body, one line per entry.
func StatsLines(s component.MatchStats) []string {
	return []string{
		fmt.Sprintf("Match time: %d:%02d", s.MatchTime/60, s.MatchTime%60),
		fmt.Sprintf("Red damage dealt:  %d", s.RedDamageDealt),
		fmt.Sprintf("Blue damage dealt: %d", s.BlueDamageDealt),
		fmt.Sprintf("Red minions spawned:  %d", s.RedMinionsSpawned),
		fmt.Sprintf("Blue minions spawned: %d", s.BlueMinionsSpawned),
	}
}

// Draw renders the panel centred on the screen.
func (p *InfoPanel) Draw(screen *ebiten.Image, s component.MatchStats) {
	lines := StatsLines(s)
	height := panelMargin*3 + lineHeight*(len(lines)+1)
	x := (config.ScreenWidth - panelWidth) / 2
	y := (config.ScreenHeight - height) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), panelWidth, float32(height), p.Background, false)
	titleColor := config.TextLightColor
	if c, ok := config.HeroColors[string(s.Winner)]; ok {
		titleColor = c
	}
	vector.StrokeRect(screen, float32(x), float32(y), panelWidth, float32(height), 2, titleColor, false)

	title := Title(s.Winner)
	text.Draw(screen, title, p.titleFontFace, x+(panelWidth-len(title)*config.TextCharWidth)/2, y+panelMargin+lineHeight/2, titleColor)
	for i, line := range lines {
		text.Draw(screen, line, p.fontFace, x+panelMargin, y+panelMargin*2+lineHeight*(i+1), config.TextLightColor)
	}
}
