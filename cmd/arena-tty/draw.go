package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// Top rows hold the status line.
const statusRows = 1

var sideColors = map[types.Side]tcell.Color{
	types.SideRed:  tcell.NewRGBColor(220, 38, 38),
	types.SideBlue: tcell.NewRGBColor(37, 99, 235),
}

// project maps arena coordinates onto a cols x rows cell grid below the status line.
func project(p types.Point, cols, rows int) (x, y int) {
	x = int(p.X / config.ScreenWidth * float64(cols))
	y = statusRows + int(p.Y/config.ScreenHeight*float64(rows-statusRows))
	if x >= cols {
		x = cols - 1
	}
	if y >= rows {
		y = rows - 1
	}
	return x, y
}

func (v *Viewer) put(p types.Point, r rune, style tcell.Style) {
	x, y := project(p, v.width, v.height)
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *Viewer) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()
	f := &v.frame
	lane := tcell.StyleDefault.Foreground(tcell.NewRGBColor(51, 65, 85))

	for _, l := range types.Lanes {
		route := defs.Route(types.SideRed, l)
		for i := 1; i < len(route); i++ {
			a, b := route[i-1], route[i]
			for s := 0.0; s <= 1; s += 0.02 {
				v.put(types.Point{X: a.X + (b.X-a.X)*s, Y: a.Y + (b.Y-a.Y)*s}, '·', lane)
			}
		}
	}
	for _, side := range types.Sides {
		v.put(defs.BaseAnchor(side), '▣', tcell.StyleDefault.Foreground(sideColors[side]).Bold(true))
	}

	for _, t := range f.Towers {
		style := tcell.StyleDefault.Foreground(sideColors[t.Side])
		glyph := 'T'
		if t.HP <= 0 {
			style = tcell.StyleDefault.Foreground(tcell.ColorGray)
			glyph = 'x'
		}
		v.put(types.Point{X: t.X, Y: t.Y}, glyph, style)
	}
	for _, m := range f.Masks {
		v.put(types.Point{X: m.X, Y: m.Y}, '?', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
	for _, m := range f.Minions {
		style := tcell.StyleDefault.Foreground(sideColors[m.Side])
		if !m.Active {
			style = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		} else if m.HasMask {
			style = style.Underline(true)
		}
		v.put(types.Point{X: m.X, Y: m.Y}, classRune(m.Class), style)
	}
	for _, p := range f.Projectiles {
		v.put(types.Point{X: p.X, Y: p.Y}, '*', tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	for _, h := range f.Heroes {
		v.put(types.Point{X: h.X, Y: h.Y}, '@', tcell.StyleDefault.Foreground(sideColors[h.Side]).Bold(true).Reverse(true))
	}

	v.text(0, 0, statusLine(f.Header.RedBaseHP, f.Header.BlueBaseHP, f.Header.Wave, f.Header.Tick/v.game.Tuning().TicksPerSecond, f.Header.Over),
		tcell.StyleDefault.Foreground(tcell.ColorWhite))
	v.screen.Show()
}

func classRune(c types.UnitClass) rune {
	switch c {
	case types.ClassMage:
		return 'M'
	case types.ClassArcher:
		return 'A'
	}
	return 'F'
}

func statusLine(redHP, blueHP, wave, seconds int, over bool) string {
	s := fmt.Sprintf("Red base %d | Blue base %d | wave %d | %ds", redHP, blueHP, wave, seconds)
	if over {
		s += " | GAME OVER - Esc to quit"
	}
	return s
}
