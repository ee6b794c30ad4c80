// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
)

var menuLines = []string{
	"MASK THE MINION",
	"",
	"Red hero: W A S D",
	"Blue hero: arrow keys",
	"Grab a mask, walk it to a friendly minion.",
	"Three minions in the enemy base win the match.",
	"",
	"P / Esc - pause     M - mute",
	"",
	"Press SPACE to start",
}

// MenuState — стартовый экран
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	y := config.ScreenHeight/2 - len(menuLines)*lineStep/2
	for i, line := range menuLines {
		x := (config.ScreenWidth - len(line)*config.TextCharWidth) / 2
		text.Draw(screen, line, m.session.FontFace, x, y+i*lineStep, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
