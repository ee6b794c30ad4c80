// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает матч: тики не идут, пока пауза не снята.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	session       *Session
}

func NewPauseState(sm *StateMachine, prevState State, session *Session) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		session:       session,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	// Рисуем замороженную игру под затемнением
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 150}, false)

	label := "PAUSED"
	x := (config.ScreenWidth - len(label)*config.TextCharWidth) / 2
	text.Draw(screen, label, s.session.FontFace, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
