package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/snapshot"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/ui"
	"github.com/hanokhaloni/MaskTheMinion-draft/pkg/render"
)

// GameOverState shows the final arena under the stats panel until SPACE restarts.
type GameOverState struct {
	sm       *StateMachine
	session  *Session
	renderer *render.ArenaRenderer
	frame    snapshot.Frame
	stats    component.MatchStats
	panel    *ui.InfoPanel
}

func NewGameOverState(sm *StateMachine, session *Session, renderer *render.ArenaRenderer, frame snapshot.Frame, stats component.MatchStats) *GameOverState {
	return &GameOverState{
		sm:       sm,
		session:  session,
		renderer: renderer,
		frame:    frame,
		stats:    stats,
		panel:    ui.NewInfoPanel(session.FontFace, session.FontFace),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm, s.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, &s.frame)
	s.panel.Draw(screen, s.stats)

	hint := "Press SPACE to play again"
	x := (config.ScreenWidth - len(hint)*config.TextCharWidth) / 2
	text.Draw(screen, hint, s.session.FontFace, x, config.ScreenHeight-config.HUDTopY, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
