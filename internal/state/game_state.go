// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "github.com/hanokhaloni/MaskTheMinion-draft/internal/app"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/effect"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/snapshot"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/ui"
	"github.com/hanokhaloni/MaskTheMinion-draft/pkg/render"
)

const (
	lineStep      = 22
	flashDuration = 8
)

// GameState — состояние матча: один тик симуляции на кадр.
type GameState struct {
	sm       *StateMachine
	session  *Session
	game     *game.Game
	renderer *render.ArenaRenderer
	flashes  *effect.Tracker
	frame    snapshot.Frame

	waveIndicator *ui.WaveIndicator
	health        map[types.Side]*ui.BaseHealthIndicator
	carry         map[types.Side]*ui.CarryIndicator
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	flashes := effect.NewTracker(flashDuration)
	gameLogic := session.NewGame(flashes.Subscribe)

	renderer := render.NewArenaRenderer(config.ScreenWidth, config.ScreenHeight, session.FontFace,
		render.DefaultArenaColors(), session.Tuning.DeathGraceTicks)
	renderer.SetFlashes(flashes)

	face := session.FontFace
	right := config.ScreenWidth - config.IndicatorOffsetX
	gs := &GameState{
		sm:            sm,
		session:       session,
		game:          gameLogic,
		renderer:      renderer,
		flashes:       flashes,
		frame:         gameLogic.Snapshot(),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, config.HUDTopY+4, face),
		health: map[types.Side]*ui.BaseHealthIndicator{
			types.SideRed:  ui.NewBaseHealthIndicator(config.IndicatorOffsetX, config.HUDTopY, types.SideRed, 1),
			types.SideBlue: ui.NewBaseHealthIndicator(float32(right), config.HUDTopY, types.SideBlue, -1),
		},
		carry: map[types.Side]*ui.CarryIndicator{
			types.SideRed:  ui.NewCarryIndicator(config.IndicatorOffsetX-config.PipRadius, config.HUDTopY+30, types.SideRed, 1, face),
			types.SideBlue: ui.NewCarryIndicator(right+config.PipRadius, config.HUDTopY+30, types.SideBlue, -1, face),
		},
	}
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g, g.session))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.session.ToggleMute()
	}

	keys := readKeys(ebiten.IsKeyPressed)
	for _, side := range types.Sides {
		g.game.SetInput(side, keys)
	}
	g.flashes.Update()
	g.game.Tick()
	g.frame = g.game.Snapshot()

	if stats, over := g.game.Result(); over {
		g.sm.SetState(NewGameOverState(g.sm, g.session, g.renderer, g.frame, stats))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.frame)
	g.drawHUD(screen)
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	maxHP := g.session.Tuning.BaseHP
	for _, side := range types.Sides {
		g.health[side].Draw(screen, g.frame.BaseHP(side), maxHP)
	}
	for _, h := range g.frame.Heroes {
		if c, ok := g.carry[h.Side]; ok {
			c.Draw(screen, h.Mask)
		}
	}
	g.waveIndicator.Draw(screen, g.frame.Header.Wave, g.game.WaveCountdownSeconds())
}

func (g *GameState) Exit() {}
