// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/app"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/audio"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var paths app.ContentPaths
	flag.StringVar(&paths.Tuning, "tuning", "", "JSON file overriding match tunables")
	flag.StringVar(&paths.Units, "units", "", "JSON file overriding unit stat blocks")
	flag.StringVar(&paths.Masks, "masks", "", "JSON file replacing the mask loot table")
	seed := flag.Int64("seed", 0, "seed for mask pickups (0 = random)")
	skipMenu := flag.Bool("skip-menu", false, "start the match right away")
	mute := flag.Bool("mute", false, "start with sound off")
	volume := flag.Float64("volume", 0.4, "sound volume 0..1")
	flag.Parse()

	tuning, err := app.LoadContent(paths)
	if err != nil {
		log.Fatal(err)
	}

	player := audio.NewPlayer(*volume)
	if err := player.Init(); err != nil {
		// Игра работает и без звука
		log.Printf("Audio initialization failed: %v", err)
	}
	defer player.Close()
	player.SetMuted(*mute)

	session := &state.Session{
		Tuning:   tuning,
		Seed:     *seed,
		Audio:    player,
		FontFace: basicfont.Face7x13,
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, session))
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	ebiten.SetTPS(tuning.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Mask the Minion")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
