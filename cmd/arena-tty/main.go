// cmd/arena-tty/main.go plays the match in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/app"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/audio"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/bot"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/input"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/snapshot"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// Terminals report key repeats but no releases: a key counts as held
// until this long after its last repeat.
const holdTimeout = 300 * time.Millisecond

type Viewer struct {
	screen        tcell.Screen
	width, height int

	game  *app.Game
	frame snapshot.Frame
	bots  []*bot.Bot
	held  map[input.Key]time.Time
	audio *audio.Player
}

func NewViewer(g *app.Game, bots []*bot.Bot, player *audio.Player) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &Viewer{
		screen: screen,
		game:   g,
		frame:  g.Snapshot(),
		bots:   bots,
		held:   make(map[input.Key]time.Time),
		audio:  player,
	}
	v.width, v.height = screen.Size()
	return v, nil
}

// handleInput returns false when the player quits.
func (v *Viewer) handleInput(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if k, ok := ttyKey(ev.Key(), ev.Rune()); ok {
			v.held[k] = now
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M') && v.audio != nil {
			v.audio.SetMuted(!v.audio.Muted())
		}
	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) tick(now time.Time) {
	keys := heldKeys(v.held, now)
	for _, side := range types.Sides {
		v.game.SetInput(side, keys)
	}
	for _, b := range v.bots {
		v.game.SetInput(b.Side, b.Keys(&v.frame))
	}
	v.game.Tick()
	v.frame = v.game.Snapshot()
}

func (v *Viewer) run(tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := pollEvents(v.screen.PollEvent, done)

	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return
			}
			if !v.handleInput(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			v.tick(now)
			v.draw()
		}
	}
}

// pollEvents pumps poll into a channel until poll returns nil (screen finalized)
// or done closes. A nil event is forwarded before the channel closes.
func pollEvents(poll func() tcell.Event, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := poll()
			select {
			case events <- ev:
			case <-done:
				return
			}
			if ev == nil {
				return
			}
		}
	}()
	return events
}

func (v *Viewer) cleanup() {
	if v.audio != nil {
		v.audio.Close()
	}
	v.screen.Fini()
}

func main() {
	var paths app.ContentPaths
	flag.StringVar(&paths.Tuning, "tuning", "", "JSON file overriding match tunables")
	flag.StringVar(&paths.Units, "units", "", "JSON file overriding unit stat blocks")
	flag.StringVar(&paths.Masks, "masks", "", "JSON file replacing the mask loot table")
	seed := flag.Int64("seed", 0, "seed for mask pickups (0 = random)")
	botSide := flag.String("bot", "Blue", "side played by the computer: Red, Blue or none")
	mute := flag.Bool("mute", false, "start with sound off")
	flag.Parse()

	tuning, err := app.LoadContent(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load content: %v\n", err)
		os.Exit(1)
	}

	var bots []*bot.Bot
	switch *botSide {
	case string(types.SideRed), string(types.SideBlue):
		bots = append(bots, bot.New(types.Side(*botSide)))
	case "none":
	default:
		fmt.Fprintf(os.Stderr, "Unknown bot side %q\n", *botSide)
		os.Exit(2)
	}

	player := audio.NewPlayer(0.4)
	if err := player.Init(); err != nil {
		// Non-fatal, the match runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	player.SetMuted(*mute)
	d := event.NewDispatcher()
	audio.NewListener(player).Subscribe(d)

	// Log lines would tear the terminal view.
	g := app.NewGame(app.WithTuning(tuning), app.WithSeed(*seed), app.WithDispatcher(d),
		app.WithLogger(log.New(io.Discard, "", 0)))

	viewer, err := NewViewer(g, bots, player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	viewer.run(tuning.TicksPerSecond)
	viewer.cleanup()

	if stats, over := g.Result(); over {
		fmt.Printf("%s wins in %ds (damage red %d, blue %d)\n",
			stats.Winner, stats.MatchTime, stats.RedDamageDealt, stats.BlueDamageDealt)
	}
}
