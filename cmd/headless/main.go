// cmd/headless/main.go runs a bot-versus-bot match without a window and
// optionally records it as a msgpack frame stream.
package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/app"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/bot"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/snapshot"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

type options struct {
	paths    app.ContentPaths
	seed     int64
	maxTicks int
	every    int
	out      string
	quiet    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.paths.Tuning, "tuning", "", "JSON file overriding match tunables")
	flag.StringVar(&opts.paths.Units, "units", "", "JSON file overriding unit stat blocks")
	flag.StringVar(&opts.paths.Masks, "masks", "", "JSON file replacing the mask loot table")
	flag.Int64Var(&opts.seed, "seed", 1, "seed for mask pickups")
	flag.IntVar(&opts.maxTicks, "ticks", 60*60*30, "stop after this many ticks")
	flag.IntVar(&opts.every, "every", 1, "record every n-th frame")
	flag.StringVar(&opts.out, "out", "", "frame stream file, - for stdout, empty to record nothing")
	flag.BoolVar(&opts.quiet, "quiet", false, "silence match logging")
	flag.Parse()

	stats, over, err := run(opts)
	if err != nil {
		log.Fatal(err)
	}
	if !over {
		log.Printf("No winner after %d ticks", opts.maxTicks)
		return
	}
	log.Printf("%s wins in %ds: damage red %d blue %d, minions red %d blue %d",
		stats.Winner, stats.MatchTime,
		stats.RedDamageDealt, stats.BlueDamageDealt,
		stats.RedMinionsSpawned, stats.BlueMinionsSpawned)
}

func run(opts options) (component.MatchStats, bool, error) {
	tuning, err := app.LoadContent(opts.paths)
	if err != nil {
		return component.MatchStats{}, false, err
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if opts.quiet {
		logger = log.New(io.Discard, "", 0)
	}

	var w *snapshot.Writer
	switch opts.out {
	case "":
	case "-":
		buf := bufio.NewWriter(os.Stdout)
		defer buf.Flush()
		w = snapshot.NewWriter(buf)
	default:
		f, err := os.Create(opts.out)
		if err != nil {
			return component.MatchStats{}, false, err
		}
		defer f.Close()
		buf := bufio.NewWriter(f)
		defer buf.Flush()
		w = snapshot.NewWriter(buf)
	}

	g := app.NewGame(app.WithTuning(tuning), app.WithSeed(opts.seed), app.WithLogger(logger))
	stats, over, err := playOut(g, opts.maxTicks, opts.every, w)
	if w != nil {
		logger.Printf("Recorded %d frames", w.Frames())
	}
	return stats, over, err
}

// playOut ticks g with two bots until game over or maxTicks.
func playOut(g *app.Game, maxTicks, every int, w *snapshot.Writer) (component.MatchStats, bool, error) {
	if every < 1 {
		every = 1
	}
	bots := []*bot.Bot{bot.New(types.SideRed), bot.New(types.SideBlue)}
	frame := g.Snapshot()
	for tick := 0; tick < maxTicks && !g.IsOver(); tick++ {
		for _, b := range bots {
			g.SetInput(b.Side, b.Keys(&frame))
		}
		g.Tick()
		frame = g.Snapshot()
		if w != nil && (frame.Header.Tick%every == 0 || frame.Header.Over) {
			if err := w.Write(frame); err != nil {
				return component.MatchStats{}, false, err
			}
		}
	}
	stats, over := g.Result()
	return stats, over, nil
}
