package app

import (
	"io"
	"log"
	"testing"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/input"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

func quietGame(opts ...Option) *Game {
	opts = append([]Option{WithLogger(log.New(io.Discard, "", 0)), WithSeed(42)}, opts...)
	return NewGame(opts...)
}

func tickN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}

func countSide(minions []*component.Minion, side types.Side) int {
	n := 0
	for _, m := range minions {
		if m.Side == side {
			n++
		}
	}
	return n
}

func TestNewGameSetup(t *testing.T) {
	g := quietGame()
	if len(g.Heroes()) != 2 || len(g.Towers()) != 6 {
		t.Fatalf("Expected 2 heroes and 6 towers, got %d and %d", len(g.Heroes()), len(g.Towers()))
	}
	for _, side := range types.Sides {
		if g.BaseHP(side) != 3 {
			t.Errorf("%s base hp = %d, want 3", side, g.BaseHP(side))
		}
	}
	if g.WaveTimer() != 300 || g.WaveCountdownSeconds() != 5 {
		t.Errorf("Expected first wave in 300 ticks (5s), got %d (%ds)", g.WaveTimer(), g.WaveCountdownSeconds())
	}
	if g.IsOver() {
		t.Error("Expected a fresh match to be running")
	}
}

func TestNewGamePanicsOnInvalidTuning(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected NewGame to panic")
		}
	}()
	bad := config.DefaultTuning()
	bad.WaveInterval = 0
	quietGame(WithTuning(bad))
}

func TestWaveCadenceWithoutStagger(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.WaveStagger = 0
	g := quietGame(WithTuning(tuning))

	tickN(g, tuning.FirstWaveDelay-1)
	if len(g.Minions()) != 0 {
		t.Fatalf("Expected no minions before the first wave, got %d", len(g.Minions()))
	}

	g.Tick()
	perSide := len(types.Lanes) * tuning.MinionsPerLane
	if countSide(g.Minions(), types.SideRed) != perSide || countSide(g.Minions(), types.SideBlue) != perSide {
		t.Errorf("Expected %d minions per side, got red %d blue %d", perSide,
			countSide(g.Minions(), types.SideRed), countSide(g.Minions(), types.SideBlue))
	}
	stats, _ := g.Result()
	if stats.RedMinionsSpawned != perSide || stats.BlueMinionsSpawned != perSide {
		t.Errorf("spawned = %d/%d, want %d each", stats.RedMinionsSpawned, stats.BlueMinionsSpawned, perSide)
	}
	if g.WaveTimer() != tuning.WaveInterval {
		t.Errorf("wave timer = %d, want %d", g.WaveTimer(), tuning.WaveInterval)
	}
}

func TestWaveCadenceWithStagger(t *testing.T) {
	tuning := config.DefaultTuning()
	g := quietGame()

	tickN(g, tuning.FirstWaveDelay)
	if got := countSide(g.Minions(), types.SideRed); got != len(types.Lanes) {
		t.Fatalf("Expected one red minion per lane at the trigger, got %d", got)
	}

	tickN(g, (tuning.MinionsPerLane-1)*tuning.WaveStagger)
	want := len(types.Lanes) * tuning.MinionsPerLane
	if got := countSide(g.Minions(), types.SideRed); got != want {
		t.Errorf("red minions = %d, want %d", got, want)
	}
	if got := countSide(g.Minions(), types.SideBlue); got != want {
		t.Errorf("blue minions = %d, want %d", got, want)
	}
}

func TestSecondWaveAfterInterval(t *testing.T) {
	d := event.NewDispatcher()
	waves := 0
	d.Subscribe(event.WaveSpawned, event.ListenerFunc(func(event.Event) { waves++ }))
	tuning := config.DefaultTuning()
	tuning.FirstWaveDelay = 10
	tuning.WaveInterval = 50
	g := quietGame(WithDispatcher(d), WithTuning(tuning))

	tickN(g, tuning.FirstWaveDelay+tuning.WaveInterval-1)
	if waves != 1 {
		t.Fatalf("waves = %d, want 1", waves)
	}
	g.Tick()
	if waves != 2 {
		t.Errorf("waves = %d, want 2", waves)
	}
}

func TestMaskSpawnsOnInterval(t *testing.T) {
	tuning := config.DefaultTuning()
	g := quietGame()
	tickN(g, tuning.MaskInterval-1)
	if len(g.Masks()) != 0 {
		t.Fatalf("Expected no mask before tick %d", tuning.MaskInterval)
	}
	g.Tick()
	if len(g.Masks()) != 1 {
		t.Errorf("len(Masks) = %d, want 1", len(g.Masks()))
	}
}

func TestLethalBaseReachEndsMatch(t *testing.T) {
	var calls int
	var final component.MatchStats
	d := event.NewDispatcher()
	gameOverEvents := 0
	d.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { gameOverEvents++ }))

	g := quietGame(WithDispatcher(d), OnGameOver(func(s component.MatchStats) {
		calls++
		final = s
	}))

	for i := 0; i < 3; i++ {
		m := component.NewMinion(g.World.NewEntity(), defs.BlueBase.X-30, defs.BlueBase.Y, types.SideRed, types.ClassFighter, types.LaneMid)
		g.World.AddMinion(m)
	}
	g.Tick()

	if g.BaseHP(types.SideBlue) != 0 {
		t.Fatalf("blue base hp = %d, want 0", g.BaseHP(types.SideBlue))
	}
	if !g.IsOver() || calls != 1 || gameOverEvents != 1 {
		t.Fatalf("Expected a single game over, over=%v calls=%d events=%d", g.IsOver(), calls, gameOverEvents)
	}
	if final.Winner != types.SideRed || final.MatchTime != 0 {
		t.Errorf("Expected Red win at 0s, got %s at %ds", final.Winner, final.MatchTime)
	}

	tickN(g, 100)
	if g.MatchTicks() != 1 || calls != 1 || gameOverEvents != 1 {
		t.Errorf("Expected ticks after game over to be no-ops, ticks=%d calls=%d", g.MatchTicks(), calls)
	}
}

func TestMatchTimeIsWholeSeconds(t *testing.T) {
	var final component.MatchStats
	g := quietGame(OnGameOver(func(s component.MatchStats) { final = s }))
	tickN(g, 150)
	g.baseHP[types.SideRed] = 1
	m := component.NewMinion(g.World.NewEntity(), defs.RedBase.X+30, defs.RedBase.Y, types.SideBlue, types.ClassFighter, types.LaneMid)
	g.World.AddMinion(m)
	g.Tick()

	if final.Winner != types.SideBlue {
		t.Fatalf("winner = %q, want Blue", final.Winner)
	}
	if final.MatchTime != 151/60 {
		t.Errorf("match time = %d, want %d", final.MatchTime, 151/60)
	}
}

func TestDeferredSpawnsStopAtGameOver(t *testing.T) {
	tuning := config.DefaultTuning()
	g := quietGame()
	tickN(g, tuning.FirstWaveDelay-1)

	g.baseHP[types.SideBlue] = 1
	m := component.NewMinion(g.World.NewEntity(), defs.BlueBase.X-30, defs.BlueBase.Y, types.SideRed, types.ClassFighter, types.LaneMid)
	g.World.AddMinion(m)
	g.Tick()

	if !g.IsOver() {
		t.Fatal("Expected the match to end on the wave tick")
	}
	stats, _ := g.Result()
	spawned := stats.RedMinionsSpawned
	tickN(g, 2*tuning.WaveStagger+1)
	stats, _ = g.Result()
	if stats.RedMinionsSpawned != spawned {
		t.Errorf("Expected frozen spawn count %d, got %d", spawned, stats.RedMinionsSpawned)
	}
}

// Runs a full match with scripted heroes and checks the accounting invariants
// on every tick.
func TestLongMatchInvariants(t *testing.T) {
	var g *Game
	// Last observed hp of every minion and tower; each change must be explained by an event.
	known := map[types.EntityID]int{}
	lost := map[types.Side]int{}
	health := func(id types.EntityID) int {
		target, ok := g.World.Target(id)
		if !ok {
			t.Fatalf("entity %d missing from the world", id)
		}
		return target.Health()
	}

	d := event.NewDispatcher()
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		switch data := e.Data.(type) {
		case event.HitData:
			hp := health(data.TargetID)
			lost[data.Attacker] += known[data.TargetID] - hp
			known[data.TargetID] = hp
		case event.UnitData:
			if e.Type == event.MinionSpawned {
				known[data.ID] = health(data.ID)
			} else if data.Reason == event.ReasonReachedBase {
				known[data.ID] = 0
			}
		case event.MaskData:
			known[data.MinionID] = health(data.MinionID)
		}
	}), event.MeleeHit, event.ProjectileHit, event.MinionSpawned, event.MinionDied, event.MaskDelivered)
	gameOvers := 0
	d.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { gameOvers++ }))

	g = quietGame(WithDispatcher(d))
	for _, tw := range g.Towers() {
		known[tw.ID] = tw.HP
	}

	prev := map[types.Side]int{types.SideRed: 3, types.SideBlue: 3}
	for i := 0; i < 20000 && !g.IsOver(); i++ {
		if i%400 == 0 {
			// Wander so heroes pick up and deliver masks.
			g.SetInput(types.SideRed, input.State{input.KeyA: i%800 == 0, input.KeyD: i%800 != 0, input.KeyW: true})
			g.SetInput(types.SideBlue, input.State{input.KeyArrowLeft: i%800 == 0, input.KeyArrowRight: i%800 != 0, input.KeyArrowDown: true})
		}
		g.Tick()

		for _, side := range types.Sides {
			hp := g.BaseHP(side)
			if hp < 0 || hp > prev[side] {
				t.Fatalf("tick %d: %s base hp went from %d to %d", g.MatchTicks(), side, prev[side], hp)
			}
			prev[side] = hp
		}
		for _, m := range g.Minions() {
			if m.HP != known[m.ID] {
				t.Fatalf("tick %d: minion %d hp %d, last accounted %d", g.MatchTicks(), m.ID, m.HP, known[m.ID])
			}
		}
		for _, tw := range g.Towers() {
			if tw.HP != known[tw.ID] {
				t.Fatalf("tick %d: tower %d hp %d, last accounted %d", g.MatchTicks(), tw.ID, tw.HP, known[tw.ID])
			}
		}
	}

	stats, over := g.Result()
	if stats.RedDamageDealt != lost[types.SideRed] || stats.BlueDamageDealt != lost[types.SideBlue] {
		t.Errorf("Expected damage stats %d/%d to match hp lost to each side %d/%d",
			stats.RedDamageDealt, stats.BlueDamageDealt, lost[types.SideRed], lost[types.SideBlue])
	}
	if stats.RedDamageDealt == 0 || stats.BlueDamageDealt == 0 {
		t.Errorf("Expected both sides to deal damage, got %d/%d", stats.RedDamageDealt, stats.BlueDamageDealt)
	}
	if over && gameOvers != 1 {
		t.Errorf("GameOver events = %d, want 1", gameOvers)
	}
	if !over && gameOvers != 0 {
		t.Errorf("GameOver events = %d while running", gameOvers)
	}
}

func TestSetInputCopiesState(t *testing.T) {
	g := quietGame()
	keys := input.State{input.KeyD: true}
	g.SetInput(types.SideRed, keys)
	keys[input.KeyD] = false

	red := g.World.Hero(types.SideRed)
	x := red.X
	g.Tick()
	if red.X != x+config.HeroSpeed {
		t.Errorf("hero x = %f, want %f", red.X, x+config.HeroSpeed)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := quietGame()
	tickN(g, 300)
	frame := g.Snapshot()
	if frame.Header.Tick != 300 || len(frame.Minions) != len(g.Minions()) || len(frame.Towers) != 6 {
		t.Fatalf("unexpected frame header %+v", frame.Header)
	}
	frame.Minions[0].HP = -1
	if g.Minions()[0].HP == -1 {
		t.Error("Expected snapshot minions not to alias engine state")
	}
	if frame.BaseHP(types.SideBlue) != 3 {
		t.Errorf("frame blue base hp = %d, want 3", frame.BaseHP(types.SideBlue))
	}
}
