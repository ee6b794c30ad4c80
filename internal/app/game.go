// internal/app/game.go
package app

import (
	"log"
	"math"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/entity"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/input"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/schedule"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/snapshot"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/system"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/utils"
)

// Game holds the match state and advances it one fixed tick at a time.
// It never reads devices or clocks; frontends feed input with SetInput and
// call Tick at the tick rate.
type Game struct {
	World            *entity.World
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	MovementSystem   *system.MovementSystem
	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	MinionSystem     *system.MinionSystem
	MaskSystem       *system.MaskSystem
	PlayerSystem     *system.PlayerSystem
	StateSystem      *system.StateSystem

	tuning     config.Tuning
	logger     *log.Logger
	queue      *schedule.Queue
	onGameOver func(component.MatchStats)

	ticks  int
	baseHP map[types.Side]int
	stats  component.MatchStats
	over   bool
}

// Option configures a Game.
type Option func(*Game)

// WithTuning replaces the default tunables.
func WithTuning(t config.Tuning) Option {
	return func(g *Game) { g.tuning = t }
}

// WithSeed seeds the pickup generator. Seed 0 uses the clock.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.Rng = utils.NewPRNGService(seed) }
}

// WithRNG shares an existing generator.
func WithRNG(rng *utils.PRNGService) Option {
	return func(g *Game) { g.Rng = rng }
}

func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithDispatcher lets collaborators subscribe before the first tick.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.EventDispatcher = d }
}

// OnGameOver registers a callback that receives the final stats once.
func OnGameOver(fn func(component.MatchStats)) Option {
	return func(g *Game) { g.onGameOver = fn }
}

// NewGame initializes a new match: heroes at their bases, six towers, full base hp.
func NewGame(opts ...Option) *Game {
	g := &Game{
		tuning: config.DefaultTuning(),
		logger: log.Default(),
		queue:  schedule.NewQueue(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.tuning.Validate(); err != nil {
		panic("app: invalid tuning: " + err.Error())
	}
	if g.EventDispatcher == nil {
		g.EventDispatcher = event.NewDispatcher()
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(0)
	}

	g.baseHP = map[types.Side]int{
		types.SideRed:  g.tuning.BaseHP,
		types.SideBlue: g.tuning.BaseHP,
	}

	world := entity.NewWorld()
	g.World = world
	g.MovementSystem = system.NewMovementSystem(g.tuning.WaypointRadius)
	g.CombatSystem = system.NewCombatSystem(world, g, g.EventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(world, g, g.EventDispatcher)
	g.MinionSystem = system.NewMinionSystem(world, g, g.EventDispatcher, g.CombatSystem, g.MovementSystem, g.logger)
	g.WaveSystem = system.NewWaveSystem(world, g, g.EventDispatcher, g.logger)
	g.MaskSystem = system.NewMaskSystem(world, g, g.EventDispatcher, g.Rng)
	g.PlayerSystem = system.NewPlayerSystem(world, g.EventDispatcher, g.MovementSystem)
	g.StateSystem = system.NewStateSystem(g)

	for _, side := range types.Sides {
		world.AddHero(component.NewHero(world.NewEntity(), side, defs.HeroSpawn(side)))
	}
	for _, p := range defs.TowerPlacements {
		world.AddTower(component.NewTower(world.NewEntity(), p, defs.DefaultTower))
	}
	return g
}

// Tick advances the match by one step. After game over it does nothing.
func (g *Game) Tick() {
	if g.over {
		return
	}
	g.ticks++

	g.WaveSystem.Update()
	g.queue.RunDue(g.ticks)
	g.MaskSystem.Update()
	g.ProjectileSystem.Update()
	g.MinionSystem.Update()
	g.MinionSystem.Separate()
	g.MinionSystem.Decay()
	g.CombatSystem.UpdateTowers()
	g.PlayerSystem.Update()

	if winner, over := g.StateSystem.Winner(); over {
		g.finish(winner)
	}
}

func (g *Game) finish(winner types.Side) {
	g.over = true
	g.queue.Clear()
	g.stats.Winner = winner
	g.stats.MatchTime = g.ticks / g.tuning.TicksPerSecond

	final := g.stats
	g.logger.Printf("Game over: %s wins after %ds (damage red %d / blue %d)",
		winner, final.MatchTime, final.RedDamageDealt, final.BlueDamageDealt)
	if g.onGameOver != nil {
		g.onGameOver(final)
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: final})
}

// SetInput replaces the held keys of side's hero for the next ticks.
func (g *Game) SetInput(side types.Side, keys input.State) {
	if h := g.World.Hero(side); h != nil {
		h.Keys = keys.Clone()
	}
}

func (g *Game) Heroes() []*component.Hero            { return g.World.Heroes }
func (g *Game) Minions() []*component.Minion         { return g.World.Minions }
func (g *Game) Towers() []*component.Tower           { return g.World.Towers }
func (g *Game) Masks() []*component.Mask             { return g.World.Masks }
func (g *Game) Projectiles() []*component.Projectile { return g.World.Projectiles }

// Snapshot returns a value copy of the arena.
func (g *Game) Snapshot() snapshot.Frame {
	return snapshot.Capture(g.World, snapshot.Header{
		Tick:       g.ticks,
		WaveTimer:  g.WaveSystem.Timer(),
		Wave:       g.WaveSystem.Waves(),
		RedBaseHP:  g.baseHP[types.SideRed],
		BlueBaseHP: g.baseHP[types.SideBlue],
		Over:       g.over,
		Stats:      g.stats,
	})
}

// Result returns the final stats once the match is over.
func (g *Game) Result() (component.MatchStats, bool) {
	return g.stats, g.over
}

// WaveTimer returns the ticks left until the next wave.
func (g *Game) WaveTimer() int {
	return g.WaveSystem.Timer()
}

// WaveCountdownSeconds is the wave timer rounded up to whole seconds, for HUDs.
func (g *Game) WaveCountdownSeconds() int {
	return int(math.Ceil(float64(g.WaveSystem.Timer()) / float64(g.tuning.TicksPerSecond)))
}

// GameContext

func (g *Game) Tuning() config.Tuning        { return g.tuning }
func (g *Game) MatchTicks() int              { return g.ticks }
func (g *Game) IsOver() bool                 { return g.over }
func (g *Game) Stats() *component.MatchStats { return &g.stats }
func (g *Game) BaseHP(side types.Side) int   { return g.baseHP[side] }

func (g *Game) DamageBase(side types.Side) int {
	hp := g.baseHP[side] - 1
	if hp < 0 {
		hp = 0
	}
	g.baseHP[side] = hp
	return hp
}

func (g *Game) Schedule(tick int, action func()) {
	g.queue.Schedule(tick, action)
}
